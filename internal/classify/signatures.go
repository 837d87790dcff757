// Package classify decides which known export schema a tabular file
// belongs to. The knowledge of every supported vendor lives in one
// declarative signature table; adding a format is a data change here, not a
// code change anywhere else.
package classify

import "swinglab/pkg/contracts/domain"

// Canonical field names the normalizer looks up in a DetectionResult's
// column map.
const (
	FieldExitVelo    = "exit_velo"
	FieldLaunchAngle = "launch_angle"
	FieldDistance    = "distance"
	FieldResult      = "result"
	FieldBattedType  = "batted_type"

	FieldMovementID = "movement_id"
	FieldTime       = "time"

	FieldPelvisAngularVelo     = "pelvis_angular_velo"
	FieldTorsoAngularVelo      = "torso_angular_velo"
	FieldHipShoulderSeparation = "hip_shoulder_separation"
	FieldLeadKneeExtensionVelo = "lead_knee_extension_velo"
	FieldPostureTilt           = "posture_tilt"

	FieldPelvisEnergy       = "pelvis_energy"
	FieldTorsoEnergy        = "torso_energy"
	FieldArmEnergy          = "arm_energy"
	FieldBatEnergy          = "bat_energy"
	FieldTransferEfficiency = "transfer_efficiency"
	FieldPeakBatPower       = "peak_bat_power"
	FieldBatSpeed           = "bat_speed"
)

// signature describes one known schema. Header tokens are matched against
// normalized headers (lowercased, units and separators stripped); a token
// prefixed with '=' must match the whole normalized header, anything else
// matches as a substring. Short vendor abbreviations ("velo", "la") use
// exact tokens so they cannot cross-match longer headers of other vendors.
type signature struct {
	name  string
	kind  domain.SchemaKind
	brand domain.Brand

	required []string
	optional []string

	// filenameTokens break ties when several signatures' required sets are
	// satisfied by the same header row.
	filenameTokens []string

	// fields maps canonical field names to candidate header tokens, tried
	// in order.
	fields map[string][]string
}

var signatures = []signature{
	{
		name:           "hittrax",
		kind:           domain.SchemaLaunchMonitor,
		brand:          domain.BrandHitTrax,
		required:       []string{"=velo", "=la"},
		optional:       []string{"=dist", "=res", "=result", "=type", "=pts", "=ab", "strikezone"},
		filenameTokens: []string{"hittrax"},
		fields: map[string][]string{
			FieldExitVelo:    {"=velo"},
			FieldLaunchAngle: {"=la"},
			FieldDistance:    {"=dist"},
			FieldResult:      {"=res", "=result"},
			FieldBattedType:  {"=type"},
		},
	},
	{
		name:           "rapsodo",
		kind:           domain.SchemaLaunchMonitor,
		brand:          domain.BrandRapsodo,
		required:       []string{"=exitvelocity", "=launchangle"},
		optional:       []string{"=hittype", "=direction", "=distance", "=spinrate", "=result"},
		filenameTokens: []string{"rapsodo"},
		fields: map[string][]string{
			FieldExitVelo:    {"=exitvelocity"},
			FieldLaunchAngle: {"=launchangle"},
			FieldDistance:    {"=distance"},
			FieldResult:      {"=result", "=playresult"},
			FieldBattedType:  {"=hittype"},
		},
	},
	{
		name:           "trackman",
		kind:           domain.SchemaLaunchMonitor,
		brand:          domain.BrandTrackMan,
		required:       []string{"=exitspeed", "=angle"},
		optional:       []string{"=direction", "=distance", "=playresult", "=hittype", "=spinrate"},
		filenameTokens: []string{"trackman"},
		fields: map[string][]string{
			FieldExitVelo:    {"=exitspeed"},
			FieldLaunchAngle: {"=angle"},
			FieldDistance:    {"=distance"},
			FieldResult:      {"=playresult", "=result"},
			FieldBattedType:  {"=hittype"},
		},
	},
	{
		// Several cage systems export the same plainly-named columns; they
		// all fall under the generic brand.
		name:           "generic-launch-monitor",
		kind:           domain.SchemaLaunchMonitor,
		brand:          domain.BrandGeneric,
		required:       []string{"=exitvelo", "=launchangle"},
		optional:       []string{"=distance", "=result", "=outcome", "=battedballtype"},
		filenameTokens: []string{"launch", "cage", "session"},
		fields: map[string][]string{
			FieldExitVelo:    {"=exitvelo"},
			FieldLaunchAngle: {"=launchangle"},
			FieldDistance:    {"=distance"},
			FieldResult:      {"=result", "=outcome"},
			FieldBattedType:  {"=battedballtype"},
		},
	},
	{
		name:           "kinematics",
		kind:           domain.SchemaKinematics,
		required:       []string{"movement", "angularvelo"},
		optional:       []string{"hipshoulder", "leadknee", "posture", "time"},
		filenameTokens: []string{"ik", "kinematic"},
		fields: map[string][]string{
			FieldMovementID:            {"movement"},
			FieldTime:                  {"=time", "=times", "time"},
			FieldPelvisAngularVelo:     {"pelvisangularvelo", "pelvisrot"},
			FieldTorsoAngularVelo:      {"torsoangularvelo", "torsorot"},
			FieldHipShoulderSeparation: {"hipshoulder"},
			FieldLeadKneeExtensionVelo: {"leadknee"},
			FieldPostureTilt:           {"posture"},
		},
	},
	{
		name:           "energy-transfer",
		kind:           domain.SchemaEnergyTransfer,
		required:       []string{"movement", "energy"},
		optional:       []string{"transferefficiency", "batpower", "batspeed", "momentum", "time"},
		filenameTokens: []string{"me", "energy", "momentum"},
		fields: map[string][]string{
			FieldMovementID:         {"movement"},
			FieldTime:               {"=time", "=times", "time"},
			FieldPelvisEnergy:       {"pelvisenergy"},
			FieldTorsoEnergy:        {"torsoenergy"},
			FieldArmEnergy:          {"armenergy"},
			FieldBatEnergy:          {"batenergy"},
			FieldTransferEfficiency: {"transferefficiency"},
			FieldPeakBatPower:       {"batpower"},
			FieldBatSpeed:           {"batspeed"},
		},
	},
}
