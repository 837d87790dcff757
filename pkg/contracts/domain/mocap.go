package domain

// KinematicFrame is one time sample of a motion-capture movement from an
// inverse-kinematics (IK) export. Known measurements get typed fields;
// unknown or vendor-specific columns are preserved in Extras rather than
// being reachable by arbitrary string key.
type KinematicFrame struct {
	MovementID string   `json:"movement_id"`
	TimeSec    *float64 `json:"time_sec,omitempty"`

	PelvisAngularVelo     *float64 `json:"pelvis_angular_velo,omitempty"`     // deg/s
	TorsoAngularVelo      *float64 `json:"torso_angular_velo,omitempty"`      // deg/s
	HipShoulderSeparation *float64 `json:"hip_shoulder_separation,omitempty"` // degrees
	LeadKneeExtensionVelo *float64 `json:"lead_knee_extension_velo,omitempty"`
	PostureTilt           *float64 `json:"posture_tilt,omitempty"`

	Extras map[string]string `json:"extras,omitempty"`
}

// EnergyFrame is one time sample of a movement from a momentum-energy (ME)
// export.
type EnergyFrame struct {
	MovementID string   `json:"movement_id"`
	TimeSec    *float64 `json:"time_sec,omitempty"`

	PelvisEnergy       *float64 `json:"pelvis_energy,omitempty"` // joules
	TorsoEnergy        *float64 `json:"torso_energy,omitempty"`
	ArmEnergy          *float64 `json:"arm_energy,omitempty"`
	BatEnergy          *float64 `json:"bat_energy,omitempty"`
	TransferEfficiency *float64 `json:"transfer_efficiency,omitempty"` // 0..1
	PeakBatPower       *float64 `json:"peak_bat_power,omitempty"`      // watts
	BatSpeedMph        *float64 `json:"bat_speed_mph,omitempty"`

	Extras map[string]string `json:"extras,omitempty"`
}

// MatchedSwing pairs the kinematics-frame group and energy-frame group for
// one swing. Either side may be absent; the Has flags are independent and
// downstream scoring branches on each separately.
type MatchedSwing struct {
	MovementID string `json:"movement_id"`

	Kinematics []KinematicFrame `json:"kinematics,omitempty"`
	Energy     []EnergyFrame    `json:"energy,omitempty"`

	HasKinematics bool `json:"has_kinematics"`
	HasEnergy     bool `json:"has_energy"`
}
