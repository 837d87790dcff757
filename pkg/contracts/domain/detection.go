package domain

// SchemaKind identifies which family of swing-measurement export a tabular
// file belongs to.
type SchemaKind string

const (
	SchemaLaunchMonitor  SchemaKind = "launch_monitor"
	SchemaKinematics     SchemaKind = "kinematics"
	SchemaEnergyTransfer SchemaKind = "energy_transfer"
	SchemaUnknown        SchemaKind = "unknown"
)

// Brand tags the vendor of a launch-monitor export. Motion-capture exports
// carry no brand; several vendors share the generic launch-monitor schema.
type Brand string

const (
	BrandHitTrax  Brand = "hittrax"
	BrandRapsodo  Brand = "rapsodo"
	BrandTrackMan Brand = "trackman"
	BrandGeneric  Brand = "generic"
)

// Confidence is the classifier's tier for how certain a detection is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// DetectionResult is the classifier's verdict for one file. It is produced
// once per file and never mutated.
//
// ColumnMap maps canonical field names to the source header they were found
// under; it is populated only for known schemas. DebugHeaders carries up to
// the first ten raw headers for operator diagnosis of unknown files.
type DetectionResult struct {
	SchemaKind   SchemaKind        `json:"schema_kind"`
	Brand        Brand             `json:"brand,omitempty"`
	Confidence   Confidence        `json:"confidence"`
	ColumnMap    map[string]string `json:"column_map,omitempty"`
	DebugHeaders []string          `json:"debug_headers,omitempty"`
}

// IsKnown reports whether the file matched a known schema.
func (d DetectionResult) IsKnown() bool {
	return d.SchemaKind != SchemaUnknown && d.SchemaKind != ""
}
