// Package wire is the single serialization module at the edge of the
// compiler core: every JSON payload crossing the process boundary is
// defined and mapped here, and the core's API stays native structs
// everywhere else.
package wire

// Anchor is one profile point, already converted to centimeters by the
// drawing surface.
type Anchor struct {
	RadiusCM float64 `json:"radiusCm"`
	HeightCM float64 `json:"heightCm"`
}

type Gauge struct {
	StitchesPerCM float64 `json:"stitchesPerCm"`
	RowsPerCM     float64 `json:"rowsPerCm"`
	HookSizeMM    float64 `json:"hookSizeMm"`
}

type Config struct {
	TotalHeightCM float64 `json:"totalHeightCm"`
	Gauge         Gauge   `json:"gauge"`
	// DecreaseStyle selects "invisible" (default) or "classic"
	// decreases; both have identical stitch arithmetic.
	DecreaseStyle string `json:"decreaseStyle,omitempty"`
}

// CompileRequest is the payload of both the validate and compile
// entry points.
type CompileRequest struct {
	Profile []Anchor `json:"profile"`
	Config  Config   `json:"config"`
}

type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidateResponse struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
}

type Row struct {
	RowNumber         int      `json:"rowNumber"`
	TargetStitchCount int      `json:"targetStitchCount"`
	Actions           []string `json:"actions"`
	Instruction       string   `json:"instruction"`
}

type Metadata struct {
	TotalRows            int     `json:"totalRows"`
	TotalStitches        uint64  `json:"totalStitches"`
	EstimatedTimeMinutes float64 `json:"estimatedTimeMinutes"`
	YarnLengthMeters     float64 `json:"yarnLengthMeters"`
}

type Pattern struct {
	Rows     []Row    `json:"rows"`
	Metadata Metadata `json:"metadata"`
}

// Error is the structured failure shape every endpoint returns.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
