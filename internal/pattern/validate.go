package pattern

import "amigurumi/internal/profile"

// Violation is one user-actionable validation failure. Code is a
// stable machine-readable identifier; Message is display text.
type Violation struct {
	Field   string
	Code    string
	Message string
}

// ValidateAnchors checks an anchor list against the closed-solid
// invariants and returns every violation rather than just the first,
// so an editor can surface them all at once.
func ValidateAnchors(anchors []profile.Anchor) []Violation {
	var vs []Violation
	if len(anchors) < 3 {
		vs = append(vs, Violation{
			Field:   "profile",
			Code:    "too_few_points",
			Message: "at least 3 anchor points are required (2 poles and an interior point)",
		})
	}
	for _, a := range anchors {
		if a.RadiusCM < 0 {
			vs = append(vs, Violation{
				Field:   "profile",
				Code:    "negative_radius",
				Message: "anchor radii must not be negative",
			})
			break
		}
	}
	for i := 1; i < len(anchors); i++ {
		if anchors[i].HeightCM <= anchors[i-1].HeightCM {
			vs = append(vs, Violation{
				Field:   "profile",
				Code:    "not_monotonic",
				Message: "anchor heights must be strictly increasing",
			})
			break
		}
	}
	if len(anchors) >= 2 && (anchors[0].RadiusCM != 0 || anchors[len(anchors)-1].RadiusCM != 0) {
		vs = append(vs, Violation{
			Field:   "profile",
			Code:    "open_pole",
			Message: "profile must start and end on the axis (radius 0)",
		})
	}
	return vs
}

// ValidateConfig checks the gauge and height configuration.
func ValidateConfig(cfg Config) []Violation {
	var vs []Violation
	if cfg.TotalHeightCM <= 0 {
		vs = append(vs, Violation{
			Field:   "totalHeightCm",
			Code:    "nonpositive_height",
			Message: "total height must be greater than zero",
		})
	}
	if cfg.Gauge.StitchesPerCM <= 0 {
		vs = append(vs, Violation{
			Field:   "gauge.stitchesPerCm",
			Code:    "nonpositive_gauge",
			Message: "stitches per cm must be greater than zero",
		})
	}
	if cfg.Gauge.RowsPerCM <= 0 {
		vs = append(vs, Violation{
			Field:   "gauge.rowsPerCm",
			Code:    "nonpositive_gauge",
			Message: "rows per cm must be greater than zero",
		})
	}
	if cfg.Gauge.HookSizeMM <= 0 {
		vs = append(vs, Violation{
			Field:   "gauge.hookSizeMm",
			Code:    "nonpositive_hook",
			Message: "hook size must be greater than zero",
		})
	}
	return vs
}
