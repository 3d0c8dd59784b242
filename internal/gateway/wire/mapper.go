package wire

import (
	"errors"
	"fmt"

	"amigurumi/internal/pattern"
	"amigurumi/internal/profile"
	"amigurumi/internal/stitch"
)

// action names on the wire; distinct from the display strings the
// notation compressor renders.
const (
	actionSc     = "sc"
	actionInc    = "inc"
	actionDec    = "dec"
	actionInvDec = "inv_dec"
)

func actionName(a stitch.Action) string {
	switch a {
	case stitch.Inc:
		return actionInc
	case stitch.Dec:
		return actionDec
	case stitch.InvDec:
		return actionInvDec
	default:
		return actionSc
	}
}

// ParseDecreaseStyle maps the wire value onto the core enum. The empty
// string selects the amigurumi default.
func ParseDecreaseStyle(s string) (stitch.DecreaseStyle, error) {
	switch s {
	case "", "invisible":
		return stitch.DecreaseInvisible, nil
	case "classic":
		return stitch.DecreaseClassic, nil
	}
	return 0, fmt.Errorf("unknown decrease style %q", s)
}

// ToAnchors converts the wire profile into core anchors.
func ToAnchors(in []Anchor) []profile.Anchor {
	out := make([]profile.Anchor, len(in))
	for i, a := range in {
		out[i] = profile.Anchor{RadiusCM: a.RadiusCM, HeightCM: a.HeightCM}
	}
	return out
}

// ToConfig converts the wire config into the core config.
func ToConfig(in Config) (pattern.Config, error) {
	style, err := ParseDecreaseStyle(in.DecreaseStyle)
	if err != nil {
		return pattern.Config{}, err
	}
	return pattern.Config{
		TotalHeightCM: in.TotalHeightCM,
		Gauge: pattern.Gauge{
			StitchesPerCM: in.Gauge.StitchesPerCM,
			RowsPerCM:     in.Gauge.RowsPerCM,
			HookSizeMM:    in.Gauge.HookSizeMM,
		},
		DecreaseStyle: style,
	}, nil
}

// FromPattern converts the compiled pattern into its wire shape,
// attaching the rendered instruction string to each row.
func FromPattern(p *pattern.Pattern) Pattern {
	rows := make([]Row, len(p.Rows))
	for i, row := range p.Rows {
		actions := make([]string, len(row.Actions))
		for j, a := range row.Actions {
			actions[j] = actionName(a)
		}
		rows[i] = Row{
			RowNumber:         row.Number,
			TargetStitchCount: row.TargetCount,
			Actions:           actions,
			Instruction:       stitch.DescribeRow(row.Number, row.Actions),
		}
	}
	return Pattern{
		Rows: rows,
		Metadata: Metadata{
			TotalRows:            p.Metadata.TotalRows,
			TotalStitches:        p.Metadata.TotalStitches,
			EstimatedTimeMinutes: p.Metadata.EstimatedTimeMinutes,
			YarnLengthMeters:     p.Metadata.YarnLengthMeters,
		},
	}
}

// FromViolations converts core violations to their wire shape.
func FromViolations(vs []pattern.Violation) []Violation {
	if len(vs) == 0 {
		return nil
	}
	out := make([]Violation, len(vs))
	for i, v := range vs {
		out[i] = Violation{Field: v.Field, Code: v.Code, Message: v.Message}
	}
	return out
}

// AsError flattens a compilation error to the structured wire error,
// keeping the user-actionable codes stable for the editing UI.
func AsError(err error) Error {
	code := "internal"
	switch {
	case errors.Is(err, profile.ErrTooFewPoints):
		code = "too_few_points"
	case errors.Is(err, profile.ErrNotMonotonic):
		code = "not_monotonic"
	case errors.Is(err, profile.ErrOpenPole):
		code = "open_pole"
	case errors.Is(err, pattern.ErrHeightOutOfRange):
		code = "height_out_of_range"
	case errors.Is(err, pattern.ErrInvalidConfig):
		code = "invalid_config"
	}
	return Error{Code: code, Message: err.Error()}
}
