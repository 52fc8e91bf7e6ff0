package backdrop

import "math"

// Validate reports whether a candidate state is structurally sound enough
// to become the active state. It is a pure predicate: it never panics and
// never mutates the candidate. The store runs every loaded or migrated
// state through it before adoption; rejected candidates fall back to
// DefaultState.
//
// The checks are deliberately minimal shape checks, not exhaustive range
// checks. Rendering clamps out-of-range numerics; what cannot be clamped
// away is a missing discriminator or an unusable stop list.
func Validate(s BackgroundState) bool {
	switch s.Type {
	case TypeSolid, TypeGradient, TypePattern, TypeUpload:
	default:
		return false
	}

	switch s.Type {
	case TypeSolid:
		if s.Solid.Color == "" {
			return false
		}
	case TypeGradient:
		if !validStops(s.Gradient.Stops) {
			return false
		}
	case TypePattern:
		switch s.Pattern.Name {
		case PatternDots, PatternStripes, PatternGrid, PatternNoise:
		default:
			return false
		}
		if s.Pattern.FG == "" || s.Pattern.BG == "" {
			return false
		}
		if !(s.Pattern.Scale > 0) {
			return false
		}
	case TypeUpload:
		if s.Upload == nil || s.Upload.DataURL == "" {
			return false
		}
	}

	return true
}

func validStops(stops []GradientStop) bool {
	if len(stops) < MinGradientStops || len(stops) > MaxGradientStops {
		return false
	}
	for _, st := range stops {
		if math.IsNaN(st.Pos) || math.IsInf(st.Pos, 0) {
			return false
		}
		if st.Color == "" {
			return false
		}
	}
	return true
}
