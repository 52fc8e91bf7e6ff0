package backdrop

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// GradientCSS formats a gradient configuration as a CSS gradient image
// string. Stops are emitted in ascending position order regardless of the
// order the caller stored them in, each as "<color> <percent>%" with the
// percent rounded to the nearest integer.
func GradientCSS(g GradientConfig) string {
	stops := sortedStops(g.Stops)
	parts := make([]string, len(stops))
	for i, st := range stops {
		parts[i] = fmt.Sprintf("%s %d%%", st.Color, roundPercent(st.Pos))
	}
	stopList := strings.Join(parts, ", ")

	switch g.Kind {
	case GradientRadial:
		return fmt.Sprintf("radial-gradient(%s at %d%% %d%%, %s)",
			g.Shape, roundPercent(g.Center.X), roundPercent(g.Center.Y), stopList)
	case GradientConic:
		prefix := ""
		if g.Repeat {
			prefix = "repeating-"
		}
		return fmt.Sprintf("%sconic-gradient(from %sdeg at %d%% %d%%, %s)",
			prefix, formatAngle(g.Angle), roundPercent(g.Center.X), roundPercent(g.Center.Y), stopList)
	default:
		return fmt.Sprintf("linear-gradient(%sdeg, %s)", formatAngle(g.Angle), stopList)
	}
}

// FillCSS returns the CSS background value for the active fill variant.
// Patterns have no CSS form; they render through the raster path and fall
// back to their background color here.
func FillCSS(s BackgroundState) string {
	switch s.Type {
	case TypeSolid:
		return s.Solid.Color
	case TypeGradient:
		return GradientCSS(s.Gradient)
	case TypeUpload:
		if s.Upload != nil {
			return fmt.Sprintf("url(%q)", s.Upload.DataURL)
		}
		return ""
	case TypePattern:
		return s.Pattern.BG
	}
	return ""
}

// sortedStops returns a copy of stops ordered by position ascending.
// The sort is stable so coincident stops keep their relative order.
func sortedStops(stops []GradientStop) []GradientStop {
	out := make([]GradientStop, len(stops))
	copy(out, stops)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pos < out[j].Pos
	})
	return out
}

func roundPercent(pos float64) int {
	return int(math.Round(pos * 100))
}

func formatAngle(angle float64) string {
	return strconv.FormatFloat(angle, 'f', -1, 64)
}
