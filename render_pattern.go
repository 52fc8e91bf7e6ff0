package backdrop

import (
	"math"
	"math/rand/v2"
)

// Pattern parameter defaults, applied when a config leaves a knob unset.
const (
	defaultDotRadius     = 3
	defaultDotSpacing    = 20
	defaultStripeWidth   = 10
	defaultStripeSpacing = 20
	defaultGridLineWidth = 1
	defaultGridCellSize  = 20
	defaultNoiseLevel    = 0.5
)

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// RenderPattern rasterizes a procedural pattern onto pm: the background
// color flood-fills the surface, then the foreground geometry is drawn
// through a center-anchored rotate+scale transform. Noise is the
// exception: it works per pixel in untransformed coordinates, since
// rotation and scale are meaningless at single-pixel granularity.
func RenderPattern(pm *Pixmap, p PatternConfig) {
	bg := Hex(p.BG)
	fg := Hex(p.FG)
	opacity := clamp01(p.Opacity)

	pm.Clear(bg)

	if p.Name == PatternNoise {
		renderNoise(pm, p, bg, fg, opacity)
		return
	}

	// Screen coordinates map back into pattern space through the inverse
	// transform; the tiling itself is evaluated untransformed.
	w, h := float64(pm.Width()), float64(pm.Height())
	scale := p.Scale
	if !(scale > 0) {
		scale = 1
	}
	rot := p.Rotation * math.Pi / 180
	fwd := Translate(w/2, h/2).
		Multiply(Rotate(rot)).
		Multiply(Scale(scale)).
		Multiply(Translate(-w/2, -h/2))
	inv := fwd.Invert()

	var covered func(x, y float64) bool
	switch p.Name {
	case PatternStripes:
		covered = stripeCoverage(p.Params)
	case PatternGrid:
		covered = gridCoverage(p.Params)
	default:
		covered = dotCoverage(p.Params)
	}

	fgBlend := bg.Lerp(fg, opacity)
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			qx, qy := inv.Apply(float64(x)+0.5, float64(y)+0.5)
			if covered(qx, qy) {
				pm.SetPixel(x, y, fgBlend)
			}
		}
	}
}

// dotCoverage reports membership in a square grid of filled circles.
func dotCoverage(params PatternParams) func(x, y float64) bool {
	radius := orDefault(params.Radius, defaultDotRadius)
	spacing := orDefault(params.Spacing, defaultDotSpacing)
	return func(x, y float64) bool {
		dx := x - math.Round(x/spacing)*spacing
		dy := y - math.Round(y/spacing)*spacing
		return dx*dx+dy*dy <= radius*radius
	}
}

// stripeCoverage reports membership in vertical bands repeating every
// thickness+spacing.
func stripeCoverage(params PatternParams) func(x, y float64) bool {
	thickness := orDefault(params.Thickness, defaultStripeWidth)
	spacing := orDefault(params.Spacing, defaultStripeSpacing)
	period := thickness + spacing
	return func(x, _ float64) bool {
		fx := math.Mod(x, period)
		if fx < 0 {
			fx += period
		}
		return fx < thickness
	}
}

// gridCoverage reports membership in stroked vertical and horizontal
// lines on a square grid, each line centered on a cell boundary.
func gridCoverage(params PatternParams) func(x, y float64) bool {
	lineWidth := orDefault(params.LineWidth, defaultGridLineWidth)
	cellSize := orDefault(params.CellSize, defaultGridCellSize)
	half := lineWidth / 2
	onLine := func(v float64) bool {
		return math.Abs(v-math.Round(v/cellSize)*cellSize) <= half
	}
	return func(x, y float64) bool {
		return onLine(x) || onLine(y)
	}
}

// renderNoise blends fg into bg per pixel with a stochastic factor.
// For a uniform draw r in [0,1): below roughness the factor ramps up with
// r, above it the factor ramps back down across the remaining range, both
// scaled by intensity. The draw is deliberately unseeded — two renders of
// the same config differ pixel for pixel, unlike the seeded gradient
// generator.
func renderNoise(pm *Pixmap, p PatternConfig, bg, fg RGBA, opacity float64) {
	intensity := orDefault(clamp01(p.Params.Intensity), defaultNoiseLevel)
	roughness := orDefault(clamp01(p.Params.Roughness), defaultNoiseLevel)

	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			r := rand.Float64()
			var factor float64
			if r < roughness {
				factor = r * intensity
			} else {
				factor = (1 - (r-roughness)/(1-roughness)) * intensity
			}
			c := bg.Lerp(fg, factor*opacity)
			c.A = 1
			pm.SetPixel(x, y, c)
		}
	}
}
