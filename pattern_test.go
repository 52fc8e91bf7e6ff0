package backdrop

import "testing"

func basePattern(name PatternName) PatternConfig {
	return PatternConfig{
		Name:    name,
		FG:      "#000000",
		BG:      "#FFFFFF",
		Scale:   1,
		Opacity: 1,
	}
}

func TestRenderPatternDots(t *testing.T) {
	pm := NewPixmap(100, 100)
	p := basePattern(PatternDots)
	p.Params = PatternParams{Radius: 3, Spacing: 20}
	RenderPattern(pm, p)

	// Grid corner: inside a dot.
	if got := pm.GetPixel(20, 20); got.R > 0.1 {
		t.Errorf("pixel on a dot = %v, want fg black", got)
	}
	// Between dots.
	if got := pm.GetPixel(10, 10); got.R < 0.9 {
		t.Errorf("pixel between dots = %v, want bg white", got)
	}
}

func TestRenderPatternStripes(t *testing.T) {
	pm := NewPixmap(90, 30)
	p := basePattern(PatternStripes)
	p.Params = PatternParams{Thickness: 10, Spacing: 20}
	RenderPattern(pm, p)

	// Bands every 30px: [0,10) fg, [10,30) bg.
	if got := pm.GetPixel(5, 15); got.R > 0.1 {
		t.Errorf("pixel in band = %v, want fg", got)
	}
	if got := pm.GetPixel(15, 15); got.R < 0.9 {
		t.Errorf("pixel in gap = %v, want bg", got)
	}
	if got := pm.GetPixel(35, 15); got.R > 0.1 {
		t.Errorf("pixel in second band = %v, want fg", got)
	}
}

func TestRenderPatternGrid(t *testing.T) {
	pm := NewPixmap(100, 100)
	p := basePattern(PatternGrid)
	p.Params = PatternParams{LineWidth: 2, CellSize: 20}
	RenderPattern(pm, p)

	if got := pm.GetPixel(40, 10); got.R > 0.1 {
		t.Errorf("pixel on a vertical line = %v, want fg", got)
	}
	if got := pm.GetPixel(10, 60); got.R > 0.1 {
		t.Errorf("pixel on a horizontal line = %v, want fg", got)
	}
	if got := pm.GetPixel(10, 10); got.R < 0.9 {
		t.Errorf("pixel inside a cell = %v, want bg", got)
	}
}

func TestRenderPatternOpacity(t *testing.T) {
	pm := NewPixmap(30, 30)
	p := basePattern(PatternStripes)
	p.Opacity = 0.5
	p.Params = PatternParams{Thickness: 30, Spacing: 1}
	RenderPattern(pm, p)

	// Full-coverage stripe at half opacity over white: mid gray.
	got := pm.GetPixel(15, 15)
	if got.R < 0.4 || got.R > 0.6 {
		t.Errorf("half-opacity pixel = %v, want mid gray", got)
	}
}

func TestRenderPatternRotationKeepsCoverage(t *testing.T) {
	pm := NewPixmap(60, 60)
	p := basePattern(PatternStripes)
	p.Rotation = 90
	p.Params = PatternParams{Thickness: 10, Spacing: 20}
	RenderPattern(pm, p)

	// Rotated 90 degrees, the vertical bands run horizontally: scanning
	// down a column must cross both fg and bg.
	sawFG, sawBG := false, false
	for y := 0; y < 60; y++ {
		c := pm.GetPixel(30, y)
		if c.R < 0.1 {
			sawFG = true
		}
		if c.R > 0.9 {
			sawBG = true
		}
	}
	if !sawFG || !sawBG {
		t.Errorf("rotated stripes: sawFG=%v sawBG=%v, want both along a column", sawFG, sawBG)
	}
}

func TestRenderPatternScaleWidensBands(t *testing.T) {
	// Width of the contiguous band at the transform anchor (the surface
	// center), which scale stretches in place.
	runLen := func(scale float64) int {
		pm := NewPixmap(120, 20)
		p := basePattern(PatternStripes)
		p.Scale = scale
		p.Params = PatternParams{Thickness: 10, Spacing: 20}
		RenderPattern(pm, p)
		n := 0
		for x := 60; x < 120 && pm.GetPixel(x, 10).R < 0.1; x++ {
			n++
		}
		return n
	}

	r1, r2 := runLen(1), runLen(2)
	if r1 == 0 || r2 <= r1 {
		t.Errorf("band width at scale 2 = %d px, want wider than %d px at scale 1", r2, r1)
	}
}

func TestRenderPatternNoise(t *testing.T) {
	p := basePattern(PatternNoise)
	p.Params = PatternParams{Intensity: 1, Roughness: 0.5}

	pm := NewPixmap(50, 50)
	RenderPattern(pm, p)

	distinct := map[RGBA]bool{}
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			c := pm.GetPixel(x, y)
			if c.A != 1 {
				t.Fatalf("noise pixel alpha = %v, want opaque", c.A)
			}
			distinct[c] = true
		}
	}
	if len(distinct) < 2 {
		t.Error("noise produced a flat fill")
	}
}

// Noise is documented as unseeded: two renders of the same config differ.
func TestRenderPatternNoiseIsNondeterministic(t *testing.T) {
	p := basePattern(PatternNoise)
	p.Params = PatternParams{Intensity: 1, Roughness: 0.5}

	a := NewPixmap(50, 50)
	b := NewPixmap(50, 50)
	RenderPattern(a, p)
	RenderPattern(b, p)

	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			return
		}
	}
	t.Error("two noise renders were pixel-identical")
}

// Every noise pixel is a blend of bg and fg, so each channel stays inside
// the range the two endpoints span.
func TestRenderPatternNoiseStaysInRange(t *testing.T) {
	p := basePattern(PatternNoise)
	p.FG = "#000000"
	p.BG = "#336699"
	p.Params = PatternParams{Intensity: 1, Roughness: 0.5}

	pm := NewPixmap(20, 20)
	RenderPattern(pm, p)

	bg := Hex(p.BG)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			c := pm.GetPixel(x, y)
			if c.R > bg.R+colorEpsilon || c.G > bg.G+colorEpsilon || c.B > bg.B+colorEpsilon {
				t.Fatalf("pixel (%d,%d) = %v, brighter than bg %v", x, y, c, bg)
			}
		}
	}
}
