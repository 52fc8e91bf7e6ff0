package backdrop

import (
	"math/rand/v2"
	"sort"
)

// generatorStream is the second PCG seed word. Fixed so that the whole
// output is a function of the caller's seed alone.
const generatorStream = 0x6261636B64726F70 // "backdrop"

// GenerateGradient deterministically synthesizes a gradient from an
// integer seed: the same seed always yields a byte-identical
// configuration, so a randomize action can be replayed from its recorded
// seed. Output shape: 2-5 stops with exactly one at position 0 and one at
// position 1 (interior stops land on whole-percent positions), uppercase
// 6-digit hex colors on an analogous hue walk, and kind-specific angle,
// center, shape and repeat fields.
func GenerateGradient(seed int64) GradientConfig {
	rng := rand.New(rand.NewPCG(uint64(seed), generatorStream))

	cfg := GradientConfig{
		Center: Position{X: 0.5, Y: 0.5},
		Shape:  ShapeCircle,
		Seed:   seed,
	}

	switch rng.IntN(3) {
	case 0:
		cfg.Kind = GradientLinear
	case 1:
		cfg.Kind = GradientRadial
	default:
		cfg.Kind = GradientConic
	}

	count := 2 + rng.IntN(4)
	positions := make([]float64, 0, count)
	positions = append(positions, 0, 1)
	for i := 2; i < count; i++ {
		// Interior stops stay on whole-percent granularity, clear of the
		// pinned endpoints.
		positions = append(positions, float64(5+rng.IntN(91))/100)
	}
	sort.Float64s(positions)

	// Analogous palette: walk the hue wheel in a random stride from a
	// random base, with saturation and lightness jittered per stop.
	baseHue := float64(rng.IntN(360))
	stride := 20 + float64(rng.IntN(50))
	for i, pos := range positions {
		h := baseHue + stride*float64(i)
		s := 0.55 + rng.Float64()*0.35
		l := 0.40 + rng.Float64()*0.25
		cfg.Stops = append(cfg.Stops, GradientStop{
			Pos:   pos,
			Color: HSL(h, s, l).HexString(),
		})
	}

	switch cfg.Kind {
	case GradientLinear:
		cfg.Angle = float64(rng.IntN(360))
	case GradientRadial:
		cfg.Center = randomCenter(rng)
		if rng.IntN(2) == 1 {
			cfg.Shape = ShapeEllipse
		}
	case GradientConic:
		cfg.Angle = float64(rng.IntN(360))
		cfg.Center = randomCenter(rng)
		cfg.Repeat = rng.IntN(3) == 0
	}

	return cfg
}

// randomCenter picks a center on a 5% grid inside the middle of the
// surface, so generated gradients never pin their focus to an edge.
func randomCenter(rng *rand.Rand) Position {
	return Position{
		X: float64(20+5*rng.IntN(13)) / 100,
		Y: float64(20+5*rng.IntN(13)) / 100,
	}
}
