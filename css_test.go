package backdrop

import "testing"

func TestGradientCSS(t *testing.T) {
	tests := []struct {
		name string
		g    GradientConfig
		want string
	}{
		{
			name: "linear",
			g: GradientConfig{
				Kind:  GradientLinear,
				Angle: 135,
				Stops: []GradientStop{
					{Pos: 0, Color: "#8B5CF6"},
					{Pos: 1, Color: "#3B82F6"},
				},
			},
			want: "linear-gradient(135deg, #8B5CF6 0%, #3B82F6 100%)",
		},
		{
			name: "radial circle",
			g: GradientConfig{
				Kind:   GradientRadial,
				Center: Position{X: 0.25, Y: 0.75},
				Shape:  ShapeCircle,
				Stops: []GradientStop{
					{Pos: 0, Color: "#FFFFFF"},
					{Pos: 1, Color: "#000000"},
				},
			},
			want: "radial-gradient(circle at 25% 75%, #FFFFFF 0%, #000000 100%)",
		},
		{
			name: "radial ellipse rounds center",
			g: GradientConfig{
				Kind:   GradientRadial,
				Center: Position{X: 0.333, Y: 0.666},
				Shape:  ShapeEllipse,
				Stops: []GradientStop{
					{Pos: 0, Color: "#FF0000"},
					{Pos: 1, Color: "#0000FF"},
				},
			},
			want: "radial-gradient(ellipse at 33% 67%, #FF0000 0%, #0000FF 100%)",
		},
		{
			name: "conic",
			g: GradientConfig{
				Kind:   GradientConic,
				Angle:  45,
				Center: Position{X: 0.5, Y: 0.5},
				Stops: []GradientStop{
					{Pos: 0, Color: "#FF0000"},
					{Pos: 1, Color: "#00FF00"},
				},
			},
			want: "conic-gradient(from 45deg at 50% 50%, #FF0000 0%, #00FF00 100%)",
		},
		{
			name: "repeating conic",
			g: GradientConfig{
				Kind:   GradientConic,
				Angle:  0,
				Center: Position{X: 0.5, Y: 0.5},
				Repeat: true,
				Stops: []GradientStop{
					{Pos: 0, Color: "#FF0000"},
					{Pos: 0.25, Color: "#00FF00"},
				},
			},
			want: "repeating-conic-gradient(from 0deg at 50% 50%, #FF0000 0%, #00FF00 25%)",
		},
		{
			name: "fractional angle",
			g: GradientConfig{
				Kind:  GradientLinear,
				Angle: 22.5,
				Stops: []GradientStop{
					{Pos: 0, Color: "#000000"},
					{Pos: 1, Color: "#FFFFFF"},
				},
			},
			want: "linear-gradient(22.5deg, #000000 0%, #FFFFFF 100%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradientCSS(tt.g); got != tt.want {
				t.Errorf("GradientCSS = %q, want %q", got, tt.want)
			}
		})
	}
}

// Stops render in ascending position order no matter how the producer
// ordered them.
func TestGradientCSSSortsStops(t *testing.T) {
	g := GradientConfig{
		Kind:  GradientLinear,
		Angle: 90,
		Stops: []GradientStop{
			{Pos: 1, Color: "#00F"},
			{Pos: 0, Color: "#F00"},
			{Pos: 0.5, Color: "#0F0"},
		},
	}
	want := "linear-gradient(90deg, #F00 0%, #0F0 50%, #00F 100%)"
	if got := GradientCSS(g); got != want {
		t.Errorf("GradientCSS = %q, want %q", got, want)
	}
	// Input order must be untouched.
	if g.Stops[0].Pos != 1 {
		t.Error("GradientCSS mutated its input stops")
	}
}

func TestFillCSS(t *testing.T) {
	s := DefaultState()

	s.Type = TypeSolid
	s.Solid.Color = "#0EA5E9"
	if got := FillCSS(s); got != "#0EA5E9" {
		t.Errorf("solid FillCSS = %q", got)
	}

	s.Type = TypeGradient
	if got := FillCSS(s); got != GradientCSS(s.Gradient) {
		t.Errorf("gradient FillCSS = %q", got)
	}

	s.Type = TypeUpload
	s.Upload = &UploadConfig{DataURL: "data:image/png;base64,AA"}
	if got := FillCSS(s); got != `url("data:image/png;base64,AA")` {
		t.Errorf("upload FillCSS = %q", got)
	}

	s.Type = TypePattern
	if got := FillCSS(s); got != s.Pattern.BG {
		t.Errorf("pattern FillCSS = %q, want bg fallback %q", got, s.Pattern.BG)
	}
}
