package backdrop

// The legacy per-layer schema predates the unified background model. It
// keeps gradient stop positions and focal positions on a 0-100 percent
// scale, pattern scale as a percentage, and a catch-all Value field holding
// the solid color or upload data URL depending on Mode. Both directions of
// the bridge are pure and total: unknown or out-of-scope layer fields pass
// through untouched.

// LegacyStop is a gradient stop with Position in [0,100].
type LegacyStop struct {
	Position float64 `json:"position"`
	Color    string  `json:"color"`
}

// LegacyPoint is a percent-scaled coordinate pair in [0,100]x[0,100].
type LegacyPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LegacyGradient is the old gradient block.
type LegacyGradient struct {
	Type          string       `json:"type"`
	Angle         float64      `json:"angle"`
	Stops         []LegacyStop `json:"stops"`
	FocalPosition LegacyPoint  `json:"focalPosition"`
	Shape         string       `json:"shape"`
	Repeat        bool         `json:"repeat"`
}

// LegacyPattern is the old pattern block. Scale is a percentage where
// 100 means 1x.
type LegacyPattern struct {
	Name       string  `json:"name"`
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Scale      float64 `json:"scale"`
	Rotation   float64 `json:"rotation"`
	Opacity    float64 `json:"opacity"`

	Radius    float64 `json:"radius,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`
	CellSize  float64 `json:"cellSize,omitempty"`
	Intensity float64 `json:"intensity,omitempty"`
	Roughness float64 `json:"roughness,omitempty"`
	Spacing   float64 `json:"spacing,omitempty"`
}

// LegacyLayer is the background slice of an old document layer. ID, Name,
// Visible and BlendMode have no unified equivalent and survive ToLegacy
// unchanged from the existing layer.
type LegacyLayer struct {
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Visible   bool            `json:"visible"`
	BlendMode string          `json:"blendMode,omitempty"`
	Mode      string          `json:"mode"`
	Value     string          `json:"value,omitempty"`
	Filename  string          `json:"filename,omitempty"`
	Gradient  *LegacyGradient `json:"gradient,omitempty"`
	Pattern   *LegacyPattern  `json:"pattern,omitempty"`
}

// ToUnified converts a legacy layer into a unified BackgroundState
// fragment. Blocks the layer does not carry keep their defaults, so the
// result always satisfies Validate's structural invariants.
func ToUnified(layer LegacyLayer) BackgroundState {
	s := DefaultState()

	switch layer.Mode {
	case "solid":
		s.Type = TypeSolid
	case "gradient":
		s.Type = TypeGradient
	case "pattern":
		s.Type = TypePattern
	case "upload":
		s.Type = TypeUpload
	default:
		s.Type = TypeGradient
	}

	if layer.Mode == "solid" && layer.Value != "" {
		s.Solid.Color = layer.Value
	}
	if layer.Mode == "upload" && layer.Value != "" {
		s.Upload = &UploadConfig{DataURL: layer.Value, Filename: layer.Filename}
	}

	if g := layer.Gradient; g != nil {
		cfg := GradientConfig{
			Kind:   GradientKind(g.Type),
			Angle:  g.Angle,
			Center: Position{X: g.FocalPosition.X / 100, Y: g.FocalPosition.Y / 100},
			Shape:  GradientShape(g.Shape),
			Repeat: g.Repeat,
		}
		if cfg.Kind == "" {
			cfg.Kind = GradientLinear
		}
		if cfg.Shape == "" {
			cfg.Shape = ShapeCircle
		}
		for _, st := range g.Stops {
			cfg.Stops = append(cfg.Stops, GradientStop{
				Pos:   st.Position / 100,
				Color: st.Color,
			})
		}
		if len(cfg.Stops) >= MinGradientStops {
			s.Gradient = cfg
		}
	}

	if p := layer.Pattern; p != nil {
		cfg := PatternConfig{
			Name:     PatternName(p.Name),
			FG:       p.Foreground,
			BG:       p.Background,
			Scale:    p.Scale / 100,
			Rotation: p.Rotation,
			Opacity:  p.Opacity,
			Params: PatternParams{
				Radius:    p.Radius,
				Thickness: p.Thickness,
				LineWidth: p.LineWidth,
				CellSize:  p.CellSize,
				Intensity: p.Intensity,
				Roughness: p.Roughness,
				Spacing:   p.Spacing,
			},
		}
		if cfg.Name == "" {
			cfg.Name = PatternDots
		}
		if !(cfg.Scale > 0) {
			cfg.Scale = 1
		}
		s.Pattern = cfg
	}

	return s
}

// ToLegacy maps a unified state back onto an existing legacy layer,
// multiplying normalized fields back to percent scale and repopulating the
// Mode discriminator and Value field. Fields the unified model cannot
// represent are carried over from existing unchanged.
func ToLegacy(s BackgroundState, existing LegacyLayer) LegacyLayer {
	out := existing
	out.Mode = string(s.Type)

	switch s.Type {
	case TypeSolid:
		out.Value = s.Solid.Color
	case TypeUpload:
		if s.Upload != nil {
			out.Value = s.Upload.DataURL
			out.Filename = s.Upload.Filename
		}
	default:
		out.Value = ""
	}

	lg := LegacyGradient{
		Type:  string(s.Gradient.Kind),
		Angle: s.Gradient.Angle,
		FocalPosition: LegacyPoint{
			X: s.Gradient.Center.X * 100,
			Y: s.Gradient.Center.Y * 100,
		},
		Shape:  string(s.Gradient.Shape),
		Repeat: s.Gradient.Repeat,
	}
	for _, st := range s.Gradient.Stops {
		lg.Stops = append(lg.Stops, LegacyStop{
			Position: st.Pos * 100,
			Color:    st.Color,
		})
	}
	out.Gradient = &lg

	out.Pattern = &LegacyPattern{
		Name:       string(s.Pattern.Name),
		Foreground: s.Pattern.FG,
		Background: s.Pattern.BG,
		Scale:      s.Pattern.Scale * 100,
		Rotation:   s.Pattern.Rotation,
		Opacity:    s.Pattern.Opacity,
		Radius:     s.Pattern.Params.Radius,
		Thickness:  s.Pattern.Params.Thickness,
		LineWidth:  s.Pattern.Params.LineWidth,
		CellSize:   s.Pattern.Params.CellSize,
		Intensity:  s.Pattern.Params.Intensity,
		Roughness:  s.Pattern.Params.Roughness,
		Spacing:    s.Pattern.Params.Spacing,
	}

	return out
}
