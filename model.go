package backdrop

// BackgroundType selects which fill variant is active.
// All four variant configurations stay resident in a BackgroundState so
// switching types never loses previously entered settings.
type BackgroundType string

const (
	TypeSolid    BackgroundType = "solid"
	TypeGradient BackgroundType = "gradient"
	TypePattern  BackgroundType = "pattern"
	TypeUpload   BackgroundType = "upload"
)

// GradientKind identifies the gradient geometry.
type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
	GradientConic  GradientKind = "conic"
)

// GradientShape is the radial gradient ending shape.
type GradientShape string

const (
	ShapeCircle  GradientShape = "circle"
	ShapeEllipse GradientShape = "ellipse"
)

// PatternName identifies a procedural pattern.
type PatternName string

const (
	PatternDots    PatternName = "dots"
	PatternStripes PatternName = "stripes"
	PatternGrid    PatternName = "grid"
	PatternNoise   PatternName = "noise"
)

// Position is a pair of normalized coordinates in [0,1]x[0,1] with the
// origin at the top-left. Gradient centers are expressed this way so they
// are independent of surface size.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GradientStop is one color anchor in a gradient.
// Pos is normalized to [0,1]. Producers need not keep stops sorted;
// every consumer sorts by Pos ascending before use.
type GradientStop struct {
	Pos   float64 `json:"pos"`
	Color string  `json:"color"`
}

// GradientConfig describes a linear, radial or conic gradient.
//
// Angle is meaningful for linear (direction) and conic (start angle);
// Center and Shape for radial and conic; Repeat only for conic. Seed, when
// non-zero, records the generator input that produced this config; it is
// reproducibility metadata and never affects rendering.
type GradientConfig struct {
	Kind   GradientKind   `json:"kind"`
	Angle  float64        `json:"angle"`
	Center Position       `json:"center"`
	Shape  GradientShape  `json:"shape"`
	Repeat bool           `json:"repeat"`
	Stops  []GradientStop `json:"stops"`
	Seed   int64          `json:"seed,omitempty"`
}

// Stop count bounds enforced by the store's stop mutations.
const (
	MinGradientStops = 2
	MaxGradientStops = 10
)

// PatternParams holds the per-pattern tuning knobs. Which fields are
// meaningful depends on the pattern name; the rest are ignored.
type PatternParams struct {
	Radius    float64 `json:"radius,omitempty"`    // dots
	Thickness float64 `json:"thickness,omitempty"` // stripes
	LineWidth float64 `json:"lineWidth,omitempty"` // grid
	CellSize  float64 `json:"cellSize,omitempty"`  // grid
	Intensity float64 `json:"intensity,omitempty"` // noise, [0,1]
	Roughness float64 `json:"roughness,omitempty"` // noise, [0,1]
	Spacing   float64 `json:"spacing,omitempty"`   // dots, stripes
}

// PatternConfig describes a procedural pattern fill.
// Scale is a multiplier (1 = 100%); Rotation is degrees in [0,360);
// Opacity applies to the foreground geometry only.
type PatternConfig struct {
	Name     PatternName   `json:"name"`
	FG       string        `json:"fg"`
	BG       string        `json:"bg"`
	Scale    float64       `json:"scale"`
	Rotation float64       `json:"rotation"`
	Opacity  float64       `json:"opacity"`
	Params   PatternParams `json:"params"`
}

// SolidConfig is a single flat color.
type SolidConfig struct {
	Color string `json:"color"`
}

// Size is a pixel dimension pair.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// UploadConfig describes a user-uploaded background image.
type UploadConfig struct {
	DataURL     string `json:"dataUrl"`
	Filename    string `json:"filename,omitempty"`
	NaturalSize *Size  `json:"naturalSize,omitempty"`
}

// SavedSwatch is a named, persisted palette color.
type SavedSwatch struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Palette capacity bounds.
const (
	MaxRecentColors  = 12
	MaxSavedSwatches = 24
)

// PaletteState is a cached snapshot of the external palette store.
// The engine reads it for swatch display; it is never authoritative here
// and the engine never writes the palette subsystem's keys.
type PaletteState struct {
	Recents []string      `json:"recents"`
	Saved   []SavedSwatch `json:"saved"`
	Active  []string      `json:"active"`
}

// BackgroundState is the aggregate root of the engine: the active type
// plus all four variant configurations and the palette snapshot.
// Upload is nil until the first upload action.
type BackgroundState struct {
	Type     BackgroundType `json:"type"`
	Solid    SolidConfig    `json:"solid"`
	Gradient GradientConfig `json:"gradient"`
	Pattern  PatternConfig  `json:"pattern"`
	Upload   *UploadConfig  `json:"upload,omitempty"`
	Palettes PaletteState   `json:"palettes"`
}

// DefaultState returns the state a fresh store starts from: the
// purple-blue linear gradient active, white solid and dot pattern staged,
// empty palettes.
func DefaultState() BackgroundState {
	return BackgroundState{
		Type:  TypeGradient,
		Solid: SolidConfig{Color: "#FFFFFF"},
		Gradient: GradientConfig{
			Kind:   GradientLinear,
			Angle:  135,
			Center: Position{X: 0.5, Y: 0.5},
			Shape:  ShapeCircle,
			Stops: []GradientStop{
				{Pos: 0, Color: "#8B5CF6"},
				{Pos: 1, Color: "#3B82F6"},
			},
		},
		Pattern: PatternConfig{
			Name:    PatternDots,
			FG:      "#1F2937",
			BG:      "#F9FAFB",
			Scale:   1,
			Opacity: 1,
			Params: PatternParams{
				Radius:  3,
				Spacing: 20,
			},
		},
	}
}

// Clone returns a deep copy of the state. History snapshots and values
// handed to subscribers are always clones so callers can never mutate
// store-owned memory.
func (s BackgroundState) Clone() BackgroundState {
	out := s
	out.Gradient.Stops = append([]GradientStop(nil), s.Gradient.Stops...)
	if s.Upload != nil {
		up := *s.Upload
		if s.Upload.NaturalSize != nil {
			sz := *s.Upload.NaturalSize
			up.NaturalSize = &sz
		}
		out.Upload = &up
	}
	out.Palettes.Recents = append([]string(nil), s.Palettes.Recents...)
	out.Palettes.Saved = append([]SavedSwatch(nil), s.Palettes.Saved...)
	out.Palettes.Active = append([]string(nil), s.Palettes.Active...)
	return out
}
