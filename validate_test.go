package backdrop

import (
	"math"
	"testing"
)

func TestValidateDefaultState(t *testing.T) {
	if !Validate(DefaultState()) {
		t.Fatal("DefaultState must validate")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BackgroundState)
		want   bool
	}{
		{"unchanged default", func(*BackgroundState) {}, true},
		{"missing type", func(s *BackgroundState) { s.Type = "" }, false},
		{"unknown type", func(s *BackgroundState) { s.Type = "plaid" }, false},
		{"solid ok", func(s *BackgroundState) {
			s.Type = TypeSolid
		}, true},
		{"solid empty color", func(s *BackgroundState) {
			s.Type = TypeSolid
			s.Solid.Color = ""
		}, false},
		{"gradient one stop", func(s *BackgroundState) {
			s.Gradient.Stops = s.Gradient.Stops[:1]
		}, false},
		{"gradient eleven stops", func(s *BackgroundState) {
			s.Gradient.Stops = make([]GradientStop, 11)
			for i := range s.Gradient.Stops {
				s.Gradient.Stops[i] = GradientStop{Pos: float64(i) / 10, Color: "#FFFFFF"}
			}
		}, false},
		{"gradient NaN pos", func(s *BackgroundState) {
			s.Gradient.Stops[0].Pos = math.NaN()
		}, false},
		{"gradient infinite pos", func(s *BackgroundState) {
			s.Gradient.Stops[1].Pos = math.Inf(1)
		}, false},
		{"gradient stop without color", func(s *BackgroundState) {
			s.Gradient.Stops[0].Color = ""
		}, false},
		{"pattern ok", func(s *BackgroundState) {
			s.Type = TypePattern
		}, true},
		{"pattern unknown name", func(s *BackgroundState) {
			s.Type = TypePattern
			s.Pattern.Name = "zigzag"
		}, false},
		{"pattern zero scale", func(s *BackgroundState) {
			s.Type = TypePattern
			s.Pattern.Scale = 0
		}, false},
		{"upload without config", func(s *BackgroundState) {
			s.Type = TypeUpload
		}, false},
		{"upload ok", func(s *BackgroundState) {
			s.Type = TypeUpload
			s.Upload = &UploadConfig{DataURL: "data:image/png;base64,AAAA"}
		}, true},
		{"upload empty data url", func(s *BackgroundState) {
			s.Type = TypeUpload
			s.Upload = &UploadConfig{}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			tt.mutate(&s)
			if got := Validate(s); got != tt.want {
				t.Errorf("Validate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := DefaultState()
	s.Upload = &UploadConfig{DataURL: "data:x", NaturalSize: &Size{W: 10, H: 20}}
	s.Palettes.Recents = []string{"#FF0000"}

	c := s.Clone()
	c.Gradient.Stops[0].Color = "#123456"
	c.Upload.DataURL = "data:y"
	c.Upload.NaturalSize.W = 99
	c.Palettes.Recents[0] = "#000000"

	if s.Gradient.Stops[0].Color == "#123456" {
		t.Error("clone shares gradient stops")
	}
	if s.Upload.DataURL == "data:y" || s.Upload.NaturalSize.W == 99 {
		t.Error("clone shares upload config")
	}
	if s.Palettes.Recents[0] == "#000000" {
		t.Error("clone shares palette slices")
	}
}
