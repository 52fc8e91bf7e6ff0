package backdrop

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// colorRamp is a gradient's stop list resolved into sorted positions and
// parsed colors, ready for repeated lookups.
type colorRamp struct {
	pos    []float64
	colors []RGBA
}

func newColorRamp(stops []GradientStop) colorRamp {
	sorted := sortedStops(stops)
	r := colorRamp{
		pos:    make([]float64, len(sorted)),
		colors: make([]RGBA, len(sorted)),
	}
	for i, st := range sorted {
		r.pos[i] = st.Pos
		r.colors[i] = Hex(st.Color)
	}
	return r
}

// colorAt returns the ramp color at t: clamped to the end colors outside
// the stop range, channel-wise linear interpolation between the bracketing
// stops inside it.
func (r colorRamp) colorAt(t float64) RGBA {
	n := len(r.pos)
	if n == 0 {
		return Transparent
	}
	if n == 1 || t <= r.pos[0] {
		return r.colors[0]
	}
	if t >= r.pos[n-1] {
		return r.colors[n-1]
	}

	// Find the bracketing pair. Stop counts are capped at 10, so a linear
	// scan beats a binary search here.
	i := 1
	for i < n && r.pos[i] < t {
		i++
	}
	lo, hi := i-1, i
	span := r.pos[hi] - r.pos[lo]
	if span == 0 {
		return r.colors[lo]
	}
	local := (t - r.pos[lo]) / span
	return r.colors[lo].Lerp(r.colors[hi], local)
}

// RenderGradient rasterizes a gradient configuration onto pm. It reads
// the configuration and never mutates it.
func RenderGradient(pm *Pixmap, g GradientConfig) {
	switch g.Kind {
	case GradientRadial:
		renderRadial(pm, g)
	case GradientConic:
		renderConic(pm, g)
	default:
		renderLinear(pm, g)
	}
}

// renderLinear fills pm with a linear gradient. The gradient line passes
// through the surface midpoint at angle-90 degrees (0 points up, matching
// the CSS convention) and spans the larger surface dimension.
func renderLinear(pm *Pixmap, g GradientConfig) {
	ramp := newColorRamp(g.Stops)
	w, h := float64(pm.Width()), float64(pm.Height())

	rad := (g.Angle - 90) * math.Pi / 180
	length := math.Max(w, h)
	dx := math.Cos(rad) * length
	dy := math.Sin(rad) * length
	x0 := w/2 - dx/2
	y0 := h/2 - dy/2

	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		pm.Clear(ramp.colorAt(0))
		return
	}

	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			px := float64(x) + 0.5 - x0
			py := float64(y) + 0.5 - y0
			t := (px*dx + py*dy) / lengthSq
			pm.SetPixel(x, y, ramp.colorAt(t))
		}
	}
}

// renderRadial fills pm with a radial gradient centered at the normalized
// center scaled to pixel space. The reference radius is half the smaller
// dimension; an ellipse stretches the horizontal radius by the surface
// aspect ratio.
func renderRadial(pm *Pixmap, g GradientConfig) {
	ramp := newColorRamp(g.Stops)
	w, h := float64(pm.Width()), float64(pm.Height())

	cx := g.Center.X * w
	cy := g.Center.Y * h
	radius := math.Min(w, h) / 2
	if radius == 0 {
		return
	}
	rx, ry := radius, radius
	if g.Shape == ShapeEllipse && h != 0 {
		rx = radius * (w / h)
	}

	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			t := math.Sqrt(dx*dx + dy*dy)
			pm.SetPixel(x, y, ramp.colorAt(t))
		}
	}
}

// conicWedges is the number of discrete angular steps used to approximate
// a conic gradient. The stepped look is intentional and must not be
// replaced with a continuous sweep: downstream visuals and the randomize
// feature assume it.
const conicWedges = 360

// renderConic fills pm with a conic gradient approximated by conicWedges
// solid wedges swept clockwise from the start angle. Each wedge color is
// the ramp color at the wedge's normalized position.
func renderConic(pm *Pixmap, g GradientConfig) {
	ramp := newColorRamp(g.Stops)
	w, h := float64(pm.Width()), float64(pm.Height())
	cx := g.Center.X * w
	cy := g.Center.Y * h

	wedge := make([]RGBA, conicWedges)
	for i := range wedge {
		t := (float64(i) + 0.5) / conicWedges
		if g.Repeat {
			t = repeatRampT(ramp, t)
		}
		wedge[i] = ramp.colorAt(t)
	}

	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			// Angle measured clockwise from straight up, per the CSS
			// "from <angle>" convention.
			deg := math.Atan2(dx, -dy)*180/math.Pi - g.Angle
			deg = math.Mod(deg, 360)
			if deg < 0 {
				deg += 360
			}
			i := int(deg)
			if i >= conicWedges {
				i = conicWedges - 1
			}
			pm.SetPixel(x, y, wedge[i])
		}
	}
}

// repeatRampT tiles t over the ramp's stop span, the raster counterpart
// of repeating-conic-gradient.
func repeatRampT(r colorRamp, t float64) float64 {
	n := len(r.pos)
	if n < 2 {
		return t
	}
	first, last := r.pos[0], r.pos[n-1]
	span := last - first
	if span <= 0 {
		return t
	}
	t = math.Mod(t-first, span)
	if t < 0 {
		t += span
	}
	return first + t
}

// uploadCache holds decoded upload images keyed by data URL so repeated
// renders of the same upload skip the base64 decode and image parse.
var uploadCache, _ = lru.New[string, image.Image](16)

// decodeDataURL parses a base64 "data:image/..." URL into an image.
func decodeDataURL(dataURL string) (image.Image, bool) {
	if img, ok := uploadCache.Get(dataURL); ok {
		return img, true
	}

	comma := strings.IndexByte(dataURL, ',')
	if !strings.HasPrefix(dataURL, "data:") || comma < 0 {
		return nil, false
	}
	if !strings.Contains(dataURL[:comma], ";base64") {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[comma+1:])
	if err != nil {
		return nil, false
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, false
	}

	uploadCache.Add(dataURL, img)
	return img, true
}

// RenderBackground rasterizes whichever fill variant is active in s.
// Unrenderable uploads (missing or undecodable data URL) leave a white
// surface rather than failing: rendering can never block the editor.
func RenderBackground(pm *Pixmap, s BackgroundState) {
	switch s.Type {
	case TypeSolid:
		pm.Clear(Hex(s.Solid.Color))
	case TypeGradient:
		RenderGradient(pm, s.Gradient)
	case TypePattern:
		RenderPattern(pm, s.Pattern)
	case TypeUpload:
		pm.Clear(White)
		if s.Upload == nil {
			return
		}
		if img, ok := decodeDataURL(s.Upload.DataURL); ok {
			pm.DrawImageCover(img)
		}
	}
}
