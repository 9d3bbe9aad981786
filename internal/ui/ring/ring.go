package ring

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ringtimer/internal/present"
)

const (
	segmentCount      = 120
	degreesPerSegment = 360.0 / segmentCount
	defaultThickness  = float32(10)
	minDiameter       = float32(180)
)

// Ring is a circular progress indicator. The full background ring is always
// drawn; the progress arc starts at 12 o'clock and sweeps clockwise in
// proportion to the current fraction. The arc is approximated with short
// line segments because the canvas package has no arc primitive.
type Ring struct {
	widget.BaseWidget

	mu        sync.Mutex
	progress  float64
	thickness float32
}

// New creates a ring showing no progress.
func New() *Ring {
	ring := &Ring{thickness: defaultThickness}
	ring.ExtendBaseWidget(ring)
	return ring
}

// SetProgress updates the drawn fraction. Values outside [0, 1] are clamped.
func (ring *Ring) SetProgress(progress float64) {
	ring.mu.Lock()
	ring.progress = clampProgress(progress)
	ring.mu.Unlock()
	ring.Refresh()
}

// Progress returns the currently drawn fraction.
func (ring *Ring) Progress() float64 {
	ring.mu.Lock()
	defer ring.mu.Unlock()
	return ring.progress
}

// CreateRenderer implements fyne.Widget.
func (ring *Ring) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewCircle(color.Transparent)
	track.StrokeColor = theme.Color(theme.ColorNameDisabled)
	track.StrokeWidth = ring.thickness

	segments := make([]*canvas.Line, segmentCount)
	objects := make([]fyne.CanvasObject, 0, segmentCount+1)
	objects = append(objects, track)
	for index := range segments {
		segment := canvas.NewLine(theme.Color(theme.ColorNamePrimary))
		segment.StrokeWidth = ring.thickness
		segment.Hide()
		segments[index] = segment
		objects = append(objects, segment)
	}

	return &ringRenderer{ring: ring, track: track, segments: segments, objects: objects}
}

type ringRenderer struct {
	ring     *Ring
	track    *canvas.Circle
	segments []*canvas.Line
	objects  []fyne.CanvasObject
}

func (renderer *ringRenderer) Layout(size fyne.Size) {
	thickness := renderer.ring.thickness
	diameter := size.Width
	if size.Height < diameter {
		diameter = size.Height
	}
	diameter -= thickness
	if diameter < 0 {
		diameter = 0
	}

	center := fyne.NewPos(size.Width/2, size.Height/2)
	radius := diameter / 2

	renderer.track.Resize(fyne.NewSize(diameter, diameter))
	renderer.track.Move(fyne.NewPos(center.X-radius, center.Y-radius))

	for index, segment := range renderer.segments {
		from := float64(present.RingStartDegrees) + float64(index)*degreesPerSegment
		segment.Position1 = pointOnCircle(center, radius, from)
		segment.Position2 = pointOnCircle(center, radius, from+degreesPerSegment)
	}
}

func (renderer *ringRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minDiameter, minDiameter)
}

func (renderer *ringRenderer) Refresh() {
	renderer.track.StrokeColor = theme.Color(theme.ColorNameDisabled)
	visible := visibleSegments(renderer.ring.Progress())
	for index, segment := range renderer.segments {
		segment.StrokeColor = theme.Color(theme.ColorNamePrimary)
		if index < visible {
			segment.Show()
		} else {
			segment.Hide()
		}
	}
	canvas.Refresh(renderer.ring)
}

func (renderer *ringRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *ringRenderer) Destroy() {}

func clampProgress(progress float64) float64 {
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// visibleSegments maps a progress fraction to the number of arc segments
// drawn. Zero progress draws no arc at all; any non-zero fraction shows at
// least one segment.
func visibleSegments(progress float64) int {
	if progress <= 0 {
		return 0
	}
	sweep := 360 * clampProgress(progress)
	count := int(math.Round(sweep / degreesPerSegment))
	if count < 1 {
		count = 1
	}
	if count > segmentCount {
		count = segmentCount
	}
	return count
}

func pointOnCircle(center fyne.Position, radius float32, degrees float64) fyne.Position {
	radians := degrees * math.Pi / 180
	x := center.X + radius*float32(math.Cos(radians))
	y := center.Y + radius*float32(math.Sin(radians))
	return fyne.NewPos(x, y)
}
