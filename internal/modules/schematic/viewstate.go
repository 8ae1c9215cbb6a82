package schematic

// Zoom limits for the viewer. Values outside this range are clamped so the
// canvas can never zoom to nothing or to an unusable magnification.
const (
	MinZoom  = 0.25
	MaxZoom  = 4.0
	ZoomStep = 1.25
)

// ViewState is the viewer's ephemeral zoom/pan state. It is owned by the
// caller and never stored server-side.
type ViewState struct {
	Zoom float64 `json:"zoom"`
	PanX float64 `json:"pan_x"`
	PanY float64 `json:"pan_y"`
}

// NewViewState returns the initial view: 1:1 zoom, no pan.
func NewViewState() ViewState {
	return ViewState{Zoom: 1.0}
}

// ZoomIn returns the state zoomed in one step, clamped to MaxZoom.
func (v ViewState) ZoomIn() ViewState {
	v.Zoom = clampZoom(v.Zoom * ZoomStep)
	return v
}

// ZoomOut returns the state zoomed out one step, clamped to MinZoom.
func (v ViewState) ZoomOut() ViewState {
	v.Zoom = clampZoom(v.Zoom / ZoomStep)
	return v
}

// Pan returns the state translated by (dx, dy) in canvas units.
func (v ViewState) Pan(dx, dy float64) ViewState {
	v.PanX += dx
	v.PanY += dy
	return v
}

// Reset returns the initial view state.
func (v ViewState) Reset() ViewState {
	return NewViewState()
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
