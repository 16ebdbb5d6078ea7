package softkeys

import "fmt"

// Layer is a named keyboard mode with its own character set and row template.
type Layer int

const (
	LayerLetters Layer = iota
	LayerNumericSpecial
)

var layerNames = map[Layer]string{
	LayerLetters:        "letters",
	LayerNumericSpecial: "numeric_special",
}

func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layer(%d)", int(l))
}

// Cased reports whether the layer applies the shift case transform to its
// characters.
func (l Layer) Cased() bool {
	return l == LayerLetters
}

// ParseLayer resolves a layer by its snake_case name.
func ParseLayer(name string) (Layer, error) {
	for l, n := range layerNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layer %q", name)
}

// ModeState is the keyboard mode. It is a value; transitions return a new one.
type ModeState struct {
	Layer     Layer
	ShiftOn   bool
	PageIndex int
}

// ModeContext carries what a transition needs to know about the keyboard
// around the state.
type ModeContext struct {
	// PageCount is the page count of the current layer.
	PageCount int
	// AutoReleaseShift clears shift after the next character on a cased layer.
	AutoReleaseShift bool
	// Layers lists the configured layers. LayerToggle to anything else is ignored.
	Layers []Layer
}

func (c ModeContext) hasLayer(l Layer) bool {
	for _, candidate := range c.Layers {
		if candidate == l {
			return true
		}
	}
	return false
}

// Apply returns the state after tok is pressed. Tokens without a mode effect
// return s unchanged.
func (s ModeState) Apply(tok KeyToken, ctx ModeContext) ModeState {
	switch tok.Action {
	case ActionShift:
		s.ShiftOn = !s.ShiftOn
	case ActionLayerToggle:
		if !ctx.hasLayer(tok.Target) {
			return s
		}
		s.Layer = tok.Target
		s.PageIndex = 0
		if !s.Layer.Cased() {
			s.ShiftOn = false
		}
	case ActionPageNext:
		if ctx.PageCount <= 1 {
			return s
		}
		s.PageIndex = (s.PageIndex + 1) % ctx.PageCount
	case ActionNone, ActionSpace:
		if ctx.AutoReleaseShift && s.ShiftOn && s.Layer.Cased() {
			s.ShiftOn = false
		}
	}
	return s
}

// Clamp bounds PageIndex to [0, pageCount-1].
func (s ModeState) Clamp(pageCount int) ModeState {
	if s.PageIndex >= pageCount {
		s.PageIndex = pageCount - 1
	}
	if s.PageIndex < 0 {
		s.PageIndex = 0
	}
	return s
}
