package softkeys

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys/internal"
	"go.uber.org/atomic"
)

// TextField is the host input the keyboard edits. The keyboard never writes
// to it; new values go out through the OnChange callback.
type TextField interface {
	Value() string
	// Cursor is the caret or selection start, or NoCursor when unknown.
	Cursor() Cursor
}

// Field is a plain TextField value.
type Field struct {
	Text  string
	Caret Cursor
}

func (f Field) Value() string  { return f.Text }
func (f Field) Cursor() Cursor { return f.Caret }

// Key is one rendered key.
type Key struct {
	Token  KeyToken
	Label  string
	Weight int
	// Disabled keys are padding and cannot be focused or pressed.
	Disabled bool
	// Active is set on the shift key while shift is on.
	Active bool
}

// RenderModel is everything a presentation layer needs to draw the keyboard.
type RenderModel struct {
	Layer     Layer
	ShiftOn   bool
	PageIndex int
	PageCount int
	Rows      [][]Key
}

type Option func(*Controller)

// WithOnChange sets the callback receiving every new text value.
func WithOnChange(fn func(Change)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithOnSubmit sets the callback fired by the Enter key.
func WithOnSubmit(fn func(value string)) Option {
	return func(c *Controller) { c.onSubmit = fn }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

type layerState struct {
	pages [][]rune
	rows  RowTemplate
}

// Controller turns key presses into mode transitions and text edits and keeps
// the render model of the current page up to date. A Controller is meant to
// be driven from a single goroutine.
type Controller struct {
	inputType   InputType
	autoRelease bool
	layers      map[Layer]layerState
	order       []Layer
	mode        ModeState
	model       RenderModel

	onChange func(Change)
	onSubmit func(string)
	logger   *slog.Logger
	pressing *atomic.Bool
}

// NewController validates cfg and builds a keyboard in its initial mode.
func NewController(cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		inputType:   cfg.InputType,
		autoRelease: cfg.AutoReleaseShift,
		layers:      make(map[Layer]layerState),
		logger:      internal.GetInternalLogger(),
		pressing:    atomic.NewBool(false),
	}
	for _, opt := range opts {
		opt(c)
	}

	layers := cfg.layers()
	c.order = sortedLayers(layers)
	for _, layer := range c.order {
		lc := layers[layer]
		pages := Paginate(characterSet(lc.Characters), lc.Rows.Capacity())
		c.layers[layer] = layerState{pages: pages, rows: lc.Rows}

		c.logger.Debug("Configured keyboard layer",
			"layer", layer.String(),
			"characters", len(characterSet(lc.Characters)),
			"capacity", lc.Rows.Capacity(),
			"pages", len(pages),
			"max_width", lc.Rows.MaxWidth(),
		)
	}

	c.mode = c.initialMode()
	c.refresh()
	return c, nil
}

func (c *Controller) initialMode() ModeState {
	mode := InitialMode(c.inputType)
	if _, ok := c.layers[mode.Layer]; !ok {
		mode.Layer = c.order[0]
	}
	return mode
}

// Mode returns the current mode.
func (c *Controller) Mode() ModeState {
	return c.mode
}

// PageCount is the number of pages of the current layer.
func (c *Controller) PageCount() int {
	return len(c.layers[c.mode.Layer].pages)
}

// Render returns the render model of the current page.
func (c *Controller) Render() RenderModel {
	return c.model
}

// Reset returns the keyboard to its initial mode.
func (c *Controller) Reset() {
	c.mode = c.initialMode()
	c.refresh()
}

func (c *Controller) context() ModeContext {
	return ModeContext{
		PageCount:        c.PageCount(),
		AutoReleaseShift: c.autoRelease,
		Layers:           c.order,
	}
}

// Press handles one key token. field supplies the current text and caret; a
// nil field is treated as empty text without a caret. Calling Press from one
// of the callbacks returns ErrReentrantPress.
func (c *Controller) Press(tok KeyToken, field TextField) error {
	if !c.pressing.CompareAndSwap(false, true) {
		c.logger.Warn("Ignoring re-entrant key press", "token", tok.String())
		return ErrReentrantPress
	}
	defer c.pressing.Store(false)

	if field == nil {
		field = Field{}
	}

	before := c.mode
	switch tok.Action {
	case ActionEmptySlot:
		c.logger.Debug("Ignoring empty slot press")
		return nil
	case ActionBackspace:
		value, caret := RemoveAt(field.Value(), field.Cursor())
		c.emit(field.Value(), value, caret)
	case ActionEnter:
		if c.onSubmit != nil {
			c.onSubmit(field.Value())
		}
	case ActionSpace:
		value, caret := InsertString(field.Value(), field.Cursor(), " ")
		c.emit(field.Value(), value, caret)
		c.mode = c.mode.Apply(tok, c.context())
	case ActionNone:
		value, caret := InsertString(field.Value(), field.Cursor(), c.effectiveText(tok.Char))
		c.emit(field.Value(), value, caret)
		c.mode = c.mode.Apply(tok, c.context())
	case ActionShift, ActionLayerToggle, ActionPageNext:
		c.mode = c.mode.Apply(tok, c.context())
	default:
		c.logger.Warn("Ignoring unknown key token", "token", tok.String())
		return nil
	}

	if c.mode != before {
		c.logger.Debug("Keyboard mode changed",
			"token", tok.String(),
			"layer", c.mode.Layer.String(),
			"shift", c.mode.ShiftOn,
			"page", c.mode.PageIndex,
		)
		c.refresh()
	}
	return nil
}

func (c *Controller) emit(old, value string, caret int) {
	if value == old {
		return
	}
	if c.onChange != nil {
		c.onChange(Change{Value: value, Caret: caret})
	}
}

// effectiveText is what a literal inserts in the current mode. Only cased
// layers apply the shift transform.
func (c *Controller) effectiveText(ch rune) string {
	if c.mode.Layer.Cased() {
		return applyCase(ch, c.mode.ShiftOn)
	}
	return string(ch)
}

func (c *Controller) refresh() {
	ls := c.layers[c.mode.Layer]
	c.mode = c.mode.Clamp(len(ls.pages))

	tokens := BuildRows(ls.pages[c.mode.PageIndex], ls.rows, len(ls.pages))
	rows := make([][]Key, 0, len(tokens))
	for _, rowTokens := range tokens {
		row := make([]Key, 0, len(rowTokens))
		for _, tok := range rowTokens {
			row = append(row, c.key(tok, len(ls.pages)))
		}
		rows = append(rows, row)
	}

	c.model = RenderModel{
		Layer:     c.mode.Layer,
		ShiftOn:   c.mode.ShiftOn,
		PageIndex: c.mode.PageIndex,
		PageCount: len(ls.pages),
		Rows:      rows,
	}
}

func (c *Controller) key(tok KeyToken, pageCount int) Key {
	k := Key{Token: tok, Weight: tok.Weight()}

	switch tok.Action {
	case ActionNone:
		k.Label = c.effectiveText(tok.Char)
	case ActionBackspace:
		k.Label = "⌫"
	case ActionShift:
		k.Label = "⇧"
		k.Active = c.mode.ShiftOn
	case ActionLayerToggle:
		if tok.Target == LayerLetters {
			k.Label = LettersCaption
		} else {
			k.Label = c.inputType.ToggleCaption()
		}
	case ActionPageNext:
		k.Label = fmt.Sprintf("%d/%d", c.mode.PageIndex+1, pageCount)
	case ActionSpace:
		k.Label = "Space"
	case ActionEnter:
		k.Label = "Enter"
	case ActionEmptySlot:
		k.Disabled = true
	}
	return k
}
