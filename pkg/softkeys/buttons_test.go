package softkeys

import (
	"testing"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys/constants"
)

func newTestButtons(t *testing.T, cfg Config) (*ButtonHandler, *Controller, *recorder) {
	t.Helper()
	c, rec := newTestController(t, cfg)
	return NewButtonHandler(c), c, rec
}

func TestButtonAPressesFocusedKey(t *testing.T) {
	h, _, rec := newTestButtons(t, DefaultConfig())

	h.Handle(constants.VirtualButtonRight, nil)
	tok, handled, err := h.Handle(constants.VirtualButtonA, Field{})
	if err != nil || !handled {
		t.Fatalf("Handle(A) = %v, %v, %v", tok, handled, err)
	}
	if tok != Char('w') {
		t.Errorf("pressed %v, want w", tok)
	}
	if got := rec.last(t).Value; got != "w" {
		t.Errorf("value = %q, want %q", got, "w")
	}
}

func TestButtonShortcuts(t *testing.T) {
	h, c, rec := newTestButtons(t, DefaultConfig())

	if tok, _, _ := h.Handle(constants.VirtualButtonX, Field{Text: "a", Caret: CursorAt(1)}); tok != Space {
		t.Errorf("X pressed %v, want space", tok)
	}
	if got := rec.last(t).Value; got != "a " {
		t.Errorf("value after X = %q, want %q", got, "a ")
	}

	h.Handle(constants.VirtualButtonB, Field{Text: "ab", Caret: CursorAt(2)})
	if got := rec.last(t).Value; got != "a" {
		t.Errorf("value after B = %q, want %q", got, "a")
	}

	h.Handle(constants.VirtualButtonSelect, nil)
	if !c.Mode().ShiftOn {
		t.Error("Select should toggle shift on")
	}

	h.Handle(constants.VirtualButtonStart, Field{Text: "done"})
	if len(rec.submitted) != 1 || rec.submitted[0] != "done" {
		t.Errorf("submitted = %q, want [done]", rec.submitted)
	}
}

func TestButtonShortcutsOnNumericLayer(t *testing.T) {
	h, c, _ := newTestButtons(t, Config{InputType: InputNumeric})

	for _, b := range []constants.VirtualButton{constants.VirtualButtonX, constants.VirtualButtonSelect} {
		if _, handled, _ := h.Handle(b, nil); handled {
			t.Errorf("Handle(%v) on numeric layer = handled", b)
		}
	}
	if c.Mode().ShiftOn {
		t.Error("shift changed on numeric layer")
	}
}

func TestButtonUnmappedIsIgnored(t *testing.T) {
	h, _, rec := newTestButtons(t, DefaultConfig())

	for _, b := range []constants.VirtualButton{constants.VirtualButtonY, constants.VirtualButtonMenu, constants.VirtualButtonL1} {
		if _, handled, err := h.Handle(b, Field{Text: "x"}); handled || err != nil {
			t.Errorf("Handle(%v) = %v, %v; want unhandled", b, handled, err)
		}
	}
	if len(rec.changes) != 0 {
		t.Errorf("changes = %+v, want none", rec.changes)
	}
}

func TestButtonFocusFollowsLayerChange(t *testing.T) {
	h, c, _ := newTestButtons(t, DefaultConfig())

	h.Handle(constants.VirtualButtonUp, nil)
	if _, _, err := h.Handle(constants.VirtualButtonA, nil); err != nil {
		t.Fatalf("Handle(A): %v", err)
	}
	if c.Mode().Layer != LayerNumericSpecial {
		t.Fatalf("layer = %v, want numeric_special", c.Mode().Layer)
	}

	if k, ok := h.Navigator().Focused(); !ok || k.Disabled {
		t.Errorf("Focused() = %+v, %v; want an enabled key", k, ok)
	}
}
