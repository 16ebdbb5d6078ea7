package softkeys

import (
	"testing"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys/constants"
)

func lettersModel(t *testing.T) RenderModel {
	t.Helper()
	c, err := NewController(Config{InputType: InputAlphaNumeric})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c.Render()
}

func assertFocus(t *testing.T, n *Navigator, wantRow, wantCol int) {
	t.Helper()
	if row, col := n.Focus(); row != wantRow || col != wantCol {
		t.Errorf("Focus() = (%d, %d), want (%d, %d)", row, col, wantRow, wantCol)
	}
}

func TestNavigatorStartsOnFirstKey(t *testing.T) {
	n := NewNavigator(lettersModel(t))
	assertFocus(t, n, 0, 0)

	k, ok := n.Focused()
	if !ok || k.Label != "q" {
		t.Errorf("Focused() = %+v, %v; want q", k, ok)
	}
}

func TestNavigatorHorizontalWraps(t *testing.T) {
	n := NewNavigator(lettersModel(t))

	n.Move(constants.VirtualButtonRight)
	assertFocus(t, n, 0, 1)

	n.Move(constants.VirtualButtonLeft)
	n.Move(constants.VirtualButtonLeft)
	assertFocus(t, n, 0, 10)
	if k, _ := n.Focused(); k.Token != Backspace {
		t.Errorf("focused %v, want backspace", k.Token)
	}
}

func TestNavigatorSkipsDisabledKeys(t *testing.T) {
	n := NewNavigator(lettersModel(t))
	n.row, n.col = 2, 7

	n.Move(constants.VirtualButtonRight)
	assertFocus(t, n, 2, 0)

	n.Move(constants.VirtualButtonLeft)
	assertFocus(t, n, 2, 7)
}

func TestNavigatorVerticalFollowsWeights(t *testing.T) {
	n := NewNavigator(lettersModel(t))

	n.Move(constants.VirtualButtonDown)
	if k, _ := n.Focused(); k.Token != Shift {
		t.Errorf("below q: %v, want shift", k.Token)
	}
	n.Move(constants.VirtualButtonDown)
	if k, _ := n.Focused(); k.Token != LayerToggle(LayerNumericSpecial) {
		t.Errorf("below shift: %v, want the layer toggle", k.Token)
	}

	n.row, n.col = 0, 9
	n.Move(constants.VirtualButtonDown)
	if k, _ := n.Focused(); k.Label != "j" {
		t.Errorf("below p: %q, want j", k.Label)
	}

	// l sits above padding, so focus falls back to the nearest key on its left.
	n.row, n.col = 1, 9
	n.Move(constants.VirtualButtonDown)
	if k, _ := n.Focused(); k.Label != "m" {
		t.Errorf("below l: %q, want m", k.Label)
	}
}

func TestNavigatorVerticalWraps(t *testing.T) {
	n := NewNavigator(lettersModel(t))

	n.Move(constants.VirtualButtonUp)
	assertFocus(t, n, 2, 0)
	// The toggle spans two weights; its centre lies under w.
	n.Move(constants.VirtualButtonDown)
	assertFocus(t, n, 0, 1)
}

func TestNavigatorIgnoresOtherButtons(t *testing.T) {
	n := NewNavigator(lettersModel(t))
	if n.Move(constants.VirtualButtonA) {
		t.Error("Move(A) = true, want false")
	}
	assertFocus(t, n, 0, 0)
}

func TestNavigatorSyncClampsFocus(t *testing.T) {
	n := NewNavigator(lettersModel(t))
	n.row, n.col = 2, 7

	small := RenderModel{Rows: [][]Key{{
		{Token: Char('1'), Label: "1", Weight: 1},
		{Token: Backspace, Label: "⌫", Weight: 2},
		{Token: EmptySlot, Weight: 1, Disabled: true},
	}}}
	n.Sync(small)
	assertFocus(t, n, 0, 1)

	n.Sync(RenderModel{})
	if _, ok := n.Focused(); ok {
		t.Error("Focused() on empty model = true, want false")
	}
	if n.Move(constants.VirtualButtonDown) {
		t.Error("Move on empty model = true, want false")
	}
}
