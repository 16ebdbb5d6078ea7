package main

import (
	"strings"
	"testing"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	t.Setenv("SOFTKEYS_INPUT_MAPPING_PATH", "")
	m, err := newModel(softkeys.DefaultConfig(), softkeys.GetInputMapping())
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	return m
}

func send(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		if m, ok = next.(model); !ok {
			t.Fatalf("Update returned %T, want model", next)
		}
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelTypesFocusedKey(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, key(tea.KeyEnter), key(tea.KeyRight), key(tea.KeyEnter))
	if got := m.input.Value(); got != "qw" {
		t.Errorf("value = %q, want %q", got, "qw")
	}
	if got := m.input.Position(); got != 2 {
		t.Errorf("cursor = %d, want 2", got)
	}
}

func TestModelEditsAtCursor(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, key(tea.KeyEnter), key(tea.KeyEnter), runes("["))
	if got := m.input.Position(); got != 1 {
		t.Fatalf("cursor after [ = %d, want 1", got)
	}

	m, _ = send(t, m, key(tea.KeySpace))
	if got := m.input.Value(); got != "q q" {
		t.Errorf("value = %q, want %q", got, "q q")
	}

	m, _ = send(t, m, key(tea.KeyBackspace))
	if got := m.input.Value(); got != "qq" {
		t.Errorf("value after backspace = %q, want %q", got, "qq")
	}
}

func TestModelShiftAndLayers(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, key(tea.KeyTab), key(tea.KeyEnter))
	if got := m.input.Value(); got != "Q" {
		t.Errorf("value = %q, want %q", got, "Q")
	}
	if !strings.Contains(statusLine(m.keyboard.Render()), "shift on") {
		t.Errorf("status = %q, want shift on", statusLine(m.keyboard.Render()))
	}

	// Up from q wraps to the layer toggle.
	m, _ = send(t, m, runes("k"), key(tea.KeyEnter))
	if got := m.keyboard.Mode().Layer; got != softkeys.LayerNumericSpecial {
		t.Errorf("layer = %v, want numeric_special", got)
	}
	if !strings.Contains(statusLine(m.keyboard.Render()), "page 1/4") {
		t.Errorf("status = %q, want page 1/4", statusLine(m.keyboard.Render()))
	}
}

func TestModelSubmitAndQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, key(tea.KeyEnter), key(tea.KeyCtrlS))
	if !m.submitted || !isQuit(cmd) {
		t.Errorf("ctrl+s: submitted = %v, quit = %v", m.submitted, isQuit(cmd))
	}

	m = newTestModel(t)
	m, cmd = send(t, m, key(tea.KeyEsc))
	if m.submitted || !isQuit(cmd) {
		t.Errorf("esc: submitted = %v, quit = %v", m.submitted, isQuit(cmd))
	}
}

func TestModelHelp(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runes("?"))
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Help") {
		t.Error("? should show help")
	}

	m, _ = send(t, m, key(tea.KeyEnter))
	if m.showHelp {
		t.Error("any button should close help")
	}
	if got := m.input.Value(); got != "" {
		t.Errorf("closing help typed %q", got)
	}
}

func TestModelEvdevReleaseIsIgnored(t *testing.T) {
	m := newTestModel(t)
	events := make(chan softkeys.InputEvent)
	m.evdev = events

	release := softkeys.InputEvent{Button: 5, Pressed: false}
	m, _ = send(t, m, evdevMsg(release))
	if got := m.input.Value(); got != "" {
		t.Errorf("release typed %q", got)
	}

	press := release
	press.Pressed = true
	m, _ = send(t, m, evdevMsg(press))
	if got := m.input.Value(); got != "q" {
		t.Errorf("press typed %q, want %q", got, "q")
	}
}

func TestRenderKey(t *testing.T) {
	if got := renderKey(softkeys.Key{Weight: 2, Disabled: true}, false); got != strings.Repeat(" ", 8) {
		t.Errorf("disabled key = %q, want blanks", got)
	}
	got := renderKey(softkeys.Key{Label: "Space", Weight: 1}, false)
	if !strings.Contains(got, "S…") {
		t.Errorf("narrow key = %q, want a truncated label", got)
	}
}
