package main

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys"
	"github.com/BrandonKowalski/softkeys/pkg/softkeys/constants"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cellsPerWeight is how many terminal cells one unit of key weight takes.
const cellsPerWeight = 4

var (
	keyStyle = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("#DDDDDD"))

	focusedKeyStyle = keyStyle.
			Background(lipgloss.Color("#7D56F4")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	activeKeyStyle = keyStyle.
			Foreground(lipgloss.Color("#F4B756")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

var helpLines = []string{
	"• Arrows / hjkl: Navigate between keys",
	"• Enter: Type the selected key",
	"• Backspace: Backspace",
	"• Space: Space",
	"• Tab: Toggle Shift",
	"• [ / ]: Move cursor within text",
	"• Ctrl+S: Enter (confirm input)",
	"• Esc: Exit keyboard without saving",
}

// editSink receives controller callbacks. It is shared by every copy of the
// model so Update can pick up what the last press produced.
type editSink struct {
	change    *softkeys.Change
	submitted bool
}

// inputField exposes a textinput as the keyboard's host field.
type inputField struct {
	input *textinput.Model
}

func (f inputField) Value() string {
	return f.input.Value()
}

func (f inputField) Cursor() softkeys.Cursor {
	return softkeys.CursorAt(f.input.Position())
}

type evdevMsg softkeys.InputEvent

type model struct {
	input     textinput.Model
	keyboard  *softkeys.Controller
	buttons   *softkeys.ButtonHandler
	mapping   *softkeys.InputMapping
	sink      *editSink
	evdev     <-chan softkeys.InputEvent
	submitted bool
	showHelp  bool
	err       error
}

func newModel(cfg softkeys.Config, mapping *softkeys.InputMapping) (model, error) {
	sink := &editSink{}
	kb, err := softkeys.NewController(cfg,
		softkeys.WithOnChange(func(c softkeys.Change) { sink.change = &c }),
		softkeys.WithOnSubmit(func(string) { sink.submitted = true }),
		softkeys.WithLogger(softkeys.GetLogger()),
	)
	if err != nil {
		return model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "Start typing here..."
	ti.CharLimit = 256
	ti.Focus()

	return model{
		input:    ti,
		keyboard: kb,
		buttons:  softkeys.NewButtonHandler(kb),
		mapping:  mapping,
		sink:     sink,
	}, nil
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.evdev != nil {
		cmds = append(cmds, waitForEvdev(m.evdev))
	}
	return tea.Batch(cmds...)
}

func waitForEvdev(events <-chan softkeys.InputEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return evdevMsg(ev)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		button, ok := m.mapping.Terminal(msg.String())
		if !ok {
			return m, nil
		}
		return m.handleButton(button)

	case evdevMsg:
		next := waitForEvdev(m.evdev)
		if !msg.Pressed {
			return m, next
		}
		updated, cmd := m.handleButton(msg.Button)
		return updated, tea.Batch(cmd, next)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleButton(button constants.VirtualButton) (tea.Model, tea.Cmd) {
	if button == constants.VirtualButtonMenu {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch button {
	case constants.VirtualButtonY:
		return m, tea.Quit
	case constants.VirtualButtonL1:
		m.input.SetCursor(m.input.Position() - 1)
		return m, nil
	case constants.VirtualButtonR1:
		m.input.SetCursor(m.input.Position() + 1)
		return m, nil
	}

	_, _, err := m.buttons.Handle(button, inputField{input: &m.input})
	m.err = err
	if c := m.sink.change; c != nil {
		m.input.SetValue(c.Value)
		m.input.SetCursor(c.Caret)
		m.sink.change = nil
	}
	if m.sink.submitted {
		m.submitted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.showHelp {
		return boxStyle.Render("Keyboard Help\n\n" + strings.Join(helpLines, "\n"))
	}

	var b strings.Builder
	b.WriteString(boxStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(renderKeyboard(m.keyboard.Render(), m.buttons.Navigator()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(statusLine(m.keyboard.Render())))
	if m.err != nil {
		b.WriteString("\n" + statusStyle.Render(m.err.Error()))
	}
	return b.String()
}

func statusLine(rm softkeys.RenderModel) string {
	shift := "off"
	if rm.ShiftOn {
		shift = "on"
	}
	return fmt.Sprintf("%s · page %d/%d · shift %s · ? help",
		strings.ReplaceAll(rm.Layer.String(), "_", " "), rm.PageIndex+1, rm.PageCount, shift)
}

func renderKeyboard(rm softkeys.RenderModel, nav *softkeys.Navigator) string {
	focusRow, focusCol := nav.Focus()

	rows := make([]string, 0, len(rm.Rows))
	for r, row := range rm.Rows {
		keys := make([]string, 0, len(row))
		for c, k := range row {
			keys = append(keys, renderKey(k, r == focusRow && c == focusCol))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderKey(k softkeys.Key, focused bool) string {
	width := k.Weight * cellsPerWeight
	if k.Disabled {
		return strings.Repeat(" ", width)
	}

	label := runewidth.Truncate(k.Label, width-2, "…")
	style := keyStyle
	switch {
	case focused:
		style = focusedKeyStyle
	case k.Active:
		style = activeKeyStyle
	}
	return style.Width(width).Render(label)
}
