package softkeys

import "github.com/BrandonKowalski/softkeys/pkg/softkeys/constants"

// ButtonHandler drives a Controller from virtual buttons:
//
//   - D-Pad: move focus between keys
//   - A: press the focused key
//   - B: backspace
//   - X: space (letters layer only)
//   - Select: toggle shift (letters layer only)
//   - Start: enter
type ButtonHandler struct {
	controller *Controller
	navigator  *Navigator
}

func NewButtonHandler(c *Controller) *ButtonHandler {
	return &ButtonHandler{
		controller: c,
		navigator:  NewNavigator(c.Render()),
	}
}

// Navigator exposes the focus, for drawing.
func (h *ButtonHandler) Navigator() *Navigator {
	return h.navigator
}

// Handle processes one button press. It returns the token that was pressed,
// if any, and whether the button meant anything to the keyboard.
func (h *ButtonHandler) Handle(button constants.VirtualButton, field TextField) (KeyToken, bool, error) {
	if button.IsDirectional() {
		return KeyToken{}, h.navigator.Move(button), nil
	}

	var tok KeyToken
	switch button {
	case constants.VirtualButtonA:
		k, ok := h.navigator.Focused()
		if !ok {
			return KeyToken{}, false, nil
		}
		tok = k.Token
	case constants.VirtualButtonB:
		tok = Backspace
	case constants.VirtualButtonX:
		if !h.controller.Mode().Layer.Cased() {
			return KeyToken{}, false, nil
		}
		tok = Space
	case constants.VirtualButtonSelect:
		if !h.controller.Mode().Layer.Cased() {
			return KeyToken{}, false, nil
		}
		tok = Shift
	case constants.VirtualButtonStart:
		tok = Enter
	default:
		return KeyToken{}, false, nil
	}

	if err := h.controller.Press(tok, field); err != nil {
		return tok, true, err
	}
	h.navigator.Sync(h.controller.Render())
	return tok, true, nil
}
