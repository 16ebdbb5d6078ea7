package constants

// VirtualButton is a device independent button. Physical keys, controller
// buttons and evdev codes are all translated to one of these before they reach
// the keyboard.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var virtualButtonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "unassigned",
	VirtualButtonUp:         "up",
	VirtualButtonDown:       "down",
	VirtualButtonLeft:       "left",
	VirtualButtonRight:      "right",
	VirtualButtonA:          "a",
	VirtualButtonB:          "b",
	VirtualButtonX:          "x",
	VirtualButtonY:          "y",
	VirtualButtonL1:         "l1",
	VirtualButtonL2:         "l2",
	VirtualButtonR1:         "r1",
	VirtualButtonR2:         "r2",
	VirtualButtonStart:      "start",
	VirtualButtonSelect:     "select",
	VirtualButtonMenu:       "menu",
}

func (vb VirtualButton) String() string {
	if name, ok := virtualButtonNames[vb]; ok {
		return name
	}
	return "unknown"
}

// IsDirectional reports whether the button moves focus.
func (vb VirtualButton) IsDirectional() bool {
	return vb == VirtualButtonUp || vb == VirtualButtonDown ||
		vb == VirtualButtonLeft || vb == VirtualButtonRight
}
