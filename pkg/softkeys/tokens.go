package softkeys

import "fmt"

// ActionKey is a non-literal key.
type ActionKey int

const (
	// ActionNone marks a literal character token.
	ActionNone ActionKey = iota
	ActionBackspace
	ActionShift
	ActionLayerToggle
	ActionPageNext
	// ActionEmptySlot is inert filler used to pad short rows.
	ActionEmptySlot
	ActionSpace
	ActionEnter
)

// actionWeights is the visual width of each action, in literal key units.
var actionWeights = map[ActionKey]int{
	ActionBackspace:   2,
	ActionShift:       3,
	ActionLayerToggle: 2,
	ActionPageNext:    2,
	ActionEmptySlot:   1,
	ActionSpace:       4,
	ActionEnter:       2,
}

var actionNames = map[ActionKey]string{
	ActionNone:        "char",
	ActionBackspace:   "backspace",
	ActionShift:       "shift",
	ActionLayerToggle: "layer_toggle",
	ActionPageNext:    "page_next",
	ActionEmptySlot:   "empty",
	ActionSpace:       "space",
	ActionEnter:       "enter",
}

func (a ActionKey) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Weight returns the width weight of the action. Unknown actions weigh 1.
func (a ActionKey) Weight() int {
	if w, ok := actionWeights[a]; ok {
		return w
	}
	return 1
}

// KeyToken is what gets rendered and pressed: either a literal character or
// an action. Tokens are comparable.
type KeyToken struct {
	Char   rune
	Action ActionKey
	// Target is the destination layer of an ActionLayerToggle.
	Target Layer
}

// Char returns a literal token.
func Char(r rune) KeyToken {
	return KeyToken{Char: r}
}

// Action returns an action token. Use LayerToggle for layer switches.
func Action(a ActionKey) KeyToken {
	return KeyToken{Action: a}
}

// LayerToggle returns a token switching to the target layer.
func LayerToggle(target Layer) KeyToken {
	return KeyToken{Action: ActionLayerToggle, Target: target}
}

var (
	Backspace = Action(ActionBackspace)
	Shift     = Action(ActionShift)
	PageNext  = Action(ActionPageNext)
	EmptySlot = Action(ActionEmptySlot)
	Space     = Action(ActionSpace)
	Enter     = Action(ActionEnter)
)

func (t KeyToken) IsLiteral() bool {
	return t.Action == ActionNone
}

func (t KeyToken) Weight() int {
	if t.IsLiteral() {
		return 1
	}
	return t.Action.Weight()
}

func (t KeyToken) String() string {
	switch {
	case t.IsLiteral():
		return fmt.Sprintf("%q", t.Char)
	case t.Action == ActionLayerToggle:
		return "to_" + t.Target.String()
	default:
		return t.Action.String()
	}
}

func rowWeight(tokens []KeyToken) int {
	total := 0
	for _, t := range tokens {
		total += t.Weight()
	}
	return total
}
