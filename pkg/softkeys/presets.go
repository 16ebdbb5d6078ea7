package softkeys

import "fmt"

// InputType is the kind of text a field accepts. It decides which layers the
// keyboard offers and what they contain.
type InputType int

const (
	InputAlpha InputType = iota
	InputAlphaNumeric
	InputAlphaNumericSpecial
	InputAlphaSpecial
	InputNumeric
	InputNumericSpecial
	InputSpecial
)

var inputTypeNames = map[InputType]string{
	InputAlpha:               "alpha",
	InputAlphaNumeric:        "alpha_numeric",
	InputAlphaNumericSpecial: "alpha_numeric_special",
	InputAlphaSpecial:        "alpha_special",
	InputNumeric:             "numeric",
	InputNumericSpecial:      "numeric_special",
	InputSpecial:             "special",
}

func (it InputType) String() string {
	if name, ok := inputTypeNames[it]; ok {
		return name
	}
	return fmt.Sprintf("input_type(%d)", int(it))
}

// ParseInputType resolves an input type by its snake_case name.
func ParseInputType(name string) (InputType, error) {
	for it, n := range inputTypeNames {
		if n == name {
			return it, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown input type %q", ErrInvalidConfig, name)
}

// HasLetters reports whether the input type offers the letters layer.
func (it InputType) HasLetters() bool {
	switch it {
	case InputAlpha, InputAlphaNumeric, InputAlphaNumericSpecial, InputAlphaSpecial:
		return true
	}
	return false
}

// HasNumericSpecial reports whether the input type offers the numeric/special layer.
func (it InputType) HasNumericSpecial() bool {
	return it != InputAlpha
}

// ToggleCaption is the label of the key that leaves the letters layer for the
// numeric/special one.
func (it InputType) ToggleCaption() string {
	switch it {
	case InputAlphaNumeric:
		return "123"
	case InputAlphaSpecial:
		return "#+="
	default:
		return "?123"
	}
}

// LettersCaption is the label of the key returning to the letters layer.
const LettersCaption = "ABC"

const (
	QwertyCharacters = "qwertyuiopasdfghjklzxcvbnm"
	NumberCharacters = "1234567890"
	// DefaultSpecialCharacters is used when Config.SpecialCharacters is empty.
	DefaultSpecialCharacters = "~!@#$%^&*()_+-={}[]|:;<>,.?€£¥¢¬§©®™±÷×µ¶·¸¹²³¼½¾«»ªº¿¡¦¯°–—‘’“”…•†‡′″‹›‒‚‛≠≤≥≈∞∂∑∏∫√∆∇∩∪Ωπθλσ"
)

// QwertyTemplate is the letters layout: 10, shift + 9, toggle + 7.
func QwertyTemplate(toggle ...KeyToken) RowTemplate {
	return RowTemplate{
		{CharSlots: 10, Trailing: []KeyToken{Backspace}},
		{Leading: []KeyToken{Shift}, CharSlots: 9},
		{Leading: toggle, CharSlots: 7},
	}
}

// SpecialTemplate is the numeric/special layout: 32 characters per page with
// the page key on the third row and an optional toggle row.
func SpecialTemplate(toggle ...KeyToken) RowTemplate {
	return RowTemplate{
		{CharSlots: 10, Trailing: []KeyToken{Backspace}},
		{CharSlots: 12},
		{Leading: []KeyToken{PageNext}, CharSlots: 10},
		{Leading: toggle},
	}
}

// PresetLayers returns the built-in layers for an input type. specialChars
// replaces DefaultSpecialCharacters when not empty.
func PresetLayers(it InputType, specialChars string) map[Layer]LayerConfig {
	if specialChars == "" {
		specialChars = DefaultSpecialCharacters
	}

	toNumeric := LayerToggle(LayerNumericSpecial)
	toLetters := LayerToggle(LayerLetters)

	switch it {
	case InputAlpha:
		return map[Layer]LayerConfig{
			LayerLetters: {Characters: QwertyCharacters, Rows: QwertyTemplate()},
		}
	case InputAlphaNumeric:
		return map[Layer]LayerConfig{
			LayerLetters:        {Characters: QwertyCharacters, Rows: QwertyTemplate(toNumeric)},
			LayerNumericSpecial: {Characters: NumberCharacters, Rows: SpecialTemplate(toLetters)},
		}
	case InputAlphaNumericSpecial:
		return map[Layer]LayerConfig{
			LayerLetters:        {Characters: QwertyCharacters, Rows: QwertyTemplate(toNumeric)},
			LayerNumericSpecial: {Characters: NumberCharacters + specialChars, Rows: SpecialTemplate(toLetters)},
		}
	case InputAlphaSpecial:
		return map[Layer]LayerConfig{
			LayerLetters:        {Characters: QwertyCharacters, Rows: QwertyTemplate(toNumeric)},
			LayerNumericSpecial: {Characters: specialChars, Rows: SpecialTemplate(toLetters)},
		}
	case InputNumeric:
		return map[Layer]LayerConfig{
			LayerNumericSpecial: {Characters: NumberCharacters, Rows: SpecialTemplate()},
		}
	case InputSpecial:
		return map[Layer]LayerConfig{
			LayerNumericSpecial: {Characters: specialChars, Rows: SpecialTemplate()},
		}
	default:
		return map[Layer]LayerConfig{
			LayerNumericSpecial: {Characters: NumberCharacters + specialChars, Rows: SpecialTemplate()},
		}
	}
}

// InitialMode is the mode a fresh keyboard starts in: letters when the input
// type has them, numeric/special otherwise.
func InitialMode(it InputType) ModeState {
	if it.HasLetters() {
		return ModeState{Layer: LayerLetters}
	}
	return ModeState{Layer: LayerNumericSpecial}
}
