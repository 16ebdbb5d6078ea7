package softkeys

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Cursor is a caret index into the host text, in runes, or unset when the
// host has no caret to report.
type Cursor struct {
	pos int
	set bool
}

// NoCursor is the unset cursor.
var NoCursor = Cursor{}

// CursorAt returns a concrete cursor.
func CursorAt(pos int) Cursor {
	return Cursor{pos: pos, set: true}
}

// Position returns the index and whether it is set.
func (c Cursor) Position() (int, bool) {
	return c.pos, c.set
}

// applyCase returns ch upper-cased when shiftOn, lower-cased otherwise.
// Characters without case come back unchanged. Casers are stateful, so one is
// made per call.
func applyCase(ch rune, shiftOn bool) string {
	if shiftOn {
		return cases.Upper(language.Und).String(string(ch))
	}
	return cases.Lower(language.Und).String(string(ch))
}

// clampIndex bounds i to [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// insertPosition is where text goes for the given cursor. An unset cursor
// means one position before the last character, not the end.
func insertPosition(length int, cursor Cursor) int {
	if pos, ok := cursor.Position(); ok {
		return clampIndex(pos, length)
	}
	return clampIndex(length-1, length)
}

// removePosition is the index of the rune backspace deletes, or -1 when there
// is nothing before the cursor.
func removePosition(length int, cursor Cursor) int {
	if pos, ok := cursor.Position(); ok {
		return clampIndex(pos, length) - 1
	}
	return length - 1
}

// Insert puts ch into text at the cursor, upper-cased when shiftOn and
// lower-cased otherwise. See insertPosition for the unset cursor.
func Insert(text string, cursor Cursor, ch rune, shiftOn bool) string {
	value, _ := InsertString(text, cursor, applyCase(ch, shiftOn))
	return value
}

// InsertString puts s into text at the cursor without any case transform and
// returns the caret position just past the inserted text.
func InsertString(text string, cursor Cursor, s string) (string, int) {
	runes := []rune(text)
	pos := insertPosition(len(runes), cursor)
	inserted := []rune(s)

	out := make([]rune, 0, len(runes)+len(inserted))
	out = append(out, runes[:pos]...)
	out = append(out, inserted...)
	out = append(out, runes[pos:]...)
	return string(out), pos + len(inserted)
}

// Remove deletes the character before the cursor, or the last character when
// the cursor is unset. A cursor at 0 (or below) deletes nothing.
func Remove(text string, cursor Cursor) string {
	value, _ := RemoveAt(text, cursor)
	return value
}

// RemoveAt is Remove that also returns the caret position after the deletion.
func RemoveAt(text string, cursor Cursor) (string, int) {
	runes := []rune(text)
	pos := removePosition(len(runes), cursor)
	if pos < 0 {
		if p, ok := cursor.Position(); ok {
			return text, clampIndex(p, len(runes))
		}
		return text, 0
	}

	out := make([]rune, 0, len(runes)-1)
	out = append(out, runes[:pos]...)
	out = append(out, runes[pos+1:]...)
	return string(out), pos
}
