package softkeys

import (
	"fmt"
)

// RowSpec declares one row: leading actions, a number of character slots
// filled from the current page, then trailing actions.
type RowSpec struct {
	CharSlots int
	Leading   []KeyToken
	Trailing  []KeyToken
}

// RowTemplate is the static row arrangement of a layer.
type RowTemplate []RowSpec

// Capacity is the number of characters one page of this template holds.
func (t RowTemplate) Capacity() int {
	total := 0
	for _, row := range t {
		total += row.CharSlots
	}
	return total
}

// MaxWidth is the widest row of the template as declared, counting every slot
// and every action (page navigation included). It does not depend on how full
// a page is, so rows keep the same width on every page.
func (t RowTemplate) MaxWidth() int {
	maxWidth := 0
	for _, row := range t {
		width := row.CharSlots + rowWeight(row.Leading) + rowWeight(row.Trailing)
		if width > maxWidth {
			maxWidth = width
		}
	}
	return maxWidth
}

// Validate reports a malformed template. Errors wrap ErrInvalidTemplate.
func (t RowTemplate) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: template has no rows", ErrInvalidTemplate)
	}

	for i, row := range t {
		if row.CharSlots < 0 {
			return fmt.Errorf("%w: row %d has negative char slots (%d)", ErrInvalidTemplate, i, row.CharSlots)
		}
		if err := validateActions(row.Leading); err != nil {
			return fmt.Errorf("%w: row %d leading actions: %v", ErrInvalidTemplate, i, err)
		}
		if err := validateActions(row.Trailing); err != nil {
			return fmt.Errorf("%w: row %d trailing actions: %v", ErrInvalidTemplate, i, err)
		}
	}

	if t.Capacity() == 0 {
		return fmt.Errorf("%w: template has zero character capacity", ErrInvalidTemplate)
	}
	return nil
}

func validateActions(actions []KeyToken) error {
	for _, a := range actions {
		switch a.Action {
		case ActionNone:
			return fmt.Errorf("literal %q is not an action", a.Char)
		case ActionEmptySlot:
			return fmt.Errorf("empty slots are padding only")
		case ActionBackspace, ActionShift, ActionLayerToggle, ActionPageNext, ActionSpace, ActionEnter:
		default:
			return fmt.Errorf("unknown action %s", a.Action)
		}
	}
	return nil
}

// BuildRows lays out one page on the template. Character slots are filled
// left to right across rows from a single running position. Rows without any
// token are dropped, and the rest are right-padded with EmptySlot up to the
// template MaxWidth. PageNext is left out everywhere when pageCount <= 1.
func BuildRows(page []rune, template RowTemplate, pageCount int) [][]KeyToken {
	multiplePages := pageCount > 1
	maxWidth := template.MaxWidth()
	next := 0

	rows := make([][]KeyToken, 0, len(template))
	for _, rs := range template {
		row := make([]KeyToken, 0, maxWidth)
		row = appendActions(row, rs.Leading, multiplePages)

		for slot := 0; slot < rs.CharSlots; slot++ {
			if next < len(page) {
				row = append(row, Char(page[next]))
			}
			next++
		}

		row = appendActions(row, rs.Trailing, multiplePages)
		if len(row) == 0 {
			continue
		}

		for width := rowWeight(row); width < maxWidth; width++ {
			row = append(row, EmptySlot)
		}
		rows = append(rows, row)
	}
	return rows
}

func appendActions(row, actions []KeyToken, multiplePages bool) []KeyToken {
	for _, a := range actions {
		if a.Action == ActionPageNext && !multiplePages {
			continue
		}
		row = append(row, a)
	}
	return row
}
