package softkeys

import "github.com/BrandonKowalski/softkeys/pkg/softkeys/constants"

// Navigator moves a focus over a render model with directional buttons.
// Movement wraps at the edges and never lands on a disabled key.
type Navigator struct {
	model RenderModel
	row   int
	col   int
}

// NewNavigator focuses the first enabled key of model.
func NewNavigator(model RenderModel) *Navigator {
	n := &Navigator{model: model}
	n.Sync(model)
	return n
}

// Focus returns the focused row and column.
func (n *Navigator) Focus() (int, int) {
	return n.row, n.col
}

// Focused returns the focused key, or false when the model has no enabled key.
func (n *Navigator) Focused() (Key, bool) {
	if n.row >= len(n.model.Rows) || n.col >= len(n.model.Rows[n.row]) {
		return Key{}, false
	}
	k := n.model.Rows[n.row][n.col]
	if k.Disabled {
		return Key{}, false
	}
	return k, true
}

// Sync swaps in a new model, keeping the focus as close as possible to where
// it was.
func (n *Navigator) Sync(model RenderModel) {
	n.model = model
	rows := model.Rows
	if len(rows) == 0 {
		n.row, n.col = 0, 0
		return
	}

	n.row = min(max(n.row, 0), len(rows)-1)
	n.col = min(max(n.col, 0), len(rows[n.row])-1)
	if n.enabled(n.row, n.col) {
		return
	}

	for i := 0; i < len(rows); i++ {
		r := (n.row + i) % len(rows)
		start := len(rows[r]) - 1
		if r == n.row {
			start = n.col
		}
		if c, ok := n.enabledAtOrBefore(r, start); ok {
			n.row, n.col = r, c
			return
		}
	}
}

// Move shifts the focus in the direction of a directional button. Other
// buttons are ignored and Move returns false.
func (n *Navigator) Move(button constants.VirtualButton) bool {
	if len(n.model.Rows) == 0 {
		return false
	}

	switch button {
	case constants.VirtualButtonUp:
		n.moveVertical(-1)
	case constants.VirtualButtonDown:
		n.moveVertical(1)
	case constants.VirtualButtonLeft:
		n.moveHorizontal(-1)
	case constants.VirtualButtonRight:
		n.moveHorizontal(1)
	default:
		return false
	}
	return true
}

func (n *Navigator) moveHorizontal(step int) {
	row := n.model.Rows[n.row]
	col := n.col
	for range row {
		col = (col + step + len(row)) % len(row)
		if !row[col].Disabled {
			n.col = col
			return
		}
	}
}

// moveVertical lands on the key of the next row that covers the horizontal
// centre of the focused key, measured in width weights.
func (n *Navigator) moveVertical(step int) {
	rows := n.model.Rows
	centre := n.offset(n.row, n.col) + rows[n.row][n.col].Weight/2

	row := n.row
	for range rows {
		row = (row + step + len(rows)) % len(rows)
		if c, ok := n.enabledAtOrBefore(row, n.columnAt(row, centre)); ok {
			n.row, n.col = row, c
			return
		}
	}
}

func (n *Navigator) offset(row, col int) int {
	total := 0
	for _, k := range n.model.Rows[row][:col] {
		total += k.Weight
	}
	return total
}

func (n *Navigator) columnAt(row, offset int) int {
	total := 0
	for c, k := range n.model.Rows[row] {
		total += k.Weight
		if offset < total {
			return c
		}
	}
	return len(n.model.Rows[row]) - 1
}

func (n *Navigator) enabled(row, col int) bool {
	return !n.model.Rows[row][col].Disabled
}

// enabledAtOrBefore looks left from col for an enabled key, then right.
func (n *Navigator) enabledAtOrBefore(row, col int) (int, bool) {
	keys := n.model.Rows[row]
	for c := col; c >= 0; c-- {
		if !keys[c].Disabled {
			return c, true
		}
	}
	for c := col + 1; c < len(keys); c++ {
		if !keys[c].Disabled {
			return c, true
		}
	}
	return 0, false
}
