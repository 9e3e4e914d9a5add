package app

// Layout maps between screen pixels and grid cells. The status bar occupies
// the top StatusBarHeight pixels and the board fills the rest.
type Layout struct {
	Rows            int
	Cols            int
	CellSize        int
	StatusBarHeight int
}

// ScreenSize returns the logical screen dimensions in pixels.
func (l Layout) ScreenSize() (int, int) {
	return l.Cols * l.CellSize, l.StatusBarHeight + l.Rows*l.CellSize
}

// CellAt maps a pointer position to a grid cell. Positions on or above the
// status bar, and positions past the board edges, report ok=false.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if l.CellSize <= 0 || x < 0 || y <= l.StatusBarHeight {
		return 0, 0, false
	}
	col = x / l.CellSize
	row = (y - l.StatusBarHeight) / l.CellSize
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	return row, col, true
}
