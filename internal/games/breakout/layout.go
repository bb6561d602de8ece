package breakout

import (
	"fmt"
	"strings"
)

// Layout is a named mask over the brick grid.
//
// Rows are drawn top to bottom. The mask is stretched over whatever grid
// the arena produces, so an 8x7 pattern still works on a wider arena.
type Layout struct {
	ID   string
	Name string
	Rows []string
}

// ParseLayout validates an ASCII mask.
// Characters:
//
//	'#' = brick
//	'.' = empty cell
func ParseLayout(id, name string, lines []string) (Layout, error) {
	if len(lines) == 0 {
		return Layout{}, fmt.Errorf("layout %q: no rows", id)
	}

	for row, line := range lines {
		if line == "" {
			return Layout{}, fmt.Errorf("layout %q: row %d is empty", id, row)
		}
		for col, ch := range line {
			if ch != '#' && ch != '.' {
				return Layout{}, fmt.Errorf("layout %q: invalid character %q at row %d col %d", id, ch, row, col)
			}
		}
	}

	return Layout{ID: id, Name: name, Rows: lines}, nil
}

// mustParseLayout is for the built-in masks, which are known to be valid.
func mustParseLayout(id, name string, lines []string) Layout {
	l, err := ParseLayout(id, name, lines)
	if err != nil {
		panic(err)
	}
	return l
}

// Keeps reports whether the mask places a brick in the given cell of a
// rows x cols grid.
func (l Layout) Keeps(c Cell, rows, cols int) bool {
	if len(l.Rows) == 0 || rows <= 0 || cols <= 0 {
		return false
	}
	if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
		return false
	}

	line := l.Rows[c.Row*len(l.Rows)/rows]
	col := c.Col * len(line) / cols
	return line[col] == '#'
}

// String returns the layout preview, one row per line.
func (l Layout) String() string {
	return strings.Join(l.Rows, "\n")
}

var builtinLayouts = []Layout{
	mustParseLayout("classic", "Classic", []string{
		"########",
		"########",
		"########",
		"########",
		"########",
		"########",
		"########",
	}),

	mustParseLayout("pyramid", "Pyramid", []string{
		"...##...",
		"...##...",
		"..####..",
		"..####..",
		".######.",
		".######.",
		"########",
	}),

	mustParseLayout("checker", "Checkerboard", []string{
		"#.#.#.#.",
		".#.#.#.#",
		"#.#.#.#.",
		".#.#.#.#",
		"#.#.#.#.",
		".#.#.#.#",
		"#.#.#.#.",
	}),

	mustParseLayout("striped", "Striped", []string{
		"########",
		"........",
		"########",
		"........",
		"########",
		"........",
		"########",
	}),

	mustParseLayout("diamond", "Diamond", []string{
		"...##...",
		"..####..",
		".######.",
		"########",
		".######.",
		"..####..",
		"...##...",
	}),
}

// DefaultLayoutID is used when no layout is configured.
const DefaultLayoutID = "classic"

// BuiltinLayouts returns all built-in layouts.
func BuiltinLayouts() []Layout {
	out := make([]Layout, len(builtinLayouts))
	copy(out, builtinLayouts)
	return out
}

// LayoutByID returns a built-in layout by its ID.
func LayoutByID(id string) (Layout, error) {
	for _, l := range builtinLayouts {
		if l.ID == id {
			return l, nil
		}
	}

	ids := make([]string, len(builtinLayouts))
	for i, l := range builtinLayouts {
		ids[i] = l.ID
	}
	return Layout{}, fmt.Errorf("breakout: unknown layout %q (available: %s)", id, strings.Join(ids, ", "))
}
