package model

import (
	"strings"

	"github.com/pkg/errors"
)

// OffsetOrder describes how a pattern table's coordinate pairs are laid out
type OffsetOrder int

const (
	// RowCol pairs are (row offset, column offset)
	RowCol OffsetOrder = iota
	// ColRow pairs are (column offset, row offset)
	ColRow
)

// Pattern is a named set of live cells placed relative to a fixed origin.
// Order is the layout of the pairs in Offsets; it differs between the
// built-in tables and must match the table it describes.
type Pattern struct {
	Name      string
	OriginRow int
	OriginCol int
	Order     OffsetOrder
	Offsets   [][2]int
}

// Slug returns the lowercase, dash separated form of the name
func (p Pattern) Slug() string {
	return strings.ReplaceAll(strings.ToLower(p.Name), " ", "-")
}

// Cells returns the absolute (row, col) coordinates of the pattern's live cells
func (p Pattern) Cells() [][2]int {
	cells := make([][2]int, 0, len(p.Offsets))
	for _, o := range p.Offsets {
		dRow, dCol := o[0], o[1]
		if p.Order == ColRow {
			dRow, dCol = o[1], o[0]
		}
		cells = append(cells, [2]int{p.OriginRow + dRow, p.OriginCol + dCol})
	}
	return cells
}

var (
	Glider = Pattern{
		Name:      "Glider",
		OriginRow: 5,
		OriginCol: 5,
		Order:     RowCol,
		Offsets: [][2]int{
			{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
		},
	}

	GosperGliderGun = Pattern{
		Name:      "Gosper Glider Gun",
		OriginRow: 1,
		OriginCol: 1,
		Order:     RowCol,
		Offsets: [][2]int{
			{5, 1}, {5, 2}, {6, 1}, {6, 2}, {3, 13}, {3, 14}, {4, 12}, {4, 16}, {5, 11}, {5, 17}, {6, 11}, {6, 15},
			{6, 17}, {6, 18}, {7, 11}, {7, 17}, {8, 12}, {8, 16}, {9, 13}, {9, 14}, {1, 25}, {2, 23}, {2, 25},
			{3, 21}, {3, 22}, {4, 21}, {4, 22}, {5, 21}, {5, 22}, {6, 23}, {6, 25}, {7, 25}, {3, 35}, {3, 36},
			{4, 35}, {4, 36},
		},
	}

	SimkinGliderGun = Pattern{
		Name:      "Simkin Glider Gun",
		OriginRow: 30,
		OriginCol: 40,
		Order:     ColRow,
		Offsets: [][2]int{
			{0, 0}, {0, 1}, {1, 0}, {1, 1},
			{4, 3}, {5, 3}, {4, 4}, {5, 4},
			{7, 0}, {8, 0}, {7, 1}, {8, 1},
			{22, 9}, {23, 9}, {25, 9}, {26, 9},
			{21, 10}, {27, 10},
			{21, 11}, {28, 11}, {31, 11}, {32, 11},
			{21, 12}, {22, 12}, {23, 12}, {27, 12}, {31, 12}, {32, 12},
			{26, 13},
			{20, 17}, {21, 17},
			{20, 18},
			{21, 19}, {22, 19}, {23, 19},
			{23, 20},
		},
	}

	CoolGlider = Pattern{
		Name:      "Cool Glider",
		OriginRow: 20,
		OriginCol: 50,
		Order:     ColRow,
		Offsets: [][2]int{
			{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
			{0, 1}, {5, 1}, {13, 1}, {14, 1},
			{0, 2}, {12, 2}, {13, 2}, {15, 2}, {16, 2}, {17, 2},
			{1, 3}, {11, 3}, {12, 3}, {14, 3}, {15, 3}, {16, 3}, {17, 3},
			{3, 4}, {4, 4}, {8, 4}, {9, 4}, {11, 4}, {12, 4}, {15, 4}, {16, 4},
			{5, 5}, {10, 5}, {13, 5},
			{6, 6}, {8, 6}, {10, 6}, {12, 6},
			{7, 7},
			{7, 8},
			{6, 9}, {8, 9}, {10, 9}, {12, 9},
			{5, 10}, {10, 10}, {13, 10},
			{3, 11}, {4, 11}, {8, 11}, {9, 11}, {11, 11}, {12, 11}, {15, 11}, {16, 11},
			{1, 12}, {11, 12}, {12, 12}, {14, 12}, {15, 12}, {16, 12}, {17, 12},
			{0, 13}, {12, 13}, {13, 13}, {15, 13}, {16, 13}, {17, 13},
			{0, 14}, {5, 14}, {13, 14}, {14, 14},
			{0, 15}, {1, 15}, {2, 15}, {3, 15}, {4, 15},
		},
	}
)

// Patterns returns the built-in patterns in menu order
func Patterns() []Pattern {
	return []Pattern{Glider, GosperGliderGun, SimkinGliderGun, CoolGlider}
}

// LookupPattern finds a built-in pattern by display name or slug, ignoring case
func LookupPattern(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Patterns() {
		if key == strings.ToLower(p.Name) || key == p.Slug() {
			return p, nil
		}
	}
	return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
}
