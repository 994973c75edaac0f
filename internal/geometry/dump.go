package geometry

import (
	"fmt"
	"strings"
)

// String renders the field one row per line: a two-digit row number, a
// divider every five columns and a six-character token per cell.
func (f *DistanceField) String() string {
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		fmt.Fprintf(&b, "%02d", y)
		for x := 0; x < f.width; x++ {
			if x%5 == 0 {
				b.WriteString(" | ")
			}
			b.WriteString(cellToken(f.cells[y*f.width+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellToken(c Cell) string {
	switch c.Kind {
	case KindRoom:
		return "room  "
	case KindUncalculated:
		return "....  "
	case KindHall:
		return "hall  "
	}
	return fmt.Sprintf(" %02d   ", c.Dist)
}
