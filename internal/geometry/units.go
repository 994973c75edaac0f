package geometry

import (
	"errors"
	"fmt"
	"math"
)

var ErrZeroCellUnit = errors.New("cell unit cannot be zero")

// CellUnitConverter maps world meters to cell indices and back. Each cell is
// a square with sides of MetersPerCell.
type CellUnitConverter struct {
	metersPerCell float64
}

func NewCellUnitConverter(metersPerCell float64) (CellUnitConverter, error) {
	if metersPerCell == 0 || math.IsNaN(metersPerCell) || math.IsInf(metersPerCell, 0) {
		return CellUnitConverter{}, fmt.Errorf("%w: got %v", ErrZeroCellUnit, metersPerCell)
	}
	return CellUnitConverter{metersPerCell: metersPerCell}, nil
}

func (c CellUnitConverter) MetersPerCell() float64 { return c.metersPerCell }

// MetersToCellRound converts to the nearest whole cell count. Used for sizes.
func (c CellUnitConverter) MetersToCellRound(meters float64) int {
	return int(math.Round(meters / c.metersPerCell))
}

// MetersToCellFloor converts to the index of the cell containing the
// position. Used for positions.
func (c CellUnitConverter) MetersToCellFloor(meters float64) int {
	return int(math.Floor(meters / c.metersPerCell))
}

func (c CellUnitConverter) CellToMeters(cell int) float64 {
	return float64(cell) * c.metersPerCell
}

// SizeToCells rounds a world footprint to a cell footprint.
func (c CellUnitConverter) SizeToCells(size Vec2) Point {
	return Point{X: c.MetersToCellRound(size.X), Y: c.MetersToCellRound(size.Y)}
}

// PositionToCell floors a world position to the cell containing it.
func (c CellUnitConverter) PositionToCell(pos Vec2) Point {
	return Point{X: c.MetersToCellFloor(pos.X), Y: c.MetersToCellFloor(pos.Y)}
}
