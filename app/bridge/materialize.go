package bridge

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/zidaye/odbc-bridge/app/odbc"
	"github.com/zidaye/odbc-bridge/common"
)

// Materialize converts a driver-filled column buffer into one typed cell per
// row, preserving row order. The buffer is only read, never retained: every
// produced cell owns its payload (strings and byte slices are copied out),
// so the driver may reuse the buffer as soon as the call returns.
//
// Only the wide-text path can fail: malformed UTF-16 indicates a protocol
// violation between driver and consumer, and proceeding with a placeholder
// would risk silent data corruption, so materialization of the whole buffer
// is aborted instead.
func Materialize(buf ColumnBuffer) ([]Cell, error) {
	return buf.materialize()
}

func (c TextColumn) materialize() ([]Cell, error) {
	cells := make([]Cell, 0, len(c))

	for _, span := range c {
		if span == nil {
			cells = append(cells, TextCell{})
			continue
		}

		cells = append(cells, TextCell{Text: decodeUTF8Lossy(span), Valid: true})
	}

	return cells, nil
}

func (c WTextColumn) materialize() ([]Cell, error) {
	cells := make([]Cell, 0, len(c))

	for row, span := range c {
		if span == nil {
			cells = append(cells, WTextCell{})
			continue
		}

		text, err := decodeUTF16(span)
		if err != nil {
			return nil, fmt.Errorf("decode wide text at row %d: %w", row, err)
		}

		cells = append(cells, WTextCell{Text: text, Valid: true})
	}

	return cells, nil
}

func (c BinaryColumn) materialize() ([]Cell, error) {
	cells := make([]Cell, 0, len(c))

	for _, span := range c {
		if span == nil {
			cells = append(cells, BinaryCell{})
			continue
		}

		owned := make([]byte, len(span))
		copy(owned, span)
		cells = append(cells, BinaryCell{Bytes: owned, Valid: true})
	}

	return cells, nil
}

func (c DateColumn) materialize() ([]Cell, error) { return fixedCells(c, newDateCell), nil }
func (c TimeColumn) materialize() ([]Cell, error) { return fixedCells(c, newTimeCell), nil }
func (c TimestampColumn) materialize() ([]Cell, error) {
	return fixedCells(c, newTimestampCell), nil
}
func (c Int8Column) materialize() ([]Cell, error)    { return fixedCells(c, newInt8Cell), nil }
func (c Int16Column) materialize() ([]Cell, error)   { return fixedCells(c, newInt16Cell), nil }
func (c Int32Column) materialize() ([]Cell, error)   { return fixedCells(c, newInt32Cell), nil }
func (c Int64Column) materialize() ([]Cell, error)   { return fixedCells(c, newInt64Cell), nil }
func (c Uint8Column) materialize() ([]Cell, error)   { return fixedCells(c, newUint8Cell), nil }
func (c Float32Column) materialize() ([]Cell, error) { return fixedCells(c, newFloat32Cell), nil }
func (c Float64Column) materialize() ([]Cell, error) { return fixedCells(c, newFloat64Cell), nil }
func (c BitColumn) materialize() ([]Cell, error)     { return fixedCells(c, newBitCell), nil }

func (c NullableDateColumn) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newDateCell), nil
}

func (c NullableTimeColumn) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newTimeCell), nil
}

func (c NullableTimestampColumn) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newTimestampCell), nil
}

func (c NullableInt8Column) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newInt8Cell), nil
}

func (c NullableInt16Column) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newInt16Cell), nil
}

func (c NullableInt32Column) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newInt32Cell), nil
}

func (c NullableInt64Column) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newInt64Cell), nil
}

func (c NullableUint8Column) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newUint8Cell), nil
}

func (c NullableFloat32Column) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newFloat32Cell), nil
}

func (c NullableFloat64Column) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newFloat64Cell), nil
}

func (c NullableBitColumn) materialize() ([]Cell, error) {
	return nullableFixedCells(c.Values, c.Indicators, newBitCell), nil
}

// fixedCells wraps every element of a plain fixed-width value array; rows
// are present by construction.
func fixedCells[T any](values []T, newCell func(*T) Cell) []Cell {
	cells := make([]Cell, 0, len(values))

	for i := range values {
		cells = append(cells, newCell(&values[i]))
	}

	return cells
}

// nullableFixedCells reads the indicator at each row index: the NullData
// sentinel yields a null cell, any other value marks the i-th element of the
// value array as valid.
func nullableFixedCells[T any](values []T, indicators []odbc.Indicator, newCell func(*T) Cell) []Cell {
	cells := make([]Cell, 0, len(values))

	for i := range values {
		if indicators[i] == odbc.NullData {
			cells = append(cells, newCell(nil))
			continue
		}

		cells = append(cells, newCell(&values[i]))
	}

	return cells
}

func newDateCell(v *odbc.Date) Cell {
	if v == nil {
		return DateCell{}
	}

	return DateCell{Date: *v, Valid: true}
}

func newTimeCell(v *odbc.Time) Cell {
	if v == nil {
		return TimeCell{}
	}

	return TimeCell{Time: *v, Valid: true}
}

func newTimestampCell(v *odbc.Timestamp) Cell {
	if v == nil {
		return TimestampCell{}
	}

	return TimestampCell{Timestamp: *v, Valid: true}
}

func newInt8Cell(v *int8) Cell {
	if v == nil {
		return Int8Cell{}
	}

	return Int8Cell{Value: *v, Valid: true}
}

func newInt16Cell(v *int16) Cell {
	if v == nil {
		return Int16Cell{}
	}

	return Int16Cell{Value: *v, Valid: true}
}

func newInt32Cell(v *int32) Cell {
	if v == nil {
		return Int32Cell{}
	}

	return Int32Cell{Value: *v, Valid: true}
}

func newInt64Cell(v *int64) Cell {
	if v == nil {
		return Int64Cell{}
	}

	return Int64Cell{Value: *v, Valid: true}
}

func newUint8Cell(v *uint8) Cell {
	if v == nil {
		return Uint8Cell{}
	}

	return Uint8Cell{Value: *v, Valid: true}
}

func newFloat32Cell(v *float32) Cell {
	if v == nil {
		return Float32Cell{}
	}

	return Float32Cell{Value: *v, Valid: true}
}

func newFloat64Cell(v *float64) Cell {
	if v == nil {
		return Float64Cell{}
	}

	return Float64Cell{Value: *v, Valid: true}
}

func newBitCell(v *odbc.Bit) Cell {
	if v == nil {
		return BitCell{}
	}

	return BitCell{Value: v.Bool(), Valid: true}
}

// decodeUTF8Lossy substitutes the Unicode replacement character for invalid
// byte sequences instead of failing.
func decodeUTF8Lossy(span []byte) string {
	if utf8.Valid(span) {
		return string(span)
	}

	return strings.ToValidUTF8(string(span), string(utf8.RuneError))
}

// decodeUTF16 decodes strictly: an unpaired surrogate is reported as an
// error rather than replaced, unlike the stdlib utf16.Decode behavior.
func decodeUTF16(units []uint16) (string, error) {
	var sb strings.Builder

	for i := 0; i < len(units); i++ {
		u := units[i]

		switch {
		case u < 0xD800 || u > 0xDFFF:
			sb.WriteRune(rune(u))
		case u < 0xDC00:
			// High surrogate; a low surrogate must follow.
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return "", fmt.Errorf("unpaired high surrogate %#04x at offset %d: %w",
					u, i, common.ErrInvalidUTF16)
			}

			sb.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		default:
			return "", fmt.Errorf("unpaired low surrogate %#04x at offset %d: %w",
				u, i, common.ErrInvalidUTF16)
		}
	}

	return sb.String(), nil
}
