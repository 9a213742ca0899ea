package bridge

import "github.com/zidaye/odbc-bridge/app/odbc"

// ColumnBuffer is a read-only view over one column's worth of rows, filled
// by the driver layer according to a BufferDescription. The set of
// implementations is closed; Materialize dispatches over it exhaustively.
//
// Fixed-width kinds come in two variants: a plain value array whose rows are
// present by construction, and a nullable variant pairing the value array
// with a per-row indicator array. The two arrays of a nullable variant must
// have equal length; the driver layer guarantees this pairing invariant and
// it is not re-validated here.
type ColumnBuffer interface {
	Kind() BufferKind
	Rows() int

	materialize() ([]Cell, error)
}

// TextColumn holds length-prefixed narrow-text spans; a nil span is NULL.
type TextColumn [][]byte

func (c TextColumn) Kind() BufferKind { return KindText }
func (c TextColumn) Rows() int        { return len(c) }

// WTextColumn holds UTF-16 code unit spans; a nil span is NULL.
type WTextColumn [][]uint16

func (c WTextColumn) Kind() BufferKind { return KindWText }
func (c WTextColumn) Rows() int        { return len(c) }

// BinaryColumn holds variable-length binary spans; a nil span is NULL.
type BinaryColumn [][]byte

func (c BinaryColumn) Kind() BufferKind { return KindBinary }
func (c BinaryColumn) Rows() int        { return len(c) }

type DateColumn []odbc.Date

func (c DateColumn) Kind() BufferKind { return KindDate }
func (c DateColumn) Rows() int        { return len(c) }

type TimeColumn []odbc.Time

func (c TimeColumn) Kind() BufferKind { return KindTime }
func (c TimeColumn) Rows() int        { return len(c) }

type TimestampColumn []odbc.Timestamp

func (c TimestampColumn) Kind() BufferKind { return KindTimestamp }
func (c TimestampColumn) Rows() int        { return len(c) }

type Int8Column []int8

func (c Int8Column) Kind() BufferKind { return KindInt8 }
func (c Int8Column) Rows() int        { return len(c) }

type Int16Column []int16

func (c Int16Column) Kind() BufferKind { return KindInt16 }
func (c Int16Column) Rows() int        { return len(c) }

type Int32Column []int32

func (c Int32Column) Kind() BufferKind { return KindInt32 }
func (c Int32Column) Rows() int        { return len(c) }

type Int64Column []int64

func (c Int64Column) Kind() BufferKind { return KindInt64 }
func (c Int64Column) Rows() int        { return len(c) }

type Uint8Column []uint8

func (c Uint8Column) Kind() BufferKind { return KindUint8 }
func (c Uint8Column) Rows() int        { return len(c) }

type Float32Column []float32

func (c Float32Column) Kind() BufferKind { return KindFloat32 }
func (c Float32Column) Rows() int        { return len(c) }

type Float64Column []float64

func (c Float64Column) Kind() BufferKind { return KindFloat64 }
func (c Float64Column) Rows() int        { return len(c) }

type BitColumn []odbc.Bit

func (c BitColumn) Kind() BufferKind { return KindBit }
func (c BitColumn) Rows() int        { return len(c) }

type NullableDateColumn struct {
	Values     []odbc.Date
	Indicators []odbc.Indicator
}

func (c NullableDateColumn) Kind() BufferKind { return KindDate }
func (c NullableDateColumn) Rows() int        { return len(c.Values) }

type NullableTimeColumn struct {
	Values     []odbc.Time
	Indicators []odbc.Indicator
}

func (c NullableTimeColumn) Kind() BufferKind { return KindTime }
func (c NullableTimeColumn) Rows() int        { return len(c.Values) }

type NullableTimestampColumn struct {
	Values     []odbc.Timestamp
	Indicators []odbc.Indicator
}

func (c NullableTimestampColumn) Kind() BufferKind { return KindTimestamp }
func (c NullableTimestampColumn) Rows() int        { return len(c.Values) }

type NullableInt8Column struct {
	Values     []int8
	Indicators []odbc.Indicator
}

func (c NullableInt8Column) Kind() BufferKind { return KindInt8 }
func (c NullableInt8Column) Rows() int        { return len(c.Values) }

type NullableInt16Column struct {
	Values     []int16
	Indicators []odbc.Indicator
}

func (c NullableInt16Column) Kind() BufferKind { return KindInt16 }
func (c NullableInt16Column) Rows() int        { return len(c.Values) }

type NullableInt32Column struct {
	Values     []int32
	Indicators []odbc.Indicator
}

func (c NullableInt32Column) Kind() BufferKind { return KindInt32 }
func (c NullableInt32Column) Rows() int        { return len(c.Values) }

type NullableInt64Column struct {
	Values     []int64
	Indicators []odbc.Indicator
}

func (c NullableInt64Column) Kind() BufferKind { return KindInt64 }
func (c NullableInt64Column) Rows() int        { return len(c.Values) }

type NullableUint8Column struct {
	Values     []uint8
	Indicators []odbc.Indicator
}

func (c NullableUint8Column) Kind() BufferKind { return KindUint8 }
func (c NullableUint8Column) Rows() int        { return len(c.Values) }

type NullableFloat32Column struct {
	Values     []float32
	Indicators []odbc.Indicator
}

func (c NullableFloat32Column) Kind() BufferKind { return KindFloat32 }
func (c NullableFloat32Column) Rows() int        { return len(c.Values) }

type NullableFloat64Column struct {
	Values     []float64
	Indicators []odbc.Indicator
}

func (c NullableFloat64Column) Kind() BufferKind { return KindFloat64 }
func (c NullableFloat64Column) Rows() int        { return len(c.Values) }

type NullableBitColumn struct {
	Values     []odbc.Bit
	Indicators []odbc.Indicator
}

func (c NullableBitColumn) Kind() BufferKind { return KindBit }
func (c NullableBitColumn) Rows() int        { return len(c.Values) }
