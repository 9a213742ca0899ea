package bridge

import (
	"encoding/hex"
	"strconv"

	"github.com/zidaye/odbc-bridge/app/odbc"
)

// NullLiteral is the textual form of an absent payload. One fixed formatting
// convention is applied uniformly so that consumers can print cells without
// inspecting their kind.
const NullLiteral = "NULL"

// Cell is one row's worth of data for one column: a typed payload plus an
// explicit validity flag. The set of implementations is closed and mirrors
// BufferKind one to one; within a materialized column every cell carries the
// column's kind, only validity varies row to row.
type Cell interface {
	Kind() BufferKind
	IsNull() bool
	// String returns the deterministic human-readable form of the cell,
	// NullLiteral when the payload is absent.
	String() string
}

type TextCell struct {
	Text  string
	Valid bool
}

func (c TextCell) Kind() BufferKind { return KindText }
func (c TextCell) IsNull() bool     { return !c.Valid }

func (c TextCell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return c.Text
}

type WTextCell struct {
	Text  string
	Valid bool
}

func (c WTextCell) Kind() BufferKind { return KindWText }
func (c WTextCell) IsNull() bool     { return !c.Valid }

func (c WTextCell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return c.Text
}

type BinaryCell struct {
	Bytes []byte
	Valid bool
}

func (c BinaryCell) Kind() BufferKind { return KindBinary }
func (c BinaryCell) IsNull() bool     { return !c.Valid }

func (c BinaryCell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return "0x" + hex.EncodeToString(c.Bytes)
}

type DateCell struct {
	Date  odbc.Date
	Valid bool
}

func (c DateCell) Kind() BufferKind { return KindDate }
func (c DateCell) IsNull() bool     { return !c.Valid }

func (c DateCell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return c.Date.String()
}

type TimeCell struct {
	Time  odbc.Time
	Valid bool
}

func (c TimeCell) Kind() BufferKind { return KindTime }
func (c TimeCell) IsNull() bool     { return !c.Valid }

func (c TimeCell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return c.Time.String()
}

type TimestampCell struct {
	Timestamp odbc.Timestamp
	Valid     bool
}

func (c TimestampCell) Kind() BufferKind { return KindTimestamp }
func (c TimestampCell) IsNull() bool     { return !c.Valid }

func (c TimestampCell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return c.Timestamp.String()
}

type Int8Cell struct {
	Value int8
	Valid bool
}

func (c Int8Cell) Kind() BufferKind { return KindInt8 }
func (c Int8Cell) IsNull() bool     { return !c.Valid }

func (c Int8Cell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return strconv.FormatInt(int64(c.Value), 10)
}

type Int16Cell struct {
	Value int16
	Valid bool
}

func (c Int16Cell) Kind() BufferKind { return KindInt16 }
func (c Int16Cell) IsNull() bool     { return !c.Valid }

func (c Int16Cell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return strconv.FormatInt(int64(c.Value), 10)
}

type Int32Cell struct {
	Value int32
	Valid bool
}

func (c Int32Cell) Kind() BufferKind { return KindInt32 }
func (c Int32Cell) IsNull() bool     { return !c.Valid }

func (c Int32Cell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return strconv.FormatInt(int64(c.Value), 10)
}

type Int64Cell struct {
	Value int64
	Valid bool
}

func (c Int64Cell) Kind() BufferKind { return KindInt64 }
func (c Int64Cell) IsNull() bool     { return !c.Valid }

func (c Int64Cell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return strconv.FormatInt(c.Value, 10)
}

type Uint8Cell struct {
	Value uint8
	Valid bool
}

func (c Uint8Cell) Kind() BufferKind { return KindUint8 }
func (c Uint8Cell) IsNull() bool     { return !c.Valid }

func (c Uint8Cell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return strconv.FormatUint(uint64(c.Value), 10)
}

type Float32Cell struct {
	Value float32
	Valid bool
}

func (c Float32Cell) Kind() BufferKind { return KindFloat32 }
func (c Float32Cell) IsNull() bool     { return !c.Valid }

func (c Float32Cell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return strconv.FormatFloat(float64(c.Value), 'g', -1, 32)
}

type Float64Cell struct {
	Value float64
	Valid bool
}

func (c Float64Cell) Kind() BufferKind { return KindFloat64 }
func (c Float64Cell) IsNull() bool     { return !c.Valid }

func (c Float64Cell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

type BitCell struct {
	Value bool
	Valid bool
}

func (c BitCell) Kind() BufferKind { return KindBit }
func (c BitCell) IsNull() bool     { return !c.Valid }

func (c BitCell) String() string {
	if !c.Valid {
		return NullLiteral
	}

	return strconv.FormatBool(c.Value)
}
