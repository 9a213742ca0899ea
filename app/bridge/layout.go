// Package bridge converts driver-filled ODBC column buffers into a
// strongly-typed, nullable columnar representation. It owns the mapping from
// SQL data type tags to physical buffer layouts, the materialization of raw
// buffers into cells, and the conversion of ODBC date/time structs into
// calendar values.
package bridge

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/zidaye/odbc-bridge/app/odbc"
	"github.com/zidaye/odbc-bridge/common"
)

// BufferKind identifies the physical storage layout a column buffer uses.
type BufferKind int8

const (
	KindInvalid BufferKind = iota
	KindText
	KindWText
	KindBinary
	KindDate
	KindTime
	KindTimestamp
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindFloat32
	KindFloat64
	KindBit
)

var bufferKindNames = map[BufferKind]string{
	KindInvalid:   "Invalid",
	KindText:      "Text",
	KindWText:     "WText",
	KindBinary:    "Binary",
	KindDate:      "Date",
	KindTime:      "Time",
	KindTimestamp: "Timestamp",
	KindInt8:      "Int8",
	KindInt16:     "Int16",
	KindInt32:     "Int32",
	KindInt64:     "Int64",
	KindUint8:     "Uint8",
	KindFloat32:   "Float32",
	KindFloat64:   "Float64",
	KindBit:       "Bit",
}

func (k BufferKind) String() string {
	if name, ok := bufferKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("BufferKind(%d)", int8(k))
}

// ElementSize returns the number of bytes one row occupies in a fixed-width
// value array of this kind, or 0 for variable-width kinds (text, wide text,
// binary), whose per-row size is driver-negotiated.
func (k BufferKind) ElementSize() int {
	switch k {
	case KindDate:
		return 6
	case KindTime:
		return 6
	case KindTimestamp:
		return 16
	case KindInt8, KindUint8, KindBit:
		return 1
	case KindInt16:
		return 2
	case KindInt32, KindFloat32:
		return 4
	case KindInt64, KindFloat64:
		return 8
	}

	return 0
}

// ColumnDescriptor is the logical description of a result-set column as
// reported by prepared-statement metadata.
type ColumnDescriptor struct {
	Name     string
	DataType odbc.DataType
	Nullable bool
}

// BufferDescription tells the driver layer what physical buffer to bind for
// a column.
type BufferDescription struct {
	Kind     BufferKind
	Nullable bool
}

// bufferKinds is the total-but-partial mapping from SQL data type tags to
// storage kinds. DECIMAL and NUMERIC columns are fetched through narrow-text
// buffers to avoid precision loss in SQL_NUMERIC_STRUCT handling.
var bufferKinds = map[odbc.DataType]BufferKind{
	odbc.TypeChar:          KindText,
	odbc.TypeVarchar:       KindText,
	odbc.TypeLongVarchar:   KindText,
	odbc.TypeNumeric:       KindText,
	odbc.TypeDecimal:       KindText,
	odbc.TypeWChar:         KindWText,
	odbc.TypeWVarchar:      KindWText,
	odbc.TypeWLongVarchar:  KindWText,
	odbc.TypeBinary:        KindBinary,
	odbc.TypeVarbinary:     KindBinary,
	odbc.TypeLongVarbinary: KindBinary,
	odbc.TypeDate:          KindDate,
	odbc.TypeTime:          KindTime,
	odbc.TypeTimestamp:     KindTimestamp,
	odbc.TypeTinyInt:       KindInt8,
	odbc.TypeSmallInt:      KindInt16,
	odbc.TypeInteger:       KindInt32,
	odbc.TypeBigInt:        KindInt64,
	odbc.TypeReal:          KindFloat32,
	odbc.TypeFloat:         KindFloat64,
	odbc.TypeDouble:        KindFloat64,
	odbc.TypeBit:           KindBit,
}

// ResolveLayout derives the physical buffer layout needed to receive a
// column's data. It fails for driver-specific or otherwise unsupported SQL
// types; the caller decides whether to skip the column or abort the query.
func ResolveLayout(col ColumnDescriptor) (BufferDescription, error) {
	kind, ok := bufferKinds[col.DataType]
	if !ok {
		return BufferDescription{}, fmt.Errorf(
			"resolve buffer layout for column '%s' of type %v: %w",
			col.Name, col.DataType, common.ErrDataTypeNotSupported)
	}

	return BufferDescription{Kind: kind, Nullable: col.Nullable}, nil
}

// SupportedTypes lists every SQL data type tag ResolveLayout accepts, in
// ascending tag order.
func SupportedTypes() []odbc.DataType {
	types := maps.Keys(bufferKinds)
	slices.Sort(types)

	return types
}
