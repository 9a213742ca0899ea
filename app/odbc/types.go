// Package odbc holds the fixed points of the driver boundary: the SQL data
// type tags a driver reports for result-set columns, the C-level structs it
// writes into bound buffers, and the out-of-band null indicator convention.
// The layouts must match the ODBC specification exactly; a mismatch in
// assumed widths or signedness is a silent-corruption risk, not a logic bug.
package odbc

import (
	"fmt"
	"strconv"
)

// DataType is the SQL data type tag reported by the driver for a column.
// Values follow the ODBC specification (sql.h / sqlext.h).
type DataType int16

const (
	TypeUnknown       DataType = 0
	TypeChar          DataType = 1
	TypeNumeric       DataType = 2
	TypeDecimal       DataType = 3
	TypeInteger       DataType = 4
	TypeSmallInt      DataType = 5
	TypeFloat         DataType = 6
	TypeReal          DataType = 7
	TypeDouble        DataType = 8
	TypeVarchar       DataType = 12
	TypeDate          DataType = 91
	TypeTime          DataType = 92
	TypeTimestamp     DataType = 93
	TypeLongVarchar   DataType = -1
	TypeBinary        DataType = -2
	TypeVarbinary     DataType = -3
	TypeLongVarbinary DataType = -4
	TypeBigInt        DataType = -5
	TypeTinyInt       DataType = -6
	TypeBit           DataType = -7
	TypeWChar         DataType = -8
	TypeWVarchar      DataType = -9
	TypeWLongVarchar  DataType = -10
	TypeGUID          DataType = -11
)

var dataTypeNames = map[DataType]string{
	TypeUnknown:       "SQL_UNKNOWN_TYPE",
	TypeChar:          "SQL_CHAR",
	TypeNumeric:       "SQL_NUMERIC",
	TypeDecimal:       "SQL_DECIMAL",
	TypeInteger:       "SQL_INTEGER",
	TypeSmallInt:      "SQL_SMALLINT",
	TypeFloat:         "SQL_FLOAT",
	TypeReal:          "SQL_REAL",
	TypeDouble:        "SQL_DOUBLE",
	TypeVarchar:       "SQL_VARCHAR",
	TypeDate:          "SQL_TYPE_DATE",
	TypeTime:          "SQL_TYPE_TIME",
	TypeTimestamp:     "SQL_TYPE_TIMESTAMP",
	TypeLongVarchar:   "SQL_LONGVARCHAR",
	TypeBinary:        "SQL_BINARY",
	TypeVarbinary:     "SQL_VARBINARY",
	TypeLongVarbinary: "SQL_LONGVARBINARY",
	TypeBigInt:        "SQL_BIGINT",
	TypeTinyInt:       "SQL_TINYINT",
	TypeBit:           "SQL_BIT",
	TypeWChar:         "SQL_WCHAR",
	TypeWVarchar:      "SQL_WVARCHAR",
	TypeWLongVarchar:  "SQL_WLONGVARCHAR",
	TypeGUID:          "SQL_GUID",
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("DataType(%d)", int16(t))
}

// Indicator is the per-row length/null marker the driver writes next to a
// bound value array. The driver sets it to NullData when the corresponding
// data slot is not meaningful (SQL NULL); any other value marks the slot
// as valid.
type Indicator int64

// NullData is the reserved SQL_NULL_DATA sentinel.
const NullData Indicator = -1

// Date mirrors SQL_DATE_STRUCT.
type Date struct {
	Year  int16
	Month uint16
	Day   uint16
}

// String formats the date as YYYY-MM-DD without validating it.
func (d Date) String() string {
	sign := ""
	year := int64(d.Year)

	if year < 0 {
		sign = "-"
		year = -year
	}

	return sign + pad(uint64(year), 4) + "-" + pad(uint64(d.Month), 2) + "-" + pad(uint64(d.Day), 2)
}

// Time mirrors SQL_TIME_STRUCT. The struct carries no fractional seconds;
// drivers report those separately when the column has sub-second precision.
type Time struct {
	Hour   uint16
	Minute uint16
	Second uint16
}

// String formats the time as HH:MM:SS without validating it.
func (t Time) String() string {
	return pad(uint64(t.Hour), 2) + ":" + pad(uint64(t.Minute), 2) + ":" + pad(uint64(t.Second), 2)
}

// Timestamp mirrors SQL_TIMESTAMP_STRUCT. Fraction is in billionths of a
// second (nanoseconds).
type Timestamp struct {
	Year     int16
	Month    uint16
	Day      uint16
	Hour     uint16
	Minute   uint16
	Second   uint16
	Fraction uint32
}

// String formats the timestamp as YYYY-MM-DDTHH:MM:SS with the fractional
// part appended only when present.
func (ts Timestamp) String() string {
	date := Date{Year: ts.Year, Month: ts.Month, Day: ts.Day}
	tm := Time{Hour: ts.Hour, Minute: ts.Minute, Second: ts.Second}

	out := date.String() + "T" + tm.String()
	if ts.Fraction != 0 {
		out += "." + pad(uint64(ts.Fraction), 9)
	}

	return out
}

func pad(v uint64, width int) string {
	out := strconv.FormatUint(v, 10)
	for len(out) < width {
		out = "0" + out
	}

	return out
}

// Bit is a single SQL_BIT value as stored in a bound buffer.
type Bit uint8

// Bool applies the canonical truthiness rule: nonzero means true.
func (b Bit) Bool() bool { return b != 0 }
