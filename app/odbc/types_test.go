package odbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataTypeString(t *testing.T) {
	require.Equal(t, "SQL_VARCHAR", TypeVarchar.String())
	require.Equal(t, "SQL_WVARCHAR", TypeWVarchar.String())
	require.Equal(t, "SQL_TYPE_TIMESTAMP", TypeTimestamp.String())
	require.Equal(t, "DataType(999)", DataType(999).String())
}

func TestBitBool(t *testing.T) {
	require.False(t, Bit(0).Bool())
	require.True(t, Bit(1).Bool())
	require.True(t, Bit(255).Bool())
}

func TestStructString(t *testing.T) {
	require.Equal(t, "2020-01-01", Date{Year: 2020, Month: 1, Day: 1}.String())
	require.Equal(t, "-0044-03-15", Date{Year: -44, Month: 3, Day: 15}.String())
	require.Equal(t, "19:31:59", Time{Hour: 19, Minute: 31, Second: 59}.String())
	require.Equal(t, "2020-01-01T00:00:00",
		Timestamp{Year: 2020, Month: 1, Day: 1}.String())
	require.Equal(t, "2020-01-01T00:00:00.000000001",
		Timestamp{Year: 2020, Month: 1, Day: 1, Fraction: 1}.String())
}
