package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zidaye/odbc-bridge/app/odbc"
	"github.com/zidaye/odbc-bridge/common"
)

func TestResolveLayout(t *testing.T) {
	type testCase struct {
		dataType odbc.DataType
		kind     BufferKind
	}

	tcs := []testCase{
		{odbc.TypeChar, KindText},
		{odbc.TypeVarchar, KindText},
		{odbc.TypeLongVarchar, KindText},
		{odbc.TypeNumeric, KindText},
		{odbc.TypeDecimal, KindText},
		{odbc.TypeWChar, KindWText},
		{odbc.TypeWVarchar, KindWText},
		{odbc.TypeWLongVarchar, KindWText},
		{odbc.TypeBinary, KindBinary},
		{odbc.TypeVarbinary, KindBinary},
		{odbc.TypeLongVarbinary, KindBinary},
		{odbc.TypeDate, KindDate},
		{odbc.TypeTime, KindTime},
		{odbc.TypeTimestamp, KindTimestamp},
		{odbc.TypeTinyInt, KindInt8},
		{odbc.TypeSmallInt, KindInt16},
		{odbc.TypeInteger, KindInt32},
		{odbc.TypeBigInt, KindInt64},
		{odbc.TypeReal, KindFloat32},
		{odbc.TypeFloat, KindFloat64},
		{odbc.TypeDouble, KindFloat64},
		{odbc.TypeBit, KindBit},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.dataType.String(), func(t *testing.T) {
			layout, err := ResolveLayout(ColumnDescriptor{
				Name:     "col",
				DataType: tc.dataType,
				Nullable: true,
			})
			require.NoError(t, err)
			require.Equal(t, tc.kind, layout.Kind)
			require.True(t, layout.Nullable)

			// The nullability flag is copied verbatim.
			layout, err = ResolveLayout(ColumnDescriptor{Name: "col", DataType: tc.dataType})
			require.NoError(t, err)
			require.False(t, layout.Nullable)
		})
	}
}

func TestResolveLayoutCoversSupportedTypes(t *testing.T) {
	types := SupportedTypes()
	require.Len(t, types, 22)

	for _, dataType := range types {
		_, err := ResolveLayout(ColumnDescriptor{Name: "col", DataType: dataType})
		require.NoError(t, err)
	}
}

func TestResolveLayoutUnsupportedType(t *testing.T) {
	tcs := []odbc.DataType{
		odbc.TypeUnknown,
		odbc.TypeGUID,
		odbc.DataType(999),
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.String(), func(t *testing.T) {
			_, err := ResolveLayout(ColumnDescriptor{Name: "col", DataType: tc})
			require.Error(t, err)
			require.True(t, errors.Is(err, common.ErrDataTypeNotSupported))
			// The offending tag is surfaced for diagnostic display.
			require.Contains(t, err.Error(), tc.String())
		})
	}
}

func TestBufferKindElementSize(t *testing.T) {
	require.Equal(t, 0, KindText.ElementSize())
	require.Equal(t, 0, KindWText.ElementSize())
	require.Equal(t, 0, KindBinary.ElementSize())
	require.Equal(t, 6, KindDate.ElementSize())
	require.Equal(t, 6, KindTime.ElementSize())
	require.Equal(t, 16, KindTimestamp.ElementSize())
	require.Equal(t, 1, KindInt8.ElementSize())
	require.Equal(t, 2, KindInt16.ElementSize())
	require.Equal(t, 4, KindInt32.ElementSize())
	require.Equal(t, 8, KindInt64.ElementSize())
	require.Equal(t, 1, KindUint8.ElementSize())
	require.Equal(t, 4, KindFloat32.ElementSize())
	require.Equal(t, 8, KindFloat64.ElementSize())
	require.Equal(t, 1, KindBit.ElementSize())
}
