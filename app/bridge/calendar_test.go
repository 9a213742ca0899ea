package bridge

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/require"

	"github.com/zidaye/odbc-bridge/app/odbc"
	"github.com/zidaye/odbc-bridge/common"
)

func TestDateFromODBC(t *testing.T) {
	type testCase struct {
		input  odbc.Date
		output civil.Date
		err    error
	}

	tcs := []testCase{
		{
			input:  odbc.Date{Year: 2020, Month: 1, Day: 1},
			output: civil.Date{Year: 2020, Month: time.January, Day: 1},
		},
		{
			// leap year
			input:  odbc.Date{Year: 2020, Month: 2, Day: 29},
			output: civil.Date{Year: 2020, Month: time.February, Day: 29},
		},
		{
			input:  odbc.Date{Year: 2022, Month: 12, Day: 31},
			output: civil.Date{Year: 2022, Month: time.December, Day: 31},
		},
		{
			// not a leap year
			input: odbc.Date{Year: 2021, Month: 2, Day: 29},
			err:   common.ErrValueOutOfTypeBounds,
		},
		{
			input: odbc.Date{Year: 2021, Month: 2, Day: 30},
			err:   common.ErrValueOutOfTypeBounds,
		},
		{
			input: odbc.Date{Year: 2021, Month: 13, Day: 1},
			err:   common.ErrValueOutOfTypeBounds,
		},
		{
			input: odbc.Date{Year: 2021, Month: 0, Day: 1},
			err:   common.ErrValueOutOfTypeBounds,
		},
		{
			input: odbc.Date{Year: 2021, Month: 4, Day: 31},
			err:   common.ErrValueOutOfTypeBounds,
		},
		{
			input: odbc.Date{Year: 2021, Month: 6, Day: 0},
			err:   common.ErrValueOutOfTypeBounds,
		},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.input.String(), func(t *testing.T) {
			output, err := DateFromODBC(tc.input)

			if tc.err != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.err))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.output, output)
		})
	}
}

func TestTimeFromODBC(t *testing.T) {
	type testCase struct {
		input  odbc.Time
		output civil.Time
		err    error
	}

	tcs := []testCase{
		{
			input:  odbc.Time{Hour: 0, Minute: 0, Second: 0},
			output: civil.Time{},
		},
		{
			input:  odbc.Time{Hour: 23, Minute: 59, Second: 59},
			output: civil.Time{Hour: 23, Minute: 59, Second: 59},
		},
		{
			input:  odbc.Time{Hour: 3, Minute: 1, Second: 1},
			output: civil.Time{Hour: 3, Minute: 1, Second: 1},
		},
		{
			input: odbc.Time{Hour: 24, Minute: 0, Second: 0},
			err:   common.ErrValueOutOfTypeBounds,
		},
		{
			input: odbc.Time{Hour: 12, Minute: 60, Second: 0},
			err:   common.ErrValueOutOfTypeBounds,
		},
		{
			input: odbc.Time{Hour: 12, Minute: 0, Second: 60},
			err:   common.ErrValueOutOfTypeBounds,
		},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.input.String(), func(t *testing.T) {
			output, err := TimeFromODBC(tc.input)

			if tc.err != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.err))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.output, output)
		})
	}
}

func TestTimeWithFractionFromODBC(t *testing.T) {
	output, err := TimeWithFractionFromODBC(odbc.Time{Hour: 19, Minute: 31, Second: 59}, 123456789)
	require.NoError(t, err)
	require.Equal(t, civil.Time{Hour: 19, Minute: 31, Second: 59, Nanosecond: 123456789}, output)

	_, err = TimeWithFractionFromODBC(odbc.Time{Hour: 19, Minute: 31, Second: 59}, 1_000_000_000)
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrValueOutOfTypeBounds))
	require.Contains(t, err.Error(), "nanosecond 1000000000")
}

func TestDateTimeFromODBC(t *testing.T) {
	type testCase struct {
		name   string
		input  odbc.Timestamp
		output civil.DateTime
		err    error
	}

	tcs := []testCase{
		{
			name: "valid with fraction",
			input: odbc.Timestamp{
				Year: 2020, Month: 2, Day: 29,
				Hour: 23, Minute: 59, Second: 59, Fraction: 999_999_999,
			},
			output: civil.DateTime{
				Date: civil.Date{Year: 2020, Month: time.February, Day: 29},
				Time: civil.Time{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999_999_999},
			},
		},
		{
			name:  "midnight no fraction",
			input: odbc.Timestamp{Year: 1970, Month: 1, Day: 1},
			output: civil.DateTime{
				Date: civil.Date{Year: 1970, Month: time.January, Day: 1},
			},
		},
		{
			name:  "invalid date part",
			input: odbc.Timestamp{Year: 2021, Month: 2, Day: 29, Hour: 12},
			err:   common.ErrValueOutOfTypeBounds,
		},
		{
			name:  "invalid time part",
			input: odbc.Timestamp{Year: 2021, Month: 2, Day: 28, Hour: 24},
			err:   common.ErrValueOutOfTypeBounds,
		},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			output, err := DateTimeFromODBC(tc.input)

			if tc.err != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.err))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.output, output)
		})
	}
}

func TestCalendarErrorNamesField(t *testing.T) {
	_, err := DateFromODBC(odbc.Date{Year: 2021, Month: 13, Day: 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "month 13")

	_, err = DateFromODBC(odbc.Date{Year: 2021, Month: 2, Day: 29})
	require.Error(t, err)
	require.Contains(t, err.Error(), "day 29")

	_, err = TimeFromODBC(odbc.Time{Hour: 24})
	require.Error(t, err)
	require.Contains(t, err.Error(), "hour 24")
}
