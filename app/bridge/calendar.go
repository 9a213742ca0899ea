package bridge

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"

	"github.com/zidaye/odbc-bridge/app/odbc"
	"github.com/zidaye/odbc-bridge/common"
)

const maxNanosecond = 999_999_999

// DateFromODBC converts an ODBC date struct into a validated calendar date.
// Validation matches the calendar library's own rules: no silent correction
// of out-of-range components (February 30 is rejected, not normalized).
func DateFromODBC(d odbc.Date) (civil.Date, error) {
	if d.Month < 1 || d.Month > 12 {
		return civil.Date{}, fmt.Errorf("month %d: %w", d.Month, common.ErrValueOutOfTypeBounds)
	}

	out := civil.Date{Year: int(d.Year), Month: time.Month(d.Month), Day: int(d.Day)}
	if !out.IsValid() {
		return civil.Date{}, fmt.Errorf("day %d of %04d-%02d: %w",
			d.Day, d.Year, d.Month, common.ErrValueOutOfTypeBounds)
	}

	return out, nil
}

// TimeFromODBC converts an ODBC time struct into a validated wall-clock
// time. The ODBC struct carries no fractional seconds; see
// TimeWithFractionFromODBC when the column reports sub-second precision.
func TimeFromODBC(t odbc.Time) (civil.Time, error) {
	return TimeWithFractionFromODBC(t, 0)
}

// TimeWithFractionFromODBC converts an ODBC time struct plus a separately
// reported fraction (in nanoseconds) into a validated wall-clock time.
func TimeWithFractionFromODBC(t odbc.Time, nanosecond uint32) (civil.Time, error) {
	switch {
	case t.Hour > 23:
		return civil.Time{}, fmt.Errorf("hour %d: %w", t.Hour, common.ErrValueOutOfTypeBounds)
	case t.Minute > 59:
		return civil.Time{}, fmt.Errorf("minute %d: %w", t.Minute, common.ErrValueOutOfTypeBounds)
	case t.Second > 59:
		return civil.Time{}, fmt.Errorf("second %d: %w", t.Second, common.ErrValueOutOfTypeBounds)
	case nanosecond > maxNanosecond:
		return civil.Time{}, fmt.Errorf("nanosecond %d: %w", nanosecond, common.ErrValueOutOfTypeBounds)
	}

	out := civil.Time{
		Hour:       int(t.Hour),
		Minute:     int(t.Minute),
		Second:     int(t.Second),
		Nanosecond: int(nanosecond),
	}

	if !out.IsValid() {
		return civil.Time{}, fmt.Errorf("time %02d:%02d:%02d.%09d: %w",
			t.Hour, t.Minute, t.Second, nanosecond, common.ErrValueOutOfTypeBounds)
	}

	return out, nil
}

// DateTimeFromODBC decomposes an ODBC timestamp struct into its date and
// time parts (Fraction becomes the nanosecond component), converts each and
// combines them. A failure in either sub-conversion propagates unchanged.
func DateTimeFromODBC(ts odbc.Timestamp) (civil.DateTime, error) {
	date, err := DateFromODBC(odbc.Date{Year: ts.Year, Month: ts.Month, Day: ts.Day})
	if err != nil {
		return civil.DateTime{}, fmt.Errorf("convert date part of timestamp: %w", err)
	}

	tm, err := TimeWithFractionFromODBC(
		odbc.Time{Hour: ts.Hour, Minute: ts.Minute, Second: ts.Second},
		ts.Fraction,
	)
	if err != nil {
		return civil.DateTime{}, fmt.Errorf("convert time part of timestamp: %w", err)
	}

	return civil.DateTime{Date: date, Time: tm}, nil
}
