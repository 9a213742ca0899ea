package odbc

import "fmt"

// StateClass groups SQLSTATE values by their two-character class code.
type StateClass int

const (
	ClassUnknown StateClass = iota
	ClassSuccess
	ClassWarning
	ClassNoData
	ClassDynamicSQLError
	ClassConnectionException
	ClassFeatureNotSupported
	ClassDataException
	ClassConstraintViolation
	ClassInvalidCursorState
	ClassInvalidTransactionState
	ClassSyntaxErrorOrAccessViolation
	ClassGeneralError
)

var stateClassNames = map[StateClass]string{
	ClassUnknown:                      "unknown",
	ClassSuccess:                      "success",
	ClassWarning:                      "warning",
	ClassNoData:                       "no data",
	ClassDynamicSQLError:              "dynamic SQL error",
	ClassConnectionException:          "connection exception",
	ClassFeatureNotSupported:          "feature not supported",
	ClassDataException:                "data exception",
	ClassConstraintViolation:          "integrity constraint violation",
	ClassInvalidCursorState:           "invalid cursor state",
	ClassInvalidTransactionState:      "invalid transaction state",
	ClassSyntaxErrorOrAccessViolation: "syntax error or access violation",
	ClassGeneralError:                 "general error",
}

func (c StateClass) String() string {
	if name, ok := stateClassNames[c]; ok {
		return name
	}

	return fmt.Sprintf("StateClass(%d)", int(c))
}

// DiagRecord is one diagnostic record reported by the driver via
// SQLGetDiagRec: a five-character SQLSTATE, the driver-specific native
// error code and the human-readable message.
type DiagRecord struct {
	State   string
	Native  int32
	Message string
}

func (r DiagRecord) Error() string {
	return fmt.Sprintf("[%s] %s (native=%d)", r.State, r.Message, r.Native)
}

// Class maps the SQLSTATE class code (first two characters) to a StateClass.
func (r DiagRecord) Class() StateClass {
	if len(r.State) < 2 {
		return ClassUnknown
	}

	switch r.State[:2] {
	case "00":
		return ClassSuccess
	case "01":
		return ClassWarning
	case "02":
		return ClassNoData
	case "07":
		return ClassDynamicSQLError
	case "08":
		return ClassConnectionException
	case "0A":
		return ClassFeatureNotSupported
	case "22":
		return ClassDataException
	case "23":
		return ClassConstraintViolation
	case "24":
		return ClassInvalidCursorState
	case "25":
		return ClassInvalidTransactionState
	case "42":
		return ClassSyntaxErrorOrAccessViolation
	case "HY":
		return ClassGeneralError
	}

	return ClassUnknown
}

// IsWarning reports whether the record carries a warning rather than an
// error; ODBC returns such records with SQL_SUCCESS_WITH_INFO.
func (r DiagRecord) IsWarning() bool {
	c := r.Class()
	return c == ClassWarning || c == ClassSuccess
}
