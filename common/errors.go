package common

import "fmt"

var (
	ErrDataTypeNotSupported = fmt.Errorf("data type not supported")
	ErrValueOutOfTypeBounds = fmt.Errorf("value is out of possible range of values for the type")
	ErrInvalidUTF16         = fmt.Errorf("invalid UTF-16 code unit sequence")
	ErrUnexpectedNull       = fmt.Errorf("unexpected NULL value")
	ErrInvariantViolation   = fmt.Errorf("implementation error (invariant violation)")
)
