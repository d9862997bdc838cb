package adapt

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned by DecodeReader when the payload exceeds
// MaxDecodeSize.
var ErrTooLarge = errors.New("adapt: payload exceeds MaxDecodeSize")

// CustomError is the error a Source builds through Custom. Adapters use it
// to report values that are well formed on the wire but not acceptable to
// them, such as text that does not parse into the target type.
type CustomError struct {
	Msg  string
	Path string
}

func (e *CustomError) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// IsCustom reports whether err is, or wraps, a *CustomError.
func IsCustom(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce)
}
