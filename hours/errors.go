package hours

import (
	"errors"
	"fmt"
)

// Parse failures are reported as one of these sentinels, wrapped with the
// offending input. Match them with errors.Is.
var (
	ErrEmptyInput           = errors.New("empty input")
	ErrMissingSeparator     = errors.New("missing separator")
	ErrInvalidDigitCount    = errors.New("invalid digit count")
	ErrOutOfRange           = errors.New("value out of range")
	ErrNonMonotonicRange    = errors.New("start is not before stop")
	ErrUnknownWeekdayLetter = errors.New("unknown weekday letter")
	ErrUnrecognizedKind     = errors.New("unrecognized kind")
	ErrUnsupportedKind      = errors.New("unsupported kind")
)

func parseError(s string, err error) error {
	return fmt.Errorf("cannot parse %q: %w", s, err)
}

var parseErrors = []error{
	ErrEmptyInput, ErrMissingSeparator, ErrInvalidDigitCount, ErrOutOfRange,
	ErrNonMonotonicRange, ErrUnknownWeekdayLetter, ErrUnrecognizedKind,
	ErrUnsupportedKind,
}

// IsParseError reports whether err wraps any of the parse sentinels.
func IsParseError(err error) bool {
	for _, target := range parseErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
