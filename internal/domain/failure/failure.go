// Package failure classifies errors so the poll loop can decide between stopping,
// retrying on the next cycle and merely logging.
package failure

import "errors"

// Kind is the handling class of an error.
type Kind int

const (
	// KindRetryable errors fail the current cycle; the next cycle tries again.
	KindRetryable Kind = iota
	// KindInformational errors are logged and otherwise ignored.
	KindInformational
	// KindFatal errors stop the process before the loop starts.
	KindFatal
)

var (
	ErrFatal         = errors.New("fatal")
	ErrInformational = errors.New("informational")
)

func (k Kind) String() string {
	switch k {
	case KindInformational:
		return "informational"
	case KindFatal:
		return "fatal"
	default:
		return "retryable"
	}
}

// KindOf reports how err should be handled. Untagged errors are retryable.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrFatal):
		return KindFatal
	case errors.Is(err, ErrInformational):
		return KindInformational
	default:
		return KindRetryable
	}
}
