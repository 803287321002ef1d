package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"homework_status_bot/internal/domain/failure"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want failure.Kind
	}{
		{"nil", nil, failure.KindRetryable},
		{"plain", errors.New("boom"), failure.KindRetryable},
		{"fatal", fmt.Errorf("%w: config", failure.ErrFatal), failure.KindFatal},
		{"informational", fmt.Errorf("%w: empty", failure.ErrInformational), failure.KindInformational},
		{"wrapped twice", fmt.Errorf("cycle: %w", fmt.Errorf("%w: empty", failure.ErrInformational)), failure.KindInformational},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := failure.KindOf(tc.err); got != tc.want {
				t.Fatalf("KindOf(%v) = %s, want %s", tc.err, got, tc.want)
			}
		})
	}
}
