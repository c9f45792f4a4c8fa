package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errNotFound := errors.New("not found")

	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	testCases := []struct {
		name      string
		failures  []error
		permanent []error
		wantErr   error
		wantCalls int
	}{
		{name: "first attempt succeeds", wantCalls: 1},
		{name: "succeeds after retries", failures: []error{errTemporary, errTemporary}, wantCalls: 3},
		{name: "gives up after max attempts", failures: []error{errTemporary, errTemporary, errTemporary}, wantErr: errTemporary, wantCalls: 3},
		{name: "permanent error is not retried", failures: []error{errNotFound}, permanent: []error{errNotFound}, wantErr: errNotFound, wantCalls: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(cfg, func() error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			}, tc.permanent...)

			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}

func TestRetry_DefaultsApplied(t *testing.T) {
	calls := 0
	err := Retry(RetryConfig{InitialDelay: time.Millisecond}, func() error {
		calls++
		return errors.New("fail")
	})

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}
