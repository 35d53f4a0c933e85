package go_payflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindsAreDistinct(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   func(error) bool
	}{
		{name: "transport", err: &TransportError{StatusCode: 500}, is: IsTransportError},
		{name: "protocol", err: &ProtocolError{Field: "SECURETOKEN"}, is: IsProtocolError},
		{name: "config", err: &ConfigError{}, is: IsConfigError},
		{name: "validation", err: &ValidationError{}, is: IsValidationError},
	}
	checks := []func(error) bool{IsTransportError, IsProtocolError, IsConfigError, IsValidationError}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("call: %w", tc.err)
			matches := 0
			for _, check := range checks {
				if check(wrapped) {
					matches++
				}
			}
			require.True(t, tc.is(wrapped))
			require.Equal(t, 1, matches)
		})
	}
}

func TestTransportErrorMessages(t *testing.T) {
	require.Equal(t, "payflow transport error: unable to connect to processor - http code 500",
		(&TransportError{StatusCode: 500}).Error())

	cause := context.DeadlineExceeded
	err := &TransportError{Err: cause}
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.Contains(t, err.Error(), "deadline exceeded")

	long := &TransportError{StatusCode: 502, Body: []byte(strings.Repeat("x", 2000))}
	require.Less(t, len(long.Error()), 1200)
}

func TestProtocolErrorMessage(t *testing.T) {
	err := &ProtocolError{Field: "SECURETOKEN", Result: "7", RespMsg: "Field format error"}
	require.Equal(t, "payflow protocol error: `SECURETOKEN` not returned in response: Field format error (RESULT=7)", err.Error())

	require.Equal(t, "payflow protocol error: `SECURETOKEN` not returned in response", (&ProtocolError{Field: "SECURETOKEN"}).Error())
}

func TestFieldErrorMessages(t *testing.T) {
	ve := &ValidationError{}
	require.Equal(t, "validation error", ve.Error())
	ve.Add("AMT", "must be > 0")
	require.Equal(t, "validation error: AMT: must be > 0", ve.Error())

	ce := &ConfigError{}
	ce.Add("vendor", "is required")
	ce.Add("user", "is required")
	require.Equal(t, "payflow config error: 2 fields (vendor, user)", ce.Error())
}
