package realty_test

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtyhub-io/realty-client/pkg/realty"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *realty.Error
		expected string
	}{
		{
			name:     "with status code",
			err:      realty.NewError(realty.ErrorKindNotFound, "record not found", 404, nil),
			expected: "not_found: record not found (status: 404)",
		},
		{
			name:     "without status code",
			err:      realty.NewNetworkError("connection refused", errors.New("dial tcp: connection refused")),
			expected: "network: connection refused",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	err := realty.NewNetworkError("request failed", cause)

	opErr := &net.OpError{}
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "dial", opErr.Op)
}

func TestError_RawBody(t *testing.T) {
	t.Parallel()

	body := []byte(`{"message":"unprocessable","errors":{"email":["is invalid"]}}`)
	err := realty.NewError(realty.ErrorKindValidation, "unprocessable", 422, body)

	assert.Equal(t, body, err.RawBody())
	assert.Equal(t, 422, err.StatusCode)
}

func TestErrorKindHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		matcher func(error) bool
		matches bool
	}{
		{
			name:    "not found",
			err:     realty.NewError(realty.ErrorKindNotFound, "gone", 404, nil),
			matcher: realty.IsNotFound,
			matches: true,
		},
		{
			name:    "authentication",
			err:     realty.NewError(realty.ErrorKindAuthentication, "bad token", 401, nil),
			matcher: realty.IsAuthentication,
			matches: true,
		},
		{
			name:    "validation",
			err:     realty.NewError(realty.ErrorKindValidation, "unprocessable", 422, nil),
			matcher: realty.IsValidation,
			matches: true,
		},
		{
			name:    "rate limit",
			err:     realty.NewError(realty.ErrorKindRateLimit, "slow down", 429, nil),
			matcher: realty.IsRateLimit,
			matches: true,
		},
		{
			name:    "server",
			err:     realty.NewError(realty.ErrorKindServer, "boom", 500, nil),
			matcher: realty.IsServerError,
			matches: true,
		},
		{
			name:    "protocol counts as server failure",
			err:     realty.NewError(realty.ErrorKindProtocol, "undecodable body", 200, []byte("<html>")),
			matcher: realty.IsServerError,
			matches: true,
		},
		{
			name:    "network",
			err:     realty.NewNetworkError("timeout", errors.New("deadline exceeded")),
			matcher: realty.IsNetwork,
			matches: true,
		},
		{
			name:    "wrapped error still matches",
			err:     fmt.Errorf("listing agents: %w", realty.NewError(realty.ErrorKindNotFound, "gone", 404, nil)),
			matcher: realty.IsNotFound,
			matches: true,
		},
		{
			name:    "kind mismatch",
			err:     realty.NewError(realty.ErrorKindNotFound, "gone", 404, nil),
			matcher: realty.IsValidation,
			matches: false,
		},
		{
			name:    "plain error never matches",
			err:     errors.New("something else"),
			matcher: realty.IsServerError,
			matches: false,
		},
		{
			name:    "nil error never matches",
			err:     nil,
			matcher: realty.IsNotFound,
			matches: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.matches, tt.matcher(tt.err))
		})
	}
}
