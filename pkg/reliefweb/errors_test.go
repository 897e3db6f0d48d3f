package reliefweb_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reliefweb-go/reliefweb/pkg/reliefweb"
)

func TestIsStatus(t *testing.T) {
	t.Parallel()

	notFound := &reliefweb.StatusError{
		StatusCode: http.StatusNotFound,
		URL:        "https://api.reliefweb.int/v2/reports/999",
	}

	tests := []struct {
		name     string
		err      error
		code     int
		expected bool
	}{
		{
			name:     "matching status",
			err:      notFound,
			code:     http.StatusNotFound,
			expected: true,
		},
		{
			name:     "different status",
			err:      notFound,
			code:     http.StatusForbidden,
			expected: false,
		},
		{
			name:     "wrapped status error",
			err:      fmt.Errorf("getting reports: %w", notFound),
			code:     http.StatusNotFound,
			expected: true,
		},
		{
			name:     "unrelated error",
			err:      errors.New("boom"),
			code:     http.StatusNotFound,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     http.StatusNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, reliefweb.IsStatus(tt.err, tt.code))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("getting disasters/123: %w", &reliefweb.StatusError{
		StatusCode: http.StatusNotFound,
		URL:        "https://api.reliefweb.int/v2/disasters/123",
	})

	assert.True(t, reliefweb.IsNotFound(err))
	assert.False(t, reliefweb.IsNotFound(errors.New("boom")))
}

func TestRequestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &reliefweb.RequestError{URL: "https://api.reliefweb.int/v2/reports", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), "https://api.reliefweb.int/v2/reports")
}

func TestDecodeError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of JSON input")
	err := &reliefweb.DecodeError{Err: cause}

	assert.ErrorIs(t, err, cause)

	decodeErr := &reliefweb.DecodeError{}
	assert.ErrorAs(t, fmt.Errorf("parsing reports response: %w", err), &decodeErr)
}
