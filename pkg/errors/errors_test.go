package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf_WrappedAppError(t *testing.T) {
	base := NewUpstreamError("pexels request failed", stderrors.New("dial tcp: timeout"))
	wrapped := fmt.Errorf("resolve image: %w", base)

	assert.Equal(t, ErrorTypeUpstream, TypeOf(wrapped))
	assert.True(t, IsType(wrapped, ErrorTypeUpstream))
	assert.ErrorContains(t, wrapped, "dial tcp: timeout")
}

func TestTypeOf_ForeignErrorIsInternal(t *testing.T) {
	assert.Equal(t, ErrorTypeInternal, TypeOf(stderrors.New("boom")))
	assert.False(t, IsType(nil, ErrorTypeInternal))
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "configuration absent", err: NewConfigurationAbsentError("OPENAI_API_KEY is not set"), want: false},
		{name: "validation", err: NewValidationError("symptoms are required"), want: false},
		{name: "upstream", err: NewUpstreamError("openai", stderrors.New("503")), want: true},
		{name: "malformed", err: NewMalformedResponseError("missing generatedRemedies", nil), want: true},
		{name: "foreign", err: stderrors.New("eof"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Retryable(tt.err))
		})
	}
}

func TestAppError_Message(t *testing.T) {
	err := NewMalformedResponseError("emergency triage output is empty", nil)
	assert.Equal(t, "MALFORMED_RESPONSE: emergency triage output is empty", err.Error())
	assert.Nil(t, err.Unwrap())
}
