package ux

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceErrorAddsSuggestions(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantHint  string
		wantPlain bool
	}{
		{
			name:     "expired session",
			err:      stderrors.New("token expired"),
			wantHint: "adminctl auth login",
		},
		{
			name:     "bad credentials",
			err:      stderrors.New("Invalid credentials"),
			wantHint: "case sensitive",
		},
		{
			name:     "network",
			err:      stderrors.New("dial tcp: connection refused"),
			wantHint: "ADMINCTL_API_URL",
		},
		{
			name:     "pincode",
			err:      stderrors.New("pincode must be 6 digits"),
			wantHint: "6 digits",
		},
		{
			name:      "unknown errors pass through",
			err:       stderrors.New("something else"),
			wantPlain: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnhanceError(tt.err)
			if tt.wantPlain {
				assert.Equal(t, tt.err, got)
				return
			}
			var enhanced *ErrorWithSuggestion
			require.ErrorAs(t, got, &enhanced)
			assert.Contains(t, enhanced.Suggestion, tt.wantHint)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestEnhanceErrorNil(t *testing.T) {
	assert.NoError(t, EnhanceError(nil))
	assert.NoError(t, FormatError(nil, "ctx"))
}

func TestFormatErrorAddsContext(t *testing.T) {
	err := FormatError(stderrors.New("boom"), "listing companies")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing companies: boom")
}
