package exitcode

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdtaxation/adminctl/internal/errors"
	"github.com/sdtaxation/adminctl/internal/platform"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: Success,
		},
		{
			name: "token expired",
			err:  &platform.TokenExpiredError{Message: "jwt expired"},
			want: SessionExpired,
		},
		{
			name: "invalid credentials",
			err:  errors.NewInvalidCredentialsError("Invalid credentials"),
			want: AuthError,
		},
		{
			name: "not logged in",
			err:  errors.NewNotLoggedInError(),
			want: AuthError,
		},
		{
			name: "api unreachable",
			err:  errors.NewAPIUnavailableError(stderrors.New("connection refused")),
			want: NetworkError,
		},
		{
			name: "server rejection",
			err:  &platform.HTTPError{StatusCode: 409, Message: "duplicate gstNumber"},
			want: APIError,
		},
		{
			name: "bad pincode",
			err:  errors.NewPincodeInvalidError("12"),
			want: UsageError,
		},
		{
			name: "config failure",
			err:  errors.NewConfigLoadError("/etc/adminctl.yaml", stderrors.New("yaml: bad syntax")),
			want: UsageError,
		},
		{
			name: "missing file",
			err:  errors.NewFileNotFoundError("./logo.png"),
			want: UsageError,
		},
		{
			name: "anything else",
			err:  stderrors.New("boom"),
			want: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineExitCode(tt.err))
		})
	}
}

func TestDescriptionCoversAllCodes(t *testing.T) {
	for code := Success; code <= APIError; code++ {
		assert.NotEqual(t, "Unknown error", Description(code), "code %d", code)
	}
	assert.Equal(t, "Unknown error", Description(99))
}
