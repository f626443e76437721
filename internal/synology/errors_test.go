package synology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	t.Run("known code", func(t *testing.T) {
		err := &APIError{API: "SYNO.API.Auth", Code: 400}
		assert.EqualError(t, err, "SYNO.API.Auth: invalid account or password (code 400)")
	})

	t.Run("unknown code", func(t *testing.T) {
		err := &APIError{API: "SYNO.DownloadStation.Task", Code: 544}
		assert.EqualError(t, err, "SYNO.DownloadStation.Task: error code 544")
	})
}

func TestAPIErrorIsAuthError(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{100, false},
		{105, false},
		{399, false},
		{400, true},
		{401, true},
		{404, true},
		{405, false},
	}

	for _, tt := range tests {
		err := &APIError{API: "SYNO.API.Auth", Code: tt.code}
		assert.Equal(t, tt.want, err.IsAuthError(), "code %d", tt.code)
	}
}
