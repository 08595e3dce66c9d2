package compat_test

import (
	"testing"

	"github.com/hashicorp/go-version"
	"github.com/sgaunet/webui-config/pkg/compat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredOllama(t *testing.T) {
	assert.Equal(t, "0.1.16", compat.RequiredOllama().String())
}

func TestCheckOllama(t *testing.T) {
	tests := []struct {
		reported string
		wantErr  error
	}{
		{"0.1.16", nil},
		{"v0.1.16", nil},
		{"0.1.17", nil},
		{"0.2.0", nil},
		{"1.0.0", nil},
		{"0.1.15", compat.ErrUnsupportedVersion},
		{"0.0.9", compat.ErrUnsupportedVersion},
		{"0.1.16-rc1", compat.ErrUnsupportedVersion},
		{"", compat.ErrInvalidVersion},
		{"not-a-version", compat.ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.reported, func(t *testing.T) {
			err := compat.CheckOllama(tt.reported)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckCustomMinimum(t *testing.T) {
	minimum := version.Must(version.NewVersion("2.0.0"))
	require.NoError(t, compat.Check("2.1", minimum))
	require.ErrorIs(t, compat.Check("1.9.9", minimum), compat.ErrUnsupportedVersion)
}
