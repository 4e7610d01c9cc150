package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fort-note/internal/config"
	"github.com/MKhiriev/go-fort-note/internal/logger"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "release", version: "v0.4.0"},
		{name: "pre-release with build metadata", version: "v0.4.0-rc.1+9f2c1e7"},
		{name: "dev default", version: config.DefaultVersion},
		{name: "missing", version: "", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestAppInfoService_VersionSurvivesCancelledRequest(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "v0.4.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "v0.4.0", svc.GetAppVersion(ctx))
}

func TestAppInfoService_LogsThroughRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	svc, err := NewAppInfoService(config.App{Version: "v0.4.0"}, logger.Nop())
	require.NoError(t, err)

	ctx := logger.NewClientLogger("fortnote-server", &logs).WithContext(context.Background())
	svc.GetAppVersion(ctx)

	assert.Contains(t, logs.String(), "version requested")
	assert.Contains(t, logs.String(), "v0.4.0")
}
