package providers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinacircular/circular-server/internal/config"
)

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		driver string
		path   string
	}{
		{config.DriverFile, filepath.Join(dir, "data.json")},
		{config.DriverBadger, filepath.Join(dir, "badger")},
		{config.DriverSQLite, filepath.Join(dir, "circular.db")},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			b, err := OpenBackend(tt.driver, tt.path)
			require.NoError(t, err)
			defer b.Close()

			assert.Equal(t, tt.driver, b.Name())
			require.NoError(t, b.Write(context.Background(), []byte(`{"items":[]}`)))

			data, err := b.Read(context.Background())
			require.NoError(t, err)
			assert.JSONEq(t, `{"items":[]}`, string(data))
		})
	}
}

func TestOpenBackend_UnknownDriver(t *testing.T) {
	_, err := OpenBackend("postgres", "x")
	assert.Error(t, err)
}
