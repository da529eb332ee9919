package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/termlife/golife/utils"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{UpdateRate: 10 * time.Millisecond, InitStatePath: "seeds.txt"},
		},
		{
			name:    "zero update rate",
			cfg:     Config{InitStatePath: "seeds.txt"},
			wantErr: true,
		},
		{
			name:    "negative update rate",
			cfg:     Config{UpdateRate: -time.Millisecond, InitStatePath: "seeds.txt"},
			wantErr: true,
		},
		{
			name:    "missing init state path",
			cfg:     Config{UpdateRate: 10 * time.Millisecond},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatusLine(t *testing.T) {
	stats := utils.NewStats()
	stats.Update(42, 17, 100*time.Millisecond)

	assert.Equal(t, "press q to quit | gen: 42 | live: 17 | 10.0 gen/s", statusLine(42, 17, stats))
}
