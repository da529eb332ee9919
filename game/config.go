package game

import (
	"time"

	"github.com/pkg/errors"
)

// Config holds the simulation settings supplied on the command line.
type Config struct {
	// UpdateRate is the delay between generations.
	UpdateRate time.Duration
	// InitStatePath names the file of "(y, x)" seed coordinates.
	InitStatePath string
}

// Validate rejects configurations the driver cannot run with.
func (c Config) Validate() error {
	if c.UpdateRate <= 0 {
		return errors.Errorf("[Validate] update rate must be positive, got %v", c.UpdateRate)
	}
	if c.InitStatePath == "" {
		return errors.New("[Validate] missing initial state configuration file")
	}
	return nil
}
