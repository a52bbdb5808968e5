package game

import (
	"fmt"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/policy"
)

// Options is the immutable configuration for one engine instance
type Options struct {
	GridSize              int
	NumHunters            int
	NumRabbits            int
	TimestepReward        float64
	CaptureReward         float64
	RabbitPolicy          string
	RemoveHunterOnCapture bool
}

// DefaultOptions returns the baseline configuration: two hunters chase two
// stationary rabbits on a 5x5 grid, -1 per step and +1 per capture
func DefaultOptions() Options {
	return Options{
		GridSize:              5,
		NumHunters:            2,
		NumRabbits:            2,
		TimestepReward:        -1,
		CaptureReward:         1,
		RabbitPolicy:          policy.PolicyNone,
		RemoveHunterOnCapture: false,
	}
}

// Validate checks the option values. The rabbit policy name is checked
// separately by policy.Parse at engine construction.
func (o Options) Validate() error {
	if o.GridSize <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", o.GridSize)
	}
	if o.NumHunters <= 0 {
		return fmt.Errorf("hunter count must be positive, got %d", o.NumHunters)
	}
	if o.NumRabbits <= 0 {
		return fmt.Errorf("rabbit count must be positive, got %d", o.NumRabbits)
	}
	return nil
}
