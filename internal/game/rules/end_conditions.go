package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"
)

// EndConditionChecker handles episode termination detection
type EndConditionChecker struct {
	logger zerolog.Logger
}

// NewEndConditionChecker creates a new end condition checker
func NewEndConditionChecker(logger zerolog.Logger) *EndConditionChecker {
	return &EndConditionChecker{
		logger: logger.With().Str("component", "EndConditionChecker").Logger(),
	}
}

// IsTerminal reports whether the episode is over: terminal iff zero rabbits
// remain in play. Hunter count plays no part; an episode can finish with no
// hunters left when hunter removal is enabled.
func (ec *EndConditionChecker) IsTerminal(rabbits []core.Agent) bool {
	remaining := 0
	for _, r := range rabbits {
		if r.Alive {
			remaining++
		}
	}

	terminal := remaining == 0
	ec.logger.Debug().Int("rabbits_remaining", remaining).Bool("is_terminal", terminal).Msg("End condition check complete")
	return terminal
}
