package rules

import (
	"fmt"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"
)

// LegalActionCalculator computes which of the 9 discrete actions keep an
// agent on the grid
type LegalActionCalculator struct {
	gridSize int
}

// NewLegalActionCalculator creates a calculator for a gridSize x gridSize grid
func NewLegalActionCalculator(gridSize int) *LegalActionCalculator {
	return &LegalActionCalculator{gridSize: gridSize}
}

// ActionMask returns a 9-slot mask for the given agent, true = legal.
// An action is illegal iff the RAW displaced position leaves the grid on
// either axis; the mask is about choice, not about the clamped outcome, so
// "stay at the wall" is legal while "walk into the wall" is not.
// Querying a removed agent is an error.
func (lac *LegalActionCalculator) ActionMask(agents []core.Agent, agentIdx int) ([core.NumActions]bool, error) {
	var mask [core.NumActions]bool

	if agentIdx < 0 || agentIdx >= len(agents) {
		return mask, fmt.Errorf("%w: agent index %d with %d agents", core.ErrInvalidStateShape, agentIdx, len(agents))
	}
	agent := agents[agentIdx]
	if !agent.Alive {
		return mask, fmt.Errorf("%w: agent %d", core.ErrInactiveAgent, agentIdx)
	}

	for i, m := range core.ActionSpace {
		mask[i] = agent.Pos.Add(m).InBounds(lac.gridSize)
	}
	return mask, nil
}
