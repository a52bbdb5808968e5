package testutil

import (
	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"
)

// Agents builds a slice of in-play agents at the given (row, col) cells
func Agents(cells ...[2]int) []core.Agent {
	agents := make([]core.Agent, len(cells))
	for i, c := range cells {
		agents[i] = core.NewAgent(c[0], c[1])
	}
	return agents
}

// RemovedAgent returns an agent already taken out of play
func RemovedAgent() core.Agent {
	return core.Agent{Pos: core.Removed(), Alive: false}
}
