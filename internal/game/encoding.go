package game

import (
	"fmt"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"
)

// Two serialization views exist over the same internal state. The flag view
// keeps every slot with an explicit activity flag; the compact view drops
// removed agents and shortens the vector. Both preserve stored order among
// surviving agents and round-trip exactly.

// EncodeFlags serializes the state as a flat [active, row, col] triple per
// agent slot, hunters first. Length is always 3*(hunters+rabbits).
func EncodeFlags(s *State) []int {
	out := make([]int, 0, 3*s.NumAgents())
	for _, a := range s.allAgents() {
		flag := 0
		if a.Alive {
			flag = 1
		}
		out = append(out, flag, a.Pos.Y, a.Pos.X)
	}
	return out
}

// DecodeFlags reconstructs a state from the flag view. The vector length
// must be exactly 3*(numHunters+numRabbits) and every flag must be 0 or 1.
func DecodeFlags(data []int, numHunters, numRabbits int) (*State, error) {
	want := 3 * (numHunters + numRabbits)
	if len(data) != want {
		return nil, fmt.Errorf("%w: got %d values, want %d", core.ErrInvalidStateShape, len(data), want)
	}

	agents := make([]core.Agent, numHunters+numRabbits)
	for i := range agents {
		flag, y, x := data[3*i], data[3*i+1], data[3*i+2]
		switch flag {
		case 1:
			agents[i] = core.Agent{Pos: core.NewPosition(y, x), Alive: true}
		case 0:
			agents[i] = core.Agent{Pos: core.Removed(), Alive: false}
		default:
			return nil, fmt.Errorf("%w: activity flag %d at slot %d", core.ErrInvalidStateShape, flag, i)
		}
	}

	return NewState(agents[:numHunters], agents[numHunters:]), nil
}

// EncodeCompact serializes only in-play agents as flat [row, col] pairs,
// hunters first. The hunter and rabbit sub-sequences compact independently.
func EncodeCompact(s *State) []int {
	out := make([]int, 0, 2*s.NumAgents())
	for _, a := range s.allAgents() {
		if a.Alive {
			out = append(out, a.Pos.Y, a.Pos.X)
		}
	}
	return out
}

// DecodeCompact reconstructs a state from the compact view. Physical removal
// erases the hunter/rabbit split, so the caller supplies the number of
// surviving hunters; every decoded agent is in play.
func DecodeCompact(data []int, numHunters int) (*State, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: odd vector length %d", core.ErrInvalidStateShape, len(data))
	}
	total := len(data) / 2
	if numHunters < 0 || numHunters > total {
		return nil, fmt.Errorf("%w: %d hunters in a vector of %d agents", core.ErrInvalidStateShape, numHunters, total)
	}

	agents := make([]core.Agent, total)
	for i := range agents {
		agents[i] = core.Agent{Pos: core.NewPosition(data[2*i], data[2*i+1]), Alive: true}
	}

	return NewState(agents[:numHunters], agents[numHunters:]), nil
}
