package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"
)

// State holds every agent record for one episode, hunters first, then
// rabbits. Removed agents stay in their slot with Alive=false and the
// sentinel position; the serialization views in encoding.go decide whether
// those slots are visible to callers.
type State struct {
	Hunters []core.Agent
	Rabbits []core.Agent
}

// NewState creates a state from the given agent records
func NewState(hunters, rabbits []core.Agent) *State {
	return &State{Hunters: hunters, Rabbits: rabbits}
}

// Clone returns a deep copy. Step never mutates its input state.
func (s *State) Clone() *State {
	c := &State{
		Hunters: make([]core.Agent, len(s.Hunters)),
		Rabbits: make([]core.Agent, len(s.Rabbits)),
	}
	copy(c.Hunters, s.Hunters)
	copy(c.Rabbits, s.Rabbits)
	return c
}

// ActiveHunters counts hunters still in play. Counts are derived by
// scanning the alive tags, never cached.
func (s *State) ActiveHunters() int {
	return countAlive(s.Hunters)
}

// ActiveRabbits counts rabbits still in play
func (s *State) ActiveRabbits() int {
	return countAlive(s.Rabbits)
}

// NumAgents returns the total number of agent slots, removed ones included
func (s *State) NumAgents() int {
	return len(s.Hunters) + len(s.Rabbits)
}

// allAgents returns the combined agent sequence in state order: hunter
// slots 0..k-1, rabbit slots k..k+m-1
func (s *State) allAgents() []core.Agent {
	agents := make([]core.Agent, 0, s.NumAgents())
	agents = append(agents, s.Hunters...)
	agents = append(agents, s.Rabbits...)
	return agents
}

func countAlive(agents []core.Agent) int {
	n := 0
	for _, a := range agents {
		if a.Alive {
			n++
		}
	}
	return n
}

// String returns a compact one-line listing for logging
func (s *State) String() string {
	var sb strings.Builder
	sb.WriteString("H[")
	writeAgents(&sb, s.Hunters)
	sb.WriteString("] R[")
	writeAgents(&sb, s.Rabbits)
	sb.WriteString("]")
	return sb.String()
}

func writeAgents(sb *strings.Builder, agents []core.Agent) {
	for i, a := range agents {
		if i > 0 {
			sb.WriteString(" ")
		}
		if a.Alive {
			fmt.Fprintf(sb, "%s", a.Pos)
		} else {
			sb.WriteString("-")
		}
	}
}
