// Package policy implements the rabbit movement strategies. Each strategy
// decides one movement per rabbit per step; the engine applies clamping.
package policy

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/common"
	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"
)

// Policy names accepted in configuration
const (
	PolicyNone     = "none"
	PolicyRandom   = "random"
	PolicyOpposite = "opposite"
)

// Policy chooses a movement for one in-play rabbit. Implementations must not
// mutate the hunter slice and must only consider in-play hunters.
type Policy interface {
	Name() string
	Move(rabbit core.Position, hunters []core.Agent, rng *rand.Rand) core.Movement
}

// Parse resolves a configured policy name to its implementation
func Parse(name string) (Policy, error) {
	switch name {
	case PolicyNone:
		return Stationary{}, nil
	case PolicyRandom:
		return Random{}, nil
	case PolicyOpposite:
		return Evasive{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidRabbitPolicy, name)
	}
}

// Stationary rabbits never move
type Stationary struct{}

func (Stationary) Name() string { return PolicyNone }

func (Stationary) Move(core.Position, []core.Agent, *rand.Rand) core.Movement {
	return core.Movement{}
}

// Random rabbits sample uniformly from the full action space, stay included
type Random struct{}

func (Random) Name() string { return PolicyRandom }

func (Random) Move(_ core.Position, _ []core.Agent, rng *rand.Rand) core.Movement {
	return core.ActionSpace[rng.Intn(core.NumActions)]
}

// Evasive rabbits step away from the Euclidean-nearest in-play hunter, one
// unit along each axis matching the sign of (rabbit - hunter). With no
// hunters left in play the rabbit stays put.
type Evasive struct{}

func (Evasive) Name() string { return PolicyOpposite }

func (Evasive) Move(rabbit core.Position, hunters []core.Agent, _ *rand.Rand) core.Movement {
	nearest, ok := nearestHunter(rabbit, hunters)
	if !ok {
		return core.Movement{}
	}
	return core.Movement{
		DY: common.Sign(rabbit.Y - nearest.Y),
		DX: common.Sign(rabbit.X - nearest.X),
	}
}

// nearestHunter scans in-play hunters only; removed hunters carry sentinel
// coordinates and must never win the distance comparison. Ties go to the
// first hunter encountered in stored order.
func nearestHunter(rabbit core.Position, hunters []core.Agent) (core.Position, bool) {
	var (
		best     core.Position
		bestDist int
		found    bool
	)
	for _, h := range hunters {
		if !h.Alive {
			continue
		}
		d := rabbit.SquaredDistanceTo(h.Pos)
		if !found || d < bestDist {
			best = h.Pos
			bestDist = d
			found = true
		}
	}
	return best, found
}
