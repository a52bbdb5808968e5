package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"
	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/events"
	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/policy"
	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/rules"
)

// Engine resolves state transitions for the pursuit game. It owns no game
// state beyond per-episode bookkeeping (episode ID, step and reward
// counters), which Reset clears; the caller owns the state objects.
type Engine struct {
	opts   Options
	policy policy.Policy
	rng    *rand.Rand
	logger zerolog.Logger
	bus    *events.EventBus
	legal  *rules.LegalActionCalculator
	end    *rules.EndConditionChecker

	episodeID   string
	step        int
	captures    int
	totalReward float64
}

// NewEngine creates a new engine for the given options. A nil rng falls
// back to a time-seeded source; pass a seeded one for reproducible episodes.
func NewEngine(opts Options, rng *rand.Rand, logger zerolog.Logger) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	p, err := policy.Parse(opts.RabbitPolicy)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	engineLogger := logger.With().Str("component", "PursuitEngine").Logger()
	e := &Engine{
		opts:   opts,
		policy: p,
		rng:    rng,
		logger: engineLogger,
		bus:    events.NewEventBus(logger),
		legal:  rules.NewLegalActionCalculator(opts.GridSize),
		end:    rules.NewEndConditionChecker(logger),
	}

	engineLogger.Info().
		Int("grid_size", opts.GridSize).
		Int("num_hunters", opts.NumHunters).
		Int("num_rabbits", opts.NumRabbits).
		Str("rabbit_policy", p.Name()).
		Bool("remove_hunter_on_capture", opts.RemoveHunterOnCapture).
		Msg("Engine created")

	return e, nil
}

// Options returns the engine configuration
func (e *Engine) Options() Options { return e.opts }

// Bus returns the event bus for subscribing to episode events
func (e *Engine) Bus() *events.EventBus { return e.bus }

// EpisodeID returns the ID of the current episode
func (e *Engine) EpisodeID() string { return e.episodeID }

// Reset produces a fresh random initial state and clears the per-episode
// counters. Agents spawn uniformly on the grid; overlaps are allowed and do
// not count as captures until a step resolves them.
func (e *Engine) Reset() *State {
	hunters := make([]core.Agent, e.opts.NumHunters)
	for i := range hunters {
		hunters[i] = core.NewAgent(e.rng.Intn(e.opts.GridSize), e.rng.Intn(e.opts.GridSize))
	}
	rabbits := make([]core.Agent, e.opts.NumRabbits)
	for i := range rabbits {
		rabbits[i] = core.NewAgent(e.rng.Intn(e.opts.GridSize), e.rng.Intn(e.opts.GridSize))
	}

	e.episodeID = uuid.New().String()
	e.step = 0
	e.captures = 0
	e.totalReward = 0

	s := NewState(hunters, rabbits)
	e.logger.Info().
		Str("episode_id", e.episodeID).
		Stringer("state", s).
		Msg("Episode started")
	e.bus.Publish(events.NewEpisodeStartedEvent(e.episodeID, e.opts.NumHunters, e.opts.NumRabbits, e.opts.GridSize))

	return s
}

// Step applies one joint hunter action to the state and returns the next
// state, the step reward and whether the episode has ended. The input state
// is never mutated; every validation failure aborts before any work.
// Stepping an already-terminal state returns ErrEpisodeOver.
func (e *Engine) Step(s *State, actionIndices []int) (*State, float64, bool, error) {
	if err := e.validateState(s); err != nil {
		return nil, 0, false, err
	}
	if e.end.IsTerminal(s.Rabbits) {
		return s.Clone(), 0, true, core.ErrEpisodeOver
	}
	if len(actionIndices) != len(s.Hunters) {
		return nil, 0, false, fmt.Errorf("%w: got %d actions for %d hunters",
			core.ErrInvalidActionShape, len(actionIndices), len(s.Hunters))
	}
	moves, err := core.DecodeActions(actionIndices)
	if err != nil {
		return nil, 0, false, err
	}

	next := s.Clone()
	e.step++

	// Hunter movement, clamped per axis
	for i := range next.Hunters {
		if !next.Hunters[i].Alive {
			continue
		}
		next.Hunters[i].Pos = next.Hunters[i].Pos.Add(moves[i]).Clamp(e.opts.GridSize)
	}

	// Rabbit movement per configured policy, against post-move hunters
	for i := range next.Rabbits {
		if !next.Rabbits[i].Alive {
			continue
		}
		m := e.policy.Move(next.Rabbits[i].Pos, next.Hunters, e.rng)
		next.Rabbits[i].Pos = next.Rabbits[i].Pos.Add(m).Clamp(e.opts.GridSize)
	}

	captures := resolveCaptures(next.Hunters, next.Rabbits, e.opts.RemoveHunterOnCapture)
	reward := e.opts.TimestepReward + e.opts.CaptureReward*float64(len(captures))
	e.captures += len(captures)
	e.totalReward += reward

	for _, c := range captures {
		e.logger.Debug().
			Int("hunter_idx", c.HunterIdx).
			Int("rabbit_idx", c.RabbitIdx).
			Stringer("cell", c.Cell).
			Msg("Rabbit captured")
		e.bus.Publish(events.NewRabbitCapturedEvent(e.episodeID, e.step, c.HunterIdx, c.RabbitIdx, c.Cell))
		if e.opts.RemoveHunterOnCapture {
			e.bus.Publish(events.NewHunterNeutralizedEvent(e.episodeID, e.step, c.HunterIdx))
		}
	}

	done := e.end.IsTerminal(next.Rabbits)
	if done {
		e.logger.Info().
			Str("episode_id", e.episodeID).
			Int("steps", e.step).
			Float64("total_reward", e.totalReward).
			Msg("Episode ended")
		e.bus.Publish(events.NewEpisodeEndedEvent(e.episodeID, e.step, e.totalReward))
	}

	return next, reward, done, nil
}

// LegalActions returns the 9-slot legality mask for one agent. Agent
// indices run over hunter slots first, then rabbit slots, matching the
// state vector order.
func (e *Engine) LegalActions(s *State, agentIdx int) ([core.NumActions]bool, error) {
	if err := e.validateState(s); err != nil {
		return [core.NumActions]bool{}, err
	}
	return e.legal.ActionMask(s.allAgents(), agentIdx)
}

// IsTerminal reports whether the state ends the episode
func (e *Engine) IsTerminal(s *State) bool {
	return e.end.IsTerminal(s.Rabbits)
}

// validateState checks the record counts against the configured agent
// counts. Fewer records are allowed (compacted states shrink); more never.
func (e *Engine) validateState(s *State) error {
	if s == nil {
		return fmt.Errorf("%w: nil state", core.ErrInvalidStateShape)
	}
	if len(s.Hunters) > e.opts.NumHunters || len(s.Rabbits) > e.opts.NumRabbits {
		return fmt.Errorf("%w: %d hunters and %d rabbits with configured %d/%d",
			core.ErrInvalidStateShape, len(s.Hunters), len(s.Rabbits), e.opts.NumHunters, e.opts.NumRabbits)
	}
	return nil
}
