// Package experience collects state transitions for RL training loops.
// Transitions live in memory only; nothing is persisted.
package experience

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game"
)

// Transition is one (s, a, r, s', done) tuple in the flag encoding
type Transition struct {
	ID        string
	EpisodeID string
	State     []int
	Actions   []int
	Reward    float64
	NextState []int
	Done      bool
}

// Collector implements a basic in-memory transition collector
type Collector struct {
	transitions []Transition
	mu          sync.Mutex
	maxSize     int
	logger      zerolog.Logger
}

// NewCollector creates a new collector holding at most maxSize transitions
func NewCollector(maxSize int, logger zerolog.Logger) *Collector {
	return &Collector{
		transitions: make([]Transition, 0, maxSize),
		maxSize:     maxSize,
		logger:      logger.With().Str("component", "experience_collector").Logger(),
	}
}

// OnStateTransition records one step. Transitions past maxSize are dropped.
func (c *Collector) OnStateTransition(episodeID string, prev, next *game.State, actions []int, reward float64, done bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.transitions) >= c.maxSize {
		c.logger.Warn().
			Int("buffer_size", len(c.transitions)).
			Int("max_size", c.maxSize).
			Msg("Transition buffer full, dropping transition")
		return
	}

	actionsCopy := make([]int, len(actions))
	copy(actionsCopy, actions)

	c.transitions = append(c.transitions, Transition{
		ID:        uuid.New().String(),
		EpisodeID: episodeID,
		State:     game.EncodeFlags(prev),
		Actions:   actionsCopy,
		Reward:    reward,
		NextState: game.EncodeFlags(next),
		Done:      done,
	})
}

// Len returns the number of buffered transitions
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.transitions)
}

// Drain hands the buffered transitions to the caller and empties the buffer
func (c *Collector) Drain() []Transition {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.transitions
	c.transitions = make([]Transition, 0, c.maxSize)
	c.logger.Debug().Int("drained", len(out)).Msg("Transition buffer drained")
	return out
}
