package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"
	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/events"
	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/testutil"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := NewEngine(opts, testutil.NewTestRNG(7), testutil.NopLogger())
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{name: "zero grid", mutate: func(o *Options) { o.GridSize = 0 }},
		{name: "no hunters", mutate: func(o *Options) { o.NumHunters = 0 }},
		{name: "negative rabbits", mutate: func(o *Options) { o.NumRabbits = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			_, err := NewEngine(opts, testutil.NewTestRNG(1), testutil.NopLogger())
			assert.Error(t, err)
		})
	}
}

func TestNewEngineRejectsUnknownPolicy(t *testing.T) {
	opts := DefaultOptions()
	opts.RabbitPolicy = "teleport"

	_, err := NewEngine(opts, testutil.NewTestRNG(1), testutil.NopLogger())
	assert.ErrorIs(t, err, core.ErrInvalidRabbitPolicy)
}

func TestResetSpawnsAgentsOnGrid(t *testing.T) {
	opts := DefaultOptions()
	opts.GridSize = 4
	opts.NumHunters = 3
	opts.NumRabbits = 2
	e := newTestEngine(t, opts)

	s := e.Reset()
	require.Len(t, s.Hunters, 3)
	require.Len(t, s.Rabbits, 2)
	assert.NotEmpty(t, e.EpisodeID())

	for _, a := range s.allAgents() {
		assert.True(t, a.Alive)
		assert.True(t, a.Pos.InBounds(4), "agent spawned off-grid at %s", a.Pos)
	}
}

func TestResetClearsEpisodeCounters(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 1
	opts.NumRabbits = 1
	e := newTestEngine(t, opts)

	s := NewState(testutil.Agents([2]int{2, 2}), testutil.Agents([2]int{2, 3}))
	_, _, _, err := e.Step(s, []int{5})
	require.NoError(t, err)

	first := e.EpisodeID()
	fresh := e.Reset()
	stats := e.Stats(fresh)

	assert.NotEqual(t, first, e.EpisodeID())
	assert.Equal(t, 0, stats.Steps)
	assert.Equal(t, 0, stats.Captures)
	assert.Equal(t, 0.0, stats.TotalReward)
}

// grid_size=5, hunter (2,2), rabbit (2,3), action "right": capture, reward
// -1 + 1 = 0, episode over.
func TestStepCaptureScenario(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 1
	opts.NumRabbits = 1
	e := newTestEngine(t, opts)

	s := NewState(testutil.Agents([2]int{2, 2}), testutil.Agents([2]int{2, 3}))
	right, _ := core.Movement{DY: 0, DX: 1}.Index()

	next, reward, done, err := e.Step(s, []int{right})
	require.NoError(t, err)

	assert.Equal(t, core.NewPosition(2, 3), next.Hunters[0].Pos)
	assert.False(t, next.Rabbits[0].Alive)
	assert.Equal(t, core.Removed(), next.Rabbits[0].Pos)
	assert.Equal(t, 0.0, reward)
	assert.True(t, done)

	// Input state untouched
	assert.Equal(t, core.NewPosition(2, 2), s.Hunters[0].Pos)
	assert.True(t, s.Rabbits[0].Alive)
}

// grid_size=4, hunter (0,0), action up-left: both axes clamp, hunter stays.
func TestStepClampsAtCorner(t *testing.T) {
	opts := DefaultOptions()
	opts.GridSize = 4
	opts.NumHunters = 1
	opts.NumRabbits = 1
	e := newTestEngine(t, opts)

	s := NewState(testutil.Agents([2]int{0, 0}), testutil.Agents([2]int{3, 3}))
	upLeft, _ := core.Movement{DY: -1, DX: -1}.Index()

	next, reward, done, err := e.Step(s, []int{upLeft})
	require.NoError(t, err)
	assert.Equal(t, core.NewPosition(0, 0), next.Hunters[0].Pos)
	assert.Equal(t, -1.0, reward)
	assert.False(t, done)
}

// A move blocked on one axis still applies on the other.
func TestStepClampsPerAxis(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 1
	opts.NumRabbits = 1
	e := newTestEngine(t, opts)

	// Bottom row of a 5x5 grid: (1,1) clamps the row delta, keeps the column
	s := NewState(testutil.Agents([2]int{4, 2}), testutil.Agents([2]int{0, 0}))
	downRight, _ := core.Movement{DY: 1, DX: 1}.Index()

	next, _, _, err := e.Step(s, []int{downRight})
	require.NoError(t, err)
	assert.Equal(t, core.NewPosition(4, 3), next.Hunters[0].Pos)
}

func TestStepStayKeepsHunterPositions(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 2
	opts.NumRabbits = 1
	e := newTestEngine(t, opts)

	s := NewState(testutil.Agents([2]int{1, 1}, [2]int{3, 0}), testutil.Agents([2]int{4, 4}))
	next, _, _, err := e.Step(s, []int{core.ActionStay, core.ActionStay})
	require.NoError(t, err)

	assert.Equal(t, s.Hunters[0].Pos, next.Hunters[0].Pos)
	assert.Equal(t, s.Hunters[1].Pos, next.Hunters[1].Pos)
	assert.True(t, next.Rabbits[0].Alive, "stay must not create a capture out of nothing")
}

func TestStepRewardAccounting(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 2
	opts.NumRabbits = 2
	opts.TimestepReward = -1
	opts.CaptureReward = 1
	e := newTestEngine(t, opts)

	// Both hunters land on their rabbit in the same step
	s := NewState(
		testutil.Agents([2]int{0, 0}, [2]int{4, 4}),
		testutil.Agents([2]int{0, 1}, [2]int{4, 3}),
	)
	right, _ := core.Movement{DY: 0, DX: 1}.Index()
	left, _ := core.Movement{DY: 0, DX: -1}.Index()

	next, reward, done, err := e.Step(s, []int{right, left})
	require.NoError(t, err)
	assert.Equal(t, -1.0+2*1.0, reward, "reward = timestep + capture_reward * captures")
	assert.True(t, done)
	assert.Equal(t, 0, next.ActiveRabbits())

	stats := e.Stats(next)
	assert.Equal(t, 2, stats.Captures)
	assert.Equal(t, 1, stats.Steps)
}

func TestStepRemoveHunterOnCapture(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 2
	opts.NumRabbits = 2
	opts.RemoveHunterOnCapture = true
	e := newTestEngine(t, opts)

	s := NewState(
		testutil.Agents([2]int{0, 0}, [2]int{2, 2}),
		testutil.Agents([2]int{0, 1}, [2]int{4, 4}),
	)
	right, _ := core.Movement{DY: 0, DX: 1}.Index()

	next, _, done, err := e.Step(s, []int{right, core.ActionStay})
	require.NoError(t, err)
	assert.False(t, done, "one rabbit left")
	assert.False(t, next.Hunters[0].Alive, "capturing hunter is neutralized")
	assert.Equal(t, core.Removed(), next.Hunters[0].Pos)
	assert.True(t, next.Hunters[1].Alive)
	assert.Equal(t, 1, next.ActiveHunters())
}

func TestStepInactiveHunterIgnoresAction(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 2
	opts.NumRabbits = 1
	e := newTestEngine(t, opts)

	s := NewState(
		[]core.Agent{testutil.RemovedAgent(), core.NewAgent(2, 2)},
		testutil.Agents([2]int{4, 4}),
	)

	next, _, _, err := e.Step(s, []int{0, core.ActionStay})
	require.NoError(t, err)
	assert.False(t, next.Hunters[0].Alive)
	assert.Equal(t, core.Removed(), next.Hunters[0].Pos, "removed hunters never move")
}

func TestStepValidationErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 1
	opts.NumRabbits = 1
	e := newTestEngine(t, opts)

	valid := func() *State {
		return NewState(testutil.Agents([2]int{2, 2}), testutil.Agents([2]int{4, 4}))
	}

	t.Run("nil state", func(t *testing.T) {
		_, _, _, err := e.Step(nil, []int{4})
		assert.ErrorIs(t, err, core.ErrInvalidStateShape)
	})

	t.Run("too many hunters", func(t *testing.T) {
		s := NewState(testutil.Agents([2]int{0, 0}, [2]int{1, 1}), testutil.Agents([2]int{4, 4}))
		_, _, _, err := e.Step(s, []int{4, 4})
		assert.ErrorIs(t, err, core.ErrInvalidStateShape)
	})

	t.Run("wrong action count", func(t *testing.T) {
		_, _, _, err := e.Step(valid(), []int{4, 4})
		assert.ErrorIs(t, err, core.ErrInvalidActionShape)
	})

	t.Run("bad action index", func(t *testing.T) {
		_, _, _, err := e.Step(valid(), []int{11})
		assert.ErrorIs(t, err, core.ErrInvalidActionIndex)
	})

	t.Run("input state untouched on failure", func(t *testing.T) {
		s := valid()
		_, _, _, err := e.Step(s, []int{11})
		require.Error(t, err)
		assert.Equal(t, core.NewPosition(2, 2), s.Hunters[0].Pos)
		assert.True(t, s.Rabbits[0].Alive)
	})
}

func TestStepOnTerminalState(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 1
	opts.NumRabbits = 1
	e := newTestEngine(t, opts)

	terminal := NewState(testutil.Agents([2]int{2, 2}), []core.Agent{testutil.RemovedAgent()})

	next, reward, done, err := e.Step(terminal, []int{core.ActionStay})
	assert.ErrorIs(t, err, core.ErrEpisodeOver)
	assert.True(t, done, "terminal states stay terminal")
	assert.Equal(t, 0.0, reward)
	require.NotNil(t, next)
	assert.Equal(t, 0, next.ActiveRabbits())
}

func TestStepClampingInvariant(t *testing.T) {
	opts := DefaultOptions()
	opts.GridSize = 3
	opts.NumHunters = 2
	opts.NumRabbits = 2
	opts.RabbitPolicy = "random"
	e := newTestEngine(t, opts)

	rng := testutil.NewTestRNG(99)
	s := e.Reset()
	for step := 0; step < 200; step++ {
		actions := []int{rng.Intn(core.NumActions), rng.Intn(core.NumActions)}
		next, _, done, err := e.Step(s, actions)
		require.NoError(t, err)

		for _, a := range next.allAgents() {
			if a.Alive {
				assert.True(t, a.Pos.InBounds(3), "in-play agent off-grid at %s", a.Pos)
			} else {
				assert.Equal(t, core.Removed(), a.Pos)
			}
		}
		if done {
			s = e.Reset()
		} else {
			s = next
		}
	}
}

func TestStepOppositePolicyRabbitFlees(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 1
	opts.NumRabbits = 1
	opts.RabbitPolicy = "opposite"
	e := newTestEngine(t, opts)

	// Hunter closes in from the left; rabbit must flee right
	s := NewState(testutil.Agents([2]int{2, 0}), testutil.Agents([2]int{2, 2}))
	right, _ := core.Movement{DY: 0, DX: 1}.Index()

	next, _, _, err := e.Step(s, []int{right})
	require.NoError(t, err)
	assert.Equal(t, core.NewPosition(2, 3), next.Rabbits[0].Pos)

	// At the wall the flight clamps and the rabbit is pinned
	pinned := NewState(testutil.Agents([2]int{2, 3}), testutil.Agents([2]int{2, 4}))
	next, _, done, err := e.Step(pinned, []int{right})
	require.NoError(t, err)
	assert.True(t, done, "rabbit clamped against the wall gets caught")
	assert.False(t, next.Rabbits[0].Alive)
}

func TestLegalActions(t *testing.T) {
	opts := DefaultOptions()
	opts.GridSize = 3
	opts.NumHunters = 1
	opts.NumRabbits = 1
	e := newTestEngine(t, opts)

	s := NewState(testutil.Agents([2]int{0, 0}), testutil.Agents([2]int{2, 2}))

	mask, err := e.LegalActions(s, 0)
	require.NoError(t, err)
	upLeft, _ := core.Movement{DY: -1, DX: -1}.Index()
	downRight, _ := core.Movement{DY: 1, DX: 1}.Index()
	assert.False(t, mask[upLeft])
	assert.True(t, mask[downRight])
	assert.True(t, mask[core.ActionStay])

	// Rabbit slots are addressable after the hunter slots
	mask, err = e.LegalActions(s, 1)
	require.NoError(t, err)
	assert.False(t, mask[downRight], "rabbit at (2,2) cannot move down-right on a 3x3 grid")

	_, err = e.LegalActions(s, 2)
	assert.ErrorIs(t, err, core.ErrInvalidStateShape)
}

func TestLegalActionsInactiveAgent(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 1
	opts.NumRabbits = 1
	e := newTestEngine(t, opts)

	s := NewState([]core.Agent{testutil.RemovedAgent()}, testutil.Agents([2]int{2, 2}))
	_, err := e.LegalActions(s, 0)
	assert.ErrorIs(t, err, core.ErrInactiveAgent)
}

func TestStepPublishesEvents(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHunters = 1
	opts.NumRabbits = 1
	opts.RemoveHunterOnCapture = true
	e := newTestEngine(t, opts)

	var captured, neutralized, ended int
	e.Bus().SubscribeFunc(events.TypeRabbitCaptured, func(events.Event) { captured++ })
	e.Bus().SubscribeFunc(events.TypeHunterNeutralized, func(events.Event) { neutralized++ })
	e.Bus().SubscribeFunc(events.TypeEpisodeEnded, func(events.Event) { ended++ })

	s := NewState(testutil.Agents([2]int{2, 2}), testutil.Agents([2]int{2, 3}))
	right, _ := core.Movement{DY: 0, DX: 1}.Index()
	_, _, done, err := e.Step(s, []int{right})
	require.NoError(t, err)
	require.True(t, done)

	assert.Equal(t, 1, captured)
	assert.Equal(t, 1, neutralized)
	assert.Equal(t, 1, ended)
}
