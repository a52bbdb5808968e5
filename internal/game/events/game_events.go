package events

import (
	"time"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"
)

// Event type constants
const (
	TypeEpisodeStarted    = "episode.started"
	TypeRabbitCaptured    = "rabbit.captured"
	TypeHunterNeutralized = "hunter.neutralized"
	TypeEpisodeEnded      = "episode.ended"
)

// EpisodeStartedEvent is published when a fresh initial state is produced
type EpisodeStartedEvent struct {
	BaseEvent
	NumHunters int `json:"num_hunters"`
	NumRabbits int `json:"num_rabbits"`
	GridSize   int `json:"grid_size"`
}

// NewEpisodeStartedEvent creates a new episode started event
func NewEpisodeStartedEvent(episodeID string, numHunters, numRabbits, gridSize int) *EpisodeStartedEvent {
	return &EpisodeStartedEvent{
		BaseEvent:  BaseEvent{EventType: TypeEpisodeStarted, Time: time.Now(), Episode: episodeID},
		NumHunters: numHunters,
		NumRabbits: numRabbits,
		GridSize:   gridSize,
	}
}

// RabbitCapturedEvent is published once per rabbit removed in a step
type RabbitCapturedEvent struct {
	BaseEvent
	Step      int           `json:"step"`
	HunterIdx int           `json:"hunter_idx"`
	RabbitIdx int           `json:"rabbit_idx"`
	Cell      core.Position `json:"cell"`
}

// NewRabbitCapturedEvent creates a new rabbit captured event
func NewRabbitCapturedEvent(episodeID string, step, hunterIdx, rabbitIdx int, cell core.Position) *RabbitCapturedEvent {
	return &RabbitCapturedEvent{
		BaseEvent: BaseEvent{EventType: TypeRabbitCaptured, Time: time.Now(), Episode: episodeID},
		Step:      step,
		HunterIdx: hunterIdx,
		RabbitIdx: rabbitIdx,
		Cell:      cell,
	}
}

// HunterNeutralizedEvent is published when hunter removal is enabled and a
// hunter leaves play together with its capture
type HunterNeutralizedEvent struct {
	BaseEvent
	Step      int `json:"step"`
	HunterIdx int `json:"hunter_idx"`
}

// NewHunterNeutralizedEvent creates a new hunter neutralized event
func NewHunterNeutralizedEvent(episodeID string, step, hunterIdx int) *HunterNeutralizedEvent {
	return &HunterNeutralizedEvent{
		BaseEvent: BaseEvent{EventType: TypeHunterNeutralized, Time: time.Now(), Episode: episodeID},
		Step:      step,
		HunterIdx: hunterIdx,
	}
}

// EpisodeEndedEvent is published when the last rabbit leaves play
type EpisodeEndedEvent struct {
	BaseEvent
	Steps       int     `json:"steps"`
	TotalReward float64 `json:"total_reward"`
}

// NewEpisodeEndedEvent creates a new episode ended event
func NewEpisodeEndedEvent(episodeID string, steps int, totalReward float64) *EpisodeEndedEvent {
	return &EpisodeEndedEvent{
		BaseEvent:   BaseEvent{EventType: TypeEpisodeEnded, Time: time.Now(), Episode: episodeID},
		Steps:       steps,
		TotalReward: totalReward,
	}
}
