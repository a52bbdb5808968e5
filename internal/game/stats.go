package game

// This file contains the per-episode statistics exposed by the engine.

// EpisodeStats is a snapshot of the bookkeeping for the current episode
type EpisodeStats struct {
	EpisodeID        string
	Steps            int
	Captures         int
	TotalReward      float64
	HuntersRemaining int
	RabbitsRemaining int
}

// Stats returns the counters for the current episode given its latest state.
// Remaining counts are derived from the state's alive tags, not cached.
func (e *Engine) Stats(s *State) EpisodeStats {
	stats := EpisodeStats{
		EpisodeID:   e.episodeID,
		Steps:       e.step,
		Captures:    e.captures,
		TotalReward: e.totalReward,
	}
	if s != nil {
		stats.HuntersRemaining = s.ActiveHunters()
		stats.RabbitsRemaining = s.ActiveRabbits()
	}
	return stats
}
