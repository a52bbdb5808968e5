package game

import "github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"

// CaptureDetails records one hunter-rabbit coincidence resolved in a step
type CaptureDetails struct {
	HunterIdx int
	RabbitIdx int
	Cell      core.Position
}

// resolveCaptures finds all hunter-rabbit coincidences and marks the matched
// rabbits (and, when removeHunter is set, the matching hunters) out of play.
// Scan order is hunter-major, rabbit-minor, in stored order; a rabbit is
// matched at most once per pass, and a neutralized hunter is not checked
// against further rabbits.
func resolveCaptures(hunters, rabbits []core.Agent, removeHunter bool) []CaptureDetails {
	var captures []CaptureDetails

	for i := range hunters {
		if !hunters[i].Alive {
			continue
		}
		for j := range rabbits {
			if !rabbits[j].Alive {
				continue
			}
			if !hunters[i].Pos.Equal(rabbits[j].Pos) {
				continue
			}

			captures = append(captures, CaptureDetails{
				HunterIdx: i,
				RabbitIdx: j,
				Cell:      hunters[i].Pos,
			})
			rabbits[j].Remove()

			if removeHunter {
				hunters[i].Remove()
				break
			}
		}
	}

	return captures
}
