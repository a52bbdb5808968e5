package core

import (
	"fmt"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/common"
)

// Position represents a cell on the grid as (row, col)
type Position struct {
	Y, X int
}

// NewPosition creates a new position with the given row and column values
func NewPosition(y, x int) Position {
	return Position{Y: y, X: x}
}

// Removed returns the sentinel position used for agents taken out of play.
// Sentinel coordinates are outside every grid.
func Removed() Position {
	return Position{Y: -1, X: -1}
}

// IsRemoved reports whether this position is the removed-agent sentinel
func (p Position) IsRemoved() bool {
	return p.Y == -1 && p.X == -1
}

// InBounds checks if the position is within a gridSize x gridSize grid
func (p Position) InBounds(gridSize int) bool {
	return p.Y >= 0 && p.Y < gridSize && p.X >= 0 && p.X < gridSize
}

// Add returns the position displaced by the given movement, without clamping
func (p Position) Add(m Movement) Position {
	return Position{Y: p.Y + m.DY, X: p.X + m.DX}
}

// Clamp returns the position with each axis clamped into [0, gridSize-1].
// Axes clamp independently: a move blocked on one axis still applies on the
// other.
func (p Position) Clamp(gridSize int) Position {
	return Position{
		Y: common.Clamp(p.Y, 0, gridSize-1),
		X: common.Clamp(p.X, 0, gridSize-1),
	}
}

// SquaredDistanceTo calculates the squared Euclidean distance to another position
func (p Position) SquaredDistanceTo(other Position) int {
	dy := p.Y - other.Y
	dx := p.X - other.X
	return dy*dy + dx*dx
}

// Equal checks if two positions are equal
func (p Position) Equal(other Position) bool {
	return p.Y == other.Y && p.X == other.X
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Y, p.X)
}

// Agent is one hunter or rabbit record. Alive tracks whether the agent is
// still in play; removed agents keep the sentinel position.
type Agent struct {
	Pos   Position
	Alive bool
}

// NewAgent creates an in-play agent at the given position
func NewAgent(y, x int) Agent {
	return Agent{Pos: NewPosition(y, x), Alive: true}
}

// Remove marks the agent as out of play and resets its position to the sentinel
func (a *Agent) Remove() {
	a.Alive = false
	a.Pos = Removed()
}
