package core

import "fmt"

// Movement is a one-step displacement with both components in {-1, 0, 1}
type Movement struct {
	DY, DX int
}

// NumActions is the size of the discrete action space
const NumActions = 9

// ActionStay is the index of the no-op movement (0,0)
const ActionStay = 4

// ActionSpace maps action indices 0..8 to movements in row-major (dy, dx)
// order. Index 4 is "stay".
var ActionSpace = [NumActions]Movement{
	{DY: -1, DX: -1}, {DY: -1, DX: 0}, {DY: -1, DX: 1},
	{DY: 0, DX: -1}, {DY: 0, DX: 0}, {DY: 0, DX: 1},
	{DY: 1, DX: -1}, {DY: 1, DX: 0}, {DY: 1, DX: 1},
}

// Valid reports whether both movement components are in {-1, 0, 1}
func (m Movement) Valid() bool {
	return m.DY >= -1 && m.DY <= 1 && m.DX >= -1 && m.DX <= 1
}

// Index returns the action index for this movement, or ErrInvalidActionShape
// if a component is outside {-1, 0, 1}
func (m Movement) Index() (int, error) {
	if !m.Valid() {
		return -1, ErrInvalidActionShape
	}
	return (m.DY+1)*3 + (m.DX + 1), nil
}

// String returns a string representation of the movement
func (m Movement) String() string {
	return fmt.Sprintf("(%+d,%+d)", m.DY, m.DX)
}

// DecodeAction converts an action index into its movement vector
func DecodeAction(index int) (Movement, error) {
	if index < 0 || index >= NumActions {
		return Movement{}, fmt.Errorf("%w: %d", ErrInvalidActionIndex, index)
	}
	return ActionSpace[index], nil
}

// DecodeActions converts a slice of action indices into movement vectors.
// The whole slice is rejected if any index is out of range.
func DecodeActions(indices []int) ([]Movement, error) {
	moves := make([]Movement, len(indices))
	for i, idx := range indices {
		m, err := DecodeAction(idx)
		if err != nil {
			return nil, err
		}
		moves[i] = m
	}
	return moves, nil
}
