package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionSpaceOrdering(t *testing.T) {
	// Row-major (dy, dx) order over {-1,0,1} x {-1,0,1}
	expected := []Movement{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 0}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}

	require.Len(t, ActionSpace, NumActions)
	for i, m := range ActionSpace {
		assert.Equal(t, expected[i], m, "action %d has wrong movement", i)
	}
	assert.Equal(t, Movement{0, 0}, ActionSpace[ActionStay], "ActionStay must be the no-op")
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		want    Movement
		wantErr bool
	}{
		{name: "first action", index: 0, want: Movement{DY: -1, DX: -1}},
		{name: "stay", index: 4, want: Movement{DY: 0, DX: 0}},
		{name: "last action", index: 8, want: Movement{DY: 1, DX: 1}},
		{name: "negative index", index: -1, wantErr: true},
		{name: "index too large", index: 9, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeAction(tt.index)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidActionIndex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestMovementIndexRoundTrip(t *testing.T) {
	for i, m := range ActionSpace {
		idx, err := m.Index()
		require.NoError(t, err)
		assert.Equal(t, i, idx, "movement %s should encode back to its index", m)

		decoded, err := DecodeAction(idx)
		require.NoError(t, err)
		assert.Equal(t, m, decoded)
	}
}

func TestMovementIndexRejectsOutOfRangeComponents(t *testing.T) {
	for _, m := range []Movement{{DY: 2, DX: 0}, {DY: 0, DX: -2}, {DY: 5, DX: 5}} {
		_, err := m.Index()
		assert.ErrorIs(t, err, ErrInvalidActionShape, "movement %s should be rejected", m)
	}
}

func TestDecodeActions(t *testing.T) {
	moves, err := DecodeActions([]int{4, 0, 8})
	require.NoError(t, err)
	require.Len(t, moves, 3)
	assert.Equal(t, Movement{0, 0}, moves[0])
	assert.Equal(t, Movement{-1, -1}, moves[1])
	assert.Equal(t, Movement{1, 1}, moves[2])

	_, err = DecodeActions([]int{4, 9})
	assert.ErrorIs(t, err, ErrInvalidActionIndex)
}
