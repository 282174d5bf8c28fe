package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseOffsetsDistinct(t *testing.T) {
	for _, k := range Kinds() {
		seen := map[Offset]bool{}
		for _, o := range k.BaseOffsets() {
			assert.False(t, seen[o], "%s has duplicate offset %v", k, o)
			seen[o] = true
		}
		assert.Len(t, seen, PieceBlocks)
	}
}

func TestRotateOffsetsFullTurn(t *testing.T) {
	for _, k := range Kinds() {
		offsets := k.BaseOffsets()
		for i := 0; i < 4; i++ {
			offsets = rotateOffsets(offsets, true)
		}
		assert.Equal(t, k.BaseOffsets(), offsets, "%s: four clockwise turns must be the identity", k)
	}
}

func TestRotateOffsetsInverse(t *testing.T) {
	for _, k := range Kinds() {
		offsets := k.BaseOffsets()
		turned := rotateOffsets(rotateOffsets(offsets, true), false)
		assert.Equal(t, offsets, turned)
	}
}

func TestRotateOffsetsTransform(t *testing.T) {
	cw := rotateOffsets([PieceBlocks]Offset{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}, true)
	assert.Equal(t, [PieceBlocks]Offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}, cw)

	ccw := rotateOffsets([PieceBlocks]Offset{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}, false)
	assert.Equal(t, [PieceBlocks]Offset{{0, 1}, {-1, 0}, {0, -1}, {1, 0}}, ccw)
}

func TestKickTables(t *testing.T) {
	for _, k := range Kinds() {
		kicks := k.kicks()
		assert.Equal(t, Offset{0, 0}, kicks[0], "%s kick table must start with the unkicked position", k)
	}
	assert.Contains(t, KindI.kicks(), Offset{2, 0})
	assert.Contains(t, KindI.kicks(), Offset{-2, 0})
	assert.NotContains(t, KindT.kicks(), Offset{2, 0})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "I", KindI.String())
	assert.Equal(t, "L", KindL.String())
	assert.Equal(t, "?", Kind(200).String())
}
