package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_BuildRobot(t *testing.T) {
	p := NewProgress(2)

	assert.ErrorIs(t, p.BuildRobot(), ErrPartsMissing)

	p.Collect()
	assert.False(t, p.AllPartsCollected())
	p.Collect()
	p.Collect()
	assert.Equal(t, 2, p.PartsCollected, "collection stops at the requirement")
	assert.True(t, p.AllPartsCollected())
	assert.False(t, p.RobotBuilt())

	require.NoError(t, p.BuildRobot())
	assert.True(t, p.RobotBuilt())
	assert.ErrorIs(t, p.BuildRobot(), ErrRobotAlreadyBuilt)
}

func TestPart_Bounds(t *testing.T) {
	p := Part{Pos: Position{X: 5, Y: 6}, Size: Size{W: 8, H: 8}}

	assert.Equal(t, Rect{X: 5, Y: 6, W: 8, H: 8}, p.Bounds())
}
