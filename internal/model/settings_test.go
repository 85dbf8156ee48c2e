package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings_MatchesDocumentedConstants(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, ModeStrip, s.Mode)
	assert.True(t, s.AllowRotate)
	assert.Equal(t, DefaultVolumeCapacityRatio, s.VolumeCapacityRatio)
	assert.Equal(t, DefaultWeightCapacityRatio, s.WeightCapacityRatio)
	assert.Equal(t, DefaultAreaCapacityRatio, s.AreaCapacityRatio)
	assert.Equal(t, float64(DefaultUnpackedPenalty), s.UnpackedPenalty)
	assert.Equal(t, float64(DefaultUsedPenalty), s.UsedPenalty)
}

func TestModeConstants_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ModeStrip, ModeBin)
}
