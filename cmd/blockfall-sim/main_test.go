package main

import (
	"bytes"
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationReport(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Seed = 3
	sim, err := newSimulation(cfg, nil)
	require.NoError(t, err)

	report := &Report{Games: 2, MaxFrames: 300, Seed: 3, Randomizer: cfg.Game.Randomizer}
	for range report.Games {
		frames := sim.playOne(report.MaxFrames, 1.0/60)
		assert.LessOrEqual(t, frames, report.MaxFrames)
		report.TotalFrames += int64(frames)
		report.FrameTime.Samples = append(report.FrameTime.Samples, sim.lastFrameTimes...)
	}
	report.FrameTime.Finalize()
	report.collect(sim)

	require.Len(t, report.Played, 2)
	assert.Positive(t, report.Played[0].Pieces)
	assert.LessOrEqual(t, report.FrameTime.Min, report.FrameTime.Max)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "# Blockfall Simulation Report")
	assert.Contains(t, buf.String(), report.Played[0].ID.String())
}
