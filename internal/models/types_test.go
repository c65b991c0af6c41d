package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContainerState(t *testing.T) {
	tests := map[string]ContainerState{
		"running":    StateRunning,
		"exited":     StateStopped,
		"dead":       StateStopped,
		"paused":     StatePaused,
		"restarting": StateRestarting,
		"created":    StateCreated,
		"removing":   StateRemoving,
		"bogus":      StateUnknown,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseContainerState(in), in)
	}
}

func TestContainerStateRoundTrip(t *testing.T) {
	for _, s := range []ContainerState{StateRunning, StateStopped, StatePaused, StateRestarting, StateCreated, StateRemoving} {
		assert.Equal(t, s, ParseContainerState(s.String()))
	}
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "Containers", SourceDocker.String())
	assert.Equal(t, "Unknown", Source("x").String())
}
