package models

// Source selects where the showcase reads its list tree from.
type Source string

const (
	SourceDemo   Source = "demo"
	SourceFile   Source = "file"
	SourceDocker Source = "docker"
)

// String returns the display name of the source.
func (s Source) String() string {
	switch s {
	case SourceDemo:
		return "Demo"
	case SourceFile:
		return "File"
	case SourceDocker:
		return "Containers"
	default:
		return "Unknown"
	}
}

// ContainerState represents the state of a container for UI purposes.
type ContainerState int

const (
	StateUnknown ContainerState = iota
	StateRunning
	StateStopped
	StatePaused
	StateRestarting
	StateCreated
	StateRemoving
)

// ParseContainerState converts a Docker state string to ContainerState.
func ParseContainerState(state string) ContainerState {
	switch state {
	case "running":
		return StateRunning
	case "exited", "dead":
		return StateStopped
	case "paused":
		return StatePaused
	case "restarting":
		return StateRestarting
	case "created":
		return StateCreated
	case "removing":
		return StateRemoving
	default:
		return StateUnknown
	}
}

// String returns the lower-case Docker name of the state.
func (s ContainerState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "exited"
	case StatePaused:
		return "paused"
	case StateRestarting:
		return "restarting"
	case StateCreated:
		return "created"
	case StateRemoving:
		return "removing"
	default:
		return "unknown"
	}
}
