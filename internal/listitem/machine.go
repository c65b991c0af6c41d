package listitem

import (
	"time"

	"github.com/tsukinoko-kun/listkit/internal/anim"
)

const (
	// HoverFadeDuration is the duration of the hover background fade.
	HoverFadeDuration = 175 * time.Millisecond
	// ExpandDuration is the duration of each expand and collapse channel.
	ExpandDuration = 150 * time.Millisecond
	// ExpandStagger delays the opacity channel when expanding and the height
	// channel when collapsing.
	ExpandStagger = 50 * time.Millisecond
)

// Channels are the animated values of a list item, each in [0, 1].
type Channels struct {
	Hover   *anim.Value
	Icon    *anim.Value
	Height  *anim.Value
	Opacity *anim.Value
}

// Input is the part of the configuration and pointer state the machine reacts to.
type Input struct {
	Hovered  bool
	Expanded bool
}

// Machine holds the interaction state of a list item and decides which
// channels to animate on each update.
type Machine struct {
	Channels Channels

	hovered bool
	// expanded lags the expanded prop while the expand animation runs.
	expanded bool
	// prop is the expanded prop seen by the last Transition.
	prop bool
}

// NewMachine returns a machine mounted with the given expanded prop.
func NewMachine(expanded bool) *Machine {
	var v float32
	if expanded {
		v = 1
	}
	return &Machine{
		Channels: Channels{
			Hover:   anim.NewValue(0),
			Icon:    anim.NewValue(v),
			Height:  anim.NewValue(v),
			Opacity: anim.NewValue(v),
		},
		expanded: expanded,
		prop:     expanded,
	}
}

// Hovered reports the pointer state seen by the last Transition.
func (m *Machine) Hovered() bool {
	return m.hovered
}

// Expanded reports the committed expanded state. It turns true only once the
// expand animation completes and false as soon as the prop flips to false.
func (m *Machine) Expanded() bool {
	return m.expanded
}

// Transition compares next against the previous input and schedules animations.
// The hover and expand comparisons are independent of each other.
func (m *Machine) Transition(now time.Time, next Input) {
	m.transitionHover(now, next.Hovered)
	m.transitionExpanded(now, next.Expanded)
}

// Advance ticks every channel to now and reports whether any is still animating.
func (m *Machine) Advance(now time.Time) bool {
	animating := false
	for _, v := range m.channels() {
		v.Update(now)
		if v.Animating() {
			animating = true
		}
	}
	return animating
}

func (m *Machine) channels() [4]*anim.Value {
	return [4]*anim.Value{m.Channels.Hover, m.Channels.Icon, m.Channels.Height, m.Channels.Opacity}
}

func (m *Machine) transitionHover(now time.Time, hovered bool) {
	switch {
	case !m.hovered && hovered:
		m.Channels.Hover.AnimateTo(now, 1, anim.Options{Duration: HoverFadeDuration})
	case m.hovered && !hovered:
		m.Channels.Hover.AnimateTo(now, 0, anim.Options{Duration: HoverFadeDuration})
	}
	m.hovered = hovered
}

func (m *Machine) transitionExpanded(now time.Time, expanded bool) {
	prev := m.prop
	m.prop = expanded

	switch {
	case !prev && expanded:
		m.Channels.Icon.AnimateTo(now, 1, anim.Options{Duration: ExpandDuration})
		m.Channels.Height.AnimateTo(now, 1, anim.Options{Duration: ExpandDuration})
		m.Channels.Opacity.AnimateTo(now, 1, anim.Options{
			Duration: ExpandDuration,
			Delay:    ExpandStagger,
			Done: func(finished bool) {
				// An interrupted expand must not unclip a collapsing list.
				if finished && m.prop {
					m.expanded = true
				}
			},
		})
	case prev && !expanded:
		m.expanded = false
		m.Channels.Icon.AnimateTo(now, 0, anim.Options{Duration: ExpandDuration})
		m.Channels.Height.AnimateTo(now, 0, anim.Options{Duration: ExpandDuration, Delay: ExpandStagger})
		m.Channels.Opacity.AnimateTo(now, 0, anim.Options{Duration: ExpandDuration})
	}
}
