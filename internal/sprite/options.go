package sprite

import (
	"fmt"
	"strings"
)

// Behavior selects how a sprite moves on each tick.
type Behavior int

const (
	// BehaviorNormal moves by velocity and bounces off the viewport edges.
	BehaviorNormal Behavior = iota
	// BehaviorFollowPointer is declared but has no movement defined.
	// A tick in this mode does nothing.
	BehaviorFollowPointer
)

// String returns the configuration name of the behavior.
func (b Behavior) String() string {
	switch b {
	case BehaviorNormal:
		return "normal"
	case BehaviorFollowPointer:
		return "follow-pointer"
	default:
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
}

// ParseBehavior converts a configuration name to a Behavior.
// "follow-mouse" is accepted as an older spelling of "follow-pointer".
func ParseBehavior(s string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return BehaviorNormal, nil
	case "follow-pointer", "follow-mouse":
		return BehaviorFollowPointer, nil
	default:
		return BehaviorNormal, fmt.Errorf("unknown behavior %q", s)
	}
}

type optionSet uint8

const (
	hasBehavior optionSet = 1 << iota
	hasSpeed
	hasSize
)

// Options are the per-spawn overrides. Only fields that were set are
// applied; the zero value overrides nothing.
type Options struct {
	behavior Behavior
	speed    float64
	size     float64
	set      optionSet
}

// WithBehavior returns a copy with the behavior override set.
func (o Options) WithBehavior(b Behavior) Options {
	o.behavior = b
	o.set |= hasBehavior
	return o
}

// WithSpeed returns a copy with the speed multiplier override set.
func (o Options) WithSpeed(speed float64) Options {
	o.speed = speed
	o.set |= hasSpeed
	return o
}

// WithSize returns a copy with the visual size override set.
func (o Options) WithSize(size float64) Options {
	o.size = size
	o.set |= hasSize
	return o
}

// Behavior returns the behavior override and whether it is set.
func (o Options) Behavior() (Behavior, bool) { return o.behavior, o.set&hasBehavior != 0 }

// Speed returns the speed override and whether it is set.
func (o Options) Speed() (float64, bool) { return o.speed, o.set&hasSpeed != 0 }

// Size returns the size override and whether it is set.
func (o Options) Size() (float64, bool) { return o.size, o.set&hasSize != 0 }

// Merge returns o with every field that is set in other copied over.
func (o Options) Merge(other Options) Options {
	if b, ok := other.Behavior(); ok {
		o = o.WithBehavior(b)
	}
	if s, ok := other.Speed(); ok {
		o = o.WithSpeed(s)
	}
	if s, ok := other.Size(); ok {
		o = o.WithSize(s)
	}
	return o
}

// String renders the set fields, e.g. "behavior=normal speed=0.2".
func (o Options) String() string {
	var parts []string
	if b, ok := o.Behavior(); ok {
		parts = append(parts, "behavior="+b.String())
	}
	if s, ok := o.Speed(); ok {
		parts = append(parts, fmt.Sprintf("speed=%g", s))
	}
	if s, ok := o.Size(); ok {
		parts = append(parts, fmt.Sprintf("size=%g", s))
	}
	return strings.Join(parts, " ")
}
