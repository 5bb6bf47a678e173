package sapling

import (
	"fmt"
	"strings"
)

// EventKind distinguishes the events a Grower reports
type EventKind int

const (
	// LeafEvent reports a node that became a leaf
	LeafEvent EventKind = iota
	// GainsEvent reports the gains computed for every feature at a node
	GainsEvent
	// SplitEvent reports the feature chosen to split a node
	SplitEvent
)

func (k EventKind) String() string {
	switch k {
	case LeafEvent:
		return "leaf"
	case GainsEvent:
		return "gains"
	case SplitEvent:
		return "split"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

/*
Event describes a step taken by a Grower while developing a node.
Fields not relevant for the event's Kind are left to their zero value.
*/
type Event struct {
	Kind EventKind
	// Depth of the node, 0 for the root
	Depth int
	// Number of rows of the node's table
	Rows int
	// Path of feature=value constraints leading to the node
	Path []string
	// Names of the features available at the node
	Features []string
	// Gain of each available feature, for GainsEvent
	Gains []float64
	// Chosen feature, for SplitEvent
	Feature      string
	FeatureIndex int
	// Assigned label, for LeafEvent
	Label string
}

/*
Tracer is an interface wrapping the Trace method, that a Grower calls
with every Event that happens while growing a tree.
*/
type Tracer interface {
	Trace(Event)
}

/*
TracerFunc wraps a function with the Trace method signature to implement
the Tracer interface
*/
type TracerFunc func(Event)

// Trace calls the TracerFunc with the event
func (tf TracerFunc) Trace(e Event) {
	tf(e)
}

/*
Logger is an interface for objects with a printf-like Logf method,
such as the verbose logger of the sapling command or a testing.T.
*/
type Logger interface {
	Logf(format string, a ...interface{})
}

/*
LogTracer takes a Logger and returns a Tracer that logs a line
for every event.
*/
func LogTracer(l Logger) Tracer {
	return TracerFunc(func(e Event) {
		switch e.Kind {
		case LeafEvent:
			l.Logf("%sleaf %q at %v with %d rows", indent(e.Depth), e.Label, e.Path, e.Rows)
		case GainsEvent:
			l.Logf("%sgains at %v for features %v: %v", indent(e.Depth), e.Path, e.Features, e.Gains)
		case SplitEvent:
			l.Logf("%ssplitting %d rows at %v on feature %s (index %d)", indent(e.Depth), e.Rows, e.Path, e.Feature, e.FeatureIndex)
		}
	})
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
