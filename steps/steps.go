// Package steps records the animation log of a structure: an append-only
// sequence of algorithm events (comparisons, rotations, splits, swaps)
// written during each operation and drained afterwards by whoever replays
// them. A recorder belongs to exactly one structure and is not safe for
// concurrent use; the whole engine runs on a single goroutine by contract.
package steps

import (
	"fmt"
	"time"
)

// Action tags what a step animates. The set is fixed so renderers can
// switch exhaustively.
type Action uint8

const (
	ActionCompare Action = iota
	ActionVisit
	ActionFound
	ActionInsert
	ActionDelete
	ActionRotateLeft
	ActionRotateRight
	ActionColorFlip
	ActionSplit
	ActionMerge
	ActionBorrow
	ActionSwap
	ActionUpdate
	ActionBalance
)

func (a Action) String() string {
	switch a {
	case ActionCompare:
		return "compare"
	case ActionVisit:
		return "visit"
	case ActionFound:
		return "found"
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	case ActionRotateLeft:
		return "rotate-left"
	case ActionRotateRight:
		return "rotate-right"
	case ActionColorFlip:
		return "color-flip"
	case ActionSplit:
		return "split"
	case ActionMerge:
		return "merge"
	case ActionBorrow:
		return "borrow"
	case ActionSwap:
		return "swap"
	case ActionUpdate:
		return "update"
	case ActionBalance:
		return "balance"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Node is the minimal view a step keeps of the node it concerns. Structure
// node types satisfy it; the reference is shared, not copied, so a renderer
// replaying steps sees the node's final state plus its own annotations.
type Node interface {
	Label() string
}

// Step is one animation event.
type Step struct {
	Action Action
	// Node the step concerns; nil for steps about array slots or whole
	// structures.
	Node Node
	// Detail is preformatted operand text, e.g. "30 < 50: descend left".
	Detail string
	At     time.Time
}

func (s Step) String() string {
	switch {
	case s.Node != nil && s.Detail != "":
		return fmt.Sprintf("%s %s: %s", s.Action, s.Node.Label(), s.Detail)
	case s.Node != nil:
		return fmt.Sprintf("%s %s", s.Action, s.Node.Label())
	case s.Detail != "":
		return fmt.Sprintf("%s %s", s.Action, s.Detail)
	default:
		return s.Action.String()
	}
}

// Recorder accumulates steps for one structure. Operations append via
// Recordf; the renderer takes everything with Drain, which also clears the
// log, so each batch of steps is observed exactly once.
type Recorder struct {
	steps []Step
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Recordf appends a step. The node may be nil.
func (r *Recorder) Recordf(a Action, n Node, format string, args ...interface{}) {
	r.steps = append(r.steps, Step{
		Action: a,
		Node:   n,
		Detail: fmt.Sprintf(format, args...),
		At:     time.Now(),
	})
}

// Len reports how many steps are pending.
func (r *Recorder) Len() int { return len(r.steps) }

// Drain returns the pending steps and resets the log.
func (r *Recorder) Drain() []Step {
	out := r.steps
	r.steps = nil
	return out
}
