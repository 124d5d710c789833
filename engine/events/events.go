// Package events delivers engine events to presentation sinks.
// Delivery is a single synchronous pass; sinks cannot feed events back.
package events

import (
	"github.com/charmbracelet/log"

	"github.com/nathoo/superadventure/types"
)

// Sink receives events emitted by the engine.
type Sink interface {
	Emit(types.Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(types.Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e types.Event) { f(e) }

// Dispatch delivers each event, in order, to every non-nil sink.
func Dispatch(evts []types.Event, sinks ...Sink) {
	for _, e := range evts {
		for _, s := range sinks {
			if s != nil {
				s.Emit(e)
			}
		}
	}
}

// Recorder collects events in memory.
type Recorder struct {
	Events []types.Event
}

// Emit appends e.
func (r *Recorder) Emit(e types.Event) {
	r.Events = append(r.Events, e)
}

// Types returns the recorded event types in order.
func (r *Recorder) Types() []types.EventType {
	out := make([]types.EventType, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Type
	}
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

// LogSink writes each event to a logger at debug level.
type LogSink struct {
	Logger *log.Logger
}

// Emit logs e with its non-empty fields as key/value pairs.
func (s LogSink) Emit(e types.Event) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug("event", Fields(e)...)
}

// Fields flattens the populated fields of e into alternating key/value pairs.
func Fields(e types.Event) []any {
	kv := []any{"type", string(e.Type)}
	add := func(k string, v string) {
		if v != "" {
			kv = append(kv, k, v)
		}
	}
	add("location", e.LocationID)
	add("quest", e.QuestID)
	add("monster", e.MonsterID)
	add("item", e.ItemID)
	add("slot", e.Slot)
	add("reason", string(e.Reason))
	if e.Amount != 0 {
		kv = append(kv, "amount", e.Amount)
	}
	if e.Experience != 0 {
		kv = append(kv, "xp", e.Experience)
	}
	if e.Gold != 0 {
		kv = append(kv, "gold", e.Gold)
	}
	if len(e.Items) > 0 {
		kv = append(kv, "items", len(e.Items))
	}
	return kv
}
