package trace

import (
	"context"

	"callassist/internal/layout"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used for layout spans.
const TracerName = "callassist/layout"

// Span and attribute names.
const (
	SpanDrag  = "layout.drag"
	SpanSwap  = "layout.swap"
	EventSwap = "layout.swap"

	AttrPanel     = "callassist.panel"
	AttrOrigin    = "callassist.slot.origin"
	AttrFinal     = "callassist.slot.final"
	AttrSource    = "callassist.slot.source"
	AttrTarget    = "callassist.slot.target"
	AttrSwaps     = "callassist.swaps"
	AttrCancelled = "callassist.cancelled"
	AttrLayout    = "callassist.layout"
)

// LayoutObserver records each drag as one span with an event per swap.
// Swaps outside a drag (keyboard) become their own short span.
type LayoutObserver struct {
	tracer oteltrace.Tracer
	drag   oteltrace.Span
}

var _ layout.Observer = (*LayoutObserver)(nil)

// NewLayoutObserver returns an observer creating spans on tp.
func NewLayoutObserver(tp oteltrace.TracerProvider) *LayoutObserver {
	return &LayoutObserver{tracer: tp.Tracer(TracerName)}
}

// DragStarted implements layout.Observer.
func (o *LayoutObserver) DragStarted(state layout.DragState) {
	_, o.drag = o.tracer.Start(context.Background(), SpanDrag,
		oteltrace.WithAttributes(
			attribute.String(AttrPanel, state.Panel.String()),
			attribute.String(AttrOrigin, state.Origin.String()),
		),
	)
}

// Swapped implements layout.Observer.
func (o *LayoutObserver) Swapped(src, dst layout.SlotID, before, after layout.Map) {
	attrs := []attribute.KeyValue{
		attribute.String(AttrSource, src.String()),
		attribute.String(AttrTarget, dst.String()),
		attribute.StringSlice(AttrLayout, mapNames(after)),
	}
	if o.drag != nil {
		o.drag.AddEvent(EventSwap, oteltrace.WithAttributes(attrs...))
		return
	}
	_, span := o.tracer.Start(context.Background(), SpanSwap, oteltrace.WithAttributes(attrs...))
	span.End()
}

// DragEnded implements layout.Observer.
func (o *LayoutObserver) DragEnded(state layout.DragState, cancelled bool, swaps int) {
	if o.drag == nil {
		return
	}
	o.drag.SetAttributes(
		attribute.String(AttrFinal, state.Origin.String()),
		attribute.Int(AttrSwaps, swaps),
		attribute.Bool(AttrCancelled, cancelled),
	)
	o.drag.End()
	o.drag = nil
}

func mapNames(m layout.Map) []string {
	out := make([]string, 0, len(layout.Slots))
	for _, s := range layout.Slots {
		out = append(out, m.At(s).String())
	}
	return out
}
