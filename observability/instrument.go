package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/enumkit/enumerator"
)

// InstrumentedIter counts every Advance of its parent on Metrics.
type InstrumentedIter[T any] struct {
	parent   enumerator.Enumerator[T]
	ctx      context.Context
	metrics  *Metrics
	pipeline string
}

// Instrument wraps parent so that each element stepped over is recorded under
// the pipeline label. ctx is captured for metric recording only; enumerator
// operations never block. A nil metrics disables recording.
func Instrument[T any](ctx context.Context, parent enumerator.Enumerator[T], metrics *Metrics, pipeline string) *InstrumentedIter[T] {
	return &InstrumentedIter[T]{parent: parent, ctx: ctx, metrics: metrics, pipeline: pipeline}
}

func (it *InstrumentedIter[T]) HasCurrent() bool { return it.parent.HasCurrent() }

func (it *InstrumentedIter[T]) Current() T { return it.parent.Current() }

func (it *InstrumentedIter[T]) Advance() {
	it.parent.Advance()
	if it.metrics != nil {
		it.metrics.RecordAdvance(it.ctx, it.pipeline)
	}
}

// Materialize drains e like enumerator.ToSlice inside a span named
// SpanMaterialize, recording the element count and duration. When e is a
// Logged enumerator, possibly inside a Query, its session id is put on the
// span. A nil metrics records the span only.
func Materialize[T any](ctx context.Context, pipeline string, e enumerator.Enumerator[T], metrics *Metrics) []T {
	ctx, span := StartSpan(ctx, SpanMaterialize, trace.WithAttributes(attribute.String(AttrPipeline, pipeline)))
	defer span.End()
	if id, ok := sessionOf(e); ok {
		span.SetAttributes(attribute.String(AttrSessionID, id))
	}

	start := time.Now()
	out := enumerator.ToSlice(e)
	span.SetAttributes(attribute.Int(AttrElementCount, len(out)))
	if metrics != nil {
		metrics.RecordMaterialize(ctx, pipeline, len(out), time.Since(start))
	}
	return out
}

// sessionOf finds the session id of a LoggedIter at the outside of e,
// looking through Query wrappers.
func sessionOf[T any](e enumerator.Enumerator[T]) (string, bool) {
	for {
		switch v := e.(type) {
		case interface{ Session() string }:
			return v.Session(), true
		case interface{ Enumerator() enumerator.Enumerator[T] }:
			e = v.Enumerator()
		default:
			return "", false
		}
	}
}
