package plan

import (
	"context"
	"io"

	"github.com/kbukum/enumkit/enumerator"
	"github.com/kbukum/enumkit/errors"
	"github.com/kbukum/enumkit/logger"
	"github.com/kbukum/enumkit/observability"
)

type options struct {
	log     *logger.Logger
	out     io.Writer
	metrics *observability.Metrics
}

// Option configures Build and Run.
type Option func(*options)

// WithLogger sets the logger used for stage and element logging. Without it
// a logger is built from the plan's logging config.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithLogOutput sends the logger built from the plan's logging config to w
// instead of its configured output. Ignored when WithLogger is given.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithMetrics records advances and materializations on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// prepare applies defaults to cfg, validates it and resolves opts against it.
func prepare(cfg *Config, opts []Option) (*options, error) {
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	switch {
	case o.log != nil:
		o.log = o.log.WithComponent("plan")
	case o.out != nil:
		o.log = logger.NewWithWriter(&cfg.Logging, "plan", o.out)
	default:
		o.log = logger.New(&cfg.Logging, "plan")
	}
	return o, nil
}

// Build applies defaults to cfg, validates it and composes its stages over
// src. Nothing is read from src until the returned query is traversed.
func Build(cfg *Config, src enumerator.Enumerator[int64], opts ...Option) (enumerator.Query[int64], error) {
	o, err := prepare(cfg, opts)
	if err != nil {
		return enumerator.Query[int64]{}, err
	}
	return build(context.Background(), cfg, src, o)
}

func build(ctx context.Context, cfg *Config, src enumerator.Enumerator[int64], o *options) (enumerator.Query[int64], error) {
	if o.metrics != nil {
		src = observability.Instrument(ctx, src, o.metrics, cfg.Name)
	}
	q := enumerator.From(src)
	for i, s := range cfg.Stages {
		next, err := apply(q, i, s)
		if err != nil {
			return enumerator.Query[int64]{}, err
		}
		q = next
		o.log.Debug("stage applied", logger.Fields(
			logger.FieldPipeline, cfg.Name,
			logger.FieldIndex, i,
			logger.FieldStage, s.String(),
		))
	}
	if cfg.Debug {
		q = enumerator.From[int64](observability.Logged[int64](q, o.log, cfg.Name))
	}
	return q, nil
}

func apply(q enumerator.Query[int64], i int, s Stage) (enumerator.Query[int64], error) {
	switch s.Op {
	case OpDrop:
		return q.Drop(s.N), nil
	case OpTake:
		return q.Take(s.N), nil
	case OpUntilEq:
		return enumerator.From[int64](enumerator.UntilEq[int64](q, *s.Value)), nil
	case OpUntilGt:
		v := *s.Value
		return q.Until(func(x int64) bool { return x > v }), nil
	case OpWhereNeq:
		return enumerator.From[int64](enumerator.WhereNeq[int64](q, *s.Value)), nil
	case OpWhereGt:
		v := *s.Value
		return q.Where(func(x int64) bool { return x > v }), nil
	case OpNegate:
		return enumerator.From[int64](enumerator.Select[int64](q, negate)), nil
	case OpAbs:
		return enumerator.From[int64](enumerator.Select[int64](q, abs)), nil
	default:
		return q, errors.UnknownStage(i, s.Op)
	}
}

func negate(x int64) int64 { return -x }

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Run builds cfg over xs and materializes the result inside a traced span.
func Run(ctx context.Context, cfg *Config, xs []int64, opts ...Option) ([]int64, error) {
	o, err := prepare(cfg, opts)
	if err != nil {
		return nil, err
	}
	q, err := build(ctx, cfg, enumerator.FromSlice(xs), o)
	if err != nil {
		return nil, err
	}
	out := observability.Materialize[int64](ctx, cfg.Name, q, o.metrics)
	o.log.Info("plan completed", logger.Fields(
		logger.FieldPipeline, cfg.Name,
		logger.FieldCount, len(out),
	))
	return out, nil
}
