// Package observability instruments enumerator pipelines with OpenTelemetry
// metrics and tracing and with structured logging.
//
// Instrumentation is pass-through: every wrapper implements
// enumerator.Enumerator and forwards to its parent, so it can sit anywhere in
// a chain without changing what the chain yields.
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("ingest"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("ingest"))
//	e := observability.Instrument(ctx, enumerator.FromSlice(xs), metrics, "ingest")
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("ingest"))
//	defer tp.Shutdown(ctx)
//
//	out := observability.Materialize(ctx, "ingest", e, metrics)
//
// Logging:
//
//	e := observability.Logged(e, logger.Get("ingest"), "ingest")
package observability
