// Package logger provides structured logging for enumkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. Cursor tracing in the observability package and
// pipeline building in the plan package log through it.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("plan")
//	log.Debug("stage applied", logger.Fields("op", "drop", "n", 2))
package logger
