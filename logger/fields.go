package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldSession   = "session_id"
	FieldPipeline  = "pipeline"
	FieldStage     = "stage"
	FieldOperation = "op"
	FieldIndex     = "index"
	FieldValue     = "value"
	FieldCount     = "count"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map from alternating key-value pairs. Non-string keys and a
// trailing key without a value are ignored.
//
//	logger.Info("done", logger.Fields("op", "drop", "n", 2))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}
