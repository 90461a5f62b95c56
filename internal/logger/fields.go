package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldPath      = "path"
	FieldCommand   = "command"
	FieldBytes     = "bytes"
	FieldChunks    = "chunks"
	FieldExitCode  = "exit_code"
	FieldPID       = "pid"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	log.Info("streamed", logger.Fields("bytes", 512, "chunks", 2))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
