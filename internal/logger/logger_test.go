package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func jsonConfig(level string) Config {
	return Config{Level: level, Format: "json"}
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var record map[string]interface{}
	line := strings.TrimSpace(buf.String())
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", line, err)
	}
	return record
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "warn" {
		t.Errorf("Expected default level warn, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Expected default format console, got %s", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("Expected default output stderr, got %s", cfg.Output)
	}
	if cfg.MaxSize != 10 || cfg.MaxBackups != 3 || cfg.MaxAge != 28 {
		t.Errorf("Unexpected rotation defaults: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Level: "warn", Format: "console", Output: "stderr"}, false},
		{"json to stdout", Config{Level: "debug", Format: "json", Output: "stdout"}, false},
		{"disabled", Config{Level: "disabled", Format: "json", Output: "stderr"}, false},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stderr"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stderr"}, true},
		{"bad output", Config{Level: "info", Format: "json", Output: "socket"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(jsonConfig("warn"), &buf)

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("Expected info to be filtered at warn level, got %q", buf.String())
	}

	l.Warn("shown")
	record := decodeLine(t, &buf)
	if record["message"] != "shown" {
		t.Errorf("Expected message 'shown', got %v", record["message"])
	}
	if record["level"] != "warn" {
		t.Errorf("Expected level warn, got %v", record["level"])
	}
}

func TestLogger_CarriesRunIDAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(jsonConfig("debug"), &buf).WithComponent("pipe-runner")

	l.Debug("streamed", Fields(FieldBytes, 512, FieldChunks, 2))
	record := decodeLine(t, &buf)

	if record[FieldRunID] != RunID() {
		t.Errorf("Expected run_id %s, got %v", RunID(), record[FieldRunID])
	}
	if record[FieldComponent] != "pipe-runner" {
		t.Errorf("Expected component pipe-runner, got %v", record[FieldComponent])
	}
	if record[FieldBytes] != float64(512) {
		t.Errorf("Expected bytes 512, got %v", record[FieldBytes])
	}
}

func TestFields_IgnoresDanglingKey(t *testing.T) {
	m := Fields("a", 1, "b")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("Expected only a=1, got %v", m)
	}
}

func TestNew_WritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipefile.log")
	l := New(Config{Level: "info", Format: "json", File: path})

	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatalf("Failed to close logger: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("Expected log file to contain the message, got %q", string(data))
	}
}

func TestGlobalLogger(t *testing.T) {
	prev := Get()
	defer SetGlobalLogger(prev)

	var buf bytes.Buffer
	SetGlobalLogger(NewWithWriter(jsonConfig("info"), &buf))
	Get().Info("global")

	if !strings.Contains(buf.String(), "global") {
		t.Errorf("Expected global logger to receive the record, got %q", buf.String())
	}

	SetGlobalLogger(nil)
	if Get() == nil {
		t.Error("SetGlobalLogger(nil) must not clear the logger")
	}
}
