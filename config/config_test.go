package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Calculator.DefaultBase != "dec" {
		t.Errorf("Expected DefaultBase=dec, got %s", cfg.Calculator.DefaultBase)
	}
	if cfg.Calculator.ShowPlusSign {
		t.Error("Expected ShowPlusSign=false")
	}

	if cfg.REPL.HistorySize != 1000 {
		t.Errorf("Expected HistorySize=1000, got %d", cfg.REPL.HistorySize)
	}
	if cfg.REPL.Prompt != "bigint> " {
		t.Errorf("Expected Prompt=%q, got %q", "bigint> ", cfg.REPL.Prompt)
	}

	if cfg.API.Port != 8080 {
		t.Errorf("Expected Port=8080, got %d", cfg.API.Port)
	}
	if cfg.API.MaxSessions != 64 {
		t.Errorf("Expected MaxSessions=64, got %d", cfg.API.MaxSessions)
	}

	if cfg.Trace.StreamDivisionSteps {
		t.Error("Expected StreamDivisionSteps=false")
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if cfg.Calculator.DefaultBase != "dec" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.toml"

	cfg := DefaultConfig()
	cfg.Calculator.DefaultBase = "hex"
	cfg.API.Port = 9090

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Calculator.DefaultBase != "hex" {
		t.Errorf("DefaultBase = %s, want hex", loaded.Calculator.DefaultBase)
	}
	if loaded.API.Port != 9090 {
		t.Errorf("Port = %d, want 9090", loaded.API.Port)
	}
}
