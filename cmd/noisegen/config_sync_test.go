package main

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"noisegen/internal/config"
)

func TestWriteConfigFromEnvJSON(t *testing.T) {
	t.Setenv("NOISE_CONFIG_YAML_B64", "")

	cfg := config.Default()
	cfg.Noise.Category = "simplex-value"
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	t.Setenv("NOISE_CONFIG_JSON", string(data))

	path := filepath.Join(t.TempDir(), "config.json")
	wrote, err := writeConfigFromEnv(path)
	if err != nil {
		t.Fatalf("writeConfigFromEnv: %v", err)
	}
	if !wrote {
		t.Fatalf("expected config to be written")
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var decoded config.Config
	if err := json.Unmarshal(contents, &decoded); err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if decoded.Noise.Category != "simplex-value" {
		t.Fatalf("unexpected category: %q", decoded.Noise.Category)
	}
}

func TestWriteConfigFromEnvYAML(t *testing.T) {
	cfg := config.Default()
	cfg.Noise.Category = "voronoi"
	cfg.Noise.VoronoiFunction = "f2-f1"
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	t.Setenv("NOISE_CONFIG_JSON", "")
	t.Setenv("NOISE_CONFIG_YAML_B64", base64.StdEncoding.EncodeToString(data))

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	wrote, err := writeConfigFromEnv(path)
	if err != nil {
		t.Fatalf("writeConfigFromEnv: %v", err)
	}
	if !wrote {
		t.Fatalf("expected config to be written")
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if loaded.Noise.VoronoiFunction != "f2-f1" {
		t.Fatalf("unexpected voronoi function: %q", loaded.Noise.VoronoiFunction)
	}
}

func TestWriteConfigFromEnvNoPayload(t *testing.T) {
	t.Setenv("NOISE_CONFIG_JSON", "")
	t.Setenv("NOISE_CONFIG_YAML_B64", "")

	wrote, err := writeConfigFromEnv(filepath.Join(t.TempDir(), "unused.json"))
	if err != nil {
		t.Fatalf("writeConfigFromEnv: %v", err)
	}
	if wrote {
		t.Fatalf("expected no config to be written")
	}
}

func TestWriteConfigFromEnvRejectsInvalidPayload(t *testing.T) {
	t.Setenv("NOISE_CONFIG_YAML_B64", "")
	t.Setenv("NOISE_CONFIG_JSON", `{"noise":{"category":"simplex","tiling":true}}`)

	path := filepath.Join(t.TempDir(), "config.json")
	if _, err := writeConfigFromEnv(path); err == nil || !strings.Contains(err.Error(), "validate env config") {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("invalid config should not be written")
	}

	if _, err := writeConfigFromEnv(""); err == nil {
		t.Fatalf("expected an error without a config path")
	}
}
