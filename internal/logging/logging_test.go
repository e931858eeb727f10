package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blastradius/internal/config"

	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.log")
	log, err := New(config.Logging{Level: "warn", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("quiet")
	log.Warn("loud", zap.Int("radius", -1))
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "quiet") {
		t.Error("info entries should be filtered at warn level")
	}
	if !strings.Contains(out, `"radius":-1`) {
		t.Errorf("missing structured field in %q", out)
	}
}

func TestNewRejectsBadSettings(t *testing.T) {
	cases := []config.Logging{
		{Level: "loudest", Format: "json"},
		{Level: "info", Format: "xml"},
	}
	for _, c := range cases {
		if _, err := New(c); err == nil {
			t.Errorf("New(%+v) should fail", c)
		}
	}
}
