package commands

import (
	"math"
	"testing"
	"time"

	"github.com/yacineMTB/dingcad-sub001/pkg/scene"
)

func loadTestScene(t *testing.T) map[string]any {
	t.Helper()
	s, err := scene.Load([]byte(`return { scene = cube{size = {2, 2, 2}} }`), "scene.lua")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return evalStats(s, 5*time.Millisecond)
}

func TestEvalStats(t *testing.T) {
	stats := loadTestScene(t)
	if got := stats["status"]; got != "NoError" {
		t.Errorf("status = %v", got)
	}
	if got := stats["volume"].(float64); math.Abs(got-8) > 1e-9 {
		t.Errorf("volume = %v, want 8", got)
	}
	if got := stats["triangles"]; got != 12 {
		t.Errorf("triangles = %v, want 12", got)
	}
	box := stats["boundingBox"].(map[string]any)
	if got := box["max"].([]any)[0].(float64); math.Abs(got-2) > 1e-9 {
		t.Errorf("boundingBox.max[0] = %v, want 2", got)
	}
}

func TestPrintQuery(t *testing.T) {
	stats := loadTestScene(t)
	if err := printQuery(".volume", stats); err != nil {
		t.Errorf("printQuery failed: %v", err)
	}
	if err := printQuery(".boundingBox.max", stats); err != nil {
		t.Errorf("printQuery failed: %v", err)
	}
	if err := printQuery("][", stats); err == nil {
		t.Error("expected parse error for malformed expression")
	}
}
