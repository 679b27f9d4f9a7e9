package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/horde/pkg/types"
)

func TestLoadStageConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *StageConfig)
	}{
		{
			name: "valid stage",
			yamlContent: `
id: forest
name: Whispering Forest
spawnRadius: 12
minutes:
  - regularSpawns:
      - enemy: bat
        minSpawns: 20
        maxSpawns: 30
    eventSpawns:
      - enemy: skeleton
        pattern: rectangle
        burstSize: 8
        minEvents: 1
        maxEvents: 2
  - regularSpawns:
      - enemy: bat
        minSpawns: 40
        maxSpawns: 50
`,
			validate: func(t *testing.T, s *StageConfig) {
				if s.ID != "forest" {
					t.Errorf("expected id forest, got %q", s.ID)
				}
				if s.SpawnRadius != 12 {
					t.Errorf("expected spawnRadius 12, got %v", s.SpawnRadius)
				}
				if s.DurationMinutes() != 2 {
					t.Errorf("expected 2 minutes, got %d", s.DurationMinutes())
				}
				ev := s.Minutes[0].EventSpawns[0]
				if ev.BurstSize != 8 || ev.MinEvents != 1 || ev.MaxEvents != 2 {
					t.Errorf("unexpected event rule %+v", ev)
				}
				if ev.Pattern != types.SpawnPatternRectangle {
					t.Errorf("expected rectangle pattern, got %q", ev.Pattern)
				}
			},
		},
		{
			name: "defaults applied",
			yamlContent: `
id: crypt
minutes:
  - eventSpawns:
      - enemy: ghost
        burstSize: 4
        minEvents: 1
        maxEvents: 1
`,
			validate: func(t *testing.T, s *StageConfig) {
				if s.SpawnRadius != DefaultSpawnRadius {
					t.Errorf("expected default spawnRadius %v, got %v", DefaultSpawnRadius, s.SpawnRadius)
				}
				if p := s.Minutes[0].EventSpawns[0].Pattern; p != types.SpawnPatternCircle {
					t.Errorf("expected default circle pattern, got %q", p)
				}
			},
		},
		{
			name:        "missing id",
			yamlContent: "minutes:\n  - regularSpawns: []\n",
			wantErr:     true,
			errContains: "stage ID is required",
		},
		{
			name:        "empty timeline",
			yamlContent: "id: empty\n",
			wantErr:     true,
			errContains: "at least one minute wave is required",
		},
		{
			name: "max below min",
			yamlContent: `
id: broken
minutes:
  - regularSpawns:
      - enemy: bat
        minSpawns: 10
        maxSpawns: 5
`,
			wantErr:     true,
			errContains: "maxSpawns (5) must be >= minSpawns (10)",
		},
		{
			name: "zero burst",
			yamlContent: `
id: broken
minutes:
  - eventSpawns:
      - enemy: bat
        burstSize: 0
        minEvents: 1
        maxEvents: 1
`,
			wantErr:     true,
			errContains: "burstSize must be at least 1",
		},
		{
			name: "unknown pattern",
			yamlContent: `
id: broken
minutes:
  - eventSpawns:
      - enemy: bat
        pattern: spiral
        burstSize: 3
`,
			wantErr:     true,
			errContains: "pattern must be one of",
		},
		{
			name: "missing enemy",
			yamlContent: `
id: broken
minutes:
  - regularSpawns:
      - minSpawns: 1
        maxSpawns: 1
`,
			wantErr:     true,
			errContains: "enemy is required",
		},
		{
			name:        "invalid yaml",
			yamlContent: "id: [unterminated",
			wantErr:     true,
			errContains: "failed to parse stage config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "stage.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp file: %v", err)
			}

			stage, err := LoadStageConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, stage)
			}
		})
	}
}

func TestLoadStageConfigMissingFile(t *testing.T) {
	_, err := LoadStageConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read stage config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStageMinuteLookup(t *testing.T) {
	stage := &StageConfig{
		ID:      "three",
		Minutes: make([]MinuteWaveConfig, 3),
	}

	tests := []struct {
		minute int
		want   bool
	}{
		{-1, false},
		{0, true},
		{2, true},
		{3, false},
		{10, false},
	}

	for _, tt := range tests {
		_, ok := stage.Minute(tt.minute)
		if ok != tt.want {
			t.Errorf("Minute(%d) ok = %v, want %v", tt.minute, ok, tt.want)
		}
	}

	var nilStage *StageConfig
	if nilStage.DurationMinutes() != 0 {
		t.Error("nil stage should have zero duration")
	}
	if _, ok := nilStage.Minute(0); ok {
		t.Error("nil stage should have no minutes")
	}
}

func TestValidateStageEnemies(t *testing.T) {
	stats := &EnemyStatsConfig{Enemies: map[string]*EnemyTypeDefinition{
		"bat": {ID: "bat", Health: 5},
	}}
	stage := &StageConfig{
		ID: "mixed",
		Minutes: []MinuteWaveConfig{
			{
				RegularSpawns: []RegularSpawnRule{{Enemy: "bat"}, {Enemy: "ghoul"}},
				EventSpawns:   []EventSpawnRule{{Enemy: "ghoul"}, {Enemy: "wraith"}},
			},
		},
	}

	unknown := ValidateStageEnemies(stage, stats)
	if len(unknown) != 2 || unknown[0] != "ghoul" || unknown[1] != "wraith" {
		t.Errorf("unexpected unknown enemies: %v", unknown)
	}
}
