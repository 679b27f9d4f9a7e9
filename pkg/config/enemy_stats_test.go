package config

import (
	"strings"
	"testing"
)

func TestParseEnemyStats(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid",
			yamlContent: `
enemies:
  bat:
    health: 5
    damage: 3
    damageCooldown: 0.5
    moveSpeed: 2.5
    visual:
      color: "#6a4c93"
      radius: 0.3
  skeleton:
    health: 20
    damage: 8
    damageCooldown: 1
    moveSpeed: 1.4
`,
		},
		{
			name:        "empty",
			yamlContent: "enemies: {}\n",
			wantErr:     true,
			errContains: "at least one enemy type is required",
		},
		{
			name:        "zero health",
			yamlContent: "enemies:\n  bat:\n    health: 0\n",
			wantErr:     true,
			errContains: "health must be positive",
		},
		{
			name:        "negative speed",
			yamlContent: "enemies:\n  bat:\n    health: 1\n    moveSpeed: -1\n",
			wantErr:     true,
			errContains: "moveSpeed cannot be negative",
		},
		{
			name:        "negative cooldown",
			yamlContent: "enemies:\n  bat:\n    health: 1\n    damageCooldown: -0.1\n",
			wantErr:     true,
			errContains: "damageCooldown cannot be negative",
		},
		{
			name:        "null definition",
			yamlContent: "enemies:\n  bat:\n",
			wantErr:     true,
			errContains: "definition is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnemyStats([]byte(tt.yamlContent))
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
		})
	}
}

func TestEnemyStatsLookup(t *testing.T) {
	stats, err := ParseEnemyStats([]byte(`
enemies:
  skeleton:
    health: 20
    damage: 8
    damageCooldown: 1
    moveSpeed: 1.4
  bat:
    health: 5
    moveSpeed: 2.5
`))
	if err != nil {
		t.Fatalf("ParseEnemyStats error: %v", err)
	}

	bat, ok := stats.Get("bat")
	if !ok {
		t.Fatal("bat should exist")
	}
	if bat.ID != "bat" {
		t.Errorf("ID should be filled from the map key, got %q", bat.ID)
	}
	if bat.Health != 5 || bat.MoveSpeed != 2.5 {
		t.Errorf("unexpected bat stats %+v", bat)
	}

	if _, ok := stats.Get("dragon"); ok {
		t.Error("dragon should not exist")
	}

	ids := stats.IDs()
	if len(ids) != 2 || ids[0] != "bat" || ids[1] != "skeleton" {
		t.Errorf("IDs() = %v, want [bat skeleton]", ids)
	}

	var nilStats *EnemyStatsConfig
	if _, ok := nilStats.Get("bat"); ok {
		t.Error("nil config should not resolve anything")
	}
}
