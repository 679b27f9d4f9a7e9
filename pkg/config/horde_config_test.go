package config

import (
	"strings"
	"testing"
)

func TestParseHordeConfigDefaults(t *testing.T) {
	cfg, err := ParseHordeConfig([]byte("pool:\n  capacity: 50\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Pool.Capacity != 50 {
		t.Errorf("Pool.Capacity: got %d, want 50", cfg.Pool.Capacity)
	}

	// 未配置的字段保留默认值
	def := DefaultHordeConfig()
	if cfg.Pool.UpdatesPerTick != def.Pool.UpdatesPerTick {
		t.Errorf("Pool.UpdatesPerTick: got %d, want default %d", cfg.Pool.UpdatesPerTick, def.Pool.UpdatesPerTick)
	}
	if cfg.Combat.DeathDespawnDelay != def.Combat.DeathDespawnDelay {
		t.Errorf("Combat.DeathDespawnDelay: got %v, want default %v", cfg.Combat.DeathDespawnDelay, def.Combat.DeathDespawnDelay)
	}
	if cfg.Player.MaxHealth != def.Player.MaxHealth {
		t.Errorf("Player.MaxHealth: got %v, want default %v", cfg.Player.MaxHealth, def.Player.MaxHealth)
	}
	if cfg.Debug.SpawnLogging {
		t.Error("spawn logging should be off by default")
	}
}

func TestParseHordeConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{"zero capacity", "pool:\n  capacity: 0\n", "pool.capacity must be at least 1"},
		{"zero updates", "pool:\n  updatesPerTick: 0\n", "pool.updatesPerTick must be at least 1"},
		{"negative contact", "combat:\n  contactRadius: -1\n", "combat.contactRadius cannot be negative"},
		{"negative despawn", "combat:\n  deathDespawnDelay: -1\n", "combat.deathDespawnDelay cannot be negative"},
		{"zero health", "player:\n  maxHealth: 0\n", "player.maxHealth must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHordeConfig([]byte(tt.yamlContent))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.errContains)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %v", tt.errContains, err)
			}
		})
	}
}
