package config

import (
	"fmt"

	"github.com/gonewx/horde/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// HordeConfig 敌人管理器的运行参数
type HordeConfig struct {
	Pool   PoolConfig   `yaml:"pool"`
	Combat CombatConfig `yaml:"combat"`
	Player PlayerConfig `yaml:"player"`
	Debug  DebugConfig  `yaml:"debug"`
}

// PoolConfig 对象池与寻路调度参数
type PoolConfig struct {
	Capacity       int `yaml:"capacity"`       // 对象池容量（运行期间固定）
	UpdatesPerTick int `yaml:"updatesPerTick"` // 每帧最多更新寻路的敌人数量
}

// CombatConfig 战斗参数
type CombatConfig struct {
	ContactRadius     float64 `yaml:"contactRadius"`     // 接触判定半径（米）
	DeathDespawnDelay float64 `yaml:"deathDespawnDelay"` // 死亡后回收前的等待时间（秒，对应死亡动画时长）
}

// PlayerConfig 玩家参数（演示程序与模拟器使用）
type PlayerConfig struct {
	MaxHealth float64 `yaml:"maxHealth"`
	MoveSpeed float64 `yaml:"moveSpeed"`
}

// DebugConfig 调试选项
type DebugConfig struct {
	SpawnLogging bool `yaml:"spawnLogging"` // 每次刷怪输出一行日志
}

// DefaultHordeConfig 返回默认运行参数
func DefaultHordeConfig() *HordeConfig {
	return &HordeConfig{
		Pool: PoolConfig{
			Capacity:       300,
			UpdatesPerTick: 5,
		},
		Combat: CombatConfig{
			ContactRadius:     0.6,
			DeathDespawnDelay: 0.5,
		},
		Player: PlayerConfig{
			MaxHealth: 100,
			MoveSpeed: 5,
		},
	}
}

// LoadHordeConfig 从 YAML 文件加载运行参数
// 缺失的字段使用 DefaultHordeConfig() 中的默认值
func LoadHordeConfig(filepath string) (*HordeConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read horde config file %s: %w", filepath, err)
	}

	config, err := ParseHordeConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return config, nil
}

// ParseHordeConfig 从 YAML 数据解析运行参数
func ParseHordeConfig(data []byte) (*HordeConfig, error) {
	// 先填充默认值，YAML 中出现的字段会覆盖它们
	config := DefaultHordeConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse horde config YAML: %w", err)
	}

	if err := validateHordeConfig(config); err != nil {
		return nil, fmt.Errorf("invalid horde config: %w", err)
	}
	return config, nil
}

// validateHordeConfig 验证运行参数
func validateHordeConfig(config *HordeConfig) error {
	if config.Pool.Capacity < 1 {
		return fmt.Errorf("pool.capacity must be at least 1, got %d", config.Pool.Capacity)
	}
	if config.Pool.UpdatesPerTick < 1 {
		return fmt.Errorf("pool.updatesPerTick must be at least 1, got %d", config.Pool.UpdatesPerTick)
	}
	if config.Combat.ContactRadius < 0 {
		return fmt.Errorf("combat.contactRadius cannot be negative, got %v", config.Combat.ContactRadius)
	}
	if config.Combat.DeathDespawnDelay < 0 {
		return fmt.Errorf("combat.deathDespawnDelay cannot be negative, got %v", config.Combat.DeathDespawnDelay)
	}
	if config.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be positive, got %v", config.Player.MaxHealth)
	}
	if config.Player.MoveSpeed < 0 {
		return fmt.Errorf("player.moveSpeed cannot be negative, got %v", config.Player.MoveSpeed)
	}
	return nil
}
