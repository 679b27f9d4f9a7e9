package config

import (
	"fmt"

	"github.com/gonewx/horde/pkg/embedded"
	"github.com/gonewx/horde/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultSpawnRadius 默认刷怪环半径（米）
const DefaultSpawnRadius = 15.0

// StageConfig 关卡配置数据结构
// 定义了关卡的基本信息和逐分钟的刷怪时间线
type StageConfig struct {
	ID          string             `yaml:"id"`          // 关卡ID，如 "forest"
	Name        string             `yaml:"name"`        // 关卡名称
	SpawnRadius float64            `yaml:"spawnRadius"` // 刷怪环半径（米），默认 15
	Minutes     []MinuteWaveConfig `yaml:"minutes"`     // 每分钟一项，下标即分钟数
}

// MinuteWaveConfig 单分钟的刷怪配置
type MinuteWaveConfig struct {
	RegularSpawns []RegularSpawnRule `yaml:"regularSpawns"` // 常规刷怪规则（按配置顺序处理）
	EventSpawns   []EventSpawnRule   `yaml:"eventSpawns"`   // 事件刷怪规则
}

// RegularSpawnRule 常规刷怪规则
// 本分钟内随机生成 [MinSpawns, MaxSpawns] 个敌人，间隔自适应
type RegularSpawnRule struct {
	Enemy     string `yaml:"enemy"`     // 敌人类型ID
	MinSpawns int    `yaml:"minSpawns"` // 本分钟最少生成数
	MaxSpawns int    `yaml:"maxSpawns"` // 本分钟最多生成数
}

// EventSpawnRule 事件刷怪规则
// 本分钟内随机触发 [MinEvents, MaxEvents] 次，每次一次性生成 BurstSize 个敌人
type EventSpawnRule struct {
	Enemy     string             `yaml:"enemy"`     // 敌人类型ID
	Pattern   types.SpawnPattern `yaml:"pattern"`   // 阵型标签，默认 "circle"
	BurstSize int                `yaml:"burstSize"` // 每次事件生成数量
	MinEvents int                `yaml:"minEvents"` // 本分钟最少事件次数
	MaxEvents int                `yaml:"maxEvents"` // 本分钟最多事件次数
}

// DurationMinutes 返回关卡时长（分钟），等于时间线长度
func (s *StageConfig) DurationMinutes() int {
	if s == nil {
		return 0
	}
	return len(s.Minutes)
}

// Minute 获取指定分钟的刷怪配置
// 分钟数为负或超出时间线时返回 nil 和 false
func (s *StageConfig) Minute(minute int) (*MinuteWaveConfig, bool) {
	if s == nil || minute < 0 || minute >= len(s.Minutes) {
		return nil, false
	}
	return &s.Minutes[minute], true
}

// LoadStageConfig 从YAML文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（"data/" 开头时从嵌入资源读取）
//
// 返回：
//
//	*StageConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadStageConfig(filepath string) (*StageConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage config file %s: %w", filepath, err)
	}

	stage, err := ParseStageConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return stage, nil
}

// ParseStageConfig 从 YAML 数据解析关卡配置
func ParseStageConfig(data []byte) (*StageConfig, error) {
	var stage StageConfig
	if err := yaml.Unmarshal(data, &stage); err != nil {
		return nil, fmt.Errorf("failed to parse stage config YAML: %w", err)
	}

	// 应用默认值
	applyStageDefaults(&stage)

	// 验证必填字段
	if err := validateStageConfig(&stage); err != nil {
		return nil, fmt.Errorf("invalid stage config: %w", err)
	}

	return &stage, nil
}

// applyStageDefaults 为 StageConfig 中缺失的可选字段设置默认值
func applyStageDefaults(stage *StageConfig) {
	if stage.SpawnRadius == 0 {
		stage.SpawnRadius = DefaultSpawnRadius
	}

	for m := range stage.Minutes {
		events := stage.Minutes[m].EventSpawns
		for i := range events {
			if events[i].Pattern == "" {
				events[i].Pattern = types.SpawnPatternCircle
			}
		}
	}
}

// validateStageConfig 验证关卡配置的完整性和合法性
func validateStageConfig(stage *StageConfig) error {
	if stage.ID == "" {
		return fmt.Errorf("stage ID is required")
	}

	if stage.SpawnRadius < 0 {
		return fmt.Errorf("spawnRadius cannot be negative, got %v", stage.SpawnRadius)
	}

	if len(stage.Minutes) == 0 {
		return fmt.Errorf("at least one minute wave is required")
	}

	for m, wave := range stage.Minutes {
		for i, rule := range wave.RegularSpawns {
			if rule.Enemy == "" {
				return fmt.Errorf("minute %d, regular spawn %d: enemy is required", m, i)
			}
			if rule.MinSpawns < 0 {
				return fmt.Errorf("minute %d, regular spawn %d: minSpawns cannot be negative, got %d", m, i, rule.MinSpawns)
			}
			if rule.MaxSpawns < rule.MinSpawns {
				return fmt.Errorf("minute %d, regular spawn %d: maxSpawns (%d) must be >= minSpawns (%d)", m, i, rule.MaxSpawns, rule.MinSpawns)
			}
		}

		for i, rule := range wave.EventSpawns {
			if rule.Enemy == "" {
				return fmt.Errorf("minute %d, event spawn %d: enemy is required", m, i)
			}
			if !rule.Pattern.IsValid() {
				return fmt.Errorf("minute %d, event spawn %d: pattern must be one of: circle, rectangle, got %q", m, i, rule.Pattern)
			}
			if rule.BurstSize < 1 {
				return fmt.Errorf("minute %d, event spawn %d: burstSize must be at least 1, got %d", m, i, rule.BurstSize)
			}
			if rule.MinEvents < 0 {
				return fmt.Errorf("minute %d, event spawn %d: minEvents cannot be negative, got %d", m, i, rule.MinEvents)
			}
			if rule.MaxEvents < rule.MinEvents {
				return fmt.Errorf("minute %d, event spawn %d: maxEvents (%d) must be >= minEvents (%d)", m, i, rule.MaxEvents, rule.MinEvents)
			}
		}
	}

	return nil
}

// ValidateStageEnemies 检查关卡引用的敌人类型是否都存在于属性库中
// 返回所有未知的敌人ID（去重，按出现顺序）
func ValidateStageEnemies(stage *StageConfig, stats *EnemyStatsConfig) []string {
	var unknown []string
	seen := make(map[string]bool)

	check := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		if _, ok := stats.Get(id); !ok {
			unknown = append(unknown, id)
		}
	}

	for _, wave := range stage.Minutes {
		for _, rule := range wave.RegularSpawns {
			check(rule.Enemy)
		}
		for _, rule := range wave.EventSpawns {
			check(rule.Enemy)
		}
	}
	return unknown
}
