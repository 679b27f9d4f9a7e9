package config

import (
	"fmt"
	"sort"

	"github.com/gonewx/horde/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnemyVisual 敌人外观覆盖（渲染层使用，核心逻辑不读取）
type EnemyVisual struct {
	Color  string  `yaml:"color"`  // 十六进制颜色，如 "#7fbf3f"
	Radius float64 `yaml:"radius"` // 绘制半径（米）
}

// EnemyTypeDefinition 单个敌人类型的静态属性
// 加载后只读，所有同类型敌人实例共享同一份定义
type EnemyTypeDefinition struct {
	ID             string      `yaml:"-"`              // 敌人ID，取自配置映射的键
	Health         float64     `yaml:"health"`         // 生命值
	Damage         float64     `yaml:"damage"`         // 接触伤害
	DamageCooldown float64     `yaml:"damageCooldown"` // 两次接触伤害的最小间隔（秒）
	MoveSpeed      float64     `yaml:"moveSpeed"`      // 移动速度（米/秒）
	Visual         EnemyVisual `yaml:"visual"`         // 外观覆盖
}

// EnemyStatsConfig 敌人属性配置文件结构
type EnemyStatsConfig struct {
	Enemies map[string]*EnemyTypeDefinition `yaml:"enemies"` // 敌人ID -> 属性
}

// LoadEnemyStats 从 YAML 文件加载敌人属性配置
// 参数：
//
//	filepath - 配置文件路径（"data/" 开头时从嵌入资源读取）
//
// 返回：
//
//	*EnemyStatsConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadEnemyStats(filepath string) (*EnemyStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy stats file %s: %w", filepath, err)
	}

	config, err := ParseEnemyStats(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return config, nil
}

// ParseEnemyStats 从 YAML 数据解析敌人属性配置
func ParseEnemyStats(data []byte) (*EnemyStatsConfig, error) {
	var config EnemyStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse enemy stats YAML: %w", err)
	}

	// 把映射键回填为定义 ID
	for id, def := range config.Enemies {
		if def != nil {
			def.ID = id
		}
	}

	if err := validateEnemyStats(&config); err != nil {
		return nil, fmt.Errorf("invalid enemy stats: %w", err)
	}

	return &config, nil
}

// validateEnemyStats 验证敌人属性配置的完整性和合法性
func validateEnemyStats(config *EnemyStatsConfig) error {
	if len(config.Enemies) == 0 {
		return fmt.Errorf("at least one enemy type is required")
	}

	for id, def := range config.Enemies {
		if id == "" {
			return fmt.Errorf("enemy id cannot be empty")
		}
		if def == nil {
			return fmt.Errorf("enemy %s: definition is empty", id)
		}
		if def.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %v", id, def.Health)
		}
		if def.Damage < 0 {
			return fmt.Errorf("enemy %s: damage cannot be negative, got %v", id, def.Damage)
		}
		if def.DamageCooldown < 0 {
			return fmt.Errorf("enemy %s: damageCooldown cannot be negative, got %v", id, def.DamageCooldown)
		}
		if def.MoveSpeed < 0 {
			return fmt.Errorf("enemy %s: moveSpeed cannot be negative, got %v", id, def.MoveSpeed)
		}
	}

	return nil
}

// Get 获取指定敌人类型的定义
// 如果类型不存在，返回 nil 和 false
func (c *EnemyStatsConfig) Get(id string) (*EnemyTypeDefinition, bool) {
	if c == nil {
		return nil, false
	}
	def, ok := c.Enemies[id]
	return def, ok
}

// IDs 返回按字母排序的敌人ID列表
func (c *EnemyStatsConfig) IDs() []string {
	ids := make([]string, 0, len(c.Enemies))
	for id := range c.Enemies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
