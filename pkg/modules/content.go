package modules

import (
	"fmt"
	"log"
	"path"
	"sort"

	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/embedded"
)

// 默认数据路径（相对于 data/ 根目录，从嵌入资源读取）
const (
	DefaultHordeConfigPath = "data/horde.yaml"
	DefaultEnemyStatsPath  = "data/enemies.yaml"
	DefaultStagesGlob      = "data/stages/*.yaml"
)

// Content 一次运行需要的全部配置
type Content struct {
	Horde  *config.HordeConfig
	Stats  *config.EnemyStatsConfig
	Stages map[string]*config.StageConfig
}

// LoadContent 加载运行参数、敌人定义和全部关卡
// 关卡引用了未定义的敌人时返回错误
func LoadContent() (*Content, error) {
	horde, err := config.LoadHordeConfig(DefaultHordeConfigPath)
	if err != nil {
		return nil, err
	}

	stats, err := config.LoadEnemyStats(DefaultEnemyStatsPath)
	if err != nil {
		return nil, err
	}

	files, err := embedded.Glob(DefaultStagesGlob)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	stages := make(map[string]*config.StageConfig, len(files))
	for _, file := range files {
		stage, err := config.LoadStageConfig(file)
		if err != nil {
			return nil, err
		}
		if unknown := config.ValidateStageEnemies(stage, stats); len(unknown) > 0 {
			return nil, fmt.Errorf("stage %s (%s) references unknown enemies: %v", stage.ID, path.Base(file), unknown)
		}
		if _, dup := stages[stage.ID]; dup {
			return nil, fmt.Errorf("duplicate stage id %q in %s", stage.ID, file)
		}
		stages[stage.ID] = stage
	}

	if len(stages) == 0 {
		return nil, fmt.Errorf("no stages found under %s", DefaultStagesGlob)
	}

	log.Printf("[Content] Loaded %d enemy types, %d stages", len(stats.Enemies), len(stages))
	return &Content{Horde: horde, Stats: stats, Stages: stages}, nil
}

// StageIDs 按字母排序的关卡ID
func (c *Content) StageIDs() []string {
	ids := make([]string, 0, len(c.Stages))
	for id := range c.Stages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Stage 获取关卡，id 为空时返回排序后的第一个关卡
func (c *Content) Stage(id string) (*config.StageConfig, error) {
	if id == "" {
		id = c.StageIDs()[0]
	}
	stage, ok := c.Stages[id]
	if !ok {
		return nil, fmt.Errorf("unknown stage %q (available: %v)", id, c.StageIDs())
	}
	return stage, nil
}
