package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Records 跨局累计数据与最佳纪录
type Records struct {
	// 累计数据
	TotalRuns         int     `yaml:"totalRuns"`
	TotalKills        int     `yaml:"totalKills"`
	TotalDamage       float64 `yaml:"totalDamage"`
	TotalTimeSurvived float64 `yaml:"totalTimeSurvived"`

	// 单局最佳
	MaxKills        int     `yaml:"maxKills"`
	MaxDamage       float64 `yaml:"maxDamage"`
	MaxTimeSurvived float64 `yaml:"maxTimeSurvived"`

	// 通关过的关卡ID（存活到关卡结束）
	ClearedStages []string `yaml:"clearedStages"`
}

// RecordsManager 纪录管理器
// 负责纪录的加载、更新和保存
type RecordsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	records      *Records
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "lifetime"
)

// NewRecordsManager 创建纪录管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存纪录）
//
// 加载失败不是致命错误，会使用空纪录并输出警告
func NewRecordsManager(gdataManager *gdata.Manager) *RecordsManager {
	rm := &RecordsManager{
		gdataManager: gdataManager,
		records:      &Records{},
	}

	if err := rm.Load(); err != nil {
		log.Printf("[RecordsManager] Warning: Failed to load records: %v (starting fresh)", err)
	}

	return rm
}

// Load 从 gdata 加载纪录
// gdataManager 为 nil 或尚无存档时使用空纪录
func (rm *RecordsManager) Load() error {
	if rm.gdataManager == nil {
		rm.records = &Records{}
		return nil
	}

	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		rm.records = &Records{}
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		rm.records = &Records{}
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded Records
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		rm.records = &Records{}
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}

	rm.records = &loaded
	log.Printf("[RecordsManager] Records loaded: runs=%d, kills=%d", loaded.TotalRuns, loaded.TotalKills)
	return nil
}

// Save 保存纪录到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (rm *RecordsManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	log.Printf("[RecordsManager] Records saved successfully")
	return nil
}

// Records 获取当前纪录
func (rm *RecordsManager) Records() *Records {
	return rm.records
}

// ApplyRun 把一局的统计合并进纪录
// 返回本局刷新的最佳纪录名称列表
// 注意：仅修改内存中的纪录，需调用 Save() 方法持久化
func (rm *RecordsManager) ApplyRun(stats *RunStats) []string {
	r := rm.records
	var improved []string

	r.TotalRuns++
	r.TotalKills += stats.Kills
	r.TotalDamage += stats.TotalDamage
	r.TotalTimeSurvived += stats.TimeSurvived

	if stats.Kills > r.MaxKills {
		r.MaxKills = stats.Kills
		improved = append(improved, "kills")
	}
	if stats.TotalDamage > r.MaxDamage {
		r.MaxDamage = stats.TotalDamage
		improved = append(improved, "damage")
	}
	if stats.TimeSurvived > r.MaxTimeSurvived {
		r.MaxTimeSurvived = stats.TimeSurvived
		improved = append(improved, "time")
	}

	if stats.Survived && stats.StageID != "" && !rm.IsStageCleared(stats.StageID) {
		r.ClearedStages = append(r.ClearedStages, stats.StageID)
	}

	return improved
}

// IsStageCleared 关卡是否已通关
func (rm *RecordsManager) IsStageCleared(stageID string) bool {
	for _, id := range rm.records.ClearedStages {
		if id == stageID {
			return true
		}
	}
	return false
}
