package components

import (
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/types"
)

// EnemyComponent 敌人实例数据
// 由对象池预分配，运行期间从不销毁；"销毁"只是回收到空闲栈
// 注意：遵循 ECS 原则，组件仅存储数据，不包含方法
type EnemyComponent struct {
	// Definition 敌人类型定义（只读，共享）
	Definition *config.EnemyTypeDefinition

	// Health 当前生命值
	Health float64

	// Active 是否处于活动状态（在对象池活动列表中）
	Active bool

	// Position 当前位置（世界坐标）
	Position types.Vec2

	// Velocity 当前速度，由寻路调度器设置，移动系统每帧积分
	// 寻路是分帧节流的，两次寻路更新之间敌人保持上一次的速度
	Velocity types.Vec2

	// FacingLeft 朝向（渲染用）
	FacingLeft bool

	// HitCooldown 距离下一次可造成接触伤害的倒计时（秒）
	HitCooldown float64

	// Dying 是否已死亡、正在等待回收
	// 死亡的敌人仍在活动列表中，但不再寻路、不再造成伤害
	Dying bool

	// DespawnCountdown 死亡后回收倒计时（秒），<= 0 时回收
	DespawnCountdown float64
}
