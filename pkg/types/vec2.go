// Package types 定义共享的基础类型
package types

import "math"

// Vec2 二维向量（世界坐标，单位：米）
type Vec2 struct {
	X, Y float64
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量相减
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 向量缩放
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len 向量长度
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq 向量长度的平方（避免开方，用于距离比较）
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo 到另一点的欧氏距离
func (v Vec2) DistanceTo(o Vec2) float64 {
	return v.Sub(o).Len()
}

// DistanceSqTo 到另一点距离的平方
func (v Vec2) DistanceSqTo(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// Normalize 返回单位向量
// 零向量返回零向量
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// FromAngle 根据角度（弧度）和长度构造向量
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}
