package model

import "time"

// ── 事件类型 ──

const (
	EventTypeClass      = "class"
	EventTypeAssignment = "assignment"
	EventTypeDeadline   = "deadline"
	EventTypeQuiz       = "quiz"
	EventTypeExam       = "exam"
	EventTypeStudy      = "study"
)

// PlannerEvent 日程事件表 — 对应 planner_events
//
// is_recurring 为 true 时本行是模板：date 不参与排期，
// recurring_days（0=周日 … 6=周六）与 time 决定每周落点，
// 由展开器在有限前瞻窗口内合成具体日期的出现实例。
type PlannerEvent struct {
	EventID       string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	UserID        string      `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title         string      `gorm:"type:varchar(200);not null"                     json:"title"`
	Description   string      `gorm:"type:text"                                      json:"description,omitempty"`
	Date          time.Time   `gorm:"type:date;not null"                             json:"date"`
	Type          string      `gorm:"type:varchar(20);not null"                      json:"type"` // class | assignment | deadline | quiz | exam | study
	Time          string      `gorm:"type:varchar(5)"                                json:"time,omitempty"` // "14:30"
	Priority      string      `gorm:"type:varchar(10);not null;default:'medium'"     json:"priority"`       // low | medium | high
	Reminders     StringArray `gorm:"type:text[]"                                    json:"reminders,omitempty"` // 提前量："2" / "24" / "1w"
	IsRecurring   bool        `gorm:"not null;default:false"                         json:"is_recurring"`
	RecurringDays IntArray    `gorm:"type:int[]"                                     json:"recurring_days,omitempty"`
	CourseCode    string      `gorm:"type:varchar(50)"                               json:"course_code,omitempty"`
	Location      string      `gorm:"type:varchar(200)"                              json:"location,omitempty"`
	BaseModel
}

// TableName 指定表名
func (PlannerEvent) TableName() string { return "planner_events" }

// [自证通过] internal/model/planner_event.go
