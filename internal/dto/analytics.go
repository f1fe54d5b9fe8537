package dto

// ── 学业分析模块 DTO ──

// GPAHistoryPoint 学期 GPA 历史点
type GPAHistoryPoint struct {
	Semester string  `json:"semester"` // "year-semester"
	Label    string  `json:"label"`    // 如 "第3学年第2学期"
	GPA      float64 `json:"gpa"`
	Credits  float64 `json:"credits"`
}

// GPATrendResponse GPA 走势响应
type GPATrendResponse struct {
	History   []GPAHistoryPoint `json:"history"`
	Direction string            `json:"direction"` // up | down | flat
	Delta     float64           `json:"delta"`     // 最近两学期 GPA 差值
}

// CumulativeGPAResponse 累计 GPA 响应
type CumulativeGPAResponse struct {
	CumulativeGPA float64 `json:"cumulative_gpa"`
	TotalCredits  float64 `json:"total_credits"`
	CourseCount   int     `json:"course_count"`
}

// CourseAnalysisItem 单门课程表现
type CourseAnalysisItem struct {
	CourseID string  `json:"course_id"`
	Name     string  `json:"name"`
	Semester string  `json:"semester"`
	Credits  float64 `json:"credits"`
	Grade    string  `json:"grade"`
	Points   float64 `json:"points"`
}

// CourseAnalysisResponse 课程表现响应（最好/最差/全部）
type CourseAnalysisResponse struct {
	Best    []CourseAnalysisItem `json:"best"`
	Worst   []CourseAnalysisItem `json:"worst"`
	Courses []CourseAnalysisItem `json:"courses"`
}

// GradeDistributionResponse 成绩分布响应
type GradeDistributionResponse struct {
	Distribution map[string]int `json:"distribution"` // 成绩标签 → 课程数
	TotalCourses int            `json:"total_courses"`
}

// DeadlineClusterItem 截止扎堆项
type DeadlineClusterItem struct {
	Date     string   `json:"date"`
	Count    int      `json:"count"`
	Titles   []string `json:"titles"`
	Severity string   `json:"severity"`
}

// DeadlineClusteringResponse 截止扎堆检测响应
type DeadlineClusteringResponse struct {
	Clusters    []DeadlineClusterItem `json:"clusters"`
	WeeklyAlert bool                  `json:"weekly_alert"`
	WeeklyCount int                   `json:"weekly_count"`
}

// WorkloadWeekItem 周负载项（分类型计数供堆叠条形图使用）
type WorkloadWeekItem struct {
	WeekStart   string  `json:"week_start"`
	EventCount  int     `json:"event_count"`
	Assignments int     `json:"assignments"`
	Exams       int     `json:"exams"`
	Deadlines   int     `json:"deadlines"`
	Classes     int     `json:"classes"`
	Study       int     `json:"study"`
	Other       int     `json:"other"`
	TotalHours  float64 `json:"total_hours"`
	Level       string  `json:"level"`
}

// WorkloadWeeksResponse 周负载响应
type WorkloadWeeksResponse struct {
	Weeks []WorkloadWeekItem `json:"weeks"`
}

// WorkloadDistributionResponse 事件类型分布响应
type WorkloadDistributionResponse struct {
	ByType      map[string]int     `json:"by_type"`      // 类型 → 件数
	HoursByType map[string]float64 `json:"hours_by_type"` // 类型 → 估算小时
	TotalEvents int                `json:"total_events"`
}

// [自证通过] internal/dto/analytics.go
