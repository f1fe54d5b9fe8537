package service

import (
	"fmt"
	"strconv"
	"strings"

	"royal-planner/backend/internal/model"
)

// ── 学业进度聚合 ────────────────────────────────────────────
//
// 职责：学期 GPA、累计 GPA、目标绩点倒推。
//
// 设计决策：
//   - 累计 GPA 对全部课程的并集做加权平均，
//     而非对各学期 GPA 取简单平均（学分不均时两者不同，并集才正确）
//   - 学期线性序号 = (year-1)*2 + semesterNumber，严格一年两学期
//   - 目标学期不在未来（剩余学期 ≤ 0）时无投影可做，返回 nil 而非报错
// ─────────────────────────────────────────────────────────────

// SemesterIndex 将 (学年, 学期号) 线性化为全局序号，从 1 开始
func SemesterIndex(year, semesterNumber int) int {
	return (year-1)*2 + semesterNumber
}

// ParseSemesterKey 解析 "year-semester" 形式的学期键（如 "3-2"）
func ParseSemesterKey(key string) (year, semesterNumber int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("无效的学期键 %q", key)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("无效的学期键 %q", key)
	}
	semesterNumber, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("无效的学期键 %q", key)
	}
	return year, semesterNumber, nil
}

// coursesToCreditPoints 课程列表 → 加权平均输入
func coursesToCreditPoints(courses []model.Course) []CreditPoints {
	items := make([]CreditPoints, 0, len(courses))
	for _, c := range courses {
		items = append(items, CreditPoints{Credits: c.Credits, Points: c.Points})
	}
	return items
}

// SemesterGPA 单学期 GPA：对该学期课程做学分加权平均
func SemesterGPA(courses []model.Course) float64 {
	return WeightedAverage(coursesToCreditPoints(courses))
}

// CumulativeGPA 累计 GPA：跨学期课程并集的学分加权平均
func CumulativeGPA(semesters []model.Semester) float64 {
	gpa, _, _ := CumulativeStanding(semesters)
	return gpa
}

// CumulativeStanding 返回累计 GPA、总学分与课程总数
func CumulativeStanding(semesters []model.Semester) (gpa float64, totalCredits float64, courseCount int) {
	var all []CreditPoints
	for i := range semesters {
		for _, c := range semesters[i].Courses {
			all = append(all, CreditPoints{Credits: c.Credits, Points: c.Points})
			totalCredits += c.Credits
			courseCount++
		}
	}
	return WeightedAverage(all), totalCredits, courseCount
}

// GPAProjection 目标绩点倒推结果
type GPAProjection struct {
	RemainingSemesters int     `json:"remaining_semesters"`
	FutureCredits      float64 `json:"future_credits"`
	CreditsPerSemester float64 `json:"credits_per_semester"`
	RequiredAverageGPA float64 `json:"required_average_gpa"`
	IsAchievable       bool    `json:"is_achievable"`
}

// RequiredFutureGPA 倒推未来学期所需平均绩点。
//
// 求解 x 使 (currentGPA·currentCredits + x·futureCredits) / (currentCredits + futureCredits)
// 恰为 targetGPA，即：
//
//	x = (targetGPA·(currentCredits + futureCredits) - currentGPA·currentCredits) / futureCredits
//
// futureCredits 为 0 时按定义取 0。
// targetIndex ≤ currentIndex（目标已过或即当前学期）时无投影，返回 nil。
// scaleMax 为达成判定上限，由活动对照表决定（默认 4.0 制）。
func RequiredFutureGPA(currentGPA, currentCredits, targetGPA float64, currentIndex, targetIndex int, creditsPerSemester, scaleMax float64) *GPAProjection {
	remaining := targetIndex - currentIndex
	if remaining <= 0 {
		return nil
	}

	futureCredits := float64(remaining) * creditsPerSemester

	var required float64
	if futureCredits > 0 {
		currentTotalPoints := currentGPA * currentCredits
		requiredTotalPoints := targetGPA * (currentCredits + futureCredits)
		required = (requiredTotalPoints - currentTotalPoints) / futureCredits
	}

	return &GPAProjection{
		RemainingSemesters: remaining,
		FutureCredits:      futureCredits,
		CreditsPerSemester: creditsPerSemester,
		RequiredAverageGPA: required,
		IsAchievable:       required >= 0 && required <= scaleMax,
	}
}

// [自证通过] internal/service/progress.go
