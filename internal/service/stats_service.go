package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsService 负责处理前台访问相关的简单统计。
type StatsService struct {
	db *gorm.DB
}

// NewStatsService 创建 StatsService。
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{db: gdb}
}

// SiteOverview 汇总后台面板展示的各项计数。
type SiteOverview struct {
	SkillCount   int64 `json:"skillCount"`
	ProjectCount int64 `json:"projectCount"`
	SocialCount  int64 `json:"socialCount"`
	VisitCount   int64 `json:"visitCount"`
}

// RecordVisit 记录访客当日的一次访问，同一访客同一天只计一次。
func (s *StatsService) RecordVisit(visitorID string, now time.Time) error {
	if visitorID == "" {
		return errors.New("invalid visitor id")
	}

	visit := db.SiteVisit{
		VisitorID: visitorID,
		Day:       now.UTC().Format("2006-01-02"),
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visitor_id"}, {Name: "day"}},
		DoNothing: true,
	}).Create(&visit).Error; err != nil {
		return fmt.Errorf("record visit: %w", err)
	}

	return nil
}

// Overview 返回各集合的行数与累计访问次数。
func (s *StatsService) Overview() (SiteOverview, error) {
	var overview SiteOverview

	counts := []struct {
		model any
		dst   *int64
	}{
		{&db.Skill{}, &overview.SkillCount},
		{&db.Project{}, &overview.ProjectCount},
		{&db.Social{}, &overview.SocialCount},
		{&db.SiteVisit{}, &overview.VisitCount},
	}

	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dst).Error; err != nil {
			return SiteOverview{}, fmt.Errorf("count overview: %w", err)
		}
	}

	return overview, nil
}
