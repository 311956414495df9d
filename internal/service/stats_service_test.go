package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/folio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupStatsServiceTestDB(t *testing.T) func() {
	t.Helper()
	dsn := fmt.Sprintf("file:stats-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Skill{}, &db.Project{}, &db.Social{}, &db.SiteVisit{}); err != nil {
		t.Fatalf("failed to migrate stats models: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestStatsServiceRecordVisitDedupsSameDay(t *testing.T) {
	cleanup := setupStatsServiceTestDB(t)
	defer cleanup()

	svc := NewStatsService(db.DB)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	if err := svc.RecordVisit("visitor-a", now); err != nil {
		t.Fatalf("record visit failed: %v", err)
	}
	// 同一访客同一天重复访问不再计数
	if err := svc.RecordVisit("visitor-a", now.Add(2*time.Hour)); err != nil {
		t.Fatalf("repeat visit failed: %v", err)
	}
	// 次日访问重新计数
	if err := svc.RecordVisit("visitor-a", now.Add(24*time.Hour)); err != nil {
		t.Fatalf("next-day visit failed: %v", err)
	}
	if err := svc.RecordVisit("visitor-b", now); err != nil {
		t.Fatalf("second visitor failed: %v", err)
	}

	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.VisitCount != 3 {
		t.Fatalf("expected 3 deduped visits, got %d", overview.VisitCount)
	}
}

func TestStatsServiceOverviewCounts(t *testing.T) {
	cleanup := setupStatsServiceTestDB(t)
	defer cleanup()

	if err := db.DB.Create(&db.Skill{Name: "Go", Category: "backend", Proficiency: 100}).Error; err != nil {
		t.Fatalf("seed skill failed: %v", err)
	}
	if err := db.DB.Create(&db.Project{Title: "Blog", Description: "desc"}).Error; err != nil {
		t.Fatalf("seed project failed: %v", err)
	}

	svc := NewStatsService(db.DB)
	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.SkillCount != 1 || overview.ProjectCount != 1 || overview.SocialCount != 0 {
		t.Fatalf("unexpected overview: %+v", overview)
	}
}

func TestStatsServiceRecordVisitRejectsEmptyVisitor(t *testing.T) {
	cleanup := setupStatsServiceTestDB(t)
	defer cleanup()

	svc := NewStatsService(db.DB)
	if err := svc.RecordVisit("", time.Now()); err == nil {
		t.Fatalf("expected error for empty visitor id")
	}
}
