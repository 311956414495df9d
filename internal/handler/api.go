package handler

import (
	"github.com/folio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	profiles *service.ProfileService
	skills   *service.SkillService
	projects *service.ProjectService
	socials  *service.SocialService
	stats    *service.StatsService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB) *API {
	return &API{
		db:       db,
		profiles: service.NewProfileService(db),
		skills:   service.NewSkillService(db),
		projects: service.NewProjectService(db),
		socials:  service.NewSocialService(db),
		stats:    service.NewStatsService(db),
	}
}

// DB exposes the underlying gorm instance for test seeding.
func (a *API) DB() *gorm.DB {
	return a.db
}
