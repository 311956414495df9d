package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrProfileNotFound 在个人信息尚未创建时返回
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileInvalidInput 在输入数据不完整时返回
	ErrProfileInvalidInput = errors.New("invalid profile input")
)

// ProfileService 负责维护前台展示的个人信息
// 全库只保留一行，更新即 upsert，与 handler 解耦

type ProfileService struct {
	db *gorm.DB
}

// NewProfileService 构造 ProfileService
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// ProfileInput 描述创建或更新个人信息时可设置的字段
type ProfileInput struct {
	Name      string
	Bio       string
	Tagline   string
	AvatarURL string
	ResumeURL string
}

// Get 返回唯一的个人信息行，不存在时返回 ErrProfileNotFound
func (s *ProfileService) Get() (*db.Profile, error) {
	var profile db.Profile
	if err := s.db.First(&profile, db.ProfileSingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Upsert 写入固定主键的单行个人信息
// 借助主键冲突子句完成原子的 create-if-absent，
// 并发调用也不会产生第二行
func (s *ProfileService) Upsert(input ProfileInput) (*db.Profile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	profile := db.Profile{
		ID:        db.ProfileSingletonID,
		Name:      strings.TrimSpace(input.Name),
		Bio:       input.Bio,
		Tagline:   strings.TrimSpace(input.Tagline),
		AvatarURL: strings.TrimSpace(input.AvatarURL),
		ResumeURL: strings.TrimSpace(input.ResumeURL),
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return &profile, nil
}

func validateProfileInput(input ProfileInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrProfileInvalidInput)
	}
	if strings.TrimSpace(input.Bio) == "" {
		return fmt.Errorf("%w: bio is required", ErrProfileInvalidInput)
	}
	if strings.TrimSpace(input.Tagline) == "" {
		return fmt.Errorf("%w: tagline is required", ErrProfileInvalidInput)
	}
	return nil
}
