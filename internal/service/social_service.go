package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrSocialNotFound 在指定的社交链接不存在时返回
	ErrSocialNotFound = errors.New("social link not found")
	// ErrSocialInvalidInput 在输入数据不完整时返回
	ErrSocialInvalidInput = errors.New("invalid social link input")
)

// SocialService 负责维护社交与联系方式链接
// Active 控制前台展示，关闭后数据保留

type SocialService struct {
	db *gorm.DB
}

// NewSocialService 构造 SocialService
func NewSocialService(gdb *gorm.DB) *SocialService {
	return &SocialService{db: gdb}
}

// SocialInput 描述创建社交链接时可设置的字段
// Active 使用指针判断是否显式传入，缺省为 true
type SocialInput struct {
	Platform string
	URL      string
	Icon     string
	Active   *bool
}

// SocialPatch 描述部分更新时可修改的字段，全部可省略
type SocialPatch struct {
	Platform *string
	URL      *string
	Icon     *string
	Active   *bool
}

// List 返回社交链接集合，按主键升序
func (s *SocialService) List() ([]db.Social, error) {
	var items []db.Social
	if err := s.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	return items, nil
}

// Get 根据主键获取社交链接
func (s *SocialService) Get(id uint) (*db.Social, error) {
	var item db.Social
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocialNotFound
		}
		return nil, fmt.Errorf("get social link: %w", err)
	}
	return &item, nil
}

// Create 新建社交链接，未指定可见性时默认展示
func (s *SocialService) Create(input SocialInput) (*db.Social, error) {
	if err := validateSocialInput(input); err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	social := db.Social{
		Platform: strings.TrimSpace(input.Platform),
		URL:      strings.TrimSpace(input.URL),
		Icon:     strings.TrimSpace(input.Icon),
		Active:   active,
	}

	if err := s.db.Create(&social).Error; err != nil {
		return nil, fmt.Errorf("create social link: %w", err)
	}

	return &social, nil
}

// Update 按补丁更新指定社交链接，仅修改显式传入的字段
func (s *SocialService) Update(id uint, patch SocialPatch) (*db.Social, error) {
	if err := validateSocialPatch(patch); err != nil {
		return nil, err
	}

	var social db.Social
	if err := s.db.First(&social, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocialNotFound
		}
		return nil, fmt.Errorf("find social link: %w", err)
	}

	if patch.Platform != nil {
		social.Platform = strings.TrimSpace(*patch.Platform)
	}
	if patch.URL != nil {
		social.URL = strings.TrimSpace(*patch.URL)
	}
	if patch.Icon != nil {
		social.Icon = strings.TrimSpace(*patch.Icon)
	}
	if patch.Active != nil {
		social.Active = *patch.Active
	}

	if err := s.db.Save(&social).Error; err != nil {
		return nil, fmt.Errorf("update social link: %w", err)
	}

	return &social, nil
}

// Delete 删除指定社交链接，目标不存在时视为成功
func (s *SocialService) Delete(id uint) error {
	if err := s.db.Delete(&db.Social{}, id).Error; err != nil {
		return fmt.Errorf("delete social link: %w", err)
	}
	return nil
}

func validateSocialInput(input SocialInput) error {
	if strings.TrimSpace(input.Platform) == "" {
		return fmt.Errorf("%w: platform is required", ErrSocialInvalidInput)
	}
	if strings.TrimSpace(input.URL) == "" {
		return fmt.Errorf("%w: url is required", ErrSocialInvalidInput)
	}
	return nil
}

func validateSocialPatch(patch SocialPatch) error {
	if patch.Platform != nil && strings.TrimSpace(*patch.Platform) == "" {
		return fmt.Errorf("%w: platform must not be empty", ErrSocialInvalidInput)
	}
	if patch.URL != nil && strings.TrimSpace(*patch.URL) == "" {
		return fmt.Errorf("%w: url must not be empty", ErrSocialInvalidInput)
	}
	return nil
}
