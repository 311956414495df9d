package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrSkillNotFound 在指定的技能不存在时返回
	ErrSkillNotFound = errors.New("skill not found")
	// ErrSkillInvalidInput 在输入数据不完整时返回
	ErrSkillInvalidInput = errors.New("invalid skill input")
)

// defaultProficiency 是未显式给出熟练度时的默认值
const defaultProficiency = 100

// SkillService 负责维护技能条目
// 提供增删改查能力，与 handler 解耦

type SkillService struct {
	db *gorm.DB
}

// NewSkillService 构造 SkillService
func NewSkillService(gdb *gorm.DB) *SkillService {
	return &SkillService{db: gdb}
}

// SkillInput 描述创建技能时可设置的字段
// Proficiency 使用指针判断是否显式传入
type SkillInput struct {
	Name        string
	Category    string
	Proficiency *int
	Icon        string
}

// SkillPatch 描述部分更新时可修改的字段，全部可省略
type SkillPatch struct {
	Name        *string
	Category    *string
	Proficiency *int
	Icon        *string
}

// List 返回技能集合，按主键升序保证分组展示稳定
func (s *SkillService) List() ([]db.Skill, error) {
	var items []db.Skill
	if err := s.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return items, nil
}

// Get 根据主键获取技能
func (s *SkillService) Get(id uint) (*db.Skill, error) {
	var item db.Skill
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}
	return &item, nil
}

// Create 新建技能，未指定熟练度时默认 100
func (s *SkillService) Create(input SkillInput) (*db.Skill, error) {
	if err := validateSkillInput(input); err != nil {
		return nil, err
	}

	proficiency := defaultProficiency
	if input.Proficiency != nil {
		proficiency = *input.Proficiency
	}

	skill := db.Skill{
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Proficiency: proficiency,
		Icon:        strings.TrimSpace(input.Icon),
	}

	if err := s.db.Create(&skill).Error; err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}

	return &skill, nil
}

// Update 按补丁更新指定技能，仅修改显式传入的字段
func (s *SkillService) Update(id uint, patch SkillPatch) (*db.Skill, error) {
	if err := validateSkillPatch(patch); err != nil {
		return nil, err
	}

	var skill db.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}

	if patch.Name != nil {
		skill.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		skill.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Proficiency != nil {
		skill.Proficiency = *patch.Proficiency
	}
	if patch.Icon != nil {
		skill.Icon = strings.TrimSpace(*patch.Icon)
	}

	if err := s.db.Save(&skill).Error; err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}

	return &skill, nil
}

// Delete 删除指定技能，目标不存在时视为成功
func (s *SkillService) Delete(id uint) error {
	if err := s.db.Delete(&db.Skill{}, id).Error; err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}

func validateSkillInput(input SkillInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrSkillInvalidInput)
	}
	if strings.TrimSpace(input.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrSkillInvalidInput)
	}
	return nil
}

func validateSkillPatch(patch SkillPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrSkillInvalidInput)
	}
	if patch.Category != nil && strings.TrimSpace(*patch.Category) == "" {
		return fmt.Errorf("%w: category must not be empty", ErrSkillInvalidInput)
	}
	return nil
}
