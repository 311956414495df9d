package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrProjectNotFound 在指定的项目不存在时返回
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectInvalidInput 在输入数据不完整时返回
	ErrProjectInvalidInput = errors.New("invalid project input")
)

// ProjectService 负责维护作品集条目
// 列表按 DisplayOrder 升序，与 handler 解耦

type ProjectService struct {
	db *gorm.DB
}

// NewProjectService 构造 ProjectService
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// ProjectInput 描述创建项目时可设置的字段
// DisplayOrder 使用指针判断是否显式传入
type ProjectInput struct {
	Title        string
	Description  string
	ImageURL     string
	ProjectURL   string
	RepoURL      string
	TechStack    []string
	DisplayOrder *int
}

// ProjectPatch 描述部分更新时可修改的字段，全部可省略
// TechStack 使用指向切片的指针区分"未传入"与"清空"
type ProjectPatch struct {
	Title        *string
	Description  *string
	ImageURL     *string
	ProjectURL   *string
	RepoURL      *string
	TechStack    *[]string
	DisplayOrder *int
}

// List 返回项目集合，按展示顺序升序，相同顺序按主键升序
func (s *ProjectService) List() ([]db.Project, error) {
	var items []db.Project
	if err := s.db.Order("display_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return items, nil
}

// Get 根据主键获取项目
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &item, nil
}

// Create 新建项目，未指定展示顺序时默认 0
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	order := 0
	if input.DisplayOrder != nil {
		order = *input.DisplayOrder
	}

	project := db.Project{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		ImageURL:     strings.TrimSpace(input.ImageURL),
		ProjectURL:   strings.TrimSpace(input.ProjectURL),
		RepoURL:      strings.TrimSpace(input.RepoURL),
		TechStack:    normalizeTechStack(input.TechStack),
		DisplayOrder: order,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return &project, nil
}

// Update 按补丁更新指定项目，仅修改显式传入的字段
func (s *ProjectService) Update(id uint, patch ProjectPatch) (*db.Project, error) {
	if err := validateProjectPatch(patch); err != nil {
		return nil, err
	}

	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if patch.Title != nil {
		project.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		project.ImageURL = strings.TrimSpace(*patch.ImageURL)
	}
	if patch.ProjectURL != nil {
		project.ProjectURL = strings.TrimSpace(*patch.ProjectURL)
	}
	if patch.RepoURL != nil {
		project.RepoURL = strings.TrimSpace(*patch.RepoURL)
	}
	if patch.TechStack != nil {
		project.TechStack = normalizeTechStack(*patch.TechStack)
	}
	if patch.DisplayOrder != nil {
		project.DisplayOrder = *patch.DisplayOrder
	}

	if err := s.db.Save(&project).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	return &project, nil
}

// Delete 删除指定项目，目标不存在时视为成功
func (s *ProjectService) Delete(id uint) error {
	if err := s.db.Delete(&db.Project{}, id).Error; err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// normalizeTechStack 去掉空白项并裁剪首尾空格，保持原有顺序
func normalizeTechStack(stack []string) []string {
	normalized := make([]string, 0, len(stack))
	for _, item := range stack {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

func validateProjectInput(input ProjectInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrProjectInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrProjectInvalidInput)
	}
	return nil
}

func validateProjectPatch(patch ProjectPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrProjectInvalidInput)
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return fmt.Errorf("%w: description must not be empty", ErrProjectInvalidInput)
	}
	return nil
}
