package contract

import (
	"fmt"
	"strings"

	"github.com/folio/internal/db"
)

// 响应体直接复用实体模型，保证存储层返回值天然满足契约
type (
	ProfileBody = db.Profile
	SkillBody   = db.Skill
	ProjectBody = db.Project
	SocialBody  = db.Social
)

// StatsBody 是后台面板统计接口的响应形状
type StatsBody struct {
	SkillCount   int64 `json:"skillCount"`
	ProjectCount int64 `json:"projectCount"`
	SocialCount  int64 `json:"socialCount"`
	VisitCount   int64 `json:"visitCount"`
}

// IconOptionBody 是图标选项接口的响应形状
type IconOptionBody struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ValidationError 携带具体出错字段，便于客户端就地修正
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field, value string) error {
	if isBlank(value) {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

func notBlank(field string, value *string) error {
	if value != nil && isBlank(*value) {
		return &ValidationError{Field: field, Message: "must not be empty"}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Credentials 是登录请求体
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate 校验登录请求
func (c Credentials) Validate() error {
	if err := required("username", c.Username); err != nil {
		return err
	}
	return required("password", c.Password)
}

// ProfileUpsert 是个人信息的写入请求体
// 语义为整行 upsert，必填字段每次都要给全
type ProfileUpsert struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Tagline   string `json:"tagline"`
	AvatarURL string `json:"avatarUrl"`
	ResumeURL string `json:"resumeUrl"`
}

// Validate 校验个人信息写入请求
func (p ProfileUpsert) Validate() error {
	if err := required("name", p.Name); err != nil {
		return err
	}
	if err := required("bio", p.Bio); err != nil {
		return err
	}
	return required("tagline", p.Tagline)
}

// SkillCreate 是技能创建请求体
type SkillCreate struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency *int   `json:"proficiency"`
	Icon        string `json:"icon"`
}

// Validate 校验技能创建请求
// 分类保持开放取值，仅要求非空
func (s SkillCreate) Validate() error {
	if err := required("name", s.Name); err != nil {
		return err
	}
	return required("category", s.Category)
}

// SkillPatch 是技能部分更新请求体，所有字段可省略
type SkillPatch struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Proficiency *int    `json:"proficiency"`
	Icon        *string `json:"icon"`
}

// Validate 对显式传入的字段执行与创建一致的规则
func (s SkillPatch) Validate() error {
	if err := notBlank("name", s.Name); err != nil {
		return err
	}
	return notBlank("category", s.Category)
}

// ProjectCreate 是项目创建请求体
type ProjectCreate struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	ProjectURL   string   `json:"projectUrl"`
	RepoURL      string   `json:"repoUrl"`
	TechStack    []string `json:"techStack"`
	DisplayOrder *int     `json:"displayOrder"`
}

// Validate 校验项目创建请求
func (p ProjectCreate) Validate() error {
	if err := required("title", p.Title); err != nil {
		return err
	}
	return required("description", p.Description)
}

// ProjectPatch 是项目部分更新请求体，所有字段可省略
type ProjectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"imageUrl"`
	ProjectURL   *string   `json:"projectUrl"`
	RepoURL      *string   `json:"repoUrl"`
	TechStack    *[]string `json:"techStack"`
	DisplayOrder *int      `json:"displayOrder"`
}

// Validate 对显式传入的字段执行与创建一致的规则
func (p ProjectPatch) Validate() error {
	if err := notBlank("title", p.Title); err != nil {
		return err
	}
	return notBlank("description", p.Description)
}

// SocialCreate 是社交链接创建请求体
type SocialCreate struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Active   *bool  `json:"active"`
}

// Validate 校验社交链接创建请求
func (s SocialCreate) Validate() error {
	if err := required("platform", s.Platform); err != nil {
		return err
	}
	return required("url", s.URL)
}

// SocialPatch 是社交链接部分更新请求体，所有字段可省略
type SocialPatch struct {
	Platform *string `json:"platform"`
	URL      *string `json:"url"`
	Icon     *string `json:"icon"`
	Active   *bool   `json:"active"`
}

// Validate 对显式传入的字段执行与创建一致的规则
func (s SocialPatch) Validate() error {
	if err := notBlank("platform", s.Platform); err != nil {
		return err
	}
	return notBlank("url", s.URL)
}
