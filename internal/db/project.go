package db

// Project 表示一个作品集条目
// TechStack 以 JSON 序列化保存，保持字符串顺序
// DisplayOrder 值越小越靠前，相同时按 ID 升序
type Project struct {
	ID           uint     `gorm:"primarykey" json:"id"`
	Title        string   `gorm:"size:200;not null" json:"title"`
	Description  string   `gorm:"type:text;not null" json:"description"`
	ImageURL     string   `gorm:"size:255" json:"imageUrl"`
	ProjectURL   string   `gorm:"size:255" json:"projectUrl"`
	RepoURL      string   `gorm:"size:255" json:"repoUrl"`
	TechStack    []string `gorm:"serializer:json" json:"techStack"`
	DisplayOrder int      `json:"displayOrder"`

	// DescriptionHTML 是公开接口附带的渲染结果，不落库
	DescriptionHTML string `gorm:"-" json:"descriptionHtml,omitempty"`
}
