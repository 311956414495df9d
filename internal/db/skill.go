package db

// Skill 表示一项技能，按分类在前台分组展示
// Category 为自由文本，常见取值 frontend/backend/tool/soft
type Skill struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Category    string `gorm:"size:50;not null" json:"category"`
	Proficiency int    `json:"proficiency"`
	Icon        string `gorm:"size:50" json:"icon"`
}
