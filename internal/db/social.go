package db

// Social 保存社交或联系方式链接
// Active 控制前台是否展示，关闭后数据仍保留
type Social struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Platform string `gorm:"size:50;not null" json:"platform"`
	URL      string `gorm:"size:255;not null" json:"url"`
	Icon     string `gorm:"size:50" json:"icon"`
	Active   bool   `json:"active"`
}
