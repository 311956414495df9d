package db

// SiteVisit 记录前台访问，按访客与日期去重
// VisitorID 来自匿名 cookie，Day 格式为 2006-01-02
type SiteVisit struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	VisitorID string `gorm:"size:64;not null;uniqueIndex:idx_site_visits_visitor_day" json:"visitorId"`
	Day       string `gorm:"size:10;not null;uniqueIndex:idx_site_visits_visitor_day" json:"day"`
}
