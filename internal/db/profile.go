package db

// ProfileSingletonID 是个人信息唯一一行的固定主键
// 通过主键唯一约束保证并发 upsert 也只会产生一行
const ProfileSingletonID uint = 1

// Profile 保存前台展示的个人信息，全库至多一行
type Profile struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Bio       string `gorm:"type:text;not null" json:"bio"`
	Tagline   string `gorm:"not null" json:"tagline"`
	AvatarURL string `gorm:"size:255" json:"avatarUrl"`
	ResumeURL string `gorm:"size:255" json:"resumeUrl"`

	// BioHTML 是公开接口附带的渲染结果，不落库
	BioHTML string `gorm:"-" json:"bioHtml,omitempty"`
}
