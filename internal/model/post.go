package model

import "time"

// Post 博客文章
type Post struct {
	BaseModel
	Title         string     `gorm:"size:200;not null" json:"title"`
	Content       string     `gorm:"type:mediumtext;not null" json:"content"`
	Summary       *string    `gorm:"size:500" json:"summary"`
	CoverImage    *string    `gorm:"size:200" json:"coverImage"`
	Status        PostStatus `gorm:"size:20;not null;index" json:"status"`
	AllowComments bool       `gorm:"not null" json:"allowComments"`
	Featured      bool       `gorm:"not null;index" json:"featured"`
	Tags          *string    `gorm:"size:500" json:"tags"` // 逗号分隔
	AuthorID      *int64     `gorm:"index" json:"authorId"`
	ViewCount     int64      `gorm:"not null" json:"viewCount"`
	LikeCount     int64      `gorm:"not null" json:"likeCount"`
	CommentCount  int64      `gorm:"not null" json:"commentCount"`
	DisplayOrder  int        `gorm:"not null" json:"displayOrder"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

func (Post) TableName() string {
	return "posts"
}

// MarkPublished 首次进入发布状态时记录发布时间
func (p *Post) MarkPublished(now time.Time) {
	if p.Status == PostStatusPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}
