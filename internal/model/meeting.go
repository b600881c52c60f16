package model

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// Meeting 组会记录
type Meeting struct {
	BaseModel
	Title        string        `gorm:"size:200;not null" json:"title"`
	Description  *string       `gorm:"type:text" json:"description"`
	MeetingDate  time.Time     `gorm:"not null;index" json:"meetingDate"`
	Location     *string       `gorm:"size:200" json:"location"`
	Type         MeetingType   `gorm:"size:20;not null;index" json:"type"`
	Status       MeetingStatus `gorm:"size:20;not null;index" json:"status"`
	Attendees    string        `gorm:"type:text" json:"attendees"` // 逗号分隔
	Absentees    string        `gorm:"type:text" json:"absentees"` // 逗号分隔
	Minutes      *string       `gorm:"type:text" json:"minutes"`
	Conclusion   *string       `gorm:"type:text" json:"conclusion"`
	ActionItems  *string       `gorm:"type:text" json:"actionItems"`
	Tags         *string       `gorm:"size:500" json:"tags"`
	DisplayOrder int           `gorm:"not null" json:"displayOrder"`
	CreatedBy    int64         `gorm:"not null" json:"createdBy"`
}

func (Meeting) TableName() string {
	return "meetings"
}

// JoinNames 逗号拼接名单，名字中的逗号不做转义
func JoinNames(names []string) string {
	return strings.Join(names, ",")
}

// SplitNames 按逗号拆分名单，名字原样保留不去空白；空白串返回空列表，末尾的空段丢弃
func SplitNames(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return []string{}
	}
	names := strings.Split(joined, ",")
	return lo.DropRightWhile(names, func(s string) bool {
		return s == ""
	})
}
