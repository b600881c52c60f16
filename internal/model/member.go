package model

// Member 实验室成员
type Member struct {
	BaseModel
	StudentID         string        `gorm:"column:student_id;size:20;not null;uniqueIndex" json:"studentId"`
	Name              string        `gorm:"size:50;not null" json:"name"`
	Gender            *MemberGender `gorm:"size:10" json:"gender"`
	Grade             *string       `gorm:"size:20;index" json:"grade"`
	Major             *string       `gorm:"size:100" json:"major"`
	Role              MemberRole    `gorm:"size:30;not null;index" json:"role"`
	Email             *string       `gorm:"size:100" json:"email"`
	Phone             *string       `gorm:"size:20" json:"phone"`
	ResearchDirection *string       `gorm:"size:200" json:"researchDirection"`
	Bio               *string       `gorm:"size:500" json:"bio"`
	AvatarURL         *string       `gorm:"column:avatar_url;size:200" json:"avatarUrl"`
	Status            MemberStatus  `gorm:"size:20;not null;index" json:"status"`
	Featured          bool          `gorm:"not null" json:"featured"`
	DisplayOrder      int           `gorm:"not null" json:"displayOrder"`
	GithubURL         *string       `gorm:"column:github_url;size:200" json:"githubUrl"`
	LinkedinURL       *string       `gorm:"column:linkedin_url;size:200" json:"linkedinUrl"`
	PersonalWebsite   *string       `gorm:"size:200" json:"personalWebsite"`
}

func (Member) TableName() string {
	return "members"
}
