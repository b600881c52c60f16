package model

import "gorm.io/datatypes"

// Project 科研项目
type Project struct {
	BaseModel
	Name         string          `gorm:"size:200;not null" json:"name"`
	Description  *string         `gorm:"size:2000" json:"description"`
	Status       ProjectStatus   `gorm:"size:20;not null;index" json:"status"`
	Category     ProjectCategory `gorm:"size:20;not null;index" json:"category"`
	IsPublic     bool            `gorm:"not null" json:"isPublic"`
	Featured     bool            `gorm:"not null" json:"featured"`
	Goals        *string         `gorm:"size:500" json:"goals"`
	TechStack    *string         `gorm:"size:1000" json:"techStack"`
	Achievements *string         `gorm:"size:500" json:"achievements"`
	Budget       float64         `gorm:"not null" json:"budget"`
	Progress     int             `gorm:"not null" json:"progress"`
	ImageURL     *string         `gorm:"column:image_url;size:200" json:"imageUrl"`
	GithubURL    *string         `gorm:"column:github_url;size:200" json:"githubUrl"`
	ProjectURL   *string         `gorm:"column:project_url;size:200" json:"projectUrl"`
	DisplayOrder int             `gorm:"not null" json:"displayOrder"`
	StartDate    *datatypes.Date `json:"startDate"`
	EndDate      *datatypes.Date `json:"endDate"`
}

func (Project) TableName() string {
	return "projects"
}

// ApplyProgress 设置进度，达到100时自动完成
func (p *Project) ApplyProgress(progress int) {
	p.Progress = progress
	if progress >= 100 {
		p.Status = ProjectStatusCompleted
	}
}
