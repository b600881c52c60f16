package model

// User 后台用户，仅用于作者查询与管理员校验
type User struct {
	BaseModel
	Username  string     `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string     `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	FullName  *string    `gorm:"size:100" json:"fullName"`
	AvatarURL *string    `gorm:"size:200" json:"avatarUrl"`
	Role      UserRole   `gorm:"size:20;not null" json:"role"`
	Status    UserStatus `gorm:"size:20;not null" json:"status"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName 优先使用全名
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}
