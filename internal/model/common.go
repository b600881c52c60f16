package model

import (
	"time"
)

type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// All 需要迁移的全部模型
func All() []interface{} {
	return []interface{}{
		&User{},
		&Post{},
		&Member{},
		&Project{},
		&Meeting{},
	}
}
