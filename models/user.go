// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
	IsGuest     bool    `gorm:"default:false" json:"is_guest"`
	IsBanned    bool    `gorm:"default:false" json:"is_banned"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Streaks         []Streak         `gorm:"foreignKey:UserID" json:"streaks,omitempty"`
	Activities      []Activity       `gorm:"foreignKey:UserID" json:"activities,omitempty"`
	UnlockedRewards []UnlockedReward `gorm:"foreignKey:UserID" json:"unlocked_rewards,omitempty"`
}

func (User) TableName() string {
	return "users"
}
