package model

import (
	"time"
)

type Post struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	UserID       uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	MediaURL     string    `gorm:"type:varchar(512);not null" json:"media_url"`
	ThumbnailURL *string   `gorm:"type:varchar(512)" json:"thumbnail_url"`
	MediaType    string    `gorm:"type:varchar(16);not null" json:"media_type"` // image | video
	Duration     *float64  `json:"duration"`                                    // seconds, video only
	Tags         []string  `gorm:"type:json;serializer:json" json:"tags"`
	Source       *string   `gorm:"type:varchar(512)" json:"source"`
	CreatedAt    time.Time `gorm:"index:idx_created_at" json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}
