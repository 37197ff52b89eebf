// File: /models/gallery.go
package models

import (
	"time"
)

type GalleryPhoto struct {
	ID        string      `json:"id" gorm:"primaryKey;size:191"`
	UserID    string      `json:"user_id" gorm:"not null;index;size:191"`
	PhotoURL  string      `json:"photo_url" gorm:"not null;size:500"`
	Caption   string      `json:"caption" gorm:"size:500"`
	Category  string      `json:"category" gorm:"default:'general';size:50"`
	Tags      StringSlice `json:"tags" gorm:"type:json"`
	Location  string      `json:"location" gorm:"size:255"`
	IsPublic  bool        `json:"is_public"`
	Likes     int         `json:"likes" gorm:"default:0"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	User     User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	LikeRows []PhotoLike    `json:"-" gorm:"foreignKey:PhotoID"`
	Comments []PhotoComment `json:"-" gorm:"foreignKey:PhotoID"`
}

type PhotoLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PhotoID   string    `json:"photo_id" gorm:"not null;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;size:191"`
	CreatedAt time.Time `json:"created_at"`
}

type PhotoComment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	PhotoID   string    `json:"photo_id" gorm:"not null;index;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;size:191"`
	Comment   string    `json:"comment" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// GalleryPhotoWithCounts is a photo row joined with its author name and
// on-read like/comment counts.
type GalleryPhotoWithCounts struct {
	GalleryPhoto
	AuthorName   string `json:"author_name"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
}

// Pagination is the cursor metadata attached to paginated list responses.
type Pagination struct {
	Current int   `json:"current"`
	Total   int   `json:"total"`
	HasMore bool  `json:"hasMore"`
	Count   int64 `json:"count,omitempty"`
}
