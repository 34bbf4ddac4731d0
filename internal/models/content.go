package models

import (
	"encoding/json"
	"time"
)

// Content types accepted by the API.
const (
	ContentTypeImage   = "image"
	ContentTypeVideo   = "video"
	ContentTypeArticle = "article"
	ContentTypeAudio   = "audio"
	ContentTypeYoutube = "youtube"
	ContentTypeTwitter = "twitter"
)

var contentTypes = map[string]bool{
	ContentTypeImage:   true,
	ContentTypeVideo:   true,
	ContentTypeArticle: true,
	ContentTypeAudio:   true,
	ContentTypeYoutube: true,
	ContentTypeTwitter: true,
}

func IsValidContentType(t string) bool {
	return contentTypes[t]
}

type Content struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Link      string    `gorm:"not null;type:text" json:"link"`
	Type      string    `gorm:"not null;size:20" json:"type"`
	Title     string    `gorm:"not null;size:200" json:"title"`
	Tags      string    `gorm:"type:text" json:"-"` // Stored as JSON string
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Content) TableName() string {
	return "contents"
}

// SetTags serializes the tag list into the Tags column.
func (c *Content) SetTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	c.Tags = string(b)
}

// TagList deserializes the Tags column. A missing or corrupt value
// decodes to an empty list rather than an error.
func (c *Content) TagList() []string {
	if c.Tags == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(c.Tags), &tags); err != nil {
		return []string{}
	}
	return tags
}

// MarshalJSON exposes tags as a JSON array instead of the raw column text.
func (c Content) MarshalJSON() ([]byte, error) {
	type alias Content
	return json.Marshal(struct {
		alias
		Tags []string `json:"tags"`
	}{
		alias: alias(c),
		Tags:  c.TagList(),
	})
}
