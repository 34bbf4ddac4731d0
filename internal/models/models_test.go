package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTags(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		var c Content
		c.SetTags([]string{"go", "backend"})
		assert.Equal(t, []string{"go", "backend"}, c.TagList())
	})

	t.Run("Nil tags become empty list", func(t *testing.T) {
		var c Content
		c.SetTags(nil)
		assert.Equal(t, []string{}, c.TagList())
	})

	t.Run("Empty column decodes to empty list", func(t *testing.T) {
		c := Content{}
		assert.Equal(t, []string{}, c.TagList())
	})

	t.Run("Corrupt column decodes to empty list", func(t *testing.T) {
		c := Content{Tags: "{not json"}
		assert.Equal(t, []string{}, c.TagList())
	})
}

func TestContentMarshalJSON(t *testing.T) {
	c := Content{ID: 1, Link: "https://example.com", Type: ContentTypeArticle, Title: "Example"}
	c.SetTags([]string{"read-later"})

	b, err := json.Marshal(c)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, []interface{}{"read-later"}, decoded["tags"])
	assert.Equal(t, "https://example.com", decoded["link"])
}

func TestIsValidContentType(t *testing.T) {
	for _, valid := range []string{"image", "video", "article", "audio", "youtube", "twitter"} {
		assert.True(t, IsValidContentType(valid), valid)
	}
	assert.False(t, IsValidContentType("podcast"))
	assert.False(t, IsValidContentType(""))
	assert.False(t, IsValidContentType("Article"))
}
