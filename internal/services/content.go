package services

import (
	"errors"
	"strings"

	"recollect/internal/models"

	"gorm.io/gorm"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrEmptyQuery      = errors.New("search query cannot be empty")
)

type CreateContentDTO struct {
	UserID uint
	Link   string
	Type   string
	Title  string
	Tags   []string
}

// ContentService owns saved items. Every read and write is scoped to the
// owning user; there is no sharing of individual items.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

func (s *ContentService) Create(dto CreateContentDTO) (*models.Content, error) {
	content := models.Content{
		UserID: dto.UserID,
		Link:   dto.Link,
		Type:   dto.Type,
		Title:  dto.Title,
	}
	content.SetTags(dto.Tags)

	if err := s.db.Create(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// ListByOwner returns the user's collection, newest first.
func (s *ContentService) ListByOwner(userID uint) ([]models.Content, error) {
	var content []models.Content
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&content).Error
	if err != nil {
		return nil, err
	}
	return content, nil
}

// Search filters the user's collection with a case-insensitive substring
// match against the title or any tag. The predicate runs in Go so behavior
// does not depend on the storage engine's query dialect.
func (s *ContentService) Search(userID uint, query string) ([]models.Content, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	content, err := s.ListByOwner(userID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]models.Content, 0, len(content))
	for _, c := range content {
		if matchesQuery(c, needle) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func matchesQuery(c models.Content, needle string) bool {
	if strings.Contains(strings.ToLower(c.Title), needle) {
		return true
	}
	for _, tag := range c.TagList() {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// DeleteOne removes a single item, filtered by both owner and id so a user
// cannot delete somebody else's record.
func (s *ContentService) DeleteOne(userID uint, contentID uint) error {
	result := s.db.Where("user_id = ? AND id = ?", userID, contentID).Delete(&models.Content{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}

func (s *ContentService) DeleteAllByOwner(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.Content{}).Error
}
