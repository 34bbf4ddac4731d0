package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"recollect/internal/models"
	"recollect/pkg/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var ErrLinkNotFound = errors.New("share link not found")

const shareCacheTTL = 1 * time.Hour

// ShareService is the share link registry: one random token per user,
// issued lazily and idempotently. Redis, when available, caches hash to
// owner lookups for the public recall page; the database stays the source
// of truth.
type ShareService struct {
	db            *gorm.DB
	rdb           *redis.Client
	logger        *slog.Logger
	hashLength    int
	hashGenerator func(int) string
}

func NewShareService(db *gorm.DB, rdb *redis.Client, logger *slog.Logger, hashLength int) *ShareService {
	if hashLength <= 0 {
		hashLength = 10
	}
	return &ShareService{
		db:            db,
		rdb:           rdb,
		logger:        logger,
		hashLength:    hashLength,
		hashGenerator: utils.GenerateShareHash,
	}
}

// EnsureLink returns the user's active share hash, creating one if absent.
// Calling it twice returns the identical hash; created reports whether this
// call issued a fresh link.
func (s *ShareService) EnsureLink(userID uint) (hash string, created bool, err error) {
	var existing models.ShareLink
	err = s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return existing.Hash, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, err
	}

	// Generate until the hash is free of collision with any stored one.
	for {
		hash = s.hashGenerator(s.hashLength)
		var collision models.ShareLink
		err = s.db.Where("hash = ?", hash).First(&collision).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return "", false, err
		}
	}

	link := models.ShareLink{UserID: userID, Hash: hash}
	if err = s.db.Create(&link).Error; err != nil {
		// Two concurrent share requests race on the user_id unique index;
		// the loser's insert fails and is retried as a lookup.
		var winner models.ShareLink
		if lookupErr := s.db.Where("user_id = ?", userID).First(&winner).Error; lookupErr == nil {
			return winner.Hash, false, nil
		}
		return "", false, err
	}

	return hash, true, nil
}

// LinkForUser returns the user's active link without creating one.
func (s *ShareService) LinkForUser(userID uint) (*models.ShareLink, error) {
	var link models.ShareLink
	if err := s.db.Where("user_id = ?", userID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// Revoke deletes the user's active link, if any. A later EnsureLink call
// generates a new, different token; revoked hashes are never reused.
func (s *ShareService) Revoke(userID uint) error {
	var link models.ShareLink
	err := s.db.Where("user_id = ?", userID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.db.Delete(&link).Error; err != nil {
		return err
	}
	s.dropCache(link.Hash)
	return nil
}

// Resolve maps a share hash to its owning link record.
func (s *ShareService) Resolve(hash string) (*models.ShareLink, error) {
	if cached, ok := s.fromCache(hash); ok {
		return cached, nil
	}

	var link models.ShareLink
	if err := s.db.Where("hash = ?", hash).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	s.toCache(&link)
	return &link, nil
}

func (s *ShareService) fromCache(hash string) (*models.ShareLink, bool) {
	if s.rdb == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	vals, err := s.rdb.HGetAll(ctx, "share:"+hash).Result()
	if err != nil || len(vals) == 0 {
		return nil, false
	}
	id, err1 := strconv.ParseUint(vals["id"], 10, 32)
	userID, err2 := strconv.ParseUint(vals["user_id"], 10, 32)
	if err1 != nil || err2 != nil {
		return nil, false
	}
	return &models.ShareLink{ID: uint(id), UserID: uint(userID), Hash: hash}, true
}

func (s *ShareService) toCache(link *models.ShareLink) {
	if s.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	key := "share:" + link.Hash
	if err := s.rdb.HSet(ctx, key, "id", link.ID, "user_id", link.UserID).Err(); err != nil {
		s.logger.Debug("share cache write failed", "error", err)
		return
	}
	s.rdb.Expire(ctx, key, shareCacheTTL)
}

func (s *ShareService) dropCache(hash string) {
	if s.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := s.rdb.Del(ctx, "share:"+hash).Err(); err != nil {
		s.logger.Debug("share cache invalidation failed", "error", err)
	}
}
