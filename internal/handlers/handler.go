package handlers

import (
	"log/slog"

	"recollect/internal/config"
	"recollect/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg            config.Config
	logger         *slog.Logger
	db             *gorm.DB
	rdb            *redis.Client
	tokenService   *services.TokenService
	userService    *services.UserService
	contentService *services.ContentService
	shareService   *services.ShareService
	importService  *services.ImportService
	auditService   *services.AuditService
	statsService   *services.RecallStatsService
	qrService      *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	tokenService *services.TokenService,
	userService *services.UserService,
	contentService *services.ContentService,
	shareService *services.ShareService,
	importService *services.ImportService,
	auditService *services.AuditService,
	statsService *services.RecallStatsService,
	qrService *services.QRService,
) *Handler {
	return &Handler{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		rdb:            rdb,
		tokenService:   tokenService,
		userService:    userService,
		contentService: contentService,
		shareService:   shareService,
		importService:  importService,
		auditService:   auditService,
		statsService:   statsService,
		qrService:      qrService,
	}
}
