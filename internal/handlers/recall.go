package handlers

import (
	"errors"
	"net/http"

	"recollect/internal/models"
	"recollect/internal/services"

	"github.com/gin-gonic/gin"
)

type ShareRequest struct {
	Share *bool `json:"share" binding:"required"`
}

type ImportRequest struct {
	Hash string `json:"hash" binding:"required,min=1"`
}

// UpdateShare turns sharing on or off. Enabling is idempotent: an existing
// link is returned unchanged with 200, a freshly issued one with 201.
func (h *Handler) UpdateShare(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req ShareRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if *req.Share {
		hash, created, err := h.shareService.EnsureLink(userID)
		if err != nil {
			h.respondInternalError(c, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
			h.auditService.LogAction(&userID, services.AuditShare, hash, nil, c.ClientIP())
		}
		c.JSON(status, gin.H{"hash": hash})
		return
	}

	if err := h.shareService.Revoke(userID); err != nil {
		h.respondInternalError(c, err)
		return
	}

	h.auditService.LogAction(&userID, services.AuditUnshare, "", nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Link removed"})
}

// GetSharedCollection is the public recall page: no auth, resolves the
// hash and returns the owner's username and full collection. Each visit
// is recorded asynchronously for the owner's share stats.
func (h *Handler) GetSharedCollection(c *gin.Context) {
	hash := c.Param("shareLink")

	link, err := h.shareService.Resolve(hash)
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Link not found"})
			return
		}
		h.respondInternalError(c, err)
		return
	}

	content, err := h.contentService.ListByOwner(link.UserID)
	if err != nil {
		h.respondInternalError(c, err)
		return
	}

	owner, err := h.userService.GetByID(link.UserID)
	if err != nil {
		h.respondInternalError(c, err)
		return
	}

	h.statsService.RecordViewAsync(models.RecallView{
		ShareLinkID: link.ID,
		UserAgent:   c.Request.UserAgent(),
		Referrer:    c.Request.Referer(),
	})

	c.JSON(http.StatusOK, gin.H{
		"user":    owner.Username,
		"content": content,
	})
}

func (h *Handler) ImportCollection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req ImportRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.importService.Import(userID, req.Hash)
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shared collection not found"})
			return
		}
		h.respondInternalError(c, err)
		return
	}

	h.auditService.LogAction(&userID, services.AuditImport, req.Hash,
		map[string]int{"imported": result.ImportedCount, "skipped": result.SkippedDuplicates}, c.ClientIP())

	switch result.Reason {
	case services.ImportReasonNoContent:
		c.JSON(http.StatusOK, gin.H{
			"message":       "No content to import",
			"importedCount": 0,
		})
	case services.ImportReasonAllDuplicates:
		c.JSON(http.StatusOK, gin.H{
			"message":           "All content already exists in your collection",
			"importedCount":     0,
			"skippedDuplicates": result.SkippedDuplicates,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":           "Collection imported",
			"importedCount":     result.ImportedCount,
			"skippedDuplicates": result.SkippedDuplicates,
		})
	}
}

// ShareQRCode renders the caller's share URL as a PNG QR code. 404 when
// sharing is off; sharing is never enabled implicitly here.
func (h *Handler) ShareQRCode(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	link, err := h.shareService.LinkForUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sharing is not enabled"})
			return
		}
		h.respondInternalError(c, err)
		return
	}

	shareURL := h.cfg.ShareBaseURL + "/api/v1/recall/" + link.Hash
	png, err := h.qrService.GeneratePNG(shareURL, 256)
	if err != nil {
		h.respondInternalError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// ShareStats reports how often the caller's public page has been opened.
func (h *Handler) ShareStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	link, err := h.shareService.LinkForUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sharing is not enabled"})
			return
		}
		h.respondInternalError(c, err)
		return
	}

	views, err := h.statsService.CountViews(link.ID)
	if err != nil {
		h.respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hash":  link.Hash,
		"views": views,
	})
}
