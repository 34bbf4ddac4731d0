package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"recollect/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateContentRequest struct {
	Link  string   `json:"link" binding:"required,min=1"`
	Type  string   `json:"type" binding:"required,oneof=image video article audio youtube twitter"`
	Title string   `json:"title" binding:"required,min=1,max=200"`
	Tags  []string `json:"tags"`
}

type DeleteContentRequest struct {
	ContentID uint `json:"contentId" binding:"required"`
}

func (h *Handler) CreateContent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req CreateContentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	content, err := h.contentService.Create(services.CreateContentDTO{
		UserID: userID,
		Link:   req.Link,
		Type:   req.Type,
		Title:  req.Title,
		Tags:   req.Tags,
	})
	if err != nil {
		h.respondInternalError(c, err)
		return
	}

	h.auditService.LogAction(&userID, services.AuditCreateContent, strconv.FormatUint(uint64(content.ID), 10),
		map[string]string{"link": content.Link}, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{"message": "Content created"})
}

func (h *Handler) ListContent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	content, err := h.contentService.ListByOwner(userID)
	if err != nil {
		h.respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": content,
		"message": "Content fetched",
	})
}

func (h *Handler) SearchContent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	content, err := h.contentService.Search(userID, query)
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Search query cannot be empty"})
			return
		}
		h.respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": content,
		"message": "Search results fetched",
		"query":   query,
	})
}

func (h *Handler) DeleteContent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req DeleteContentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.contentService.DeleteOne(userID, req.ContentID); err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Content not found"})
			return
		}
		h.respondInternalError(c, err)
		return
	}

	h.auditService.LogAction(&userID, services.AuditDeleteContent, strconv.FormatUint(uint64(req.ContentID), 10), nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
}
