package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/queries/list_history"
)

// HistoryLister lists saved profile snapshots.
type HistoryLister interface {
	Execute(ctx context.Context, req *list_history.Request) ([]*contracts.SnapshotDTO, error)
}

// HistoryHandler serves the save history of a partner profile.
type HistoryHandler struct {
	history HistoryLister
}

func NewHistoryHandler(history HistoryLister) *HistoryHandler {
	return &HistoryHandler{history: history}
}

type ListHistoryResponse struct {
	PartnerID string                   `json:"partner_id"`
	Snapshots []*contracts.SnapshotDTO `json:"snapshots"`
	Count     int                      `json:"count"`
}

// List handles GET /api/v1/partners/:partner_id/history.
func (h *HistoryHandler) List(c *gin.Context) {
	req := &list_history.Request{
		PartnerID: c.Param("partner_id"),
		UserID:    c.Query("user_id"),
		Field:     c.Query("field"),
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		req.Limit = limit
	}
	if sinceStr := c.Query("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be an RFC 3339 timestamp"})
			return
		}
		req.Since = since
	}

	snapshots, err := h.history.Execute(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		_ = c.Error(err)
		return
	}
	if snapshots == nil {
		snapshots = []*contracts.SnapshotDTO{}
	}
	c.JSON(http.StatusOK, ListHistoryResponse{
		PartnerID: req.PartnerID,
		Snapshots: snapshots,
		Count:     len(snapshots),
	})
}
