package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

// docRecord is the wire form of the product doc.
type docRecord struct {
	ID         string                 `json:"doc_id"`
	SessionID  string                 `json:"session_id"`
	Content    string                 `json:"content"`
	Structured map[string]interface{} `json:"structured,omitempty"`
	Version    int                    `json:"version"`
	Status     string                 `json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func toDocRecord(doc *ent.ProductDoc) docRecord {
	return docRecord{
		ID:         doc.ID,
		SessionID:  doc.SessionID,
		Content:    doc.Content,
		Structured: doc.Structured,
		Version:    doc.Version,
		Status:     string(doc.Status),
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

// historyRecord is the wire form of one doc revision. Released revisions
// carry no payload.
type historyRecord struct {
	ID            string                 `json:"history_id"`
	Version       int                    `json:"version"`
	Content       string                 `json:"content,omitempty"`
	Structured    map[string]interface{} `json:"structured,omitempty"`
	Source        string                 `json:"source,omitempty"`
	ChangeSummary string                 `json:"change_summary,omitempty"`
	IsPinned      bool                   `json:"is_pinned"`
	IsReleased    bool                   `json:"is_released"`
	CreatedAt     time.Time              `json:"created_at"`
}

func toHistoryRecord(h *ent.ProductDocHistory) historyRecord {
	rec := historyRecord{
		ID:            h.ID,
		Version:       h.Version,
		Structured:    h.Structured,
		Source:        string(h.Source),
		ChangeSummary: h.ChangeSummary,
		IsPinned:      h.IsPinned,
		IsReleased:    h.IsReleased,
		CreatedAt:     h.CreatedAt,
	}
	if h.Content != nil {
		rec.Content = *h.Content
	}
	return rec
}

func (s *Server) handleGetDoc(c *gin.Context) {
	doc, err := s.deps.Docs.GetBySession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDocRecord(doc))
}

func (s *Server) handleUpdateDoc(c *gin.Context) {
	var req models.UpdateProductDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		return
	}
	doc, history, err := s.deps.Docs.UpdateDoc(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"doc":     toDocRecord(doc),
		"history": toHistoryRecord(history),
	})
}

func (s *Server) handleConfirmDoc(c *gin.Context) {
	doc, err := s.deps.Docs.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDocRecord(doc))
}

func (s *Server) handleListDocHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	history, err := s.deps.Docs.ListHistory(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	records := make([]historyRecord, 0, len(history))
	for _, h := range history {
		records = append(records, toHistoryRecord(h))
	}
	c.JSON(http.StatusOK, gin.H{"history": records})
}

// pinBody toggles a pin. Defaults to pinning when omitted.
type pinBody struct {
	Pinned *bool `json:"pinned,omitempty"`
}

func (b pinBody) value() bool {
	if b.Pinned == nil {
		return true
	}
	return *b.Pinned
}

func (s *Server) handlePinHistory(c *gin.Context) {
	var body pinBody
	_ = c.ShouldBindJSON(&body)

	history, err := s.deps.Docs.PinHistory(c.Request.Context(), c.Param("id"), body.value())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toHistoryRecord(history))
}
