package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

// pageRecord is the wire form of a page.
type pageRecord struct {
	ID               string    `json:"page_id"`
	SessionID        string    `json:"session_id"`
	Slug             string    `json:"slug"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	OrderIndex       int       `json:"order_index"`
	CurrentVersionID string    `json:"current_version_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toPageRecord(page *ent.Page) pageRecord {
	rec := pageRecord{
		ID:          page.ID,
		SessionID:   page.SessionID,
		Slug:        page.Slug,
		Title:       page.Title,
		Description: page.Description,
		OrderIndex:  page.OrderIndex,
		CreatedAt:   page.CreatedAt,
		UpdatedAt:   page.UpdatedAt,
	}
	if page.CurrentVersionID != nil {
		rec.CurrentVersionID = *page.CurrentVersionID
	}
	return rec
}

// versionRecord is the wire form of one page version. Released versions
// carry no HTML.
type versionRecord struct {
	ID           string    `json:"version_id"`
	PageID       string    `json:"page_id"`
	Version      int       `json:"version"`
	Description  string    `json:"description,omitempty"`
	Source       string    `json:"source"`
	FallbackUsed bool      `json:"fallback_used"`
	IsPinned     bool      `json:"is_pinned"`
	IsReleased   bool      `json:"is_released"`
	CreatedAt    time.Time `json:"created_at"`
}

func toVersionRecord(v *ent.PageVersion) versionRecord {
	return versionRecord{
		ID:           v.ID,
		PageID:       v.PageID,
		Version:      v.Version,
		Description:  v.Description,
		Source:       string(v.Source),
		FallbackUsed: v.FallbackUsed,
		IsPinned:     v.IsPinned,
		IsReleased:   v.IsReleased,
		CreatedAt:    v.CreatedAt,
	}
}

func (s *Server) handleListPages(c *gin.Context) {
	pages, err := s.deps.Pages.ListPages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	records := make([]pageRecord, 0, len(pages))
	for _, page := range pages {
		records = append(records, toPageRecord(page))
	}
	c.JSON(http.StatusOK, gin.H{"pages": records})
}

func (s *Server) handleCreatePage(c *gin.Context) {
	var req models.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		return
	}
	req.SessionID = c.Param("id")

	page, err := s.deps.Pages.CreatePage(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPageRecord(page))
}

func (s *Server) handleGetPage(c *gin.Context) {
	page, err := s.deps.Pages.GetPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageRecord(page))
}

func (s *Server) handleListVersions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	versions, err := s.deps.Pages.ListVersions(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	records := make([]versionRecord, 0, len(versions))
	for _, v := range versions {
		records = append(records, toVersionRecord(v))
	}
	c.JSON(http.StatusOK, gin.H{"versions": records})
}

// handlePreviewPage renders the page's current version with the global
// stylesheet inlined.
func (s *Server) handlePreviewPage(c *gin.Context) {
	version, html, err := s.deps.Pages.BuildPreview(c.Request.Context(), c.Param("id"), c.Query("css"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PreviewResponse{
		PageID:    version.PageID,
		VersionID: version.ID,
		Version:   version.Version,
		HTML:      html,
	})
}

func (s *Server) handlePreviewVersion(c *gin.Context) {
	version, err := s.deps.Pages.PreviewVersion(c.Request.Context(), c.Param("id"), c.Param("versionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	html := ""
	if version.HTML != nil {
		html = *version.HTML
	}
	c.JSON(http.StatusOK, models.PreviewResponse{
		PageID:    version.PageID,
		VersionID: version.ID,
		Version:   version.Version,
		HTML:      html,
	})
}

func (s *Server) handlePinVersion(c *gin.Context) {
	var body pinBody
	_ = c.ShouldBindJSON(&body)

	version, err := s.deps.Pages.PinVersion(c.Request.Context(), c.Param("versionID"), body.value())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVersionRecord(version))
}
