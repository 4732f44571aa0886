package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

// sessionRecord is the wire form of a session.
type sessionRecord struct {
	ID              string                 `json:"session_id"`
	Title           string                 `json:"title,omitempty"`
	ProductType     string                 `json:"product_type,omitempty"`
	Complexity      string                 `json:"complexity,omitempty"`
	BuildStatus     string                 `json:"build_status,omitempty"`
	BuildArtifacts  map[string]interface{} `json:"build_artifacts,omitempty"`
	AestheticScores map[string]interface{} `json:"aesthetic_scores,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func toSessionRecord(session *ent.Session) sessionRecord {
	return sessionRecord{
		ID:              session.ID,
		Title:           session.Title,
		ProductType:     session.ProductType,
		Complexity:      session.Complexity,
		BuildStatus:     string(session.BuildStatus),
		BuildArtifacts:  session.BuildArtifacts,
		AestheticScores: session.AestheticScores,
		CreatedAt:       session.CreatedAt,
		UpdatedAt:       session.UpdatedAt,
	}
}

func (s *Server) handleCreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		return
	}
	session, err := s.deps.Sessions.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSessionRecord(session))
}

func (s *Server) handleListSessions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	sessions, total, err := s.deps.Sessions.ListSessions(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	records := make([]sessionRecord, 0, len(sessions))
	for _, session := range sessions {
		records = append(records, toSessionRecord(session))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": records, "total": total})
}

func (s *Server) handleGetSession(c *gin.Context) {
	session, err := s.deps.Sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionRecord(session))
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	if err := s.deps.Sessions.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListSessionRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	runs, err := s.deps.Runs.ListBySession(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	records := make([]runRecord, 0, len(runs))
	for _, run := range runs {
		records = append(records, toRunRecord(run))
	}
	c.JSON(http.StatusOK, gin.H{"runs": records})
}

func (s *Server) handleSessionEvents(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := s.deps.Sessions.GetSession(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}

	sinceSeq, _ := strconv.ParseInt(c.Query("since_seq"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, hasMore, err := s.deps.Store.GetEvents(c.Request.Context(), sessionID, sinceSeq, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventList(rows, sinceSeq, hasMore))
}
