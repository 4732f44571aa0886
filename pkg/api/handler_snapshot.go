package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
)

// snapshotRecord is the wire form of a project snapshot. Released
// snapshots carry no payload.
type snapshotRecord struct {
	ID             string                   `json:"snapshot_id"`
	SessionID      string                   `json:"session_id"`
	SnapshotNumber int                      `json:"snapshot_number"`
	Source         string                   `json:"source"`
	Label          string                   `json:"label,omitempty"`
	DocVersion     int                      `json:"doc_version"`
	Pages          []map[string]interface{} `json:"pages,omitempty"`
	IsPinned       bool                     `json:"is_pinned"`
	IsReleased     bool                     `json:"is_released"`
	CreatedAt      time.Time                `json:"created_at"`
}

func toSnapshotRecord(snap *ent.ProjectSnapshot) snapshotRecord {
	return snapshotRecord{
		ID:             snap.ID,
		SessionID:      snap.SessionID,
		SnapshotNumber: snap.SnapshotNumber,
		Source:         string(snap.Source),
		Label:          snap.Label,
		DocVersion:     snap.DocVersion,
		Pages:          snap.Pages,
		IsPinned:       snap.IsPinned,
		IsReleased:     snap.IsReleased,
		CreatedAt:      snap.CreatedAt,
	}
}

func (s *Server) handleListSnapshots(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	snapshots, err := s.deps.Snapshots.ListSnapshots(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	records := make([]snapshotRecord, 0, len(snapshots))
	for _, snap := range snapshots {
		records = append(records, toSnapshotRecord(snap))
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": records})
}

// snapshotBody labels a manual snapshot.
type snapshotBody struct {
	Label string `json:"label,omitempty"`
}

func (s *Server) handleCreateSnapshot(c *gin.Context) {
	var body snapshotBody
	_ = c.ShouldBindJSON(&body)

	snap, err := s.deps.Snapshots.CreateSnapshot(c.Request.Context(), c.Param("id"), "manual", body.Label)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSnapshotRecord(snap))
}

func (s *Server) handleGetSnapshot(c *gin.Context) {
	snap, err := s.deps.Snapshots.GetSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSnapshotRecord(snap))
}

func (s *Server) handleRollbackSnapshot(c *gin.Context) {
	snap, err := s.deps.Snapshots.RollbackToSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSnapshotRecord(snap))
}

func (s *Server) handlePinSnapshot(c *gin.Context) {
	var body pinBody
	_ = c.ShouldBindJSON(&body)

	snap, err := s.deps.Snapshots.PinSnapshot(c.Request.Context(), c.Param("id"), body.value())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSnapshotRecord(snap))
}
