package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jakechorley/weekend-rota/pkg/core/rota"
	"github.com/jakechorley/weekend-rota/pkg/core/services"
)

const dateLayout = "2006-01-02"

// RotaRequest is the body of POST /api/rota. Every field is optional.
type RotaRequest struct {
	Start string `json:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `json:"end" binding:"omitempty,datetime=2006-01-02"`
	Seed  *int64 `json:"seed" binding:"omitempty,min=0"`
}

// RoleResponse describes a configured role
type RoleResponse struct {
	Key       string   `json:"key"`
	Label     string   `json:"label"`
	Day       string   `json:"day"`
	Headcount int      `json:"headcount"`
	Eligible  []string `json:"eligible"`
}

// TallyResponse is one person's assignment count
type TallyResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RotaResponse is the body returned by POST /api/rota
type RotaResponse struct {
	RunID            string          `json:"run_id"`
	Seed             int64           `json:"seed"`
	Start            string          `json:"start"`
	End              string          `json:"end"`
	Empty            bool            `json:"empty"`
	Header           []string        `json:"header"`
	Rows             [][]string      `json:"rows"`
	Tally            []TallyResponse `json:"tally"`
	Warnings         []string        `json:"warnings"`
	ValidationErrors []string        `json:"validation_errors,omitempty"`
}

// Index reports the service name and version
func (s *Server) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Weekend Rota API",
		"version": Version,
	})
}

// ListRoles returns the configured roles in processing order
func (s *Server) ListRoles(c *gin.Context) {
	roles := make([]RoleResponse, 0, len(s.cfg.Roles))
	for _, role := range s.cfg.Roles {
		roles = append(roles, RoleResponse{
			Key:       role.Key,
			Label:     role.Label,
			Day:       role.Day,
			Headcount: role.Headcount,
			Eligible:  role.Eligible,
		})
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

// GenerateRota generates a rota for the requested range and seed
func (s *Server) GenerateRota(c *gin.Context) {
	var body RotaRequest
	// An empty body means "all defaults"
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	req := services.GenerateRotaRequest{Seed: body.Seed}
	if body.Start != "" {
		start, _ := time.Parse(dateLayout, body.Start)
		req.Start = &start
	}
	if body.End != "" {
		end, _ := time.Parse(dateLayout, body.End)
		req.End = &end
	}

	result, err := services.GenerateRota(c.Request.Context(), s.cfg, s.logger, req)
	if errors.Is(err, rota.ErrInvalidRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end date must not be before start date"})
		return
	}
	if err != nil {
		s.logger.Error("Failed to generate rota", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate rota"})
		return
	}

	c.JSON(http.StatusOK, newRotaResponse(result))
}

func newRotaResponse(result *services.GenerateRotaResult) RotaResponse {
	resp := RotaResponse{
		RunID:    result.RunID,
		Seed:     result.Seed,
		Start:    result.Start.Format(dateLayout),
		End:      result.End.Format(dateLayout),
		Empty:    result.Empty(),
		Header:   result.Header(),
		Rows:     make([][]string, 0, len(result.Rows)),
		Tally:    make([]TallyResponse, 0, len(result.Tally)),
		Warnings: result.Warnings,
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}

	for _, row := range result.Rows {
		resp.Rows = append(resp.Rows, row.Cells)
	}
	for _, entry := range result.Tally {
		resp.Tally = append(resp.Tally, TallyResponse{Name: entry.Name, Count: entry.Count})
	}
	for _, verr := range result.ValidationErrors {
		resp.ValidationErrors = append(resp.ValidationErrors, verr.ConstraintName+": "+verr.Description)
	}

	return resp
}
