package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/renato0307/shotbook/internal/domain"
	"github.com/renato0307/shotbook/internal/logging"
	"github.com/renato0307/shotbook/internal/services"
)

const (
	ctxKeySelection = "selection_key"
	ctxKeyGM        = "operator_gm"
)

type participantDTO struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
}

type startRecordRequest struct {
	Date   string         `json:"date" binding:"required"`
	Master participantDTO `json:"master" binding:"required"`
}

type startSuggestRequest struct {
	IgnoreDays   *int `json:"ignore_days"`
	LookbackDays *int `json:"lookback_days"`
	Slots        *int `json:"slots"`
}

type selectRequest struct {
	Participants []participantDTO `json:"participants" binding:"required,dive"`
}

type suggestRequest struct {
	Candidates   []participantDTO `json:"candidates" binding:"required,dive"`
	IgnoreDays   *int             `json:"ignore_days"`
	LookbackDays *int             `json:"lookback_days"`
	Slots        *int             `json:"slots"`
	Today        string           `json:"today"`
}

type selectionResponse struct {
	Date         string           `json:"date,omitempty"`
	FlowID       string           `json:"flow_id"`
	IgnoreDays   int              `json:"ignore_days,omitempty"`
	Kind         domain.FlowKind  `json:"kind"`
	LookbackDays int              `json:"lookback_days,omitempty"`
	Master       *participantDTO  `json:"master,omitempty"`
	Participants []participantDTO `json:"participants"`
	Slots        int              `json:"slots,omitempty"`
}

type summaryRowResponse struct {
	LastDate        string `json:"last_date"`
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
	SessionCount    int    `json:"session_count"`
}

type statsResponse struct {
	From string               `json:"from"`
	Rows []summaryRowResponse `json:"rows"`
	To   string               `json:"to"`
}

type shotResponse struct {
	CreatedAt    string           `json:"created_at"`
	CreatedByID  string           `json:"created_by_id"`
	Date         string           `json:"date"`
	ID           int64            `json:"id"`
	Master       participantDTO   `json:"master"`
	Participants []participantDTO `json:"participants"`
}

type rankedResponse struct {
	DaysSinceLastPlayed *int   `json:"days_since_last_played"`
	LastPlayed          string `json:"last_played"`
	ParticipantID       string `json:"participant_id"`
	ParticipantName     string `json:"participant_name"`
	Rank                int    `json:"rank"`
	RecentSessionCount  int    `json:"recent_session_count"`
}

type suggestionResponse struct {
	Considered   int              `json:"considered"`
	IgnoreDays   int              `json:"ignore_days"`
	LookbackDays int              `json:"lookback_days"`
	LookbackFrom string           `json:"lookback_from"`
	Ranking      []rankedResponse `json:"ranking"`
	Slots        int              `json:"slots"`
	Today        string           `json:"today"`
}

// operatorKey reads the operator identity headers into the request context
func operatorKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		operator := c.GetHeader(HeaderOperatorID)
		if operator == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": HeaderOperatorID + " header is required"})
			return
		}
		c.Set(ctxKeySelection, domain.SelectionKey{
			ContextID:  c.GetHeader(HeaderContextID),
			OperatorID: operator,
		})
		c.Set(ctxKeyGM, isGM(c))
		c.Next()
	}
}

func isGM(c *gin.Context) bool {
	gm, err := strconv.ParseBool(c.GetHeader(HeaderOperatorGM))
	return err == nil && gm
}

func selectionKey(c *gin.Context) domain.SelectionKey {
	return c.MustGet(ctxKeySelection).(domain.SelectionKey)
}

func (s *Server) stats(c *gin.Context) {
	result, err := s.attendance.Stats(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, err)
		return
	}

	rows := make([]summaryRowResponse, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = summaryRowResponse{
			LastDate:        r.LastDate,
			ParticipantID:   r.ParticipantID,
			ParticipantName: r.ParticipantName,
			SessionCount:    r.SessionCount,
		}
	}
	c.JSON(http.StatusOK, statsResponse{From: result.From, Rows: rows, To: result.To})
}

func (s *Server) suggest(c *gin.Context) {
	if !isGM(c) {
		writeError(c, domain.ErrPermissionDenied)
		return
	}

	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.suggestion.Suggest(c.Request.Context(), services.SuggestRequest{
		Candidates:   toParticipants(req.Candidates),
		IgnoreDays:   intOr(req.IgnoreDays, s.defaults.IgnoreDays),
		LookbackDays: intOr(req.LookbackDays, s.defaults.LookbackDays),
		Slots:        intOr(req.Slots, s.defaults.Slots),
		Today:        req.Today,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	suggestionsTotal.WithLabelValues("direct").Inc()
	c.JSON(http.StatusOK, toSuggestionResponse(result))
}

func (s *Server) listShots(c *gin.Context) {
	shots, err := s.attendance.ListShots(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]shotResponse, len(shots))
	for i, shot := range shots {
		out[i] = toShotResponse(shot)
	}
	c.JSON(http.StatusOK, gin.H{"shots": out})
}

func (s *Server) getShot(c *gin.Context) {
	id, ok := shotID(c)
	if !ok {
		return
	}

	shot, err := s.attendance.GetShot(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toShotResponse(*shot))
}

func (s *Server) deleteShot(c *gin.Context) {
	id, ok := shotID(c)
	if !ok {
		return
	}

	if err := s.attendance.DeleteShot(c.Request.Context(), isGM(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) startRecord(c *gin.Context) {
	var req startRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel, err := s.flows.StartRecord(c.GetBool(ctxKeyGM), selectionKey(c), req.Date,
		domain.Participant{ID: req.Master.ID, Name: req.Master.Name})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSelectionResponse(sel))
}

func (s *Server) startSuggest(c *gin.Context) {
	var req startSuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel, err := s.flows.StartSuggest(c.GetBool(ctxKeyGM), selectionKey(c), services.SuggestOptions{
		IgnoreDays:   req.IgnoreDays,
		LookbackDays: req.LookbackDays,
		Slots:        req.Slots,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSelectionResponse(sel))
}

func (s *Server) currentFlow(c *gin.Context) {
	sel, err := s.flows.Current(selectionKey(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSelectionResponse(sel))
}

func (s *Server) selectParticipants(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel, err := s.flows.Select(c.GetBool(ctxKeyGM), selectionKey(c), toParticipants(req.Participants))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSelectionResponse(sel))
}

func (s *Server) resetFlow(c *gin.Context) {
	if err := s.flows.Reset(selectionKey(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) cancelFlow(c *gin.Context) {
	s.flows.Cancel(selectionKey(c))
	c.Status(http.StatusNoContent)
}

func (s *Server) confirmFlow(c *gin.Context) {
	key := selectionKey(c)
	result, err := s.flows.Confirm(c.Request.Context(), c.GetBool(ctxKeyGM), key, key.OperatorID)
	if err != nil {
		writeError(c, err)
		return
	}

	switch result.Kind {
	case domain.FlowRecord:
		shotsRecordedTotal.Inc()
		c.JSON(http.StatusCreated, gin.H{"kind": result.Kind, "shot": toShotResponse(*result.Shot)})
	default:
		suggestionsTotal.WithLabelValues("flow").Inc()
		c.JSON(http.StatusOK, gin.H{"kind": result.Kind, "suggestion": toSuggestionResponse(result.Suggestion)})
	}
}

// writeError maps domain errors to status codes. Store failures are logged
// and reported with a generic message.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "GM role required"})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		var nf *domain.NotFoundError
		errors.As(err, &nf)
		msg := err.Error()
		if nf.Resource == "selection" {
			msg = "selection expired or missing, start the flow again"
		}
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
	default:
		logging.Logger.Error("Request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func shotID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shot id"})
		return 0, false
	}
	return id, true
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func toParticipants(in []participantDTO) []domain.Participant {
	out := make([]domain.Participant, len(in))
	for i, p := range in {
		out[i] = domain.Participant{ID: p.ID, Name: p.Name}
	}
	return out
}

func fromParticipants(in []domain.Participant) []participantDTO {
	out := make([]participantDTO, len(in))
	for i, p := range in {
		out[i] = participantDTO{ID: p.ID, Name: p.DisplayName()}
	}
	return out
}

func toSelectionResponse(sel domain.PendingSelection) selectionResponse {
	resp := selectionResponse{
		FlowID:       sel.FlowID,
		Kind:         sel.Params.Kind,
		Participants: fromParticipants(sel.ParticipantList()),
	}
	switch sel.Params.Kind {
	case domain.FlowRecord:
		resp.Date = sel.Params.Date
		resp.Master = &participantDTO{ID: sel.Params.Master.ID, Name: sel.Params.Master.Name}
	case domain.FlowSuggest:
		resp.IgnoreDays = sel.Params.IgnoreDays
		resp.LookbackDays = sel.Params.LookbackDays
		resp.Slots = sel.Params.Slots
	}
	return resp
}

func toShotResponse(shot domain.Shot) shotResponse {
	return shotResponse{
		CreatedAt:    shot.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		CreatedByID:  shot.CreatedByID,
		Date:         shot.Date,
		ID:           shot.ID,
		Master:       participantDTO{ID: shot.MasterID, Name: shot.MasterName},
		Participants: fromParticipants(shot.Participants),
	}
}

func toSuggestionResponse(result *services.SuggestResult) suggestionResponse {
	ranking := make([]rankedResponse, len(result.Ranking))
	for i, r := range result.Ranking {
		ranking[i] = rankedResponse{
			DaysSinceLastPlayed: r.DaysSinceLastPlayed,
			LastPlayed:          r.LastPlayed.String(),
			ParticipantID:       r.ParticipantID,
			ParticipantName:     r.ParticipantName,
			Rank:                r.Rank,
			RecentSessionCount:  r.RecentSessionCount,
		}
	}
	return suggestionResponse{
		Considered:   result.Considered,
		IgnoreDays:   result.Request.IgnoreDays,
		LookbackDays: result.Request.LookbackDays,
		LookbackFrom: result.LookbackFrom,
		Ranking:      ranking,
		Slots:        result.Request.Slots,
		Today:        result.Today,
	}
}
