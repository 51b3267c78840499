package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordcalc/internal/domain"
)

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
	Words      string  `json:"words"`
	Phrase     string  `json:"phrase"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	expr := domain.NewExpression(req.Expression)
	calc, err := s.calc.Calculate(r.Context(), expr)
	switch {
	case errors.Is(err, domain.ErrEmptyExpression):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "empty expression"})
		return
	case errors.Is(err, domain.ErrEvaluation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: domain.ErrorText})
		return
	case err != nil:
		s.log.Error().Err(err).Msg("evaluate failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		Expression: calc.Expression,
		Result:     calc.Result.InexactFloat64(),
		Words:      calc.Words,
		Phrase:     calc.Phrase,
	})
}

func (s *Server) handleHistoryList(w http.ResponseWriter, _ *http.Request) {
	recs := s.history.List()
	if recs == nil {
		recs = []domain.HistoryRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleHistoryClear(w http.ResponseWriter, _ *http.Request) {
	s.history.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
