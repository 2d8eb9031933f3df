package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"math-tutor/api/internal/tutor"
)

type ExplainRequest struct {
	LLMName string `json:"llm_name"`
	Problem string `json:"problem"`
}

// Explain: POST {llm_name, problem} -> {hints, solution}.
// Ответ без распознанных секций — не ошибка транспорта: отдаём пустой
// результат, клиент показывает "ничего".
func (h *Handle) Explain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Problem) == "" {
		http.Error(w, "problem is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 70*time.Second)
	defer cancel()

	engine, err := h.engs.GetEngine(req.LLMName)
	if err != nil {
		http.Error(w, "explain error: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := tutor.Explain(ctx, engine, req.Problem)
	if errors.Is(err, tutor.ErrNoSections) {
		writeJSON(w, http.StatusOK, tutor.Explanation{Hints: []string{}})
		return
	}
	if err != nil {
		http.Error(w, "explain error: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, out)
}
