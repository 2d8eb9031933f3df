package handle

import (
	"encoding/json"
	"net/http"

	"math-tutor/api/internal/llm"
)

type Handle struct {
	engs *llm.Engines
}

func New(engs *llm.Engines) *Handle {
	return &Handle{
		engs: engs,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
