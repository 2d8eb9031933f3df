package main

import (
	"log"
	"net/http"

	"math-tutor/api/internal/config"
	"math-tutor/api/internal/handle"
	"math-tutor/api/internal/llm"
	"math-tutor/api/internal/llm/deepseek"
	"math-tutor/api/internal/llm/gemini"
	"math-tutor/api/internal/llm/openai"
)

func main() {
	cfg := config.Load()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	engines := &llm.Engines{
		Gemini:   gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI:   openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Deepseek: deepseek.New(cfg.DeepseekAPIKey, cfg.DeepseekModel),
	}
	h := handle.New(engines)

	mux.HandleFunc("/v1/tutor/explain", h.Explain)

	addr := ":" + cfg.Port
	log.Printf("tutor-api listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
