package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type Engine interface {
	Name() string
	GetModel() string
	Complete(ctx context.Context, system, user string) (string, error)
}

type Engines struct {
	Gemini   Engine
	OpenAI   Engine
	Deepseek Engine
}

// GetEngine резолвит движок по имени из запроса; пустое имя — дефолт
// (gemini, затем gpt).
func (e *Engines) GetEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		if e.Gemini != nil {
			return e.Gemini, nil
		}
		if e.OpenAI != nil {
			return e.OpenAI, nil
		}
	case "gemini":
		if e.Gemini != nil {
			return e.Gemini, nil
		}
	case "gpt", "openai":
		if e.OpenAI != nil {
			return e.OpenAI, nil
		}
	case "deepseek":
		if e.Deepseek != nil {
			return e.Deepseek, nil
		}
	}
	return nil, fmt.Errorf("unknown llm engine: %q", name)
}

// Manager хранит выбранный движок на чат.
type Manager struct {
	def Engine
	m   sync.Map // chatID -> Engine
}

func NewManager(defaultEngine Engine) *Manager {
	return &Manager{def: defaultEngine}
}

func (m *Manager) Get(chatID int64) Engine {
	if v, ok := m.m.Load(chatID); ok {
		return v.(Engine)
	}
	return m.def
}

func (m *Manager) Set(chatID int64, e Engine) {
	m.m.Store(chatID, e)
}
