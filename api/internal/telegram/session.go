package telegram

import (
	"sync"

	"math-tutor/api/internal/tutor"
)

// tutorSession — состояние поэтапной выдачи для одного разбора.
// Создаётся заново на каждый новый разбор (повтор той же задачи тоже
// стартует с нуля) и живёт, пока чат не пришлёт следующую задачу.
type tutorSession struct {
	Problem     string
	ProblemHash string
	EngineName  string
	Model       string

	Explanation tutor.Explanation
	Disclosure  *tutor.Disclosure
}

var sessions sync.Map // chatID -> *tutorSession

func storeSession(chatID int64, s *tutorSession) { sessions.Store(chatID, s) }

func loadSession(chatID int64) (*tutorSession, bool) {
	v, ok := sessions.Load(chatID)
	if !ok {
		return nil, false
	}
	return v.(*tutorSession), true
}
