package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"math-tutor/api/internal/tutor"
	"math-tutor/api/internal/util"
)

const explainCacheAge = 90 * 24 * time.Hour

// explainProblem — полный цикл: кэш → LLM → новая сессия выдачи.
func (r *Router) explainProblem(chatID int64, problem string) {
	eng := r.EngManager.Get(chatID)
	hash := util.SHA256Hex([]byte(problem))

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	ex, err := r.Repo.Find(ctx, hash, eng.Name(), eng.GetModel(), explainCacheAge)
	if err != nil {
		r.send(chatID, "Думаю над задачей…")
		ex, err = tutor.Explain(ctx, eng, problem)
		if errors.Is(err, tutor.ErrNoSections) {
			r.send(chatID, "Не смог разобрать ответ модели на подсказки. Попробуй переформулировать задачу или сменить движок: /engine")
			return
		}
		if err != nil {
			r.send(chatID, fmt.Sprintf("Не удалось получить разбор: %v", err))
			return
		}
		_ = r.Repo.Upsert(context.Background(), hash, eng.Name(), eng.GetModel(), ex)
	}

	ses := &tutorSession{
		Problem:     problem,
		ProblemHash: hash,
		EngineName:  eng.Name(),
		Model:       eng.GetModel(),
		Explanation: ex,
		Disclosure:  tutor.NewDisclosure(len(ex.Hints)),
	}
	storeSession(chatID, ses)

	var b strings.Builder
	b.WriteString("📄 *Задача принята.*\n")
	if n := len(ex.Hints); n > 0 {
		fmt.Fprintf(&b, "Подсказок подготовлено: %d. Открывай по одной — так полезнее.\n", n)
	} else if ex.Solution != "" {
		b.WriteString("Подсказок нет, но есть полное решение.\n")
	}
	kb := sessionKeyboard(ses)
	r.sendMarkdown(chatID, b.String(), kb)
}

func formatHint(level int, hint string) string {
	return fmt.Sprintf("💡 *Подсказка %d:*\n%s", level, hint)
}

func formatSolution(solution string) string {
	return "✅ *Полное решение:*\n" + solution
}
