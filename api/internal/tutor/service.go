package tutor

import (
	"context"
	"errors"
)

// Completer — минимальный контракт LLM-движка, который нужен разбору.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Explanation — результат разбора для слоя представления. Каждая строка
// удовлетворяет инвариантам Normalize и безопасна для math-aware
// markdown-рендерера без дополнительной чистки.
type Explanation struct {
	Hints    []string `json:"hints"`
	Solution string   `json:"solution,omitempty"`
}

// ErrNoSections: ответ модели получен, но ни одного известного тега в нём
// нет. Это единственная "своя" ошибка разбора; транспортные ошибки движка
// пробрасываются как есть.
var ErrNoSections = errors.New("no recognizable sections in model reply")

// Explain — один запрос: промпт → один блокирующий вызов модели →
// нормализация → извлечение секций. Без ретраев на этом уровне.
func Explain(ctx context.Context, eng Completer, problem string) (Explanation, error) {
	raw, err := eng.Complete(ctx, systemPrompt, buildUserPrompt(problem))
	if err != nil {
		return Explanation{}, err
	}
	sec := ExtractSections(Normalize(raw))
	if sec.Empty() {
		return Explanation{}, ErrNoSections
	}
	return Explanation{Hints: sec.Hints, Solution: sec.Solution}, nil
}
