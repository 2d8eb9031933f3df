package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"math-tutor/api/internal/tutor"
)

type ExplainRepo struct{ DB *sql.DB }

func NewExplainRepo(db *sql.DB) *ExplainRepo { return &ExplainRepo{DB: db} }

// Find возвращает кэшированный разбор для (problemHash, engine, model).
// Если maxAge > 0 и запись старше, вернёт sql.ErrNoRows (чтобы вызвать LLM
// заново).
func (r *ExplainRepo) Find(ctx context.Context, problemHash, engine, model string, maxAge time.Duration) (tutor.Explanation, error) {
	const q = `select explanation_json, created_at
	           from explain_cache
	           where problem_hash=$1 and engine=$2 and model=$3`
	var (
		js []byte
		ts time.Time
	)
	if err := r.DB.QueryRowContext(ctx, q, problemHash, engine, model).Scan(&js, &ts); err != nil {
		return tutor.Explanation{}, err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return tutor.Explanation{}, sql.ErrNoRows
	}
	var ex tutor.Explanation
	if err := json.Unmarshal(js, &ex); err != nil {
		// битый кэш — считаем, что записи нет
		return tutor.Explanation{}, sql.ErrNoRows
	}
	return ex, nil
}

// Upsert сохраняет/обновляет разбор. PK: (problem_hash, engine, model).
func (r *ExplainRepo) Upsert(ctx context.Context, problemHash, engine, model string, ex tutor.Explanation) error {
	js, _ := json.Marshal(ex)
	const q = `
insert into explain_cache(problem_hash, engine, model, explanation_json)
values ($1,$2,$3,$4)
on conflict (problem_hash, engine, model)
do update set explanation_json=excluded.explanation_json, created_at=now()`
	_, err := r.DB.ExecContext(ctx, q, problemHash, engine, model, js)
	return err
}
