package tutor

// Disclosure — поэтапная выдача подсказок для одного ответа модели.
// Значение создаётся заново на каждый новый разбор (даже повтор той же
// задачи стартует с нуля) и никогда не разделяется между чатами.
type Disclosure struct {
	total    int
	revealed int
}

func NewDisclosure(hintCount int) *Disclosure {
	if hintCount < 0 {
		hintCount = 0
	}
	return &Disclosure{total: hintCount}
}

// RevealNext открывает следующую подсказку. На верхней границе — no-op,
// возвращает false.
func (d *Disclosure) RevealNext() bool {
	if d.revealed >= d.total {
		return false
	}
	d.revealed++
	return true
}

// RevealAll открывает все оставшиеся подсказки разом.
func (d *Disclosure) RevealAll() {
	d.revealed = d.total
}

func (d *Disclosure) CanRevealMore() bool { return d.revealed < d.total }

func (d *Disclosure) Revealed() int { return d.revealed }

func (d *Disclosure) Total() int { return d.total }

// SolutionUnlocked: решение показываем только после всех подсказок.
// Сам текст решения доступен сразу после разбора — скрыт он политикой,
// а не отсутствием данных.
func (d *Disclosure) SolutionUnlocked() bool { return d.revealed == d.total }
