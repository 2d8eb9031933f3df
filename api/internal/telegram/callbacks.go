package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	cid := cb.Message.Chat.ID
	_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, "")) // ack

	switch cb.Data {
	case "hint_next":
		r.onHintNext(cid, cb.Message.MessageID)
	case "hint_all":
		r.onHintAll(cid, cb.Message.MessageID)
	case "solution":
		r.onSolution(cid, cb.Message.MessageID)
	}
}

// onHintNext открывает ровно одну следующую подсказку.
func (r *Router) onHintNext(chatID int64, msgID int) {
	ses, ok := loadSession(chatID)
	if !ok {
		r.send(chatID, "Сначала пришли текст задачи.")
		return
	}
	r.clearKeyboard(chatID, msgID)

	d := ses.Disclosure
	if !d.RevealNext() {
		r.send(chatID, "Все подсказки уже показаны.")
		return
	}
	hint := ses.Explanation.Hints[d.Revealed()-1]
	r.sendMarkdown(chatID, formatHint(d.Revealed(), hint), sessionKeyboard(ses))
}

// onHintAll открывает все оставшиеся подсказки разом.
func (r *Router) onHintAll(chatID int64, msgID int) {
	ses, ok := loadSession(chatID)
	if !ok {
		r.send(chatID, "Сначала пришли текст задачи.")
		return
	}
	r.clearKeyboard(chatID, msgID)

	d := ses.Disclosure
	from := d.Revealed()
	d.RevealAll()
	if from == d.Total() {
		r.send(chatID, "Все подсказки уже показаны.")
		return
	}
	for i := from; i < d.Total(); i++ {
		var kb *tgbotapi.InlineKeyboardMarkup
		if i == d.Total()-1 {
			kb = sessionKeyboard(ses) // кнопка решения на последней
		}
		r.sendMarkdown(chatID, formatHint(i+1, ses.Explanation.Hints[i]), kb)
	}
}

// onSolution показывает решение; по политике — только после всех подсказок.
func (r *Router) onSolution(chatID int64, msgID int) {
	ses, ok := loadSession(chatID)
	if !ok {
		r.send(chatID, "Сначала пришли текст задачи.")
		return
	}
	if !ses.Disclosure.SolutionUnlocked() {
		r.send(chatID, "Сначала посмотри подсказки — решение откроется после них.")
		return
	}
	if ses.Explanation.Solution == "" {
		r.send(chatID, "Для этой задачи модель не вернула решение.")
		return
	}
	r.clearKeyboard(chatID, msgID)
	r.sendMarkdown(chatID, formatSolution(ses.Explanation.Solution), nil)
}

func (r *Router) clearKeyboard(chatID int64, msgID int) {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, msgID, tgbotapi.InlineKeyboardMarkup{})
	_, _ = r.Bot.Send(edit)
}
