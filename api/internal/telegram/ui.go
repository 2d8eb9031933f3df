package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sessionKeyboard собирает клавиатуру под текущее состояние выдачи:
// пока есть закрытые подсказки — кнопки "ещё"/"все", после последней
// подсказки — кнопка решения.
func sessionKeyboard(s *tutorSession) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	d := s.Disclosure
	if d.CanRevealMore() {
		next := tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("Подсказка %d из %d", d.Revealed()+1, d.Total()), "hint_next")
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(next))
		if d.Total()-d.Revealed() > 1 {
			all := tgbotapi.NewInlineKeyboardButtonData("Показать все подсказки", "hint_all")
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(all))
		}
	} else if s.Explanation.Solution != "" {
		sol := tgbotapi.NewInlineKeyboardButtonData("Показать решение", "solution")
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(sol))
	}

	if len(rows) == 0 {
		return nil
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}
