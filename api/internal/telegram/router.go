package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"math-tutor/api/internal/llm"
	"math-tutor/api/internal/store"
)

type Router struct {
	Bot        *tgbotapi.BotAPI
	EngManager *llm.Manager
	Repo       *store.ExplainRepo
}

func (r *Router) HandleUpdate(upd tgbotapi.Update, engines llm.Engines) {
	// callback-кнопки поэтапной выдачи
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.handleCommand(upd, engines)
		return
	}

	// любой обычный текст — условие задачи
	if text := strings.TrimSpace(upd.Message.Text); text != "" {
		r.explainProblem(cid, text)
	}
}

func (r *Router) handleCommand(upd tgbotapi.Update, engines llm.Engines) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Пришли текст задачи по математике — разберу её и выдам подсказки по одной, а в конце полное решение.\nКоманды: /health, /engine")
	case "health":
		r.send(cid, "✅ OK")
	case "engine":
		r.handleEngineCommand(cid, upd.Message.Text, engines)
	default:
		r.send(cid, "Неизвестная команда")
	}
}

// handleEngineCommand парсит команду /engine и переключает движок для чата.
// Форматы:
//
//	/engine gemini [model]
//	/engine gpt [model]
//	/engine deepseek [model]
func (r *Router) handleEngineCommand(chatID int64, cmd string, engines llm.Engines) {
	args := strings.Fields(strings.TrimSpace(strings.TrimPrefix(cmd, "/engine")))
	if len(args) == 0 {
		cur := r.EngManager.Get(chatID)
		r.send(chatID, "Текущий движок: "+cur.Name()+" ("+cur.GetModel()+")"+
			"\nИспользование:\n/engine gemini [model]\n/engine gpt [model]\n/engine deepseek [model]")
		return
	}
	name := strings.ToLower(args[0])
	var modelArg string
	if len(args) > 1 {
		modelArg = strings.TrimSpace(args[1])
	}

	eng, err := engines.GetEngine(name)
	if err != nil {
		r.send(chatID, "Неизвестный движок. Доступны: gemini | gpt | deepseek")
		return
	}

	// некоторые движки умеют переключать дефолтную модель
	type modelSetter interface{ SetModel(string) }
	if modelArg != "" {
		if ms, ok := any(eng).(modelSetter); ok {
			ms.SetModel(modelArg)
		}
	}
	r.EngManager.Set(chatID, eng)
	r.send(chatID, "✅ Движок: "+eng.Name()+" ("+eng.GetModel()+").")
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, _ = r.Bot.Send(msg)
}

// sendMarkdown — для сообщений с формулами; рендер $-разметки остаётся на
// стороне клиента.
func (r *Router) sendMarkdown(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	if len(text) > 3900 {
		text = text[:3900] + "…"
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	_, _ = r.Bot.Send(msg)
}
