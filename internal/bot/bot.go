package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kursovod/curator-bot/internal/pipeline"
)

// #region wiring

const thinkingText = "Думаю над ответом... 🤔"

const greetingFmt = `Привет! Я AI-куратор курса %s. Задайте вопрос по материалам курса, и я постараюсь помочь.

Команды:
/my_id — показать ваш ID`

const curatorGreeting = `Вы вошли как куратор. Эскалации студентов будут приходить в этот чат.
Ответить студенту: /reply <id студента> <текст>`

// API is the slice of tgbotapi.BotAPI the bot needs. Injected so tests
// run without a live Telegram backend.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Turns is the pipeline surface the transport drives.
type Turns interface {
	HandleMessage(ctx context.Context, userID int64, text string) pipeline.Reply
	HandleRating(requestID string, userID int64, helpful bool) pipeline.RatingOutcome
	HandleEscalation(userID int64) pipeline.EscalationOutcome
	HandleClose(userID int64) string
}

// Bot translates Telegram updates into pipeline turns and back.
type Bot struct {
	api           API
	turns         Turns
	courseName    string
	curatorChatID int64
}

func New(api API, turns Turns, courseName string, curatorChatID int64) *Bot {
	return &Bot{api: api, turns: turns, courseName: courseName, curatorChatID: curatorChatID}
}

// Run consumes updates until the context ends. One goroutine per update:
// a slow LLM turn must not delay other students.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go b.HandleUpdate(ctx, update)
		}
	}
}

// #endregion wiring

// #region updates

// HandleUpdate dispatches one update. Exported for tests.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil && update.Message.Text != "":
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// Curator replies quoted or forwarded around must never re-enter the
	// pipeline as student questions.
	if strings.Contains(msg.Text, "/reply") {
		return
	}
	chatID := msg.Chat.ID

	placeholder, err := b.api.Send(tgbotapi.NewMessage(chatID, thinkingText))
	if err != nil {
		log.Printf("[BOT] send placeholder to %d: %v", chatID, err)
	}

	reply := b.turns.HandleMessage(ctx, msg.From.ID, msg.Text)

	if placeholder.MessageID != 0 {
		edit := tgbotapi.NewEditMessageText(chatID, placeholder.MessageID, reply.Text)
		if reply.OfferRating {
			markup := ratingKeyboard(reply.RequestID)
			edit.ReplyMarkup = &markup
		}
		if _, err := b.api.Send(edit); err == nil {
			return
		}
		log.Printf("[BOT] edit placeholder in %d failed, sending fresh", chatID)
	}

	out := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.OfferRating {
		out.ReplyMarkup = ratingKeyboard(reply.RequestID)
	}
	if _, err := b.api.Send(out); err != nil {
		log.Printf("[BOT] send reply to %d: %v", chatID, err)
	}
}

// #endregion updates

// #region callbacks

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	// Telegram keeps the button spinner until the callback is answered.
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Printf("[BOT] answer callback %s: %v", cq.ID, err)
	}

	cb, ok := parseCallback(cq.Data)
	if !ok {
		log.Printf("[BOT] unknown callback payload %q", cq.Data)
		return
	}
	if cq.Message == nil {
		// Telegram drops the message from callbacks older than 48h.
		log.Printf("[BOT] callback %q without message, ignoring", cq.Data)
		return
	}
	chatID := cq.Message.Chat.ID

	switch cb.action {
	case cbRateHelpful, cbRateNotHelpful:
		out := b.turns.HandleRating(cb.id, cq.From.ID, cb.action == cbRateHelpful)
		msg := tgbotapi.NewMessage(chatID, out.Ack)
		if out.OfferEscalation {
			msg.ReplyMarkup = escalationKeyboard(cq.From.ID)
		}
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("[BOT] send rating ack to %d: %v", chatID, err)
		}

	case cbEscalate:
		userID, err := cb.userID()
		if err != nil {
			log.Printf("[BOT] bad escalate payload %q", cq.Data)
			return
		}
		out := b.turns.HandleEscalation(userID)
		if _, err := b.api.Send(tgbotapi.NewMessage(chatID, out.Ack)); err != nil {
			log.Printf("[BOT] send escalation ack to %d: %v", chatID, err)
		}
		b.notifyCurator(out.CuratorMsg)

	case cbClose:
		userID, err := cb.userID()
		if err != nil {
			log.Printf("[BOT] bad close payload %q", cq.Data)
			return
		}
		if _, err := b.api.Send(tgbotapi.NewMessage(chatID, b.turns.HandleClose(userID))); err != nil {
			log.Printf("[BOT] send close ack to %d: %v", chatID, err)
		}
	}
}

func (b *Bot) notifyCurator(text string) {
	if b.curatorChatID == 0 {
		log.Printf("[BOT] no curator chat configured, escalation stays in the ledger only")
		return
	}
	if _, err := b.api.Send(tgbotapi.NewMessage(b.curatorChatID, text)); err != nil {
		log.Printf("[BOT] notify curator: %v", err)
	}
}

// #endregion callbacks

// #region commands

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		text := fmt.Sprintf(greetingFmt, b.courseName)
		if chatID == b.curatorChatID && b.curatorChatID != 0 {
			text = curatorGreeting
		}
		b.send(chatID, text)

	case "my_id":
		b.send(chatID, fmt.Sprintf("Ваш ID: %d", msg.From.ID))

	case "reply":
		b.handleReply(msg)
	}
}

// handleReply relays "/reply <student id> <text>" from the curator chat.
func (b *Bot) handleReply(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if b.curatorChatID == 0 || chatID != b.curatorChatID {
		b.send(chatID, "Эта команда доступна только куратору.")
		return
	}

	parts := strings.SplitN(strings.TrimSpace(msg.CommandArguments()), " ", 2)
	if len(parts) < 2 || parts[0] == "" {
		b.send(chatID, "Формат: /reply <id студента> <текст>")
		return
	}
	studentID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		b.send(chatID, fmt.Sprintf("Не понял ID студента: %q", parts[0]))
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(studentID, "Сообщение от куратора:\n"+parts[1])); err != nil {
		log.Printf("[BOT] relay to student %d: %v", studentID, err)
		b.send(chatID, "Не удалось доставить сообщение студенту.")
		return
	}
	b.send(chatID, "Доставлено ✅")
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("[BOT] send to %d: %v", chatID, err)
	}
}

// #endregion commands
