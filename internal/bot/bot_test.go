package bot

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kursovod/curator-bot/internal/pipeline"
)

// #region fakes

type fakeAPI struct {
	sent     []tgbotapi.Chattable
	answered int
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeAPI) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.answered++
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type fakeTurns struct {
	reply       pipeline.Reply
	rating      pipeline.RatingOutcome
	escalation  pipeline.EscalationOutcome
	messages    []string
	ratedID     string
	ratedUp     bool
	escalatedID int64
}

func (f *fakeTurns) HandleMessage(_ context.Context, _ int64, text string) pipeline.Reply {
	f.messages = append(f.messages, text)
	return f.reply
}

func (f *fakeTurns) HandleRating(requestID string, _ int64, helpful bool) pipeline.RatingOutcome {
	f.ratedID = requestID
	f.ratedUp = helpful
	return f.rating
}

func (f *fakeTurns) HandleEscalation(userID int64) pipeline.EscalationOutcome {
	f.escalatedID = userID
	return f.escalation
}

func (f *fakeTurns) HandleClose(int64) string { return "закрыто" }

// #endregion fakes

func studentMessage(text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: 42},
		From: &tgbotapi.User{ID: 42},
	}}
}

func commandMessage(chatID int64, text string, cmdLen int) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Text:     text,
		Chat:     &tgbotapi.Chat{ID: chatID},
		From:     &tgbotapi.User{ID: chatID},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
	}}
}

func callbackUpdate(data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb1",
		Data: data,
		From: &tgbotapi.User{ID: 42},
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 42},
		},
	}}
}

func TestParseCallback(t *testing.T) {
	tests := []struct {
		data   string
		action string
		id     string
		ok     bool
	}{
		{"rate:helpful:req-1", cbRateHelpful, "req-1", true},
		{"rate:not_helpful:req-1", cbRateNotHelpful, "req-1", true},
		{"escalate:42", cbEscalate, "42", true},
		{"close:42", cbClose, "42", true},
		{"rate:meh:req-1", "", "", false},
		{"", "", "", false},
		{"escalate", "", "", false},
	}
	for _, tt := range tests {
		cb, ok := parseCallback(tt.data)
		if ok != tt.ok || cb.action != tt.action || cb.id != tt.id {
			t.Errorf("parseCallback(%q) = %+v, %v; want {%s %s}, %v", tt.data, cb, ok, tt.action, tt.id, tt.ok)
		}
	}
}

func TestMessageFlowEditsPlaceholder(t *testing.T) {
	api := &fakeAPI{}
	turns := &fakeTurns{reply: pipeline.Reply{RequestID: "req-1", Text: "ответ", OfferRating: true}}
	b := New(api, turns, "ОбучAI", 0)

	b.HandleUpdate(context.Background(), studentMessage("что такое ESG?"))

	if len(turns.messages) != 1 || turns.messages[0] != "что такое ESG?" {
		t.Fatalf("pipeline got %v", turns.messages)
	}
	if len(api.sent) != 2 {
		t.Fatalf("sent %d payloads, want placeholder + edit", len(api.sent))
	}
	placeholder, ok := api.sent[0].(tgbotapi.MessageConfig)
	if !ok || placeholder.Text != thinkingText {
		t.Errorf("first send = %+v, want thinking placeholder", api.sent[0])
	}
	edit, ok := api.sent[1].(tgbotapi.EditMessageTextConfig)
	if !ok {
		t.Fatalf("second send = %T, want edit", api.sent[1])
	}
	if edit.Text != "ответ" {
		t.Errorf("edit text = %q", edit.Text)
	}
	if edit.ReplyMarkup == nil || len(edit.ReplyMarkup.InlineKeyboard) != 1 {
		t.Fatal("rating keyboard missing")
	}
	if got := *edit.ReplyMarkup.InlineKeyboard[0][0].CallbackData; got != "rate:helpful:req-1" {
		t.Errorf("helpful payload = %q", got)
	}
}

func TestReplyTextNeverEntersPipeline(t *testing.T) {
	api := &fakeAPI{}
	turns := &fakeTurns{}
	b := New(api, turns, "ОбучAI", 0)

	b.HandleUpdate(context.Background(), studentMessage(`куратор написал "/reply 42 привет"`))

	if len(turns.messages) != 0 {
		t.Errorf("pipeline got %v, want nothing", turns.messages)
	}
	if len(api.sent) != 0 {
		t.Errorf("sent %d payloads, want 0", len(api.sent))
	}
}

func TestNotHelpfulOffersEscalation(t *testing.T) {
	api := &fakeAPI{}
	turns := &fakeTurns{rating: pipeline.RatingOutcome{Ack: "жаль", OfferEscalation: true}}
	b := New(api, turns, "ОбучAI", 0)

	b.HandleUpdate(context.Background(), callbackUpdate("rate:not_helpful:req-1"))

	if api.answered != 1 {
		t.Error("callback not answered")
	}
	if turns.ratedID != "req-1" || turns.ratedUp {
		t.Errorf("rating call = %q helpful=%v", turns.ratedID, turns.ratedUp)
	}
	if len(api.sent) != 1 {
		t.Fatalf("sent %d payloads", len(api.sent))
	}
	msg := api.sent[0].(tgbotapi.MessageConfig)
	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatal("escalation keyboard missing")
	}
	if got := *markup.InlineKeyboard[0][0].CallbackData; got != "escalate:42" {
		t.Errorf("escalate payload = %q", got)
	}
}

func TestEscalationNotifiesCurator(t *testing.T) {
	api := &fakeAPI{}
	turns := &fakeTurns{escalation: pipeline.EscalationOutcome{Ack: "передал", CuratorMsg: "студент 42 ждёт"}}
	b := New(api, turns, "ОбучAI", 777)

	b.HandleUpdate(context.Background(), callbackUpdate("escalate:42"))

	if turns.escalatedID != 42 {
		t.Errorf("escalated user = %d", turns.escalatedID)
	}
	if len(api.sent) != 2 {
		t.Fatalf("sent %d payloads, want ack + curator note", len(api.sent))
	}
	curator := api.sent[1].(tgbotapi.MessageConfig)
	if curator.ChatID != 777 || curator.Text != "студент 42 ждёт" {
		t.Errorf("curator note = %+v", curator)
	}
}

func TestEscalationWithoutCuratorStillAcks(t *testing.T) {
	api := &fakeAPI{}
	turns := &fakeTurns{escalation: pipeline.EscalationOutcome{Ack: "передал", CuratorMsg: "x"}}
	b := New(api, turns, "ОбучAI", 0)

	b.HandleUpdate(context.Background(), callbackUpdate("escalate:42"))

	if len(api.sent) != 1 {
		t.Fatalf("sent %d payloads, want student ack only", len(api.sent))
	}
}

func TestCuratorReplyCommand(t *testing.T) {
	api := &fakeAPI{}
	b := New(api, &fakeTurns{}, "ОбучAI", 777)

	b.HandleUpdate(context.Background(), commandMessage(777, "/reply 42 загляните в модуль 3", len("/reply")))

	if len(api.sent) != 2 {
		t.Fatalf("sent %d payloads, want relay + confirmation", len(api.sent))
	}
	relay := api.sent[0].(tgbotapi.MessageConfig)
	if relay.ChatID != 42 || !strings.Contains(relay.Text, "загляните в модуль 3") {
		t.Errorf("relay = %+v", relay)
	}
	if !strings.Contains(relay.Text, "куратора") {
		t.Errorf("relay not labeled as curator message: %q", relay.Text)
	}
}

func TestReplyCommandDeniedOutsideCuratorChat(t *testing.T) {
	api := &fakeAPI{}
	b := New(api, &fakeTurns{}, "ОбучAI", 777)

	b.HandleUpdate(context.Background(), commandMessage(42, "/reply 1 текст", len("/reply")))

	if len(api.sent) != 1 {
		t.Fatalf("sent %d payloads", len(api.sent))
	}
	deny := api.sent[0].(tgbotapi.MessageConfig)
	if deny.ChatID != 42 || !strings.Contains(deny.Text, "куратору") {
		t.Errorf("deny = %+v", deny)
	}
}

func TestStartCommand(t *testing.T) {
	api := &fakeAPI{}
	b := New(api, &fakeTurns{}, "ОбучAI", 777)

	b.HandleUpdate(context.Background(), commandMessage(42, "/start", len("/start")))
	student := api.sent[0].(tgbotapi.MessageConfig)
	if !strings.Contains(student.Text, "ОбучAI") {
		t.Errorf("greeting missing course name: %q", student.Text)
	}

	b.HandleUpdate(context.Background(), commandMessage(777, "/start", len("/start")))
	curator := api.sent[1].(tgbotapi.MessageConfig)
	if !strings.Contains(curator.Text, "куратор") {
		t.Errorf("curator greeting = %q", curator.Text)
	}
}
