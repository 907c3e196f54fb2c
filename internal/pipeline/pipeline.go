package pipeline

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/kursovod/curator-bot/internal/classify"
	"github.com/kursovod/curator-bot/internal/feedback"
	"github.com/kursovod/curator-bot/internal/judge"
	"github.com/kursovod/curator-bot/internal/mirror"
	"github.com/kursovod/curator-bot/internal/retrieval"
)

// #region collaborators

// Classifier assigns a category and normalized form to a raw message.
type Classifier interface {
	Classify(ctx context.Context, query string) classify.Result
}

// Retriever fetches re-ranked knowledge chunks for a question.
type Retriever interface {
	Retrieve(ctx context.Context, query string) []retrieval.RankedChunk
}

// Generator produces a grounded answer from question plus context.
type Generator interface {
	Answer(ctx context.Context, query, contextText string) (string, error)
}

// Judger scores a finished turn.
type Judger interface {
	Evaluate(ctx context.Context, query, category, contextText, answer string) judge.Verdict
}

// Publisher mirrors events without blocking the reply path.
type Publisher interface {
	Publish(ev mirror.Event)
}

// #endregion collaborators

// #region replies

const (
	notFoundReply = "К сожалению, я не нашёл ответа на этот вопрос в материалах курса. Попробуйте переформулировать вопрос."
	failureReply  = "Извините, произошла техническая ошибка. Попробуйте ещё раз чуть позже."
	ratedReply    = "Спасибо за отзыв! 👍"
	notHelpfulAsk = "Жаль, что ответ не помог. Хотите связаться с куратором?"
	escalatedAck  = "Передал ваш вопрос куратору — он свяжется с вами."
	closedAck     = "Хорошо! Если появятся вопросы — пишите."
)

// Reply is what the transport sends back for one message.
type Reply struct {
	RequestID   string
	Text        string
	OfferRating bool
}

// RatingOutcome is the result of a rating button press.
type RatingOutcome struct {
	Ack             string
	OfferEscalation bool
}

// EscalationOutcome carries both sides of an escalation: the student ack
// and the curator notification (empty when no curator is configured).
type EscalationOutcome struct {
	Ack        string
	CuratorMsg string
}

// #endregion replies

// #region orchestrator

// Orchestrator runs the classify → retrieve → generate → judge sequence
// for every inbound message and owns the rating/escalation follow-ups.
type Orchestrator struct {
	classifier Classifier
	templates  *classify.Templates
	retriever  Retriever
	generator  Generator
	judger     Judger
	ledger     *feedback.Ledger
	mirrors    Publisher
	sessions   *SessionStore

	newID func() string
}

func NewOrchestrator(
	classifier Classifier,
	templates *classify.Templates,
	retriever Retriever,
	generator Generator,
	judger Judger,
	ledger *feedback.Ledger,
	mirrors Publisher,
	sessions *SessionStore,
) *Orchestrator {
	return &Orchestrator{
		classifier: classifier,
		templates:  templates,
		retriever:  retriever,
		generator:  generator,
		judger:     judger,
		ledger:     ledger,
		mirrors:    mirrors,
		sessions:   sessions,
		newID:      func() string { return uuid.New().String() },
	}
}

// HandleMessage runs one full turn. It always produces a reply: every
// internal failure degrades to a template or apology, never to silence.
func (o *Orchestrator) HandleMessage(ctx context.Context, userID int64, text string) Reply {
	requestID := o.newID()

	res := o.classifier.Classify(ctx, text)
	log.Printf("[PIPE] req=%s user=%d category=%s", requestID, userID, res.Category)

	o.mirrors.Publish(mirror.Event{
		Kind:      mirror.KindNormalization,
		RequestID: requestID,
		UserID:    userID,
		Question:  text,
		Category:  string(res.Category),
	})

	if res.Category != classify.CategoryQuestion {
		reply := o.templates.For(res.Category)
		o.auditTurn(ctx, requestID, userID, text, res.Category, "", reply)
		return Reply{RequestID: requestID, Text: reply}
	}

	chunks := o.retriever.Retrieve(ctx, res.NormalizedQuery)
	if len(chunks) == 0 {
		o.auditTurn(ctx, requestID, userID, text, res.Category, "", notFoundReply)
		return Reply{RequestID: requestID, Text: notFoundReply}
	}

	contextText := retrieval.BuildContext(chunks)
	answer, err := o.generator.Answer(ctx, res.NormalizedQuery, contextText)
	if err != nil {
		log.Printf("[PIPE] req=%s generation failed: %v", requestID, err)
		return Reply{RequestID: requestID, Text: failureReply}
	}

	verdict := o.auditTurn(ctx, requestID, userID, text, res.Category, contextText, answer)

	if err := o.ledger.CreateEntry(feedback.Entry{
		RequestID: requestID,
		UserID:    userID,
		Question:  text,
		Answer:    answer,
		Category:  string(res.Category),
		Judge:     verdict,
	}); err != nil {
		log.Printf("[LEDGER] req=%s create entry: %v", requestID, err)
	}

	o.sessions.Put(Session{
		RequestID: requestID,
		UserID:    userID,
		Question:  text,
		Answer:    answer,
	})

	return Reply{RequestID: requestID, Text: answer, OfferRating: true}
}

// auditTurn judges the turn and writes the judge-only record plus mirror
// event. Judge and ledger failures degrade, they never surface.
func (o *Orchestrator) auditTurn(ctx context.Context, requestID string, userID int64, question string, category classify.Category, contextText, answer string) judge.Verdict {
	verdict := o.judger.Evaluate(ctx, question, string(category), contextText, answer)

	if err := o.ledger.RecordJudgeOnly(feedback.JudgeRecord{
		RequestID: requestID,
		UserID:    userID,
		Question:  question,
		Category:  string(category),
		Answer:    answer,
		Judge:     verdict,
	}); err != nil {
		log.Printf("[LEDGER] req=%s judge record: %v", requestID, err)
	}

	o.mirrors.Publish(mirror.Event{
		Kind:      mirror.KindJudge,
		RequestID: requestID,
		UserID:    userID,
		Question:  question,
		Category:  string(category),
		Answer:    answer,
		Verdict:   verdict.Verdict,
		Overall:   verdict.OverallScore,
	})
	return verdict
}

// #endregion orchestrator

// #region followups

// HandleRating applies a rating button press. Pressing twice, or after a
// restart, still acks the student.
func (o *Orchestrator) HandleRating(requestID string, userID int64, helpful bool) RatingOutcome {
	rating := feedback.RatingNotHelpful
	if helpful {
		rating = feedback.RatingHelpful
	}

	found, err := o.ledger.UpdateRating(requestID, rating)
	if err != nil {
		log.Printf("[LEDGER] req=%s update rating: %v", requestID, err)
	} else if !found {
		log.Printf("[LEDGER] req=%s rating without entry, appending unlinked", requestID)
		if err := o.ledger.AppendUnlinked(requestID, userID, rating); err != nil {
			log.Printf("[LEDGER] req=%s append unlinked: %v", requestID, err)
		}
	}

	o.mirrors.Publish(mirror.Event{
		Kind:      mirror.KindFeedback,
		RequestID: requestID,
		UserID:    userID,
		Rating:    rating,
	})

	if helpful {
		return RatingOutcome{Ack: ratedReply}
	}
	return RatingOutcome{Ack: notHelpfulAsk, OfferEscalation: true}
}

// HandleEscalation records an explicit curator request. Session context may
// be gone; the notification then carries placeholders.
func (o *Orchestrator) HandleEscalation(userID int64) EscalationOutcome {
	sess, ok := o.sessions.LatestFor(userID)
	if !ok {
		log.Printf("[PIPE] escalation for user=%d without session", userID)
	}

	if err := o.ledger.RecordEscalation(feedback.EscalationRecord{
		RequestID: sess.RequestID,
		UserID:    userID,
		Question:  sess.Question,
		Answer:    sess.Answer,
	}); err != nil {
		log.Printf("[LEDGER] user=%d escalation record: %v", userID, err)
	}

	o.mirrors.Publish(mirror.Event{
		Kind:      mirror.KindEscalation,
		RequestID: sess.RequestID,
		UserID:    userID,
		Question:  sess.Question,
	})

	return EscalationOutcome{
		Ack:        escalatedAck,
		CuratorMsg: feedback.FormatEscalationMessage(userID, sess.Question, sess.Answer),
	}
}

// HandleClose ends the escalation offer.
func (o *Orchestrator) HandleClose(userID int64) string {
	return closedAck
}

// #endregion followups
