package feedback

import "fmt"

const unknownPlaceholder = "неизвестно"

// FormatEscalationMessage builds the curator notification. Missing turn
// context (expired session, restart) degrades to placeholders rather than
// blocking the escalation.
func FormatEscalationMessage(userID int64, question, answer string) string {
	if question == "" {
		question = unknownPlaceholder
	}
	if answer == "" {
		answer = unknownPlaceholder
	}
	return fmt.Sprintf(
		"⚠️ Студент %d просит связаться с куратором.\n\nВопрос: %s\n\nОтвет бота: %s\n\nОтветить: /reply %d <текст>",
		userID, question, answer, userID,
	)
}
