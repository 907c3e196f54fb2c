package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// #region callbacks

// Callback payload layout. Rating callbacks carry the request id so a late
// press still finds its ledger entry; escalation callbacks carry the user
// id because the session may already be gone.
const (
	cbRateHelpful    = "rate:helpful"
	cbRateNotHelpful = "rate:not_helpful"
	cbEscalate       = "escalate"
	cbClose          = "close"
)

type callback struct {
	action string // one of the cb* prefixes
	id     string // request id for ratings, user id for escalate/close
}

func parseCallback(data string) (callback, bool) {
	switch {
	case strings.HasPrefix(data, cbRateHelpful+":"):
		return callback{cbRateHelpful, data[len(cbRateHelpful)+1:]}, true
	case strings.HasPrefix(data, cbRateNotHelpful+":"):
		return callback{cbRateNotHelpful, data[len(cbRateNotHelpful)+1:]}, true
	case strings.HasPrefix(data, cbEscalate+":"):
		return callback{cbEscalate, data[len(cbEscalate)+1:]}, true
	case strings.HasPrefix(data, cbClose+":"):
		return callback{cbClose, data[len(cbClose)+1:]}, true
	}
	return callback{}, false
}

func (c callback) userID() (int64, error) {
	return strconv.ParseInt(c.id, 10, 64)
}

// #endregion callbacks

// #region keyboards

func ratingKeyboard(requestID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👍 Помогло", fmt.Sprintf("%s:%s", cbRateHelpful, requestID)),
			tgbotapi.NewInlineKeyboardButtonData("👎 Не помогло", fmt.Sprintf("%s:%s", cbRateNotHelpful, requestID)),
		),
	)
}

func escalationKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📨 Связаться с куратором", fmt.Sprintf("%s:%d", cbEscalate, userID)),
			tgbotapi.NewInlineKeyboardButtonData("Не нужно", fmt.Sprintf("%s:%d", cbClose, userID)),
		),
	)
}

// #endregion keyboards
