// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const defaultSendTimeout = 10 * time.Second

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewBot creates a send-only bot. apiURL may be empty to use the public Bot API.
// The bot is created offline, so no getMe call is made until the first send.
func NewBot(token, apiURL string, logger *logrus.Entry) (*telebot.Bot, error) {
	pref := telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: true,
		Client:  &http.Client{Timeout: defaultSendTimeout},
		OnError: func(err error, _ telebot.Context) {
			logger.WithError(err).Error("telebot error")
		},
	}
	b, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("could not create Telegram bot: %w", err)
	}
	return b, nil
}

// SendMessage sends a text message to the specified chat (user, group or channel).
func (tba *TelebotAdapter) SendMessage(to telebot.Recipient, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(to, text, options)
	return err
}
