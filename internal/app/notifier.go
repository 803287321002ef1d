// internal/app/notifier.go
package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"

	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"
)

// Telegram allows roughly one message per second to the same chat.
const sendInterval = time.Second

// Notifier delivers a message to the configured chat. Delivery failures are logged
// and never returned.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// ChatNotifier implements Notifier on top of a Telegram client.
type ChatNotifier struct {
	telegramClient domainTelegram.Client
	chat           domainTelegram.Chat
	limiter        *rate.Limiter
	deliveries     notification.Repository // Optional journal, may be nil
	logger         *logrus.Entry
}

func NewChatNotifier(
	tc domainTelegram.Client,
	chat domainTelegram.Chat,
	deliveries notification.Repository,
	logger *logrus.Entry,
) *ChatNotifier {
	return &ChatNotifier{
		telegramClient: tc,
		chat:           chat,
		limiter:        rate.NewLimiter(rate.Every(sendInterval), 1),
		deliveries:     deliveries,
		logger:         logger,
	}
}

func (n *ChatNotifier) Notify(ctx context.Context, message string) {
	logCtx := n.logger.WithField("chat_id", n.chat)
	cycleID, _ := notification.CycleIDFromContext(ctx)
	if cycleID != "" {
		logCtx = logCtx.WithField("cycle_id", cycleID)
	}
	logCtx.WithField("message", message).Info("Sending message to Telegram")

	err := n.limiter.Wait(ctx)
	if err == nil {
		err = n.telegramClient.SendMessage(n.chat, message, &telebot.SendOptions{DisableWebPagePreview: true})
	}

	d := &notification.Delivery{
		ChatID:  n.chat.String(),
		CycleID: cycleID,
		Message: message,
		Status:  notification.DeliverySent,
	}
	if err != nil {
		logCtx.WithError(err).Error("Message was not sent")
		d.Status = notification.DeliveryFailed
		d.Error = sql.NullString{String: err.Error(), Valid: true}
	} else {
		logCtx.Info("Message sent successfully")
	}

	if n.deliveries == nil {
		return
	}
	// The journal outlives a cancelled cycle context.
	journalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := n.deliveries.CreateDelivery(journalCtx, d); err != nil {
		logCtx.WithError(err).Warn("Failed to record notification delivery")
	}
}
