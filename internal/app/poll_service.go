// internal/app/poll_service.go
package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/domain/failure"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"
)

const (
	NoNewStatusesMessage = "Нет новых статусов"
	failureMessagePrefix = "Сбой в работе программы: "
)

// PollService runs the fetch, validate, interpret and notify steps of one poll cycle
// and keeps the state carried between cycles. It is not safe for concurrent use.
type PollService struct {
	statusClient homework.StatusClient
	notifier     Notifier
	logger       *logrus.Entry
	newCycleID   func() string

	timestamp   int64  // from_date of the next request
	lastMessage string // Text of the last notification, for de-duplication
}

func NewPollService(
	sc homework.StatusClient,
	notifier Notifier,
	logger *logrus.Entry,
	fromDate int64,
) *PollService {
	return &PollService{
		statusClient: sc,
		notifier:     notifier,
		logger:       logger,
		newCycleID:   uuid.NewString,
		timestamp:    fromDate,
	}
}

// Cursor returns the from_date the next cycle will request.
func (s *PollService) Cursor() int64 { return s.timestamp }

// LastMessage returns the most recently notified text.
func (s *PollService) LastMessage() string { return s.lastMessage }

// RunCycle performs one poll cycle. Errors never escape: they are logged and, unless
// informational, reported to the chat once.
func (s *PollService) RunCycle(ctx context.Context) {
	cycleID := s.newCycleID()
	ctx = notification.WithCycleID(ctx, cycleID)
	logCtx := s.logger.WithFields(logrus.Fields{"cycle_id": cycleID, "from_date": s.timestamp})
	logCtx.Debug("Polling homework statuses")

	message, err := s.check(ctx, logCtx)
	if err != nil {
		s.handleFailure(ctx, logCtx, err)
		return
	}

	if message == s.lastMessage {
		logCtx.Debug("Status unchanged, notification skipped")
		return
	}
	logCtx.WithField("message", message).Info("Status changed")
	s.notifier.Notify(ctx, message)
	s.lastMessage = message
}

func (s *PollService) check(ctx context.Context, logCtx *logrus.Entry) (string, error) {
	raw, err := s.statusClient.Fetch(ctx, s.timestamp)
	if err != nil {
		return "", err
	}

	if next, ok := homework.NextCursor(raw); ok && next > s.timestamp {
		logCtx.WithField("next_from_date", next).Debug("Advancing cursor")
		s.timestamp = next
	}

	items, err := homework.Validate(raw)
	if err != nil {
		return "", err
	}
	if items.Len() == 0 {
		return NoNewStatusesMessage, nil
	}
	// Only the most recent work item is announced.
	item, err := items.First()
	if err != nil {
		return "", err
	}
	return homework.Interpret(item)
}

func (s *PollService) handleFailure(ctx context.Context, logCtx *logrus.Entry, err error) {
	if ctx.Err() != nil {
		logCtx.WithError(err).Debug("Cycle interrupted by shutdown")
		return
	}

	if failure.KindOf(err) == failure.KindInformational {
		logCtx.WithError(err).Warn("Status API response is incomplete, skipping cycle")
		return
	}

	logCtx.WithError(err).Error("Poll cycle failed")
	message := failureMessagePrefix + err.Error()
	if message == s.lastMessage {
		logCtx.Debug("Failure already reported, notification skipped")
		return
	}
	s.notifier.Notify(ctx, message)
	s.lastMessage = message
}
