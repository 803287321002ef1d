package telegram

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/telebot.v3"
)

// ErrInvalidChat is returned by ParseChat for values that are neither a chat id
// nor a public @username.
var ErrInvalidChat = errors.New("invalid chat")

// Chat addresses a user, group or channel either by numeric chat id ("-100123")
// or by public username ("@channel"). The Bot API accepts both as chat_id.
type Chat string

// Recipient implements telebot.Recipient.
func (c Chat) Recipient() string { return string(c) }

func (c Chat) String() string { return string(c) }

// ParseChat accepts a non-zero integer chat id or an "@" username of 5 to 32
// letters, digits and underscores.
func ParseChat(s string) (Chat, error) {
	if len(s) > 1 && s[0] == '@' {
		name := s[1:]
		if len(name) < 5 || len(name) > 32 {
			return "", fmt.Errorf("%w %q: username must be 5-32 characters", ErrInvalidChat, s)
		}
		for _, r := range name {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
				return "", fmt.Errorf("%w %q: unexpected character %q", ErrInvalidChat, s, r)
			}
		}
		return Chat(s), nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id == 0 {
		return "", fmt.Errorf("%w %q: expected a chat id or @username", ErrInvalidChat, s)
	}
	return Chat(strconv.FormatInt(id, 10)), nil
}

// Client sends text messages to a Telegram chat.
type Client interface {
	SendMessage(to telebot.Recipient, text string, options *telebot.SendOptions) error
}
