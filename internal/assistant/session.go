package assistant

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	Greeting        = "Hello! How can I help you?"
	FallbackMessage = "Sorry, something went wrong. Please try again later."
)

type Message struct {
	Text   string
	IsUser bool
}

// Chatter sends one message to the relay. *relayclient.Client satisfies it.
type Chatter interface {
	Chat(ctx context.Context, input string) (string, error)
}

// Session is the message history of one chat window.
type Session struct {
	chatter Chatter
	logger  zerolog.Logger

	mu       sync.Mutex
	messages []Message
}

func NewSession(chatter Chatter, logger zerolog.Logger) *Session {
	return &Session{
		chatter:  chatter,
		logger:   logger,
		messages: []Message{{Text: Greeting}},
	}
}

// Send records the user's message and the assistant's answer. Blank input is
// ignored and reports false. Failures are logged and shown to the user only
// as FallbackMessage.
func (s *Session) Send(ctx context.Context, input string) (Message, bool) {
	if strings.TrimSpace(input) == "" {
		return Message{}, false
	}
	s.append(Message{Text: input, IsUser: true})

	reply, err := s.chatter.Chat(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Msg("Chat request failed")
		msg := Message{Text: FallbackMessage}
		s.append(msg)
		return msg, true
	}
	if reply == "" {
		return Message{}, true
	}

	msg := Message{Text: reply}
	s.append(msg)
	return msg, true
}

func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) append(m Message) {
	s.mu.Lock()
	s.messages = append(s.messages, m)
	s.mu.Unlock()
}
