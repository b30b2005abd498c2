package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubChatter struct {
	reply string
	err   error
	calls int
}

func (s *stubChatter) Chat(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestNewSession_StartsWithGreeting(t *testing.T) {
	s := NewSession(&stubChatter{}, zerolog.Nop())
	require.Equal(t, []Message{{Text: Greeting}}, s.Messages())
}

func TestSend_AppendsUserAndReply(t *testing.T) {
	s := NewSession(&stubChatter{reply: "You had 1,240 likes."}, zerolog.Nop())

	msg, sent := s.Send(context.Background(), "How many likes last week?")
	require.True(t, sent)
	require.Equal(t, Message{Text: "You had 1,240 likes."}, msg)
	require.Equal(t, []Message{
		{Text: Greeting},
		{Text: "How many likes last week?", IsUser: true},
		{Text: "You had 1,240 likes."},
	}, s.Messages())
}

func TestSend_IgnoresBlankInput(t *testing.T) {
	chatter := &stubChatter{reply: "x"}
	s := NewSession(chatter, zerolog.Nop())

	_, sent := s.Send(context.Background(), "   ")
	require.False(t, sent)
	require.Zero(t, chatter.calls)
	require.Len(t, s.Messages(), 1)
}

func TestSend_FailureShowsFallbackOnly(t *testing.T) {
	s := NewSession(&stubChatter{err: errors.New("500 Internal Server Error - secret detail")}, zerolog.Nop())

	msg, sent := s.Send(context.Background(), "hi")
	require.True(t, sent)
	require.Equal(t, FallbackMessage, msg.Text)

	for _, m := range s.Messages() {
		require.NotContains(t, m.Text, "secret detail")
	}
}

func TestSend_EmptyReplyAddsNothing(t *testing.T) {
	s := NewSession(&stubChatter{reply: ""}, zerolog.Nop())

	_, sent := s.Send(context.Background(), "hi")
	require.True(t, sent)
	require.Len(t, s.Messages(), 2)
}

func TestMessages_ReturnsCopy(t *testing.T) {
	s := NewSession(&stubChatter{}, zerolog.Nop())
	msgs := s.Messages()
	msgs[0].Text = "changed"
	require.Equal(t, Greeting, s.Messages()[0].Text)
}
