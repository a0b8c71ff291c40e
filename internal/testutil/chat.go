package testutil

import (
	"context"
	"sync"
)

// Reply records one outbound message.
type Reply struct {
	ChatID int64
	Text   string
}

// FakeChat implements the dispatcher's Replier and Presence ports, recording
// replies and typing actions.
type FakeChat struct {
	// ReplyErr, when set, is returned from every Reply call.
	ReplyErr error

	mu      sync.Mutex
	replies []Reply
	typing  []int64
}

// SendReply records the outbound message.
func (f *FakeChat) SendReply(ctx context.Context, chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, Reply{ChatID: chatID, Text: text})
	return f.ReplyErr
}

// SendTyping records the presence action.
func (f *FakeChat) SendTyping(ctx context.Context, chatID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typing = append(f.typing, chatID)
	return nil
}

// Replies returns a copy of every recorded reply.
func (f *FakeChat) Replies() []Reply {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Reply, len(f.replies))
	copy(out, f.replies)
	return out
}

// TypingCount returns how many typing actions were sent for the chat.
func (f *FakeChat) TypingCount(chatID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, id := range f.typing {
		if id == chatID {
			n++
		}
	}
	return n
}
