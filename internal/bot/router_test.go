package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_FirstMatchWins(t *testing.T) {
	var hit string
	r := &Router{}
	r.Add(func(text string) bool { return text == "/start" }, func(context.Context, Message) { hit = "start" })
	r.Add(func(text string) bool { return strings.HasPrefix(text, "/") }, func(context.Context, Message) { hit = "command" })
	r.Add(func(string) bool { return true }, func(context.Context, Message) { hit = "query" })

	tests := []struct {
		text string
		want string
	}{
		{"/start", "start"},
		{"/help", "command"},
		{"/startx", "command"},
		{"what is osmosis?", "query"},
		{"", "query"},
	}

	for _, tt := range tests {
		hit = ""
		matched := r.Dispatch(context.Background(), Message{ChatID: 1, Text: tt.text})
		assert.True(t, matched, "text %q", tt.text)
		assert.Equal(t, tt.want, hit, "text %q", tt.text)
	}
}

func TestRouter_NoMatch(t *testing.T) {
	r := &Router{}
	r.Add(func(text string) bool { return text == "only-this" }, func(context.Context, Message) {
		t.Fatal("handler must not run")
	})

	assert.False(t, r.Dispatch(context.Background(), Message{Text: "something else"}))
}

func TestRouter_EmptyRouterDropsEverything(t *testing.T) {
	r := &Router{}
	assert.False(t, r.Dispatch(context.Background(), Message{Text: "anything"}))
}
