package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/iolobot/iolo/internal/log"
)

// WelcomeMessage is the static /start reply.
const WelcomeMessage = "Hello! I am a Q&A bot for the Grade 11 Biology curriculum.\n\n" +
	"Please ask me a question, and I will find the answer for you from the textbook."

// ApologyMessage is the fixed user-visible reply for any failed message
// unit. Users never see internal error detail.
const ApologyMessage = "I'm sorry, an unexpected error occurred while processing your request. Please try again later."

// State labels the per-message unit's lifecycle for structured logging.
// Terminal states: welcome_sent, ignored, answered, failed.
type State string

const (
	StateReceived    State = "received"
	StateWelcomeSent State = "welcome_sent"
	StateIgnored     State = "ignored"
	StateProcessing  State = "processing"
	StateAnswered    State = "answered"
	StateFailed      State = "failed"
)

// Replier delivers one outbound message to a chat.
type Replier interface {
	SendReply(ctx context.Context, chatID int64, text string) error
}

// Presence shows the "composing" indicator for a chat. The indicator
// expires on its own shortly after the last action, so showing presence for
// a span of work means resending it until the span ends.
type Presence interface {
	SendTyping(ctx context.Context, chatID int64) error
}

// QueryProcessor answers one free-text question. Implemented by
// rag.Pipeline; faked in tests.
type QueryProcessor interface {
	ProcessQuery(ctx context.Context, query string) (string, error)
}

// Dispatcher is the bot-facing layer: it routes inbound text events and runs
// each non-ignored one as an independent unit of work.
//
// Concurrency: every unit gets its own goroutine; there is no ordering
// guarantee between chats, and none between two messages from the same chat
// either (messages are stateless, so interleaving is harmless). In-flight
// units are tracked so shutdown can drain them.
//
// Failure isolation: a unit's failure is converted to the fixed apology at
// this boundary and never escapes it.
type Dispatcher struct {
	pipeline QueryProcessor
	replier  Replier
	presence Presence
	logger   log.Logger
	router   *Router

	wg sync.WaitGroup
}

// NewDispatcher builds the dispatcher and its routing table.
func NewDispatcher(pipeline QueryProcessor, replier Replier, presence Presence, logger log.Logger) *Dispatcher {
	d := &Dispatcher{
		pipeline: pipeline,
		replier:  replier,
		presence: presence,
		logger:   logger,
		router:   &Router{},
	}

	// Evaluation order matters: the exact /start command first, then the
	// catch-all for other commands, then everything else as a query.
	d.router.Add(
		func(text string) bool { return text == "/start" },
		d.handleStart,
	)
	d.router.Add(
		func(text string) bool { return strings.HasPrefix(text, "/") },
		d.handleIgnored,
	)
	d.router.Add(
		func(string) bool { return true },
		d.handleQuery,
	)

	return d
}

// HandleMessage routes one inbound event and schedules its unit of work.
// It returns immediately; the unit runs concurrently.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg Message) {
	d.router.Dispatch(ctx, msg)
}

// Wait blocks until every in-flight message unit has terminated. Called
// during shutdown after the inbound session stops.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// spawn runs one message unit in its own goroutine with panic containment.
// A panicking unit is logged and answered with the apology like any other
// failure; it must not take the session down.
func (d *Dispatcher) spawn(ctx context.Context, msg Message, unit func(ctx context.Context, logger log.Logger)) {
	logger := d.logger.With(
		"correlation_id", uuid.NewString(),
		"chat_id", msg.ChatID,
	)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("message unit panicked", "state", StateFailed, "panic", fmt.Sprint(r))
				d.reply(ctx, logger, msg.ChatID, ApologyMessage)
			}
		}()
		unit(ctx, logger)
	}()
}

// handleStart serves the exact /start command with the static welcome. The
// query pipeline is never invoked for it.
func (d *Dispatcher) handleStart(ctx context.Context, msg Message) {
	d.spawn(ctx, msg, func(ctx context.Context, logger log.Logger) {
		d.reply(ctx, logger, msg.ChatID, WelcomeMessage)
		logger.Info("session started", "state", StateWelcomeSent)
	})
}

// handleIgnored drops unknown commands: no reply, no processing.
func (d *Dispatcher) handleIgnored(_ context.Context, msg Message) {
	d.logger.Debug("command ignored", "chat_id", msg.ChatID, "state", StateIgnored)
}

// handleQuery runs the full pipeline for one question.
func (d *Dispatcher) handleQuery(ctx context.Context, msg Message) {
	d.spawn(ctx, msg, func(ctx context.Context, logger log.Logger) {
		logger.Info("query received", "state", StateReceived, "query_len", len(msg.Text))

		// Presence is scoped to the pipeline call: the cancel below and
		// the defer guarantee the indicator stops on every exit path.
		logger.Debug("processing query", "state", StateProcessing)
		typingCtx, stopTyping := context.WithCancel(ctx)
		defer stopTyping()
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.keepTyping(typingCtx, msg.ChatID, logger)
		}()

		answer, err := d.pipeline.ProcessQuery(ctx, msg.Text)
		stopTyping()

		if err != nil {
			logger.Error("query failed", "state", StateFailed, "error", err)
			d.reply(ctx, logger, msg.ChatID, ApologyMessage)
			return
		}

		d.reply(ctx, logger, msg.ChatID, answer)
		logger.Info("answer sent", "state", StateAnswered, "answer_len", len(answer))
	})
}

// reply delivers text to a chat. Delivery failure is a DispatchError: logged
// here, then the unit terminates cleanly. There is nothing further to tell
// the user on a channel we just failed to write to.
func (d *Dispatcher) reply(ctx context.Context, logger log.Logger, chatID int64, text string) {
	if err := d.replier.SendReply(ctx, chatID, text); err != nil {
		logger.Error("reply delivery failed", "error", &DispatchError{ChatID: chatID, Err: err})
	}
}
