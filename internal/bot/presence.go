package bot

import (
	"context"
	"time"

	"github.com/iolobot/iolo/internal/log"
)

// typingRefresh is how often the "composing" action is resent while a query
// is being processed. Telegram expires a chat action roughly five seconds
// after it was sent, so refreshing under that keeps the indicator visible
// and stopping the refresh clears it.
const typingRefresh = 4 * time.Second

// keepTyping shows the typing indicator for chatID until ctx is cancelled.
// Send failures are logged at debug and otherwise ignored: presence is
// cosmetic and must never affect the unit's outcome.
func (d *Dispatcher) keepTyping(ctx context.Context, chatID int64, logger log.Logger) {
	if err := d.presence.SendTyping(ctx, chatID); err != nil {
		logger.Debug("typing action failed", "error", err)
	}

	ticker := time.NewTicker(typingRefresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.presence.SendTyping(ctx, chatID); err != nil {
				logger.Debug("typing action failed", "error", err)
			}
		}
	}
}
