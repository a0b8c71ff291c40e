package bot

import "fmt"

// DispatchError reports that an outbound reply could not be delivered. It is
// logged inside the message unit and never propagated further.
type DispatchError struct {
	ChatID int64
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("reply delivery failed for chat %d: %v", e.ChatID, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
