package chat

import "time"

// replyMsg is sent when a submitted turn has been resolved.
type replyMsg struct {
	Err error
}

// typingTickMsg animates the typing indicator while a reply is pending.
type typingTickMsg time.Time
