package service

import "context"

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer sends transactional email. Implementations may be absent (nil) when
// outbound mail is not configured; callers must treat send failures as
// non-fatal.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
