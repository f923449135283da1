package email

// Email is an inbound message. It is created once and read-only for the
// whole pipeline.
type Email struct {
	ID        string
	From      string
	Subject   string
	Body      string
	Timestamp string // ISO-8601
}

func NewEmail(id, from, subject, body, timestamp string) *Email {
	return &Email{
		ID:        id,
		From:      from,
		Subject:   subject,
		Body:      body,
		Timestamp: timestamp,
	}
}
