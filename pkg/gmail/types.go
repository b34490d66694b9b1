package gmail

import "time"

// Message is a simplified Gmail message: headers plus the snippet body.
type Message struct {
	ID         string
	Sender     string
	Subject    string
	Body       string
	ReceivedAt time.Time
}
