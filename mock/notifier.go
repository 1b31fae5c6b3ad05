package mock

import "podnote"

var _ podnote.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of podnote.Notifier that records
// every message it receives.
type Notifier struct {
	Messages []string
}

func (n *Notifier) Notify(message string) {
	n.Messages = append(n.Messages, message)
}
