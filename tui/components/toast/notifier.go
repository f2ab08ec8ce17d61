package toast

import tea "github.com/charmbracelet/bubbletea"

const queueSize = 16

// Notifier delivers notifications to a running Bubble Tea program. It is
// safe to call from any goroutine and never blocks: when the queue is full
// the notification is dropped.
type Notifier struct {
	queue chan ShowMsg
}

// NewNotifier creates a notifier with an empty queue.
func NewNotifier() *Notifier {
	return &Notifier{queue: make(chan ShowMsg, queueSize)}
}

// NotifySuccess implements session.Notifier.
func (n *Notifier) NotifySuccess(message string) {
	n.post(ShowMsg{Kind: Success, Text: message})
}

// NotifyFailure implements session.Notifier.
func (n *Notifier) NotifyFailure(message string) {
	n.post(ShowMsg{Kind: Failure, Text: message})
}

func (n *Notifier) post(msg ShowMsg) {
	select {
	case n.queue <- msg:
	default:
	}
}

// Listen returns a command that waits for the next notification. The model
// re-issues it after every ShowMsg.
func (n *Notifier) Listen() tea.Cmd {
	return func() tea.Msg {
		return <-n.queue
	}
}
