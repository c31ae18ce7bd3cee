package mailer

import "sync"

// SentMessage is one Send call seen by a MockMailer.
type SentMessage struct {
	To       string
	Template string
	Data     any
}

// MockMailer records messages instead of delivering them. After FailWith it
// rejects every message with that error and records nothing.
type MockMailer struct {
	mu   sync.Mutex
	sent []SentMessage
	err  error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.sent = append(m.sent, SentMessage{To: recipient, Template: templateFile, Data: data})

	return nil
}

// FailWith makes later sends fail with err. A nil err restores delivery.
func (m *MockMailer) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

// Sent returns the recorded messages in send order.
func (m *MockMailer) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]SentMessage(nil), m.sent...)
}

// SentTo returns the templates sent to recipient, in send order.
func (m *MockMailer) SentTo(recipient string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var templates []string
	for _, msg := range m.sent {
		if msg.To == recipient {
			templates = append(templates, msg.Template)
		}
	}

	return templates
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = nil
	m.err = nil
}
