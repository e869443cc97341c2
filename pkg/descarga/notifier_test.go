package descarga

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type chanMailer struct {
	sent chan string
	err  error
}

func (m *chanMailer) SendMail(to string, subject string, body string) error {
	m.sent <- to + "|" + subject + "|" + body
	return m.err
}

func TestMailNotifierSendsInBackground(t *testing.T) {
	defer goleak.VerifyNone(t)

	mailer := &chanMailer{sent: make(chan string, 1)}
	n := NewMailNotifier(mailer, "planta@example.com", zap.NewNop())
	n.NotifyRechazo(7, "P-001", "<b>basura</b>")

	select {
	case msg := <-mailer.sent:
		assert.True(t, strings.HasPrefix(msg, "planta@example.com|Descarga rechazada - folio 0007|"))
		assert.Contains(t, msg, "&lt;b&gt;basura&lt;/b&gt;")
	case <-time.After(time.Second):
		t.Fatal("mail was not sent")
	}
	// let the sender goroutines observe the result
	time.Sleep(20 * time.Millisecond)
}

func TestMailNotifierSwallowsErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	mailer := &chanMailer{sent: make(chan string, 1), err: errors.New("smtp down")}
	n := NewMailNotifier(mailer, "planta@example.com", zap.NewNop())
	n.NotifyRechazo(1, "P-001", "x")

	<-mailer.sent
	time.Sleep(20 * time.Millisecond)
}

func TestMailNotifierWithoutAddressIsNoop(t *testing.T) {
	mailer := &chanMailer{sent: make(chan string, 1)}
	n := NewMailNotifier(mailer, "", zap.NewNop())
	n.NotifyRechazo(1, "P-001", "x")

	assert.IsType(t, nopNotifier{}, n)
	assert.Empty(t, mailer.sent)
}
