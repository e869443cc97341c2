package descarga

import (
	"fmt"
	"html"
	"time"

	"galeana-pepper/internal/utils"
	"galeana-pepper/internal/utils/mailing"

	"go.uber.org/zap"
)

type (
	// Notifier tells the plant about rejected unloads. Implementations must not block the caller.
	Notifier interface {
		NotifyRechazo(folio uint, proveedor string, comentario string)
	}

	mailNotifier struct {
		mailer  mailing.Mailer
		to      string
		timeout time.Duration
		logger  *zap.Logger
	}

	nopNotifier struct{}
)

// NewMailNotifier mails rejections to the given address. With no address or no
// SMTP settings it returns a notifier that does nothing.
func NewMailNotifier(mailer mailing.Mailer, to string, logger *zap.Logger) Notifier {
	if mailer == nil || to == "" {
		return nopNotifier{}
	}
	return &mailNotifier{
		mailer:  mailer,
		to:      to,
		timeout: 30 * time.Second,
		logger:  logger,
	}
}

func (n *mailNotifier) NotifyRechazo(folio uint, proveedor string, comentario string) {
	subject := fmt.Sprintf("Descarga rechazada - folio %s", utils.FormatFolio(folio))
	body := fmt.Sprintf(
		"<p>La descarga del folio <b>%s</b> (proveedor %s) fue rechazada.</p><p>%s</p>",
		utils.FormatFolio(folio),
		html.EscapeString(proveedor),
		html.EscapeString(comentario),
	)

	go func() {
		done := make(chan error, 1)
		go func() { done <- n.mailer.SendMail(n.to, subject, body) }()

		select {
		case err := <-done:
			if err != nil {
				n.logger.Warn("failed to send rejection email", zap.Uint("folio", folio), zap.Error(err))
			}
		case <-time.After(n.timeout):
			n.logger.Warn("rejection email timed out", zap.Uint("folio", folio))
		}
	}()
}

func (nopNotifier) NotifyRechazo(uint, string, string) {}
