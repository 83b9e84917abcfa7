package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/klepi21/barberians/internal/domain"
)

// Client клиент отправки почтовых уведомлений через SMTP.
// Отправка подтверждений не критична для бронирования: вызывающий код
// обязан трактовать ошибки клиента как некритичные.
type Client struct {
	addr         string
	from         string
	enabled      bool
	failedEmails prometheus.Counter
	log          Logger
}

// NewClient создает новый экземпляр почтового клиента.
// failedEmails может быть nil, тогда счетчик не ведется.
func NewClient(host string, port int, from string, enabled bool, failedEmails prometheus.Counter, log Logger) *Client {
	return &Client{
		addr:         fmt.Sprintf("%s:%d", host, port),
		from:         from,
		enabled:      enabled,
		failedEmails: failedEmails,
		log:          log,
	}
}

// SendBookingConfirmation отправляет клиенту письмо-подтверждение бронирования.
// Перед блокирующей отправкой проверяет отмену контекста.
func (c *Client) SendBookingConfirmation(ctx context.Context, conf BookingConfirmation) error {
	if !c.enabled {
		c.log.Info("Mailer disabled, skipping confirmation for booking_id=%d", conf.BookingID)
		return ErrDisabled
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: context cancelled: %v", ErrSend, err)
	}

	msg := c.buildConfirmation(conf)

	// net/smtp не принимает контекст, поэтому полагаемся на таймауты
	// соединения самого пакета
	err := smtp.SendMail(c.addr, nil, c.from, []string{conf.Email}, msg)
	if err != nil {
		if c.failedEmails != nil {
			c.failedEmails.Inc()
		}
		c.log.Error("Failed to send confirmation for booking_id=%d to %s: %v", conf.BookingID, conf.Email, err)
		return fmt.Errorf("%w: booking_id=%d: %v", ErrSend, conf.BookingID, err)
	}

	c.log.Info("Confirmation sent for booking_id=%d to %s", conf.BookingID, conf.Email)
	return nil
}

// buildConfirmation собирает RFC 5322 сообщение с темой и телом на греческом
func (c *Client) buildConfirmation(conf BookingConfirmation) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", c.from)
	fmt.Fprintf(&b, "To: %s\r\n", conf.Email)
	fmt.Fprintf(&b, "Subject: =?UTF-8?B?%s?=\r\n", encodeSubject(fmt.Sprintf("Επιβεβαίωση ραντεβού - %s", conf.ShopName)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "Γεια σου %s,\r\n\r\n", conf.FullName)
	fmt.Fprintf(&b, "Το ραντεβού σου επιβεβαιώθηκε:\r\n\r\n")
	fmt.Fprintf(&b, "Ημερομηνία: %s\r\n", conf.Date.Format(domain.DateFormat))
	fmt.Fprintf(&b, "Ώρα: %s\r\n", conf.StartTime)
	fmt.Fprintf(&b, "Μπαρμπέρης: %s\r\n", conf.Barber)
	fmt.Fprintf(&b, "Υπηρεσία: %s (%.2f€)\r\n\r\n", conf.Service, conf.Price)
	fmt.Fprintf(&b, "Σε περιμένουμε!\r\n%s\r\n", conf.ShopName)

	return []byte(b.String())
}

// encodeSubject кодирует тему письма в base64 для RFC 2047 заголовка
func encodeSubject(subject string) string {
	return base64.StdEncoding.EncodeToString([]byte(subject))
}
