package mailer

import "errors"

var (
	// ErrDisabled возвращается при попытке отправки через выключенный клиент
	ErrDisabled = errors.New("mailer client: sending disabled by configuration")

	// ErrSend возвращается при ошибке доставки письма на SMTP сервер
	ErrSend = errors.New("mailer client: failed to send message")
)
