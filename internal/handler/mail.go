package handler

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/nexplant/production-manager/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// publishMail hands a message to the mail worker through the queue.
func (h *Handler) publishMail(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		h.config.RabbitMQ.Queue,
		true,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
