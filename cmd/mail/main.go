package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/nexplant/production-manager/backend/internal/config"
	"github.com/nexplant/production-manager/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tidwall/gjson"
	"github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
)

type mailTemplate struct {
	file    string
	subject string
}

var mailTemplates = map[domain.MailType]mailTemplate{
	domain.MailWelcomeCompany: {"./templates/welcome_company_email.html", "Nexplant - Your company account"},
	domain.MailCreateUser:     {"./templates/new_account_email.html", "Nexplant - Your account"},
	domain.MailResetPassword:  {"./templates/reset_password_otp_email.html", "Nexplant - Reset your password"},
}

// mailContext is what every template renders: the queued data plus the
// dashboard address for links.
type mailContext struct {
	DashboardURL string
	Data         map[string]any
}

func buildMail(cfg *config.Config, tmpls map[domain.MailType]*template.Template, raw []byte) (*mail.Msg, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("decode mail message: invalid json")
	}

	mailType := domain.MailType(gjson.GetBytes(raw, "type").String())
	to := gjson.GetBytes(raw, "to").String()
	data, _ := gjson.GetBytes(raw, "data").Value().(map[string]any)

	tmpl, ok := tmpls[mailType]
	if !ok {
		return nil, fmt.Errorf("unsupported mail type %q", mailType)
	}

	msg := mail.NewMsg()
	if err := msg.From(cfg.Email.SMTP.Username); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	if err := msg.SetBodyHTMLTemplate(tmpl, mailContext{DashboardURL: cfg.Email.DashboardURL, Data: data}); err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}
	msg.Subject(mailTemplates[mailType].subject)

	return msg, nil
}

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		return
	}

	tmpls := make(map[domain.MailType]*template.Template, len(mailTemplates))
	for typ, mt := range mailTemplates {
		tmpl, err := template.ParseFiles(mt.file)
		if err != nil {
			logger.Error("failed to parse mail template", slog.String("file", mt.file), slog.String("error", err.Error()))
			return
		}
		tmpls[typ] = tmpl
	}

	/**********************************************
	 * smtp client
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("failed to create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("failed to connect to mail server", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.Queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		logger.Error("failed to declare queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // consumer tag assigned by the broker
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to consume queue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	// smtp providers throttle bursts, keep below their limit
	limiter := rate.NewLimiter(rate.Limit(max(cfg.Email.SMTP.SendRate, 1)), 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-msgs:
				if !ok {
					logger.Error("delivery channel closed")
					return
				}

				msg, err := buildMail(cfg, tmpls, delivery.Body)
				if err != nil {
					logger.Error("dropping mail message", slog.String("error", err.Error()))
					_ = delivery.Nack(false, false)
					continue
				}

				if err := limiter.Wait(ctx); err != nil {
					_ = delivery.Nack(false, true)
					return
				}

				if err := client.DialAndSend(msg); err != nil {
					logger.Error("failed to send mail", slog.String("error", err.Error()))
					_ = delivery.Nack(false, true) // requeue
					continue
				}

				logger.Info("mail sent")
				_ = delivery.Ack(false)
			}
		}
	}()

	logger.Info("waiting for messages (CTRL+C to quit)")
	<-sigChan

	logger.Info("shutting down mail worker")
	cancel()
	wg.Wait()
	logger.Info("mail worker stopped")
}
