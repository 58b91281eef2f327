package mailer

import (
	"atelier/internal/config"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=mailer.go -destination=./mocks/mailer_mock.go -package=mocks Mailer

// Message - готовое к отправке письмо.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer доставляет письма.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ErrUnavailable возвращается, пока SMTP-сервер считается недоступным.
var ErrUnavailable = errors.New("почтовый сервер недоступен")

// New выбирает реализацию по конфигурации: без SMTP_HOST письма только пишутся в лог.
func New(cfg config.MailConfig) Mailer {
	if cfg.SMTPHost == "" {
		log.Println("SMTP не настроен, письма будут только логироваться.")
		return LogMailer{}
	}
	return NewSMTPMailer(cfg)
}

// LogMailer пишет письма в лог вместо отправки.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	log.Printf("Письмо для %s: %s\n%s", msg.To, msg.Subject, msg.Body)
	return nil
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer отправляет письма через SMTP. После серии ошибок автомат
// размыкается и письма сразу получают ErrUnavailable.
type SMTPMailer struct {
	addr    string
	from    string
	auth    smtp.Auth
	send    sendFunc
	breaker *gobreaker.CircuitBreaker
	tracer  trace.Tracer
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	return newSMTPMailer(cfg, auth, smtp.SendMail)
}

func newSMTPMailer(cfg config.MailConfig, auth smtp.Auth, send sendFunc) *SMTPMailer {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("Автомат %s: %s -> %s", name, from, to)
		},
	})
	return &SMTPMailer{
		addr:    net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		from:    cfg.From,
		auth:    auth,
		send:    send,
		breaker: breaker,
		tracer:  otel.Tracer("mailer"),
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	_, span := m.tracer.Start(ctx, "Mailer.Send")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := m.breaker.Execute(func() (interface{}, error) {
		return nil, m.send(m.addr, m.auth, m.from, []string{msg.To}, render(m.from, msg))
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s: %w", m.addr, ErrUnavailable)
	}
	if err != nil {
		return fmt.Errorf("ошибка отправки письма на %s: %w", msg.To, err)
	}
	return nil
}

// render собирает письмо в формате RFC 5322 с UTF-8 телом.
func render(from string, msg Message) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	b.WriteString(msg.Body)
	return b.Bytes()
}
