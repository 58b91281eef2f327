package mailer

import (
	"atelier/internal/notify"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

var (
	// ErrNoRecipient - у события нет адресата (например, заказ из магазина без email).
	ErrNoRecipient = errors.New("у уведомления нет получателя")
	// ErrNoTemplate - для пары тип/аудитория нет шаблона.
	ErrNoTemplate = errors.New("нет шаблона письма")
)

type letter struct {
	subject *template.Template
	body    *template.Template
}

type templateKey struct {
	typ      notify.EventType
	audience notify.Audience
}

var funcs = template.FuncMap{
	"inr": func(v int64) string { return fmt.Sprintf("₹%d", v) },
}

func newLetter(subject, body string) letter {
	return letter{
		subject: template.Must(template.New("subject").Funcs(funcs).Parse(subject)),
		body:    template.Must(template.New("body").Funcs(funcs).Parse(body)),
	}
}

var letters = map[templateKey]letter{
	{notify.EventCommissionSubmitted, notify.AudienceCustomer}: newLetter(
		"Заявка {{.TrackingCode}} принята",
		`Здравствуйте{{if .Name}}, {{.Name}}{{end}}!

Мы получили вашу заявку на портрет. Трек-номер: {{.TrackingCode}}.
Предварительная стоимость: {{inr .Amount}}. Итоговую сумму художник пришлет отдельным письмом.
`),
	{notify.EventCommissionSubmitted, notify.AudienceAdmin}: newLetter(
		"Новая заявка {{.TrackingCode}}",
		`Поступила заявка {{.TrackingCode}} от {{.Name}}{{if .Email}} ({{.Email}}){{end}}.
Предварительная стоимость: {{inr .Amount}}.
`),
	{notify.EventQuoteSent, notify.AudienceCustomer}: newLetter(
		"Стоимость заявки {{.TrackingCode}}",
		`Здравствуйте{{if .Name}}, {{.Name}}{{end}}!

Художник рассмотрел заявку {{.TrackingCode}}. Итоговая стоимость: {{inr .FinalTotal}}.
Для начала работы внесите аванс {{inr .Amount}} и загрузите подтверждение оплаты на странице отслеживания.
Остаток {{inr .RemainingAmount}} оплачивается после завершения работы.
`),
	{notify.EventProofReceived, notify.AudienceCustomer}: newLetter(
		"Подтверждение оплаты по {{.TrackingCode}} получено",
		`Мы получили подтверждение оплаты ({{.Stage}}) по {{.TrackingCode}} и проверим его в ближайшее время.
`),
	{notify.EventProofForReview, notify.AudienceAdmin}: newLetter(
		"Проверьте оплату {{.TrackingCode}}",
		`По {{.TrackingCode}} загружено подтверждение оплаты, этап {{.Stage}}.
`),
	{notify.EventPaymentDecided, notify.AudienceCustomer}: newLetter(
		`{{if eq .Outcome "approve"}}Оплата по {{.TrackingCode}} подтверждена{{else}}Оплата по {{.TrackingCode}} отклонена{{end}}`,
		`{{if eq .Outcome "approve"}}Оплата ({{.Stage}}) по {{.TrackingCode}} подтверждена. Спасибо!
{{else}}Подтверждение оплаты ({{.Stage}}) по {{.TrackingCode}} отклонено.{{if .Reason}}
Причина: {{.Reason}}{{end}}
Загрузите, пожалуйста, новое подтверждение.
{{end}}`),
	{notify.EventOrderPlaced, notify.AudienceCustomer}: newLetter(
		"Заказ {{.TrackingCode}} оформлен",
		`Здравствуйте{{if .Name}}, {{.Name}}{{end}}!

Заказ {{.TrackingCode}} на сумму {{inr .FinalTotal}} оформлен. Внесите аванс {{inr .Amount}}
и загрузите подтверждение оплаты на странице отслеживания. Остаток {{inr .RemainingAmount}} оплачивается после доставки.
`),
	{notify.EventOrderPlaced, notify.AudienceAdmin}: newLetter(
		"Новый заказ {{.TrackingCode}}",
		`Оформлен заказ {{.TrackingCode}}{{if .Name}} на имя {{.Name}}{{end}} на сумму {{inr .Amount}}.
`),
	{notify.EventStatusChanged, notify.AudienceCustomer}: newLetter(
		"Статус {{.TrackingCode}}: {{.Status}}",
		`Статус {{.TrackingCode}} изменился: {{.Status}}.{{if .CourierName}}
Служба доставки: {{.CourierName}}, номер отправления: {{.CourierTracking}}.{{end}}{{if .Reason}}
Комментарий: {{.Reason}}{{end}}{{if .Amount}}
К оплате: {{inr .Amount}}.{{end}}
`),
}

// Compose готовит письмо по событию. Письма администратору уходят на adminEmail.
func Compose(ev notify.Event, adminEmail string) (Message, error) {
	to := ev.Email
	if ev.Audience == notify.AudienceAdmin {
		to = adminEmail
	}
	if to == "" {
		return Message{}, ErrNoRecipient
	}

	l, ok := letters[templateKey{ev.Type, ev.Audience}]
	if !ok {
		return Message{}, fmt.Errorf("%s/%s: %w", ev.Type, ev.Audience, ErrNoTemplate)
	}

	var subject, body strings.Builder
	if err := l.subject.Execute(&subject, ev); err != nil {
		return Message{}, fmt.Errorf("ошибка шаблона темы %s: %w", ev.Type, err)
	}
	if err := l.body.Execute(&body, ev); err != nil {
		return Message{}, fmt.Errorf("ошибка шаблона письма %s: %w", ev.Type, err)
	}
	return Message{To: to, Subject: subject.String(), Body: body.String()}, nil
}
