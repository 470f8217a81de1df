package email

import "context"

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(ctx context.Context, email *Email) error

	// SendTemplate отправляет email по шаблону
	SendTemplate(ctx context.Context, to []string, subject string, templateName string, data TemplateData) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// TemplateRenderer определяет интерфейс для рендеринга шаблонов
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}

// NoopProvider ничего не отправляет. Используется, когда SMTP не настроен, и в тестах.
type NoopProvider struct{}

func (NoopProvider) Send(ctx context.Context, email *Email) error { return nil }
func (NoopProvider) SendTemplate(ctx context.Context, to []string, subject string, templateName string, data TemplateData) error {
	return nil
}
func (NoopProvider) Validate() error { return nil }
