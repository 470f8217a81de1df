package email

import "realty_backend/internal/config"

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// NewSMTPConfig собирает SMTPConfig из конфигурации приложения
func NewSMTPConfig(cfg config.EmailConfig) *SMTPConfig {
	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}
	return &SMTPConfig{
		Host:      cfg.SMTPHost,
		Port:      port,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
	}
}
