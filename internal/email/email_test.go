package email

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"realty_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplates_InquiryEscapesInput(t *testing.T) {
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)
	assert.Equal(t, []string{TemplateInquiry}, tm.TemplateNames())

	html, err := tm.Render(TemplateInquiry, TemplateData{
		"RealtorName": "Rita",
		"BuyerName":   "Bob",
		"BuyerEmail":  "bob@example.com",
		"BuyerPhone":  "09123456789",
		"Address":     "12 Maple Ave",
		"City":        "Halifax",
		"Message":     "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Hello Rita")
	assert.Contains(t, html, "12 Maple Ave, Halifax")
	assert.Contains(t, html, "bob@example.com, 09123456789")
	assert.NotContains(t, html, "<script>")

	_, err = tm.Render("missing", nil)
	assert.ErrorContains(t, err, "template not found")
}

func TestTemplateManager_AddTemplateRejectsBrokenSyntax(t *testing.T) {
	tm := NewTemplateManager()
	assert.Error(t, tm.AddTemplate("broken", "{{.Name"))
	assert.Empty(t, tm.TemplateNames())
}

func TestSMTPProvider_Validate(t *testing.T) {
	p := NewSMTPProvider(NewSMTPConfig(config.EmailConfig{}), nil)
	assert.ErrorContains(t, p.Validate(), "host")

	p = NewSMTPProvider(NewSMTPConfig(config.EmailConfig{SMTPHost: "smtp.example.com"}), nil)
	assert.ErrorContains(t, p.Validate(), "sender")

	cfg := NewSMTPConfig(config.EmailConfig{SMTPHost: "smtp.example.com", FromEmail: "noreply@example.com"})
	assert.Equal(t, 587, cfg.Port)
	assert.NoError(t, NewSMTPProvider(cfg, nil).Validate())
}

func TestSMTPProvider_SendTemplateRequiresRenderer(t *testing.T) {
	cfg := NewSMTPConfig(config.EmailConfig{SMTPHost: "smtp.example.com", FromEmail: "noreply@example.com"})
	p := NewSMTPProvider(cfg, nil)

	err := p.SendTemplate(context.Background(), []string{"a@example.com"}, "s", TemplateInquiry, nil)
	assert.ErrorContains(t, err, "renderer")

	err = p.Send(context.Background(), &Email{Subject: "no recipients"})
	assert.ErrorContains(t, err, "no recipients")
}

func TestSMTPProvider_BuildMessage(t *testing.T) {
	cfg := NewSMTPConfig(config.EmailConfig{
		SMTPHost:  "smtp.example.com",
		FromEmail: "noreply@example.com",
		FromName:  "Realty",
	})
	p := NewSMTPProvider(cfg, nil)

	msg := p.buildMessage(&Email{
		To:       []string{"rita@example.com"},
		Subject:  "New inquiry",
		Body:     "plain body",
		HTMLBody: "<p>html body</p>",
	})

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "To: rita@example.com")
	assert.Contains(t, raw, "Subject: New inquiry")
	assert.Contains(t, raw, `"Realty" <noreply@example.com>`)
	assert.Contains(t, raw, "multipart/alternative")
	assert.True(t, strings.Contains(raw, "plain body") && strings.Contains(raw, "html body"))
}
