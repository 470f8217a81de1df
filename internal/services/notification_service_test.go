package services_test

import (
	"context"
	"testing"

	"realty_backend/internal/email"
	"realty_backend/internal/services"
	"realty_backend/internal/services/dto"
	"realty_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_NotifyInquiry(t *testing.T) {
	provider := &helpers.RecordingEmailProvider{}
	svc := services.NewNotificationService(provider)

	err := svc.NotifyInquiry(context.Background(), &dto.InquiryNotification{
		RealtorName:  "Rita",
		RealtorEmail: "rita@example.com",
		BuyerName:    "Bob",
		BuyerEmail:   "bob@example.com",
		BuyerPhone:   "09123456789",
		Address:      "12 Maple Ave",
		City:         "Halifax",
		Message:      "Is it still available?",
	})
	require.NoError(t, err)

	sent := provider.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"rita@example.com"}, sent[0].To)
	assert.Equal(t, "New inquiry about 12 Maple Ave", sent[0].Subject)
	assert.Equal(t, email.TemplateInquiry, sent[0].Template)
	assert.Equal(t, "Is it still available?", sent[0].Data["Message"])

	err = svc.NotifyInquiry(context.Background(), &dto.InquiryNotification{Address: "x"})
	assert.Error(t, err)
	assert.Len(t, provider.Sent(), 1)
}
