package services

import (
	"context"
	"fmt"

	"realty_backend/internal/email"
	"realty_backend/internal/services/dto"
)

type NotificationService interface {
	NotifyInquiry(ctx context.Context, notice *dto.InquiryNotification) error
}

type notificationService struct {
	provider email.Provider
}

func NewNotificationService(provider email.Provider) NotificationService {
	return &notificationService{provider: provider}
}

func (s *notificationService) NotifyInquiry(ctx context.Context, notice *dto.InquiryNotification) error {
	if notice.RealtorEmail == "" {
		return fmt.Errorf("realtor has no email address")
	}

	subject := fmt.Sprintf("New inquiry about %s", notice.Address)
	data := email.TemplateData{
		"RealtorName": notice.RealtorName,
		"BuyerName":   notice.BuyerName,
		"BuyerEmail":  notice.BuyerEmail,
		"BuyerPhone":  notice.BuyerPhone,
		"Address":     notice.Address,
		"City":        notice.City,
		"Message":     notice.Message,
	}

	return s.provider.SendTemplate(ctx, []string{notice.RealtorEmail}, subject, email.TemplateInquiry, data)
}
