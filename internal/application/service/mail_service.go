package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/steelwheel/dealership-api/pkg/apperror"
	"github.com/steelwheel/dealership-api/pkg/email"
)

// MailService handles ad-hoc outbound mail
type MailService struct {
	emailSvc *email.EmailService
}

// NewMailService creates a new mail service
func NewMailService(emailSvc *email.EmailService) *MailService {
	return &MailService{emailSvc: emailSvc}
}

// AttachmentInput carries a base64-encoded attachment from the API
type AttachmentInput struct {
	Filename    string
	ContentType string
	Content     string // base64
}

// SendInput represents an ad-hoc mail request
type SendInput struct {
	To         []string
	Subject    string
	Text       string
	HTML       string
	Attachment *AttachmentInput
}

// Send dispatches an ad-hoc message and returns the transport message ID
func (s *MailService) Send(ctx context.Context, input *SendInput) (string, error) {
	msg := &email.Message{
		To:      input.To,
		Subject: input.Subject,
		Text:    input.Text,
		HTML:    input.HTML,
	}

	if input.Attachment != nil {
		content, err := base64.StdEncoding.DecodeString(input.Attachment.Content)
		if err != nil {
			return "", apperror.NewBadRequestError("Attachment content is not valid base64")
		}
		msg.Attachment = &email.Attachment{
			Filename:    input.Attachment.Filename,
			ContentType: input.Attachment.ContentType,
			Content:     content,
		}
	}

	messageID, err := s.emailSvc.Send(msg)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperror.ErrMailDispatchFailed, err.Error())
	}

	return messageID, nil
}
