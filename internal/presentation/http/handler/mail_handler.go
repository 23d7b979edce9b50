package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/steelwheel/dealership-api/internal/application/service"
	"github.com/steelwheel/dealership-api/internal/presentation/http/dto/request"
	"github.com/steelwheel/dealership-api/internal/presentation/http/dto/response"
)

// MailHandler handles ad-hoc mail HTTP requests
type MailHandler struct {
	mailService *service.MailService
}

// NewMailHandler creates a new mail handler
func NewMailHandler(mailService *service.MailService) *MailHandler {
	return &MailHandler{mailService: mailService}
}

// Send handles ad-hoc mail dispatch
// @Summary Send mail
// @Description Send an ad-hoc email with optional attachment
// @Tags mail
// @Accept json
// @Produce json
// @Param request body request.SendMailRequest true "Mail data"
// @Success 200 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /mail/send [post]
func (h *MailHandler) Send(c *gin.Context) {
	var req request.SendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.SendInput{
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	}
	if req.Attachment != nil {
		input.Attachment = &service.AttachmentInput{
			Filename:    req.Attachment.Filename,
			ContentType: req.Attachment.ContentType,
			Content:     req.Attachment.Content,
		}
	}

	messageID, err := h.mailService.Send(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Mail sent", gin.H{"message_id": messageID})
}
