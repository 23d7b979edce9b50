package request

// AttachmentRequest carries a base64-encoded attachment
type AttachmentRequest struct {
	Filename    string `json:"filename" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required,max=100"`
	Content     string `json:"content" binding:"required"` // base64
}

// SendMailRequest represents an ad-hoc mail request
type SendMailRequest struct {
	To         []string           `json:"to" binding:"required,min=1,dive,email"`
	Subject    string             `json:"subject" binding:"required,max=255"`
	Text       string             `json:"text" binding:"required"`
	HTML       string             `json:"html"`
	Attachment *AttachmentRequest `json:"attachment"`
}
