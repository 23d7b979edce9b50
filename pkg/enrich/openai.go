// Package enrich generates an optional sales note for invoice documents
// using the OpenAI chat completion API. Enrichment is best effort; callers
// treat a failure as "no note" and render the document without it.
package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Config configures the OpenAI enricher
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
}

// Summary describes a sale for the enrichment prompt
type Summary struct {
	CustomerName  string
	VehicleLines  []string // e.g. "2022 Toyota Land Cruiser"
	TotalDisplay  string   // formatted total, e.g. "JMD $1,725,000.00"
	InvoiceNumber string
}

// Enricher produces a short sales note for an invoice
type Enricher interface {
	SalesNote(ctx context.Context, summary Summary) (string, error)
}

// OpenAIEnricher implements Enricher against the OpenAI API
type OpenAIEnricher struct {
	client *openai.Client
	config Config
}

// NewOpenAIEnricher creates an enricher. A nil enricher is returned when no
// API key is configured so callers can skip enrichment entirely.
func NewOpenAIEnricher(config Config) *OpenAIEnricher {
	if config.APIKey == "" {
		return nil
	}
	if config.Model == "" {
		config.Model = openai.GPT4oMini
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = 200
	}
	return &OpenAIEnricher{
		client: openai.NewClient(config.APIKey),
		config: config,
	}
}

const systemPrompt = `You write short, warm closing notes for vehicle sale invoices issued by SteelWheel Auto, a car dealership in Jamaica. Write 2-3 sentences thanking the customer by name, mentioning the vehicle(s) purchased, and wishing them well. Plain prose only, no salutation line, no signature, no markdown.`

// SalesNote generates a closing note for the given sale summary
func (e *OpenAIEnricher) SalesNote(ctx context.Context, summary Summary) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.config.Model,
		Temperature: e.config.Temperature,
		MaxTokens:   e.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(summary),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("enrichment request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("enrichment returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(summary Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer: %s\n", summary.CustomerName)
	fmt.Fprintf(&b, "Invoice: %s\n", summary.InvoiceNumber)
	for _, line := range summary.VehicleLines {
		fmt.Fprintf(&b, "Vehicle: %s\n", line)
	}
	fmt.Fprintf(&b, "Total: %s\n", summary.TotalDisplay)
	return b.String()
}
