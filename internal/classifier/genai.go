package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
)

const systemPromptTemplate = `You are a professional personal finance analysis assistant.
Today's date: %s.

Your task is to analyze the user's expense record and determine:
1. Is this an "operating expense" or "capital expenditure"?
   - Operating expense: Consumed immediately, such as food, transportation, entertainment, phone bills
   - Capital expenditure: Items that can be used for a long time, such as appliances, furniture, electronics

2. If it's a capital expenditure, estimate the reasonable useful life of the item

Please return in JSON format as follows:
{
    "is_capital": true or false,
    "category": "item category",
    "item_name": "item name",
    "useful_life_years": useful life in years (0 for operating expenses),
    "reasoning": "brief reasoning"
}

Reference useful life:
- Phone: 3 years
- Computer/Laptop: 4-5 years
- TV: 8 years
- Refrigerator/Washing machine/AC: 10-12 years
- Cookware/Pans: 8-10 years
- Furniture: 10 years
- Clothes/Shoes: 2 years
- Bicycle: 8 years
- Car: 10 years

Notes:
- Low-value items (under $50) are usually treated as operating expenses
- Subscription services (like annual memberships) are spread over the subscription period
- Rent is spread over the lease term
- Output STRICT JSON only (no comments, no trailing commas, no extra text)
- Do NOT wrap the response in code fences
- Do NOT use ` + "```json" + ` or any Markdown`

// GenaiClassifier asks a Gemini model to classify an expense description.
// Any transport, timeout or parse failure is reported as
// apperrors.ErrClassifier so callers can fall back to local rules.
type GenaiClassifier struct {
	model   string
	timeout time.Duration
	now     func() time.Time

	newClient func(ctx context.Context) (*genai.Client, error)
}

// NewGenaiClassifier builds a remote classifier. The API key is read by the
// genai SDK from GEMINI_API_KEY / GOOGLE_API_KEY.
func NewGenaiClassifier(model string, timeout time.Duration) *GenaiClassifier {
	return &GenaiClassifier{
		model:   model,
		timeout: timeout,
		now:     time.Now,
		newClient: func(ctx context.Context) (*genai.Client, error) {
			return genai.NewClient(ctx, &genai.ClientConfig{
				HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
			})
		},
	}
}

var _ portssvc.Classifier = (*GenaiClassifier)(nil)

// modelDecision mirrors the JSON shape the prompt demands.
type modelDecision struct {
	IsCapital       bool    `json:"is_capital"`
	Category        string  `json:"category"`
	ItemName        string  `json:"item_name"`
	UsefulLifeYears float64 `json:"useful_life_years"`
	Reasoning       string  `json:"reasoning"`
}

// Classify sends the description and amount to the model and parses its
// strict-JSON verdict.
func (c *GenaiClassifier) Classify(ctx context.Context, description string, amount decimal.Decimal) (*domain.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := c.newClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create genai client: %v", apperrors.ErrClassifier, err)
	}

	prompt := fmt.Sprintf(systemPromptTemplate, c.now().Format("Monday, January 2, 2006")) +
		fmt.Sprintf("\n\nPlease analyze this expense: %s, amount: $%s", description, amount.String())

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %v", apperrors.ErrClassifier, err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("%w: empty response from model", apperrors.ErrClassifier)
	}

	clean := cleanModelJSON(rawText)

	var decision modelDecision
	if err := json.Unmarshal([]byte(clean), &decision); err != nil {
		return nil, fmt.Errorf("%w: unmarshal model response: %v", apperrors.ErrClassifier, err)
	}

	if decision.IsCapital && decision.UsefulLifeYears <= 0 {
		return nil, fmt.Errorf("%w: capital verdict without a positive useful life", apperrors.ErrClassifier)
	}

	if decision.Category == "" {
		decision.Category = "Other"
	}
	if decision.ItemName == "" {
		decision.ItemName = description
	}

	return &domain.Classification{
		IsCapital:       decision.IsCapital,
		Category:        decision.Category,
		ItemName:        decision.ItemName,
		UsefulLifeYears: decision.UsefulLifeYears,
		Reasoning:       decision.Reasoning,
	}, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk if the model
// ignored the strict-JSON instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	// Remove trailing ``` if present.
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Extra safety: if there's still junk around the JSON object,
	// keep only from the first '{' to the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
