package application

import (
	"fmt"

	"github.com/khannoor710/carerefrigeration/internal/gemini"
)

// DeterministicComposer renders the built-in confirmation template. It is the
// default composer and the fallback whenever a generative composer errors.
type DeterministicComposer struct {
	CompanyName  string
	CompanyPhone string
}

func (c *DeterministicComposer) Compose(name, appliance, issue, bookingRef string) (string, error) {
	return fmt.Sprintf(`Thank you, %s! We've received your service request for your %s.

Our technical team will review your request and contact you within 2-3 business hours to schedule a convenient appointment time.

Your booking reference is: %s

If you need immediate assistance, please call us at %s.

Best regards,
%s Team`, name, appliance, bookingRef, c.CompanyPhone, c.CompanyName), nil
}

// GeminiComposer asks the Gemini API for a personalized confirmation. Any
// failure is returned to the booking service, which falls back to the
// deterministic template.
type GeminiComposer struct {
	client       *gemini.Client
	companyName  string
	companyPhone string
}

func NewGeminiComposer(client *gemini.Client, companyName, companyPhone string) *GeminiComposer {
	return &GeminiComposer{client: client, companyName: companyName, companyPhone: companyPhone}
}

func (c *GeminiComposer) Compose(name, appliance, issue, bookingRef string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short, warm booking confirmation for an appliance repair service called %s. "+
			"Customer name: %s. Appliance: %s. Reported issue: %s. Booking reference: %s. "+
			"Mention that a technician will call within 2-3 business hours and that the customer "+
			"can reach us at %s. Plain text only, no markdown.",
		c.companyName, name, appliance, issue, bookingRef, c.companyPhone,
	)

	text, err := c.client.GenerateText(prompt)
	if err != nil {
		return "", fmt.Errorf("gemini composer: %w", err)
	}
	return text, nil
}
