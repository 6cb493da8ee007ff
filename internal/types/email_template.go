package types

// TemplateType identifies the kind of outreach email to generate
type TemplateType string

// Supported outreach template types
const (
	TemplateColdEmail         TemplateType = "cold-email"
	TemplateFollowUp          TemplateType = "follow-up"
	TemplateThankYou          TemplateType = "thank-you"
	TemplateConnectionRequest TemplateType = "connection-request"
	TemplateInterviewRequest  TemplateType = "interview-request"
	TemplateSalaryNegotiation TemplateType = "salary-negotiation"
)

// AllTemplateTypes lists every supported template type in display order
var AllTemplateTypes = []TemplateType{
	TemplateColdEmail,
	TemplateFollowUp,
	TemplateThankYou,
	TemplateConnectionRequest,
	TemplateInterviewRequest,
	TemplateSalaryNegotiation,
}

// Valid reports whether t is a known template type
func (t TemplateType) Valid() bool {
	for _, known := range AllTemplateTypes {
		if t == known {
			return true
		}
	}
	return false
}

// EmailTemplate is a generated outreach email personalized from a profile
type EmailTemplate struct {
	ID      string       `json:"id"`
	Subject string       `json:"subject"`
	Body    string       `json:"body"`
	Type    TemplateType `json:"type"`
	Role    string       `json:"role"`
	Company string       `json:"company,omitempty"`
}
