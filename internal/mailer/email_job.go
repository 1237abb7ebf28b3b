package mailer

// Template names for outbound email.
const (
	TemplateConfirmSubscription = "confirm_subscription"
	TemplateAccessApproved      = "access_approved"
	TemplateAccessRejected      = "access_rejected"
)

// EmailJob is the JSON payload pushed onto the Redis send queue and
// consumed by the email worker.
type EmailJob struct {
	To       string            `json:"to"`
	Locale   string            `json:"locale,omitempty"`
	Template string            `json:"template"`
	Data     map[string]string `json:"data,omitempty"`
}
