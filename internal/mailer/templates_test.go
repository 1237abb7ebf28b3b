package mailer

import (
	"strings"
	"testing"
)

func TestRenderKnownTemplates(t *testing.T) {
	tests := []struct {
		template string
		locale   string
		data     map[string]string
		wantIn   string
	}{
		{TemplateConfirmSubscription, "en", map[string]string{"confirm_url": "https://x/thank-you?token=t"}, "https://x/thank-you?token=t"},
		{TemplateConfirmSubscription, "am", map[string]string{"confirm_url": "https://x/am/thank-you?token=t"}, "https://x/am/thank-you?token=t"},
		{TemplateAccessApproved, "en", map[string]string{"set_password_url": "https://x/set-password?token=t"}, "https://x/set-password?token=t"},
		{TemplateAccessRejected, "en", nil, "not approved"},
	}
	for _, tt := range tests {
		subject, text, html, err := Render(&EmailJob{To: "a@b.c", Locale: tt.locale, Template: tt.template, Data: tt.data})
		if err != nil {
			t.Fatalf("Render(%s/%s) error: %v", tt.template, tt.locale, err)
		}
		if subject == "" {
			t.Errorf("Render(%s/%s) empty subject", tt.template, tt.locale)
		}
		if !strings.Contains(text, tt.wantIn) {
			t.Errorf("Render(%s/%s) text %q missing %q", tt.template, tt.locale, text, tt.wantIn)
		}
		if html == "" {
			t.Errorf("Render(%s/%s) empty html", tt.template, tt.locale)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, _, _, err := Render(&EmailJob{Template: "nope"}); err == nil {
		t.Error("unknown template should error")
	}
}
