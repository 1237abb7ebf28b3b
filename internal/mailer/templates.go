package mailer

import (
	"fmt"
)

// Render produces the subject and bodies for a templated job. Subjects
// and copy exist for both site locales; unknown locales fall back to
// English like everything else on the site.
func Render(job *EmailJob) (subject, text, html string, err error) {
	am := job.Locale == "am"

	switch job.Template {
	case TemplateConfirmSubscription:
		link := job.Data["confirm_url"]
		if am {
			subject = "Հաստատեք ձեր բաժանորդագրությունը"
			text = fmt.Sprintf("Շնորհակալություն SuperEngulfing-ին բաժանորդագրվելու համար։ Հաստատեք՝ անցնելով հղումով՝ %s", link)
		} else {
			subject = "Confirm your subscription"
			text = fmt.Sprintf("Thanks for subscribing to SuperEngulfing. Confirm your email by following this link: %s", link)
		}
		html = fmt.Sprintf(`<p>%s</p><p><a href="%s">%s</a></p>`, subject, link, link)

	case TemplateAccessApproved:
		link := job.Data["set_password_url"]
		if am {
			subject = "Ձեր մուտքը հաստատված է"
			text = fmt.Sprintf("Ձեր մուտքի հարցումը հաստատվել է։ Սահմանեք ձեր գաղտնաբառը՝ %s", link)
		} else {
			subject = "Your access request was approved"
			text = fmt.Sprintf("Your access request has been approved. Set your password here: %s", link)
		}
		html = fmt.Sprintf(`<p>%s</p><p><a href="%s">%s</a></p>`, subject, link, link)

	case TemplateAccessRejected:
		if am {
			subject = "Ձեր մուտքի հարցումը"
			text = "Ցավոք, ձեր մուտքի հարցումը չի հաստատվել։"
		} else {
			subject = "About your access request"
			text = "Unfortunately, your access request was not approved at this time."
		}
		html = fmt.Sprintf("<p>%s</p>", text)

	default:
		return "", "", "", fmt.Errorf("unknown email template: %q", job.Template)
	}

	return subject, text, html, nil
}
