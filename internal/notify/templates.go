package notify

import "fmt"

func emailTemplate(kind Kind, fullName string) (subject, body string) {
	switch kind {
	case KindApproval:
		subject = "Registration Approved!"
		body = fmt.Sprintf(
			"Hi %s,\n\nYour model registration has been approved! Welcome to Impilo Talent Agency.\n\nBest regards,\nImpilo Team",
			fullName,
		)
	case KindRejection:
		subject = "Registration not Approved"
		body = fmt.Sprintf(
			"Hi %s,\n\nWe regret to inform you that your modelling application was not approved.\n\nBest regards,\nImpilo Team",
			fullName,
		)
	}
	return subject, body
}

func smsTemplate(kind Kind, fullName string) string {
	switch kind {
	case KindApproval:
		return fmt.Sprintf("Hi %s, your model registration has been approved! - Impilo Talent Agency", fullName)
	case KindRejection:
		return fmt.Sprintf("Hi %s, we regret to inform you that your modelling application was not approved. - Impilo Talent Agency", fullName)
	}
	return ""
}
