package mail

import "fmt"

func verificationEmailTemplate(name, verifyURL, appName string) (string, string) {
	subject := fmt.Sprintf("Verify your email for %s", appName)
	body := fmt.Sprintf(`Hi %s,

Thanks for signing up. Please verify your email address by clicking this link:
%s

This link expires in 24 hours.

If you didn't create an account, you can safely ignore this email.

Best,
The %s Team`, name, verifyURL, appName)

	return subject, body
}

func passwordResetEmailTemplate(name, resetURL, appName string) (string, string) {
	subject := fmt.Sprintf("Reset your password for %s", appName)
	body := fmt.Sprintf(`Hi %s,

You requested to reset your password. Click this link to choose a new one:
%s

This link expires in 1 hour.

If you didn't request this, you can safely ignore this email. Your password won't be changed.

Best,
The %s Team`, name, resetURL, appName)

	return subject, body
}
