package service

import "fmt"

func confirmationEmailTemplate(username, confirmURL, appName string) (string, string, string) {
	subject := fmt.Sprintf("Confirm your %s account", appName)

	body := fmt.Sprintf(`Hi %s,

Welcome to %s! Please confirm your account by clicking this link:
%s

This link expires in 1 hour.

If you didn't create this account, you can safely ignore this email.

Best,
The %s Team`, username, appName, confirmURL, appName)

	html := fmt.Sprintf(`<p>Hi %s,</p>
<p>Welcome to %s! Please confirm your account by clicking this link:</p>
<p><a href="%s">Confirm your account</a></p>
<p>This link expires in 1 hour.</p>
<p>If you didn't create this account, you can safely ignore this email.</p>
<p>Best,<br>The %s Team</p>`, username, appName, confirmURL, appName)

	return subject, body, html
}
