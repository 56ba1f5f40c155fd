package auth

import "strings"

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
