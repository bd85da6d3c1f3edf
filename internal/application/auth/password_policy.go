package auth

import (
	"strings"
	"unicode"
)

// User-facing validation messages (the product UI is French).
const (
	MsgPasswordTooShort    = "Le mot de passe doit contenir au moins 8 caractères."
	MsgPasswordNoUppercase = "Le mot de passe doit contenir au moins une majuscule."
	MsgPasswordNoDigit     = "Le mot de passe doit contenir au moins un chiffre."
	MsgPasswordNoSpecial   = "Le mot de passe doit contenir au moins un caractère spécial."
	MsgPasswordMismatch    = "Les mots de passe ne correspondent pas."
)

const passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword checks the registration password policy and returns one
// message per failing rule. An empty slice means the password is accepted.
func ValidatePassword(password string) []string {
	var msgs []string
	if len([]rune(password)) < 8 {
		msgs = append(msgs, MsgPasswordTooShort)
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		msgs = append(msgs, MsgPasswordNoUppercase)
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		msgs = append(msgs, MsgPasswordNoDigit)
	}
	if !strings.ContainsAny(password, passwordSpecialChars) {
		msgs = append(msgs, MsgPasswordNoSpecial)
	}
	return msgs
}
