package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{"accepted", "Abcdefg1!", nil},
		{"accepted with other special chars", `P4ssword?"{}`, nil},
		{"too short", "Ab1!", []string{MsgPasswordTooShort}},
		{"no uppercase", "abcdefg1!", []string{MsgPasswordNoUppercase}},
		{"no digit", "Abcdefgh!", []string{MsgPasswordNoDigit}},
		{"no special", "Abcdefg1", []string{MsgPasswordNoSpecial}},
		{
			"every rule fails",
			"abc",
			[]string{MsgPasswordTooShort, MsgPasswordNoUppercase, MsgPasswordNoDigit, MsgPasswordNoSpecial},
		},
		{"empty", "", []string{MsgPasswordTooShort, MsgPasswordNoUppercase, MsgPasswordNoDigit, MsgPasswordNoSpecial}},
		{"accented lowercase only", "éàçèéàçè", []string{MsgPasswordNoUppercase, MsgPasswordNoDigit, MsgPasswordNoSpecial}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidatePassword(tc.password))
		})
	}
}
