package model

import "regexp"

const emailSpecialCharacters = "+_.-"

// EmailConstraints is shown whenever an email address fails validation.
const EmailConstraints = "Emails should be of the format local-part@domain " +
	"and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
	"the parentheses, (" + emailSpecialCharacters + "). The local-part may not start or end with any special " +
	"characters.\n" +
	"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
	"separated by periods.\n" +
	"The domain name must:\n" +
	"    - end with a domain label at least 2 characters long\n" +
	"    - have each domain label start and end with alphanumeric characters\n" +
	"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

const (
	alnum           = `[a-zA-Z0-9]+`
	emailLocalPart  = `^` + alnum + `([+_.\-]` + alnum + `)*`
	emailDomainPart = alnum + `(-` + alnum + `)*`
	emailLastLabel  = `(` + emailDomainPart + `){2,}$`
	emailDomain     = `(` + emailDomainPart + `\.)*` + emailLastLabel
)

var emailRegexp = regexp.MustCompile(emailLocalPart + `@` + emailDomain)

// Email is a person's email address.
type Email struct {
	value string
}

// NewEmail validates s and returns it as an Email.
func NewEmail(s string) (Email, error) {
	if !IsValidEmail(s) {
		return Email{}, &ConstraintError{Field: "email", Message: EmailConstraints}
	}
	return Email{value: s}, nil
}

// IsValidEmail returns true if s is a valid email address.
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

func (e Email) String() string { return e.value }
