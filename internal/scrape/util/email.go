package util

import "regexp"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
