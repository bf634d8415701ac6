package validation

import "strings"

const maxNameLength = 64

func ValidateWorkspaceName(field string, value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{field + " cannot be empty"}
	}

	var errs []string
	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
	}
	if len(value) > maxNameLength {
		errs = append(errs, field+" is too long")
	}
	return errs
}
