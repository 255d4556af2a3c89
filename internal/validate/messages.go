package validate

import (
	"fmt"
	"strings"
)

func RequiredMsg(field string) string {
	return displayName(field) + " is required."
}

func TooLongMsg(field string, max int) string {
	return fmt.Sprintf("%s may not exceed %d characters.", displayName(field), max)
}

func TooShortMsg(field string, min int) string {
	return fmt.Sprintf("%s must be at least %d characters.", displayName(field), min)
}

func NotValidMsg(field string) string {
	return displayName(field) + " is not valid."
}

func NotFoundMsg(field string) string {
	return displayName(field) + " not found."
}

func IntegrityMsg(field string) string {
	return displayName(field) + " owner integrity error."
}

func displayName(field string) string {
	name := strings.ReplaceAll(field, "_", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
