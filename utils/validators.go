package utils

import (
	"errors"
	"regexp"
	"strings"
)

const maxTopicLength = 200

// Prompt-injection patterns stripped from topics before they reach the
// prompt composer.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+previous\s+instructions`),
	regexp.MustCompile(`(?i)system\s*:`),
	regexp.MustCompile(`(?i)user\s*:`),
	regexp.MustCompile(`(?i)assistant\s*:`),
	regexp.MustCompile(`(?i)\[INST\]`),
	regexp.MustCompile(`(?i)\[/INST\]`),
}

var suspiciousPatterns = append([]*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
}, injectionPatterns...)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeTopic strips injection patterns and excess whitespace from a raw
// topic and caps its length.
func SanitizeTopic(topic string) string {
	sanitized := strings.TrimSpace(topic)
	for _, p := range injectionPatterns {
		sanitized = p.ReplaceAllString(sanitized, "")
	}
	sanitized = whitespaceRun.ReplaceAllString(sanitized, " ")
	if len(sanitized) > maxTopicLength {
		sanitized = sanitized[:maxTopicLength]
	}
	return strings.TrimSpace(sanitized)
}

// ValidateTopic rejects empty, oversized, or suspicious topics.
func ValidateTopic(topic string) error {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return errors.New("topic cannot be empty")
	}
	if len(trimmed) > maxTopicLength {
		return errors.New("topic must be 200 characters or less")
	}
	for _, p := range suspiciousPatterns {
		if p.MatchString(trimmed) {
			return errors.New("topic contains invalid characters or patterns")
		}
	}
	return nil
}
