package environment

import "strings"

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// IsSensitive reports whether key names a secret-looking variable
// (case-insensitive substring match).
func IsSensitive(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// RedactValue returns a redacted version of value if the key is sensitive.
// Values with 4+ runes show the first 4 runes + "***".
// Values with fewer than 4 runes are fully redacted as "***".
func RedactValue(key, value string) string {
	if !IsSensitive(key) {
		return value
	}
	if runes := []rune(value); len(runes) >= 4 {
		return string(runes[:4]) + "***"
	}
	return "***"
}
