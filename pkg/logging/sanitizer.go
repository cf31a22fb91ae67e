package logging

import (
	"regexp"
)

const (
	// MaxPayloadLogLength is the maximum length of an upstream payload to log.
	MaxPayloadLogLength = 500
	// RedactedText is the replacement text for sensitive data.
	RedactedText = "[REDACTED]"
	// TruncatedText marks payloads cut at MaxPayloadLogLength.
	TruncatedText = "...[TRUNCATED]"
)

var (
	// Matches password values in connection strings: password=xxx, pwd=xxx.
	passwordPattern = regexp.MustCompile(`(?i)(password|pwd|pass)=[^;&\s]+`)

	// Matches API keys passed as query or header-style pairs.
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|key)=[A-Za-z0-9-_]{20,}`)

	// Matches inline base64 image payloads (data URLs). Scan requests carry
	// whole photos; logging them would drown the log stream.
	dataURLPattern = regexp.MustCompile(`data:image/[a-z]+;base64,[A-Za-z0-9+/=]+`)
)

// SanitizeConnectionString removes credentials from a connection string
// before it is logged.
func SanitizeConnectionString(connStr string) string {
	if connStr == "" {
		return ""
	}
	return passwordPattern.ReplaceAllString(connStr, "${1}="+RedactedText)
}

// SanitizePayload prepares an upstream model payload for logging: inline
// image data is elided and the remainder is truncated to a loggable size.
// Raw recognizer output is logged on parse failures for diagnosis, so this
// runs on every such log call.
func SanitizePayload(payload string) string {
	sanitized := dataURLPattern.ReplaceAllString(payload, "data:image/...[ELIDED]")
	sanitized = apiKeyPattern.ReplaceAllString(sanitized, "${1}="+RedactedText)
	if len(sanitized) > MaxPayloadLogLength {
		return sanitized[:MaxPayloadLogLength] + TruncatedText
	}
	return sanitized
}
