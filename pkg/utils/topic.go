package utils

import "strings"

// AudienceTopic derives the FCM topic name for an analytics audience.
// FCM topics only accept [a-zA-Z0-9-_.~%]; anything else becomes '_'.
func AudienceTopic(audienceName string) string {
	return "audience_" + sanitizeTopic(audienceName)
}

func sanitizeTopic(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.' || r == '~' || r == '%':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
