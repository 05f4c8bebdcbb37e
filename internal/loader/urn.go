package loader

import (
	"net/url"
	"regexp"
)

var urnPattern = regexp.MustCompile(`urn:li:(?:share|activity|ugcPost):(\d+)`)

// ExtractURN pulls the numeric share/activity URN out of a LinkedIn URL.
// Share links in the export are percent-encoded, so the URL is unescaped
// first. Returns "" when no URN is present.
func ExtractURN(raw string) string {
	if raw == "" {
		return ""
	}
	if decoded, err := url.QueryUnescape(raw); err == nil {
		raw = decoded
	}
	m := urnPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}
