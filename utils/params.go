package utils

import "net/url"

// DecodeParam unescapes a path parameter. Job names contain spaces
// ("Novice Hunter"), so clients send them percent-encoded.
func DecodeParam(raw string) (string, error) {
	return url.PathUnescape(raw)
}
