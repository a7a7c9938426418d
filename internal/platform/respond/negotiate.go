package respond

import (
	"strconv"
	"strings"
)

// mediaPreference is the q-value and specificity of the most specific
// Accept range matching a format.
type mediaPreference struct {
	q           float64
	specificity int
	matched     bool
}

func (p *mediaPreference) consider(q float64, specificity int) {
	if !p.matched || specificity > p.specificity || (specificity == p.specificity && q > p.q) {
		p.q, p.specificity, p.matched = q, specificity, true
	}
}

// prefersCBOR reports whether the Accept header ranks CBOR above JSON.
// q-values decide first (RFC 9110 section 12.5.1); specificity breaks ties;
// JSON wins everything else, including wildcards and unsupported types.
func prefersCBOR(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return false
	}
	var jsonPref, cborPref mediaPreference
	for _, part := range strings.Split(accept, ",") {
		mediaType, q := parseMediaRange(part)
		switch mediaType {
		case "*/*":
			jsonPref.consider(q, 0)
			cborPref.consider(q, 0)
		case "application/*":
			jsonPref.consider(q, 1)
			cborPref.consider(q, 1)
		case "application/*+json":
			jsonPref.consider(q, 1)
		case "application/*+cbor":
			cborPref.consider(q, 1)
		case "application/json":
			jsonPref.consider(q, 2)
		case "application/cbor":
			cborPref.consider(q, 2)
		case contentTypeProblemJSON:
			jsonPref.consider(q, 3)
		case contentTypeProblemCBOR:
			cborPref.consider(q, 3)
		}
	}
	if !cborPref.matched || cborPref.q <= 0 {
		return false
	}
	if !jsonPref.matched || jsonPref.q <= 0 {
		return true
	}
	if cborPref.q != jsonPref.q {
		return cborPref.q > jsonPref.q
	}
	return cborPref.specificity > jsonPref.specificity
}

// parseMediaRange returns the lower-cased media type and its q-value. A
// missing, malformed or out of range q defaults to 1.
func parseMediaRange(s string) (string, float64) {
	params := strings.Split(s, ";")
	mediaType := strings.ToLower(strings.TrimSpace(params[0]))
	q := 1.0
	for _, p := range params[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || strings.TrimSpace(key) != "q" {
			continue
		}
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && parsed >= 0 && parsed <= 1 {
			q = parsed
		} else {
			q = 1
		}
	}
	return mediaType, q
}
