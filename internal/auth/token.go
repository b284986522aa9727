package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// DecodeSubject extracts the `sub` claim from a bearer token's payload
// segment without verifying the signature. It exists purely to drive UI
// decisions such as the listing owner view and carries no security weight:
// the marketplace API re-validates the token on every privileged call.
//
// Every failure mode collapses to ("", false): too few segments, invalid
// base64, a non-JSON payload, or a `sub` claim that is not a JSON string.
// It never panics and never returns an error.
func DecodeSubject(token string) (string, bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return "", false
	}

	payload, err := decodeBase64URL(parts[1])
	if err != nil {
		return "", false
	}

	var claims map[string]json.RawMessage
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", false
	}

	raw, ok := claims["sub"]
	if !ok {
		return "", false
	}
	var sub string
	if err := json.Unmarshal(raw, &sub); err != nil {
		// sub present but not a string (number, bool, object).
		return "", false
	}
	return sub, true
}

// decodeBase64URL tolerates both the URL-safe and standard alphabets and
// missing padding, matching how tokens arrive from different issuers.
func decodeBase64URL(segment string) ([]byte, error) {
	s := strings.ReplaceAll(segment, "-", "+")
	s = strings.ReplaceAll(s, "_", "/")
	if pad := len(s) % 4; pad != 0 {
		s += strings.Repeat("=", 4-pad)
	}
	return base64.StdEncoding.DecodeString(s)
}
