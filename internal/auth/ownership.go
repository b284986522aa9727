package auth

import (
	"encoding/json"
	"strconv"
	"strings"
)

// IsOwner reports whether the token's subject matches the resource owner.
// False when the token is absent or undecodable; otherwise a string-coerced
// equality, because owner ids arrive as numbers from some endpoints and
// strings from others. Deterministic in (token, ownerID) and never panics.
func IsOwner(token string, ownerID string) bool {
	if token == "" || ownerID == "" {
		return false
	}
	sub, ok := DecodeSubject(token)
	if !ok {
		return false
	}
	return sub == ownerID
}

// OwnerID normalizes a JSON id that may arrive as a string or a number into
// canonical string form, so ownership comparisons are always string-vs-string.
type OwnerID string

// UnmarshalJSON accepts "42", 42 and 42.0, all yielding OwnerID("42").
func (o *OwnerID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*o = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = OwnerID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	// Integral floats print as integers: 42.0 and 42 must compare equal.
	if i, err := n.Int64(); err == nil {
		*o = OwnerID(strconv.FormatInt(i, 10))
		return nil
	}
	if f, err := n.Float64(); err == nil && f == float64(int64(f)) {
		*o = OwnerID(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*o = OwnerID(n.String())
	return nil
}

func (o OwnerID) String() string {
	return string(o)
}
