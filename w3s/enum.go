package w3s

import (
	"encoding/json"
	"fmt"
)

// ParseEnum resolves s against the closed set of valid values for an
// enumerated wire type. Unknown strings are rejected with
// *InvalidEnumError instead of being forwarded to the server as silent
// no-op filters.
func ParseEnum[T ~string](enum, s string, valid []T) (T, error) {
	for _, v := range valid {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, &InvalidEnumError{Enum: enum, Value: s}
}

// UnmarshalEnum decodes a JSON string into an enumerated wire type while
// enforcing the closed set. The UnmarshalJSON method of every enum funnels
// through here, so an unknown value in a response body fails the decode
// rather than smuggling an unmodeled state into the caller.
func UnmarshalEnum[T ~string](enum string, data []byte, valid []T) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", enum, err)
	}
	return ParseEnum(enum, s, valid)
}
