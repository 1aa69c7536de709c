package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseIntParam retrieves an integer value from the provided URL query
// parameters. If the key is absent it returns 0 with no error recorded; an
// unparseable value updates the fieldErrors map.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return n, fieldErrors
}

// TrimmedParam returns the query parameter with surrounding whitespace
// removed.
func TrimmedParam(params url.Values, key string) string {
	return strings.TrimSpace(params.Get(key))
}
