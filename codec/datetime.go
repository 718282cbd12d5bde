package codec

import (
	"fmt"
	"strings"
	"time"
)

// DateTime returns a Codec between ISO 8601 strings and time.Time.
//
// Accepted input: RFC3339 with or without fractional seconds, a date and
// minute-precision time without zone ("2006-01-02T15:04", read as UTC), a
// bare date ("2006-01-02"), and the space-separated "2006-01-02 15:04:05"
// form with an optional zone. Output is RFC3339 in UTC with trailing
// fractional zeros trimmed.
func DateTime() Codec[string, time.Time] { return dateTimeCodec{} }

type dateTimeCodec struct{}

// layouts are tried in order; the first match wins.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999 MST",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseError reports an input that matched none of the accepted layouts.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codec: %q is not an ISO 8601 date/time", e.Value)
}

func (dateTimeCodec) Decode(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &ParseError{Value: s}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Value: s}
}

func (dateTimeCodec) Encode(t time.Time) (string, error) {
	if t.IsZero() {
		return "", fmt.Errorf("codec: zero time has no date/time form")
	}
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano), nil
}

// Canonical decodes s and re-encodes it in the canonical form.
func Canonical(c Codec[string, time.Time], s string) (string, error) {
	t, err := c.Decode(s)
	if err != nil {
		return "", err
	}
	return c.Encode(t)
}
