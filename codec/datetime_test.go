package codec

import (
	"errors"
	"testing"
	"time"
)

func TestDateTime_Codec_Basic(t *testing.T) {
	c := DateTime()

	in := "2025-01-01T00:00:00Z"
	got, err := c.Decode(in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	out, err := c.Encode(got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestDateTime_AcceptedLayouts(t *testing.T) {
	cases := map[string]string{
		"2025-03-04T05:06:07+09:00":         "2025-03-03T20:06:07Z",
		"2025-03-04T05:06:07.250Z":          "2025-03-04T05:06:07.25Z",
		"2025-03-04T05:06":                  "2025-03-04T05:06:00Z",
		"2025-03-04":                        "2025-03-04T00:00:00Z",
		"2025-03-04 05:06:07.123456789 UTC": "2025-03-04T05:06:07.123456789Z",
		"2025-03-04 05:06:07":               "2025-03-04T05:06:07Z",
		"  2025-03-04T05:06:07Z  ":          "2025-03-04T05:06:07Z",
	}
	for in, want := range cases {
		got, err := Canonical(DateTime(), in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got %q, want %q", in, got, want)
		}
	}
}

func TestDateTime_Malformed(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2025-13-01", "01/02/2025"} {
		_, err := DateTime().Decode(in)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: expected *ParseError, got %v", in, err)
		}
	}
}

func TestDateTime_EncodeZero(t *testing.T) {
	if _, err := DateTime().Encode(time.Time{}); err == nil {
		t.Fatalf("expected error for zero time")
	}
}
