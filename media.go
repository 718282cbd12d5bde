package ogp

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// Integer is a non-negative numeric property (pixels, seconds, track number).
// It serializes as a decimal JSON string so it survives the string-only
// flatten walk and is rendered like any other property.
type Integer uint32

// Int returns a pointer to n, for the optional numeric fields.
func Int(n uint32) *Integer {
	v := Integer(n)
	return &v
}

func (n Integer) String() string { return strconv.FormatUint(uint64(n), 10) }

func (n Integer) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(n.String())), nil
}

// UnmarshalJSON accepts both 42 and "42".
func (n *Integer) UnmarshalJSON(b []byte) error {
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		s = string(b)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	*n = Integer(v)
	return nil
}

func cloneInteger(p *Integer) *Integer {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Image is one og:image entry.
type Image struct {
	URL       string   `json:"url,omitempty"`
	SecureURL string   `json:"secure_url,omitempty"`
	Type      string   `json:"type,omitempty"` // MIME type
	Alt       string   `json:"alt,omitempty"`
	Width     *Integer `json:"width,omitempty"`
	Height    *Integer `json:"height,omitempty"`
}

// Video is one og:video entry.
type Video struct {
	URL       string   `json:"url,omitempty"`
	SecureURL string   `json:"secure_url,omitempty"`
	Type      string   `json:"type,omitempty"`
	Alt       string   `json:"alt,omitempty"`
	Width     *Integer `json:"width,omitempty"`
	Height    *Integer `json:"height,omitempty"`
}

// Audio is one og:audio entry.
type Audio struct {
	URL       string `json:"url,omitempty"`
	SecureURL string `json:"secure_url,omitempty"`
	Type      string `json:"type,omitempty"`
}

// ParseImage builds an Image from an absolute http(s) URL; every other field
// is left empty.
func ParseImage(raw string) (Image, error) {
	if _, err := ValidateHTTPURL(raw); err != nil {
		return Image{}, withPath(err, "/url")
	}
	return Image{URL: raw}, nil
}

// ParseVideo builds a Video from an absolute http(s) URL.
func ParseVideo(raw string) (Video, error) {
	if _, err := ValidateHTTPURL(raw); err != nil {
		return Video{}, withPath(err, "/url")
	}
	return Video{URL: raw}, nil
}

// ParseAudio builds an Audio from an absolute http(s) URL.
func ParseAudio(raw string) (Audio, error) {
	if _, err := ValidateHTTPURL(raw); err != nil {
		return Audio{}, withPath(err, "/url")
	}
	return Audio{URL: raw}, nil
}

func (i Image) Dimensions() (width, height *Integer) { return i.Width, i.Height }
func (i Image) SecureLink() string                   { return i.SecureURL }

// Validate checks the dimension pair, then the secure URL.
func (i Image) Validate() error {
	if err := ValidateDimensions(i); err != nil {
		return err
	}
	return ValidateSecureURL(i)
}

func (i Image) clone() Image {
	i.Width = cloneInteger(i.Width)
	i.Height = cloneInteger(i.Height)
	return i
}

func (v Video) Dimensions() (width, height *Integer) { return v.Width, v.Height }
func (v Video) SecureLink() string                   { return v.SecureURL }

func (v Video) Validate() error {
	if err := ValidateDimensions(v); err != nil {
		return err
	}
	return ValidateSecureURL(v)
}

func (v Video) clone() Video {
	v.Width = cloneInteger(v.Width)
	v.Height = cloneInteger(v.Height)
	return v
}

func (a Audio) SecureLink() string { return a.SecureURL }

func (a Audio) Validate() error { return ValidateSecureURL(a) }
