package ogp

import (
	"net/url"
	"path"
	"strings"
)

// Validatable is implemented by every value that can check its own invariants.
// Validate reports the first violated invariant only.
type Validatable interface {
	Validate() error
}

// DimensionsValidator is implemented by media that carry a width/height pair.
type DimensionsValidator interface {
	Dimensions() (width, height *Integer)
}

// SecureURLValidator is implemented by media that carry a secure URL.
type SecureURLValidator interface {
	SecureLink() string
}

// ValidateOpt configures document validation. The zero value checks the
// required text properties and every media entry.
type ValidateOpt struct {
	// RequireImage additionally requires at least one og:image.
	RequireImage bool
	// StrictImageExtensions rejects image URLs whose path does not end in
	// one of ImageExtensions.
	StrictImageExtensions bool
}

// ImageExtensions is the allow-list used by StrictImageExtensions.
var ImageExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}

// ValidateDimensions enforces that width and height are both present or both
// absent. The issue names the missing dimension.
func ValidateDimensions(v DimensionsValidator) error {
	w, h := v.Dimensions()
	switch {
	case h != nil && w == nil:
		return newIssue("/width", CodeIncompleteDimension, nil, "dimension", "width")
	case w != nil && h == nil:
		return newIssue("/height", CodeIncompleteDimension, nil, "dimension", "height")
	}
	return nil
}

// ValidateSecureURL accepts an absent secure URL; a present one must use the
// https scheme.
func ValidateSecureURL(v SecureURLValidator) error {
	raw := v.SecureLink()
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return newIssue("/secure_url", CodeParseError, err, "value", raw)
	}
	if u.Scheme != "https" {
		return newIssue("/secure_url", CodeInvalidSecureScheme, nil, "scheme", u.Scheme)
	}
	return nil
}

// ValidateHTTPURL parses raw as an absolute http or https URL.
func ValidateHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, newIssue("/", CodeParseError, err, "value", raw)
	}
	if !u.IsAbs() {
		return nil, newIssue("/", CodeParseError, nil, "value", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, newIssue("/", CodeInvalidScheme, nil, "scheme", u.Scheme)
	}
	if u.Host == "" {
		return nil, newIssue("/", CodeParseError, nil, "value", raw)
	}
	return u, nil
}

// IsImageExtension reports whether name ends in an allowed image extension.
// The comparison is case-insensitive; query strings are ignored for URLs.
func IsImageExtension(name string) bool {
	return imageExtension(name) != ""
}

func imageExtension(name string) string {
	if u, err := url.Parse(name); err == nil && u.Path != "" {
		name = u.Path
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	for _, allowed := range ImageExtensions {
		if ext == allowed {
			return ext
		}
	}
	return ""
}

func validateImageExtension(raw string) error {
	if imageExtension(raw) != "" {
		return nil
	}
	ext := strings.TrimPrefix(path.Ext(raw), ".")
	if u, err := url.Parse(raw); err == nil {
		ext = strings.TrimPrefix(path.Ext(u.Path), ".")
	}
	return newIssue("/url", CodeInvalidExtension, nil, "extension", ext)
}
