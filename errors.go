package ogp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/ogp/i18n"
)

// Issue codes.
const (
	CodeGeneric             = "generic"
	CodeIO                  = "io"
	CodeParseError          = "parse_error"
	CodeInvalidScheme       = "invalid_scheme"
	CodeInvalidSecureScheme = "invalid_secure_scheme"
	CodeInvalidExtension    = "invalid_extension"
	CodeIncompleteDimension = "incomplete_dimensions"
	CodeRequired            = "required"
	CodeInvalidFormat       = "invalid_format"
	// Locale layers, in evaluation order.
	CodeLocaleEmpty    = "locale_empty"
	CodeLocaleLength   = "locale_length"
	CodeLocaleFormat   = "locale_format"
	CodeLocaleLanguage = "locale_language"
	CodeLocaleCountry  = "locale_country"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer into the document (for example: /og:image/1/width).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"property":"title"}) for
	// i18n and callers that branch on the offending value.
	Params map[string]any
	Cause  error // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error.
// Validators in this package never aggregate: they return at most one Issue.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Message != "" {
			fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
		} else {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes underlying causes so errors.Is/As see through a wrapped
// I/O or parse error.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// First returns the first issue, or the zero Issue when empty.
func (iss Issues) First() Issue {
	if len(iss) == 0 {
		return Issue{}
	}
	return iss[0]
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// newIssue builds a single-entry Issues with a translated message. kv pairs
// become Params and are also handed to the translator as strings.
func newIssue(path, code string, cause error, kv ...any) Issues {
	params := map[string]any{}
	data := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		k := fmt.Sprint(kv[i])
		params[k] = kv[i+1]
		data[k] = fmt.Sprint(kv[i+1])
	}
	if len(params) == 0 {
		params = nil
	}
	return Issues{{Path: path, Code: code, Message: i18n.T(code, data), Params: params, Cause: cause}}
}

// Errorf returns a generic Issue with a formatted message.
func Errorf(format string, a ...any) error {
	return Issues{{Path: "/", Code: CodeGeneric, Message: fmt.Sprintf(format, a...)}}
}

// wrapIO passes an I/O failure through as an Issue, keeping the cause.
func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return Issues{{Path: "/", Code: CodeIO, Message: err.Error(), Cause: err}}
}

// withPath re-roots the issues of err under prefix; non-Issues errors pass
// through unchanged.
func withPath(err error, prefix string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" || it.Path == "" {
			it.Path = prefix
		} else {
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
}
