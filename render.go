package ogp

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"
	"golang.org/x/net/html"

	eng "github.com/reoring/ogp/internal/engine"
	"github.com/reoring/ogp/source/gojson"
)

// Property is one flattened (path, value) pair of a document.
type Property struct {
	Path    string
	Content string
}

// Tag renders p as a meta element. Both attributes are HTML-escaped.
func (p Property) Tag() string {
	return `<meta property="` + html.EscapeString(p.Path) + `" content="` + html.EscapeString(p.Content) + `" />`
}

// RenderOpt configures rendering. The zero value renders ":"-joined paths
// with one unindented tag per line.
type RenderOpt struct {
	// Separator joins nested keys. Default ":".
	Separator string
	// Indent is written before every tag by Write.
	Indent string
	// MaxDepth bounds the nesting accepted by FlattenJSON. Default 64;
	// negative disables the check.
	MaxDepth int
}

func (o RenderOpt) sep() string {
	if o.Separator == "" {
		return ":"
	}
	return o.Separator
}

// Properties marshals v and flattens it. Any document type of this package
// can be passed; so can arbitrary JSON-marshalable values.
func Properties(v any) ([]Property, error) { return RenderOpt{}.Properties(v) }

// RenderHTML returns one meta tag per string leaf of v, in document order.
func RenderHTML(v any) ([]string, error) { return RenderOpt{}.Render(v) }

// WriteHTML writes the tags of v to w, one per line.
func WriteHTML(w io.Writer, v any) error { return RenderOpt{}.Write(w, v) }

// FlattenJSON flattens an already serialized document. data must hold exactly
// one JSON value; anything after it is a parse_error.
func FlattenJSON(data []byte) ([]Property, error) { return RenderOpt{}.FlattenJSON(data) }

func (o RenderOpt) Properties(v any) ([]Property, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeGeneric, Message: err.Error(), Cause: err}}
	}
	return o.FlattenJSON(data)
}

func (o RenderOpt) maxDepth() int {
	if o.MaxDepth == 0 {
		return 64
	}
	return o.MaxDepth
}

func (o RenderOpt) FlattenJSON(data []byte) ([]Property, error) {
	root, err := eng.DecodeAll(eng.LimitDepth(gojson.NewBytes(data), o.maxDepth()))
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	pairs := eng.Flatten(root, o.sep())
	out := make([]Property, len(pairs))
	for i, p := range pairs {
		out[i] = Property{Path: p.Path, Content: p.Value}
	}
	return out, nil
}

func (o RenderOpt) Render(v any) ([]string, error) {
	props, err := o.Properties(v)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.Tag()
	}
	return out, nil
}

func (o RenderOpt) Write(w io.Writer, v any) error {
	tags, err := o.Render(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, t := range tags {
		buf.WriteString(o.Indent)
		buf.WriteString(t)
		buf.WriteByte('\n')
	}
	_, err = w.Write(buf.Bytes())
	return wrapIO(err)
}
