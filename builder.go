package ogp

import "github.com/reoring/ogp/codec"

// sticky records the first failure of a builder chain. Setters that fail
// leave the document untouched; later setters keep running.
type sticky struct {
	err error
}

// Err returns the first error recorded by a setter, or nil.
func (s *sticky) Err() error { return s.err }

func (s *sticky) fail(err error) bool {
	if err == nil {
		return false
	}
	if s.err == nil {
		s.err = err
	}
	return true
}

// checkURL records an issue at path unless raw is an absolute http(s) URL.
func (s *sticky) checkURL(raw, path string) bool {
	_, err := ValidateHTTPURL(raw)
	return !s.fail(withPath(err, path))
}

// datetime canonicalizes an ISO 8601 value, recording invalid_format at path
// when it does not parse.
func (s *sticky) datetime(raw, path string) (string, bool) {
	v, err := codec.Canonical(codec.DateTime(), raw)
	if err != nil {
		s.fail(newIssue(path, CodeInvalidFormat, err, "value", raw))
		return "", false
	}
	return v, true
}

// MetadataBuilder assembles a Metadata value through chained setters.
//
//	b := ogp.NewBuilder().
//		SetTitle("The Rock").
//		SetURL("https://www.imdb.com/title/tt0117500/").
//		AddImageURL("https://ia.media-imdb.com/images/rock.jpg")
//	md, err := b.Build()
//
// Setters that validate (URLs, locales) never panic: a rejected value is
// recorded and reported by Err and Build.
type MetadataBuilder struct {
	sticky
	metadata Metadata
}

// NewBuilder returns an empty builder.
func NewBuilder() *MetadataBuilder { return &MetadataBuilder{} }

// WithType returns a freshly defaulted document tagged with t.
func WithType(t ObjectType) ObjectMetadata { return ObjectMetadata{Type: t} }

func (b *MetadataBuilder) SetTitle(title string) *MetadataBuilder {
	b.metadata.Title = title
	return b
}

func (b *MetadataBuilder) SetDescription(description string) *MetadataBuilder {
	b.metadata.Description = description
	return b
}

// SetURL sets og:url; it must be an absolute http or https URL.
func (b *MetadataBuilder) SetURL(raw string) *MetadataBuilder {
	if _, err := ValidateHTTPURL(raw); b.fail(withPath(err, "/og:url")) {
		return b
	}
	b.metadata.URL = raw
	return b
}

func (b *MetadataBuilder) SetSiteName(name string) *MetadataBuilder {
	b.metadata.SiteName = name
	return b
}

func (b *MetadataBuilder) SetDeterminer(d Determiner) *MetadataBuilder {
	b.metadata.Determiner = d
	return b
}

// SetLocale sets og:locale after running ValidateLocale.
func (b *MetadataBuilder) SetLocale(locale string) *MetadataBuilder {
	if b.fail(withPath(ValidateLocale(locale), "/og:locale")) {
		return b
	}
	b.metadata.Locale = locale
	return b
}

// AddLocaleAlternate appends to og:locale:alternate. Duplicates are kept.
func (b *MetadataBuilder) AddLocaleAlternate(locale string) *MetadataBuilder {
	if b.fail(withPath(ValidateLocale(locale), "/og:locale:alternate")) {
		return b
	}
	b.metadata.LocaleAlternate = append(b.metadata.LocaleAlternate, locale)
	return b
}

func (b *MetadataBuilder) AddImage(img Image) *MetadataBuilder {
	b.metadata.Images = append(b.metadata.Images, img.clone())
	return b
}

func (b *MetadataBuilder) AddVideo(v Video) *MetadataBuilder {
	b.metadata.Videos = append(b.metadata.Videos, v.clone())
	return b
}

func (b *MetadataBuilder) AddAudio(a Audio) *MetadataBuilder {
	b.metadata.Audios = append(b.metadata.Audios, a)
	return b
}

// AddImageURL parses raw with ParseImage and appends the result.
func (b *MetadataBuilder) AddImageURL(raw string) *MetadataBuilder {
	img, err := ParseImage(raw)
	if b.fail(withPath(err, "/og:image")) {
		return b
	}
	return b.AddImage(img)
}

// AddVideoURL parses raw with ParseVideo and appends the result.
func (b *MetadataBuilder) AddVideoURL(raw string) *MetadataBuilder {
	v, err := ParseVideo(raw)
	if b.fail(withPath(err, "/og:video")) {
		return b
	}
	return b.AddVideo(v)
}

// AddAudioURL parses raw with ParseAudio and appends the result.
func (b *MetadataBuilder) AddAudioURL(raw string) *MetadataBuilder {
	a, err := ParseAudio(raw)
	if b.fail(withPath(err, "/og:audio")) {
		return b
	}
	return b.AddAudio(a)
}

// Metadata returns a deep-copied snapshot of the current state.
func (b *MetadataBuilder) Metadata() Metadata { return b.metadata.Clone() }

// Build returns the snapshot, or the first setter error.
func (b *MetadataBuilder) Build() (Metadata, error) {
	if b.err != nil {
		return Metadata{}, b.err
	}
	return b.Metadata(), nil
}

// MustBuild is like Build but panics on error.
func (b *MetadataBuilder) MustBuild() Metadata {
	md, err := b.Build()
	if err != nil {
		panic(err)
	}
	return md
}

// snapshot copies the current state for an extension builder, together with
// the error recorded so far.
func (b *MetadataBuilder) snapshot() (Metadata, sticky) {
	return b.Metadata(), sticky{err: b.err}
}

// extension is the state shared by the type-specific builders: the sticky
// error inherited from the base builder and the document under construction.
type extension[T interface{ Clone() T }] struct {
	sticky
	doc T
}

// Document returns a snapshot of the document.
func (e *extension[T]) Document() T { return e.doc.Clone() }

// Build returns the snapshot, or the first setter error of the chain
// (including an error inherited from the base builder).
func (e *extension[T]) Build() (T, error) {
	if e.err != nil {
		var zero T
		return zero, e.err
	}
	return e.Document(), nil
}

// MustBuild is like Build but panics on error.
func (e *extension[T]) MustBuild() T {
	doc, err := e.Build()
	if err != nil {
		panic(err)
	}
	return doc
}
