package ogp

// ArticleMetadata is an og:type=article document.
type ArticleMetadata struct {
	Type ObjectType `json:"og:type"`
	Metadata
	// PublishedTime is when the article was first published.
	PublishedTime string `json:"article:published_time,omitempty"`
	// ModifiedTime is when the article was last changed.
	ModifiedTime string `json:"article:modified_time,omitempty"`
	// ExpirationTime is when the article is out of date after.
	ExpirationTime string   `json:"article:expiration_time,omitempty"`
	Authors        []string `json:"article:author,omitempty"`
	// Section is a high-level section name, e.g. Technology.
	Section string   `json:"article:section,omitempty"`
	Tags    []string `json:"article:tag,omitempty"`
}

// Clone returns a deep copy of the document.
func (a ArticleMetadata) Clone() ArticleMetadata {
	out := a
	out.Metadata = a.Metadata.Clone()
	out.Authors = cloneStrings(a.Authors)
	out.Tags = cloneStrings(a.Tags)
	return out
}

// ArticleBuilder sets the article:* properties on a snapshot of a base builder.
type ArticleBuilder struct {
	extension[ArticleMetadata]
}

// Article derives an ArticleBuilder from the current state of b. Later
// changes to b are not seen by the article and vice versa.
func (b *MetadataBuilder) Article() *ArticleBuilder {
	md, st := b.snapshot()
	return &ArticleBuilder{extension[ArticleMetadata]{sticky: st, doc: ArticleMetadata{Type: Article, Metadata: md}}}
}

// SetPublishedTime parses an ISO 8601 date/time and stores it in UTC.
func (b *ArticleBuilder) SetPublishedTime(ts string) *ArticleBuilder {
	if v, ok := b.datetime(ts, "/article:published_time"); ok {
		b.doc.PublishedTime = v
	}
	return b
}

func (b *ArticleBuilder) SetModifiedTime(ts string) *ArticleBuilder {
	if v, ok := b.datetime(ts, "/article:modified_time"); ok {
		b.doc.ModifiedTime = v
	}
	return b
}

func (b *ArticleBuilder) SetExpirationTime(ts string) *ArticleBuilder {
	if v, ok := b.datetime(ts, "/article:expiration_time"); ok {
		b.doc.ExpirationTime = v
	}
	return b
}

// AddAuthor appends a writer of the article.
func (b *ArticleBuilder) AddAuthor(author string) *ArticleBuilder {
	b.doc.Authors = append(b.doc.Authors, author)
	return b
}

func (b *ArticleBuilder) SetSection(section string) *ArticleBuilder {
	b.doc.Section = section
	return b
}

// AddTag appends one tag; duplicates and order are kept.
func (b *ArticleBuilder) AddTag(tag string) *ArticleBuilder {
	b.doc.Tags = append(b.doc.Tags, tag)
	return b
}

// AddTags appends tags in order.
func (b *ArticleBuilder) AddTags(tags ...string) *ArticleBuilder {
	b.doc.Tags = append(b.doc.Tags, tags...)
	return b
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func (a ArticleMetadata) Kind() ObjectType { return a.Type }

// Validate checks the shared properties and requires at least one image.
func (a ArticleMetadata) Validate() error { return a.validateObject(ValidateOpt{}) }

func (a ArticleMetadata) ValidateWith(opt ValidateOpt) error { return a.validateObject(opt) }
