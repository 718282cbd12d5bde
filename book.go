package ogp

// BookMetadata is an og:type=book document.
type BookMetadata struct {
	Type ObjectType `json:"og:type"`
	Metadata
	// Authors who wrote this book.
	Authors []string `json:"book:author,omitempty"`
	ISBN    string   `json:"book:isbn,omitempty"`
	// ReleaseDate is the date the book was released.
	ReleaseDate string   `json:"book:release_date,omitempty"`
	Tags        []string `json:"book:tag,omitempty"`
}

func (bk BookMetadata) Clone() BookMetadata {
	out := bk
	out.Metadata = bk.Metadata.Clone()
	out.Authors = cloneStrings(bk.Authors)
	out.Tags = cloneStrings(bk.Tags)
	return out
}

type BookBuilder struct {
	extension[BookMetadata]
}

// Book derives a BookBuilder from the current state of b.
func (b *MetadataBuilder) Book() *BookBuilder {
	md, st := b.snapshot()
	return &BookBuilder{extension[BookMetadata]{sticky: st, doc: BookMetadata{Type: Book, Metadata: md}}}
}

func (b *BookBuilder) AddAuthor(author string) *BookBuilder {
	b.doc.Authors = append(b.doc.Authors, author)
	return b
}

func (b *BookBuilder) SetISBN(isbn string) *BookBuilder {
	b.doc.ISBN = isbn
	return b
}

// SetReleaseDate parses an ISO 8601 date/time and stores it in UTC.
func (b *BookBuilder) SetReleaseDate(ts string) *BookBuilder {
	if v, ok := b.datetime(ts, "/book:release_date"); ok {
		b.doc.ReleaseDate = v
	}
	return b
}

func (b *BookBuilder) AddTag(tag string) *BookBuilder {
	b.doc.Tags = append(b.doc.Tags, tag)
	return b
}

func (b *BookBuilder) AddTags(tags ...string) *BookBuilder {
	b.doc.Tags = append(b.doc.Tags, tags...)
	return b
}

func (b BookMetadata) Kind() ObjectType { return b.Type }

// Validate checks the shared properties and requires at least one image.
func (b BookMetadata) Validate() error { return b.validateObject(ValidateOpt{}) }

func (b BookMetadata) ValidateWith(opt ValidateOpt) error { return b.validateObject(opt) }
