package ogp

// WebsiteMetadata is an og:type=website document. It has no properties of
// its own.
type WebsiteMetadata struct {
	Type ObjectType `json:"og:type"`
	Metadata
}

// Website snapshots b as a website document.
func (b *MetadataBuilder) Website() (WebsiteMetadata, error) {
	md, st := b.snapshot()
	if st.err != nil {
		return WebsiteMetadata{}, st.err
	}
	return WebsiteMetadata{Type: Website, Metadata: md}, nil
}

func (w WebsiteMetadata) Kind() ObjectType { return w.Type }

// Validate checks the shared properties and requires at least one image.
func (w WebsiteMetadata) Validate() error { return w.validateObject(ValidateOpt{}) }

func (w WebsiteMetadata) ValidateWith(opt ValidateOpt) error { return w.validateObject(opt) }
