package ogp

// Document is implemented by every type-tagged document of this package.
type Document interface {
	Validatable
	ValidateWith(opt ValidateOpt) error
	Kind() ObjectType
}

// Kind returns the og:type of the document.
func (o ObjectMetadata) Kind() ObjectType { return o.Type }
