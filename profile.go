package ogp

// ProfileMetadata is an og:type=profile document.
type ProfileMetadata struct {
	Type ObjectType `json:"og:type"`
	Metadata
	// FirstName is a name normally given to an individual by a parent or self-chosen.
	FirstName string `json:"profile:first_name,omitempty"`
	// LastName is a name inherited from a family or marriage.
	LastName string `json:"profile:last_name,omitempty"`
	// Username is a short unique string to identify them.
	Username string `json:"profile:username,omitempty"`
	Gender   Gender `json:"profile:gender,omitempty"`
}

func (p ProfileMetadata) Clone() ProfileMetadata {
	out := p
	out.Metadata = p.Metadata.Clone()
	return out
}

type ProfileBuilder struct {
	extension[ProfileMetadata]
}

// Profile derives a ProfileBuilder from the current state of b.
func (b *MetadataBuilder) Profile() *ProfileBuilder {
	md, st := b.snapshot()
	return &ProfileBuilder{extension[ProfileMetadata]{sticky: st, doc: ProfileMetadata{Type: Profile, Metadata: md}}}
}

func (b *ProfileBuilder) SetFirstName(name string) *ProfileBuilder {
	b.doc.FirstName = name
	return b
}

func (b *ProfileBuilder) SetLastName(name string) *ProfileBuilder {
	b.doc.LastName = name
	return b
}

func (b *ProfileBuilder) SetUsername(name string) *ProfileBuilder {
	b.doc.Username = name
	return b
}

// SetGender accepts "male" or "female"; anything else is a generic issue.
func (b *ProfileBuilder) SetGender(g string) *ProfileBuilder {
	parsed := ParseGender(g)
	if parsed == "" {
		b.fail(Issues{{Path: "/profile:gender", Code: CodeGeneric, Message: "profile:gender must be 'male' or 'female'", Params: map[string]any{"value": g}}})
		return b
	}
	b.doc.Gender = parsed
	return b
}

func (p ProfileMetadata) Kind() ObjectType { return p.Type }

// Validate checks the shared properties and requires at least one image.
func (p ProfileMetadata) Validate() error { return p.validateObject(ValidateOpt{}) }

func (p ProfileMetadata) ValidateWith(opt ValidateOpt) error { return p.validateObject(opt) }
