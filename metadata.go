package ogp

import "strconv"

// Metadata holds the Open Graph properties shared by every object type.
// Field order is document order when rendered.
type Metadata struct {
	// URL is the canonical, undecorated URL of the page.
	URL string `json:"og:url,omitempty"`
	// Title without branding such as the site name.
	Title string `json:"og:title,omitempty"`
	// Description is usually one to two sentences.
	Description string     `json:"og:description,omitempty"`
	SiteName    string     `json:"og:site_name,omitempty"`
	Determiner  Determiner `json:"og:determiner,omitempty"`
	// Locale in language_TERRITORY form; og:locale defaults to en_US when absent.
	Locale          string   `json:"og:locale,omitempty"`
	LocaleAlternate []string `json:"og:locale:alternate,omitempty"`

	Images []Image `json:"og:image,omitempty"`
	Videos []Video `json:"og:video,omitempty"`
	Audios []Audio `json:"og:audio,omitempty"`
}

// ObjectMetadata is a bare type-tagged document: the og:type discriminant
// plus the shared Metadata, flattened into one object when serialized. The
// typed documents (ArticleMetadata, ...) declare the same two leading fields.
type ObjectMetadata struct {
	Type ObjectType `json:"og:type"`
	Metadata
}

// Clone returns a deep copy; the result shares no slices with m.
func (m Metadata) Clone() Metadata {
	out := m
	if m.LocaleAlternate != nil {
		out.LocaleAlternate = append([]string(nil), m.LocaleAlternate...)
	}
	if m.Images != nil {
		out.Images = make([]Image, len(m.Images))
		for i, img := range m.Images {
			out.Images[i] = img.clone()
		}
	}
	if m.Videos != nil {
		out.Videos = make([]Video, len(m.Videos))
		for i, v := range m.Videos {
			out.Videos[i] = v.clone()
		}
	}
	if m.Audios != nil {
		out.Audios = append([]Audio(nil), m.Audios...)
	}
	return out
}

// Validate checks title, url and description (in that order), then every
// media entry. Only the first failure is reported.
func (m Metadata) Validate() error { return m.ValidateWith(ValidateOpt{}) }

// ValidateWith is Validate with options.
func (m Metadata) ValidateWith(opt ValidateOpt) error {
	switch {
	case m.Title == "":
		return newIssue("/og:title", CodeRequired, nil, "property", "title")
	case m.URL == "":
		return newIssue("/og:url", CodeRequired, nil, "property", "url")
	case m.Description == "":
		return newIssue("/og:description", CodeRequired, nil, "property", "description")
	case opt.RequireImage && len(m.Images) == 0:
		return newIssue("/og:image", CodeRequired, nil, "property", "image")
	}
	for i, img := range m.Images {
		p := "/og:image/" + strconv.Itoa(i)
		if err := img.Validate(); err != nil {
			return withPath(err, p)
		}
		if opt.StrictImageExtensions {
			if err := validateImageExtension(img.URL); err != nil {
				return withPath(err, p)
			}
		}
	}
	for i, v := range m.Videos {
		if err := v.Validate(); err != nil {
			return withPath(err, "/og:video/"+strconv.Itoa(i))
		}
	}
	for i, a := range m.Audios {
		if err := a.Validate(); err != nil {
			return withPath(err, "/og:audio/"+strconv.Itoa(i))
		}
	}
	return nil
}

// Clone returns a deep copy of the document.
func (o ObjectMetadata) Clone() ObjectMetadata {
	return ObjectMetadata{Type: o.Type, Metadata: o.Metadata.Clone()}
}

// Validate checks a complete typed document: the shared properties plus at
// least one image.
func (o ObjectMetadata) Validate() error { return o.validateObject(ValidateOpt{}) }

// ValidateWith is Validate with options; RequireImage is always enforced.
func (o ObjectMetadata) ValidateWith(opt ValidateOpt) error { return o.validateObject(opt) }

// validateObject is the check shared by every typed document.
func (m Metadata) validateObject(opt ValidateOpt) error {
	opt.RequireImage = true
	return m.ValidateWith(opt)
}
