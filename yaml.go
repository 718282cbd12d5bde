package ogp

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlMedia is an og:image / og:video / og:audio entry of a YAML document.
type yamlMedia struct {
	URL       string  `yaml:"url"`
	SecureURL string  `yaml:"secure_url"`
	Type      string  `yaml:"type"`
	Alt       string  `yaml:"alt"`
	Width     *uint32 `yaml:"width"`
	Height    *uint32 `yaml:"height"`
}

type yamlRef struct {
	URL   string `yaml:"url"`
	Disc  uint32 `yaml:"disc"`
	Track uint32 `yaml:"track"`
	Role  string `yaml:"role"`
}

// yamlDocument is the input layout read by LoadYAML. The type-specific
// sections are only read for the matching type.
type yamlDocument struct {
	Type            string      `yaml:"type"`
	Title           string      `yaml:"title"`
	URL             string      `yaml:"url"`
	Description     string      `yaml:"description"`
	SiteName        string      `yaml:"site_name"`
	Determiner      string      `yaml:"determiner"`
	Locale          string      `yaml:"locale"`
	LocaleAlternate []string    `yaml:"locale_alternate"`
	Images          []yamlMedia `yaml:"images"`
	Videos          []yamlMedia `yaml:"videos"`
	Audios          []yamlMedia `yaml:"audios"`

	Article *struct {
		PublishedTime  string   `yaml:"published_time"`
		ModifiedTime   string   `yaml:"modified_time"`
		ExpirationTime string   `yaml:"expiration_time"`
		Authors        []string `yaml:"authors"`
		Section        string   `yaml:"section"`
		Tags           []string `yaml:"tags"`
	} `yaml:"article"`
	Book *struct {
		Authors     []string `yaml:"authors"`
		ISBN        string   `yaml:"isbn"`
		ReleaseDate string   `yaml:"release_date"`
		Tags        []string `yaml:"tags"`
	} `yaml:"book"`
	Profile *struct {
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		Username  string `yaml:"username"`
		Gender    string `yaml:"gender"`
	} `yaml:"profile"`
	Music *struct {
		Duration    *uint32   `yaml:"duration"`
		Albums      []yamlRef `yaml:"albums"`
		Songs       []yamlRef `yaml:"songs"`
		Musicians   []string  `yaml:"musicians"`
		Creators    []string  `yaml:"creators"`
		ReleaseDate string    `yaml:"release_date"`
	} `yaml:"music"`
	Video *struct {
		Actors      []yamlRef `yaml:"actors"`
		Directors   []string  `yaml:"directors"`
		Writers     []string  `yaml:"writers"`
		Duration    *uint32   `yaml:"duration"`
		ReleaseDate string    `yaml:"release_date"`
		Tags        []string  `yaml:"tags"`
		Series      string    `yaml:"series"`
	} `yaml:"video"`
}

func intPtr(p *uint32) *Integer {
	if p == nil {
		return nil
	}
	return Int(*p)
}

// LoadYAML reads a stream of YAML documents and builds each one through the
// builders, so every value gets the same checks as the fluent API. Unknown
// keys are rejected; an unknown type falls back to website. The first error
// stops loading.
func LoadYAML(data []byte) ([]Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var out []Document
	for {
		var in yamlDocument
		if err := dec.Decode(&in); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
		}
		doc, err := in.build()
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (in yamlDocument) base() *MetadataBuilder {
	b := NewBuilder().
		SetTitle(in.Title).
		SetDescription(in.Description).
		SetSiteName(in.SiteName).
		SetDeterminer(ParseDeterminer(in.Determiner))
	if in.URL != "" {
		b.SetURL(in.URL)
	}
	if in.Locale != "" {
		b.SetLocale(in.Locale)
	}
	for _, l := range in.LocaleAlternate {
		b.AddLocaleAlternate(l)
	}
	for _, m := range in.Images {
		img, err := ParseImage(m.URL)
		if b.fail(withPath(err, "/og:image")) {
			continue
		}
		img.SecureURL, img.Type, img.Alt = m.SecureURL, m.Type, m.Alt
		img.Width, img.Height = intPtr(m.Width), intPtr(m.Height)
		b.AddImage(img)
	}
	for _, m := range in.Videos {
		v, err := ParseVideo(m.URL)
		if b.fail(withPath(err, "/og:video")) {
			continue
		}
		v.SecureURL, v.Type, v.Alt = m.SecureURL, m.Type, m.Alt
		v.Width, v.Height = intPtr(m.Width), intPtr(m.Height)
		b.AddVideo(v)
	}
	for _, m := range in.Audios {
		a, err := ParseAudio(m.URL)
		if b.fail(withPath(err, "/og:audio")) {
			continue
		}
		a.SecureURL, a.Type = m.SecureURL, m.Type
		b.AddAudio(a)
	}
	return b
}

func (in yamlDocument) build() (Document, error) {
	b := in.base()
	t := ParseObjectType(in.Type)
	switch t {
	case Article:
		ab := b.Article()
		if s := in.Article; s != nil {
			if s.PublishedTime != "" {
				ab.SetPublishedTime(s.PublishedTime)
			}
			if s.ModifiedTime != "" {
				ab.SetModifiedTime(s.ModifiedTime)
			}
			if s.ExpirationTime != "" {
				ab.SetExpirationTime(s.ExpirationTime)
			}
			for _, a := range s.Authors {
				ab.AddAuthor(a)
			}
			ab.SetSection(s.Section).AddTags(s.Tags...)
		}
		return ab.Build()
	case Book:
		bb := b.Book()
		if s := in.Book; s != nil {
			for _, a := range s.Authors {
				bb.AddAuthor(a)
			}
			bb.SetISBN(s.ISBN).AddTags(s.Tags...)
			if s.ReleaseDate != "" {
				bb.SetReleaseDate(s.ReleaseDate)
			}
		}
		return bb.Build()
	case Profile:
		pb := b.Profile()
		if s := in.Profile; s != nil {
			pb.SetFirstName(s.FirstName).SetLastName(s.LastName).SetUsername(s.Username)
			if s.Gender != "" {
				pb.SetGender(s.Gender)
			}
		}
		return pb.Build()
	case MusicSong:
		mb := b.MusicSong()
		if s := in.Music; s != nil {
			if s.Duration != nil {
				mb.SetDuration(*s.Duration)
			}
			for _, r := range s.Albums {
				mb.AddAlbum(r.URL, r.Disc, r.Track)
			}
			for _, u := range s.Musicians {
				mb.AddMusician(u)
			}
		}
		return mb.Build()
	case MusicAlbum:
		mb := b.MusicAlbum()
		if s := in.Music; s != nil {
			for _, r := range s.Songs {
				mb.AddSong(r.URL, r.Disc, r.Track)
			}
			for _, u := range s.Musicians {
				mb.AddMusician(u)
			}
			if s.ReleaseDate != "" {
				mb.SetReleaseDate(s.ReleaseDate)
			}
		}
		return mb.Build()
	case MusicPlaylist:
		mb := b.MusicPlaylist()
		if s := in.Music; s != nil {
			for _, r := range s.Songs {
				mb.AddSong(r.URL, r.Disc, r.Track)
			}
			for _, u := range s.Creators {
				mb.AddCreator(u)
			}
		}
		return mb.Build()
	case MusicRadioStation:
		mb := b.MusicRadioStation()
		if s := in.Music; s != nil {
			for _, u := range s.Creators {
				mb.AddCreator(u)
			}
		}
		return mb.Build()
	case VideoMovie, VideoEpisode, VideoTvShow, VideoOther:
		vb := b.video(t)
		if s := in.Video; s != nil {
			for _, r := range s.Actors {
				vb.AddActor(r.URL, r.Role)
			}
			for _, u := range s.Directors {
				vb.AddDirector(u)
			}
			for _, u := range s.Writers {
				vb.AddWriter(u)
			}
			if s.Duration != nil {
				vb.SetDuration(*s.Duration)
			}
			if s.ReleaseDate != "" {
				vb.SetReleaseDate(s.ReleaseDate)
			}
			vb.AddTags(s.Tags...)
			if s.Series != "" {
				vb.SetSeries(s.Series)
			}
		}
		return vb.Build()
	default:
		return b.Website()
	}
}
