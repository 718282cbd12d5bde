package ogp

import (
	json "github.com/goccy/go-json"
)

// MusicRef points at a song or album, with its optional position. It
// serializes as [url] or [url, {"disc": .., "track": ..}], so the URL lands
// on the bare property (music:album) and the position on its children
// (music:album:disc, music:album:track).
type MusicRef struct {
	URL   string
	Disc  *Integer
	Track *Integer
}

type musicPosition struct {
	Disc  *Integer `json:"disc,omitempty"`
	Track *Integer `json:"track,omitempty"`
}

func (r MusicRef) MarshalJSON() ([]byte, error) {
	if r.Disc == nil && r.Track == nil {
		return json.Marshal([]any{r.URL})
	}
	return json.Marshal([]any{r.URL, musicPosition{Disc: r.Disc, Track: r.Track}})
}

func cloneRefs(in []MusicRef) []MusicRef {
	if in == nil {
		return nil
	}
	out := make([]MusicRef, len(in))
	for i, r := range in {
		out[i] = MusicRef{URL: r.URL, Disc: cloneInteger(r.Disc), Track: cloneInteger(r.Track)}
	}
	return out
}

// position converts the 1-based disc/track pair; zero means absent.
func position(disc, track uint32) (*Integer, *Integer) {
	var d, t *Integer
	if disc > 0 {
		d = Int(disc)
	}
	if track > 0 {
		t = Int(track)
	}
	return d, t
}

// MusicSongMetadata is an og:type=music.song document.
type MusicSongMetadata struct {
	Type ObjectType `json:"og:type"`
	Metadata
	// Duration is the song's length in seconds.
	Duration  *Integer   `json:"music:duration,omitempty"`
	Albums    []MusicRef `json:"music:album,omitempty"`
	Musicians []string   `json:"music:musician,omitempty"`
}

func (m MusicSongMetadata) Clone() MusicSongMetadata {
	out := m
	out.Metadata = m.Metadata.Clone()
	out.Duration = cloneInteger(m.Duration)
	out.Albums = cloneRefs(m.Albums)
	out.Musicians = cloneStrings(m.Musicians)
	return out
}

type MusicSongBuilder struct {
	extension[MusicSongMetadata]
}

func (b *MetadataBuilder) MusicSong() *MusicSongBuilder {
	md, st := b.snapshot()
	return &MusicSongBuilder{extension[MusicSongMetadata]{sticky: st, doc: MusicSongMetadata{Type: MusicSong, Metadata: md}}}
}

func (b *MusicSongBuilder) SetDuration(seconds uint32) *MusicSongBuilder {
	b.doc.Duration = Int(seconds)
	return b
}

// AddAlbum appends the album this song is on. disc and track are 1-based;
// pass 0 to leave them out.
func (b *MusicSongBuilder) AddAlbum(url string, disc, track uint32) *MusicSongBuilder {
	if !b.checkURL(url, "/music:album") {
		return b
	}
	d, t := position(disc, track)
	b.doc.Albums = append(b.doc.Albums, MusicRef{URL: url, Disc: d, Track: t})
	return b
}

// AddMusician appends the profile URL of a musician.
func (b *MusicSongBuilder) AddMusician(url string) *MusicSongBuilder {
	if b.checkURL(url, "/music:musician") {
		b.doc.Musicians = append(b.doc.Musicians, url)
	}
	return b
}

// MusicAlbumMetadata is an og:type=music.album document.
type MusicAlbumMetadata struct {
	Type ObjectType `json:"og:type"`
	Metadata
	Songs       []MusicRef `json:"music:song,omitempty"`
	Musicians   []string   `json:"music:musician,omitempty"`
	ReleaseDate string     `json:"music:release_date,omitempty"`
}

func (m MusicAlbumMetadata) Clone() MusicAlbumMetadata {
	out := m
	out.Metadata = m.Metadata.Clone()
	out.Songs = cloneRefs(m.Songs)
	out.Musicians = cloneStrings(m.Musicians)
	return out
}

type MusicAlbumBuilder struct {
	extension[MusicAlbumMetadata]
}

func (b *MetadataBuilder) MusicAlbum() *MusicAlbumBuilder {
	md, st := b.snapshot()
	return &MusicAlbumBuilder{extension[MusicAlbumMetadata]{sticky: st, doc: MusicAlbumMetadata{Type: MusicAlbum, Metadata: md}}}
}

// AddSong appends a song on this album; 0 leaves disc or track out.
func (b *MusicAlbumBuilder) AddSong(url string, disc, track uint32) *MusicAlbumBuilder {
	if !b.checkURL(url, "/music:song") {
		return b
	}
	d, t := position(disc, track)
	b.doc.Songs = append(b.doc.Songs, MusicRef{URL: url, Disc: d, Track: t})
	return b
}

func (b *MusicAlbumBuilder) AddMusician(url string) *MusicAlbumBuilder {
	if b.checkURL(url, "/music:musician") {
		b.doc.Musicians = append(b.doc.Musicians, url)
	}
	return b
}

func (b *MusicAlbumBuilder) SetReleaseDate(ts string) *MusicAlbumBuilder {
	if v, ok := b.datetime(ts, "/music:release_date"); ok {
		b.doc.ReleaseDate = v
	}
	return b
}

// MusicPlaylistMetadata is an og:type=music.playlist document.
type MusicPlaylistMetadata struct {
	Type ObjectType `json:"og:type"`
	Metadata
	Songs    []MusicRef `json:"music:song,omitempty"`
	Creators []string   `json:"music:creator,omitempty"`
}

func (m MusicPlaylistMetadata) Clone() MusicPlaylistMetadata {
	out := m
	out.Metadata = m.Metadata.Clone()
	out.Songs = cloneRefs(m.Songs)
	out.Creators = cloneStrings(m.Creators)
	return out
}

type MusicPlaylistBuilder struct {
	extension[MusicPlaylistMetadata]
}

func (b *MetadataBuilder) MusicPlaylist() *MusicPlaylistBuilder {
	md, st := b.snapshot()
	return &MusicPlaylistBuilder{extension[MusicPlaylistMetadata]{sticky: st, doc: MusicPlaylistMetadata{Type: MusicPlaylist, Metadata: md}}}
}

func (b *MusicPlaylistBuilder) AddSong(url string, disc, track uint32) *MusicPlaylistBuilder {
	if !b.checkURL(url, "/music:song") {
		return b
	}
	d, t := position(disc, track)
	b.doc.Songs = append(b.doc.Songs, MusicRef{URL: url, Disc: d, Track: t})
	return b
}

func (b *MusicPlaylistBuilder) AddCreator(url string) *MusicPlaylistBuilder {
	if b.checkURL(url, "/music:creator") {
		b.doc.Creators = append(b.doc.Creators, url)
	}
	return b
}

// MusicRadioStationMetadata is an og:type=music.radio_station document.
type MusicRadioStationMetadata struct {
	Type ObjectType `json:"og:type"`
	Metadata
	Creators []string `json:"music:creator,omitempty"`
}

func (m MusicRadioStationMetadata) Clone() MusicRadioStationMetadata {
	out := m
	out.Metadata = m.Metadata.Clone()
	out.Creators = cloneStrings(m.Creators)
	return out
}

type MusicRadioStationBuilder struct {
	extension[MusicRadioStationMetadata]
}

func (b *MetadataBuilder) MusicRadioStation() *MusicRadioStationBuilder {
	md, st := b.snapshot()
	return &MusicRadioStationBuilder{extension[MusicRadioStationMetadata]{sticky: st, doc: MusicRadioStationMetadata{Type: MusicRadioStation, Metadata: md}}}
}

func (b *MusicRadioStationBuilder) AddCreator(url string) *MusicRadioStationBuilder {
	if b.checkURL(url, "/music:creator") {
		b.doc.Creators = append(b.doc.Creators, url)
	}
	return b
}

func (m MusicSongMetadata) Kind() ObjectType { return m.Type }

// Validate checks the shared properties and requires at least one image.
func (m MusicSongMetadata) Validate() error { return m.validateObject(ValidateOpt{}) }

func (m MusicSongMetadata) ValidateWith(opt ValidateOpt) error { return m.validateObject(opt) }

func (m MusicAlbumMetadata) Kind() ObjectType { return m.Type }

// Validate checks the shared properties and requires at least one image.
func (m MusicAlbumMetadata) Validate() error { return m.validateObject(ValidateOpt{}) }

func (m MusicAlbumMetadata) ValidateWith(opt ValidateOpt) error { return m.validateObject(opt) }

func (m MusicPlaylistMetadata) Kind() ObjectType { return m.Type }

// Validate checks the shared properties and requires at least one image.
func (m MusicPlaylistMetadata) Validate() error { return m.validateObject(ValidateOpt{}) }

func (m MusicPlaylistMetadata) ValidateWith(opt ValidateOpt) error { return m.validateObject(opt) }

func (m MusicRadioStationMetadata) Kind() ObjectType { return m.Type }

// Validate checks the shared properties and requires at least one image.
func (m MusicRadioStationMetadata) Validate() error { return m.validateObject(ValidateOpt{}) }

func (m MusicRadioStationMetadata) ValidateWith(opt ValidateOpt) error { return m.validateObject(opt) }
