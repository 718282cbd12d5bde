package ogp

// ObjectType is the og:type of a document. The zero value is Website.
type ObjectType int

const (
	Website ObjectType = iota
	MusicSong
	MusicAlbum
	MusicPlaylist
	MusicRadioStation
	VideoMovie
	VideoEpisode
	VideoTvShow
	VideoOther
	Article
	Book
	Profile
)

var objectTypeTokens = [...]string{
	Website:           "website",
	MusicSong:         "music.song",
	MusicAlbum:        "music.album",
	MusicPlaylist:     "music.playlist",
	MusicRadioStation: "music.radio_station",
	VideoMovie:        "video.movie",
	VideoEpisode:      "video.episode",
	VideoTvShow:       "video.tv_show",
	VideoOther:        "video.other",
	Article:           "article",
	Book:              "book",
	Profile:           "profile",
}

// ObjectTypes lists every variant in declaration order.
func ObjectTypes() []ObjectType {
	out := make([]ObjectType, len(objectTypeTokens))
	for i := range objectTypeTokens {
		out[i] = ObjectType(i)
	}
	return out
}

// ParseObjectType maps a dot-notation token to its variant. It never fails:
// unknown tokens map to Website.
func ParseObjectType(s string) ObjectType {
	for i, tok := range objectTypeTokens {
		if tok == s {
			return ObjectType(i)
		}
	}
	return Website
}

// String returns the canonical token (e.g. "music.song").
func (t ObjectType) String() string {
	if t < 0 || int(t) >= len(objectTypeTokens) {
		return objectTypeTokens[Website]
	}
	return objectTypeTokens[t]
}

func (t ObjectType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *ObjectType) UnmarshalText(b []byte) error {
	*t = ParseObjectType(string(b))
	return nil
}

// Determiner is the word that appears before the title ("a", "the", ...).
// The zero value is Blank, which is omitted when rendered.
type Determiner string

const (
	Blank Determiner = ""
	A     Determiner = "a"
	An    Determiner = "an"
	The   Determiner = "the"
	Auto  Determiner = "auto"
)

// ParseDeterminer maps a literal token to its variant; unknown input is Blank.
func ParseDeterminer(s string) Determiner {
	switch d := Determiner(s); d {
	case A, An, The, Auto:
		return d
	}
	return Blank
}

func (d Determiner) String() string { return string(d) }

// UnmarshalText is total: unknown tokens decode to Blank.
func (d *Determiner) UnmarshalText(b []byte) error {
	*d = ParseDeterminer(string(b))
	return nil
}

// Gender is the profile:gender value. The zero value is unset.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender returns Male or Female, or "" for anything else.
func ParseGender(s string) Gender {
	switch Gender(s) {
	case Male, Female:
		return Gender(s)
	}
	return ""
}
