package ogp

import (
	json "github.com/goccy/go-json"
)

// ActorRef is a video:actor entry: a profile URL and the role played. Like
// MusicRef it serializes as [url] or [url, {"role": ..}], rendering
// video:actor and video:actor:role.
type ActorRef struct {
	URL  string
	Role string
}

type actorRole struct {
	Role string `json:"role"`
}

func (r ActorRef) MarshalJSON() ([]byte, error) {
	if r.Role == "" {
		return json.Marshal([]any{r.URL})
	}
	return json.Marshal([]any{r.URL, actorRole{Role: r.Role}})
}

// VideoMetadata covers the video.movie, video.episode, video.tv_show and
// video.other documents; Series is only set for episodes.
type VideoMetadata struct {
	Type ObjectType `json:"og:type"`
	Metadata
	Actors    []ActorRef `json:"video:actor,omitempty"`
	Directors []string   `json:"video:director,omitempty"`
	Writers   []string   `json:"video:writer,omitempty"`
	// Duration is the length in seconds.
	Duration    *Integer `json:"video:duration,omitempty"`
	ReleaseDate string   `json:"video:release_date,omitempty"`
	Tags        []string `json:"video:tag,omitempty"`
	// Series is the video.tv_show an episode belongs to.
	Series string `json:"video:series,omitempty"`
}

func (v VideoMetadata) Clone() VideoMetadata {
	out := v
	out.Metadata = v.Metadata.Clone()
	if v.Actors != nil {
		out.Actors = append([]ActorRef(nil), v.Actors...)
	}
	out.Directors = cloneStrings(v.Directors)
	out.Writers = cloneStrings(v.Writers)
	out.Duration = cloneInteger(v.Duration)
	out.Tags = cloneStrings(v.Tags)
	return out
}

// VideoBuilder sets the video:* properties. One builder serves all four
// video types.
type VideoBuilder struct {
	extension[VideoMetadata]
}

func (b *MetadataBuilder) video(t ObjectType) *VideoBuilder {
	md, st := b.snapshot()
	return &VideoBuilder{extension[VideoMetadata]{sticky: st, doc: VideoMetadata{Type: t, Metadata: md}}}
}

func (b *MetadataBuilder) VideoMovie() *VideoBuilder   { return b.video(VideoMovie) }
func (b *MetadataBuilder) VideoEpisode() *VideoBuilder { return b.video(VideoEpisode) }
func (b *MetadataBuilder) VideoTvShow() *VideoBuilder  { return b.video(VideoTvShow) }
func (b *MetadataBuilder) VideoOther() *VideoBuilder   { return b.video(VideoOther) }

// AddActor appends an actor profile URL and the role they played (may be empty).
func (b *VideoBuilder) AddActor(url, role string) *VideoBuilder {
	if b.checkURL(url, "/video:actor") {
		b.doc.Actors = append(b.doc.Actors, ActorRef{URL: url, Role: role})
	}
	return b
}

func (b *VideoBuilder) AddDirector(url string) *VideoBuilder {
	if b.checkURL(url, "/video:director") {
		b.doc.Directors = append(b.doc.Directors, url)
	}
	return b
}

func (b *VideoBuilder) AddWriter(url string) *VideoBuilder {
	if b.checkURL(url, "/video:writer") {
		b.doc.Writers = append(b.doc.Writers, url)
	}
	return b
}

func (b *VideoBuilder) SetDuration(seconds uint32) *VideoBuilder {
	b.doc.Duration = Int(seconds)
	return b
}

func (b *VideoBuilder) SetReleaseDate(ts string) *VideoBuilder {
	if v, ok := b.datetime(ts, "/video:release_date"); ok {
		b.doc.ReleaseDate = v
	}
	return b
}

func (b *VideoBuilder) AddTag(tag string) *VideoBuilder {
	b.doc.Tags = append(b.doc.Tags, tag)
	return b
}

func (b *VideoBuilder) AddTags(tags ...string) *VideoBuilder {
	b.doc.Tags = append(b.doc.Tags, tags...)
	return b
}

// SetSeries sets the video.tv_show URL of an episode. It is rejected for the
// other video types.
func (b *VideoBuilder) SetSeries(url string) *VideoBuilder {
	if b.doc.Type != VideoEpisode {
		b.fail(Issues{{Path: "/video:series", Code: CodeGeneric, Message: "video:series applies to video.episode only", Params: map[string]any{"type": b.doc.Type.String()}}})
		return b
	}
	if b.checkURL(url, "/video:series") {
		b.doc.Series = url
	}
	return b
}

func (v VideoMetadata) Kind() ObjectType { return v.Type }

// Validate checks the shared properties and requires at least one image.
func (v VideoMetadata) Validate() error { return v.validateObject(ValidateOpt{}) }

func (v VideoMetadata) ValidateWith(opt ValidateOpt) error { return v.validateObject(opt) }
