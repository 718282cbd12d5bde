package ogp_test

import (
	"testing"

	ogp "github.com/reoring/ogp"
)

func TestArticle_DateTimesAreCanonical(t *testing.T) {
	art, err := base().Article().
		SetPublishedTime("2024-03-01 12:00:00.5 UTC").
		SetModifiedTime("2024-03-02T09:30:00+09:00").
		SetExpirationTime("2025-01-01").
		AddAuthor("https://example.com/jane").
		SetSection("Technology").
		AddTags("Cross platform", "Editor").
		AddTag("Editor").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if art.Type != ogp.Article {
		t.Fatalf("type = %v", art.Type)
	}
	if art.PublishedTime != "2024-03-01T12:00:00.5Z" || art.ModifiedTime != "2024-03-02T00:30:00Z" || art.ExpirationTime != "2025-01-01T00:00:00Z" {
		t.Fatalf("unexpected times: %q %q %q", art.PublishedTime, art.ModifiedTime, art.ExpirationTime)
	}
	if len(art.Tags) != 3 || art.Tags[2] != "Editor" {
		t.Fatalf("tags: %v", art.Tags)
	}
	if err := art.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestArticle_InvalidDateTime(t *testing.T) {
	ab := base().Article().SetPublishedTime("yesterday")
	iss, _ := ogp.AsIssues(ab.Err())
	if iss.First().Code != ogp.CodeInvalidFormat || iss.First().Path != "/article:published_time" || iss.First().Params["value"] != "yesterday" {
		t.Fatalf("got %v", iss)
	}
	if ab.Document().PublishedTime != "" {
		t.Fatalf("rejected value must not be stored")
	}
}

func TestProfile(t *testing.T) {
	p, err := base().Profile().SetFirstName("Jane").SetLastName("Doe").SetUsername("jdoe").SetGender("female").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if p.Gender != ogp.Female || p.Type != ogp.Profile {
		t.Fatalf("unexpected profile: %+v", p)
	}
	pb := base().Profile().SetGender("other")
	if iss, _ := ogp.AsIssues(pb.Err()); iss.First().Path != "/profile:gender" || iss.First().Code != ogp.CodeGeneric {
		t.Fatalf("got %v", pb.Err())
	}
}

func TestBook(t *testing.T) {
	bk, err := base().Book().AddAuthor("https://example.com/author").SetISBN("978-3-16-148410-0").SetReleaseDate("2020-05-01").AddTags("a", "b").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if bk.ReleaseDate != "2020-05-01T00:00:00Z" || bk.ISBN != "978-3-16-148410-0" || len(bk.Tags) != 2 {
		t.Fatalf("unexpected book: %+v", bk)
	}
}

func TestWebsite(t *testing.T) {
	w, err := base().Website()
	if err != nil {
		t.Fatalf("website: %v", err)
	}
	if w.Type != ogp.Website || w.Title != "The Rock" {
		t.Fatalf("unexpected: %+v", w)
	}
}

func TestMusicSong(t *testing.T) {
	s, err := base().MusicSong().
		SetDuration(215).
		AddAlbum("https://example.com/album", 1, 3).
		AddAlbum("https://example.com/single", 0, 0).
		AddMusician("https://example.com/band").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if *s.Duration != 215 || len(s.Albums) != 2 {
		t.Fatalf("unexpected song: %+v", s)
	}
	if *s.Albums[0].Disc != 1 || *s.Albums[0].Track != 3 {
		t.Fatalf("position lost: %+v", s.Albums[0])
	}
	if s.Albums[1].Disc != nil || s.Albums[1].Track != nil {
		t.Fatalf("zero position must be absent: %+v", s.Albums[1])
	}
	if _, err := base().MusicSong().AddMusician("band").Build(); !ogp.HasCode(err, ogp.CodeParseError) {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestMusicAlbumPlaylistRadio(t *testing.T) {
	al, err := base().MusicAlbum().AddSong("https://example.com/s1", 1, 1).AddMusician("https://example.com/m").SetReleaseDate("2001-02-03").Build()
	if err != nil || al.Type != ogp.MusicAlbum || len(al.Songs) != 1 || al.ReleaseDate != "2001-02-03T00:00:00Z" {
		t.Fatalf("album: %+v %v", al, err)
	}
	pl, err := base().MusicPlaylist().AddSong("https://example.com/s1", 0, 2).AddCreator("https://example.com/dj").Build()
	if err != nil || pl.Type != ogp.MusicPlaylist || len(pl.Creators) != 1 || pl.Songs[0].Disc != nil {
		t.Fatalf("playlist: %+v %v", pl, err)
	}
	rs, err := base().MusicRadioStation().AddCreator("https://example.com/fm").Build()
	if err != nil || rs.Type != ogp.MusicRadioStation || len(rs.Creators) != 1 {
		t.Fatalf("radio: %+v %v", rs, err)
	}
}

func TestVideo(t *testing.T) {
	ep, err := base().VideoEpisode().
		AddActor("https://example.com/actor", "Hero").
		AddDirector("https://example.com/dir").
		AddWriter("https://example.com/writer").
		SetDuration(3600).
		SetReleaseDate("1996-06-07").
		AddTags("action").
		SetSeries("https://example.com/show").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if ep.Type != ogp.VideoEpisode || ep.Series != "https://example.com/show" || ep.Actors[0].Role != "Hero" {
		t.Fatalf("unexpected episode: %+v", ep)
	}

	for _, vb := range []*ogp.VideoBuilder{base().VideoMovie(), base().VideoTvShow(), base().VideoOther()} {
		vb.SetSeries("https://example.com/show")
		iss, _ := ogp.AsIssues(vb.Err())
		if iss.First().Path != "/video:series" || iss.First().Code != ogp.CodeGeneric {
			t.Fatalf("series on %v: got %v", vb.Document().Type, vb.Err())
		}
		if vb.Document().Series != "" {
			t.Fatalf("series must not be stored")
		}
	}
}
