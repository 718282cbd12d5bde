package ogp_test

import (
	"testing"

	ogp "github.com/reoring/ogp"
)

func base() *ogp.MetadataBuilder {
	return ogp.NewBuilder().
		SetTitle("The Rock").
		SetURL("https://www.imdb.com/title/tt0117500/").
		SetDescription("A 1996 film.").
		SetSiteName("IMDb").
		SetLocale("en_US").
		AddImageURL("https://ia.media-imdb.com/images/rock.jpg")
}

func TestBuilder_Build(t *testing.T) {
	md, err := base().AddLocaleAlternate("fr_FR").AddLocaleAlternate("fr_FR").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if md.Title != "The Rock" || md.Locale != "en_US" || len(md.Images) != 1 {
		t.Fatalf("unexpected metadata: %+v", md)
	}
	if len(md.LocaleAlternate) != 2 {
		t.Fatalf("duplicates must be kept: %v", md.LocaleAlternate)
	}
	if err := md.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestBuilder_StickyError(t *testing.T) {
	b := ogp.NewBuilder().SetURL("https://ok.example.com/")
	b.SetURL("ftp://bad.example.com/").SetLocale("en-US").SetTitle("after")
	iss, ok := ogp.AsIssues(b.Err())
	if !ok || iss.First().Code != ogp.CodeInvalidScheme || iss.First().Path != "/og:url" {
		t.Fatalf("first error must be kept, got %v", b.Err())
	}
	snap := b.Metadata()
	if snap.URL != "https://ok.example.com/" {
		t.Fatalf("rejected value must not be stored: %q", snap.URL)
	}
	if snap.Title != "after" {
		t.Fatalf("setters after a failure still apply: %q", snap.Title)
	}
	if _, err := b.Build(); err == nil {
		t.Fatalf("Build must report the sticky error")
	}
}

func TestBuilder_LocaleErrors(t *testing.T) {
	b := ogp.NewBuilder().SetLocale("")
	if iss, _ := ogp.AsIssues(b.Err()); iss.First().Code != ogp.CodeLocaleEmpty || iss.First().Path != "/og:locale" {
		t.Fatalf("got %v", b.Err())
	}
	b = ogp.NewBuilder().AddLocaleAlternate("en_JJ")
	if iss, _ := ogp.AsIssues(b.Err()); iss.First().Code != ogp.CodeLocaleCountry || iss.First().Path != "/og:locale:alternate" {
		t.Fatalf("got %v", b.Err())
	}
	if len(b.Metadata().LocaleAlternate) != 0 {
		t.Fatalf("invalid alternate must not be appended")
	}
}

func TestBuilder_MediaURLs(t *testing.T) {
	b := ogp.NewBuilder().
		AddVideoURL("https://example.com/v.mp4").
		AddAudioURL("https://example.com/a.mp3")
	md := b.Metadata()
	if len(md.Videos) != 1 || md.Videos[0].URL != "https://example.com/v.mp4" || md.Videos[0].Width != nil {
		t.Fatalf("unexpected videos: %+v", md.Videos)
	}
	if len(md.Audios) != 1 || md.Audios[0].SecureURL != "" {
		t.Fatalf("unexpected audios: %+v", md.Audios)
	}
	b.AddImageURL("mailto:someone@example.com")
	iss, _ := ogp.AsIssues(b.Err())
	if iss.First().Path != "/og:image/url" || iss.First().Code != ogp.CodeInvalidScheme {
		t.Fatalf("got %v", iss)
	}
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	ogp.NewBuilder().SetURL("nope").MustBuild()
}

func TestBuilder_SnapshotsDoNotAlias(t *testing.T) {
	b := base()
	img := ogp.Image{URL: "https://example.com/a.png", Width: ogp.Int(1), Height: ogp.Int(1)}
	b.AddImage(img)
	*img.Width = 99

	snap := b.Metadata()
	snap.Images[1].URL = "https://changed.example.com/"
	*snap.Images[1].Height = 42

	again := b.Metadata()
	if again.Images[1].URL != "https://example.com/a.png" || *again.Images[1].Height != 1 || *again.Images[1].Width != 1 {
		t.Fatalf("builder state leaked: %+v", again.Images[1])
	}
}

func TestExtension_DerivationDoesNotAlias(t *testing.T) {
	b := base()
	ab := b.Article().AddTag("film")
	b.SetTitle("Changed").AddImageURL("https://example.com/late.png")

	art := ab.Document()
	if art.Title != "The Rock" || len(art.Images) != 1 {
		t.Fatalf("article must see the base as of derivation: %+v", art.Metadata)
	}
	art.Tags[0] = "mutated"
	if ab.Document().Tags[0] != "film" {
		t.Fatalf("Document must return a copy")
	}
	if b.Metadata().Title != "Changed" {
		t.Fatalf("base must be unaffected by the extension")
	}
}

func TestExtension_InheritsBaseError(t *testing.T) {
	b := base().SetURL("not a url")
	if _, err := b.Article().SetSection("x").Build(); !ogp.HasCode(err, ogp.CodeParseError) {
		t.Fatalf("expected inherited parse_error, got %v", err)
	}
	if _, err := b.Website(); err == nil {
		t.Fatalf("Website must report the base error")
	}
}

func TestWithType(t *testing.T) {
	om := ogp.WithType(ogp.Book)
	if om.Type != ogp.Book || om.Kind() != ogp.Book || om.Title != "" {
		t.Fatalf("unexpected: %+v", om)
	}
}
