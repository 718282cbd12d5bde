// Package ogp builds, validates and renders Open Graph metadata documents.
//
//   - Typed documents per og:type (website, article, book, profile, music.*,
//     video.*) that carry og:type plus the shared Metadata
//   - Fluent builders with a sticky first error instead of panics
//   - A stable error model via Issues (JSON Pointer, code, message)
//   - A generic flatten engine that turns any document into ordered
//     <meta property content> tags
//
// Design policy:
//
//   - Keep public APIs in the root package; put the token tree and flatten walk
//     under internal/engine and the go-json token source under source/gojson.
//   - Date/time normalization lives under codec/, messages under i18n/, and the
//     CLI under cmd/ogp.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	art, err := ogp.NewBuilder().
//		SetTitle("The Rock").
//		SetURL("https://www.imdb.com/title/tt0117500/").
//		SetDescription("A 1996 film.").
//		AddImageURL("https://ia.media-imdb.com/images/rock.jpg").
//		Article().
//		SetPublishedTime("1996-06-07").
//		Build()
//	if err == nil {
//		err = art.Validate()
//	}
//	tags, err := ogp.RenderHTML(art)
package ogp
