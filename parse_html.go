package ogp

import (
	"io"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML extracts the meta property/content pairs of an HTML document in
// document order. Elements without a property attribute are ignored.
func ParseHTML(r io.Reader) ([]Property, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, wrapIO(err)
	}
	var out []Property
	doc.Find("meta[property]").Each(func(_ int, s *goquery.Selection) {
		p, _ := s.Attr("property")
		c, _ := s.Attr("content")
		out = append(out, Property{Path: p, Content: c})
	})
	return out, nil
}
