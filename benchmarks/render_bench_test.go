package ogp_test

import (
	"fmt"
	"io"
	"testing"

	ogp "github.com/reoring/ogp"
)

// ---- Helpers ----

func articleWithTags(tb testing.TB, n int) ogp.ArticleMetadata {
	tb.Helper()
	ab := ogp.NewBuilder().
		SetTitle("Benchmark").
		SetURL("https://example.com/bench").
		SetDescription("Rendering throughput.").
		SetLocale("en_US").
		AddImageURL("https://example.com/cover.png").
		Article().
		SetPublishedTime("2024-01-02T03:04:05Z")
	for i := 0; i < n; i++ {
		ab.AddTag(fmt.Sprintf("tag-%d", i))
	}
	art, err := ab.Build()
	if err != nil {
		tb.Fatalf("build failed: %v", err)
	}
	return art
}

// ---- Benchmarks ----

func BenchmarkBuildArticle(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = articleWithTags(b, 8)
	}
}

func BenchmarkProperties(b *testing.B) {
	for _, n := range []int{1, 16, 256} {
		art := articleWithTags(b, n)
		b.Run(fmt.Sprintf("tags=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := ogp.Properties(art); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkWriteHTML(b *testing.B) {
	art := articleWithTags(b, 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := ogp.WriteHTML(io.Discard, art); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidateLocale(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ogp.ValidateLocale("de_DE")
	}
}
