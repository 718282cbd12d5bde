package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const articleYAML = `type: article
title: Open Graph in Go
url: https://example.com/posts/ogp
description: Building meta tags.
site_name: Example
locale: en_US
images:
  - url: https://example.com/cover.png
    width: 1200
    height: 630
article:
  published_time: "2024-03-01T10:00:00+09:00"
  authors: [Jane]
  section: Technology
  tags: [go, web]
`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRender_Stdin(t *testing.T) {
	out, _, err := run(t, articleYAML, "render", "-")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != `<meta property="og:type" content="article" />` {
		t.Fatalf("first line = %q", lines[0])
	}
	for _, want := range []string{
		`<meta property="og:image:width" content="1200" />`,
		`<meta property="article:published_time" content="2024-03-01T01:00:00Z" />`,
		`<meta property="article:tag" content="go" />`,
		`<meta property="article:tag" content="web" />`,
	} {
		if !strings.Contains(out, want+"\n") {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRender_IndentAndValidate(t *testing.T) {
	out, _, err := run(t, articleYAML, "render", "--indent", "  ", "--validate", "--strict-images", "-")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, `  <meta property="og:type"`) {
		t.Fatalf("indent not applied: %q", out)
	}
}

func TestRender_ValidateFails(t *testing.T) {
	in := "type: website\ntitle: T\nurl: https://example.com/\n"
	_, logs, err := run(t, in, "render", "--validate", "-")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(logs, "invalid document") {
		t.Fatalf("expected error log, got %q", logs)
	}
}

func TestValidate_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(p, []byte(articleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "", "validate", p)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if strings.TrimSpace(out) != "1 document(s) valid" {
		t.Fatalf("out = %q", out)
	}
}

func TestValidate_MissingFile(t *testing.T) {
	if _, _, err := run(t, "", "validate", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestExtract(t *testing.T) {
	page := `<html><head><meta property="og:title" content="A &amp; B"><meta name="x" content="y"></head></html>`
	out, _, err := run(t, page, "extract", "-")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if out != "og:title\tA & B\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestTypes(t *testing.T) {
	out, _, err := run(t, "", "types")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	if !strings.HasPrefix(out, "website\n") || !strings.Contains(out, "video.tv_show\n") {
		t.Fatalf("out = %q", out)
	}
}

func TestVerboseLogsDebug(t *testing.T) {
	_, logs, err := run(t, articleYAML, "render", "-v", "-")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(logs, "loaded documents") {
		t.Fatalf("expected debug log, got %q", logs)
	}
}

func TestLoggerFromContext_Default(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Fatalf("expected default logger")
	}
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Fatalf("expected attached logger")
	}
}
