package site

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"

	"github.com/rvrdev/portfolio/internal/content"
	"github.com/rvrdev/portfolio/internal/viewstate"
)

func newTestRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	s, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	r, err := NewRenderer(s, opts)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

func renderDoc(t *testing.T, r *Renderer) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Page(&buf); err != nil {
		t.Fatalf("Page: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parsing rendered page: %v", err)
	}
	return doc
}

func TestPageSectionsInOrder(t *testing.T) {
	doc := renderDoc(t, newTestRenderer(t, Options{}))

	var ids []string
	doc.Find("main > section").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids = append(ids, id)
	})

	sections := viewstate.Sections()
	if len(ids) != len(sections) {
		t.Fatalf("rendered sections %v, want %d", ids, len(sections))
	}
	for i, s := range sections {
		if ids[i] != string(s.ID) {
			t.Errorf("section %d is %q, want %q", i, ids[i], s.ID)
		}
	}
}

func TestPageNavigation(t *testing.T) {
	doc := renderDoc(t, newTestRenderer(t, Options{}))

	links := doc.Find(".nav-links a[data-nav]")
	if links.Length() != 7 {
		t.Fatalf("%d nav links, want 7", links.Length())
	}
	links.Each(func(i int, s *goquery.Selection) {
		want := viewstate.Sections()[i]
		if nav, _ := s.Attr("data-nav"); nav != string(want.ID) {
			t.Errorf("nav %d targets %q, want %q", i, nav, want.ID)
		}
		if s.Text() != want.Label {
			t.Errorf("nav %d label %q, want %q", i, s.Text(), want.Label)
		}
	})
	if active := doc.Find(".nav-links a.active"); active.Length() != 1 || active.Text() != "Home" {
		t.Errorf("initial active link: %d links, text %q", active.Length(), active.Text())
	}

	for _, id := range []string{"scroll-progress", "scroll-top", "theme-toggle"} {
		if doc.Find("#"+id).Length() != 1 {
			t.Errorf("missing #%s", id)
		}
	}
	if _, hidden := doc.Find("#scroll-top").Attr("hidden"); !hidden {
		t.Error("scroll-to-top button should start hidden")
	}
}

func TestPageCounters(t *testing.T) {
	doc := renderDoc(t, newTestRenderer(t, Options{}))

	type counter struct{ target, duration, suffix, text string }
	var got []counter
	doc.Find("[data-counter]").Each(func(_ int, s *goquery.Selection) {
		target, _ := s.Attr("data-counter")
		duration, _ := s.Attr("data-duration")
		suffix, _ := s.Attr("data-suffix")
		got = append(got, counter{target, duration, suffix, s.Text()})
	})

	want := []counter{
		{"2", "2", "+", "2+"},
		{"15", "2.5", "+", "15+"},
		{"1000", "3", "+", "1000+"},
		{"99.9", "2.2", "%", "99.9%"},
	}
	if len(got) != len(want) {
		t.Fatalf("counters %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("counter %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPageContentAndMetadata(t *testing.T) {
	doc := renderDoc(t, newTestRenderer(t, Options{LogLevel: "debug"}))

	if title := doc.Find("title").Text(); !strings.HasPrefix(title, "Rayan Reynaldo") {
		t.Errorf("title %q", title)
	}
	if og, _ := doc.Find(`meta[property="og:url"]`).Attr("content"); og != "https://rvrdev.github.io" {
		t.Errorf("og:url %q", og)
	}
	if doc.Find("#home .summary strong").Length() != 2 {
		t.Error("hero summary markdown not rendered")
	}
	if n := doc.Find("#projects article").Length(); n != 4 {
		t.Errorf("%d projects, want 4", n)
	}
	if n := doc.Find("#skills .card").Length(); n != 6 {
		t.Errorf("%d skill groups, want 6", n)
	}
	if rel, _ := doc.Find(`#contact a[href="https://github.com/rvrdev"]`).Attr("rel"); rel != "noopener noreferrer" {
		t.Errorf("external contact link rel %q", rel)
	}
	if _, ok := doc.Find(`#contact a[href^="mailto:"]`).Attr("target"); ok {
		t.Error("mail link should not open a new tab")
	}
	if footer := doc.Find("footer").Text(); !strings.Contains(footer, "© 2026 Rayan Reynaldo") {
		t.Errorf("footer %q", footer)
	}
	if level, _ := doc.Find("html").Attr("data-log-level"); level != "debug" {
		t.Errorf("data-log-level %q", level)
	}
}

func TestAssetURLsUseBasePath(t *testing.T) {
	doc := renderDoc(t, newTestRenderer(t, Options{BasePath: "/portfolio", BuildID: "abc123"}))

	href, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	if href != "/portfolio/static/site.css?v=abc123" {
		t.Errorf("stylesheet href %q", href)
	}
	wasm, _ := doc.Find("script[data-wasm]").Attr("data-wasm")
	if wasm != "/portfolio/static/app.wasm?v=abc123" {
		t.Errorf("wasm src %q", wasm)
	}
}

func TestNewBuildID(t *testing.T) {
	a, b := NewBuildID(), NewBuildID()
	if len(a) != 12 || a == b {
		t.Errorf("build ids %q and %q", a, b)
	}
}

var testStatic = fstest.MapFS{
	"site.css":       {Data: []byte("body{}")},
	"boot.js":        {Data: []byte("// boot")},
	"logo.svg":       {Data: []byte("<svg/>")},
	"fonts/mono.txt": {Data: []byte("font")},
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	e := &Exporter{
		Renderer:  newTestRenderer(t, Options{BasePath: "/portfolio"}),
		OutputDir: dir,
		Static:    testStatic,
		Assets:    []string{"*.css", "**/*.txt", "site.css"},
	}

	res, err := e.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if strings.Join(res.Pages, ",") != "index.html,404.html" {
		t.Errorf("pages %v", res.Pages)
	}
	if strings.Join(res.Assets, ",") != "static/fonts/mono.txt,static/site.css" {
		t.Errorf("assets %v", res.Assets)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(index, []byte(`id="contact"`)) {
		t.Error("index.html missing contact section")
	}
	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(notFound, []byte(`href="/portfolio/"`)) {
		t.Error("404 page does not link back to the base path")
	}
	if _, err := os.Stat(filepath.Join(dir, "static", "boot.js")); !os.IsNotExist(err) {
		t.Error("unselected asset was exported")
	}
}

func TestExportRejectsBadPattern(t *testing.T) {
	e := &Exporter{
		Renderer:  newTestRenderer(t, Options{}),
		OutputDir: t.TempDir(),
		Static:    testStatic,
		Assets:    []string{"[unclosed"},
	}
	if _, err := e.Export(); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := NewServer(newTestRenderer(t, Options{BasePath: "/portfolio"}), "/portfolio", testStatic)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/portfolio/", http.StatusOK, `id="skills"`},
		{"/portfolio/index.html", http.StatusOK, `id="education"`},
		{"/portfolio/static/site.css", http.StatusOK, "body{}"},
		{"/portfolio/missing", http.StatusNotFound, "404"},
		{"/", http.StatusFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("DNT", "1")
			srv.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status %d, want %d", w.Code, tt.status)
			}
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("body does not contain %q", tt.contains)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	a := hashIP("203.0.113.7")
	if len(a) != 16 {
		t.Fatalf("hash length %d, want 16", len(a))
	}
	if a != hashIP("203.0.113.7") {
		t.Error("hash not stable for the same client")
	}
	if a == hashIP("203.0.113.8") || strings.Contains(a, "203") {
		t.Error("hash does not hide the client address")
	}
}
