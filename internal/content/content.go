// Package content holds the static text of the portfolio: profile, skills,
// projects, experience, education and contact links. The default document is
// embedded; a YAML file with the same shape can replace it.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/rvrdev/portfolio/internal/viewstate"
)

//go:embed site.yaml
var defaultSite []byte

type Site struct {
	Meta        Meta         `yaml:"meta"`
	Profile     Profile      `yaml:"profile"`
	Stats       []Stat       `yaml:"stats"`
	About       Prose        `yaml:"about"`
	SkillGroups []SkillGroup `yaml:"skill_groups"`
	Projects    []Project    `yaml:"projects"`
	Experience  []Job        `yaml:"experience"`
	Education   Education    `yaml:"education"`
	Contact     Contact      `yaml:"contact"`
}

// Meta is the document metadata used for the title and social cards.
type Meta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Author      string   `yaml:"author"`
	URL         string   `yaml:"url"`
	SiteName    string   `yaml:"site_name"`
	Locale      string   `yaml:"locale"`
}

type Profile struct {
	Name    string   `yaml:"name"`
	Title   string   `yaml:"title"`
	Summary Prose    `yaml:"summary"`
	Skills  []string `yaml:"skills"`
	Logo    string   `yaml:"logo"`
}

// Stat is one animated statistic in the hero strip.
type Stat struct {
	Value    float64 `yaml:"value"`
	Suffix   string  `yaml:"suffix"`
	Label    string  `yaml:"label"`
	Duration float64 `yaml:"duration"`
}

// Spec returns the counter configuration for the statistic.
func (s Stat) Spec() viewstate.CounterSpec {
	return viewstate.CounterSpec{Target: s.Value, DurationSeconds: s.Duration, Suffix: s.Suffix}
}

// Display is the settled text, shown until the counter script takes over.
func (s Stat) Display() string {
	return viewstate.FormatCounter(s.Value, s.Suffix)
}

type SkillGroup struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

type Project struct {
	Title    string        `yaml:"title"`
	Summary  string        `yaml:"summary"`
	Tags     []string      `yaml:"tags"`
	Sections []ProjectPart `yaml:"sections"`
	Links    []Link        `yaml:"links"`
}

// ProjectPart is a titled bullet list inside a project card.
type ProjectPart struct {
	Heading string   `yaml:"heading"`
	Items   []string `yaml:"items"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Job struct {
	Title      string   `yaml:"title"`
	Company    string   `yaml:"company"`
	Period     string   `yaml:"period"`
	Highlights []string `yaml:"highlights"`
}

type Education struct {
	Degree         string   `yaml:"degree"`
	School         string   `yaml:"school"`
	Period         string   `yaml:"period"`
	Coursework     Prose    `yaml:"coursework"`
	Certifications []string `yaml:"certifications"`
}

type Contact struct {
	Heading string        `yaml:"heading"`
	Tagline string        `yaml:"tagline"`
	Links   []ContactLink `yaml:"links"`
}

type ContactLink struct {
	Label    string `yaml:"label"`
	Display  string `yaml:"display"`
	URL      string `yaml:"url"`
	External bool   `yaml:"external"`
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.Typographer),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Prose is markdown text.
type Prose string

// HTML renders the markdown. Raw HTML in the source is not passed through.
func (p Prose) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(strings.TrimSpace(string(p))), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Default returns the embedded site content.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Load reads site content from a YAML file.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a content document.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the fields the page cannot render without.
func (s *Site) Validate() error {
	if s.Meta.Title == "" {
		return fmt.Errorf("meta.title is required")
	}
	if s.Profile.Name == "" {
		return fmt.Errorf("profile.name is required")
	}
	for i, st := range s.Stats {
		if st.Label == "" {
			return fmt.Errorf("stats[%d]: label is required", i)
		}
		if st.Value < 0 {
			return fmt.Errorf("stats[%d] %q: value must be non-negative", i, st.Label)
		}
		if st.Duration <= 0 {
			return fmt.Errorf("stats[%d] %q: duration must be positive", i, st.Label)
		}
	}
	for i, l := range s.Contact.Links {
		if l.URL == "" {
			return fmt.Errorf("contact.links[%d] %q: url is required", i, l.Label)
		}
	}
	return nil
}
