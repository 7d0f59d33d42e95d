// ABOUTME: Static site content for the Vancouver Minor Baseball site, loaded from YAML.
// ABOUTME: The default content is embedded at compile time; an override file may replace it.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vmbexpos/vmb/nav"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSiteYAML []byte

// ErrNoNavigation is returned when content defines no navigation menu.
var ErrNoNavigation = errors.New("content has no navigation entries")

// Hero is the banner block on the home page.
type Hero struct {
	Title      string   `yaml:"title"`
	Eyebrow    string   `yaml:"eyebrow"`
	Paragraphs []string `yaml:"paragraphs"`
}

// ProgramsPage holds the copy for the programs overview.
type ProgramsPage struct {
	Title          string   `yaml:"title"`
	Tagline        string   `yaml:"tagline"`
	HeroImage      string   `yaml:"hero_image"`
	HeroImageLabel string   `yaml:"hero_image_label"`
	Intro          string   `yaml:"intro"`
	Divisions      []string `yaml:"divisions"`
	Closing        string   `yaml:"closing"`
}

// Section is a titled block of body copy.
type Section struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// RegistrationPage holds the copy for the registration page.
type RegistrationPage struct {
	Title          string    `yaml:"title"`
	Eyebrow        string    `yaml:"eyebrow"`
	Tagline        string    `yaml:"tagline"`
	HeroImage      string    `yaml:"hero_image"`
	HeroImageLabel string    `yaml:"hero_image_label"`
	Intro          string    `yaml:"intro"`
	Sections       []Section `yaml:"sections"`
	Divisions      []string  `yaml:"divisions"`
}

// SocialLink is a footer link to an external profile.
type SocialLink struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Icon     string `yaml:"icon"`
	IconPath string `yaml:"icon_path"`
}

// Achievement is a team result highlighted on the home page.
type Achievement struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	ImageAlt string `yaml:"image_alt"`
}

// Lines splits the title on newlines for multi-line captions.
func (a Achievement) Lines() []string {
	return strings.Split(a.Title, "\n")
}

// Image returns the achievement's image path relative to the static root.
func (a Achievement) Image() string {
	return "images/" + a.Slug + ".png"
}

// Site is the complete content set rendered by the web server.
type Site struct {
	Hero         Hero             `yaml:"hero"`
	Programs     ProgramsPage     `yaml:"programs"`
	Registration RegistrationPage `yaml:"registration"`
	Navigation   []nav.Node       `yaml:"navigation"`
	SocialLinks  []SocialLink     `yaml:"social_links"`
	Achievements []Achievement    `yaml:"achievements"`
	FooterText   string           `yaml:"footer_text"`
}

// Default returns the embedded content.
func Default() (*Site, error) {
	site, err := Parse(defaultSiteYAML)
	if err != nil {
		return nil, fmt.Errorf("parse embedded content: %w", err)
	}
	return site, nil
}

// Load reads site content from a YAML file on disk.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes YAML site content. Unknown keys are rejected so typos in an
// override file surface at startup.
func Parse(data []byte) (*Site, error) {
	var site Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(site.Navigation) == 0 {
		return nil, ErrNoNavigation
	}
	return &site, nil
}

// Registry builds the page registry for this content's navigation.
func (s *Site) Registry() *nav.Registry {
	return nav.Build(s.Navigation)
}
