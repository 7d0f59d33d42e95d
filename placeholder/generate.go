// ABOUTME: Writes placeholder images to disk and plans the site's full placeholder set.
// ABOUTME: Existing files are skipped unless overwrite is requested; PNG or JPEG is chosen by extension.
package placeholder

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmbexpos/vmb/content"
)

// Palette holds the site's placeholder background colors.
var Palette = []string{
	"#1b4f91",
	"#0a1f44",
	"#f7b733",
	"#e1efff",
}

const (
	white = "#ffffff"
	navy  = "#0a1f44"
)

// Plan returns the placeholder set for the site: hero banners, the logo, and
// one highlight image per achievement.
func Plan(achievements []content.Achievement) []Image {
	images := []Image{
		{
			Name: "vmb_hero-banner.jpg", Width: 1600, Height: 600,
			Lines: []string{"Hero Banner", "vmb_hero-banner.jpg", "Replace with feature photo"},
			Fill:  Palette[0], Text: white,
		},
		{
			Name: "registration-hero.jpg", Width: 1600, Height: 600,
			Lines: []string{"Registration Hero", "registration-hero.jpg"},
			Fill:  Palette[3], Text: navy,
		},
		{
			Name: "programs-hero.jpg", Width: 1600, Height: 600,
			Lines: []string{"Programs Hero", "programs-hero.jpg"},
			Fill:  Palette[1], Text: white,
		},
		{
			Name: "vmb_logo.png", Width: 400, Height: 400,
			Lines: []string{"Team Logo", "vmb_logo.png"},
			Fill:  Palette[2], Text: navy,
		},
	}

	for i, a := range achievements {
		idx := (i + 1) % len(Palette)
		text := white
		if idx == 0 || idx == 3 {
			text = navy
		}
		name := a.Slug + ".png"
		images = append(images, Image{
			Name: name, Width: 1024, Height: 768,
			Lines: []string{name, "Replace with highlight photo"},
			Fill:  Palette[idx], Text: text,
		})
	}
	return images
}

// Create draws img and writes it into dir. It reports false without error
// when the file exists and overwrite is not set.
func Create(dir string, img Image, overwrite bool) (bool, error) {
	path := filepath.Join(dir, img.Name)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}

	bitmap, err := Draw(img)
	if err != nil {
		return false, fmt.Errorf("draw %s: %w", img.Name, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("create %s: %w", path, err)
	}
	if err := encode(f, img.Name, bitmap); err != nil {
		f.Close()
		return false, fmt.Errorf("encode %s: %w", img.Name, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", path, err)
	}
	return true, nil
}

func encode(w io.Writer, name string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	default:
		return fmt.Errorf("unsupported image extension %q", filepath.Ext(name))
	}
}

// Report summarizes a Generate run.
type Report struct {
	Created []string
	Skipped []string
}

// Generate creates every image in dir, creating dir if needed, and writes a
// progress line per image to out.
func Generate(dir string, images []Image, overwrite bool, out io.Writer) (Report, error) {
	var rep Report
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return rep, fmt.Errorf("create image directory: %w", err)
	}
	for _, img := range images {
		created, err := Create(dir, img, overwrite)
		if err != nil {
			return rep, err
		}
		if created {
			rep.Created = append(rep.Created, img.Name)
			fmt.Fprintf(out, "Created image: %s\n", img.Name)
		} else {
			rep.Skipped = append(rep.Skipped, img.Name)
			fmt.Fprintf(out, "Skipping existing image: %s\n", img.Name)
		}
	}
	return rep, nil
}
