package theme

import (
	"errors"
	"fmt"
	"strings"

	gotheme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// DefaultName is the name of the built-in manifest.
const DefaultName = "formkit"

// DefaultManifest returns the built-in token set with a "dark" variant. The
// returned manifest is a fresh copy on every call.
func DefaultManifest() *gotheme.Manifest {
	return &gotheme.Manifest{
		Name:    DefaultName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"background":           "oklch(1 0 0)",
			"foreground":           "oklch(0.145 0 0)",
			"primary":              "oklch(0.205 0 0)",
			"primary-foreground":   "oklch(0.985 0 0)",
			"secondary":            "oklch(0.97 0 0)",
			"secondary-foreground": "oklch(0.205 0 0)",
			"muted-foreground":     "oklch(0.556 0 0)",
			"accent":               "oklch(0.97 0 0)",
			"accent-foreground":    "oklch(0.205 0 0)",
			"destructive":          "oklch(0.577 0.245 27.325)",
			"border":               "oklch(0.922 0 0)",
			"input":                "oklch(0.922 0 0)",
			"ring":                 "oklch(0.708 0 0)",
			"radius":               "0.625rem",
		},
		Variants: map[string]gotheme.Variant{
			"dark": {
				Tokens: map[string]string{
					"background":         "oklch(0.145 0 0)",
					"foreground":         "oklch(0.985 0 0)",
					"primary":            "oklch(0.922 0 0)",
					"primary-foreground": "oklch(0.205 0 0)",
					"secondary":          "oklch(0.269 0 0)",
					"accent":             "oklch(0.269 0 0)",
					"destructive":        "oklch(0.704 0.191 22.216)",
					"border":             "oklch(1 0 0 / 10%)",
					"input":              "oklch(1 0 0 / 15%)",
					"ring":               "oklch(0.556 0 0)",
				},
			},
		},
	}
}

type manifestFile struct {
	Name      string                 `yaml:"name"`
	Version   string                 `yaml:"version"`
	Tokens    map[string]string      `yaml:"tokens"`
	Templates map[string]string      `yaml:"templates"`
	Assets    assetsFile             `yaml:"assets"`
	Variants  map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsFile        `yaml:"assets"`
}

type assetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

var errManifestName = errors.New("theme: manifest name is required")

// LoadManifest decodes a YAML manifest.
func LoadManifest(data []byte) (*gotheme.Manifest, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("theme: decode manifest: %w", err)
	}
	if strings.TrimSpace(file.Name) == "" {
		return nil, errManifestName
	}

	manifest := &gotheme.Manifest{
		Name:      strings.TrimSpace(file.Name),
		Version:   file.Version,
		Tokens:    file.Tokens,
		Templates: file.Templates,
		Assets:    gotheme.Assets{Prefix: file.Assets.Prefix, Files: file.Assets.Files},
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]gotheme.Variant, len(file.Variants))
		for name, variant := range file.Variants {
			manifest.Variants[name] = gotheme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    gotheme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}
	return manifest, nil
}
