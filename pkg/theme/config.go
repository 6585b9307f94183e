package theme

import (
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Partial keys that renderers look up in RendererConfig.Partials.
const (
	PartialInput  = "forms.input"
	PartialButton = "forms.button"
	PartialPage   = "forms.page"
)

// RendererConfig flattens a selection into the renderer-facing config.
// Variant tokens, templates and asset files override the base manifest;
// fallbacks fill partials neither defines.
func RendererConfig(selection *gotheme.Selection, fallbacks map[string]string) *gotheme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant, hasVariant := manifest.Variants[selection.Variant]

	partials := mergeMaps(fallbacks, manifest.Templates)
	tokens := copyMap(manifest.Tokens)
	assets := manifest.Assets
	if hasVariant {
		partials = mergeMaps(partials, variant.Templates)
		tokens = mergeMaps(tokens, variant.Tokens)
		assets = mergeAssets(assets, variant.Assets)
	}

	return &gotheme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars(tokens),
		AssetURL: assetResolver(assets),
	}
}

// Resolve selects name/variant through selector and flattens the result.
func Resolve(selector gotheme.ThemeSelector, name, variant string, fallbacks map[string]string) (*gotheme.RendererConfig, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return RendererConfig(selection, fallbacks), nil
}

func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		out[name] = value
	}
	return out
}

func assetResolver(assets gotheme.Assets) func(string) string {
	files := copyMap(assets.Files)
	prefix := strings.TrimRight(assets.Prefix, "/")
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}

func mergeAssets(base, override gotheme.Assets) gotheme.Assets {
	out := gotheme.Assets{
		Prefix: base.Prefix,
		Files:  mergeMaps(base.Files, override.Files),
	}
	if strings.TrimSpace(override.Prefix) != "" {
		out.Prefix = override.Prefix
	}
	return out
}

func mergeMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		if strings.TrimSpace(value) == "" {
			continue
		}
		out[key] = value
	}
	return out
}

func copyMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
