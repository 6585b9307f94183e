// Package theme supplies the design tokens and component class tables used by
// the renderers. Token sets are go-theme manifests: a default manifest ships
// with the module, callers can register their own (or load them from YAML)
// and select a theme/variant per render. The selection is flattened into a
// go-theme RendererConfig carrying tokens, CSS variables, template partial
// overrides and an asset URL resolver.
package theme
