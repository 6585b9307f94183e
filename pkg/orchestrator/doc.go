// Package orchestrator wires the definition source → binding → renderer
// pipeline behind a single entry point. A request names either an OpenAPI
// operation or a ready definition; the orchestrator mounts the bindings,
// optionally replays posted values, and renders the resulting page with the
// selected renderer and theme.
package orchestrator
