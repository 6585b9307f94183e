// Package template defines the template seam renderers depend on. The
// gotemplate subpackage implements it on pongo2.
package template
