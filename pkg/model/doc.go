// Package model defines the typed configuration and value structures shared by
// the normalizer, the field binding and the renderers. Field types follow the
// HTML input vocabulary (with "datetime" standing in for datetime-local) and
// reported values are carried as a tagged Value so numeric coercion never has
// to guess between strings, numbers and "no value". Configuration structs
// enumerate every recognised option; renderers never inspect open-ended
// property bags.
package model
