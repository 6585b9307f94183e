// Package openapi derives form definitions from the request body schema of
// an OpenAPI 3 operation using kin-openapi, and loads the documents from
// files, fs.FS entries or URLs.
package openapi
