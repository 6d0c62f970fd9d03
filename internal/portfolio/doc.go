// Package portfolio holds the project catalog model and the pure derivations
// the page is built from.
//
// Everything here is a function of the loaded catalog plus the visitor's
// category and query selections:
//   - DecodeCatalog parses the catalog document with defensive defaults.
//   - FeaturedFirst applies the one-time load ordering.
//   - Filter and Categories derive the visible projects and filter buttons.
//   - Summarize computes the stats panel over the full collection.
//
// None of these functions mutate their inputs.
package portfolio
