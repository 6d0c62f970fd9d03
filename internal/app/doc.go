// Package app wires the portfolio page together: it loads the catalog once,
// keeps the visitor's selections, and re-renders the page on every change.
//
// The Controller is driven from a single thread (the browser event loop);
// its methods are not safe for concurrent use.
package app
