// Package view turns derived portfolio data into markup.
//
// Components are templ components. Renderer pushes their output into a
// Document, replacing each region wholesale on every render.
package view
