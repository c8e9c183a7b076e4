// Package sheet slices composite sprite sheets into individual assets.
//
// A sheet holds four renders side by side: front, front shiny, back, back
// shiny. Slicing is a fixed 4-way horizontal crop; the caller supplies the
// base name the four outputs are built from.
package sheet
