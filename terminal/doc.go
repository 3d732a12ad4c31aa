// Package terminal turns a composed tcell screen into a plain ANSI byte stream
// and holds the small terminal helpers shared by the command line tools.
//
// Serialize is the print path: it walks the screen's cell buffer row by row,
// emitting one coalesced SGR sequence per style change and skipping the padding
// columns of wide glyphs. Colors fold onto the 16-color ANSI palette.
package terminal
