// Package script binds a Starlark interpreter to one CPU state, so register
// and memory contents can be set up and inspected from scripts.
//
// Integers cross into Starlark as arbitrary precision ints. Lane widths are
// selected with a 'bits' argument of 8, 16, 32, 64, 128, 256 or 512.
package script
