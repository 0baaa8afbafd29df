// Package canvas builds the character grid of a decoded message and renders
// it as printable lines. Everything here is pure and free of I/O.
package canvas
