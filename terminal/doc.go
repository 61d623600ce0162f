// Package terminal provides the line-oriented displays the game draws on.
//
// Backends:
//   - TcellDisplay: gdamore/tcell screen, the default
//   - ANSIDisplay: raw stdin/stdout with direct ANSI sequences, no terminfo
//   - Recorder: in-memory display for tests and headless runs
//
// Every backend decodes keys into input.Command and never blocks in Poll.
package terminal
