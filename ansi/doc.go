// Package ansi implements the byte-level ANSI/ECMA-48/xterm/VT220/VT500
// escape-sequence parser and its semantic dispatch layer.
//
// Parser is a state machine patterned on Paul Williams' VT500 parser (the
// same design the DEC-derived terminal emulator community, including the
// widely used "vte" state tables, builds on), written as one switch-based
// method per state rather than a lookup table. It turns a byte
// stream into a sequence of calls against a Handler, which defines the full
// capability set a terminal implementation must provide: printing,
// executing C0/C1 controls, and dispatching CSI/ESC/OSC/DCS sequences.
//
// Parser depends only on the Handler interface, not on any concrete
// terminal type, so it can be driven by a mock Handler in tests with no
// runtime dispatch overhead beyond the interface call itself.
package ansi
