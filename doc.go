// Package term provides a headless VT220/xterm-compatible terminal emulator:
// a PTY-side grid, cursor, and mode state machine with no display attached.
//
// This package emulates a terminal without any display, making it ideal for:
//   - Testing terminal applications without a GUI
//   - Building terminal multiplexers and recorders
//   - Creating terminal-based web applications
//   - Automated testing of CLI tools
//   - Screen scraping and automation
//
// # Quick Start
//
// Create a terminal and write ANSI sequences to it:
//
//	term := term.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: The main emulator that processes ANSI sequences
//   - [Buffer]: A 2D grid of cells with scrollback support
//   - [Cell]: A single character with colors and attributes
//   - [Cursor]: Tracks position, pending-wrap state, and rendering style
//   - [Point]: An absolute buffer coordinate used by selection, search, and vi-mode
//
// Byte-level parsing lives in the sibling [ansi] package; Terminal implements
// [ansi.Handler] so a [ansi.Decoder] can drive it directly from a [ansi.Parser].
//
// # Terminal
//
// Terminal is the main entry point. It implements [io.Writer] so you can write
// raw bytes containing ANSI escape sequences:
//
//	term := term.New(
//	    term.WithSize(24, 80),           // 24 rows, 80 columns
//	    term.WithScrollback(storage),    // Enable scrollback
//	    term.WithResponse(ptyWriter),    // Handle terminal responses
//	)
//
//	// Process output from a command
//	cmd := exec.Command("ls", "-la", "--color")
//	cmd.Stdout = term
//	cmd.Run()
//
//	// Read the result
//	for row := 0; row < term.Rows(); row++ {
//	    fmt.Println(term.LineContent(row))
//	}
//
// # Dual Buffers
//
// Terminal maintains two buffers:
//
//   - Primary buffer: Normal mode with optional scrollback storage
//   - Alternate buffer: Used by full-screen apps (vim, less, htop), no scrollback
//
// Applications switch buffers via ANSI sequences (CSI ?1049h/l). Check which
// buffer is active:
//
//	if term.IsAlternateScreen() {
//	    // Full-screen app is running
//	}
//
// # Cells and Attributes
//
// Each cell stores a character with styling information, plus any zero-width
// combining marks that followed it:
//
//	cell := term.Cell(row, col)
//	if cell != nil {
//	    fmt.Printf("Char: %c\n", cell.Char)
//	    fmt.Printf("Combining: %v\n", cell.Combining)
//	    fmt.Printf("Bold: %v\n", cell.HasFlag(term.CellFlagBold))
//	    fmt.Printf("FG: %v\n", cell.Fg)
//	    fmt.Printf("BG: %v\n", cell.Bg)
//	}
//
// Cell flags include: Bold, Dim, Italic, Underline, Blink, Reverse, Hidden, Strike.
//
// # Colors
//
// Colors are stored using Go's [image/color] interface. The package supports:
//
//   - Named colors (indices 0-15 for standard ANSI colors)
//   - 256-color palette (indices 0-255)
//   - True color (24-bit RGB via [color.RGBA])
//
// Use [ResolveDefaultColor] to convert any color to RGBA:
//
//	rgba := term.ResolveDefaultColor(cell.Fg, true)
//
// # Scrollback
//
// Lines scrolled off the top of the primary buffer can be stored for later access.
// Implement [ScrollbackProvider] or use the built-in ring-buffer storage:
//
//	// In-memory scrollback with 10000 line limit, O(1) push/evict
//	storage := term.NewMemoryScrollback(10000)
//	term := term.New(term.WithScrollback(storage))
//
//	// Access scrollback
//	for i := 0; i < term.ScrollbackLen(); i++ {
//	    line := term.ScrollbackLine(i) // []Cell
//	}
//
// # Response Writer
//
// [ResponseProvider] writes terminal responses back to the PTY (cursor position reports, etc.):
//
//	term := term.New(term.WithResponse(os.Stdout))
//
// # Providers
//
// Providers handle terminal events and queries. All are optional with no-op defaults:
//
//   - [BellProvider]: Handles bell/beep events
//   - [TitleProvider]: Handles window title changes (OSC 0/1/2)
//   - [ClipboardProvider]: Handles clipboard operations (OSC 52)
//   - [ScrollbackProvider]: Stores lines scrolled off screen
//   - [RecordingProvider]: Captures raw input for replay
//   - [SizeProvider]: Provides pixel dimensions for queries
//   - [SemanticPromptHandler]: Handles semantic prompt marks (OSC 133)
//
// Example with providers:
//
//	term := term.New(
//	    term.WithResponse(os.Stdout),
//	    term.WithBell(&MyBellHandler{}),
//	    term.WithTitle(&MyTitleHandler{}),
//	)
//
// # Middleware
//
// Middleware intercepts ANSI handler calls for custom behavior:
//
//	mw := &term.Middleware{
//	    Input: func(r rune, next func(rune)) {
//	        log.Printf("Input: %c", r)
//	        next(r) // Call default handler
//	    },
//	    Bell: func(next func()) {
//	        log.Println("Bell!")
//	        // Don't call next() to suppress the bell
//	    },
//	}
//	term := term.New(term.WithMiddleware(mw))
//
// # Terminal Modes
//
// Various terminal behaviors are controlled by mode flags:
//
//	term.HasMode(term.ModeLineWrap)       // Auto line wrap enabled?
//	term.HasMode(term.ModeShowCursor)     // Cursor visible?
//	term.HasMode(term.ModeBracketedPaste) // Bracketed paste enabled?
//
// See [TerminalMode] for all available modes.
//
// # Pending Wrap
//
// Line wrap is deferred: writing a printable character at the last column
// sets a pending-wrap latch on the cursor instead of wrapping immediately.
// The wrap only takes effect if another printable character arrives; a
// cursor-motion sequence in between clears the latch without moving to the
// next line. This matches DEC VT100-family wrap semantics and is what lets
// a full-width line end exactly at the right margin without a phantom blank
// line underneath it.
//
// # Dirty Tracking
//
// Rendering consumes per-line damage ranges rather than scanning every cell:
//
//	for _, line := range term.DamagedLines() {
//	    // redraw line.Row, columns [line.FromCol, line.ToCol]
//	}
//	term.ClearDamage()
//
// A full-screen operation (resize, ED 2, alternate-screen swap) sets a
// full-damage flag that callers should treat as "redraw everything" rather
// than iterate per-line ranges.
//
// # Selection
//
// Four selection shapes are supported, anchored in absolute buffer
// coordinates (so a selection started while scrolled stays correct as new
// lines arrive): [SelectionSimple] (stream of text), [SelectionBlock]
// (rectangular column span), [SelectionSemantic] (word-boundary snap), and
// [SelectionLines] (whole-line span).
//
//	term.SetAbsoluteSelection(term.Point{Row: 0, Col: 0}, term.Point{Row: 2, Col: 10}, term.SelectionSimple)
//	text := term.GetAbsoluteSelectedText()
//	term.ClearAbsoluteSelection()
//
// # Search
//
// Find text in the visible screen or scrollback using a compiled regular
// expression, in either direction:
//
//	matches, _ := term.SearchConfirmed("err.*", term.DirectionForward)
//	for _, m := range matches {
//	    fmt.Printf("Found at row %d, col %d\n", m.Start.Row, m.Start.Col)
//	}
//
// An incremental search (as the user types) is bounded to MaxSearchLines;
// a confirmed search (Enter) scans the full scrollback.
//
// # Vi Mode
//
// term.ModeVi puts the cursor under direct keyboard control, independent of
// where the PTY-driven write cursor sits, for copy-mode-style navigation
// over the full buffer including scrollback. See [ViMotion] for the motion
// set (character, word, line, paragraph, half/full page, search-repeat).
//
// # Snapshots
//
// Capture the terminal state for serialization or rendering:
//
//	// Text only (smallest)
//	snap := term.Snapshot(term.SnapshotDetailText)
//
//	// With style segments (good for HTML rendering)
//	snap := term.Snapshot(term.SnapshotDetailStyled)
//
//	// Full cell data (complete state, includes image references)
//	snap := term.Snapshot(term.SnapshotDetailFull)
//
//	// Convert to JSON
//	data, _ := json.Marshal(snap)
//
// Snapshots include detailed attribute information:
//   - Underline styles: "single", "double", "curly", "dotted", "dashed"
//   - Blink types: "slow", "fast"
//   - Underline color (separate from foreground)
//   - Cell image references with UV coordinates for texture mapping
//
// # Image Support
//
// The terminal supports inline images via Sixel and Kitty graphics protocols.
// This package decodes image payloads into RGBA pixel data and tracks grid
// placement (which cells an image occupies, its ID, and the requested
// crop/size); it does not draw images to any display.
//
//	// Check if images are enabled
//	if term.SixelEnabled() || term.KittyEnabled() {
//	    // Process image sequences
//	}
//
//	// Access stored images
//	for _, placement := range term.ImagePlacements() {
//	    img := term.Image(placement.ImageID)
//	    // img.Data contains RGBA pixels
//	}
//
//	// Configure image memory budget
//	term.SetImageMaxMemory(100 * 1024 * 1024) // 100MB
//
// # Shell Integration
//
// Track shell prompts and command output (OSC 133):
//
//	term := term.New(
//	    term.WithSemanticPromptHandler(&MyHandler{}),
//	)
//
//	// Navigate between prompts (uses absolute rows, including scrollback)
//	currentAbsRow := term.ViewportRowToAbsolute(0) // Convert viewport row to absolute
//	nextAbsRow := term.NextPromptRow(currentAbsRow, -1)
//	prevAbsRow := term.PrevPromptRow(currentAbsRow, -1)
//
//	// Convert absolute row back to viewport for display
//	viewportRow := term.AbsoluteRowToViewport(nextAbsRow) // -1 if in scrollback
//
//	// Get last command output
//	output := term.GetLastCommandOutput()
//
// # Auto-Resize Mode
//
// In auto-resize mode, the buffer grows instead of scrolling:
//
//	term := term.New(term.WithAutoResize())
//
//	// Capture complete output without truncation
//	cmd.Stdout = term
//	cmd.Run()
//
//	// Buffer has grown to fit all output
//	fmt.Printf("Total rows: %d\n", term.Rows())
//
// # Thread Safety
//
// All Terminal methods are safe for concurrent use behind a single
// [sync.RWMutex]. If you need to perform multiple operations atomically,
// you should use your own synchronization.
//
// # Supported ANSI Sequences
//
// The terminal supports a comprehensive set of ANSI escape sequences including:
//
//   - Cursor movement (CUU, CUD, CUF, CUB, CUP, HVP, etc.)
//   - Cursor save/restore (DECSC, DECRC)
//   - Erase commands (ED, EL, ECH)
//   - Insert/delete (ICH, DCH, IL, DL)
//   - Scrolling (SU, SD, DECSTBM)
//   - Character attributes (SGR) with full color support
//   - Terminal modes (DECSET, DECRST)
//   - Device status reports (DSR)
//   - Alternate screen buffer
//   - Bracketed paste mode
//   - Mouse reporting (X10, UTF-8, SGR encodings)
//   - Window title (OSC 0/1/2)
//   - Clipboard (OSC 52)
//   - Hyperlinks (OSC 8)
//   - Shell integration (OSC 133)
//   - Sixel and Kitty graphics
//
// For the complete list of recognized sequences, see the sibling [ansi]
// package, which implements the parser and dispatch layer this package's
// Terminal is driven by.
package term
