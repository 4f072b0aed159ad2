// Package terminal is the raw-mode backend: it drives an xterm-compatible
// terminal directly with ANSI sequences and parses stdin itself.
//
// Features:
//   - 16-color palette emitted as 256-color indices or 24-bit RGB
//   - Full-frame output with style coalescing, no diffing
//   - Raw stdin parsing: UTF-8, control bytes, CSI/SS3 keys with modifiers,
//     SGR mouse including horizontal wheel, focus reporting
//   - SIGWINCH resize detection
//   - Clean terminal restoration on exit/panic
//
// No terminfo lookup is performed. Target environments: Linux, macOS, BSDs.
package terminal
