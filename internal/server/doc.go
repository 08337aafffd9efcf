// Package server exposes a photo editing session as an MCP (Model Context
// Protocol) server.
//
// Each editor button is a tool; calling the tool presses the button. The
// window's canvas is rendered on request, and the crop gesture is driven
// with pointer events sent as tool calls.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Requests are handled one at a time, in order; each runs to completion
// before the next line is read.
//
// # Available Tools
//
// File:
//   - editor_open: Open an image (empty path = cancelled dialog)
//   - editor_save: Save as JPEG or PNG
//
// Edits (each can be undone):
//   - editor_brightness, editor_contrast
//   - editor_rotate, editor_grayscale, editor_flip
//   - editor_crop_begin + editor_pointer (press, drag, release)
//
// History:
//   - editor_undo: Revert the last edit
//   - editor_reset: Show the image as opened
//
// Inspection:
//   - editor_view: Canvas as base64 PNG
//   - editor_status: Document summary
//   - editor_sample_color: Color under a canvas coordinate
//
// # Notices
//
// Every successful call returns the session status. Rejected actions, such
// as editing before an image is opened or undoing with nothing to undo,
// still succeed and carry a warning notice; the session is unchanged.
//
// Failed loads and saves are JSON-RPC error responses with:
//   - code: -32000
//   - message: "Failed to open image" or "Failed to save image"
//   - data: Human-readable description of the failure
package server
