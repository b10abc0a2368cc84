// Package server implements an MCP (Model Context Protocol) server exposing
// the sketch converter and PDF trimmer as tools.
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
// # Available Tools
//
//   - image_info: Dimensions and format of an image
//   - sketch_convert: Convert one image to a line sketch
//   - sketch_batch: Convert every image in a directory
//   - pdf_trim: Shrink every page's crop box by a border
//   - pdf_page_boxes: List media and crop boxes per page
//
// Tool results are returned as pretty-printed JSON inside a single text
// content item.
//
// # Error Handling
//
//   - -32601: unknown JSON-RPC method
//   - -32602: malformed or missing arguments, unknown tool, or a rejected
//     value such as a border thickness that would collapse a page
//   - -32000: the tool ran and failed (unreadable input, unwritable output)
//
// The data field carries the Go error string.
//
// Logging never touches stdout; the logger passed to New must write
// elsewhere, normally stderr.
package server
