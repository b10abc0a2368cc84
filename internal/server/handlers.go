package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/ironsheep/ink-tools/internal/imaging"
	"github.com/ironsheep/ink-tools/internal/ioerr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "sketch_convert", "pdf_trim").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// paramsError marks arguments that could not be decoded or are missing.
type paramsError struct {
	msg string
}

func (e *paramsError) Error() string { return e.msg }

func invalidParams(format string, args ...interface{}) error {
	return &paramsError{msg: fmt.Sprintf(format, args...)}
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Undecodable arguments, missing required arguments and rejected values
// return -32602. Any other tool failure returns -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, CodeInvalidParams, "Invalid params", err.Error())
	}

	s.logger.Debug("Calling tool %s", params.Name)
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		var pe *paramsError
		var ve *ioerr.ValidationError
		if errors.As(err, &pe) || errors.As(err, &ve) {
			return s.errorResponse(req.ID, CodeInvalidParams, "Invalid params", err.Error())
		}
		s.logger.Error("Tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, CodeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_info":
		return s.handleImageInfo(args)
	case "sketch_convert":
		return s.handleSketchConvert(args)
	case "sketch_batch":
		return s.handleSketchBatch(ctx, args)
	case "pdf_trim":
		return s.handlePDFTrim(args)
	case "pdf_page_boxes":
		return s.handlePDFPageBoxes(args)
	default:
		return nil, invalidParams("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

type imageInfo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams("invalid arguments: %v", err)
	}
	if a.Path == "" {
		return nil, invalidParams("missing required argument: path")
	}

	img, err := imaging.Load(a.Path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &imageInfo{Path: a.Path, Width: b.Dx(), Height: b.Dy(), Format: imaging.FormatName(a.Path)}, nil
}

type sketchConvertArgs struct {
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleSketchConvert(args json.RawMessage) (interface{}, error) {
	var a sketchConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams("invalid arguments: %v", err)
	}
	if err := requireAll(map[string]string{"input_path": a.InputPath, "output_path": a.OutputPath}); err != nil {
		return nil, err
	}
	return imaging.ConvertFile(a.InputPath, a.OutputPath)
}

type sketchBatchArgs struct {
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`
}

func (s *Server) handleSketchBatch(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a sketchBatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams("invalid arguments: %v", err)
	}
	if err := requireAll(map[string]string{"input_dir": a.InputDir, "output_dir": a.OutputDir}); err != nil {
		return nil, err
	}
	return s.batch.Run(ctx, a.InputDir, a.OutputDir)
}

// === PDF Handlers ===

type pdfTrimArgs struct {
	InputPath       string   `json:"input_path"`
	OutputPath      string   `json:"output_path"`
	BorderThickness *float64 `json:"border_thickness"`
	DryRun          bool     `json:"dry_run"`
}

func (s *Server) handlePDFTrim(args json.RawMessage) (interface{}, error) {
	var a pdfTrimArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams("invalid arguments: %v", err)
	}
	if err := requireAll(map[string]string{"input_path": a.InputPath}); err != nil {
		return nil, err
	}
	if a.BorderThickness == nil {
		return nil, invalidParams("missing required argument: border_thickness")
	}

	if a.DryRun {
		return s.trimmer.Plan(a.InputPath, *a.BorderThickness)
	}
	if a.OutputPath == "" {
		return nil, invalidParams("missing required argument: output_path")
	}
	return s.trimmer.Trim(a.InputPath, a.OutputPath, *a.BorderThickness)
}

type pdfPageBoxesArgs struct {
	Path string `json:"path"`
}

func (s *Server) handlePDFPageBoxes(args json.RawMessage) (interface{}, error) {
	var a pdfPageBoxesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams("invalid arguments: %v", err)
	}
	if a.Path == "" {
		return nil, invalidParams("missing required argument: path")
	}
	return s.trimmer.PageBoxes(a.Path)
}

// requireAll returns an error naming the first empty argument, in sorted
// name order.
func requireAll(args map[string]string) error {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if args[name] == "" {
			return invalidParams("missing required argument: %s", name)
		}
	}
	return nil
}
