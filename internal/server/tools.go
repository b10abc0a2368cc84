package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_info",
			Description: "Get the dimensions and format of an image file without converting it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "sketch_convert",
			Description: "Convert one image into a black-and-white line sketch using Canny edge detection. " +
				"Bright images get white strokes on black; dark images are inverted to black strokes on white. " +
				"The output format follows the output file extension.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input_path":  pathProperty("Absolute path to the source image"),
					"output_path": pathProperty("Absolute path of the sketch to write"),
				},
				"required": []string{"input_path", "output_path"},
			},
		},
		{
			Name: "sketch_batch",
			Description: "Convert every .png, .jpg, .jpeg, .bmp and .tiff file directly inside a directory into sketches " +
				"with the same file names. Other files and subdirectories are skipped; a file that fails is reported and the batch continues.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input_dir":  pathProperty("Absolute path of the directory to read"),
					"output_dir": pathProperty("Absolute path of the directory to write (created if missing)"),
				},
				"required": []string{"input_dir", "output_dir"},
			},
		},
		{
			Name: "pdf_trim",
			Description: "Shrink the crop box of every page of a PDF by a border on all four sides, keeping each page centered. " +
				"Page content and media boxes are unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input_path":  pathProperty("Absolute path to the source PDF"),
					"output_path": pathProperty("Absolute path of the trimmed PDF to write"),
					"border_thickness": map[string]interface{}{
						"type":        "number",
						"description": "Border to remove from each side, in PDF points (1/72 inch). Must be less than half the smaller page dimension.",
						"minimum":     0,
					},
					"dry_run": map[string]interface{}{
						"type":        "boolean",
						"description": "Compute the new crop boxes without writing output_path. Default false",
						"default":     false,
					},
				},
				"required": []string{"input_path", "border_thickness"},
			},
		},
		{
			Name:        "pdf_page_boxes",
			Description: "List the media box and effective crop box of every page of a PDF, in PDF points.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the PDF"),
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
