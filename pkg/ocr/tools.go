package ocr

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool describes an external binary the OCR path depends on
type Tool struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// ToolStatus reports whether a Tool can be found on PATH
type ToolStatus struct {
	Tool
	Available bool
	Detail    string
}

// CheckTools looks up every tool and reports its availability
func CheckTools(tools []Tool) []ToolStatus {
	results := make([]ToolStatus, 0, len(tools))
	for _, tool := range tools {
		tool.Command = strings.TrimSpace(tool.Command)
		status := ToolStatus{Tool: tool}
		switch {
		case tool.Command == "":
			status.Detail = "command not configured"
		default:
			path, err := exec.LookPath(tool.Command)
			if err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", tool.Command)
			} else {
				status.Available = true
				status.Detail = path
			}
		}
		results = append(results, status)
	}
	return results
}
