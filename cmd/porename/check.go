package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gardar/porename/pkg/ocr"
)

type toolLine struct {
	name   string
	status string
	detail string
}

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the OCR tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			lines, missing := checkTools(cfg)
			fmt.Fprintln(cmd.OutOrStdout(), renderTools(lines))
			if len(missing) > 0 {
				return fmt.Errorf("missing tools: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}

// requiredTools lists the binaries the configured engine needs
func requiredTools(cfg config) []ocr.Tool {
	tools := []ocr.Tool{
		{Name: "pdftoppm", Command: cfg.Pdftoppm, Description: "renders scanned pages"},
	}
	tesseract := ocr.Tool{Name: "tesseract", Command: cfg.Tesseract, Description: "recognizes scanned pages"}
	if cfg.Engine == engineDocumentAI {
		tesseract.Optional = true
	}
	return append(tools, tesseract)
}

func checkTools(cfg config) ([]toolLine, []string) {
	var lines []toolLine
	var missing []string
	for _, s := range ocr.CheckTools(requiredTools(cfg)) {
		line := toolLine{name: s.Name, detail: s.Detail}
		switch {
		case s.Available:
			line.status = "OK"
		case s.Optional:
			line.status = "WARN"
		default:
			line.status = "MISSING"
			missing = append(missing, s.Name)
		}
		lines = append(lines, line)
	}
	if cfg.Engine == engineDocumentAI {
		lines = append(lines, toolLine{
			name:   "documentai",
			status: "OK",
			detail: fmt.Sprintf("processor %s in %s", cfg.DocumentAI.ProcessorID, cfg.DocumentAI.Location),
		})
	}
	return lines, missing
}
