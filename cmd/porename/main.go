// porename renames a folder of purchase-order PDFs after the order numbers
// they contain.
//
// Every PDF of the working directory goes through two passes. The first one
// prefixes the name with the file's modification date and splits multi-page
// scans into one file per page. The second one reads the order numbers from
// the text layer, or from OCR for scans, and renames the file to
// {date}_{numbers}_{n}.pdf. Files without an order number become
// {date}_ERREUR_COMMANDE_{n}.pdf.
//
// Configuration:
//
// An optional YAML file, porename.yml beside the executable or the file given
// with --config:
//
//	work_dir: /data/orders
//	pattern: "(4|5)50\\d{7}"
//	log:
//	  level: info     # debug, info, warn, error
//	  format: text    # text, json
//	ocr:
//	  engine: tesseract   # tesseract, documentai
//	  pdftoppm: pdftoppm
//	  tesseract: tesseract
//	  documentai:
//	    project_id: "your-gcp-project-id"
//	    location: "eu"
//	    processor_id: "your-processor-id"
//	    credentials_file: /path/to/credentials.json
//
// Usage:
//
//	porename [run] [--dir DIR] [--config FILE]
//	porename check [--config FILE]
//
// Without --dir or work_dir the working directory is WORKING_DIR beside the
// executable, created on first run.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
