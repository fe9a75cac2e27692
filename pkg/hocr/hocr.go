// Package hocr parses hOCR, the HTML-based format tesseract emits when run
// with the "hocr" config, into a small Go object model and flattens it back
// into plain text.
//
// Only the parts of the hierarchy needed to rebuild reading order are kept:
//
//	Document → Pages → Lines → Words
//
// Content areas (ocr_carea) and paragraphs (ocr_par) are walked through but not
// represented; their lines are attached to the page in document order.
//
// Main Functions:
//
// - Parse: Parses hOCR bytes into an HOCR value
// - ParseTitle: Splits an hOCR title attribute into its properties
// - (HOCR).Text: Returns the recognized text, one line per hOCR line
package hocr
