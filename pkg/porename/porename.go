// Package porename renames a folder of purchase-order PDFs after the order
// number they contain.
//
// A run makes two passes over the working directory:
//
// - Normalize: every PDF is prefixed with its modification date. Scanned
// documents (no text on the first page) with several pages are split into
// one file per page, so each page can carry its own order number.
// - Finalize: the order numbers of every file are read, from the text layer
// for native documents or through OCR for scanned ones, and the file is
// renamed to "{date}_{numbers}_{n}.pdf", or "{date}_ERREUR_COMMANDE_{n}.pdf"
// when none was found. n disambiguates files that end up with the same name.
//
// Main Functions:
//
// - New: Builds a Pipeline from a Config
// - (*Pipeline).Run: Runs both passes over the working directory
// - Classify: Tells native and scanned PDFs apart
// - FindIdentifiers: Extracts order numbers from text
package porename
