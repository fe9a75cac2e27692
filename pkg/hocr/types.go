package hocr

// HOCR is a parsed hOCR document
type HOCR struct {
	System   string // Value of the ocr-system meta tag
	Language string // Document language, if declared
	Pages    []Page
}

// Page is one 'ocr_page' element
type Page struct {
	ID         string
	PageNumber int    // ppageno property (0-based in tesseract output)
	ImageName  string // image property
	BBox       BoundingBox
	Lines      []Line
}

// Line is one text line ('ocr_line' and its siblings 'ocr_header',
// 'ocr_caption', 'ocr_textfloat')
type Line struct {
	ID    string
	BBox  BoundingBox
	Words []Word
}

// Word is one 'ocrx_word' element
type Word struct {
	ID         string
	Text       string
	BBox       BoundingBox
	Confidence float64 // x_wconf, 0-100
}

// BoundingBox is the value of an hOCR 'bbox' property
type BoundingBox struct {
	X1 float64 // Left
	Y1 float64 // Top
	X2 float64 // Right
	Y2 float64 // Bottom
}
