package hocr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

// lineClasses are the hOCR classes tesseract uses for a line of text.
var lineClasses = []string{"ocr_line", "ocr_header", "ocr_caption", "ocr_textfloat"}

// Parse converts raw hOCR data into an HOCR value.
func Parse(data []byte) (HOCR, error) {
	var result HOCR

	decoded, err := decode(data)
	if err != nil {
		return result, err
	}

	doc, err := html.Parse(bytes.NewReader(decoded))
	if err != nil {
		return result, fmt.Errorf("failed to parse hOCR html: %w", err)
	}

	p := &parser{doc: &result}
	p.walk(doc)

	if len(result.Pages) == 0 {
		return result, fmt.Errorf("no ocr_page elements found in hOCR data")
	}
	return result, nil
}

// decode converts ISO-8859-1 documents to UTF-8. Tesseract always writes
// UTF-8, other engines may not.
func decode(data []byte) ([]byte, error) {
	content := strings.ToLower(string(data))
	idx := strings.Index(content, "charset=")
	if idx < 0 {
		return data, nil
	}
	snippet := content[idx+len("charset="):]
	fields := strings.FieldsFunc(snippet, func(r rune) bool {
		return r == '"' || r == ';' || r == '\'' || r == '>' || r == ' ' || r == '/'
	})
	if len(fields) == 0 {
		return data, nil
	}
	switch fields[0] {
	case "utf-8", "utf8":
		return data, nil
	case "iso-8859-1", "latin1", "latin-1":
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", fields[0], err)
		}
		return decoded, nil
	default:
		return data, nil
	}
}

type parser struct {
	doc  *HOCR
	page *Page
	line *Line
}

func (p *parser) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch {
		case n.Data == "meta":
			p.meta(n)
		case n.Data == "html":
			if lang := attr(n, "lang"); lang != "" {
				p.doc.Language = lang
			}
		case hasClass(n, "ocr_page"):
			p.doc.Pages = append(p.doc.Pages, newPage(n))
			p.page = &p.doc.Pages[len(p.doc.Pages)-1]
			p.line = nil
			p.children(n)
			p.page = nil
			return
		case isLine(n):
			if p.page == nil {
				// Stray line outside any page; treat it as a page of its own.
				p.doc.Pages = append(p.doc.Pages, Page{})
				p.page = &p.doc.Pages[len(p.doc.Pages)-1]
			}
			p.page.Lines = append(p.page.Lines, Line{ID: attr(n, "id"), BBox: bboxOf(n)})
			p.line = &p.page.Lines[len(p.page.Lines)-1]
			p.children(n)
			p.line = nil
			return
		case hasClass(n, "ocrx_word"):
			p.word(n)
			return
		}
	}
	p.children(n)
}

func (p *parser) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c)
	}
}

func (p *parser) meta(n *html.Node) {
	name, content := attr(n, "name"), attr(n, "content")
	switch name {
	case "ocr-system":
		p.doc.System = content
	case "dc.language", "ocr-langs":
		if p.doc.Language == "" {
			p.doc.Language = content
		}
	}
}

func (p *parser) word(n *html.Node) {
	w := Word{
		ID:   attr(n, "id"),
		Text: textContent(n),
		BBox: bboxOf(n),
	}
	if conf, ok := ParseTitle(attr(n, "title"))["x_wconf"]; ok && len(conf) > 0 {
		w.Confidence, _ = strconv.ParseFloat(conf[0], 64)
	}
	if w.Text == "" {
		return
	}
	if p.line == nil {
		if p.page == nil {
			p.doc.Pages = append(p.doc.Pages, Page{})
			p.page = &p.doc.Pages[len(p.doc.Pages)-1]
		}
		p.page.Lines = append(p.page.Lines, Line{})
		p.line = &p.page.Lines[len(p.page.Lines)-1]
	}
	p.line.Words = append(p.line.Words, w)
}

func newPage(n *html.Node) Page {
	page := Page{ID: attr(n, "id"), BBox: bboxOf(n)}
	props := ParseTitle(attr(n, "title"))
	if image, ok := props["image"]; ok && len(image) > 0 {
		page.ImageName = strings.Trim(image[0], `"`)
	}
	if ppageno, ok := props["ppageno"]; ok && len(ppageno) > 0 {
		page.PageNumber, _ = strconv.Atoi(ppageno[0])
	}
	return page
}

// ParseTitle breaks down an hOCR title attribute into its properties.
// Example input: "bbox 100 200 300 400; x_wconf 95"
func ParseTitle(title string) map[string][]string {
	result := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		items := strings.Fields(part)
		if len(items) == 0 {
			continue
		}
		result[items[0]] = items[1:]
	}
	return result
}

func bboxOf(n *html.Node) BoundingBox {
	bbox, ok := ParseTitle(attr(n, "title"))["bbox"]
	if !ok || len(bbox) < 4 {
		return BoundingBox{}
	}
	var coords [4]float64
	for i := range coords {
		coords[i], _ = strconv.ParseFloat(bbox[i], 64)
	}
	return BoundingBox{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}
}

func isLine(n *html.Node) bool {
	for _, class := range lineClasses {
		if hasClass(n, class) {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent gets all text below a node; tesseract nests <strong>/<em> in words.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return strings.TrimSpace(b.String())
}
