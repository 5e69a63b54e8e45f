package cv

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

const (
	DefaultMaxPDFPages   = 12
	DefaultMinTextLength = 50
)

var (
	// ErrUnsupportedFileType is returned for extensions outside pdf/docx/doc/txt.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrEmptyDocument is returned when extraction yields too little text.
	ErrEmptyDocument = errors.New("extracted text is too short or empty")
)

// TextExtractor pulls raw text out of CV byte streams, dispatching on the
// file extension.
type TextExtractor struct {
	maxPDFPages   int
	minTextLength int
}

func NewTextExtractor(maxPDFPages, minTextLength int) *TextExtractor {
	if maxPDFPages <= 0 {
		maxPDFPages = DefaultMaxPDFPages
	}
	if minTextLength <= 0 {
		minTextLength = DefaultMinTextLength
	}
	return &TextExtractor{maxPDFPages: maxPDFPages, minTextLength: minTextLength}
}

// Extract returns the raw text of the document.
func (e *TextExtractor) Extract(data []byte, filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	var (
		text string
		err  error
	)
	switch ext {
	case "pdf":
		text, err = e.extractPDF(data)
	case "docx":
		text, err = extractDOCX(data)
	case "doc":
		text, err = extractDoc(data)
	case "txt":
		text = strings.ToValidUTF8(string(data), "")
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
	if err != nil {
		return "", err
	}

	if len(strings.TrimSpace(text)) < e.minTextLength {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func (e *TextExtractor) extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	pages := r.NumPage()
	if pages > e.maxPDFPages {
		pages = e.maxPDFPages
	}

	var parts []string
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(pageText) != "" {
			parts = append(parts, pageText)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// extractDOCX walks word/document.xml, emitting body paragraphs as lines and
// table rows as tab-joined cell text. Many CVs use tables for layout.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx archive: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document.xml: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("failed to read document.xml: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", errors.New("docx is missing word/document.xml")
	}

	var (
		parts      []string
		para       strings.Builder
		cell       strings.Builder
		row        []string
		tableDepth int
		inText     bool
	)

	dec := xml.NewDecoder(bytes.NewReader(docXML))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tr":
				row = row[:0]
			case "tc":
				cell.Reset()
			case "t":
				inText = true
			case "tab":
				if tableDepth > 0 {
					cell.WriteString("\t")
				} else {
					para.WriteString("\t")
				}
			}
		case xml.CharData:
			if inText {
				if tableDepth > 0 {
					cell.Write(t)
				} else {
					para.Write(t)
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if tableDepth > 0 {
					cell.WriteString(" ")
				} else {
					if s := strings.TrimSpace(para.String()); s != "" {
						parts = append(parts, s)
					}
					para.Reset()
				}
			case "tc":
				if s := strings.TrimSpace(cell.String()); s != "" {
					row = append(row, s)
				}
			case "tr":
				if len(row) > 0 {
					parts = append(parts, strings.Join(row, "\t"))
				}
			case "tbl":
				tableDepth--
			}
		}
	}

	return strings.Join(parts, "\n\n"), nil
}

// extractDoc handles legacy binary Word files via docconv.
func extractDoc(data []byte) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), "application/msword", true)
	if err != nil {
		return "", fmt.Errorf("failed to convert doc: %w", err)
	}
	return res.Body, nil
}
