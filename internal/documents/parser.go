package documents

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxCSVSampleRows limits how many rows of a CSV end up in the indexed text.
const maxCSVSampleRows = 10

// Parse extracts plain text from raw document content.
func Parse(content []byte, filename string, docType Type) (string, error) {
	switch docType {
	case TypePDF:
		return parsePDF(content)
	case TypeCSV:
		return parseCSV(content, filename)
	case TypeJSON:
		return parseJSON(content, filename)
	case TypeText:
		return string(content), nil
	}
	return "", fmt.Errorf("unsupported document type: %s", docType)
}

func parsePDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// parseCSV renders the header and a sample of rows as labeled text so the
// embedding captures column meanings, not just raw values.
func parseCSV(content []byte, filename string) (string, error) {
	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return "", fmt.Errorf("csv file is empty")
	}

	header := records[0]
	rows := records[1:]

	var sb strings.Builder
	fmt.Fprintf(&sb, "CSV File: %s\n\n", filename)
	fmt.Fprintf(&sb, "Columns: %s\n\n", strings.Join(header, ", "))

	sb.WriteString("Sample Data:\n")
	for i, row := range rows {
		if i >= maxCSVSampleRows {
			break
		}
		fmt.Fprintf(&sb, "Row %d:\n", i+1)
		for j, col := range header {
			value := "N/A"
			if j < len(row) && row[j] != "" {
				value = row[j]
			}
			fmt.Fprintf(&sb, "  %s: %s\n", col, value)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func parseJSON(content []byte, filename string) (string, error) {
	var data any
	if err := json.Unmarshal(content, &data); err != nil {
		return "", fmt.Errorf("parsing json: %w", err)
	}

	formatted, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("formatting json: %w", err)
	}
	return fmt.Sprintf("JSON File: %s\n\n%s", filename, formatted), nil
}
