// Package export renders an AnalysisResult into downloadable formats:
// CSV for spreadsheets, JSON for machine consumers, and a plain-text
// summary report. Exports are pure functions of the result, so the same
// analysis always produces byte-identical output.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/clauseguard-server/internal/domain"
)

// utf8BOM is prepended to CSV output so Excel detects the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Format identifies a supported export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatText Format = "txt"
)

func (f Format) IsValid() bool {
	switch f {
	case FormatCSV, FormatJSON, FormatText:
		return true
	}
	return false
}

// ContentType returns the MIME type to serve the format with.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Export renders the result in the requested format.
func Export(result *domain.AnalysisResult, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return CSV(result)
	case FormatJSON:
		return JSON(result)
	case FormatText:
		return Text(result), nil
	default:
		return nil, fmt.Errorf("export format %q: %w", format, domain.ErrNotFound)
	}
}

// CSV renders the report as SECTION/FIELD/VALUE rows followed by the key
// point, red flag, and checklist tables.
func CSV(result *domain.AnalysisResult) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"SECTION", "FIELD", "VALUE"},
		{"Summary", "Document Type", string(result.DocumentType)},
		{"Summary", "Risk Level", string(result.Risk.Level)},
		{"Summary", "Risk Score", strconv.Itoa(result.Risk.Score)},
		{"Summary", "Risk Reason", result.Risk.Reason},
		{"Summary", "Word Count", strconv.Itoa(result.WordCount)},
		{"Summary", "Char Count", strconv.Itoa(result.CharCount)},
		{"Summary", "Summary", result.Summary},
		{},
		{"Readability", "Grade Label", result.Readability.GradeLabel},
		{"Readability", "Flesch Ease", formatFloat(result.Readability.FleschEase)},
		{"Readability", "Flesch Grade", formatFloat(result.Readability.FleschGrade)},
		{"Readability", "Gunning Fog", formatFloat(result.Readability.GunningFog)},
		{"Readability", "Avg Sentence Len", formatFloat(result.Readability.AvgSentenceLen)},
		{"Readability", "Avg Word Len", formatFloat(result.Readability.AvgWordLen)},
		{"Readability", "Complex Word %", formatFloat(result.Readability.ComplexWordPct)},
		{},
		{"KEY POINTS"},
		{"Category", "Title", "Detail", "Watch Out", "Evidence"},
	}
	for _, kp := range result.KeyPoints {
		watch := "NO"
		if kp.WatchOut {
			watch = "YES"
		}
		rows = append(rows, []string{
			string(kp.Category), kp.Title, kp.Detail, watch,
			strings.Join(kp.Evidence, " | "),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"RED FLAGS"},
		[]string{"Category", "Severity", "Description", "Evidence", "Offset"},
	)
	for _, rf := range result.RedFlags {
		rows = append(rows, []string{
			rf.Category, string(rf.Severity), rf.Description,
			rf.Evidence.Snippet, strconv.Itoa(rf.Evidence.Offset),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"BEFORE SIGNING CHECKLIST"},
		[]string{"#", "Action"},
	)
	for i, item := range result.Checklist {
		rows = append(rows, []string{strconv.Itoa(i + 1), item})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// JSON renders the full result with stable field ordering.
func JSON(result *domain.AnalysisResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return data, nil
}

// Text renders a compact plain-text report.
func Text(result *domain.AnalysisResult) []byte {
	var b strings.Builder

	b.WriteString("TERMS & CONDITIONS ANALYSIS REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Document Type: %s\n", result.DocumentType)
	fmt.Fprintf(&b, "Risk: %s (%d/100)\n", result.Risk.Level, result.Risk.Score)
	fmt.Fprintf(&b, "Reason: %s\n", result.Risk.Reason)
	fmt.Fprintf(&b, "Readability: %s (Flesch ease %.1f)\n\n", result.Readability.GradeLabel, result.Readability.FleschEase)
	b.WriteString(result.Summary + "\n")

	if len(result.KeyPoints) > 0 {
		b.WriteString("\nKEY POINTS\n" + strings.Repeat("-", 50) + "\n")
		for _, kp := range result.KeyPoints {
			marker := " "
			if kp.WatchOut {
				marker = "!"
			}
			fmt.Fprintf(&b, "[%s] %s: %s\n", marker, kp.Title, kp.Detail)
		}
	}

	if len(result.RedFlags) > 0 {
		b.WriteString("\nRED FLAGS\n" + strings.Repeat("-", 50) + "\n")
		for _, rf := range result.RedFlags {
			fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(string(rf.Severity)), rf.Description)
		}
	}

	b.WriteString("\nBEFORE YOU SIGN\n" + strings.Repeat("-", 50) + "\n")
	for i, item := range result.Checklist {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}

	return []byte(b.String())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
