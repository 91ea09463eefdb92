package fsm

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// SuggestName returns the file stem of inputPath, used as the default FSM name.
func SuggestName(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultOutputPath places <name>_<YYYYMMDD>.dot next to the input file.
func DefaultOutputPath(inputPath, name string, now time.Time) string {
	return filepath.Join(filepath.Dir(inputPath), name+"_"+now.Format("20060102")+".dot")
}

// PDFPath swaps the extension of dotPath for .pdf.
func PDFPath(dotPath string) string {
	return replaceExt(dotPath, ".pdf")
}

// MermaidPath swaps the extension of dotPath for .mmd.
func MermaidPath(dotPath string) string {
	return replaceExt(dotPath, ".mmd")
}

// DotCommand is the shell command that renders dotPath to pdfPath.
func DotCommand(renderer, dotPath, pdfPath string) string {
	return fmt.Sprintf(`%s -Tpdf "%s" -o "%s"`, renderer, dotPath, pdfPath)
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// sourceName is the basename shown in the diagram header.
func sourceName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
