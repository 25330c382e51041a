package model

import "strings"

// DocumentFormat is the closed set of file extensions accepted for employee
// documents. Input is matched case-insensitively and stored lowercase.
type DocumentFormat string

const (
	FormatJPG  DocumentFormat = "jpg"
	FormatJPEG DocumentFormat = "jpeg"
	FormatPNG  DocumentFormat = "png"
	FormatGIF  DocumentFormat = "gif"
	FormatWEBP DocumentFormat = "webp"
	FormatPDF  DocumentFormat = "pdf"
)

// AcceptedFormats lists every allowed extension, in the order shown to users
// in validation messages.
var AcceptedFormats = []DocumentFormat{
	FormatJPG, FormatJPEG, FormatPNG, FormatGIF, FormatWEBP, FormatPDF,
}

// ParseFormat normalizes ext to lowercase and validates it against the
// accepted set. The boolean is false for anything outside the set.
func ParseFormat(ext string) (DocumentFormat, bool) {
	f := DocumentFormat(strings.ToLower(ext))
	for _, a := range AcceptedFormats {
		if f == a {
			return f, true
		}
	}
	return "", false
}

// ExtractExt returns the lowercased extension of filename without the dot,
// or "" if the filename has no extension.
func ExtractExt(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// AcceptedFormatList renders the accepted extensions as "jpg, jpeg, ..." for
// user-facing messages.
func AcceptedFormatList() string {
	parts := make([]string, len(AcceptedFormats))
	for i, f := range AcceptedFormats {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}
