package domain

import (
	"path/filepath"
	"strings"
)

// FileType represents the allowed file types for extraction.
type FileType string

const (
	FileTypePDF   FileType = "pdf"
	FileTypeImage FileType = "image"
	FileTypeExcel FileType = "excel"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeImage,
	"jpeg": FileTypeImage,
	"png":  FileTypeImage,
	"xlsx": FileTypeExcel,
	"xls":  FileTypeExcel,
}

// ExtensionContentTypes maps file extensions to MIME content types, used when
// forwarding document bytes to the document-understanding service.
var ExtensionContentTypes = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xls":  "application/vnd.ms-excel",
}

// FileTypeFromName determines the FileType from a file name's extension.
// Returns false when the extension is not supported.
func FileTypeFromName(name string) (FileType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	ft, ok := AllowedExtensions[ext]
	return ft, ok
}
