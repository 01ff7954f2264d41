package domain

import "strings"

// FileRecord describes a single file found during a scan.
// Immutable once built from a directory entry.
type FileRecord struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Extension string `json:"extension"`
}

// FileExtension returns the lowercased text after the last dot in name,
// with no leading dot. A name with no dot, or whose only dot is the
// leading character, has no extension.
func FileExtension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// NewFileRecord builds a record from a directory entry's name, full path
// and size. The extension is derived from the name.
func NewFileRecord(name, path string, size int64) FileRecord {
	return FileRecord{
		Name:      name,
		Path:      path,
		Size:      size,
		Extension: FileExtension(name),
	}
}
