package domain

import "strings"

// Keyword tables are fixed, process-wide constant data. Matching is
// substring containment over the lowercased filename, not whole-word.
var sensitiveKeywords = []string{
	"tax", "irs", "w2", "1099", "ssn", "social", "security",
	"bank", "account", "statement", "routing", "financial",
	"password", "credential", "key", "secret", "login", "auth",
	"medical", "health", "prescription", "doctor", "patient",
	"personal", "private", "confidential", "classified",
}

var workKeywords = []string{
	"meeting", "presentation", "report", "proposal", "contract",
	"client", "project", "deadline", "invoice", "budget",
	"company", "corporate", "business", "professional",
	"quarterly", "annual", "fiscal", "revenue", "salary",
}

var personalKeywords = []string{
	"vacation", "holiday", "trip", "travel", "family",
	"birthday", "wedding", "anniversary", "graduation",
	"photo", "pic", "img", "selfie", "camera",
}

// extensionCategories maps every known extension to its base category.
var extensionCategories = map[string]Category{
	// Documents
	"pdf": CategoryDocuments, "doc": CategoryDocuments, "docx": CategoryDocuments,
	"txt": CategoryDocuments, "rtf": CategoryDocuments, "odt": CategoryDocuments,
	// Spreadsheets and presentations
	"xls": CategoryDocuments, "xlsx": CategoryDocuments, "csv": CategoryDocuments,
	"ods": CategoryDocuments, "ppt": CategoryDocuments, "pptx": CategoryDocuments,
	"odp": CategoryDocuments,
	// Images
	"jpg": CategoryImages, "jpeg": CategoryImages, "png": CategoryImages,
	"gif": CategoryImages, "bmp": CategoryImages, "tiff": CategoryImages,
	"svg": CategoryImages, "webp": CategoryImages, "heic": CategoryImages,
	// Videos
	"mp4": CategoryVideos, "avi": CategoryVideos, "mov": CategoryVideos,
	"wmv": CategoryVideos, "flv": CategoryVideos, "mkv": CategoryVideos,
	"webm": CategoryVideos, "m4v": CategoryVideos,
	// Audio
	"mp3": CategoryAudio, "wav": CategoryAudio, "flac": CategoryAudio,
	"aac": CategoryAudio, "ogg": CategoryAudio, "wma": CategoryAudio,
	"m4a": CategoryAudio,
	// Archives
	"zip": CategoryArchives, "rar": CategoryArchives, "7z": CategoryArchives,
	"tar": CategoryArchives, "gz": CategoryArchives, "bz2": CategoryArchives,
	"xz": CategoryArchives,
	// Code
	"js": CategoryCode, "ts": CategoryCode, "jsx": CategoryCode, "tsx": CategoryCode,
	"py": CategoryCode, "java": CategoryCode, "cpp": CategoryCode, "c": CategoryCode,
	"h": CategoryCode, "css": CategoryCode, "html": CategoryCode, "php": CategoryCode,
	"rb": CategoryCode, "go": CategoryCode, "rs": CategoryCode, "swift": CategoryCode,
	"kt": CategoryCode, "cs": CategoryCode, "vb": CategoryCode, "sql": CategoryCode,
	"json": CategoryCode, "xml": CategoryCode, "yml": CategoryCode, "yaml": CategoryCode,
	// Executables and installers
	"exe": CategorySoftware, "msi": CategorySoftware, "dmg": CategorySoftware,
	"pkg": CategorySoftware, "deb": CategorySoftware, "rpm": CategorySoftware,
	"appx": CategorySoftware, "app": CategorySoftware,
}

// Only the plain-document group is refined into Work Documents;
// spreadsheets and presentations stay plain Documents.
var workRefinableExtensions = map[string]bool{
	"pdf": true, "doc": true, "docx": true, "txt": true, "rtf": true, "odt": true,
}

// Classify assigns a file record to exactly one category.
// Pure and deterministic; case-insensitive over name and extension.
// The sensitive-keyword check runs first and overrides everything else.
func Classify(record FileRecord) Category {
	name := strings.ToLower(record.Name)
	ext := strings.ToLower(record.Extension)

	if containsAny(name, sensitiveKeywords) {
		return CategorySensitive
	}

	base, known := extensionCategories[ext]
	if !known {
		return CategoryOther
	}

	switch base {
	case CategoryDocuments:
		if workRefinableExtensions[ext] && containsAny(name, workKeywords) {
			return CategoryWorkDocuments
		}
	case CategoryImages:
		if containsAny(name, personalKeywords) || hasDatePattern(name) {
			return CategoryPersonalPhotos
		}
	}
	return base
}

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// hasDatePattern is deliberately narrow: it recognizes only the literal
// years 2023-2025, matching the behavior files were organized with.
func hasDatePattern(name string) bool {
	return strings.Contains(name, "20") &&
		(strings.Contains(name, "2023") ||
			strings.Contains(name, "2024") ||
			strings.Contains(name, "2025"))
}
