package application

import "filesense/internal/domain"

// Re-export domain types for use by adapters
type (
	Category         = domain.Category
	CategoryCount    = domain.CategoryCount
	FileRecord       = domain.FileRecord
	FileRef          = domain.FileRef
	FolderAnalysis   = domain.FolderAnalysis
	OrganizationPlan = domain.OrganizationPlan
	MoveRecord       = domain.MoveRecord
	MoveBatch        = domain.MoveBatch
)

const (
	CategoryDocuments      = domain.CategoryDocuments
	CategoryImages         = domain.CategoryImages
	CategoryVideos         = domain.CategoryVideos
	CategoryAudio          = domain.CategoryAudio
	CategoryArchives       = domain.CategoryArchives
	CategoryCode           = domain.CategoryCode
	CategorySoftware       = domain.CategorySoftware
	CategoryWorkDocuments  = domain.CategoryWorkDocuments
	CategoryPersonalPhotos = domain.CategoryPersonalPhotos
	CategorySensitive      = domain.CategorySensitive
	CategoryOther          = domain.CategoryOther
)

// Classify assigns a file record to exactly one category.
func Classify(record domain.FileRecord) domain.Category {
	return domain.Classify(record)
}

// Categories returns all categories in display order.
func Categories() []domain.Category {
	return domain.Categories()
}

// BuildPlan derives an organization plan from an analysis.
func BuildPlan(analysis *domain.FolderAnalysis, targetRoot string) *domain.OrganizationPlan {
	return domain.BuildPlan(analysis, targetRoot)
}
