package domain

// FileRef points at a file to be moved by an organize operation.
type FileRef struct {
	Path string `json:"path"`
}

// OrganizationPlan is the caller-supplied, possibly user-edited mapping
// of category names to file lists plus a destination root. Category
// names are open strings here: the UI may rename or invent buckets, and
// each name becomes a subfolder of TargetRoot.
type OrganizationPlan struct {
	TargetRoot string               `json:"target_root"`
	Categories map[string][]FileRef `json:"categories"`
}

// BuildPlan derives a plan from an analysis, one entry per non-empty
// category, with targetRoot as the destination root.
func BuildPlan(analysis *FolderAnalysis, targetRoot string) *OrganizationPlan {
	plan := &OrganizationPlan{
		TargetRoot: targetRoot,
		Categories: make(map[string][]FileRef),
	}
	for _, c := range Categories() {
		records := analysis.Categories[c]
		if len(records) == 0 {
			continue
		}
		refs := make([]FileRef, 0, len(records))
		for _, r := range records {
			refs = append(refs, FileRef{Path: r.Path})
		}
		plan.Categories[c.String()] = refs
	}
	return plan
}

// FileCount returns the total number of files the plan would move.
func (p *OrganizationPlan) FileCount() int {
	n := 0
	for _, refs := range p.Categories {
		n += len(refs)
	}
	return n
}
