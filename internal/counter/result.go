package counter

// FileCount is the line count of a single successfully scanned file.
type FileCount struct {
	// Path is the path as supplied by the caller, relative to the base directory.
	Path  string `json:"path" yaml:"path"`
	Lines int    `json:"lines" yaml:"lines"`
}

// CountSummary aggregates the results of a batch count.
// Files is in completion order, which is not necessarily input order.
type CountSummary struct {
	Files      []FileCount `json:"files" yaml:"files"`
	TotalLines int         `json:"total_lines" yaml:"total_lines"`
	FileCount  int         `json:"file_count" yaml:"file_count"`
}

// NewSummary builds a summary whose totals are derived from files.
func NewSummary(files []FileCount) CountSummary {
	total := 0
	for _, f := range files {
		total += f.Lines
	}
	return CountSummary{
		Files:      files,
		TotalLines: total,
		FileCount:  len(files),
	}
}

// fileInfo carries the size of a candidate between partitioning and scanning.
type fileInfo struct {
	path string
	size int64
}
