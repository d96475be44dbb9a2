package main

import "github.com/SOV710/gitlsf/internal/counter"

// outputMode selects how the text report is rendered.
type outputMode int

const (
	modeVerbose outputMode = iota // per-file lines followed by the total
	modeQuiet                     // total only
	modeSummary                   // file and line totals
)

// runOptions holds everything a single invocation needs after flags, config
// file and environment have been merged.
type runOptions struct {
	Path        string
	Mode        outputMode
	Format      string // text, json or yaml
	Tree        bool
	ByLanguage  bool
	PDFFile     string
	Clipboard   bool
	Interactive bool
	Sequential  bool

	ExcludeExtensions []string
	ExcludeFilenames  []string
	IgnoreFile        string

	Counter counter.Options
}

// languageTotal is one row of the --by-language breakdown.
type languageTotal struct {
	Language string `json:"language" yaml:"language"`
	Files    int    `json:"files" yaml:"files"`
	Lines    int    `json:"lines" yaml:"lines"`
}
