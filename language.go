package main

import (
	"path"
	"sort"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/SOV710/gitlsf/internal/counter"
)

// otherLanguage labels files no lexer claims.
const otherLanguage = "Other"

// languageForFile determines the language for a path from its file name.
func languageForFile(p string) string {
	lexer := lexers.Match(path.Base(p))
	if lexer == nil {
		return otherLanguage
	}
	return lexer.Config().Name
}

// totalsByLanguage groups a summary by language, largest line count first.
func totalsByLanguage(summary counter.CountSummary) []languageTotal {
	byName := make(map[string]*languageTotal)
	for _, f := range summary.Files {
		lang := languageForFile(f.Path)
		lt, ok := byName[lang]
		if !ok {
			lt = &languageTotal{Language: lang}
			byName[lang] = lt
		}
		lt.Files++
		lt.Lines += f.Lines
	}

	totals := make([]languageTotal, 0, len(byName))
	for _, lt := range byName {
		totals = append(totals, *lt)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Lines != totals[j].Lines {
			return totals[i].Lines > totals[j].Lines
		}
		return totals[i].Language < totals[j].Language
	})
	return totals
}
