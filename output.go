package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SOV710/gitlsf/internal/counter"
)

// report is the structured form written for --format json and yaml.
type report struct {
	Files      []counter.FileCount `json:"files,omitempty" yaml:"files,omitempty"`
	TotalLines int                 `json:"total_lines" yaml:"total_lines"`
	FileCount  int                 `json:"file_count" yaml:"file_count"`
	Languages  []languageTotal     `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// renderReport produces the complete output for one run.
func renderReport(summary counter.CountSummary, opts runOptions) (string, error) {
	switch strings.ToLower(opts.Format) {
	case "", "text":
		return renderText(summary, opts), nil
	case "json", "yaml":
		r := report{TotalLines: summary.TotalLines, FileCount: summary.FileCount}
		if opts.Mode == modeVerbose {
			r.Files = sortedFiles(summary)
		}
		if opts.ByLanguage {
			r.Languages = totalsByLanguage(summary)
		}
		if strings.EqualFold(opts.Format, "json") {
			out, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return "", fmt.Errorf("failed to encode json report: %w", err)
			}
			return string(out) + "\n", nil
		}
		out, err := yaml.Marshal(r)
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s. Use 'text', 'json' or 'yaml'", opts.Format)
	}
}

func renderText(summary counter.CountSummary, opts runOptions) string {
	var b strings.Builder
	if opts.Tree {
		b.WriteString(printTree(buildTree(summary)))
		b.WriteString("\n")
	}
	if opts.ByLanguage {
		b.WriteString(printLanguages(totalsByLanguage(summary)))
		b.WriteString("\n")
	}
	b.WriteString(printSummary(summary, opts.Mode))
	return b.String()
}

// sortedFiles returns a copy of the summary's files sorted by path.
func sortedFiles(summary counter.CountSummary) []counter.FileCount {
	files := make([]counter.FileCount, len(summary.Files))
	copy(files, summary.Files)
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

// printSummary renders the counts in the given mode.
func printSummary(summary counter.CountSummary, mode outputMode) string {
	var b strings.Builder
	switch mode {
	case modeQuiet:
		fmt.Fprintf(&b, "%d\n", summary.TotalLines)
	case modeSummary:
		fmt.Fprintf(&b, "Files: %d\n", summary.FileCount)
		fmt.Fprintf(&b, "Lines: %d\n", summary.TotalLines)
	default:
		files := sortedFiles(summary)
		maxLines := summary.TotalLines
		for _, f := range files {
			maxLines = max(maxLines, f.Lines)
		}
		width := max(len(strconv.Itoa(maxLines)), 4)

		for _, f := range files {
			fmt.Fprintf(&b, "%*d %s\n", width, f.Lines, f.Path)
		}
		fmt.Fprintf(&b, "%*d total\n", width, summary.TotalLines)
	}
	return b.String()
}

func printLanguages(totals []languageTotal) string {
	var b strings.Builder
	nameWidth := len("Language")
	for _, lt := range totals {
		nameWidth = max(nameWidth, len(lt.Language))
	}
	fmt.Fprintf(&b, "%-*s %8s %10s\n", nameWidth, "Language", "Files", "Lines")
	for _, lt := range totals {
		fmt.Fprintf(&b, "%-*s %8d %10d\n", nameWidth, lt.Language, lt.Files, lt.Lines)
	}
	return b.String()
}

// Node represents an entry in the directory tree, carrying the lines of
// every counted file beneath it.
type Node struct {
	Name     string
	IsDir    bool
	Lines    int
	Children []*Node
}

// buildTree constructs a hierarchical tree from the counted paths, creating
// intermediate directories as needed.
func buildTree(summary counter.CountSummary) *Node {
	root := &Node{Name: ".", IsDir: true}
	dirs := map[string]*Node{"": root}

	for _, f := range summary.Files {
		parts := strings.Split(strings.Trim(f.Path, "/"), "/")
		parent := root
		parent.Lines += f.Lines
		key := ""
		for _, dir := range parts[:len(parts)-1] {
			key += dir + "/"
			node, ok := dirs[key]
			if !ok {
				node = &Node{Name: dir, IsDir: true}
				dirs[key] = node
				parent.Children = append(parent.Children, node)
			}
			node.Lines += f.Lines
			parent = node
		}
		parent.Children = append(parent.Children, &Node{Name: parts[len(parts)-1], Lines: f.Lines})
	}

	sortChildren(root)
	return root
}

// sortChildren recursively sorts the children of a node alphabetically.
func sortChildren(node *Node) {
	if !node.IsDir || len(node.Children) == 0 {
		return
	}
	sort.Slice(node.Children, func(i, j int) bool {
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		sortChildren(child)
	}
}

// printTree generates the string representation of the tree.
func printTree(root *Node) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s (%d)\n", root.Name, root.Lines)
	printNode(&builder, root.Children, "")
	return builder.String()
}

// printNode is a helper function for recursively printing tree nodes.
func printNode(builder *strings.Builder, children []*Node, prefix string) {
	for i, node := range children {
		connector := "├── "
		newPrefix := prefix + "│   "
		if i == len(children)-1 {
			connector = "└── "
			newPrefix = prefix + "    "
		}

		fmt.Fprintf(builder, "%s%s%s (%d)\n", prefix, connector, node.Name, node.Lines)

		if node.IsDir {
			printNode(builder, node.Children, newPrefix)
		}
	}
}
