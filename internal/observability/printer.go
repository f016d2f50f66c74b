// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nepscript/goodsync/internal/good"
	"github.com/nepscript/goodsync/internal/inventory"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCover summarizes the roster and the minimum cover selected from it.
func (p *Printer) PrintCover(avatars, weapons int, picked []int64) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Avatars:  %d\n", avatars))
	sb.WriteString(fmt.Sprintf("Weapons:  %d\n", weapons))
	sb.WriteString(fmt.Sprintf("Selected: %d entries\n", len(picked)))

	count := min(len(picked), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %d\n", picked[i]))
	}
	if len(picked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(picked)-maxItemsToShow))
	}

	p.printBox("Roster Cover", strings.TrimRight(sb.String(), "\n"))
}

// PrintInventory summarizes the tallied materials before GOOD mapping.
func (p *Printer) PrintInventory(items []inventory.Item) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Materials: %d\n", len(items)))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s: %d\n", items[i].Name, items[i].Owned))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}

	p.printBox("Inventory Tally", strings.TrimRight(sb.String(), "\n"))
}

// PrintExport outputs a summary of the written GOOD document.
func (p *Printer) PrintExport(doc *good.Document) {
	if doc == nil {
		return
	}

	keys := make([]string, 0, len(doc.Materials))
	for k := range doc.Materials {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Format:    %s v%d\n", doc.Format, doc.Version))
	sb.WriteString(fmt.Sprintf("Materials: %d\n", len(keys)))

	count := min(len(keys), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s: %d\n", keys[i], doc.Materials[keys[i]]))
	}
	if len(keys) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keys)-maxItemsToShow))
	}

	p.printBox("GOOD Export", strings.TrimRight(sb.String(), "\n"))
}
