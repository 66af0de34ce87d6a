// File: pkg/docgen/report.go
package docgen

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"docgenie/pkg/scan"
)

// topListing caps the per-file rows printed by the verbose report.
const topListing = 20

// printer groups thousands in report numbers (12,345 rather than 12345).
var printer = message.NewPrinter(language.English)

// reportSummary prints the post-scan totals.
func reportSummary(w io.Writer, files []scan.FileRecord) {
	totalSize, totalLines := totals(files)
	fmt.Fprintf(w, "Found %d files to analyze\n", len(files))
	printer.Fprintf(w, "Total content size: %d characters\n", totalSize)
	printer.Fprintf(w, "Total lines of code: %d lines\n", totalLines)
}

func totals(files []scan.FileRecord) (size, lines int) {
	for _, f := range files {
		size += f.Size
		lines += f.Lines
	}
	return size, lines
}

// reportFileAnalysis prints the size-sorted listing and the size histogram
// for the included files.
func reportFileAnalysis(w io.Writer, files []scan.FileRecord) {
	fmt.Fprintf(w, "\nFile analysis (sorted by size):\n")
	sorted := append([]scan.FileRecord(nil), files...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })
	for i, f := range sorted {
		if i == topListing {
			fmt.Fprintf(w, "    ... and %d more files\n", len(sorted)-topListing)
			break
		}
		printer.Fprintf(w, "%2d. %-50s %8d chars  %6d LOC\n", i+1, f.Path, f.Size, f.Lines)
	}

	var large, medium, small []scan.FileRecord
	for _, f := range sorted {
		switch {
		case f.Size > 10000:
			large = append(large, f)
		case f.Size >= 1000:
			medium = append(medium, f)
		default:
			small = append(small, f)
		}
	}

	fmt.Fprintf(w, "\nSize distribution:\n")
	reportBucket(w, "Large files (>10K chars):  ", large)
	reportBucket(w, "Medium files (1K-10K):     ", medium)
	reportBucket(w, "Small files (<1K chars):   ", small)
}

func reportBucket(w io.Writer, label string, files []scan.FileRecord) {
	size, lines := totals(files)
	printer.Fprintf(w, "  %s%3d files, %d chars, %d LOC\n", label, len(files), size, lines)
}

// reportIgnoredAnalysis prints the same style of listing for ignored files,
// with the rejection reason on each row. It prints nothing when tracking was
// off or nothing was ignored.
func reportIgnoredAnalysis(w io.Writer, ignored []scan.IgnoredRecord) {
	if len(ignored) == 0 {
		return
	}

	fmt.Fprintf(w, "\nIgnored files (%d, sorted by size):\n", len(ignored))
	sorted := append([]scan.IgnoredRecord(nil), ignored...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })
	for i, f := range sorted {
		if i == topListing {
			fmt.Fprintf(w, "    ... and %d more files\n", len(sorted)-topListing)
			break
		}
		printer.Fprintf(w, "%2d. %-50s %8d bytes  %s\n", i+1, f.Path, f.Size, f.Reason)
	}

	var large, medium, small []scan.IgnoredRecord
	for _, f := range sorted {
		switch {
		case f.Size > 10000:
			large = append(large, f)
		case f.Size >= 1000:
			medium = append(medium, f)
		default:
			small = append(small, f)
		}
	}

	fmt.Fprintf(w, "\nIgnored size distribution:\n")
	reportIgnoredBucket(w, "Large files (>10K bytes):  ", large)
	reportIgnoredBucket(w, "Medium files (1K-10K):     ", medium)
	reportIgnoredBucket(w, "Small files (<1K bytes):   ", small)
}

func reportIgnoredBucket(w io.Writer, label string, files []scan.IgnoredRecord) {
	var size int64
	for _, f := range files {
		size += f.Size
	}
	printer.Fprintf(w, "  %s%3d files, %d bytes\n", label, len(files), size)
}

// reportDryRun prints the would-be inputs without touching the service.
func reportDryRun(w io.Writer, files []scan.FileRecord) {
	fmt.Fprintf(w, "\nDry run - Files to be processed:\n")
	for _, f := range files {
		printer.Fprintf(w, "  %s (%d chars, %d LOC)\n", f.Path, f.Size, f.Lines)
	}
	totalSize, totalLines := totals(files)
	fmt.Fprintf(w, "\nTotal files: %d\n", len(files))
	printer.Fprintf(w, "Total characters: %d\n", totalSize)
	printer.Fprintf(w, "Total lines of code: %d\n", totalLines)
}
