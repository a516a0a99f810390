package renamer

import (
	"fmt"
	"io"

	"github.com/temirov/termswap/internal/pathmove"
)

const (
	dryRunContentTemplateConstant    = "[DRY RUN] Would update content in: %s\n"
	contentUpdatedTemplateConstant   = "Updated content in: %s\n"
	readFailedTemplateConstant       = "Could not read file %s: %v\n"
	writeFailedTemplateConstant      = "Could not write to file %s: %v\n"
	targetExistsTemplateConstant     = "Could not rename %s: target exists: %s\n"
	dryRunRenameTemplateConstant     = "[DRY RUN] Would %s: %s to %s\n"
	renamedTemplateConstant          = "Renamed: %s to %s\n"
	renamedViaTemplateConstant       = "Renamed via %s: %s to %s\n"
	renameFailedTemplateConstant     = "Could not rename %s: %v\n"
	skippedDirectoryTemplateConstant = "Skipped excluded directory: %s\n"
	listingFailedTemplateConstant    = "Could not list directory %s: %v\n"
	finishedTemplateConstant         = "Finished: %d content updates, %d renames, %d failures\n"
)

// Summary counts the outcomes of one run. Dry runs count planned changes.
type Summary struct {
	ContentUpdates     int
	Renames            int
	Failures           int
	SkippedDirectories int
}

// progressReporter prints line-oriented progress and tallies the Summary.
type progressReporter struct {
	output  io.Writer
	summary Summary
}

func newProgressReporter(output io.Writer) *progressReporter {
	if output == nil {
		output = io.Discard
	}
	return &progressReporter{output: output}
}

func (reporter *progressReporter) contentUpdated(filePath string, dryRun bool) {
	reporter.summary.ContentUpdates++
	if dryRun {
		reporter.printf(dryRunContentTemplateConstant, filePath)
		return
	}
	reporter.printf(contentUpdatedTemplateConstant, filePath)
}

func (reporter *progressReporter) diff(unifiedDiff string) {
	if len(unifiedDiff) == 0 {
		return
	}
	fmt.Fprint(reporter.output, unifiedDiff)
}

func (reporter *progressReporter) readFailed(filePath string, failure error) {
	reporter.summary.Failures++
	reporter.printf(readFailedTemplateConstant, filePath, failure)
}

func (reporter *progressReporter) writeFailed(filePath string, failure error) {
	reporter.summary.Failures++
	reporter.printf(writeFailedTemplateConstant, filePath, failure)
}

func (reporter *progressReporter) targetExists(oldPath string, newPath string) {
	reporter.summary.Failures++
	reporter.printf(targetExistsTemplateConstant, oldPath, newPath)
}

func (reporter *progressReporter) wouldRename(method pathmove.Method, oldPath string, newPath string) {
	reporter.summary.Renames++
	reporter.printf(dryRunRenameTemplateConstant, method, oldPath, newPath)
}

func (reporter *progressReporter) renamed(expectedMethod pathmove.Method, usedMethod pathmove.Method, oldPath string, newPath string) {
	reporter.summary.Renames++
	if usedMethod != expectedMethod {
		reporter.printf(renamedViaTemplateConstant, usedMethod, oldPath, newPath)
		return
	}
	reporter.printf(renamedTemplateConstant, oldPath, newPath)
}

func (reporter *progressReporter) renameFailed(oldPath string, failure error) {
	reporter.summary.Failures++
	reporter.printf(renameFailedTemplateConstant, oldPath, failure)
}

func (reporter *progressReporter) skippedDirectory(directoryPath string) {
	reporter.summary.SkippedDirectories++
	reporter.printf(skippedDirectoryTemplateConstant, directoryPath)
}

func (reporter *progressReporter) listingFailed(directoryPath string, failure error) {
	reporter.summary.Failures++
	reporter.printf(listingFailedTemplateConstant, directoryPath, failure)
}

func (reporter *progressReporter) finished() {
	reporter.printf(finishedTemplateConstant, reporter.summary.ContentUpdates, reporter.summary.Renames, reporter.summary.Failures)
}

func (reporter *progressReporter) printf(format string, arguments ...any) {
	fmt.Fprintf(reporter.output, format, arguments...)
}
