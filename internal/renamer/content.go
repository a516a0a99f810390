package renamer

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/temirov/termswap/internal/substitution"
)

const (
	extensionSeparatorConstant      = "."
	contentSkippedLogMessage        = "content unchanged"
	contentLatin1FallbackLogMessage = "content decoded as ISO-8859-1"
	logFieldPathConstant            = "path"
	diffFailedLogMessage            = "unable to render diff"
	diffContextLinesConstant        = 3
)

// contentRewriter applies the substitution set to the text of recognized files.
type contentRewriter struct {
	fileSystem afero.Fs
	rules      substitution.Set
	extensions map[string]struct{}
	dryRun     bool
	showDiff   bool
	reporter   *progressReporter
	logger     *zap.Logger
}

// Rewrite updates filePath in place when its extension is recognized and its text changes.
func (rewriter *contentRewriter) Rewrite(filePath string, fileInfo os.FileInfo) {
	if !fileInfo.Mode().IsRegular() {
		return
	}
	if _, recognized := rewriter.extensions[contentExtension(filePath)]; !recognized {
		return
	}

	contents, readError := afero.ReadFile(rewriter.fileSystem, filePath)
	if readError != nil {
		rewriter.reporter.readFailed(filePath, readError)
		return
	}

	originalText, textEncoding, decodeError := decodeText(contents)
	if decodeError != nil {
		rewriter.reporter.readFailed(filePath, decodeError)
		return
	}
	if textEncoding != nil {
		rewriter.logger.Debug(contentLatin1FallbackLogMessage, zap.String(logFieldPathConstant, filePath))
	}

	updatedText, changed := rewriter.rules.Changes(originalText)
	if !changed {
		rewriter.logger.Debug(contentSkippedLogMessage, zap.String(logFieldPathConstant, filePath))
		return
	}

	if rewriter.dryRun {
		rewriter.reporter.contentUpdated(filePath, true)
		rewriter.printDiff(filePath, originalText, updatedText)
		return
	}

	encodedContents, encodeError := encodeText(updatedText, textEncoding)
	if encodeError != nil {
		rewriter.reporter.writeFailed(filePath, encodeError)
		return
	}

	if writeError := afero.WriteFile(rewriter.fileSystem, filePath, encodedContents, fileInfo.Mode().Perm()); writeError != nil {
		rewriter.reporter.writeFailed(filePath, writeError)
		return
	}
	rewriter.reporter.contentUpdated(filePath, false)
	rewriter.printDiff(filePath, originalText, updatedText)
}

func (rewriter *contentRewriter) printDiff(filePath string, originalText string, updatedText string) {
	if !rewriter.showDiff {
		return
	}
	unifiedDiff, diffError := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(originalText),
		B:        difflib.SplitLines(updatedText),
		FromFile: filePath,
		ToFile:   filePath,
		Context:  diffContextLinesConstant,
	})
	if diffError != nil {
		rewriter.logger.Debug(diffFailedLogMessage, zap.String(logFieldPathConstant, filePath), zap.Error(diffError))
		return
	}
	rewriter.reporter.diff(unifiedDiff)
}

// contentExtension returns the final extension of the base name; leading dots never start an extension.
func contentExtension(filePath string) string {
	baseName := strings.TrimLeft(filepath.Base(filePath), extensionSeparatorConstant)
	separatorIndex := strings.LastIndex(baseName, extensionSeparatorConstant)
	if separatorIndex < 0 {
		return ""
	}
	return baseName[separatorIndex:]
}

// decodeText returns the text and the encoding it was decoded with; a nil encoding means UTF-8.
func decodeText(contents []byte) (string, encoding.Encoding, error) {
	if utf8.Valid(contents) {
		return string(contents), nil, nil
	}
	decodedContents, decodeError := charmap.ISO8859_1.NewDecoder().Bytes(contents)
	if decodeError != nil {
		return "", nil, decodeError
	}
	return string(decodedContents), charmap.ISO8859_1, nil
}

func encodeText(text string, textEncoding encoding.Encoding) ([]byte, error) {
	if textEncoding == nil {
		return []byte(text), nil
	}
	return textEncoding.NewEncoder().Bytes([]byte(text))
}
