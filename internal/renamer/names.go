package renamer

import (
	"path/filepath"

	"github.com/temirov/termswap/internal/substitution"
)

// candidatePath applies the rules to the base name of itemPath and reports whether the name changed.
func candidatePath(itemPath string, rules substitution.Set) (string, bool) {
	currentName := filepath.Base(itemPath)
	updatedName, changed := rules.Changes(currentName)
	if !changed {
		return itemPath, false
	}
	return filepath.Join(filepath.Dir(itemPath), updatedName), true
}
