// Package addr derives deterministic on-disk paths from figure content.
//
// All functions are pure over a well-formed FigureSpec: no I/O, no
// randomness, identical inputs yield identical paths across processes and
// runs. The file system acts as the render cache and these paths are its
// keys, so two specs with byte-identical relevant content must map to the
// same figure path and specs with different scripts must diverge.
//
// Hash collisions between distinct scripts are an accepted risk, not
// detected or handled.
package addr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/pithecene-io/easel/types"
)

// scriptPrefix prefixes temp script file names so stale easel scripts are
// recognizable in the system temp directory.
const scriptPrefix = "easel-"

// transcriptExtension is the plain-text extension of the persisted source
// transcript written next to the figure artifact.
const transcriptExtension = ".txt"

// fieldSep separates hashed fields so ("ab","c") and ("a","bc") cannot
// collide.
const fieldSep = "\x00"

// ContentHash hashes the format-relevant fields of a spec: toolkit, script
// text, and save format. Presentation metadata (caption, block attrs) is
// deliberately excluded so caption edits never invalidate the cache.
func ContentHash(spec types.FigureSpec) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(string(spec.Toolkit))
	_, _ = d.WriteString(fieldSep)
	_, _ = d.WriteString(spec.Script)
	_, _ = d.WriteString(fieldSep)
	_, _ = d.WriteString(spec.Format.Extension())
	return d.Sum64()
}

// FigurePath returns the content-addressed artifact path:
// <directory>/<hash>.<ext>, cleaned.
func FigurePath(spec types.FigureSpec) string {
	name := fmt.Sprintf("%016x.%s", ContentHash(spec), spec.Format.Extension())
	return filepath.Clean(filepath.Join(spec.Directory, name))
}

// ScriptPath returns the temp path where the instrumented script is
// materialized. The name hashes the script text alone, so concurrent
// unrelated requests get distinct paths while repeated identical requests
// reuse the same file. The toolkit's extension is appended because some
// interpreters refuse files without a recognizable suffix.
func ScriptPath(spec types.FigureSpec, scriptExtension string) string {
	sum := xxhash.Sum64String(spec.Script)
	name := fmt.Sprintf("%s%016x%s", scriptPrefix, sum, scriptExtension)
	return filepath.Join(os.TempDir(), name)
}

// TranscriptPath returns figurePath with its extension replaced by the
// plain-text transcript extension.
func TranscriptPath(figurePath string) string {
	ext := filepath.Ext(figurePath)
	return strings.TrimSuffix(figurePath, ext) + transcriptExtension
}
