package runtime

import (
	"fmt"
	"os"

	"github.com/pithecene-io/easel/addr"
	"github.com/pithecene-io/easel/types"
)

// ShouldRun ensures the output directory exists and reports whether the
// content-addressed figure artifact is absent, i.e. whether execution is
// required. An existing artifact is trusted as-is: the content-addressed
// path guarantees only byte-identical requests ever hit it, so no content
// re-validation happens here.
//
// Creating the directory is the single side effect permitted at the gate.
func ShouldRun(spec types.FigureSpec) (bool, error) {
	if err := os.MkdirAll(spec.Directory, 0o755); err != nil {
		return false, fmt.Errorf("cannot create output directory %q: %w", spec.Directory, err)
	}

	_, err := os.Stat(addr.FigurePath(spec))
	switch {
	case err == nil:
		return false, nil
	case os.IsNotExist(err):
		return true, nil
	default:
		return false, fmt.Errorf("cannot stat figure path: %w", err)
	}
}
