package runtime

import (
	"fmt"
	"os"

	"github.com/pithecene-io/easel/addr"
	"github.com/pithecene-io/easel/iox"
	"github.com/pithecene-io/easel/types"
)

// WriteTranscript persists the exact original (un-instrumented) script bytes
// next to the figure artifact, unconditionally overwriting any prior
// transcript. Runs on every success including cache hits, so the transcript
// stays in sync even when surrounding metadata changed but the rendered
// image did not.
func WriteTranscript(spec types.FigureSpec) error {
	path := addr.TranscriptPath(addr.FigurePath(spec))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create transcript %q: %w", path, err)
	}
	defer iox.DiscardClose(f)

	if _, err := f.WriteString(spec.Script); err != nil {
		return fmt.Errorf("cannot write transcript %q: %w", path, err)
	}
	return nil
}
