package runtime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pithecene-io/easel/addr"
	"github.com/pithecene-io/easel/types"
)

func TestShouldRun_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "figures")
	spec := types.FigureSpec{
		Toolkit:   types.ToolkitMatplotlib,
		Script:    "plt.plot([1])",
		Format:    types.FormatPNG,
		Directory: dir,
	}

	run, err := ShouldRun(spec)
	if err != nil {
		t.Fatalf("ShouldRun: %v", err)
	}
	if !run {
		t.Error("missing artifact should require a run")
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("output directory was not created: %v", err)
	}
}

func TestShouldRun_ExistingArtifactSkipsExecution(t *testing.T) {
	spec := types.FigureSpec{
		Toolkit:   types.ToolkitMatplotlib,
		Script:    "plt.plot([1])",
		Format:    types.FormatPNG,
		Directory: t.TempDir(),
	}
	if err := os.WriteFile(addr.FigurePath(spec), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	run, err := ShouldRun(spec)
	if err != nil {
		t.Fatalf("ShouldRun: %v", err)
	}
	if run {
		t.Error("existing artifact should be served from cache")
	}
}
