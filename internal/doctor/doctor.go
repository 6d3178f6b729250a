// Package doctor provides preflight checks for the content and asset tree.
package doctor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/example/pathaudio/internal/manifest"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// Config selects what to check.
type Config struct {
	// InputDir is the learning-path directory that must exist and contain
	// at least one JSON file.
	InputDir string
	// AssetRoot is the audio asset root that must be writable.
	AssetRoot string
	// Languages are the asset subdirectories whose manifests are verified
	// against the files on disk.
	Languages []string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- input directory --------------------------------------------------
	files, err := filepath.Glob(filepath.Join(cfg.InputDir, "*.json"))
	switch {
	case dirMissing(cfg.InputDir):
		res.fail(fmt.Sprintf("input dir %q: not found", cfg.InputDir))
		fmt.Fprintf(w, "%s input dir %s: not found\n", FailMark, cfg.InputDir)
	case err != nil || len(files) == 0:
		res.fail(fmt.Sprintf("input dir %q: no learning-path files", cfg.InputDir))
		fmt.Fprintf(w, "%s input dir %s: no learning-path files\n", FailMark, cfg.InputDir)
	default:
		fmt.Fprintf(w, "%s input dir %s: %d learning-path files\n", PassMark, cfg.InputDir, len(files))
	}

	// ---- asset root writable ----------------------------------------------
	if err := checkWritable(cfg.AssetRoot); err != nil {
		res.fail(fmt.Sprintf("asset root %q: %v", cfg.AssetRoot, err))
		fmt.Fprintf(w, "%s asset root %s: not writable (%v)\n", FailMark, cfg.AssetRoot, err)
	} else {
		fmt.Fprintf(w, "%s asset root %s: writable\n", PassMark, cfg.AssetRoot)
	}

	// ---- per-language manifests -------------------------------------------
	for _, language := range cfg.Languages {
		checkManifest(cfg.AssetRoot, language, &res, w)
	}

	return res
}

func dirMissing(dir string) bool {
	info, err := os.Stat(dir)
	return err != nil || !info.IsDir()
}

func checkWritable(root string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}
	probe, err := os.CreateTemp(root, ".doctor-probe-")
	if err != nil {
		return err
	}
	probe.Close()
	return os.Remove(probe.Name())
}

// checkManifest verifies that every manifest entry resolves to a file on
// disk and reports audio files the manifest does not reference. Orphans
// are informational, not failures: assets are created once and never
// deleted, so stale files accumulate legitimately.
func checkManifest(assetRoot, language string, res *Result, w io.Writer) {
	dir := filepath.Join(assetRoot, language)
	manifestPath := filepath.Join(dir, manifest.Filename)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		res.fail(fmt.Sprintf("manifest %s: %v", manifestPath, err))
		fmt.Fprintf(w, "%s manifest %s: unreadable (%v)\n", FailMark, manifestPath, err)
		return
	}
	if len(m) == 0 {
		fmt.Fprintf(w, "%s manifest %s: empty or missing\n", PassMark, manifestPath)
		return
	}

	referenced := make(map[string]struct{}, len(m))
	missing := 0
	for text, rel := range m {
		assetPath := filepath.Join(assetRoot, filepath.FromSlash(rel))
		referenced[assetPath] = struct{}{}
		if _, err := os.Stat(assetPath); err != nil {
			missing++
			res.fail(fmt.Sprintf("manifest %s: %q -> %s missing", manifestPath, text, rel))
		}
	}

	if missing > 0 {
		fmt.Fprintf(w, "%s manifest %s: %d of %d entries missing on disk\n",
			FailMark, manifestPath, missing, len(m))
	} else {
		fmt.Fprintf(w, "%s manifest %s: %d entries, all present\n", PassMark, manifestPath, len(m))
	}

	orphans := orphanedAssets(dir, referenced)
	if len(orphans) > 0 {
		fmt.Fprintf(w, "%s %s: %d audio files not referenced by the manifest\n",
			PassMark, dir, len(orphans))
		for _, o := range orphans {
			fmt.Fprintf(w, "    %s\n", o)
		}
	}
}

func orphanedAssets(dir string, referenced map[string]struct{}) []string {
	entries, err := filepath.Glob(filepath.Join(dir, "*.mp3"))
	if err != nil {
		return nil
	}
	var orphans []string
	for _, e := range entries {
		if _, ok := referenced[e]; !ok {
			orphans = append(orphans, filepath.Base(e))
		}
	}
	sort.Strings(orphans)
	return orphans
}
