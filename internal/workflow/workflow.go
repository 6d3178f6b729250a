// Package workflow implements the manifest-driven audio asset generation
// loop: extract candidate texts from learning-path files, slugify, check
// the filesystem, synthesize what is missing, and keep the manifest
// current. The loop is idempotent and incremental: a second run over
// unchanged inputs synthesizes nothing.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/example/pathaudio/internal/content"
	"github.com/example/pathaudio/internal/lang"
	"github.com/example/pathaudio/internal/manifest"
	"github.com/example/pathaudio/internal/slug"
	"github.com/example/pathaudio/internal/tts"
)

// DefaultMaxSlugLength bounds slug bytes well below common filesystem
// path-component limits.
const DefaultMaxSlugLength = 120

// Config holds everything a run needs. Paths and language are explicit;
// nothing is resolved relative to a hard-coded project layout.
type Config struct {
	InputDir      string
	AssetRoot     string
	Language      string
	Rules         slug.Rules
	IsTarget      lang.Classifier
	Synth         tts.Synthesizer
	MaxSlugLength int
	Logger        *slog.Logger
}

// FileCount reports how many candidates one input file contributed.
type FileCount struct {
	Path       string
	Candidates int
}

// Summary is the outcome of one run.
type Summary struct {
	Files        []FileCount
	Candidates   int // unique texts after dedup
	Generated    int // freshly synthesized
	Reused       int // asset already on disk
	SkippedEmpty int // text normalized to an empty slug
	SkippedLong  int // slug over the length threshold
	Failed       int // synthesis or write failure, retried next run
	Collisions   int // distinct texts sharing a slug
	BadFiles     int // input files that failed to parse
}

// Workflow runs asset generation. Single-threaded by design: runs are
// manual, human-triggered batches, and overlapping runs are unsupported.
type Workflow struct {
	cfg Config
	log *slog.Logger
}

// New validates and applies defaults. The synthesizer is required.
func New(cfg Config) (*Workflow, error) {
	if cfg.Synth == nil {
		return nil, fmt.Errorf("workflow: synthesizer is required")
	}
	if cfg.AssetRoot == "" {
		return nil, fmt.Errorf("workflow: asset root is required")
	}
	if cfg.MaxSlugLength <= 0 {
		cfg.MaxSlugLength = DefaultMaxSlugLength
	}
	if cfg.IsTarget == nil {
		cfg.IsTarget = lang.ForCode(cfg.Language)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Workflow{cfg: cfg, log: cfg.Logger}, nil
}

// Run scans the input directory for learning-path files, extracts all
// eligible texts, and generates any missing assets for the target language.
func (w *Workflow) Run(ctx context.Context) (*Summary, error) {
	sum := &Summary{}
	texts, err := w.collect(sum)
	if err != nil {
		return sum, err
	}
	if err := w.generate(ctx, texts, lang.DirName(w.cfg.Language), sum); err != nil {
		return sum, err
	}
	return sum, nil
}

// GenerateSet generates assets for an explicit list of texts under a
// subdirectory of the asset root, e.g. the irregular-verb forms under
// "english/verbs". Duplicates are collapsed and order normalized.
func (w *Workflow) GenerateSet(ctx context.Context, texts []string, subdir string) (*Summary, error) {
	sum := &Summary{}
	if err := w.generate(ctx, dedupe(texts), subdir, sum); err != nil {
		return sum, err
	}
	return sum, nil
}

// collect loads every *.json file in the input directory and returns the
// deduplicated, sorted candidate texts. A file that fails to parse is
// logged and skipped; the rest of the batch proceeds.
func (w *Workflow) collect(sum *Summary) ([]string, error) {
	pattern := filepath.Join(w.cfg.InputDir, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scan input dir: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no learning-path files in %s", w.cfg.InputDir)
	}
	sort.Strings(files)

	seen := make(map[string]struct{})
	for _, file := range files {
		doc, err := content.Load(file)
		if err != nil {
			w.log.Error("skipping unreadable learning path", "file", file, "error", err)
			sum.BadFiles++
			continue
		}

		count := 0
		for _, task := range doc.Tasks {
			for _, text := range content.Candidates(task, w.cfg.Language, w.cfg.IsTarget) {
				if _, ok := seen[text]; !ok {
					seen[text] = struct{}{}
				}
				count++
			}
		}
		sum.Files = append(sum.Files, FileCount{Path: file, Candidates: count})
		w.log.Info("scanned learning path", "file", file, "candidates", count)
	}

	texts := make([]string, 0, len(seen))
	for text := range seen {
		texts = append(texts, text)
	}
	sort.Strings(texts)
	return texts, nil
}

// generate processes candidates in sorted order. Per-candidate failures
// never abort the batch; the manifest is persisted after every successful
// synthesis so an interrupted run loses nothing already paid for.
func (w *Workflow) generate(ctx context.Context, texts []string, subdir string, sum *Summary) error {
	sum.Candidates = len(texts)

	dir := filepath.Join(w.cfg.AssetRoot, filepath.FromSlash(subdir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create asset dir: %w", err)
	}

	manifestPath := filepath.Join(dir, manifest.Filename)
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	slugOwner := make(map[string]string, len(texts))
	for _, text := range texts {
		if err := ctx.Err(); err != nil {
			// Interrupted between candidates: the manifest on disk already
			// reflects every completed synthesis.
			if saveErr := m.Save(manifestPath); saveErr != nil {
				w.log.Error("manifest save on interrupt failed", "error", saveErr)
			}
			return err
		}

		s := slug.Make(text, w.cfg.Rules)
		if s == "" {
			w.log.Warn("text normalizes to empty slug, skipping", "text", text)
			sum.SkippedEmpty++
			continue
		}
		if len(s) > w.cfg.MaxSlugLength {
			w.log.Warn("slug over length threshold, skipping",
				"text", text, "slug_len", len(s), "max", w.cfg.MaxSlugLength)
			sum.SkippedLong++
			continue
		}
		if owner, ok := slugOwner[s]; ok && owner != text {
			// Both texts end up sharing one asset file. Known risk; the
			// first synthesized pronunciation wins.
			w.log.Warn("slug collision", "slug", s, "text", text, "collides_with", owner)
			sum.Collisions++
		} else {
			slugOwner[s] = text
		}

		rel := path.Join(subdir, s+".mp3")
		assetPath := filepath.Join(w.cfg.AssetRoot, filepath.FromSlash(rel))

		if _, err := os.Stat(assetPath); err == nil {
			m[text] = rel
			sum.Reused++
			continue
		}

		data, err := w.cfg.Synth.Synthesize(ctx, text, w.cfg.Language)
		if err != nil {
			w.log.Error("synthesis failed, will retry next run", "text", text, "error", err)
			sum.Failed++
			continue
		}
		if err := os.WriteFile(assetPath, data, 0o644); err != nil {
			w.log.Error("asset write failed", "path", assetPath, "text", text, "error", err)
			sum.Failed++
			continue
		}

		m[text] = rel
		sum.Generated++
		w.log.Info("generated asset", "text", text, "path", rel)

		if err := m.Save(manifestPath); err != nil {
			w.log.Error("incremental manifest save failed", "error", err)
		}
	}

	if err := m.Save(manifestPath); err != nil {
		return err
	}
	return nil
}

func dedupe(texts []string) []string {
	seen := make(map[string]struct{}, len(texts))
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
