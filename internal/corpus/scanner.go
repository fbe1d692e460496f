// Package corpus scans a directory tree of documents, analyzes each one
// independently and assembles corpus totals and the reference graph.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/docgraph/internal/analyze"
	"github.com/dgallion1/docgraph/internal/graph"
	"github.com/dgallion1/docgraph/internal/parser"
)

// ErrNoCorpusRoot is returned when a scan has no usable root directory.
var ErrNoCorpusRoot = errors.New("no corpus root")

// Options configures a Scanner.
type Options struct {
	Concurrency          int
	MaxDocumentBytes     int64
	LinkSiblings         bool
	PDFFallbackPdftotext bool
}

// Result is one completed scan. Documents are sorted by path.
type Result struct {
	Root      string                 `json:"root"`
	Documents []analyze.FileMetadata `json:"documents"`
	Totals    Totals                 `json:"totals"`
}

// Graph builds the reference graph over the scanned documents.
func (r *Result) Graph() graph.Graph {
	return graph.Extract(r.Documents)
}

// Scanner walks a directory and analyzes every supported document.
type Scanner struct {
	opts   Options
	cache  *Cache
	timing *Timings
	log    *slog.Logger
}

// NewScanner returns a Scanner. cache and timing may be nil.
func NewScanner(opts Options, cache *Cache, timing *Timings, log *slog.Logger) *Scanner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{opts: opts, cache: cache, timing: timing, log: log}
}

type entry struct {
	docPath string // root-relative, slash separated, leading "/"
	absPath string
	size    int64
	modTime time.Time
}

// Scan analyzes every supported file under root. Unreadable documents become
// empty records; only a missing root or cancellation fails the scan.
func (s *Scanner) Scan(ctx context.Context, root string) (*Result, error) {
	start := time.Now()
	if root == "" {
		return nil, ErrNoCorpusRoot
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoCorpusRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoCorpusRoot, root)
	}

	entries, err := s.walk(root)
	if err != nil {
		return nil, err
	}

	docs := make([]analyze.FileMetadata, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docs[i] = s.analyzeEntry(e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.SliceStable(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	if s.opts.LinkSiblings {
		LinkSiblings(docs)
	}

	s.timing.Record(PhaseScan, time.Since(start))
	s.log.Info("scan complete", "root", root, "documents", len(docs), "duration_ms", time.Since(start).Milliseconds())

	return &Result{Root: root, Documents: docs, Totals: Summarize(docs)}, nil
}

func (s *Scanner) walk(root string) ([]entry, error) {
	var entries []entry
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Warn("skipping unreadable path", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !parser.IsSupportedExtension(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			s.log.Warn("skipping unreadable file", "path", p, "error", err)
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		entries = append(entries, entry{
			docPath: "/" + filepath.ToSlash(rel),
			absPath: p,
			size:    info.Size(),
			modTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return entries, nil
}

func (s *Scanner) analyzeEntry(e entry) analyze.FileMetadata {
	if meta, ok := s.cache.Get(e.absPath, e.docPath, e.modTime, e.size); ok {
		return meta
	}

	if s.opts.MaxDocumentBytes > 0 && e.size > s.opts.MaxDocumentBytes {
		s.log.Warn("document exceeds size limit", "path", e.docPath, "size", e.size, "limit", s.opts.MaxDocumentBytes)
		meta := analyze.Empty(e.docPath)
		meta.Size = e.size
		return meta
	}

	start := time.Now()
	meta := analyze.AnalyzeSource(e.docPath, func() (string, int64, error) {
		text, err := s.load(e.absPath)
		s.timing.Record(PhaseLoad, time.Since(start))
		return text, e.size, err
	}, s.log)
	s.timing.Record(PhaseAnalyze, time.Since(start))
	s.cache.Add(e.absPath, e.docPath, e.modTime, e.size, meta)
	return meta
}

func (s *Scanner) load(absPath string) (string, error) {
	loader, err := parser.ForFile(absPath, parser.Options{PDFFallbackPdftotext: s.opts.PDFFallbackPdftotext})
	if err != nil {
		return "", err
	}
	f, err := os.Open(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return loader.Load(f, filepath.Base(absPath))
}

// AnalyzeFile reads and analyzes a single file outside any scan. docPath is
// the identifier recorded in the result.
func (s *Scanner) AnalyzeFile(absPath, docPath string) analyze.FileMetadata {
	info, err := os.Stat(absPath)
	if err != nil {
		s.log.Warn("document unreadable", "path", docPath, "error", err)
		return analyze.Empty(docPath)
	}
	return s.analyzeEntry(entry{docPath: docPath, absPath: absPath, size: info.Size(), modTime: info.ModTime()})
}

// LinkSiblings sets Next and Previous between consecutive documents in the
// same directory. docs must already be sorted by path.
func LinkSiblings(docs []analyze.FileMetadata) {
	for i := 1; i < len(docs); i++ {
		prev, cur := &docs[i-1], &docs[i]
		if path.Dir(prev.Path) != path.Dir(cur.Path) {
			continue
		}
		prev.Next = []string{cur.Path}
		cur.Previous = []string{prev.Path}
	}
}

// ResolveDir joins a workspace-relative directory onto root and rejects
// results outside root.
func ResolveDir(root, dir string) (string, error) {
	if root == "" {
		return "", ErrNoCorpusRoot
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root: %w", err)
	}
	joined := filepath.Join(absRoot, filepath.FromSlash(strings.TrimPrefix(dir, "/")))
	rel, err := filepath.Rel(absRoot, joined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("directory %q escapes workspace root", dir)
	}
	return joined, nil
}
