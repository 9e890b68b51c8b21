// Package loader reads analysis envelope documents from files and stdin.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/landsense/chartkit/core"
	"github.com/landsense/chartkit/internal/contract"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoInput is returned when Load is given nothing to read.
var ErrNoInput = errors.New("no input to load")

// FileSource loads envelopes from JSON files, directories of JSON files
// and stdin. Inputs are read concurrently but payloads keep input order.
type FileSource struct {
	workers int
	stdin   io.Reader
	logger  *zap.Logger
}

var _ contract.EnvelopeSource = &FileSource{} // Compile-time check

// NewFileSource creates a source reading up to workers inputs at a time.
func NewFileSource(workers int, stdin io.Reader, logger *zap.Logger) *FileSource {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSource{workers: workers, stdin: stdin, logger: logger}
}

// Load reads every input and splits each document into envelope payloads.
// A document may hold one envelope object or an array of them.
func (s *FileSource) Load(ctx context.Context, inputs []string) ([]json.RawMessage, error) {
	paths, err := s.expand(inputs)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	// Each worker writes only its own slot
	docs := make([][]json.RawMessage, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers)
	for i, path := range paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			raws, err := s.loadOne(path)
			if err != nil {
				return err
			}
			s.logger.Debug("loaded input", zap.String("input", path), zap.Int("envelopes", len(raws)))
			docs[i] = raws
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []json.RawMessage
	for _, raws := range docs {
		out = append(out, raws...)
	}
	return out, nil
}

// expand replaces directories with the JSON files they contain, in name
// order, and keeps only the first stdin marker.
func (s *FileSource) expand(inputs []string) ([]string, error) {
	var paths []string
	seenStdin := false
	for _, in := range inputs {
		if in == contract.StdinPath {
			if !seenStdin {
				paths = append(paths, in)
				seenStdin = true
			}
			continue
		}
		info, err := os.Stat(in)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", in, err)
		}
		if !info.IsDir() {
			paths = append(paths, in)
			continue
		}
		entries, err := os.ReadDir(in)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", in, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
				continue
			}
			paths = append(paths, filepath.Join(in, e.Name()))
		}
	}
	return paths, nil
}

func (s *FileSource) loadOne(path string) ([]json.RawMessage, error) {
	var (
		doc []byte
		err error
	)
	if path == contract.StdinPath {
		if s.stdin == nil {
			return nil, fmt.Errorf("failed to read stdin: %w", ErrNoInput)
		}
		doc, err = io.ReadAll(s.stdin)
	} else {
		doc, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", displayName(path), err)
	}

	raws, err := core.SplitDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", displayName(path), err)
	}
	return raws, nil
}

func displayName(path string) string {
	if path == contract.StdinPath {
		return "stdin"
	}
	return path
}
