package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"emucfg/internal/diagnostic"
	"emucfg/internal/vdf"
	"emucfg/tree"
)

// codeFileFailed marks an input that could not be read, decoded or handled.
const codeFileFailed = "file-failed"

// input is one decoded input file.
type input struct {
	path string
	// name is unique among the inputs of a run, used for output paths.
	name string
	root *tree.Node
	// diags collects what the handler reported through logDiagnostics.
	diags diagnostic.Diagnostics
}

type handler func(opts *options, in *input) error

// processFiles runs handle for every input file, at most opts.cfg.Jobs at
// a time. A failing file is logged and does not stop the others.
func processFiles(opts *options, handle handler) error {
	var (
		mu      sync.Mutex
		summary diagnostic.Diagnostics
	)

	var g errgroup.Group
	g.SetLimit(opts.cfg.Jobs)

	names := outputNames(opts.files)
	for i, path := range opts.files {
		g.Go(func() error {
			diags, err := processFile(opts, path, names[i], handle)

			mu.Lock()
			defer mu.Unlock()

			summary.Merge(diags)

			if err != nil {
				log.Printf("%s: %v", path, err)
				summary.AddError(codeFileFailed, err.Error(), "", path)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(opts.files) > 1 && summary.Len() > 0 {
		log.Printf("%d files: %d errors, %d warnings, %d infos",
			len(opts.files), len(summary.Errors), len(summary.Warnings), len(summary.Infos))
	}

	if summary.HasErrors() {
		failed := len(summary.WithCode(codeFileFailed))
		return fmt.Errorf("%d of %d files failed: %w", failed, len(opts.files), summary.Error())
	}

	return nil
}

func processFile(opts *options, path, name string, handle handler) (diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return diagnostic.Diagnostics{}, fmt.Errorf("failed to read input: %w", err)
	}

	root, err := vdf.Normalize(data, opts.format)
	if err != nil {
		return diagnostic.Diagnostics{}, err
	}

	in := &input{path: path, name: name, root: root}
	err = handle(opts, in)

	return in.diags, err
}

// outputNames derives one output name per input from its base name without
// extension. A name already taken, ignoring case, gets a -2, -3... suffix in
// input order.
func outputNames(paths []string) []string {
	names := make([]string, len(paths))
	taken := make(map[string]bool, len(paths))

	for i, path := range paths {
		base := filepath.Base(path)
		name := strings.TrimSuffix(base, filepath.Ext(base))

		candidate := name
		for n := 2; taken[strings.ToLower(candidate)]; n++ {
			candidate = fmt.Sprintf("%s-%d", name, n)
		}

		if candidate != name {
			log.Printf("%s: output name %q already used, writing to %q", path, name, candidate)
		}

		taken[strings.ToLower(candidate)] = true
		names[i] = candidate
	}

	return names
}

// logDiagnostics records diags for the run summary, prints a summary line
// and, in debug mode, every diagnostic.
func logDiagnostics(opts *options, in *input, diags diagnostic.Diagnostics) {
	in.diags.Merge(diags)

	if diags.Len() == 0 {
		return
	}

	log.Printf("%s: %d warnings, %d infos", in.path, len(diags.Warnings), len(diags.Infos))

	if !opts.cfg.Debug {
		return
	}

	for _, d := range diags.All() {
		log.Printf("%s: %s: %s", in.path, d.Severity, d)
	}
}

// debugDump prints v when debug mode is on.
func debugDump(opts *options, label string, v any) {
	if !opts.cfg.Debug {
		return
	}

	log.Printf("%s:\n%s", label, spew.Sdump(v))
}
