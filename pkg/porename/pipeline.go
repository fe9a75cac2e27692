package porename

import (
	"context"
	"path/filepath"
)

// Run lists the PDFs of the working directory, normalizes all of them, lists
// again and renames every file after its identifiers.
//
// Failures are per file: they are logged, reported and counted, and the run
// moves on to the next file. A file failing both passes counts once. Run only
// returns an error when the directory cannot be listed or ctx is done.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	failed := make(map[string]bool)
	record := func(path string, r Result) {
		if r.Outcome == OutcomeFailed {
			if failed[path] {
				r.repeat = true
			}
			failed[path] = true
		}
		summary.add(r)
		p.reporter.Report(r)
	}

	paths, err := ListPDFs(p.dir)
	if err != nil {
		return summary, err
	}
	p.logger.Info("normalize pass started", "dir", p.dir, "files", len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		record(path, p.normalizeOne(path))
	}

	paths, err = ListPDFs(p.dir)
	if err != nil {
		return summary, err
	}
	p.logger.Info("finalize pass started", "dir", p.dir, "files", len(paths))

	registry := NewNameRegistry()
	registry.track(paths...)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		record(path, p.finalizeOne(ctx, path, registry))
	}

	p.logger.Info("run finished",
		"renamed", summary.Renamed,
		"not_found", summary.NotFound,
		"failed", summary.Failed,
	)
	return summary, nil
}

func (p *Pipeline) normalizeOne(path string) Result {
	r := Result{Stage: StageNormalize, Original: filepath.Base(path)}
	logger := p.logger.With("stage", StageNormalize, "file", r.Original)

	outputs, class, err := p.Normalize(path)
	r.Classification = class
	r.Outputs = baseNames(outputs)
	if err != nil {
		r.Outcome = OutcomeFailed
		r.Err = err
		logger.Error("normalize failed", "error", err)
		return r
	}

	r.Outcome = OutcomeRenamed
	if len(outputs) > 1 {
		r.Outcome = OutcomeSplit
	}
	logger.Debug("normalized", "classification", class, "outputs", r.Outputs)
	return r
}

// finalizeOne finalizes one listed input. An earlier rename of the pass may
// have moved it aside; the result is still keyed by the listed name.
func (p *Pipeline) finalizeOne(ctx context.Context, listed string, registry *NameRegistry) Result {
	r := Result{Stage: StageFinalize, Original: filepath.Base(listed)}
	logger := p.logger.With("stage", StageFinalize, "file", r.Original)
	path := registry.currentPath(listed)

	fail := func(err error) Result {
		// A failed input keeps its name and is no longer moved aside.
		registry.done(path)
		r.Outcome = OutcomeFailed
		r.Err = err
		logger.Error("finalize failed", "error", err)
		return r
	}

	class, err := Classify(path)
	if err != nil {
		return fail(err)
	}
	r.Classification = class

	ids, err := p.extractor.Extract(ctx, path, class)
	if err != nil {
		return fail(err)
	}
	r.Identifiers = ids

	final, err := p.Finalize(path, ids, registry)
	if err != nil {
		return fail(err)
	}
	r.Outputs = []string{filepath.Base(final)}

	r.Outcome = OutcomeRenamed
	if ids.Empty() {
		r.Outcome = OutcomeNotFound
	}
	logger.Debug("finalized", "classification", class, "identifiers", ids.Token(), "output", r.Outputs[0])
	return r
}

func baseNames(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	names := make([]string, len(paths))
	for i, path := range paths {
		names[i] = filepath.Base(path)
	}
	return names
}
