package cifio

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fractalqb/cifmod"
)

// Result describes the outcome of editing one file.
type Result struct {
	Path     string
	Output   string
	Modified int
	// Diff is only set for dry runs.
	Diff []DiffLine
}

// Batch applies the same instructions to many CIF files. Files are
// processed concurrently, each with its own random generator.
type Batch struct {
	Instructions *cifmod.Instructions
	// Suffix for output files, DefaultSuffix if empty.
	Suffix string
	// Jobs is the maximum number of files processed at once. Values < 1
	// mean 1.
	Jobs int
	// If Seeded is set, the i-th file uses a generator seeded with
	// Seed+i. Otherwise generators are seeded from entropy.
	Seeded bool
	Seed   uint64
	// NaturalPrecision is passed to cifmod.Env.
	NaturalPrecision bool
	// DryRun computes the diffs but does not write any file.
	DryRun bool
	Log    *zap.Logger
}

func (b *Batch) log() *zap.Logger {
	if b.Log == nil {
		return zap.NewNop()
	}
	return b.Log
}

func (b *Batch) rand(i int) cifmod.Rand {
	if b.Seeded {
		return cifmod.NewRand(b.Seed + uint64(i))
	}
	return cifmod.NewEntropyRand()
}

// Run edits all files and returns the results in the order of paths.
// Any error stops the batch. Files that already were written stay
// written, but no file is ever written partially.
func (b *Batch) Run(ctx context.Context, paths []string) ([]Result, error) {
	res := make([]Result, len(paths))
	grp, gctx := errgroup.WithContext(ctx)
	jobs := b.Jobs
	if jobs < 1 {
		jobs = 1
	}
	grp.SetLimit(jobs)
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		grp.Go(func() (err error) {
			if err = gctx.Err(); err != nil {
				return err
			}
			res[i], err = b.File(path, b.rand(i))
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// File edits a single file using rnd for range instructions.
func (b *Batch) File(path string, rnd cifmod.Rand) (res Result, err error) {
	log := b.log().With(zap.String("file", path))
	txt, err := ReadFile(path)
	if err != nil {
		return res, &FileError{Path: path, Op: "read", err: err}
	}
	rw := cifmod.Rewriter{
		Env: cifmod.Env{
			Rand:             rnd,
			NaturalPrecision: b.NaturalPrecision,
		},
		Log: log,
	}
	lines, n, err := rw.Lines(b.Instructions, txt.Lines)
	if err != nil {
		return res, &FileError{Path: path, Op: "apply instructions to", err: err}
	}
	res = Result{
		Path:     path,
		Output:   OutputPath(path, b.Suffix),
		Modified: n,
	}
	if b.DryRun {
		res.Diff = Diff(txt.Lines, lines)
		log.Debug("dry run", zap.Int("modified", n))
		return res, nil
	}
	if err = txt.WithLines(lines).WriteFile(res.Output, 0644); err != nil {
		return res, &FileError{Path: res.Output, Op: "write", err: err}
	}
	log.Debug("wrote", zap.String("output", res.Output), zap.Int("modified", n))
	return res, nil
}
