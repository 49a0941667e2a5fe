package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	gqlcheck "github.com/ccbrown/gql-check"
	"github.com/ccbrown/gql-check/graphql"
)

type fileResult struct {
	File   string           `json:"file"`
	Errors []*graphql.Error `json:"errors"`
}

// expandInputs resolves the input globs into a list of files, in order and without duplicates.
func expandInputs(globs []string) ([]string, error) {
	var ret []string
	seen := map[string]struct{}{}
	for _, glob := range globs {
		matches, err := filepath.Glob(glob)
		if err != nil {
			return nil, errors.Wrapf(err, "bad input pattern %q", glob)
		} else if len(matches) == 0 {
			return nil, errors.Errorf("no files match %q", glob)
		}
		for _, match := range matches {
			if _, ok := seen[match]; !ok {
				seen[match] = struct{}{}
				ret = append(ret, match)
			}
		}
	}
	return ret, nil
}

// checkFiles checks each file concurrently. Results are in the same order as files.
func checkFiles(ctx context.Context, checker *gqlcheck.Checker, files []string, wrapper string, jobs int) ([]*fileResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(files), 1)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			errs, err := checkFile(gctx, checker, path, wrapper)
			if err != nil {
				return errors.Wrap(err, path)
			}
			results[i] = &fileResult{
				File:   path,
				Errors: errs,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(ctx context.Context, checker *gqlcheck.Checker, path, wrapper string) ([]*graphql.Error, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if filepath.Ext(path) != ".go" {
		result, err := checker.Check(ctx, string(source))
		if err != nil {
			return nil, err
		}
		return append([]*graphql.Error{}, result.Errors...), nil
	}

	queries, err := extractGoQueries(path, source, wrapper)
	if err != nil {
		return nil, err
	}

	ret := []*graphql.Error{}
	for _, q := range queries {
		if q.Error != nil {
			ret = append(ret, q.Error)
			continue
		}
		result, err := checker.Check(ctx, q.Query)
		if err != nil {
			return nil, err
		}
		for _, qerr := range result.Errors {
			translated := &graphql.Error{
				Message: qerr.Message,
			}
			for _, loc := range qerr.Locations {
				translated.Locations = append(translated.Locations, q.translate(loc))
			}
			ret = append(ret, translated)
		}
	}
	return ret, nil
}
