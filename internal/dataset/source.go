package dataset

import (
	"context"
	"net/http"
)

// Source produces a fresh Dataset for one render pass.
type Source interface {
	Load(ctx context.Context) (Dataset, error)
}

// URLSource fetches the dataset over HTTP on every Load.
type URLSource struct {
	Client *http.Client
	URL    string
}

func (s URLSource) Load(ctx context.Context) (Dataset, error) {
	return Fetch(ctx, s.Client, s.URL)
}

// FileSource reads a local .json or .csv file on every Load.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	return LoadFile(s.Path)
}

// Static always returns the same dataset. Useful for tests and re-renders
// of data that is already in memory.
type Static Dataset

func (s Static) Load(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	return Dataset(s), nil
}
