package dataset

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// DefaultURL is the published quarterly US GDP series.
const DefaultURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/GDP-data.json"

// Fetch issues a single GET and parses the body. There is no retry and no
// status check: a non-JSON error page surfaces as a decode error.
func Fetch(ctx context.Context, client *http.Client, url string) (Dataset, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Dataset{}, errors.Wrap(err, "build request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "fetch %s", url)
	}
	defer resp.Body.Close()
	d, err := Parse(resp.Body)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "fetch %s (status %d)", url, resp.StatusCode)
	}
	return d, nil
}
