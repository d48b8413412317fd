package interfaces

import (
	"context"

	"github.com/m-mizutani/dsfetch/pkg/domain/model"
)

// Fetcher opens one streaming HTTP GET against a URL. Implementations must
// not retry; transport failures propagate to the caller.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*model.FetchResult, error)
}

// Downloader downloads every file of a dataset spec into a target directory,
// strictly in spec order. The first failure aborts the remaining files.
type Downloader interface {
	Download(ctx context.Context, target model.DownloadTarget, spec *model.DatasetSpec) error
}
