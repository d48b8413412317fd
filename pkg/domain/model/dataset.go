package model

import (
	"io"
	"net/url"
	"path"

	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DatasetSpec describes where a dataset's files live. URLs and Filenames are
// parallel lists; an empty string means the entry is absent. A missing URL is
// constructed as URLPrefix + filename, a missing filename is inferred from
// the HTTP response or the URL path.
type DatasetSpec struct {
	Name      types.Dataset
	URLs      []string
	Filenames []string
	URLPrefix string
}

// DownloadTarget describes where downloaded files are written
type DownloadTarget struct {
	// Directory is the destination directory, created if missing
	Directory string

	// Clear removes every regular file directly inside Directory before
	// downloading. Subdirectories are left untouched.
	Clear bool
}

// FetchResult represents one streaming HTTP response. The body is a finite,
// non-restartable byte stream; both the production transport and test fakes
// satisfy this shape.
type FetchResult struct {
	// Body is the response stream. The consumer must close it.
	Body io.ReadCloser

	// ContentLength is the total size in bytes, or a negative value when
	// the server did not report one.
	ContentLength int64

	// SuggestedFilename is the filename from the Content-Disposition
	// header, empty when the header is absent or carries no filename.
	SuggestedFilename string
}

// FilenameFromURL returns the final path segment of a URL, used as the local
// filename when neither the spec nor the response suggests one. URLs without
// a usable segment (e.g. "http://x/") yield ErrNoFilename.
func FilenameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse URL", goerr.V("url", rawURL))
	}

	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", goerr.Wrap(types.ErrNoFilename, "URL has no usable path segment", goerr.V("url", rawURL))
	}

	return name, nil
}
