package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNeedURLPrefix is returned when a dataset entry has neither a URL
	// nor a URL prefix to construct one from its filename.
	ErrNeedURLPrefix = goerr.New("no URL given and no URL prefix to construct one")

	// ErrNoFilename is returned when no filename can be inferred for a URL,
	// neither from the Content-Disposition header nor from the URL path.
	ErrNoFilename = goerr.New("cannot infer filename from URL")

	// ErrUnsafeFilename is returned when a resolved filename contains path
	// separators or parent references and would escape the target directory.
	ErrUnsafeFilename = goerr.New("filename would escape the target directory")

	// ErrSpecMismatch is returned when a dataset spec has URL and filename
	// lists of different lengths.
	ErrSpecMismatch = goerr.New("urls and filenames must have the same length")

	// ErrUnknownDataset is returned for dataset names outside the registry.
	ErrUnknownDataset = goerr.New("unknown dataset")

	// ErrInvalidVariant is returned for unsupported dataset variant
	// selectors (silhouette size, SVHN format).
	ErrInvalidVariant = goerr.New("invalid dataset variant")
)
