package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/schollz/progressbar/v3"

	"github.com/m-mizutani/dsfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/dsfetch/pkg/domain/model"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/dsfetch/pkg/utils/fsutil"
)

const defaultChunkSize = 1024

type downloader struct {
	fetcher     interfaces.Fetcher
	chunkSize   int
	progressOut io.Writer
}

// Option is a functional option for the downloader
type Option func(*downloader)

// WithChunkSize sets the copy chunk size in bytes
func WithChunkSize(size int) Option {
	return func(d *downloader) {
		if size > 0 {
			d.chunkSize = size
		}
	}
}

// WithProgressOutput sets where progress bars are rendered.
// Use io.Discard to disable progress output.
func WithProgressOutput(w io.Writer) Option {
	return func(d *downloader) {
		d.progressOut = w
	}
}

// NewDownloader creates the default download use case on top of a Fetcher
func NewDownloader(fetcher interfaces.Fetcher, opts ...Option) interfaces.Downloader {
	d := &downloader{
		fetcher:     fetcher,
		chunkSize:   defaultChunkSize,
		progressOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Download downloads every file of the dataset spec into the target
// directory, strictly in spec order. The first failure aborts the rest.
func (d *downloader) Download(ctx context.Context, target model.DownloadTarget, spec *model.DatasetSpec) error {
	logger := ctxlog.From(ctx)

	if len(spec.URLs) != len(spec.Filenames) {
		return goerr.Wrap(types.ErrSpecMismatch, "invalid dataset spec",
			goerr.V("dataset", spec.Name),
			goerr.V("urls", len(spec.URLs)),
			goerr.V("filenames", len(spec.Filenames)),
		)
	}

	if err := fsutil.EnsureDir(target.Directory); err != nil {
		return err
	}

	if target.Clear {
		logger.Info("Clearing target directory", "directory", target.Directory)
		if err := fsutil.ClearDir(target.Directory); err != nil {
			return err
		}
	}

	logger.Info("Downloading dataset",
		"dataset", spec.Name,
		"files", len(spec.URLs),
		"directory", target.Directory,
	)

	for i := range spec.URLs {
		if err := d.downloadOne(ctx, target.Directory, spec, i); err != nil {
			return err
		}
	}

	return nil
}

// downloadOne fetches the i-th (url, filename) pair of the spec and writes
// it under dir. The file is streamed to a temporary name and renamed into
// place only on success, so a failed download leaves no final file behind.
func (d *downloader) downloadOne(ctx context.Context, dir string, spec *model.DatasetSpec, i int) error {
	logger := ctxlog.From(ctx)

	url := spec.URLs[i]
	name := spec.Filenames[i]

	if url == "" {
		if spec.URLPrefix == "" {
			return goerr.Wrap(types.ErrNeedURLPrefix, "cannot resolve download URL",
				goerr.V("dataset", spec.Name), goerr.V("filename", name))
		}
		if name == "" {
			return goerr.Wrap(types.ErrNoFilename, "URL prefix needs a filename to append",
				goerr.V("dataset", spec.Name), goerr.V("url_prefix", spec.URLPrefix))
		}
		url = spec.URLPrefix + name
	}

	result, err := d.fetcher.Fetch(ctx, url)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch dataset file",
			goerr.V("dataset", spec.Name), goerr.V("url", url))
	}
	defer func() {
		_ = result.Body.Close()
	}()

	if name == "" {
		name = result.SuggestedFilename
	}
	if name == "" {
		name, err = model.FilenameFromURL(url)
		if err != nil {
			return err
		}
	}

	// Security check: prevent path traversal attacks. Server-suggested
	// filenames must stay inside the target directory.
	if strings.ContainsAny(name, `/\`) || name == ".." {
		return goerr.Wrap(types.ErrUnsafeFilename, "refusing server-suggested filename",
			goerr.V("dataset", spec.Name), goerr.V("url", url), goerr.V("filename", name))
	}

	dest := filepath.Join(dir, name)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.part", name, uuid.NewString()[:8]))

	file, err := os.Create(tmp)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("path", tmp))
	}

	written, err := d.copyBody(ctx, file, result, name)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = goerr.Wrap(closeErr, "failed to close destination file", goerr.V("path", tmp))
	}
	if err != nil {
		_ = os.Remove(tmp)
		return goerr.Wrap(err, "failed to download file",
			goerr.V("dataset", spec.Name), goerr.V("url", url), goerr.V("filename", name))
	}

	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return goerr.Wrap(err, "failed to move file into place", goerr.V("path", dest))
	}

	logger.Info("Downloaded file",
		"dataset", spec.Name,
		"url", url,
		"path", dest,
		"bytes", written,
	)

	return nil
}

// copyBody streams the response body to w in fixed-size chunks, rendering a
// byte-count progress bar when the total length is known and a spinner when
// it is not. The context is checked between chunks.
func (d *downloader) copyBody(ctx context.Context, w io.Writer, result *model.FetchResult, name string) (int64, error) {
	bar := d.newProgressBar(result.ContentLength, name)
	defer func() {
		_ = bar.Finish()
	}()

	buf := make([]byte, d.chunkSize)
	var written int64

	for {
		select {
		case <-ctx.Done():
			return written, ctx.Err()
		default:
		}

		n, readErr := result.Body.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return written, err
			}
			written += int64(n)
			_ = bar.Add(n)
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}

func (d *downloader) newProgressBar(total int64, name string) *progressbar.ProgressBar {
	if total < 0 {
		total = -1 // spinner for unknown length
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(d.progressOut),
		progressbar.OptionSetDescription(name),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(false),
	)
}
