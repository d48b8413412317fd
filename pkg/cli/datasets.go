package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/dsfetch/pkg/cli/config"
	"github.com/m-mizutani/dsfetch/pkg/domain/model"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/dsfetch/pkg/infra/fetch"
	"github.com/m-mizutani/dsfetch/pkg/usecase"
)

// datasetDef wires one dataset into the CLI: its name from the closed
// registry, its dataset-specific arguments, and how those arguments map to
// registry build options.
type datasetDef struct {
	name      types.Dataset
	usage     string
	arguments []cli.Argument
	options   func(c *cli.Command) model.BuildOptions

	// defaults are build options that must always yield a valid spec, used
	// where no user-supplied variant is available (e.g. the list command)
	defaults model.BuildOptions
}

func datasetDefs() []datasetDef {
	return []datasetDef{
		{
			name:  types.DatasetMNIST,
			usage: "Download the MNIST handwritten digits dataset",
		},
		{
			name:  types.DatasetBinarizedMNIST,
			usage: "Download the binarized MNIST dataset splits",
		},
		{
			name:  types.DatasetCaltech101Silhouettes,
			usage: "Download the Caltech101 silhouettes dataset",
			arguments: []cli.Argument{
				&cli.IntArg{
					Name:      "size",
					UsageText: "silhouette image size (16 or 28)",
				},
			},
			options: func(c *cli.Command) model.BuildOptions {
				return model.BuildOptions{Size: int(c.IntArg("size"))}
			},
			defaults: model.BuildOptions{Size: 16},
		},
		{
			name:  types.DatasetCIFAR10,
			usage: "Download the CIFAR-10 dataset",
		},
		{
			name:  types.DatasetCIFAR100,
			usage: "Download the CIFAR-100 dataset",
		},
		{
			name:  types.DatasetSVHN,
			usage: "Download the Street View House Numbers dataset",
			arguments: []cli.Argument{
				&cli.IntArg{
					Name:      "format",
					UsageText: "distribution format (1: full numbers, 2: cropped digits)",
				},
			},
			options: func(c *cli.Command) model.BuildOptions {
				return model.BuildOptions{Format: int(c.IntArg("format"))}
			},
			defaults: model.BuildOptions{Format: 1},
		},
	}
}

// datasetCommands builds one subcommand per registered dataset
func datasetCommands() []*cli.Command {
	defs := datasetDefs()
	commands := make([]*cli.Command, 0, len(defs))

	for _, def := range defs {
		var (
			downloadCfg config.Download
			httpCfg     config.HTTP
		)

		flags := append(downloadCfg.Flags(), httpCfg.Flags()...)

		commands = append(commands, &cli.Command{
			Name:      def.name.String(),
			Usage:     def.usage,
			Flags:     flags,
			Arguments: def.arguments,
			Action: func(ctx context.Context, c *cli.Command) error {
				var opts model.BuildOptions
				if def.options != nil {
					opts = def.options(c)
				}
				return runDownload(ctx, def.name, opts, &downloadCfg, &httpCfg)
			},
		})
	}

	return commands
}

// runDownload resolves the dataset spec, applies mirror overrides, and runs
// the download use case
func runDownload(ctx context.Context, name types.Dataset, opts model.BuildOptions, downloadCfg *config.Download, httpCfg *config.HTTP) error {
	logger := ctxlog.From(ctx)

	spec, err := model.Build(name, opts)
	if err != nil {
		return err
	}

	authToken := httpCfg.AuthToken
	if downloadCfg.Mirrors != "" {
		mirrors, err := config.LoadMirrors(downloadCfg.Mirrors)
		if err != nil {
			return err
		}
		if mirror, ok := mirrors.Lookup(name); ok && mirror.URLPrefix != "" {
			logger.Info("Using mirror for dataset",
				slog.String("dataset", name.String()),
				slog.String("url_prefix", mirror.URLPrefix),
			)
			spec = applyMirror(spec, mirror)
			if authToken == "" {
				authToken = mirror.Token
			}
		}
	}

	logger.Debug("HTTP client configured", slog.Any("config", httpCfg))

	client := fetch.New(
		fetch.WithUserAgent(httpCfg.UserAgent),
		fetch.WithAuthToken(authToken),
		fetch.WithTimeout(httpCfg.Timeout),
	)

	dl := usecase.NewDownloader(client,
		usecase.WithChunkSize(int(httpCfg.ChunkSize)),
	)

	target := model.DownloadTarget{
		Directory: downloadCfg.Directory,
		Clear:     downloadCfg.Clear,
	}

	return dl.Download(ctx, target, spec)
}

// applyMirror rewrites a spec so every file resolves through the mirror
// prefix. Explicit URLs are dropped; all entries become prefix + filename.
func applyMirror(spec *model.DatasetSpec, mirror config.Mirror) *model.DatasetSpec {
	return &model.DatasetSpec{
		Name:      spec.Name,
		URLs:      make([]string, len(spec.Filenames)),
		Filenames: spec.Filenames,
		URLPrefix: mirror.URLPrefix,
	}
}
