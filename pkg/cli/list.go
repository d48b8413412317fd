package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/dsfetch/pkg/domain/model"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
)

func cmdList() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List supported datasets",
		Action: func(ctx context.Context, c *cli.Command) error {
			nameColor := color.New(color.FgCyan, color.Bold)

			for _, def := range datasetDefs() {
				spec, err := model.Build(def.name, def.defaults)
				if err != nil {
					return err
				}

				suffix := ""
				switch def.name {
				case types.DatasetCaltech101Silhouettes:
					suffix = " (requires size: 16 or 28)"
				case types.DatasetSVHN:
					suffix = " (requires format: 1 or 2)"
				}

				fmt.Fprintf(os.Stdout, "%s\t%d file(s)%s\n",
					nameColor.Sprint(def.name.String()), len(spec.Filenames), suffix)
			}

			return nil
		},
	}
}
