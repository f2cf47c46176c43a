package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/keydiff/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files <path>...",
		Short: "Compare the given JSON files",
		Long: "Compare the top-level keys of the given JSON files and list, for each file, " +
			"the keys present in another file but missing from it.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return zerr.With(zerr.Wrap(domain.ErrNotEnoughFiles, "no files given"), "files", 0)
			}

			opts, err := c.compareOptions(cmd)
			if err != nil {
				return err
			}
			opts.Files = args

			_, err = c.app.Compare(cmd.Context(), opts)
			return err
		},
	}
}
