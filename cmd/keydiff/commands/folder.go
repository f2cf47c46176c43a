package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/keydiff/internal/core/domain"
)

func (c *CLI) newFolderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder <searchPath>",
		Short: "Compare the JSON files found in a folder",
		Long: "Compare every regular file directly inside searchPath whose name matches " +
			"the search pattern. Subdirectories are not descended into.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.compareOptions(cmd)
			if err != nil {
				return err
			}
			opts.SearchPath = args[0]
			opts.SearchPattern = c.cfg.GetString(flagSearchPattern)

			_, err = c.app.Compare(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().StringP(flagSearchPattern, "p", domain.DefaultSearchPattern, "Regular expression file names must match")
	return cmd
}
