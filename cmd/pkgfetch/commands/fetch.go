package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgfetch/internal/core/domain"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [flags] PACKAGE...",
		Short: "Download packages to a local directory",
		Long: "Download PACKAGEs from repositories to a local directory from " +
			"which a local mirror repository can be created.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			recursive, _ := cmd.Flags().GetBool("recursive")
			stdout, _ := cmd.Flags().GetBool("stdout")
			link, _ := cmd.Flags().GetBool("link")
			output, _ := cmd.Flags().GetString("output")

			return c.app.Fetch(cmd.Context(), args, domain.FetchOptions{
				Recursive: recursive,
				Stdout:    stdout,
				Link:      link,
				OutputDir: output,
				Simulate:  c.global.simulate,
				Verbosity: c.global.verbosity(),
				Database:  c.global.databaseOptions(),
			})
		},
	}
	cmd.Flags().BoolP("recursive", "R", false, "Fetch the PACKAGE and all its dependencies")
	cmd.Flags().BoolP("stdout", "s", false, "Dump the .apk to stdout instead of writing files")
	cmd.Flags().BoolP("link", "L", false, "Create hard links if possible")
	cmd.Flags().StringP("output", "o", domain.DefaultOutputDir, "Directory to place the PACKAGEs in")
	return cmd
}
