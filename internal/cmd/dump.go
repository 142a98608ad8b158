package cmd

import (
	"eshop-fixtures/internal/render"
	"github.com/spf13/cobra"
)

func newDumpCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Build the fixture bundle and render it",
		Long: `Render the fixture bundle as indented JSON ("json") or as a full
object-graph dump including unexported fields ("dump").

Defaults to OUTPUT_FORMAT when --format is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.OutputFormat
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			return a.render(f)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(render.FormatJSON), "output format: json or dump")
	return cmd
}
