package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/microsaas/console/internal/shell"
)

func newLayoutCmd() *cobra.Command {
	var (
		active    string
		collapsed bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the rendered layout for a state",
		Example: `  microsaas layout
  microsaas layout --active DataSources --collapsed --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := shell.ParseNavID(active)
			if err != nil {
				return fmt.Errorf("--active: %w", err)
			}
			layout := shell.Render(shell.Navigation(), shell.State{Active: id, Collapsed: collapsed})

			var out []byte
			switch format {
			case "yaml":
				out, err = yaml.Marshal(layout)
			case "json":
				out, err = json.MarshalIndent(layout, "", "  ")
				out = append(out, '\n')
			default:
				return fmt.Errorf("--format must be yaml or json, got %q", format)
			}
			if err != nil {
				return fmt.Errorf("encoding layout: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&active, "active", shell.Dashboard.String(), "selected navigation entry")
	cmd.Flags().BoolVar(&collapsed, "collapsed", false, "render the collapsed sidebar")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}
