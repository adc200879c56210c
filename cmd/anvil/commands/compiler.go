package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCompilerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compiler",
		Short: "Print the C++ compiler the build uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			compiler, err := c.app.Compiler(cmd.Context(), c.settings)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if compiler.Version == "" {
				_, _ = fmt.Fprintf(out, "%s (%s)\n", compiler.Path, compiler.Family)
				return nil
			}
			_, _ = fmt.Fprintf(out, "%s (%s %s)\n", compiler.Path, compiler.Family, compiler.Version)
			return nil
		},
	}
}
