package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newTypesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the known record types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, typ := range a.manager.Registry().Types() {
				fmt.Fprintln(cmd.OutOrStdout(), typ)
			}
			return nil
		},
	}
}

func newFieldsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <type>",
		Short: "Show the fields of a record type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.manager.Registry().Definition(args[0])
			if err != nil {
				return err
			}

			header := color.New(color.FgCyan, color.Bold)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			header.Fprintf(w, "TAG\tTYPE\tLEN\tFLAGS\n")
			for _, field := range def {
				var flags []string
				if field.Required {
					flags = append(flags, "required")
				}
				if field.ReadOnly {
					flags = append(flags, "read-only")
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", field.Tag, field.Type, field.Len, strings.Join(flags, ","))
			}
			return w.Flush()
		},
	}
}

func newDefinitionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "definition <type>",
		Short: "Print the definition of a record type, one field per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.manager.Registry().Definition(args[0])
			if err != nil {
				return err
			}
			for _, field := range def {
				fmt.Fprintln(cmd.OutOrStdout(), field.String())
			}
			return nil
		},
	}
}
