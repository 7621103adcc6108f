package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	specform "github.com/goliatone/go-specform"
	"github.com/goliatone/go-specform/pkg/forms"
	"github.com/goliatone/go-specform/pkg/openapi"
	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/render"
	"github.com/goliatone/go-specform/pkg/renderers/tui"
	"github.com/goliatone/go-specform/pkg/validation"
)

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <type> [file]",
		Short: "Parse form text into a record",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			rec, err := a.manager.ParseForm(args[0], string(data))
			if err != nil {
				return err
			}
			return a.writeRecord(cmd.OutOrStdout(), rec)
		},
	}
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <type> [file]",
		Short: "Check form text against its definition",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			rec, err := a.manager.ParseForm(args[0], string(data))
			if err != nil {
				return err
			}
			def, err := a.manager.Registry().Definition(args[0])
			if err != nil {
				return err
			}

			result := validation.Validate(def, rec)
			for _, issue := range result.Issues {
				fmt.Fprintln(cmd.OutOrStdout(), issue.String())
			}
			if !result.Valid {
				return fmt.Errorf("%s form has %d problem(s)", args[0], len(result.Issues))
			}
			a.logger.Debug("form is valid", zap.String("type", args[0]))
			return nil
		},
	}
}

func newFormatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format <type> [file]",
		Short: "Format a JSON or YAML record as form text",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			rec, err := decodeRecord(data)
			if err != nil {
				return err
			}
			text, err := a.manager.FormatForm(args[0], rec)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func newConvertCommand(a *app) *cobra.Command {
	var (
		command string
		era     string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a server response dictionary into a record",
		Long: `Convert a server response dictionary into a record.

The input is either key=value lines or a JSON array of [key, value] pairs.
With --command, a specdef carried by the response is cached for that command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, 0)
			if err != nil {
				return err
			}
			d, err := decodeDict(data)
			if err != nil {
				return err
			}

			var rec *record.Record
			switch era {
			case "", "auto":
				rec, err = a.manager.Output(command, d)
			default:
				var selected forms.Era
				selected, err = parseEra(era)
				if err == nil {
					rec, err = a.manager.Convert(d, selected)
				}
			}
			if err != nil {
				return err
			}
			return a.writeRecord(cmd.OutOrStdout(), rec)
		},
	}

	cmd.Flags().StringVar(&command, "command", "", "Command the response belongs to")
	cmd.Flags().StringVar(&era, "era", "auto", "Response era: auto, plain, formatted or legacy-text")
	return cmd
}

func parseEra(name string) (forms.Era, error) {
	for _, era := range []forms.Era{forms.EraPlain, forms.EraFormatted, forms.EraLegacyText} {
		if strings.EqualFold(era.String(), name) {
			return era, nil
		}
	}
	return 0, fmt.Errorf("unknown era %q", name)
}

func newSchemaCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [type...]",
		Short: "Export record types as an OpenAPI document",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openapi.Document(commandContext(cmd), a.manager.Registry(), args)
			if err != nil {
				return err
			}
			raw, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			if a.cfg.Output != "yaml" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return err
			}

			var generic any
			if err := json.Unmarshal(raw, &generic); err != nil {
				return err
			}
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(generic)
		},
	}
}

func newRenderCommand(a *app) *cobra.Command {
	var (
		rendererName string
		title        string
		fields       []string
	)

	cmd := &cobra.Command{
		Use:   "render <type> [file]",
		Short: "Render form text with a renderer",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			renderers, err := specform.NewRenderers()
			if err != nil {
				return err
			}
			out, err := specform.RenderText(commandContext(cmd), a.manager, renderers, rendererName, args[0], string(data), render.RenderOptions{
				Title:  title,
				Subset: render.FieldSubset{Tags: fields},
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "text", "Renderer: text, html, json or yaml")
	cmd.Flags().StringVar(&title, "title", "", "Form title")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Only render these fields")
	return cmd
}

func newEditCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "edit <type> [file]",
		Short: "Edit a form interactively",
		Long: `Edit a form interactively. The form text is read from file when given;
otherwise editing starts from an empty form. The result is printed as form
text, or JSON with --json.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := args[0]
			rec := record.New()
			if len(args) > 1 {
				data, err := readInput(cmd, args, 1)
				if err != nil {
					return err
				}
				if rec, err = a.manager.ParseForm(typ, string(data)); err != nil {
					return err
				}
			}

			format := tui.OutputFormatText
			if asJSON {
				format = tui.OutputFormatJSON
			}
			editor, err := tui.New(tui.WithPromptDriver(a.driver), tui.WithOutputFormat(format), tui.WithReview(true))
			if err != nil {
				return err
			}

			form, err := render.NewForm(a.manager.Registry(), typ, rec)
			if err != nil {
				return err
			}
			out, err := editor.Render(commandContext(cmd), form, render.RenderOptions{})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the edited record as JSON")
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
