package cli

import (
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"rest-explorer/internal/adapters"
	"rest-explorer/internal/app"
)

func newFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Read a JSON object from stdin and print it indented",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFormat(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runFormat does not load the catalog.
func runFormat(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read input").
			WithCause(err)
	}
	service := app.Service{JSONText: adapters.NewJSONTextAdapter()}
	obj, err := service.ParseObject(string(data))
	if err != nil {
		return err
	}
	text, err := service.FormatObject(obj)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)
	return nil
}
