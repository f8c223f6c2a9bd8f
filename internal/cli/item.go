package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"rest-explorer/internal/app"
	"rest-explorer/internal/types"
)

func newItemCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "item <id>",
		Short: "Show one item and its request template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItem(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runItem(ctx context.Context, out io.Writer, uniqueID string) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	item, ok, err := service.Item(ctx, uniqueID)
	if err != nil {
		return err
	}
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("item not found: " + uniqueID)
	}
	return printItem(out, service, item)
}

func printItem(out io.Writer, service app.Service, item types.Item) error {
	fmt.Fprintf(out, "%s (%s)\n", item.Title, item.UniqueID)
	if item.Subtitle != "" {
		fmt.Fprintf(out, "  %s\n", item.Subtitle)
	}
	if item.Request == nil {
		return nil
	}
	headers, err := service.FormatObject(item.Request.Headers)
	if err != nil {
		return err
	}
	body, err := service.FormatObject(item.Request.Body)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "method: %s\n", item.Request.Method)
	fmt.Fprintf(out, "url: %s\n", item.Request.APIURL)
	fmt.Fprintf(out, "headers:\n%s\n", headers)
	fmt.Fprintf(out, "body:\n%s\n", body)
	return nil
}
