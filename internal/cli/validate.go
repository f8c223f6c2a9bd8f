package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rest-explorer/internal/app"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the catalog and report what it contains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func runValidate(ctx context.Context, out io.Writer) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Validate(ctx, app.ValidateRequest{})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "validated: %s (%d groups, %d items)\n", result.Source, result.Groups, result.Items)
	return nil
}
