package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rest-explorer/internal/app"
)

type exportOptions struct {
	Dir            string
	IncludeSecrets bool
}

func newExportCommand() *cobra.Command {
	opts := exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every catalog item as a YAML saved request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), cmd, cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", "requests", "Export directory")
	cmd.Flags().BoolVar(&opts.IncludeSecrets, "include-secrets", false, "Keep Authorization values instead of redacting them")
	_ = viper.BindPFlag("export_dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("export_include_secrets", cmd.Flags().Lookup("include-secrets"))
	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, out io.Writer, opts exportOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Export(ctx, app.ExportRequest{
		Dir:            resolveString(cmd, opts.Dir, "export_dir", "dir"),
		IncludeSecrets: resolveBool(cmd, opts.IncludeSecrets, "export_include_secrets", "include-secrets"),
	})
	if err != nil {
		return err
	}
	for _, path := range result.Files {
		fmt.Fprintln(out, path)
	}
	return nil
}
