package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"rest-explorer/internal/types"
)

func newGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List catalog groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGroups(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func runGroups(ctx context.Context, out io.Writer) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	groups, err := service.Groups(ctx)
	if err != nil {
		return err
	}
	for _, group := range groups {
		fmt.Fprintf(out, "%s\t%s\t%d items\n", group.UniqueID, group.Title, len(group.Items))
	}
	return nil
}

func newGroupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "group <id>",
		Short: "Show one group and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroup(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runGroup(ctx context.Context, out io.Writer, uniqueID string) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	group, ok, err := service.Group(ctx, uniqueID)
	if err != nil {
		return err
	}
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("group not found: " + uniqueID)
	}
	printGroup(out, group)
	return nil
}

func printGroup(out io.Writer, group types.Group) {
	fmt.Fprintf(out, "%s (%s)\n", group.Title, group.UniqueID)
	if group.Subtitle != "" {
		fmt.Fprintf(out, "  %s\n", group.Subtitle)
	}
	if group.MoreInfoText != "" {
		fmt.Fprintf(out, "  %s\n", group.MoreInfoText)
	}
	if group.MoreInfoURI != "" {
		fmt.Fprintf(out, "  more info: %s\n", group.MoreInfoURI)
	}
	for _, item := range group.Items {
		method := ""
		if item.Request != nil {
			method = string(item.Request.Method)
		}
		fmt.Fprintf(out, "- %s\t%s\t%s\n", item.UniqueID, method, item.Title)
	}
}
