package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/cmskit/pkg/logger"
	"github.com/dmitrymomot/cmskit/pkg/pathutil"
	"github.com/dmitrymomot/cmskit/pkg/projectconfig"
)

func newConfigMapCmd(a *app) *cobra.Command {
	var sub string

	cmd := &cobra.Command{
		Use:   "configmap <dir>",
		Short: "Print the UID map of a project config directory as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sub == "" {
				sub = "."
			}

			l := a.logger.With(logger.Component("configmap"))
			cm, err := projectconfig.BuildConfigMapFromFS(cmd.Context(), os.DirFS(args[0]), sub,
				projectconfig.WithLogger(l),
			)
			if err != nil {
				return err
			}
			l.InfoContext(cmd.Context(), "config map built",
				logger.Path(args[0]),
				slog.Int("nodes", len(cm.Nodes)),
				slog.Int("uids", len(cm.Map)),
			)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(cm)
		},
	}
	cmd.Flags().StringVar(&sub, "root", ".", "subdirectory holding the config documents")
	return cmd
}

func newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <file>",
		Short: "List dependsOn references of a YAML document in document order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("%w %q: %w", projectconfig.ErrReadDocument, args[0], err)
			}
			var node yaml.Node
			if err := yaml.Unmarshal(data, &node); err != nil {
				return fmt.Errorf("%w %q: %w", projectconfig.ErrParseDocument, args[0], err)
			}
			for _, dep := range projectconfig.ExtractDependenciesNode(&node) {
				fmt.Fprintln(cmd.OutOrStdout(), dep)
			}
			return nil
		},
	}
}

func newContainedCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "contained <path>...",
		Short: "Check that paths stay inside their root",
		Long: `Checks each path lexically and prints "ok" or "escapes" next to it.
With --root the joined path is printed for contained inputs.
Exits with an error when any path escapes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var escaped []string
			for _, p := range args {
				if root == "" {
					if pathutil.IsContained(p) {
						fmt.Fprintf(out, "ok\t%s\n", p)
						continue
					}
					fmt.Fprintf(out, "escapes\t%s\n", p)
					escaped = append(escaped, p)
					continue
				}

				joined, err := pathutil.SecureJoin(root, p)
				if err != nil {
					fmt.Fprintf(out, "escapes\t%s\n", p)
					escaped = append(escaped, p)
					continue
				}
				fmt.Fprintf(out, "ok\t%s\t%s\n", p, joined)
			}
			if len(escaped) > 0 {
				return fmt.Errorf("%w: %s", pathutil.ErrPathNotContained, strings.Join(escaped, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "join contained paths onto this directory")
	return cmd
}

var errSchemaIncompatible = errors.New("stored schema is newer than installed schema")

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <stored> <installed>",
		Short: "Check that a stored project schema version can be applied",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := projectconfig.SchemaCompatible(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s > %s", errSchemaIncompatible, args[0], args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "compatible")
			return nil
		},
	}
}
