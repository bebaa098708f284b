// Package cli wires the command-line surface: flag parsing, dispatch to the
// search client, and terminal rendering.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/oscli/internal/config"
	"github.com/dmitrymomot/oscli/internal/logger"
	"github.com/dmitrymomot/oscli/internal/search"
)

const defaultLimit = 10

// NewRootCmd creates the os-cli root command.
func NewRootCmd() *cobra.Command {
	var (
		listIndices   bool
		limit         int
		showEmbedding bool
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "os-cli [index]",
		Short: "Inspect an OpenSearch cluster without the dashboard",
		Long: `os-cli inspects a running OpenSearch cluster from the terminal: list all
indices with document counts and sizes, or preview documents from a named
index. Embedding vectors are hidden by default to keep previews readable.

Connection settings come from environment variables (OPENSEARCH_URL as a
JSON object or bare URL, or OPENSEARCH_HOST/OPENSEARCH_PORT), optionally
supplied by a .env file in the working directory.`,
		Example: `  os-cli --list
  os-cli orders --limit 20
  os-cli orders --show-embedding`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listIndices && len(args) > 0 {
				return errors.New("an index name cannot be combined with --list")
			}
			if !listIndices && len(args) == 0 {
				return cmd.Help()
			}
			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1, got %d", limit)
			}

			logOpts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
			if verbose {
				logOpts = append(logOpts, logger.WithVerbose())
			}
			log := logger.New(logOpts...)

			conn, err := config.Resolve()
			if err != nil {
				return err
			}
			log.Debug("resolved connection",
				slog.String("endpoint", conn.Endpoint),
				slog.Bool("insecure_tls", conn.InsecureSkipTLS),
			)

			client, err := search.New(search.Config{
				Addresses:       []string{conn.Endpoint},
				Username:        conn.Username,
				Password:        conn.Password,
				InsecureSkipTLS: conn.InsecureSkipTLS,
			}, search.WithLogger(log))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if listIndices {
				indices, err := client.ListIndices(ctx)
				if err != nil {
					return err
				}
				renderIndexTable(out, indices)
				return nil
			}

			sample, err := client.SampleDocuments(ctx, args[0], limit, showEmbedding)
			if err != nil {
				if errors.Is(err, search.ErrIndexNotFound) {
					return fmt.Errorf("%w (use --list to see available indices)", err)
				}
				return err
			}
			renderSample(out, sample, showEmbedding)
			return nil
		},
	}

	cmd.Flags().BoolVar(&listIndices, "list", false, "List all indices")
	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "Number of documents to preview")
	cmd.Flags().BoolVar(&showEmbedding, "show-embedding", false, "Include embedding vectors in previews")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
