package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docforge-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/docforge-cli/internal/adapters/driven/docservice/memory"
	"github.com/custodia-labs/docforge-cli/internal/adapters/driven/gdocs"
	"github.com/custodia-labs/docforge-cli/internal/core/domain"
	"github.com/custodia-labs/docforge-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docforge-cli/internal/core/services"
	"github.com/custodia-labs/docforge-cli/internal/watcher"
)

var (
	convertTitle  string
	convertDryRun bool
	convertWatch  bool
	convertSample bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a markdown file into a styled Google Doc",
	Long: `Converts a markdown file into a new Google Doc and prints its URL.

Reads from the given file, or from stdin when the argument is "-".
Use --sample to convert the built-in sample meeting notes instead.

Text is inserted first, then headings, bullets, checkboxes, assignee
mentions and footer lines are styled in a second pass against the
document the service actually created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertTitle, "title", "t", "", "document title (defaults to the first # heading)")
	convertCmd.Flags().BoolVar(&convertDryRun, "dry-run", false, "convert against an in-memory document, no network")
	convertCmd.Flags().BoolVar(&convertWatch, "watch", false, "re-convert whenever the file changes")
	convertCmd.Flags().BoolVar(&convertSample, "sample", false, "convert the built-in sample meeting notes")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertSample && len(args) > 0 {
		return errors.New("--sample does not take a file argument")
	}
	if !convertSample && len(args) == 0 {
		return errors.New("a markdown file is required (use \"-\" for stdin, or --sample)")
	}
	if convertWatch && (convertSample || args[0] == "-") {
		return errors.New("--watch requires a file path")
	}

	ctx := context.Background()

	svc, err := resolveConverter(ctx)
	if err != nil {
		return err
	}

	if convertWatch {
		return watchAndConvert(ctx, cmd, svc, args[0])
	}

	markdown, err := readMarkdown(args)
	if err != nil {
		return err
	}

	return convertOnce(ctx, cmd, svc, markdown)
}

func convertOnce(ctx context.Context, cmd *cobra.Command, svc driving.ConverterService, markdown string) error {
	result, err := svc.Convert(ctx, markdown, domain.ConvertOptions{Title: convertTitle})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	cmd.Printf("Created document: %s\n", result.Title)
	cmd.Printf("  %d blocks, %d formatting operations\n", result.Blocks, result.FormattingOps)
	cmd.Printf("  %s\n", result.URL)
	return nil
}

func watchAndConvert(ctx context.Context, cmd *cobra.Command, svc driving.ConverterService, path string) error {
	w, err := watcher.New(path)
	if err != nil {
		return fmt.Errorf("watch setup failed: %w", err)
	}
	defer w.Close() //nolint:errcheck

	// Convert the current contents before waiting for changes.
	markdown, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := convertOnce(ctx, cmd, svc, string(markdown)); err != nil {
		return err
	}

	cmd.Printf("Watching %s (ctrl-c to stop)...\n", path)
	return w.Watch(ctx, func(ctx context.Context) error {
		markdown, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		return convertOnce(ctx, cmd, svc, string(markdown))
	})
}

// resolveConverter returns the injected converter when one is set,
// otherwise builds one for this invocation. Dry runs get the in-memory
// writer and never touch the network or credentials.
func resolveConverter(ctx context.Context) (driving.ConverterService, error) {
	if converterService != nil {
		return converterService, nil
	}

	if convertDryRun {
		return services.NewConverterService(memory.NewWriter()), nil
	}

	credentialsFile := ""
	rateLimit := gdocs.DefaultRateLimit
	if configStore != nil {
		credentialsFile = configStore.GetString("credentials_file")
		if rps := configStore.GetInt("rate_limit.requests_per_second"); rps > 0 {
			rateLimit.RequestsPerSecond = float64(rps)
		}
		if burst := configStore.GetInt("rate_limit.burst"); burst > 0 {
			rateLimit.BurstSize = burst
		}
	}

	provider, err := auth.NewDefaultProvider(ctx, credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	writer, err := gdocs.NewWriterWithRateLimit(ctx, auth.NewTokenSource(ctx, provider), rateLimit)
	if err != nil {
		return nil, fmt.Errorf("docs client setup failed: %w", err)
	}

	return services.NewConverterService(writer), nil
}

func readMarkdown(args []string) (string, error) {
	if convertSample {
		return sampleNotes, nil
	}
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
