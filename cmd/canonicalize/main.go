// Command canonicalize runs the offline source-preparation pass: it dedupes
// a content source by title and assigns stable identifiers, writing the
// result back over the file. Unreadable or malformed input is fatal here —
// this is an administrative operation, not a serving path.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"contenthub/internal/canonical"
	"contenthub/internal/source"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "canonicalize <source.json> [more.json...]",
		Short: "Dedupe a content source and assign stable identifiers",
		Long: "Canonicalize collapses records with duplicate titles (first occurrence wins)\n" +
			"and gives every record lacking an identifier a content-derived one, then\n" +
			"replaces the file contents with the cleaned collection.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := canonicalizeFile(cmd, path, dryRun); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	return cmd
}

func canonicalizeFile(cmd *cobra.Command, path string, dryRun bool) error {
	records, err := source.ReadRecords(path)
	if err != nil {
		return err
	}

	cleaned := canonical.Canonicalize(records)

	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records, %d after canonicalization (not written)\n",
			path, len(records), len(cleaned))
		return nil
	}

	if err := source.WriteRecords(path, cleaned); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records, %d kept\n", path, len(records), len(cleaned))
	return nil
}
