package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markdoc/internal/ui/pretty"
	"github.com/yaklabco/markdoc/pkg/fsutil"
	"github.com/yaklabco/markdoc/pkg/markdql"
	"github.com/yaklabco/markdoc/pkg/mdparse"
)

// queryFlags holds the flags for the query command.
type queryFlags struct {
	sortRefs bool
	summary  bool
}

func newQueryCommand(_ *globalFlags) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "query <expr> <file>",
		Short: "Evaluate a MarkdQL path expression against a Markdown file",
		Long: `Parse a Markdown file into a header tree and evaluate a MarkdQL path
expression against it, printing each matching node.

Examples:
  markdoc query "Tasks.To Do[*]" doc.md     All children of Tasks > To Do
  markdoc query "..Bugs[-1]" doc.md         The last sibling of the first Bugs header at any depth
  markdoc query "..|Tasks[Status,R2]" doc.md  A single table cell by name`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.sortRefs, "sort-refs", mdparse.DefaultOptions().SortLinkRefs, "sort link references alphabetically within each header before querying (use --sort-refs=false to keep source order)")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print only the trailing match-count line")

	return cmd
}

func runQuery(cmd *cobra.Command, expr, path string, flags *queryFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))

	root := mdparse.Parse(string(content), mdparse.Options{SortLinkRefs: flags.sortRefs})

	matches, err := markdql.Query(expr, root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !flags.summary {
		fmt.Fprint(out, styles.FormatMatches(matches))
	}
	fmt.Fprint(out, styles.FormatQuerySummary(len(matches)))

	return nil
}
