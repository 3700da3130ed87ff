package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markdoc/internal/configloader"
	"github.com/yaklabco/markdoc/internal/ui/pretty"
	"github.com/yaklabco/markdoc/pkg/codeblock"
	"github.com/yaklabco/markdoc/pkg/config"
	"github.com/yaklabco/markdoc/pkg/fsutil"
	"github.com/yaklabco/markdoc/pkg/jsoncodec"
	"github.com/yaklabco/markdoc/pkg/mdnode"
	"github.com/yaklabco/markdoc/pkg/mdparse"
)

// fmtFlags holds the flags for the fmt command.
type fmtFlags struct {
	check      bool
	sortRefs   bool
	backup     bool
	detectLang bool
}

func newFmtCommand(global *globalFlags) *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Reformat Markdown files to their normalized form",
		Long: `Parse each file into a header tree and serialize it back with stable
formatting: setext headings for levels 1-2, atx for levels 3+, padded
tables, and canonicalized link references.

Examples:
  markdoc fmt doc.md             Reformat doc.md in place
  markdoc fmt --check docs/*.md  Report files that are not normalized`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, global, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.check, "check", false, "report files that would change, without writing them")
	cmd.Flags().BoolVar(&flags.sortRefs, "sort-refs", mdparse.DefaultOptions().SortLinkRefs, "sort link references alphabetically within each header (use --sort-refs=false to keep source order)")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "write a .markdoc.bak sidecar before overwriting a changed file")
	cmd.Flags().BoolVar(&flags.detectLang, "detect-lang", false, "guess a fence language for code blocks that have none")

	return cmd
}

func runFmt(cmd *cobra.Command, paths []string, global *globalFlags, flags *fmtFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{ExplicitPath: global.configPath})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	anyChanged := false
	for _, path := range paths {
		changed, err := formatOne(ctx, path, loaded.Config, flags)
		if err != nil {
			return fmt.Errorf("format %s: %w", path, err)
		}
		if changed {
			anyChanged = true
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatFmtResult(path, changed, flags.check))
	}

	if flags.check && anyChanged {
		return ErrCheckFailed
	}
	return nil
}

// formatOne parses path, re-serializes it per cfg, and reports whether the
// serialized form differs from what's on disk. In check mode the file is
// never written.
func formatOne(ctx context.Context, path string, cfg config.FormatCfg, flags *fmtFlags) (bool, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return false, err
	}

	tree := mdparse.Parse(string(content), mdparse.Options{SortLinkRefs: flags.sortRefs})
	if flags.detectLang {
		tree = tree.ReplaceRecursively(func(n mdnode.Node) (mdnode.Node, bool) {
			if n.Kind != mdnode.KindCode || n.Language != "" {
				return mdnode.Node{}, false
			}
			return n.WithDetectedLanguage(), true
		})
	}
	processor := codeblock.Processor{Codec: jsoncodec.New(), Minify: cfg.Minify}
	rebuilt := mdnode.Build(tree, mdnode.WithFormatCfg(&cfg), mdnode.WithCodeProcessor(processor))

	if rebuilt == string(content) {
		return false, nil
	}
	if flags.check {
		return true, nil
	}

	if cfg.Backup || flags.backup {
		backupCfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
		if _, err := fsutil.CreateBackup(ctx, path, backupCfg); err != nil {
			return false, fmt.Errorf("create backup: %w", err)
		}
	}

	changed, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(rebuilt), info.Mode)
	if err != nil {
		return false, err
	}
	return changed, nil
}
