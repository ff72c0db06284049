package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tympanix/dirkit/internal/archive"
	"github.com/tympanix/dirkit/internal/checksum"
	"github.com/tympanix/dirkit/internal/config"
	"github.com/tympanix/dirkit/internal/dirscan"
	"github.com/tympanix/dirkit/internal/fileops"
	"github.com/tympanix/dirkit/internal/location"
	"github.com/tympanix/dirkit/internal/output"
	"github.com/tympanix/dirkit/internal/progress"
	"github.com/tympanix/dirkit/internal/util"
)

var version = "dev"

func iterOptions(cfg *config.Config) []dirscan.Option {
	if cfg.CaseSensitive != nil && *cfg.CaseSensitive {
		return []dirscan.Option{dirscan.CaseSensitive()}
	}
	return nil
}

func main() {
	cfg := config.Load()
	var logger util.Logger
	var quietMode bool
	var verboseMode bool

	var rootCmd = &cobra.Command{
		Use:   "dirkit",
		Short: "Directory listing and file operations toolkit",
		Long:  "Directory listing and file operations toolkit\n\nExit codes:\n  0 - Success\n  1 - General error",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			quietMode, _ = cmd.Flags().GetBool("quiet")
			verboseMode, _ = cmd.Flags().GetBool("verbose")
			if quietMode {
				logger = util.NewLogger(io.Discard, false)
			} else {
				logger = util.NewLogger(os.Stdout, verboseMode)
			}
		},
	}

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	var listGlob string
	var listLong bool
	var listCmd = &cobra.Command{
		Use:   "list <dir>",
		Short: "List directory entries matching a wildcard",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			glob := listGlob
			if glob == "" {
				glob = cfg.Glob
			}
			if err := runList(args[0], glob, listLong, cfg, logger, quietMode); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	listCmd.Flags().StringVarP(&listGlob, "glob", "g", "", "Wildcard pattern(s) to filter entries (e.g., '*.txt', '*.txt,*.md', '*,!*.bak')")
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Show type, size and modification time per entry")

	var copyVerify string
	var copyCmd = &cobra.Command{
		Use:   "copy <src> <dest>",
		Short: "Copy a file atomically",
		Long:  "Copy a file atomically\n\nOn failure no destination file is left behind.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCopy(args[0], args[1], copyVerify, logger, quietMode, false); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	copyCmd.Flags().StringVarP(&copyVerify, "checksum", "c", "", "Verify the copy with a checksum (sha1, sha256, sha512, md5)")

	var moveCmd = &cobra.Command{
		Use:   "move <src> <dest>",
		Short: "Move a file, falling back to copy+delete across volumes",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCopy(args[0], args[1], "", logger, quietMode, true); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	var trashCmd = &cobra.Command{
		Use:   "trash <path>",
		Short: "Move a file or directory to the platform trash",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ok, err := fileops.MoveToTrash(args[0], cfg.TrashDir)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if ok {
				logger.VerbosePrintf("Trashed %s\n", args[0])
			}
		},
	}

	var locateCmd = &cobra.Command{
		Use:   "locate <type>",
		Short: "Print a well-known location path",
		Long:  "Print a well-known location path\n\nTypes: home, documents, music, movies, desktop, app-data-user,\napp-data-common, global-apps, temp, invoked-executable,\ncurrent-executable, current-application, host-application",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			t, err := location.Parse(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			p, err := location.Resolve(t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println(p.String())
		},
	}

	var archiveGlob string
	var archiveFormat string
	var archiveCmd = &cobra.Command{
		Use:   "archive <dir> <dest>",
		Short: "Export a directory tree as a compressed tarball",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			glob := archiveGlob
			if glob == "" {
				glob = cfg.Glob
			}
			if err := runArchive(args[0], args[1], glob, archiveFormat, logger, quietMode); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	archiveCmd.Flags().StringVarP(&archiveGlob, "glob", "g", "", "Wildcard pattern to filter file names")
	archiveCmd.Flags().StringVar(&archiveFormat, "format", "", "Compression format: gzip (default) or zstd")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(listCmd, copyCmd, moveCmd, trashCmd, locateCmd, archiveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runList(dir, glob string, long bool, cfg *config.Config, logger util.Logger, quiet bool) error {
	caseFold := cfg.CaseSensitive == nil || !*cfg.CaseSensitive

	// The iterator sees every name; the multi-pattern filter is applied here
	// so negations work across the whole set.
	it, err := dirscan.NewIterator(dir, "*", iterOptions(cfg)...)
	if err != nil {
		return err
	}
	defer it.Close()

	np := util.ParseNamePattern(glob, caseFold)
	tracker := output.NewTracker("listed", logger, quiet)
	for it.Next() {
		e := it.Entry()
		ok, err := np.Match(e.Name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if e.Size != nil {
			tracker.Record(*e.Size)
		} else {
			tracker.Record(0)
		}
		if !quiet {
			output.PrintEntry(logger, e, long)
		}
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("listing ended early: %w", err)
	}
	tracker.PrintSummary()
	return nil
}

func runCopy(src, dst, verify string, logger util.Logger, quiet, move bool) error {
	var opts []fileops.Option
	var bar *progress.Bar
	if info, err := os.Stat(src); err == nil {
		show := util.IsATTY() && !quiet
		verb := "Copying"
		if move {
			verb = "Moving"
		}
		bar = progress.NewBar(info.Size(), fmt.Sprintf("%s %s", verb, src), show)
		opts = append(opts, fileops.WithProgress(bar))
	}

	var err error
	if move {
		err = fileops.Move(src, dst, opts...)
	} else {
		err = fileops.Copy(src, dst, opts...)
	}
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if verify != "" && !move {
		same, err := checksum.Equal(src, dst, verify)
		if err != nil {
			return fmt.Errorf("checksum verification: %w", err)
		}
		if !same {
			return fmt.Errorf("checksum verification: %s digests differ", verify)
		}
		logger.VerbosePrintf("Checksum %s verified\n", verify)
	}
	return nil
}

func runArchive(dir, dst, glob, formatName string, logger util.Logger, quiet bool) error {
	format := archive.DetectFormat(dst)
	if formatName != "" {
		var err error
		format, err = archive.ParseFormat(formatName)
		if err != nil {
			return err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	wildcard := glob
	if wildcard == "" {
		wildcard = "*"
	}

	if err := archive.Create(dir, out, wildcard, format); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	logger.VerbosePrintf("Archived %s to %s (%s)\n", dir, dst, format)
	return nil
}
