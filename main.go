package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SOV710/gitlsf/internal/counter"
)

var (
	// Output mode
	verboseOutput bool
	quietOutput   bool
	summaryOutput bool

	// Output
	outputFormat    string
	outputFile      string
	pdfOutputFile   string
	copyToClipboard bool
	showTree        bool
	byLanguage      bool

	// Selection
	interactiveMode bool

	cfgFile string

	// configUsed and configErr are recorded by initConfig and logged once the
	// logger exists.
	configUsed string
	configErr  error
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "gitlsf [PATH]",
	Short: "gitlsf counts lines of source code in the files tracked by Git.",
	Long: `gitlsf lists the files tracked in a Git repository, skips binary,
configuration and documentation files, and counts newline-delimited lines
in the rest. PATH may be a local directory or a Git URL to clone.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(viper.GetString("log_level"))
		slog.SetDefault(logger)
		if configUsed != "" {
			logger.Debug("using config file", "path", configUsed)
		}
		if configErr != nil {
			logger.Warn("error reading config file", "error", configErr)
		}

		opts, err := loadRunOptions(args)
		if err != nil {
			return err
		}

		summary, err := countRepository(opts, logger)
		if err != nil {
			if errors.Is(err, errSelectionAborted) {
				fmt.Fprintln(os.Stderr, "Interactive selection aborted.")
				return nil
			}
			return err
		}

		return writeOutput(summary, opts)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gitlsf/config.toml)")

	// Output mode
	rootCmd.Flags().BoolVarP(&verboseOutput, "verbose", "v", false, "Show line counts per file and the total (default)")
	rootCmd.Flags().BoolVarP(&quietOutput, "quiet", "q", false, "Show only the total line count")
	rootCmd.Flags().BoolVarP(&summaryOutput, "summary", "s", false, "Show file and line totals")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet", "summary")

	// Output
	rootCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format: text, json or yaml")
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save output to specified file")
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Save a PDF report to specified file")
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy output to clipboard")
	rootCmd.Flags().BoolVar(&showTree, "tree", false, "Show a directory tree with line totals")
	rootCmd.Flags().BoolVar(&byLanguage, "by-language", false, "Show line totals per language")

	// Filtering
	rootCmd.Flags().StringSlice("exclude-ext", nil, "Additional extensions to exclude (comma-separated, e.g. sql,txt; also GITLSF_EXCLUDE_EXTENSIONS)")
	viper.BindPFlag("exclude_extensions", rootCmd.Flags().Lookup("exclude-ext"))
	rootCmd.Flags().StringSlice("exclude-name", nil, "Additional file names to exclude (comma-separated; also GITLSF_EXCLUDE_FILENAMES)")
	viper.BindPFlag("exclude_filenames", rootCmd.Flags().Lookup("exclude-name"))
	rootCmd.Flags().String("ignore-file", "", "Gitignore-style file of paths to skip (default "+defaultIgnoreFile+")")
	viper.BindPFlag("ignore_file", rootCmd.Flags().Lookup("ignore-file"))
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the files to count with a fuzzy finder")

	// Processing
	rootCmd.Flags().IntP("threads", "t", 0, "Number of workers for large files (0 for auto)")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))
	rootCmd.Flags().Bool("sequential", false, "Count files one at a time in input order")
	viper.BindPFlag("sequential", rootCmd.Flags().Lookup("sequential"))
	rootCmd.Flags().Int64("mmap-threshold", counter.DefaultMmapThreshold, "File size in bytes above which files are memory-mapped")
	viper.BindPFlag("mmap_threshold", rootCmd.Flags().Lookup("mmap-threshold"))
	rootCmd.Flags().Int64("parallel-threshold", counter.DefaultParallelThreshold, "File size in bytes from which files are counted in parallel")
	viper.BindPFlag("parallel_threshold", rootCmd.Flags().Lookup("parallel-threshold"))
	rootCmd.Flags().Int("buffer-size", counter.DefaultBufferSize, "Read buffer size in bytes")
	viper.BindPFlag("buffer_size", rootCmd.Flags().Lookup("buffer-size"))

	// Logging
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("format", "text")
	viper.SetDefault("threads", 0)
	viper.SetDefault("sequential", false)
	viper.SetDefault("mmap_threshold", counter.DefaultMmapThreshold)
	viper.SetDefault("parallel_threshold", counter.DefaultParallelThreshold)
	viper.SetDefault("buffer_size", counter.DefaultBufferSize)
	viper.SetDefault("exclude_extensions", []string{})
	viper.SetDefault("exclude_filenames", []string{})
	viper.SetDefault("ignore_file", "")
	viper.SetDefault("log_level", "warn")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gitlsf"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("GITLSF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match GITLSF_*

	if err := viper.ReadInConfig(); err == nil {
		configUsed = viper.ConfigFileUsed()
	} else {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = err
		}
	}
}

// loadRunOptions merges flags, config file and environment into runOptions.
func loadRunOptions(args []string) (runOptions, error) {
	opts := runOptions{
		Path:        ".",
		Mode:        modeVerbose,
		Format:      viper.GetString("format"),
		Tree:        showTree,
		ByLanguage:  byLanguage,
		PDFFile:     pdfOutputFile,
		Clipboard:   copyToClipboard,
		Interactive: interactiveMode,
		Sequential:  viper.GetBool("sequential"),

		ExcludeExtensions: splitList(viper.GetStringSlice("exclude_extensions")),
		ExcludeFilenames:  splitList(viper.GetStringSlice("exclude_filenames")),
		IgnoreFile:        viper.GetString("ignore_file"),

		Counter: counter.Options{
			MmapThreshold:     viper.GetInt64("mmap_threshold"),
			ParallelThreshold: viper.GetInt64("parallel_threshold"),
			BufferSize:        viper.GetInt("buffer_size"),
			Workers:           viper.GetInt("threads"),
		},
	}
	if len(args) > 0 {
		opts.Path = args[0]
	}

	switch {
	case quietOutput:
		opts.Mode = modeQuiet
	case summaryOutput:
		opts.Mode = modeSummary
	}

	switch strings.ToLower(opts.Format) {
	case "text", "json", "yaml":
	default:
		return opts, fmt.Errorf("unsupported output format: %s. Use 'text', 'json' or 'yaml'", opts.Format)
	}
	return opts, nil
}

// splitList splits every value on commas. Flags already arrive split, but
// values from GITLSF_* variables are only split on whitespace.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// writeOutput sends the rendered summary to the PDF, file, clipboard or stdout.
func writeOutput(summary counter.CountSummary, opts runOptions) error {
	if opts.PDFFile != "" {
		if err := generatePDF(summary, "gitlsf: "+opts.Path, opts.ByLanguage, opts.PDFFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "PDF report saved to %s\n", opts.PDFFile)
		return nil
	}

	out, err := renderReport(summary, opts)
	if err != nil {
		return err
	}

	switch {
	case outputFile != "":
		if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		fmt.Fprintf(os.Stderr, "Output saved to %s\n", outputFile)
	case opts.Clipboard:
		if err := clipboard.WriteAll(out); err != nil {
			slog.Warn("error writing to clipboard", "error", err)
			fmt.Print(out)
			return nil
		}
		fmt.Fprintln(os.Stderr, "Output copied to clipboard.")
	default:
		fmt.Print(out)
	}
	return nil
}

// newLogger returns a text logger on stderr at the named level, falling back to warn.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
