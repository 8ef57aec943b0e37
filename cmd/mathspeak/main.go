// Package main provides the mathspeak CLI application entry point.
// mathspeak converts mathematical notation into natural-language text
// suitable for speech synthesis.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mathspeak/internal/engine"
	"mathspeak/internal/logger"
	"mathspeak/internal/rules"
	"mathspeak/internal/tracker"
	"mathspeak/pkg/mathtypes"
)

var (
	logLevel    string
	logFile     string
	testMode    bool
	audience    string
	showUnknown bool
	counterFile string
	version     = "0.1.0" // This could be set at build time
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mathspeak",
	Short: "mathspeak - math notation to speakable text",
	Long: `mathspeak rewrites mathematical notation (escape-sequence commands, braces,
sub/superscripts, fractions, operators) into natural-language text suitable
for speech synthesis.`,
}

// speakCmd processes a single expression given on the command line
var speakCmd = &cobra.Command{
	Use:   "speak <expression>",
	Short: "Convert one expression to speakable text",
	Args:  cobra.ExactArgs(1),
	Run:   runSpeak,
}

// batchCmd processes a file of expressions, one per line
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Convert a file of expressions, one per line",
	Long: `Read expressions one per line from a file and print the speakable form of
each. Useful for regression corpora and bulk conversion.`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

// handlersCmd documents the domain handler precedence
var handlersCmd = &cobra.Command{
	Use:   "handlers",
	Short: "Show the domain handler precedence and rule counts",
	Run:   runHandlers,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("mathspeak v%s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// A .env next to the binary may supply MATHSPEAK_* variables
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	rootCmd.PersistentFlags().StringVar(&audience, "audience", "undergraduate",
		"Audience level (elementary|middle_school|high_school|undergraduate|graduate|research)")
	rootCmd.PersistentFlags().BoolVar(&showUnknown, "show-unknown", false, "List unknown commands after the output")
	rootCmd.PersistentFlags().StringVar(&counterFile, "counter-file", "", "Persist unknown-command counters to this YAML file")

	for _, flag := range []string{"log-level", "log-file", "test-mode", "audience"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(handlersCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func newEngine() *engine.Engine {
	cfg := engine.DefaultConfig()
	if counterFile != "" {
		cfg.Tracker = tracker.New(counterFile)
	}
	return engine.New(cfg)
}

// styled wraps text in the given style only when the terminal supports color.
func styled(style lipgloss.Style, text string) string {
	if testMode || termenv.EnvColorProfile() == termenv.Ascii {
		return text
	}
	return style.Render(text)
}

var (
	outputStyle  = lipgloss.NewStyle().Bold(true)
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func runSpeak(_ *cobra.Command, args []string) {
	eng := newEngine()
	result := eng.Process(args[0], mathtypes.ParseAudienceLevel(audience))

	fmt.Println(styled(outputStyle, result.Processed))
	printUnknown(&result)
}

func runBatch(_ *cobra.Command, args []string) {
	file, err := os.Open(args[0])
	if err != nil {
		logger.Fatal("Failed to open batch file", "path", args[0], "error", err)
	}
	defer func() { _ = file.Close() }()

	eng := newEngine()
	level := mathtypes.ParseAudienceLevel(audience)

	processed := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result := eng.Process(line, level)
		fmt.Println(result.Processed)
		printUnknown(&result)
		processed++
	}
	if err := scanner.Err(); err != nil {
		logger.Error("Batch read failed", "path", args[0], "error", err)
	}

	stats := eng.CacheStats()
	fmt.Fprintln(os.Stderr, styled(summaryStyle,
		fmt.Sprintf("processed %d expressions (cache: %d entries, %d hits, %d misses)",
			processed, stats.Entries, stats.Hits, stats.Misses)))
}

func printUnknown(result *mathtypes.ProcessedExpression) {
	if !showUnknown || !result.HasUnknownCommands() {
		return
	}
	fmt.Fprintln(os.Stderr, styled(unknownStyle,
		"unknown commands: "+strings.Join(result.UnknownCommands, ", ")))
}

func runHandlers(_ *cobra.Command, _ []string) {
	doc := precedenceMarkdown()
	rendered, err := renderMarkdown(doc)
	if err != nil {
		// Fall back to the raw markdown rather than failing
		fmt.Print(doc)
		return
	}
	fmt.Print(rendered)
}

// precedenceMarkdown builds the handler documentation from the live rule
// tables, so the displayed order can never drift from the engine's.
func precedenceMarkdown() string {
	var b strings.Builder
	b.WriteString("# Domain handler precedence\n\n")
	b.WriteString("The pre-pass (`crossdomain`) runs first, then the handlers below in order.\n")
	b.WriteString("Earlier handlers fully consume their syntax before later ones see the text.\n\n")

	b.WriteString("| stage | domain | rules |\n")
	b.WriteString("| --- | --- | --- |\n")
	pre := rules.CrossDomain()
	b.WriteString(fmt.Sprintf("| pre-pass | `%s` | %d rules |\n", pre.Domain(), len(pre.Rules())))
	for i, h := range engine.DefaultHandlers() {
		b.WriteString(fmt.Sprintf("| %d | `%s` | %d rules |\n", i+1, h.Domain(), len(h.Rules())))
	}
	return b.String()
}
