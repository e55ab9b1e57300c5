package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	verbose bool
	animate bool
	noColor bool

	cfg    Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A terminal-flavoured personal portfolio",
	Long: `folio serves a single portfolio page: an ASCII-art header, a typewriter
tagline and the about, skills, projects, experience and contact sections.

Browsers get HTML. curl, wget and httpie get the page streamed as ANSI text.
Run without arguments to start the web server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return err
		}
		logger, err = NewLogger(cfg.LogLevel, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page over HTTP",
	RunE:  runServe,
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the page to stdout",
	Long: `Prints the page to stdout. When stdout is a terminal the page is
animated, otherwise it is written at once. --animate overrides the check.`,
	RunE: runPrint,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the page in an interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("tui needs an interactive terminal")
		}
		return RunTUI(NewPage(DefaultProfile(), cfg.Timing()))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	printCmd.Flags().BoolVar(&animate, "animate", false, "animate even when stdout is not a terminal")
	printCmd.Flags().BoolVar(&noColor, "no-color", false, "plain text without ANSI styling")
	rootCmd.AddCommand(serveCmd, printCmd, tuiCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := NewServer(cfg, logger, NewPage(DefaultProfile(), cfg.Timing()))
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func runPrint(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}

	profile := termenv.Ascii
	if !noColor && tty {
		profile = termenv.NewOutput(os.Stdout).EnvColorProfile()
	}
	page := NewPage(DefaultProfile(), cfg.Timing())
	t := NewTerminal(out, profile)

	play := tty
	if cmd.Flags().Changed("animate") {
		play = animate
	}
	if !play {
		_, err := fmt.Fprint(out, t.Static(page))
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := t.Play(ctx, page); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
