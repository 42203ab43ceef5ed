// Command tuicoredemo wires the arena, capability, terminal, input, and
// layout packages together into a minimal interactive screen. It exists
// to exercise the core end to end; it is not part of the core's public
// contract.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/latticeterm/tuicore/capability/ansi"
	"github.com/latticeterm/tuicore/input"
	"github.com/latticeterm/tuicore/layout"
	"github.com/latticeterm/tuicore/terminal"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tuicoredemo",
	Short: "Exercises the terminal, input, and layout core against a real tty",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the window size and decoded key events to /tmp/tuicoredemo-debug.log")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.New(tint.NewHandler(os.Stderr, nil)).Error("tuicoredemo failed", "error", err)
		os.Exit(1)
	}
}

// newDebugLogger opens a file-backed zerolog logger when verbose logging
// is requested. Writing to stderr would corrupt the alternate-screen
// display, so debug output always goes to a file instead, the same way a
// long-running TUI process keeps its diagnostics out of the rendered
// screen.
func newDebugLogger() (zerolog.Logger, func(), error) {
	if !verbose {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile("/tmp/tuicoredemo-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open debug log: %w", err)
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}

func runDemo() error {
	log, closeLog, err := newDebugLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("tuicoredemo: stdin is not a terminal")
	}

	provider := ansi.New()
	sess, err := terminal.Open(provider)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer sess.Close()

	if err := sess.EnterRawMode(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	if err := sess.EnterAltScreen(); err != nil {
		return fmt.Errorf("enter alt screen: %w", err)
	}
	if err := sess.HideCursor(); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}

	rows, cols, err := sess.WindowSize()
	if err != nil {
		return fmt.Errorf("get window size: %w", err)
	}
	log.Info().Int("rows", rows).Int("cols", cols).Msg("session opened")

	engine := layout.NewEngine(layout.NewRectangleFromWindowSize(cols, rows))
	banner := engine.AddAnchor(layout.AbsFromUpperLeft(2, 1))
	footer := engine.AddAnchor(layout.RelFromDownRight(0.5, 0))

	if err := drawBanner(sess, engine, banner); err != nil {
		return err
	}
	if err := drawFooter(sess, engine, footer); err != nil {
		return err
	}

	dec := input.NewDecoder(input.NewBindingTableFromProvider(provider))
	buf := make([]byte, 256)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		events := dec.Decode(buf[:n])
		for _, ev := range events {
			log.Debug().Int32("code", int32(ev.Code)).Str("modifiers", ev.Modifiers.String()).Msg("decoded key event")
			if ev.Code == input.KeyEscape || (ev.Code == input.KeyCode('C') && ev.Modifiers.Ctrl()) {
				return nil
			}
		}
	}
}

func drawBanner(sess *terminal.Session, engine *layout.Engine, handle layout.AnchorHandle) error {
	coords, err := engine.GetCoords(handle)
	if err != nil {
		return fmt.Errorf("resolve banner anchor: %w", err)
	}
	if err := sess.MoveCursor(coords.Row, coords.Col); err != nil {
		return err
	}
	if err := sess.EnterBoldMode(); err != nil {
		return err
	}
	if err := sess.ExitAttributeMode(); err != nil {
		return err
	}
	return nil
}

func drawFooter(sess *terminal.Session, engine *layout.Engine, handle layout.AnchorHandle) error {
	coords, err := engine.GetCoords(handle)
	if err != nil {
		return fmt.Errorf("resolve footer anchor: %w", err)
	}
	return sess.MoveCursor(coords.Row, coords.Col)
}
