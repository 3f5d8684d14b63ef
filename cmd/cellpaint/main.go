// Command cellpaint runs the cell-grid renderer demos in a terminal, renders
// frames offscreen to grid dumps, and displays saved dumps.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellpaint/config"
	"github.com/lixenwraith/cellpaint/engine"
	"github.com/lixenwraith/cellpaint/palette"
	"github.com/lixenwraith/cellpaint/render"
	"github.com/lixenwraith/cellpaint/scene"
	"github.com/lixenwraith/cellpaint/status"
	"github.com/lixenwraith/cellpaint/terminal"
)

type options struct {
	configPath string
	debug      bool
	cfg        config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var logFile *os.File

	root := &cobra.Command{
		Use:           "cellpaint",
		Short:         "Software cell-grid renderer",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &cfg); err != nil {
				return err
			}
			opts.cfg = cfg
			logFile = setupLogging(cfg.Log.Dir, cfg.Log.Debug || opts.debug)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	pf.BoolVar(&opts.debug, "debug", false, "write debug log to the log directory")
	pf.IntP("width", "W", 0, "frame width in cells (0 = terminal width)")
	pf.IntP("height", "H", 0, "frame height in cells (0 = terminal height)")
	pf.Duration("interval", 0, "frame interval")
	pf.String("sink", "", "presenter: ansi or tcell")
	pf.String("color", "", "color mode: auto, none, ansi16, ansi256, truecolor")
	pf.String("background", "", "background colour name or #rrggbb")

	root.AddCommand(newRunCmd(opts), newMeshCmd(opts), newRenderCmd(opts), newShowCmd(opts))
	return root
}

// applyFlags overlays explicitly set flags on cfg and revalidates
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		cfg.Height, _ = f.GetInt("height")
	}
	if f.Changed("interval") {
		cfg.Interval.Duration, _ = f.GetDuration("interval")
	}
	if f.Changed("sink") {
		cfg.Sink, _ = f.GetString("sink")
	}
	if f.Changed("color") {
		cfg.ColorMode, _ = f.GetString("color")
	}
	if f.Changed("background") {
		cfg.Background, _ = f.GetString("background")
	}
	return cfg.Validate()
}

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "Run a demo in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := opts.cfg.Demo
			if len(args) == 1 {
				name = args[0]
			}
			hooks, err := lookupDemo(name, opts.cfg.BackgroundColor())
			if err != nil {
				return err
			}
			return present(cmd.Context(), opts.cfg, hooks)
		},
	}
	cmd.Long = "Available demos: " + fmt.Sprint(demoNames())
	return cmd
}

func newMeshCmd(opts *options) *cobra.Command {
	var colorName string
	var wire bool
	cmd := &cobra.Command{
		Use:   "mesh <file.obj>",
		Short: "Spin an OBJ mesh in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := palette.Parse(colorName)
			if err != nil {
				return err
			}
			m, err := scene.LoadOBJ(args[0], c, !wire)
			if err != nil {
				return err
			}
			return present(cmd.Context(), opts.cfg, meshDemo(m, args[0], opts.cfg.BackgroundColor()))
		},
	}
	cmd.Flags().StringVar(&colorName, "mesh-color", "cyan", "mesh colour")
	cmd.Flags().BoolVar(&wire, "wire", false, "draw wireframe instead of filled triangles")
	return cmd
}

func newRenderCmd(opts *options) *cobra.Command {
	var frames int
	var out string
	cmd := &cobra.Command{
		Use:   "render [demo]",
		Short: "Render demo frames offscreen and save the last one as a grid dump",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := opts.cfg.Demo
			if len(args) == 1 {
				name = args[0]
			}
			hooks, err := lookupDemo(name, opts.cfg.BackgroundColor())
			if err != nil {
				return err
			}
			w, h := frameSize(opts.cfg)
			buf, err := renderOffscreen(hooks, w, h, frames)
			if err != nil {
				return err
			}
			if err := buf.SaveFile(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %dx%d frame to %s\n", w, h, out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 1, "frames to render")
	cmd.Flags().StringVarP(&out, "out", "o", "frame.grid", "output file")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	var fit bool
	cmd := &cobra.Command{
		Use:   "show <file.grid>",
		Short: "Print a saved grid dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := render.LoadFile(args[0])
			if err != nil {
				return err
			}
			if fit {
				w, h := frameSize(opts.cfg)
				if buf.Width() > w || buf.Height() > h {
					buf = buf.Resample(min(w, buf.Width()), min(h, buf.Height()))
				}
			}
			out := cmd.OutOrStdout()
			profile, err := terminal.ParseProfile(opts.cfg.ColorMode, out)
			if err != nil {
				return err
			}
			if err := terminal.NewANSISink(out, profile).Present(buf); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fit, "fit", true, "resample to fit the terminal")
	return cmd
}

// renderOffscreen runs hooks without loops: Setup once, then Frame n times
func renderOffscreen(hooks engine.Hooks, w, h, n int) (*render.Buffer, error) {
	buf := render.NewBuffer(w, h)
	if hooks.Setup != nil {
		if err := hooks.Setup(buf); err != nil {
			return nil, fmt.Errorf("setup: %w", err)
		}
	}
	for i := 0; i < n; i++ {
		if err := hooks.Frame(buf); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return buf, nil
}

// present runs hooks on a live terminal until a quit key, a signal, or an error
func present(parent context.Context, cfg config.Config, hooks engine.Hooks) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := openDisplay(cfg)
	if err != nil {
		return err
	}
	defer d.close()

	w, h := cfg.Width, cfg.Height
	if w == 0 || h == 0 {
		tw, th := d.size()
		w, h = pick(w, tw), pick(h, th)
	}

	reg := status.NewRegistry()
	painter := engine.NewPainter(d.sink, reg)
	if err := painter.Start(ctx, hooks, w, h, cfg.Interval.Duration); err != nil {
		return err
	}
	d.watchQuit(ctx, painter.Stop)

	err = painter.Wait()
	engine.Logger().LogAttrs(context.Background(), slog.LevelInfo, "frame metrics", reg.LogAttrs()...)
	return err
}

func pick(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// frameSize resolves the configured size against the terminal
func frameSize(cfg config.Config) (int, int) {
	w, h := terminalSize()
	return pick(cfg.Width, w), pick(cfg.Height, h)
}
