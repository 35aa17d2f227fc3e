package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/df07/go-sphere-tracer/pkg/output"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// options holds the command line flags
type options struct {
	sceneName  string
	outputPath string
	width      int
	samples    int
	depth      int
	seed       int64
	workers    int
	timeout    time.Duration
	freezeTime bool
	progress   bool
	logLevel   string
	quiet      bool
	listScenes bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return newCommand(&options{})
}

// newCommand builds the root command, binding its flags to opts
func newCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sphere-tracer",
		Short: "Monte Carlo path tracer for sphere scenes",
		Long: "Renders a built-in scene of spheres with diffuse, metal and glass materials.\n" +
			"The output format is chosen from the file extension: .ppm, .pnm, .png, .exr, optionally .gz.",
		Args:          cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.listScenes {
				return listScenes(cmd.OutOrStdout())
			}

			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.quiet)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if opts.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.timeout)
				defer cancel()
			}

			return run(ctx, cmd, opts, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.sceneName, "scene", "s", scene.DefaultSceneName, "Scene to render: "+strings.Join(scene.Names(), ", "))
	flags.StringVarP(&opts.outputPath, "output", "o", "image.ppm", "Output file")
	flags.IntVarP(&opts.width, "width", "w", 0, "Image width in pixels (scene default if unset)")
	flags.IntVar(&opts.samples, "samples", 0, "Samples per pixel (scene default if unset)")
	flags.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth (scene default if unset)")
	flags.Int64Var(&opts.seed, "seed", 0, "Base random seed (scene default if unset)")
	flags.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = number of CPUs)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Stop rendering after this long and save the partial image (0 = no limit)")
	flags.BoolVar(&opts.freezeTime, "freeze-time", false, "Shoot every ray at time 0 (disables motion blur)")
	flags.BoolVar(&opts.progress, "progress", true, "Show a progress bar")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Disable logging and the progress bar")
	flags.BoolVar(&opts.listScenes, "list-scenes", false, "List available scenes and exit")

	return cmd
}

func listScenes(w io.Writer) error {
	for _, info := range scene.List() {
		if _, err := fmt.Fprintf(w, "%-15s %s\n", info.Name, info.Description); err != nil {
			return err
		}
	}
	return nil
}

// newLogger creates a human readable zerolog logger at the requested level
func newLogger(w io.Writer, level string, quiet bool) (zerolog.Logger, error) {
	if quiet {
		return zerolog.Nop(), nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}

// infoLogger routes the renderer's Printf-style messages to zerolog at info level
type infoLogger struct {
	log zerolog.Logger
}

func (l infoLogger) Printf(format string, v ...interface{}) {
	l.log.Info().Msg(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
}

// createScene builds the requested scene with command line overrides applied
func createScene(cmd *cobra.Command, opts *options) (*scene.Scene, error) {
	s, err := scene.New(opts.sceneName, renderer.CameraConfig{
		Width:      opts.width,
		FreezeTime: opts.freezeTime,
	})
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("samples") {
		s.SamplingConfig.SamplesPerPixel = opts.samples
	}
	if flags.Changed("depth") {
		s.SamplingConfig.MaxDepth = opts.depth
	}
	if flags.Changed("seed") {
		s.SamplingConfig.Seed = opts.seed
	}
	if flags.Changed("workers") {
		s.SamplingConfig.Workers = opts.workers
	}
	return s, nil
}

func run(ctx context.Context, cmd *cobra.Command, opts *options, logger zerolog.Logger) error {
	format, compressed, err := output.FormatFromPath(opts.outputPath)
	if err != nil {
		return err
	}

	s, err := createScene(cmd, opts)
	if err != nil {
		return err
	}
	logger.Info().
		Str("scene", s.Name).
		Int("shapes", s.GetPrimitiveCount()).
		Msg("Scene loaded")

	camera, err := s.NewCamera()
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(s.World, camera, s.SamplingConfig, infoLogger{log: logger})
	if err != nil {
		return err
	}

	if opts.progress && !opts.quiet {
		bar := progressbar.NewOptions(camera.Height(),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("Scanlines"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Close()
		raytracer.SetProgress(bar)
	}

	frame, stats, renderErr := raytracer.Render(ctx)
	if renderErr != nil && !errors.Is(renderErr, context.Canceled) && !errors.Is(renderErr, context.DeadlineExceeded) {
		return renderErr
	}
	if renderErr != nil {
		logger.Warn().
			Int("rows", stats.RowsRendered).
			Int("height", camera.Height()).
			Msg("Render stopped early, saving partial image")
	}

	if err := output.Save(opts.outputPath, frame); err != nil {
		return err
	}
	logger.Info().
		Str("file", opts.outputPath).
		Str("format", string(format)).
		Bool("gzip", compressed).
		Dur("elapsed", stats.Elapsed).
		Msg("Image saved")

	return renderErr
}
