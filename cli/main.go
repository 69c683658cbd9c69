package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/RobertP-SyndicateLabs/shaderprep/internal/config"
	"github.com/RobertP-SyndicateLabs/shaderprep/shaderpp"
)

func main() {
	var (
		propertiesFile string
		pieceFiles     []string
		outFile        string
		watch          bool
		debug          bool
	)

	rootCmd := &cobra.Command{
		Use:   "shaderprep",
		Short: "Expand shader template directives into final shader source",
	}

	buildCmd := &cobra.Command{
		Use:   "build <shader-file>",
		Short: "Preprocess a shader template against a property environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := buildOptions{
				shaderFile:     args[0],
				propertiesFile: propertiesFile,
				pieceFiles:     pieceFiles,
				outFile:        outFile,
				logger:         newLogger(debug),
			}
			if watch {
				return watchAndBuild(opts)
			}
			return buildOnce(opts)
		},
	}

	buildCmd.Flags().StringVarP(&propertiesFile, "properties", "p", "", "Path to a JSON property environment")
	buildCmd.Flags().StringArrayVar(&pieceFiles, "piece-file", nil, "Piece library file (repeatable, order preserved)")
	buildCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the expanded shader here instead of stdout")
	buildCmd.Flags().BoolVar(&watch, "watch", false, "Re-run whenever the shader, piece, or property files change")
	buildCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(buildCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type buildOptions struct {
	shaderFile     string
	propertiesFile string
	pieceFiles     []string
	outFile        string
	logger         *slog.Logger
}

// buildOnce runs one full preprocessor invocation from scratch: a fresh
// PropertyMap is seeded per run so that repeated runs (watch mode) never
// observe counter increments from a previous run.
func buildOnce(opts buildOptions) error {
	shader, err := os.ReadFile(opts.shaderFile)
	if err != nil {
		return fmt.Errorf("reading shader file: %w", err)
	}

	pieces := make([]string, 0, len(opts.pieceFiles))
	for _, path := range opts.pieceFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading piece file %s: %w", path, err)
		}
		pieces = append(pieces, string(data))
	}

	seed := map[string]int32{}
	if opts.propertiesFile != "" {
		seed, err = config.LoadProperties(opts.propertiesFile)
		if err != nil {
			return err
		}
	}
	properties := shaderpp.NewPropertyMapFrom(seed)

	out, diags := shaderpp.Parse(string(shader), properties, pieces, opts.logger)
	for _, d := range diags {
		if d.Severity == shaderpp.SeverityError {
			return fmt.Errorf("%s: line %d: %s", d.Pass, d.Line, d.Message)
		}
	}

	if opts.outFile == "" {
		_, err = os.Stdout.WriteString(out)
		return err
	}
	return os.WriteFile(opts.outFile, []byte(out), 0o644)
}

// watchAndBuild builds once, then rebuilds on every write to a watched
// file until interrupted. A failing build logs and keeps watching.
func watchAndBuild(opts buildOptions) error {
	if err := buildOnce(opts); err != nil {
		opts.logger.Error(err.Error())
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watched := append([]string{opts.shaderFile}, opts.pieceFiles...)
	if opts.propertiesFile != "" {
		watched = append(watched, opts.propertiesFile)
	}
	for _, path := range watched {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			opts.logger.Info("change detected, rebuilding", slog.String("file", event.Name))
			if err := buildOnce(opts); err != nil {
				opts.logger.Error(err.Error())
			}
			// editors that replace the file on save drop the inode watch
			_ = watcher.Add(event.Name)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.logger.Error(werr.Error())
		case <-sigc:
			return nil
		}
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
