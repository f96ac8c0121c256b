package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gdpchart/internal/chart"
	"gdpchart/internal/config"
	"gdpchart/internal/dataset"
	"gdpchart/internal/logger"
	"gdpchart/internal/server"
	"gdpchart/internal/tui"
)

const usage = `usage: gdpchart [command] [flags]

commands:
  tui     interactive terminal chart (default)
  serve   serve the chart page over HTTP
  render  write the chart SVG
  export  write a PNG snapshot of the chart
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	cmd, args := "tui", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	url := fs.String("url", cfg.DataURL, "dataset URL")
	file := fs.String("file", "", "local .json or .csv dataset (overrides -url)")
	width := fs.Int("width", cfg.ViewportWidth, "viewport width in pixels (render, export, serve default)")
	out := fs.String("o", "", "output file (render: stdout when empty)")
	addr := fs.String("addr", cfg.Addr, "listen address (serve)")
	_ = fs.Parse(args)

	// the terminal UI owns stdout/stderr, so it only logs to a file
	if cmd != "tui" || cfg.LogFile != "" {
		if err := logger.InitLogger(cfg.Env, cfg.LogFile); err != nil {
			log.Fatal(err)
		}
	}
	defer logger.Sync()

	var src dataset.Source = dataset.URLSource{Client: &http.Client{}, URL: *url}
	label := *url
	if *file != "" {
		src, label = dataset.FileSource{Path: *file}, filepath.Base(*file)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "tui":
		err = runTUI(src, label)
	case "serve":
		err = server.New(src, *width, logger.Log).Run(ctx, *addr)
	case "render":
		err = renderSVG(ctx, src, *width, *out)
	case "export":
		err = exportPNG(ctx, src, *width, *out)
	default:
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", cmd), zap.Error(err))
		log.Fatal(err)
	}
}

func runTUI(src dataset.Source, label string) error {
	p := tea.NewProgram(tui.New(src, label, logger.Log), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func renderSVG(ctx context.Context, src dataset.Source, width int, out string) error {
	c := chart.NewContainer("chart")
	if _, err := chart.NewRenderer(src, logger.Log).Render(ctx, c, width); err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		w = f
	}
	_, err := w.Write(c.Content())
	return err
}

func exportPNG(ctx context.Context, src dataset.Source, width int, out string) error {
	if out == "" {
		out = "gdp-chart.png"
	}
	ds, err := src.Load(ctx)
	if err != nil {
		return err
	}
	l, err := chart.ComputeLayout(chart.DefaultConfig(), width, ds)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := chart.Snapshot(f, l); err != nil {
		f.Close()
		return err
	}
	logger.Info("exported snapshot", zap.String("path", out), zap.Int("points", ds.Len()))
	return f.Close()
}
