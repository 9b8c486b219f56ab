package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"vecsketch/internal/config"
	"vecsketch/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logLevel := flag.String("loglevel", cfg.LogLevel, "Set the logging level: debug, info, warn, error, fatal, panic")
	canvas := flag.String("canvas", cfg.Canvas, "Name of the first canvas")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: vecsketch [flags] [file.wkt|file.geojson]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	cfg.Canvas = *canvas

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// The terminal belongs to the UI; logs go to a file or nowhere.
	logrus.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logrus.SetOutput(f)
	}

	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(cfg, flag.Arg(0))
	} else {
		m = tui.New(cfg)
	}
	logrus.WithFields(logrus.Fields{"canvas": cfg.Canvas, "level": level.String()}).Info("starting vecsketch")
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logrus.WithError(err).Error("program exited")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
