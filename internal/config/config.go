// Package config reads settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	LogFile      string
	LogLevel     string
	PolygonSides int
	HitThreshold float64
	ExportDir    string
	ExportScale  float64
	// Canvas names the first canvas; empty means "canvas-1".
	Canvas string
}

func Default() Config {
	return Config{
		LogLevel:     "info",
		PolygonSides: 5,
		HitThreshold: 5.0,
		ExportDir:    ".",
		ExportScale:  4,
	}
}

// Load reads a .env file from the working directory if present, then the
// VECSKETCH_* environment variables over the defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a variable lookup.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	if v := getenv("VECSKETCH_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := getenv("VECSKETCH_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("VECSKETCH_CANVAS"); v != "" {
		c.Canvas = v
	}
	if v := getenv("VECSKETCH_EXPORT_DIR"); v != "" {
		c.ExportDir = v
	}
	if v := getenv("VECSKETCH_POLYGON_SIDES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("VECSKETCH_POLYGON_SIDES: %w", err)
		}
		if n < 3 {
			return c, fmt.Errorf("VECSKETCH_POLYGON_SIDES: %d is less than 3", n)
		}
		c.PolygonSides = n
	}
	if v := getenv("VECSKETCH_HIT_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("VECSKETCH_HIT_THRESHOLD: %w", err)
		}
		if f <= 0 {
			return c, fmt.Errorf("VECSKETCH_HIT_THRESHOLD: %v must be positive", f)
		}
		c.HitThreshold = f
	}
	if v := getenv("VECSKETCH_EXPORT_SCALE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("VECSKETCH_EXPORT_SCALE: %w", err)
		}
		if f <= 0 {
			return c, fmt.Errorf("VECSKETCH_EXPORT_SCALE: %v must be positive", f)
		}
		c.ExportScale = f
	}
	return c, nil
}
