package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/at-ishikawa/bkrs2json/internal/config"
	"github.com/at-ishikawa/bkrs2json/internal/converter"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, &converter.ConfigurationError{Path: configFile, Err: err}
	}
	return cfg, nil
}

func printError(output io.Writer, err error) {
	red := color.New(color.FgRed)
	var configErr *converter.ConfigurationError
	if errors.As(err, &configErr) {
		_, _ = red.Fprintf(output, "Error: %s\n", configErr)
		return
	}
	_, _ = red.Fprintln(output, "Conversion failed.")
}
