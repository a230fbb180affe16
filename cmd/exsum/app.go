package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"exsum/internal/config"
	"exsum/internal/logger"
	"exsum/internal/parser"
	"exsum/internal/service"
	"exsum/internal/summarizer"
)

type app struct {
	cfg     *config.AppConfig
	logger  *slog.Logger
	service *service.SummaryService
}

func loadConfig() (*config.AppConfig, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if configPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if parserType != "" {
		cfg.Parser.Type = parserType
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newApp assembles the parser, summarizer and service selected by config.
func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	p, err := parser.New(cfg.Parser.Type)
	if err != nil {
		return nil, err
	}

	var sum *summarizer.Summarizer
	switch cfg.Summarizer.Type {
	case "features", "":
		sum, err = summarizer.New(cfg.SummarizerOptions(), log)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}
	log.Debug("assembled", "parser", p.Name(), "features", sum.FeatureNames(), "parallel", cfg.Summarizer.Parallel)

	return &app{cfg: cfg, logger: log, service: service.NewSummaryService(p, sum, log)}, nil
}

// countArg parses the optional count argument at position i, falling back to def.
func countArg(args []string, i int, def int) (int, error) {
	if len(args) <= i {
		return def, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", args[i], err)
	}
	return n, nil
}
