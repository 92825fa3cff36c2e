package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/CyrilZ0817/tfidf-text-processing/internal/config"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/loader"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/normalize"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/report"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/scorer"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/service"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/stem"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var plain bool
	var topTerms int
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/tfidf/config.yaml if not provided)")
	flag.BoolVar(&plain, "plain", false, "Print top terms per document and exit instead of opening the TUI")
	flag.IntVar(&topTerms, "top", 0, "Number of top terms to show (overrides config)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: tfidf [--config=config.yaml] [--plain] [--top=N] file1.txt [file2.txt ...]")
		os.Exit(1)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger := log.WithField("component", "tfidf")

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if topTerms > 0 {
		cfg.Scoring.TopTerms = topTerms
	}

	// Assemble components
	var normOpts []normalize.Option
	if cfg.Normalizer.DropNumeric {
		normOpts = append(normOpts, normalize.WithDropNumeric())
	}
	tokenizer := normalize.New(normOpts...)

	stops, err := loader.Stopwords(cfg.Stopwords.Path)
	if err != nil {
		logger.Fatalf("failed to load stopwords: %v", err)
	}

	stemmer := stem.New(cfg.Stemmer.MinStemLength)

	logBase := frequencyLogBase(cfg.Scoring.LogBase)
	weighting := scorer.Weighting(cfg.Scoring.Weighting)

	pipeline := service.New(tokenizer, stemmer, stops, weighting, logBase, logger)

	docs, err := loader.Documents(inputs)
	if err != nil {
		logger.Fatalf("failed to load documents: %v", err)
	}

	result, err := pipeline.Run(context.Background(), docs)
	if err != nil {
		logger.Fatalf("pipeline failed: %v", err)
	}

	if cfg.Output.WriteFiles {
		dir := cfg.Output.Dir
		if dir == "" {
			dir = "."
		}
		for i, td := range result.Documents {
			if err := report.WriteTokens(dir, td); err != nil {
				logger.Fatalf("failed to write token file: %v", err)
			}
			ranking := result.Rankings[i]
			ranking.Terms = scorer.TopK(ranking.Terms, cfg.Scoring.TopTerms)
			if err := report.WriteScores(dir, ranking); err != nil {
				logger.Fatalf("failed to write score file: %v", err)
			}
		}
	}

	if plain {
		for _, ranking := range result.Rankings {
			fmt.Printf("== %s\n", ranking.DocumentID)
			fmt.Print(report.Format(scorer.TopK(ranking.Terms, cfg.Scoring.TopTerms)))
		}
		return
	}

	m := tui.New(result.Rankings, cfg.Scoring.TopTerms)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		logger.Fatal(err)
	}
}

func frequencyLogBase(name string) float64 {
	if name == "10" {
		return 10
	}
	return math.E
}
