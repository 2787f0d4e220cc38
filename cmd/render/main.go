package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/render-runtime/template"
)

func main() {
	var (
		dataFile    = flag.String("data", "", "Path to YAML or JSON document")
		configFile  = flag.String("config", "", "Path to YAML config file (optional)")
		outFile     = flag.String("out", "", "Write HTML to file instead of stdout")
		title       = flag.String("title", "", "Page title")
		rawHTML     = flag.Bool("raw-html", false, "Treat string values as HTML and sanitize them")
		policy      = flag.String("policy", "", "Sanitize policy for -raw-html (ugc, strict)")
		stats       = flag.Bool("stats", false, "Print render statistics to stderr")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive preview mode with TUI")
	)
	flag.Parse()

	if *dataFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: render -data <file.yaml|file.json> [-config cfg.yaml] [-out page.html] [-title T]")
		fmt.Fprintln(os.Stderr, "       render -data <file> -raw-html [-policy ugc|strict]")
		fmt.Fprintln(os.Stderr, "       render -data <file> -i  (interactive mode)")
		os.Exit(1)
	}

	log := newLogger(*verbose && !*interactive)
	defer log.Sync()
	template.SetLogger(log)

	cfg := DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = LoadConfig(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Out = *outFile
		case "title":
			cfg.Title = *title
		case "raw-html":
			cfg.RawHTML = *rawHTML
		case "policy":
			cfg.Policy = *policy
		}
	})

	if *interactive {
		if err := runInteractive(*dataFile, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(log, *dataFile, cfg, *stats); err != nil {
		log.Debug("render failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func run(log *zap.Logger, dataFile string, cfg Config, showStats bool) error {
	start := time.Now()

	root, err := loadDocument(dataFile)
	if err != nil {
		return err
	}
	log.Debug("loaded document", zap.String("path", dataFile), zap.String("kind", kindName(root)))

	pw, err := newPageWriter(cfg)
	if err != nil {
		return err
	}
	page := pw.page(root)

	html, err := page.Render()
	if err != nil {
		return err
	}
	log.Debug("rendered page",
		zap.Int("bytes", len(html)),
		zap.Int("nodes", pw.nodes),
		zap.Bool("raw_html", cfg.RawHTML))

	if err := writeOutput(cfg.Out, html, os.Stdout); err != nil {
		return err
	}
	if cfg.Out != "" {
		log.Info("wrote page", zap.String("path", cfg.Out))
	}

	if showStats {
		printStats(os.Stderr, renderStats{
			Source:  dataFile,
			Output:  cfg.Out,
			Nodes:   pw.nodes,
			Bytes:   len(html),
			Hint:    page.Hint().Get(),
			Elapsed: time.Since(start),
		}, isTerminal(os.Stderr))
	}
	return nil
}
