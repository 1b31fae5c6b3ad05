package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"podnote"
	"podnote/fs"
	"podnote/goquery"
	"podnote/htmltomarkdown"
	podhttp "podnote/http"
	"podnote/pipeline"
	"podnote/rod"
	podslog "podnote/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
// Flags mirror the persisted settings and override them when set.
type CLI struct {
	Config           string        `short:"c" help:"Path to a podnote.yaml config file"`
	Folder           string        `short:"f" help:"Folder new notes are saved into"`
	Template         string        `help:"Note template string"`
	TemplateFile     string        `help:"Path to a note template file"`
	FilenameTemplate string        `help:"Filename template for new notes"`
	AtCursor         bool          `help:"Insert the note into the output stream instead of creating a file"`
	Browser          bool          `short:"b" help:"Fetch pages with a headless browser (for script-rendered hosts)"`
	Timeout          time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Verbose          bool          `short:"v" help:"Log fetch and extraction details to stderr"`

	Add       AddCmd       `cmd:"" help:"Create a podcast note from an episode URL"`
	Selection SelectionCmd `cmd:"" help:"Rewrite piped text, creating a note for each podcast link in it"`
}

// AddCmd creates one note from one URL.
type AddCmd struct {
	URL string `arg:"" required:"" help:"Podcast episode URL"`
}

// SelectionCmd processes every podcast link in the piped selection.
type SelectionCmd struct{}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("podnote"),
		kong.Description("Create markdown notes from podcast episode pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	settings, err := LoadSettings(cli.Config)
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cli, settings)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// The show-notes endpoint serves plain JSON, so the secondary fetch
	// always uses the HTTP fetcher, browser mode or not.
	httpFetcher := podhttp.NewFetcher(podhttp.WithTimeout(cli.Timeout))
	defer httpFetcher.Close()

	var fetcher podnote.Fetcher = httpFetcher
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer rodFetcher.Close()
		fetcher = rodFetcher
	}
	if cli.Verbose {
		fetcher = podslog.NewLoggingFetcher(fetcher, logger)
	}

	folder := cli.Folder
	if folder == "" {
		folder = settings.Folder
	}

	p := &pipeline.Pipeline{
		Fetcher: fetcher,
		Extractor: goquery.NewExtractor(
			goquery.WithShowNotesFetcher(httpFetcher),
			goquery.WithConverter(htmltomarkdown.NewConverter()),
		),
		Notes:    fs.NewVault(folder),
		Editor:   NewStdioEditor(stdin, stdout),
		Notifier: NewStderrNotifier(stderr),
		Limiter:  pipeline.NewDomainLimiter(1.0),
		Logger:   logger,
	}

	switch kctx.Command() {
	case "add <url>":
		return p.CreateFromURL(ctx, cli.Add.URL, cfg)
	case "selection":
		return p.CreateFromSelection(ctx, cfg)
	default:
		return fmt.Errorf("unknown command %q", kctx.Command())
	}
}

// buildConfig merges flags over persisted settings into the pipeline
// configuration, resolving a template file to its content when given.
func buildConfig(cli *CLI, settings Settings) (pipeline.Config, error) {
	cfg := pipeline.Config{
		Template:         settings.Template,
		FilenameTemplate: settings.Filename,
	}
	if cli.Template != "" {
		cfg.Template = cli.Template
	}
	if cli.FilenameTemplate != "" {
		cfg.FilenameTemplate = cli.FilenameTemplate
	}

	templateFile := settings.TemplateFile
	if cli.TemplateFile != "" {
		templateFile = cli.TemplateFile
	}
	if templateFile != "" {
		template, err := fs.ReadTemplate(templateFile)
		if err != nil {
			return pipeline.Config{}, err
		}
		cfg.Template = template
	}

	if cli.AtCursor || settings.AtCursor {
		cfg.Placement = pipeline.AtCursor
	}

	return cfg, nil
}
