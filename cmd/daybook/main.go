package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/evensrud/daybook/internal"
	"github.com/evensrud/daybook/internal/editor"
	"github.com/evensrud/daybook/internal/index"
	"github.com/evensrud/daybook/internal/mcpserver"
	"github.com/evensrud/daybook/internal/registry"
	"github.com/evensrud/daybook/internal/vault"
	pkgconfig "github.com/evensrud/daybook/pkg/config"
)

func main() {
	cmd := &cli.Command{
		Name:  "daybook",
		Usage: "Append timestamped notes to per-day markdown files in a vault",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "vault", Aliases: []string{"v"}, Usage: "Vault name (optional if only one vault exists)"},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Date selector (locale formats or the configured override)"},
			&cli.IntFlag{Name: "relative-date", Aliases: []string{"r"}, Usage: "Relative date selector (days ago, 0 = today)"},
			&cli.StringFlag{Name: "time", Aliases: []string{"t"}, Usage: "Time selector (HH:MM, HH:MM:SS, or 12-hour forms)"},
			&cli.StringFlag{Name: "time-format", Usage: "Time format override: 12h or 24h"},
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Category selecting a section header"},
			&cli.BoolFlag{Name: "stdin", Usage: "Read note content from stdin, one note per non-empty line"},
			&cli.BoolFlag{Name: "list", Aliases: []string{"l"}, Usage: "List notes for the selected date"},
			&cli.BoolFlag{Name: "edit", Aliases: []string{"e"}, Usage: "Open the selected day file in $EDITOR"},
		},
		Action: defaultAction,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a note",
				ArgsUsage: "<content...>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return addNotes(cmd, strings.Join(cmd.Args().Slice(), " "))
				},
			},
			{
				Name:   "list",
				Usage:  "List notes for the selected date",
				Action: func(ctx context.Context, cmd *cli.Command) error { return listNotes(cmd) },
			},
			{
				Name:   "edit",
				Usage:  "Open the selected day file in $EDITOR",
				Action: func(ctx context.Context, cmd *cli.Command) error { return editNotes(cmd) },
			},
			{
				Name:      "search",
				Usage:     "Full-text search through note entries",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "Index database path", Value: defaultIndexPath()},
					&cli.IntFlag{Name: "limit", Usage: "Maximum number of hits", Value: 20},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error { return searchNotes(cmd) },
			},
			{
				Name:  "serve",
				Usage: "Serve the vault over a local HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Usage:   "Path to serve config file",
						Value:   "config/config.yaml",
						Sources: cli.EnvVars("DAYBOOK_SERVE_CONFIG"),
					},
				},
				Action: serveAction,
			},
			{
				Name:  "mcp",
				Usage: "Serve daybook tools over MCP stdio",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "Index database path", Value: defaultIndexPath()},
				},
				Action: mcpAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultAction mirrors the classic behavior: bare arguments become note
// content, no arguments lists today.
func defaultAction(ctx context.Context, cmd *cli.Command) error {
	switch {
	case cmd.Bool("list"):
		return listNotes(cmd)
	case cmd.Bool("edit"):
		return editNotes(cmd)
	case cmd.Bool("stdin"):
		return addFromStdin(cmd)
	case cmd.Args().Len() > 0:
		return addNotes(cmd, strings.Join(cmd.Args().Slice(), " "))
	default:
		return listNotes(cmd)
	}
}

// openStore resolves the requested vault from the registry.
func openStore(cmd *cli.Command) (*vault.Store, error) {
	mgr, err := registry.NewManager()
	if err != nil {
		return nil, err
	}
	if !mgr.Exists() {
		return nil, fmt.Errorf("no configuration file found; run 'daybookctl init --path <path>' to create your first vault")
	}
	reg, err := mgr.Load()
	if err != nil {
		return nil, err
	}
	cfg, err := reg.Resolve(cmd.String("vault"))
	if err != nil {
		return nil, err
	}
	return vault.NewStore(cfg)
}

func relativeDays(cmd *cli.Command) *int {
	if !cmd.IsSet("relative-date") {
		return nil
	}
	n := int(cmd.Int("relative-date"))
	return &n
}

func addNotes(cmd *cli.Command, content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("note content is empty")
	}
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	ts, err := store.ResolveTimestamp(cmd.String("date"), relativeDays(cmd), cmd.String("time"), cmd.String("time-format"))
	if err != nil {
		return err
	}
	if err := store.AddNote(content, ts, cmd.String("category")); err != nil {
		return err
	}
	fmt.Println("Note added successfully!")
	return nil
}

func addFromStdin(cmd *cli.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	count := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ts, err := store.ResolveTimestamp(cmd.String("date"), relativeDays(cmd), cmd.String("time"), cmd.String("time-format"))
		if err != nil {
			return err
		}
		if err := store.AddNote(line, ts, cmd.String("category")); err != nil {
			return err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if count > 0 {
		fmt.Printf("Added %d notes from stdin\n", count)
	} else {
		fmt.Println("No content received from stdin")
	}
	return nil
}

func listNotes(cmd *cli.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	date, err := store.ResolveDate(cmd.String("date"), relativeDays(cmd))
	if err != nil {
		return err
	}
	rows, err := store.ListNotes(date, cmd.String("category"))
	if err != nil {
		return err
	}

	day := date.Format("2006-01-02")
	if len(rows) == 0 {
		fmt.Printf("No notes found for %s\n", day)
		return nil
	}
	fmt.Printf("Notes for %s:\n", day)
	for _, row := range rows {
		fmt.Printf("%s %s\n", row.Time, row.Content)
	}
	return nil
}

func editNotes(cmd *cli.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	date, err := store.ResolveDate(cmd.String("date"), relativeDays(cmd))
	if err != nil {
		return err
	}
	return editor.Open(store.NotePath(date))
}

func searchNotes(cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search query is empty")
	}
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	db, err := openIndex(cmd.String("db"))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := index.Sync(db, store.Files(), slog.Default()); err != nil {
		return err
	}
	hits, err := db.Search(query, int(cmd.Int("limit")))
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Println("No matches")
		return nil
	}
	for _, h := range hits {
		day := h.Day
		if day == "" {
			day = h.FilePath
		}
		fmt.Printf("%s %s  %s\n", day, h.Time, h.Snippet)
	}
	return nil
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfExists(cmd.String("config"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return internal.Run(ctx,
		internal.WithConfig(cfg),
		internal.WithStore(store),
	)
}

func mcpAction(ctx context.Context, cmd *cli.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	db, err := openIndex(cmd.String("db"))
	if err != nil {
		return err
	}
	defer db.Close()
	if err := index.Sync(db, store.Files(), slog.Default()); err != nil {
		return err
	}

	return mcpserver.New(store, db).ServeStdio()
}

// openIndex opens the entry index, creating its parent directory first.
func openIndex(path string) (*index.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}
	return index.Open(path)
}

// defaultIndexPath places the entry index in the user cache directory.
func defaultIndexPath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return "./daybook.db"
	}
	return filepath.Join(base, "daybook", "index.db")
}
