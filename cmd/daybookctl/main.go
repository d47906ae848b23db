package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/evensrud/daybook/internal/obsidian"
	"github.com/evensrud/daybook/internal/registry"
	"github.com/evensrud/daybook/internal/vault"
)

func main() {
	cmd := &cli.Command{
		Name:  "daybookctl",
		Usage: "Daybook vault management tool",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Initialize a new vault",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Path to the vault directory", Required: true},
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Vault name (defaults to the path basename)"},
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "Representation: bullet or table"},
					&cli.StringFlag{Name: "locale", Usage: "Locale tag (defaults to $LANG)"},
					&cli.BoolFlag{Name: "obsidian", Usage: "Detect settings from an existing Obsidian vault"},
				},
				Action: initVault,
			},
			{
				Name:   "list",
				Usage:  "List all configured vaults",
				Action: listVaults,
			},
			{
				Name:      "set-default",
				Usage:     "Set the default vault",
				ArgsUsage: "<vault-name>",
				Action:    setDefault,
			},
			{
				Name:   "unset-default",
				Usage:  "Unset the default vault",
				Action: unsetDefault,
			},
			{
				Name:   "show-default",
				Usage:  "Show the current default vault",
				Action: showDefault,
			},
			{
				Name:      "unlist",
				Usage:     "Remove a vault from the configuration (files are kept)",
				ArgsUsage: "<vault-name>",
				Action:    unlistVault,
			},
			{
				Name:  "today",
				Usage: "Show the location of today's day file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "vault", Aliases: []string{"v"}, Usage: "Vault name (uses the default if not specified)"},
					&cli.BoolFlag{Name: "verbose", Usage: "Also report whether the file exists"},
				},
				Action: today,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initVault(ctx context.Context, cmd *cli.Command) error {
	path := vault.ExpandPath(cmd.String("path"))
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	name := cmd.String("name")
	if name == "" {
		name = filepath.Base(path)
		if name == "." || name == string(os.PathSeparator) {
			return fmt.Errorf("invalid path: cannot derive a vault name from %q", cmd.String("path"))
		}
	}

	rep := cmd.String("type")
	if rep != "" && rep != vault.RepBullet && rep != vault.RepTable {
		return fmt.Errorf("invalid vault type %q: use bullet or table", rep)
	}

	locale := cmd.String("locale")
	if locale == "" {
		locale = systemLocale()
	}

	cfg := vault.Config{
		Name:           name,
		Path:           path,
		Locale:         locale,
		Representation: rep,
	}

	if cmd.Bool("obsidian") {
		detected, err := obsidian.Detect(path)
		if err != nil {
			return err
		}
		cfg.FilePathFormat = detected.FilePathFormat
		cfg.TemplateFile = detected.TemplateFile
		if detected.FilePathFormat != "" || detected.TemplateFile != "" {
			fmt.Println("Imported Obsidian Daily Notes settings")
		}
	}

	mgr, err := registry.NewManager()
	if err != nil {
		return err
	}
	reg, err := mgr.Load()
	if err != nil {
		return err
	}
	reg.AddVault(cfg)
	if err := mgr.Save(reg); err != nil {
		return err
	}

	fmt.Printf("Vault %q initialized successfully!\n", name)
	return nil
}

func loadRegistry() (*registry.Manager, *registry.Config, error) {
	mgr, err := registry.NewManager()
	if err != nil {
		return nil, nil, err
	}
	reg, err := mgr.Load()
	if err != nil {
		return nil, nil, err
	}
	return mgr, reg, nil
}

func listVaults(ctx context.Context, cmd *cli.Command) error {
	_, reg, err := loadRegistry()
	if err != nil {
		return err
	}
	names := reg.Names()
	if len(names) == 0 {
		fmt.Println("No vaults configured. Use 'daybookctl init' to create one.")
		return nil
	}
	for _, n := range names {
		v := reg.Vaults[n]
		marker := " "
		if n == reg.DefaultVault {
			marker = "*"
		}
		fmt.Printf("%s %s\t%s\n", marker, n, v.Path)
	}
	return nil
}

func setDefault(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("vault name is required")
	}
	mgr, reg, err := loadRegistry()
	if err != nil {
		return err
	}
	if err := reg.SetDefault(name); err != nil {
		return err
	}
	if err := mgr.Save(reg); err != nil {
		return err
	}
	fmt.Printf("Default vault set to %q\n", name)
	return nil
}

func unsetDefault(ctx context.Context, cmd *cli.Command) error {
	mgr, reg, err := loadRegistry()
	if err != nil {
		return err
	}
	reg.ClearDefault()
	if err := mgr.Save(reg); err != nil {
		return err
	}
	fmt.Println("Default vault unset")
	return nil
}

func showDefault(ctx context.Context, cmd *cli.Command) error {
	_, reg, err := loadRegistry()
	if err != nil {
		return err
	}
	if reg.DefaultVault == "" {
		fmt.Println("No default vault set")
		return nil
	}
	fmt.Println(reg.DefaultVault)
	return nil
}

func unlistVault(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("vault name is required")
	}
	mgr, reg, err := loadRegistry()
	if err != nil {
		return err
	}
	if err := reg.RemoveVault(name); err != nil {
		return err
	}
	if err := mgr.Save(reg); err != nil {
		return err
	}
	fmt.Printf("Vault %q unlisted (files were not touched)\n", name)
	return nil
}

func today(ctx context.Context, cmd *cli.Command) error {
	_, reg, err := loadRegistry()
	if err != nil {
		return err
	}
	cfg, err := reg.Resolve(cmd.String("vault"))
	if err != nil {
		return err
	}
	store, err := vault.NewStore(cfg)
	if err != nil {
		return err
	}
	path := store.NotePath(store.Clock().Today())
	fmt.Println(path)
	if cmd.Bool("verbose") {
		if _, err := os.Stat(path); err == nil {
			fmt.Println("exists: yes")
		} else {
			fmt.Println("exists: no")
		}
	}
	return nil
}

// systemLocale reads the locale from the environment, normalising a value
// like "en_US.UTF-8" to "en-US".
func systemLocale() string {
	lang := os.Getenv("LANG")
	if lang == "" {
		lang = os.Getenv("LC_ALL")
	}
	if lang == "" {
		return "en-US"
	}
	if i := strings.IndexByte(lang, '.'); i >= 0 {
		lang = lang[:i]
	}
	return strings.ReplaceAll(lang, "_", "-")
}
