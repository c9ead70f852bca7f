package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/emaiannone/network-monitor/internal/config"
	"github.com/emaiannone/network-monitor/internal/i18n"
	"github.com/emaiannone/network-monitor/internal/logging"
	"github.com/emaiannone/network-monitor/internal/prefs"
	"github.com/emaiannone/network-monitor/internal/ui"
)

// env is what every command needs once flags and files are loaded.
type env struct {
	configPath string
	cfg        config.Config
	store      *prefs.Store
	loc        *i18n.Localizer
	logger     *slog.Logger
}

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	var configPath, prefsPath, lang, logFile string
	var debug bool

	flag.StringVar(&configPath, "config", getEnv("NETMON_CONFIG", ""), "path to config.toml (default: XDG config)")
	flag.StringVar(&prefsPath, "prefs", getEnv("NETMON_PREFS", ""), "path to email.toml (default: next to config.toml)")
	flag.StringVar(&lang, "lang", getEnv("NETMON_LANG", ""), "display language, e.g. en or fr (default: config, then $LANG)")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.StringVar(&logFile, "log-file", getEnv("NETMON_LOG_FILE", logging.DefaultFile), "debug log file")
	flag.Usage = usage
	flag.Parse()

	cfg, cfgPathUsed, err := config.Load(configPath)
	if err != nil {
		fatal(err)
	}
	if prefsPath == "" {
		prefsPath = config.PrefsPathFromConfigPath(cfgPathUsed)
	}
	if err := config.Migrate(cfgPathUsed, prefsPath); err != nil {
		fatal(fmt.Errorf("migrate e-mail settings: %w", err))
	}
	store, err := prefs.Open(prefsPath)
	if err != nil {
		fatal(err)
	}

	logger, closer, err := logging.New(debug, logFile)
	if err != nil {
		fatal(err)
	}
	defer closeQuietly(closer)

	if lang == "" {
		lang = cfg.UI.Language
	}
	if lang == "" {
		lang = os.Getenv("LANG")
	}

	e := &env{
		configPath: cfgPathUsed,
		cfg:        cfg,
		store:      store,
		loc:        i18n.New(lang),
		logger:     logger,
	}
	logger.Debug("starting", "config", cfgPathUsed, "prefs", prefsPath, "lang", e.loc.Tag().String())

	args := flag.Args()
	if len(args) == 0 {
		runTUI(e)
		return
	}

	switch args[0] {
	case "list", "l":
		runList(args[1:], e)
	case "get":
		runGet(args[1:], e)
	case "set":
		runSet(args[1:], e)
	case "check":
		runCheck(args[1:], e)
	case "completion", "comp":
		runCompletion(args[1:])
	case "__complete":
		runInternalComplete(args[1:])
	default:
		fatal(unknownError("command", args[0], []string{"list", "get", "set", "check", "completion"}))
	}
}

func runTUI(e *env) {
	err := ui.Run(ui.Options{
		ConfigPath: e.configPath,
		Config:     e.cfg,
		Store:      e.store,
		Localizer:  e.loc,
		Logger:     e.logger,
	})
	if err != nil {
		if errors.Is(err, ui.ErrQuit) {
			return
		}
		fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `netmon: network monitor e-mail report settings

Usage:
  netmon [flags]                       launch interactive TUI
  netmon [flags] list [--json]         print every setting with its summary
  netmon [flags] get KEY               print the stored value of a setting
  netmon [flags] set KEY VALUE...      change a setting
  netmon [flags] check                 validate the e-mail settings
  netmon completion bash|zsh           print shell completion script

Subcommand aliases:  list=l

Environment:
  NETMON_CONFIG, NETMON_PREFS, NETMON_LANG, NETMON_LOG_FILE
  (also read from ./.env)

Flags:
`)
	flag.PrintDefaults()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
