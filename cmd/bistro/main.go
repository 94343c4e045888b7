// Bistro loads a CSV menu into an in-memory kitchen, applies dietary
// adjustments and reports on the result.
//
// Usage:
//
//	bistro [-menu menu.csv] [-diet everything] [-interactive] [-verbose] [-quiet]
package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/bistro/internal/config"
	"github.com/hammamikhairi/bistro/internal/conversation"
	"github.com/hammamikhairi/bistro/internal/dietary"
	"github.com/hammamikhairi/bistro/internal/display"
	"github.com/hammamikhairi/bistro/internal/domain"
	"github.com/hammamikhairi/bistro/internal/kitchen"
	"github.com/hammamikhairi/bistro/internal/logger"
	"github.com/hammamikhairi/bistro/internal/menu"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	logOut, closeLog := openLog(cfg.LogFile)
	defer closeLog()
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.LogLevel, logOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	k := kitchen.New(log, kitchen.WithCapacity(cfg.Capacity))
	loader := menu.NewLoader(log, menu.WithSkipMalformed(cfg.SkipMalformed))
	profiles := dietary.NewProfiles(log)
	if cfg.ProfilesFile != "" {
		if err := profiles.LoadFile(cfg.ProfilesFile); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
	}

	if !cfg.Interactive {
		notifier := conversation.NewCLINotifier(log, nil)
		loadMenu(ctx, loader, k, cfg.MenuFile, notifier, log)
		if err := runBatch(os.Stdout, k, profiles, cfg.Diet); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		return
	}

	ui := display.NewUI()
	app := &cliApp{
		kitchen:  k,
		loader:   loader,
		profiles: profiles,
		parser:   conversation.NewKeywordParser(log),
		notifier: conversation.NewCLINotifier(log, ui.Printf),
		log:      log,
		ui:       ui,
		menuFile: cfg.MenuFile,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine. It is the only goroutine
	// that touches the kitchen.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal. Blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

// openLog returns the log destination. Logs go to a file by default so
// the console stays clean.
func openLog(path string) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

// loadMenu fills the kitchen from path. A failed load is reported to the
// operator and leaves the kitchen as it was.
func loadMenu(ctx context.Context, loader *menu.Loader, k *kitchen.Kitchen, path string, notifier domain.Notifier, log *logger.Logger) {
	res, err := loader.LoadFile(path, k)
	if err != nil {
		log.Error("menu load failed: %v", err)
		_ = notifier.NotifyUrgent(ctx, fmt.Sprintf("Could not load the menu: %v", err))
		return
	}
	log.Info("menu loaded from %s: %+v", path, res)

	msg := fmt.Sprintf("Loaded %d dishes from %s", res.Added, path)
	if res.Duplicates > 0 {
		msg += fmt.Sprintf(", %d duplicate(s) rejected", res.Duplicates)
	}
	if res.Unknown > 0 {
		msg += fmt.Sprintf(", %d unknown type(s) skipped", res.Unknown)
	}
	if res.Malformed > 0 {
		msg += fmt.Sprintf(", %d malformed record(s) skipped", res.Malformed)
	}
	_ = notifier.Notify(ctx, msg+".")
}

// runBatch displays the menu, applies the diet, displays it again and
// prints the report.
func runBatch(w io.Writer, k *kitchen.Kitchen, profiles *dietary.Profiles, diet string) error {
	req, err := profiles.Resolve(diet)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Before adjustment")
	fmt.Fprint(w, display.FormatMenu(k.Dishes()))

	k.ApplyDietaryAdjustment(req)

	fmt.Fprintf(w, "\nAfter adjustment (%s)\n", req)
	fmt.Fprint(w, display.FormatMenu(k.Dishes()))

	fmt.Fprintln(w)
	fmt.Fprint(w, k.Report())
	return nil
}
