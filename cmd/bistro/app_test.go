package main

import (
	"context"
	"strings"
	"testing"

	"github.com/hammamikhairi/bistro/internal/conversation"
	"github.com/hammamikhairi/bistro/internal/dietary"
	"github.com/hammamikhairi/bistro/internal/domain"
	"github.com/hammamikhairi/bistro/internal/kitchen"
	"github.com/hammamikhairi/bistro/internal/logger"
	"github.com/hammamikhairi/bistro/internal/menu"
)

const testMenu = "../../internal/menu/testdata/dishes.csv"

type fakeConsole struct {
	lines  []string
	urgent []string
	status string
	quit   bool
	input  chan string
	closed chan struct{}
}

func (c *fakeConsole) InputChan() <-chan string  { return c.input }
func (c *fakeConsole) QuitChan() <-chan struct{} { return c.closed }
func (c *fakeConsole) Println(a ...interface{})  {}
func (c *fakeConsole) PrintChat(text string)     { c.lines = append(c.lines, text) }
func (c *fakeConsole) PrintHint(text string)     { c.lines = append(c.lines, text) }
func (c *fakeConsole) PrintUrgent(text string)   { c.urgent = append(c.urgent, text) }
func (c *fakeConsole) PrintBlock(text string)    { c.lines = append(c.lines, text) }
func (c *fakeConsole) SetStatus(text string)     { c.status = text }
func (c *fakeConsole) Quit()                     { c.quit = true }

type fakeNotifier struct {
	notices []string
	urgent  []string
}

func (n *fakeNotifier) Notify(_ context.Context, msg string) error {
	n.notices = append(n.notices, msg)
	return nil
}

func (n *fakeNotifier) NotifyUrgent(_ context.Context, msg string) error {
	n.urgent = append(n.urgent, msg)
	return nil
}

func newTestApp(t *testing.T, menuFile string) (*cliApp, *fakeConsole, *fakeNotifier) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	ui := &fakeConsole{input: make(chan string, 8), closed: make(chan struct{})}
	n := &fakeNotifier{}
	return &cliApp{
		kitchen:  kitchen.New(log),
		loader:   menu.NewLoader(log),
		profiles: dietary.NewProfiles(log),
		parser:   conversation.NewKeywordParser(log),
		notifier: n,
		log:      log,
		ui:       ui,
		menuFile: menuFile,
	}, ui, n
}

func TestRunLoadsMenuAndQuits(t *testing.T) {
	app, ui, n := newTestApp(t, testMenu)

	ui.input <- "release below 60"
	ui.input <- "quit"
	app.run(context.Background())

	if !ui.quit {
		t.Fatal("expected the console to be told to quit")
	}
	// Spring Rolls (20) and Guacamole (10) go.
	if app.kitchen.Size() != 4 {
		t.Fatalf("expected 4 dishes left, got %d", app.kitchen.Size())
	}
	if len(n.notices) != 2 || !strings.Contains(n.notices[0], "Loaded 6 dishes") {
		t.Fatalf("unexpected notices: %q", n.notices)
	}
	if !strings.Contains(n.notices[1], "Released 2") {
		t.Fatalf("unexpected release notice: %q", n.notices[1])
	}
	if !strings.HasPrefix(ui.status, "4 dishes") {
		t.Fatalf("status bar not refreshed: %q", ui.status)
	}
}

func TestRunStopsWhenConsoleCloses(t *testing.T) {
	app, ui, _ := newTestApp(t, testMenu)

	close(ui.closed)
	app.run(context.Background())

	if ui.quit {
		t.Fatal("a closed console should not be told to quit again")
	}
	if app.kitchen.Size() != 6 {
		t.Fatalf("expected the menu loaded before stopping, got %d", app.kitchen.Size())
	}
}

func TestRunMissingMenuLeavesKitchenEmpty(t *testing.T) {
	app, ui, n := newTestApp(t, "testdata/nope.csv")

	ui.input <- "quit"
	app.run(context.Background())

	if app.kitchen.Size() != 0 {
		t.Fatalf("expected empty kitchen, got %d", app.kitchen.Size())
	}
	if len(n.urgent) != 1 || !strings.Contains(n.urgent[0], "Could not load the menu") {
		t.Fatalf("expected an urgent notice, got %q", n.urgent)
	}
	if !strings.HasPrefix(ui.status, "0 dishes") {
		t.Fatalf("unexpected status: %q", ui.status)
	}
}

func TestHandleIntent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      string
		wantSize   int
		wantUrgent bool
		wantLine   string
	}{
		{"tally", "tally french", 6, false, "FRENCH: 1"},
		{"release cuisine", "release cuisine italian", 5, false, ""},
		{"adjust profile", "adjust vegan", 6, false, ""},
		{"adjust unknown", "adjust carnivore", 6, true, ""},
		{"profiles", "profiles", 6, false, "plant_based"},
		{"stats", "stats", 6, false, "capacity unbounded"},
		{"unknown", "flambé", 6, false, "Didn't catch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, ui, _ := newTestApp(t, testMenu)
			loadMenu(ctx, app.loader, app.kitchen, testMenu, app.notifier, app.log)

			intent, err := app.parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			app.handleIntent(ctx, intent)

			if app.kitchen.Size() != tt.wantSize {
				t.Fatalf("expected %d dishes, got %d", tt.wantSize, app.kitchen.Size())
			}
			if (len(ui.urgent) > 0) != tt.wantUrgent {
				t.Fatalf("urgent output = %q, want urgent=%v", ui.urgent, tt.wantUrgent)
			}
			if tt.wantLine != "" && !strings.Contains(strings.Join(ui.lines, "\n"), tt.wantLine) {
				t.Fatalf("expected %q in output, got %q", tt.wantLine, ui.lines)
			}
		})
	}
}

func TestRunBatch(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	k := kitchen.New(log)
	if _, err := menu.NewLoader(log).LoadFile(testMenu, k); err != nil {
		t.Fatalf("load: %v", err)
	}

	var out strings.Builder
	if err := runBatch(&out, k, dietary.NewProfiles(log), "vegetarian"); err != nil {
		t.Fatalf("batch: %v", err)
	}

	got := out.String()
	before := strings.Index(got, "Before adjustment")
	after := strings.Index(got, "After adjustment (vegetarian)")
	report := strings.Index(got, "ELABORATE DISHES:")
	if before < 0 || after < before || report < after {
		t.Fatalf("sections missing or out of order:\n%s", got)
	}
	if strings.Count(got, "Dish Name: ") != 12 {
		t.Fatalf("expected the 6 dishes listed twice:\n%s", got)
	}
}

func TestRunBatchUnknownDiet(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	var out strings.Builder
	err := runBatch(&out, kitchen.New(log), dietary.NewProfiles(log), "carnivore")
	if err == nil {
		t.Fatal("expected an error")
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed, got %q", out.String())
	}
}

func TestStatusLine(t *testing.T) {
	k := kitchen.New(logger.New(logger.LevelOff, nil))
	if got := statusLine(k); got != "0 dishes | avg prep 0 min | 0.00% elaborate" {
		t.Fatalf("unexpected status line %q", got)
	}
	k.Add(&domain.Dessert{Base: domain.Base{Name: "Flan", PrepTime: 30, Cuisine: domain.CuisineMexican}})
	if got := statusLine(k); got != "1 dishes | avg prep 30 min | 0.00% elaborate" {
		t.Fatalf("unexpected status line %q", got)
	}
}
