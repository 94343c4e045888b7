package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/bistro/internal/dietary"
	"github.com/hammamikhairi/bistro/internal/display"
	"github.com/hammamikhairi/bistro/internal/domain"
	"github.com/hammamikhairi/bistro/internal/kitchen"
	"github.com/hammamikhairi/bistro/internal/logger"
	"github.com/hammamikhairi/bistro/internal/menu"
	"github.com/hammamikhairi/bistro/internal/storage"
)

// console is the part of display.UI the app writes to.
type console interface {
	InputChan() <-chan string
	QuitChan() <-chan struct{}
	Println(a ...interface{})
	PrintChat(text string)
	PrintHint(text string)
	PrintUrgent(text string)
	PrintBlock(text string)
	SetStatus(text string)
	Quit()
}

var _ console = (*display.UI)(nil)

type cliApp struct {
	kitchen  *kitchen.Kitchen
	loader   *menu.Loader
	profiles *dietary.Profiles
	parser   domain.IntentParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       console
	menuFile string
	done     bool
}

func (a *cliApp) run(ctx context.Context) {
	loadMenu(ctx, a.loader, a.kitchen, a.menuFile, a.notifier, a.log)
	a.refreshStatus()
	a.ui.PrintChat("Type 'menu' to see the dishes or 'help' for commands.")

	uiCh := a.ui.InputChan()
	quitCh := a.ui.QuitChan()
	for !a.done {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case <-quitCh:
			a.log.Debug("console closed, stopping")
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		a.handleIntent(ctx, intent)
	}
}

func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) {
	switch intent.Type {
	case domain.IntentShowMenu:
		a.showMenu()
	case domain.IntentReport:
		a.ui.PrintBlock(display.RenderReport(a.kitchen.Report()))
	case domain.IntentStats:
		a.showStats()
	case domain.IntentTally:
		a.tally(intent.Payload)
	case domain.IntentReleaseBelow:
		a.releaseBelow(ctx, intent.Payload)
	case domain.IntentReleaseCuisine:
		a.releaseCuisine(ctx, intent.Payload)
	case domain.IntentAdjust:
		a.adjust(ctx, intent.Payload)
	case domain.IntentProfiles:
		a.showProfiles()
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentQuit:
		a.ui.PrintChat("Kitchen closed. Bye!")
		a.done = true
		a.ui.Quit()
	default:
		a.ui.PrintHint(fmt.Sprintf("Didn't catch %q. Type 'help' for commands.", intent.Payload))
	}
}

// refreshStatus pushes the aggregates to the status bar. The UI never
// reads the kitchen itself.
func (a *cliApp) refreshStatus() {
	a.ui.SetStatus(statusLine(a.kitchen))
}

func statusLine(k *kitchen.Kitchen) string {
	return fmt.Sprintf("%d dishes | avg prep %d min | %.2f%% elaborate",
		k.Size(), k.AveragePrepTime(), k.ElaboratePercentage())
}

func (a *cliApp) showMenu() {
	a.ui.PrintBlock(display.RenderMenu(a.kitchen.Dishes()))
}

func (a *cliApp) showStats() {
	s := a.kitchen.Stats()
	capacity := "unbounded"
	if s.Capacity != storage.Unbounded {
		capacity = strconv.Itoa(s.Capacity)
	}
	a.ui.PrintChat(fmt.Sprintf("Dishes:          %d (capacity %s)", s.Dishes, capacity))
	a.ui.PrintChat(fmt.Sprintf("Total prep time: %d minutes", s.PrepTimeSum))
	a.ui.PrintChat(fmt.Sprintf("Average prep:    %d minutes", s.AveragePrepTime))
	a.ui.PrintChat(fmt.Sprintf("Elaborate:       %d (%.2f%%)", s.ElaborateCount, s.ElaboratePercentage))
}

func (a *cliApp) tally(cuisine string) {
	a.ui.PrintChat(fmt.Sprintf("%s: %d", cuisine, a.kitchen.Tally(cuisine)))
}

func (a *cliApp) releaseBelow(ctx context.Context, payload string) {
	threshold, err := strconv.Atoi(payload)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Not a number of minutes: %q", payload))
		return
	}
	n := a.kitchen.ReleaseBelowPrepTime(threshold)
	_ = a.notifier.Notify(ctx, fmt.Sprintf("Released %d dish(es) under %d minutes.", n, threshold))
	a.refreshStatus()
}

func (a *cliApp) releaseCuisine(ctx context.Context, cuisine string) {
	n := a.kitchen.ReleaseByCuisine(cuisine)
	_ = a.notifier.Notify(ctx, fmt.Sprintf("Released %d %s dish(es).", n, cuisine))
	a.refreshStatus()
}

func (a *cliApp) adjust(ctx context.Context, payload string) {
	req, err := a.profiles.Resolve(payload)
	if err != nil {
		a.ui.PrintUrgent(err.Error())
		return
	}
	a.kitchen.ApplyDietaryAdjustment(req)
	_ = a.notifier.Notify(ctx, fmt.Sprintf("Applied %s to %d dish(es).", req, a.kitchen.Size()))
	a.refreshStatus()
}

func (a *cliApp) showProfiles() {
	for _, name := range a.profiles.Names() {
		req, _ := a.profiles.Get(name)
		a.ui.PrintChat(fmt.Sprintf("%-12s %s", name, req))
	}
}

func (a *cliApp) showHelp() {
	a.ui.PrintChat("Commands:")
	a.ui.PrintHint("menu / list                 Show every dish")
	a.ui.PrintHint("report                      Cuisine tallies, average prep, elaborate share")
	a.ui.PrintHint("stats                       Kitchen totals")
	a.ui.PrintHint("tally <CUISINE>             Count dishes of one cuisine")
	a.ui.PrintHint("release below <MINUTES>     Remove dishes quicker than MINUTES")
	a.ui.PrintHint("release cuisine <CUISINE>   Remove every dish of a cuisine")
	a.ui.PrintHint("adjust <profile|flags>      Apply a diet, e.g. 'adjust vegan' or 'adjust nut_free,low_sugar'")
	a.ui.PrintHint("profiles                    List dietary profiles")
	a.ui.PrintHint("help                        Show this message")
	a.ui.PrintHint("quit / exit                 Close the kitchen")
}
