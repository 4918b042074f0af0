package commands

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tickerpick/internal/catalog"
	"tickerpick/internal/config"
	"tickerpick/internal/eventbus"
	"tickerpick/internal/logger"
	"tickerpick/internal/ui"
)

// app holds what every command needs once flags and config are resolved
type app struct {
	configPath  string
	catalogPath string
	limit       int

	configSvc config.ConfigService
	cfg       *config.Config
	log       *zap.Logger
	bus       eventbus.EventBus
	catalog   *catalog.Catalog
}

// Execute runs the tickerpick command line
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tickerpick",
		Short: "Pick a ticker symbol by typing part of its symbol or company name",
		Long: "tickerpick filters a ticker catalog as you type and prints the symbol you pick.\n" +
			"The picker draws on stderr, so `sym=$(tickerpick)` works.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPicker(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.config/tickerpick/config.toml)")
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "ticker catalog file, .json or .toml (default embedded)")
	root.PersistentFlags().IntVarP(&a.limit, "limit", "n", 10, "maximum number of results per query")

	root.AddCommand(searchCmd(a), lookupCmd(a), listCmd(a), configCmd(a))
	return root
}

// setup loads config, logger, bus and catalog. Commands annotated with
// skipCatalog only get the config service.
func (a *app) setup(cmd *cobra.Command) error {
	a.configSvc = config.NewConfigService(a.configPath)
	if cmd.Annotations[skipCatalog] == "true" {
		return nil
	}

	cfg, err := a.configSvc.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = a.catalogPath
	}
	if flags.Changed("limit") {
		cfg.ResultLimit = a.limit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logger.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}
	a.bus = eventbus.New(a.log)
	subscribeLogging(a.bus, a.log)

	a.catalog, err = catalog.Load(cfg.CatalogPath)
	if err != nil {
		a.log.Error("failed to load catalog", zap.Error(err))
		return err
	}
	a.bus.Publish(eventbus.CatalogLoadedEvent{Source: a.catalog.Source(), Records: a.catalog.Len()})
	return nil
}

// subscribeLogging records the picker's domain events in the log file
func subscribeLogging(bus eventbus.EventBus, log *zap.Logger) {
	bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.CatalogLoadedEvent)
		log.Info("catalog loaded", zap.String("source", ev.Source), zap.Int("records", ev.Records))
	})
	bus.Subscribe(eventbus.EventResultsRendered, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ResultsRenderedEvent)
		log.Debug("results rendered", zap.String("query", ev.Query), zap.Int("count", ev.Count))
	})
	bus.Subscribe(eventbus.EventSymbolSelected, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SymbolSelectedEvent)
		log.Info("symbol selected", zap.String("symbol", ev.Symbol), zap.String("name", ev.Name))
	})
}

func (a *app) runPicker(cmd *cobra.Command) error {
	pager := ui.NewOvPager(nil)
	model, err := ui.NewModel(a.catalog, a.cfg, a.bus, a.log, pager)
	if err != nil {
		// Missing widgets mean the picker cannot work at all
		a.log.Error("failed to build picker", zap.Error(err))
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	pager.SetProgram(p)

	a.log.Info("starting picker", zap.Int("limit", a.cfg.ResultLimit))
	if _, err := p.Run(); err != nil {
		a.log.Error("error running program", zap.Error(err))
		return errors.Wrap(err, "error running program")
	}

	if opt, ok := model.Selected(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), strings.ToUpper(opt.Value))
	}
	return nil
}
