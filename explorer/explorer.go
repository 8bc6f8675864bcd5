package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/selection"
	"bikeshare/explorer/config"
	"bikeshare/pipeline"
	"bikeshare/prompt"
	"bikeshare/stations"
	"bikeshare/stats"
)

const (
	explorerComponent = "explorer"
	restartQuestion   = "\nWould you like to restart? Enter yes or no.\n"
)

type state int

const (
	stateRunning state = iota
	stateDone
)

// Explorer runs the interactive loop: every cycle asks for the filters, prints the reports of the
// matching trips and asks whether to start again
type Explorer struct {
	config    *config.ExplorerConfig
	selector  *prompt.Selector
	out       io.Writer
	publisher communication.Publisher
	state     state
}

func NewExplorer(explorerConfig *config.ExplorerConfig, in io.Reader, out io.Writer, publisher communication.Publisher) *Explorer {
	return &Explorer{
		config:    explorerConfig,
		selector:  prompt.NewSelector(in, out),
		out:       out,
		publisher: publisher,
		state:     stateRunning,
	}
}

// Run executes cycles until the user declines to restart. A prompt.ErrExitRequested is returned
// as soon as the user types exit.
func (e *Explorer) Run(ctx context.Context) error {
	for e.state == stateRunning {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := e.runCycle(ctx)
		if err != nil {
			return err
		}

		restart, err := e.selector.Confirm(restartQuestion)
		if err != nil {
			return err
		}
		if !restart {
			e.state = stateDone
		}
	}

	log.Debug(getLogMessage("Run", "user declined to restart", nil))
	return nil
}

func (e *Explorer) runCycle(ctx context.Context) error {
	runID := uuid.NewString()
	filters, err := e.selector.CollectFilters(e.config.Datasets.CityNames())
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, "Loading data")
	fmt.Fprintf(e.out, "Filter by cities: %s\n", formatSelection(filters.Cities))
	fmt.Fprintf(e.out, "Filter by months: %s\n", formatSelection(filters.Months))
	fmt.Fprintf(e.out, "Filter by days: %s\n", formatSelection(filters.Days))
	fmt.Fprintln(e.out, stats.Separator())

	table, err := pipeline.Load(e.config.Datasets, filters.Cities.Values)
	if err != nil {
		log.Error(getLogMessage("runCycle", "error loading datasets", err))
		return err
	}

	table, err = pipeline.Filter(pipeline.Derive(table), filters.Months, filters.Days)
	if err != nil {
		return err
	}
	log.Infof("[component: %s][run: %s] %d trips match the selected filters", explorerComponent, runID, table.Len())

	reporter := stats.NewReporter(e.out, e.loadCatalog(filters.Cities.Values))
	rep := report.NewReport(runID, filters, table.Len())
	reporter.Run(table, rep)

	err = e.publisher.Publish(ctx, rep)
	if err != nil {
		log.Warn(getLogMessage("runCycle", "report could not be published", err))
	}
	return nil
}

// loadCatalog reads the stations files of the selected cities. It returns nil if no station could
// be loaded so that the reports skip the route distance.
func (e *Explorer) loadCatalog(cities []string) stats.RouteMeasurer {
	catalog := stations.NewCatalog()
	for _, city := range cities {
		dataset, ok := e.config.Datasets.Find(city)
		if !ok || dataset.StationsFile == "" {
			continue
		}

		err := catalog.LoadFile(e.config.Datasets.GetStationsFilePath(dataset), city, e.config.StationsColumns)
		if err != nil {
			log.Warn(getLogMessage("loadCatalog", fmt.Sprintf("stations of %s could not be loaded", city), err))
		}
	}

	if catalog.Len() == 0 {
		return nil
	}
	return catalog
}

// formatSelection prints the selected values as a quoted list, e.g. ['june', 'may']
func formatSelection(sel selection.Selection) string {
	quoted := make([]string, 0, len(sel.Values))
	for _, value := range sel.Values {
		quoted = append(quoted, "'"+value+"'")
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", explorerComponent, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", explorerComponent, method, message)
}
