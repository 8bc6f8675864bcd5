package main

import (
	"context"
	"errors"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/explorer/config"
	"bikeshare/prompt"
	"bikeshare/utils"
)

const (
	exitCodeOK          = 0
	exitCodeError       = 1
	exitCodeExitCommand = 3
	exitCodeInterrupted = 130
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetOutput(os.Stderr)
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Errorf("error loading explorer config: %s", err.Error())
		return exitCodeError
	}

	if err := InitLogger(explorerConfig.LogLevel); err != nil {
		log.Errorf("error initializing logger: %s", err.Error())
		return exitCodeError
	}

	publisher, err := communication.NewPublisher(explorerConfig.Publisher)
	if err != nil {
		log.Errorf("error creating report publisher: %s", err.Error())
		return exitCodeError
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnf("error closing report publisher: %s", err.Error())
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChannel := utils.GetSignalChannel()
	go func() {
		sig := <-signalChannel
		log.Infof("received signal %s, exiting", sig)
		cancel()
		_ = publisher.Close()
		os.Exit(exitCodeInterrupted)
	}()

	explorer := NewExplorer(explorerConfig, os.Stdin, os.Stdout, publisher)
	err = explorer.Run(ctx)
	if err != nil && !errors.Is(err, prompt.ErrExitRequested) {
		log.Errorf("explorer finished with error: %s", err.Error())
	}
	return getExitCode(err)
}

// getExitCode maps the result of Explorer.Run to the process exit code
func getExitCode(err error) int {
	switch {
	case err == nil:
		return exitCodeOK
	case errors.Is(err, prompt.ErrExitRequested):
		return exitCodeExitCommand
	case errors.Is(err, context.Canceled):
		return exitCodeInterrupted
	default:
		return exitCodeError
	}
}
