package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// ContainsString returns true if targetString is one of sliceOfStrings
func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// NormalizeToken trims and lowercases a token typed by the user or read from a config file
func NormalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
