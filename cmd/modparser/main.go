package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/modparser/internal/cli"
	"github.com/temirov/modparser/internal/utils"
)

// main is the entry point for the modparser command.
func main() {
	logLevel := zap.NewAtomicLevel()
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(logLevel)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance, logLevel); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
