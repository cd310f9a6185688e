package config

import (
	"os"
	"testing"
)

// changeWorkingDirectory switches the process working directory for the duration of the test,
// restoring the previous directory during cleanup (equivalent to testing.T.Chdir on Go 1.24+).
func changeWorkingDirectory(testingHandle *testing.T, directory string) {
	testingHandle.Helper()
	previousDirectory, getwdError := os.Getwd()
	if getwdError != nil {
		testingHandle.Fatalf("getwd: %v", getwdError)
	}
	if chdirError := os.Chdir(directory); chdirError != nil {
		testingHandle.Fatalf("chdir %s: %v", directory, chdirError)
	}
	testingHandle.Cleanup(func() {
		if restoreError := os.Chdir(previousDirectory); restoreError != nil {
			testingHandle.Errorf("restore working directory %s: %v", previousDirectory, restoreError)
		}
	})
}
