package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProgramDirectory returns the directory holding the running executable.
func ProgramDirectory() (string, error) {
	executablePath, executableError := os.Executable()
	if executableError != nil {
		return "", fmt.Errorf("locate executable: %w", executableError)
	}
	if resolvedPath, resolveError := filepath.EvalSymlinks(executablePath); resolveError == nil {
		executablePath = resolvedPath
	}
	return filepath.Dir(executablePath), nil
}
