package modules

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func createTree(t *testing.T, root string, relativeFiles ...string) {
	t.Helper()
	for _, relativeFile := range relativeFiles {
		fullPath := filepath.Join(root, filepath.FromSlash(relativeFile))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(fullPath), err)
		}
		if err := os.WriteFile(fullPath, []byte("x"), 0o600); err != nil {
			t.Fatalf("write %s: %v", fullPath, err)
		}
	}
}

func TestDirectoryNamesReturnsCopy(t *testing.T) {
	expected := []string{"board", "core", "cpu", "drivers", "pkg", "sys"}
	names := DirectoryNames()
	if !reflect.DeepEqual(names, expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	names[0] = "mutated"
	if DirectoryNames()[0] != "board" {
		t.Fatalf("DirectoryNames exposed its backing array")
	}
}

func TestWalkCountsPresentTargetsAndSkipsMissing(t *testing.T) {
	baseDirectory := t.TempDir()
	createTree(t, baseDirectory,
		"core/include/irq.h",
		"core/sched.c",
		"drivers/ds18/ds18.c",
		"drivers/include/ds18.h",
	)

	summary, err := Walk(context.Background(), baseDirectory, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(summary.Targets) != len(DirectoryNames()) {
		t.Fatalf("expected %d targets, got %d", len(DirectoryNames()), len(summary.Targets))
	}

	expected := map[string]TargetSummary{
		"board":   {Name: "board", Root: baseDirectory + "/board"},
		"core":    {Name: "core", Root: baseDirectory + "/core", Present: true, Directories: 2, Files: 2},
		"cpu":     {Name: "cpu", Root: baseDirectory + "/cpu"},
		"drivers": {Name: "drivers", Root: baseDirectory + "/drivers", Present: true, Directories: 3, Files: 2},
		"pkg":     {Name: "pkg", Root: baseDirectory + "/pkg"},
		"sys":     {Name: "sys", Root: baseDirectory + "/sys"},
	}
	for index, target := range summary.Targets {
		if target.Name != DirectoryNames()[index] {
			t.Fatalf("target %d is %s, want %s", index, target.Name, DirectoryNames()[index])
		}
		if !reflect.DeepEqual(target, expected[target.Name]) {
			t.Fatalf("unexpected summary for %s: got %+v want %+v", target.Name, target, expected[target.Name])
		}
	}
}

func TestWalkMissingBaseDirectorySucceeds(t *testing.T) {
	summary, err := Walk(context.Background(), filepath.Join(t.TempDir(), "absent"), nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	for _, target := range summary.Targets {
		if target.Present || target.Directories != 0 || target.Files != 0 {
			t.Fatalf("expected empty summary for %s, got %+v", target.Name, target)
		}
	}
}

func TestWalkIgnoresTargetThatIsAFile(t *testing.T) {
	baseDirectory := t.TempDir()
	createTree(t, baseDirectory, "sys")

	summary, err := Walk(context.Background(), baseDirectory, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	last := summary.Targets[len(summary.Targets)-1]
	if last.Name != "sys" || last.Present || last.Files != 0 {
		t.Fatalf("expected sys file to be ignored, got %+v", last)
	}
}

func TestWalkSkipsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	baseDirectory := t.TempDir()
	createTree(t, baseDirectory, "pkg/open/a.c", "pkg/locked/b.c")
	lockedDirectory := filepath.Join(baseDirectory, "pkg", "locked")
	if err := os.Chmod(lockedDirectory, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(lockedDirectory, 0o755) })

	summary, err := Walk(context.Background(), baseDirectory, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	pkgSummary := summary.Targets[4]
	if !pkgSummary.Present || pkgSummary.Skipped != 1 || pkgSummary.Files != 1 {
		t.Fatalf("unexpected pkg summary: %+v", pkgSummary)
	}
}

func TestWalkHonorsCancellation(t *testing.T) {
	baseDirectory := t.TempDir()
	createTree(t, baseDirectory, "cpu/native/irq.c")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Walk(ctx, baseDirectory, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
