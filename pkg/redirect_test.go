package pkg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupOutputTruncatesBetweenRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	first := NewRedirector()
	if err := first.SetupOutput(path); err != nil {
		t.Fatal(err)
	}
	fmt.Fprintln(first.Out, "first run line one")
	fmt.Fprintln(first.Out, "first run line two")
	first.Close()

	second := NewRedirector()
	if err := second.SetupOutput(path); err != nil {
		t.Fatal(err)
	}
	fmt.Fprintln(second.Out, "second run")
	second.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second run\n" {
		t.Errorf("want only second run's output, got %q", data)
	}
}

func TestSetupErrorsAppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "err.log")

	for i := 0; i < 2; i++ {
		r := NewRedirector()
		if err := r.SetupErrors(path); err != nil {
			t.Fatal(err)
		}
		fmt.Fprintf(r.Err, "run %d\n", i)
		r.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "run 0\nrun 1\n" {
		t.Errorf("want both runs' errors, got %q", data)
	}
}

func TestSetupOutputMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.log")

	r := NewRedirector()
	defer r.Close()
	err := r.SetupOutput(path)
	if !errors.Is(err, ErrNoParentDir) {
		t.Fatalf("want ErrNoParentDir, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("failed setup must not create the file")
	}
	if r.Out != os.Stdout {
		t.Error("output sink must stay on stdout after failed setup")
	}
}

func TestSetupSkippedWhenNoPath(t *testing.T) {
	r := NewRedirector()
	defer r.Close()
	if err := r.SetupErrors(""); err != nil {
		t.Fatal(err)
	}
	if err := r.SetupOutput(""); err != nil {
		t.Fatal(err)
	}
	if r.Out != os.Stdout || r.Err != os.Stderr {
		t.Error("empty paths must leave the standard streams in place")
	}
}
