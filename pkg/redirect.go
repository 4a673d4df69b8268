package pkg

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Redirector owns the two output sinks for one run. Both start on the
// real standard streams; a successful setup swaps one for an opened
// file and every later write goes there instead.
type Redirector struct {
	Out io.Writer
	Err io.Writer

	files []*os.File
}

func NewRedirector() *Redirector {
	return &Redirector{
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// SetupErrors points the error sink at path, appending. The file is
// kept as-is across runs. Diagnostics from logrus follow the sink.
func (r *Redirector) SetupErrors(path string) error {
	if path == "" {
		return nil
	}
	if err := CheckWritable(path); err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	r.Err = file
	r.files = append(r.files, file)
	logrus.SetOutput(r.Err)
	return nil
}

// SetupOutput points the output sink at path. The file is emptied
// once per run, then appended to for the rest of it.
func (r *Redirector) SetupOutput(path string) error {
	if path == "" {
		return nil
	}
	if err := CheckWritable(path); err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	r.Out = file
	r.files = append(r.files, file)
	logrus.WithField("log", path).Debugln("output redirected")
	return nil
}

func (r *Redirector) Close() {
	for _, file := range r.files {
		file.Close()
	}
	r.files = nil
}
