package pkg

import (
	"fmt"
	"io"
)

// Dispatcher runs one invocation: establish error redirection, then
// output redirection, then the requested queries. Redirection setup is
// all-or-nothing; any failure aborts before a query writes anything.
type Dispatcher struct {
	opts       *Options
	redirector *Redirector
	passwd     string
}

func NewDispatcher(opts *Options) *Dispatcher {
	return &Dispatcher{
		opts:       opts,
		redirector: NewRedirector(),
		passwd:     DefaultPasswdPath,
	}
}

// Out and Err expose the active sinks, so the caller can report
// failures to whichever sink was live when the failure happened.
func (d *Dispatcher) Out() io.Writer { return d.redirector.Out }
func (d *Dispatcher) Err() io.Writer { return d.redirector.Err }

func (d *Dispatcher) Close() {
	d.redirector.Close()
}

// Setup commits the redirections requested by the options. The error
// sink comes first so a failing log setup is already captured by the
// error file when both are requested.
func (d *Dispatcher) Setup() error {
	if err := d.redirector.SetupErrors(d.opts.ErrorPath); err != nil {
		return err
	}
	if err := d.redirector.SetupOutput(d.opts.LogPath); err != nil {
		return err
	}
	return nil
}

// Run executes the requested queries against the active output sink,
// users first. Empty enumerations emit zero lines and succeed.
func (d *Dispatcher) Run() error {
	if d.opts.Actions.Has(ActionUsers) {
		users, err := ReadUsers(d.passwd)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		WriteUsers(d.redirector.Out, users)
	}
	if d.opts.Actions.Has(ActionProcesses) {
		records, err := TakeProcesses()
		if err != nil {
			return fmt.Errorf("list processes: %w", err)
		}
		WriteProcesses(d.redirector.Out, records)
	}
	return nil
}
