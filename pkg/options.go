package pkg

import (
	sets "github.com/deckarep/golang-set"
)

const (
	ActionUsers     = "users"
	ActionProcesses = "processes"
)

// ActionSet holds the queries requested on the command line.
// Repeating a flag adds the same action once, so a duplicated
// -u or -p still yields a single run's worth of output.
type ActionSet struct {
	internal sets.Set
}

func NewActionSet() *ActionSet {
	return &ActionSet{
		internal: sets.NewSet(),
	}
}

func (set *ActionSet) Add(action string) bool {
	return set.internal.Add(action)
}

func (set *ActionSet) Has(action string) bool {
	return set.internal.Contains(action)
}

func (set *ActionSet) Empty() bool {
	return set.internal.Cardinality() == 0
}

// Options is built once from the argument list and not mutated after
// parsing. A non-empty path means the matching redirection is active.
type Options struct {
	Actions   *ActionSet
	LogPath   string
	ErrorPath string
}

func NewOptions() *Options {
	return &Options{
		Actions: NewActionSet(),
	}
}
