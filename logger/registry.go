package logger

import (
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/testlog/core"
	"github.com/philipp01105/testlog/formatter"
	"github.com/philipp01105/testlog/handler"
	"github.com/philipp01105/testlog/handler/consolehandler"
	"github.com/philipp01105/testlog/handler/filehandler"
)

// rootName is used for loggers requested without a name.
const rootName = "root"

// Destination selects where a new logger writes.
type Destination struct {
	// Path of the log file; empty means the console.
	Path string
}

// Console returns the console destination.
func Console() Destination {
	return Destination{}
}

// File returns a destination appending to the file at path.
func File(path string) Destination {
	return Destination{Path: path}
}

// IsConsole reports whether d is the console.
func (d Destination) IsConsole() bool {
	return d.Path == ""
}

func (d Destination) String() string {
	if d.IsConsole() {
		return "console"
	}
	return d.Path
}

// Registry hands out one Logger per name. The first Get for a name
// decides its destination; later calls return the same Logger no matter
// which destination they ask for.
type Registry struct {
	cfg     Config
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry
func NewRegistry(cfg Config) *Registry {
	applyConfigDefaults(&cfg)
	return &Registry{
		cfg:     cfg,
		loggers: make(map[string]*Logger),
	}
}

// Get returns the logger called name, creating it on first use with its
// own AlignedFormatter and a handler for dest. If the destination cannot
// be opened the error is returned and nothing is cached.
func (r *Registry) Get(name string, dest Destination) (*Logger, error) {
	if name == "" {
		name = rootName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l, nil
	}

	h, err := r.newHandler(dest)
	if err != nil {
		return nil, err
	}
	l := NewBuilder().
		WithName(name).
		WithHandler(h).
		WithLevel(r.cfg.Level).
		Build()
	r.loggers[name] = l
	return l, nil
}

func (r *Registry) newHandler(dest Destination) (handler.Handler, error) {
	f := formatter.NewAlignedFormatter(formatter.AlignedConfig{})
	if dest.IsConsole() {
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    r.cfg.Writer,
			Formatter: f,
		}), nil
	}
	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Filename:  dest.Path,
		Formatter: f,
	})
	if err != nil {
		return nil, err
	}
	return fh, nil
}

// Lookup returns the logger called name if it has been created.
func (r *Registry) Lookup(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Names returns the names of all created loggers, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summary adds up the statistics of every logger's handler.
func (r *Registry) Summary() handler.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	sum := handler.Snapshot{Severities: make(map[core.Level]uint64)}
	for _, l := range r.loggers {
		sp, ok := l.handler.(handler.StatsProvider)
		if !ok {
			continue
		}
		s := sp.Stats()
		sum.ProcessedTotal += s.ProcessedTotal
		sum.FailedTotal += s.FailedTotal
		for lvl, n := range s.Severities {
			sum.Severities[lvl] += n
		}
	}
	return sum
}

// Close closes every logger's handler and forgets all loggers.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	for name, l := range r.loggers {
		err = multierr.Append(err, l.Close())
		delete(r.loggers, name)
	}
	return err
}
