package router

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Loader holds the active rule set, read from a YAML file and optionally reloaded
// when the file changes. Without a path it serves DefaultRuleSet.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *RuleSet
	onChange []func(*RuleSet)
}

func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	if path == "" {
		l.current = DefaultRuleSet()
		return l, nil
	}

	set, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = set
	return l, nil
}

// Rules returns the active rule set.
func (l *Loader) Rules() *RuleSet {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked after every successful reload.
func (l *Loader) OnChange(fn func(*RuleSet)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file. On error the previous rule set stays active.
func (l *Loader) Reload() (*RuleSet, error) {
	if l.path == "" {
		return l.Rules(), nil
	}
	set, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = set
	callbacks := make([]func(*RuleSet), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(set)
	}
	return set, nil
}

// Watch reloads the rule file on writes until stop is called.
func (l *Loader) Watch() (stop func(), err error) {
	if l.path == "" {
		return func() {}, nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("rules watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("rules watcher add %s: %w", l.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						logrus.Errorf("rules reload failed, keeping previous rules: %v", err)
						continue
					}
					logrus.Infof("rules reloaded from %s", l.path)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logrus.Warnf("rules watcher error: %v", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}

func (l *Loader) load() (*RuleSet, error) {
	return LoadFile(l.path)
}

// LoadFile reads and validates a rule file.
func LoadFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	var set RuleSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if err := Validate(&set); err != nil {
		return nil, err
	}
	return &set, nil
}
