// Package store caches fetched backend records on disk so the dashboard
// can render without a live connection. One diskv key per resource; a
// sync pass overwrites whole snapshots, never patches them.
package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/agroplanner/fieldops/pkg/task"
)

const (
	keyPlots       = "plots"
	keyWorkers     = "workers"
	keySuggestions = "suggestions"
	taskKeyPrefix  = "tasks/"
)

// Cache is a diskv-backed snapshot store.
type Cache struct {
	d *diskv.Diskv
}

// Open returns a cache rooted at the configured path.
func Open(cfg Config) (*Cache, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Cache{d: diskv.New(diskv.Options{
		BasePath:          cfg.CachePath(),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

// PutPlots stores the plot catalog snapshot.
func (c *Cache) PutPlots(plots []task.Plot) error {
	return c.put(keyPlots, plots)
}

// Plots reads the plot catalog snapshot. A missing snapshot is an error;
// callers decide whether that means "run sync first".
func (c *Cache) Plots() ([]task.Plot, error) {
	var out []task.Plot
	if err := c.get(keyPlots, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PutWorkers stores the worker catalog snapshot.
func (c *Cache) PutWorkers(workers []task.Worker) error {
	return c.put(keyWorkers, workers)
}

// Workers reads the worker catalog snapshot.
func (c *Cache) Workers() ([]task.Worker, error) {
	var out []task.Worker
	if err := c.get(keyWorkers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PutTasks stores one month's task snapshot under its YYYY-MM key.
func (c *Cache) PutTasks(monthKey string, tasks []task.Task) error {
	return c.put(taskKeyPrefix+monthKey, tasks)
}

// Tasks reads one month's task snapshot.
func (c *Cache) Tasks(monthKey string) ([]task.Task, error) {
	var out []task.Task
	if err := c.get(taskKeyPrefix+monthKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TaskMonths lists the YYYY-MM keys that have a cached task snapshot, in
// lexicographic (chronological) order.
func (c *Cache) TaskMonths() []string {
	var months []string
	for key := range c.d.KeysPrefix(taskKeyPrefix, nil) {
		months = append(months, strings.TrimPrefix(key, taskKeyPrefix))
	}
	sort.Strings(months)
	return months
}

// PutSuggestions stores the suggestion snapshot.
func (c *Cache) PutSuggestions(suggestions []task.Suggestion) error {
	return c.put(keySuggestions, suggestions)
}

// Suggestions reads the suggestion snapshot.
func (c *Cache) Suggestions() ([]task.Suggestion, error) {
	var out []task.Suggestion
	if err := c.get(keySuggestions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Cache) put(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encoding %s: %w", key, err)
	}
	if err := c.d.Write(key, data); err != nil {
		return fmt.Errorf("store: writing %s: %w", key, err)
	}
	return nil
}

func (c *Cache) get(key string, out interface{}) error {
	data, err := c.d.Read(key)
	if err != nil {
		return fmt.Errorf("store: reading %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("store: decoding %s: %w", key, err)
	}
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1] + ".json",
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	name := strings.TrimSuffix(pk.FileName, ".json")
	if len(pk.Path) == 0 {
		return name
	}
	return strings.Join(pk.Path, "/") + "/" + name
}
