package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence is the key-value contract every dashboard store works
// against. Keys are the document names from the storage schema
// (financialData, transactions, calendarDatabase, ...), values are
// JSON-serialized records. Failed reads surface as missing data and
// failed writes are logged; callers keep going with whatever state
// they have.
type Persistence interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Remove(key string) error

	// Load unmarshals the document under key into v. It returns false
	// when the document is absent or unreadable, leaving v untouched.
	Load(key string, v interface{}) bool
	// Save marshals v and writes it under key.
	Save(key string, v interface{}) error

	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(key string) ([]byte, bool) {
	val, err := p.d.Read(key)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", key, err)
		}
		return nil, false
	}
	return val, true
}

func (p *persistence) Set(key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	if err := p.d.Write(key, value); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", key, err)
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Remove(key string) error {
	if err := p.d.Erase(key); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Load(key string, v interface{}) bool {
	val, ok := p.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(val, v); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode %s: %v\n", key, err)
		return false
	}
	return true
}

func (p *persistence) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return p.Set(key, data)
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
