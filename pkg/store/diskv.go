package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog"

	"tableflip.dev/shoplist/pkg/item"
)

// Persistence defines the persistence contract for the three records.
// Loads fall back to defaults instead of failing.
type Persistence interface {
	LoadInventory() []item.InventoryItem
	SaveInventory(items []item.InventoryItem) error
	LoadShoppingList() []item.ShoppingListItem
	SaveShoppingList(items []item.ShoppingListItem) error
	LoadCollapsed() item.CollapsedState
	SaveCollapsed(state item.CollapsedState) error
	Watch(ctx context.Context) (<-chan Event, error)
}

const tempDirName = ".tmp"

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, log zerolog.Logger) (Persistence, error) {
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
	tempDir := filepath.Join(basePath, tempDirName)
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			TempDir:  tempDir,
			// Records are re-read after external writes, so nothing is cached.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		log:      log.With().Str("component", "store").Logger(),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      zerolog.Logger
}

// read returns nil data when the record does not exist.
func (p *persistence) read(r Record) []byte {
	key := string(r)
	if !p.d.Has(key) {
		return nil
	}
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			p.log.Warn().Err(err).Str("record", key).Msg("read failed")
		}
		return nil
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		p.log.Warn().Err(err).Str("record", key).Msg("read failed")
		return nil
	}
	return data
}

func (p *persistence) write(r Record, v interface{}) error {
	data, err := encode(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", r, err)
	}
	if err := p.d.Write(string(r), data); err != nil {
		return fmt.Errorf("store: write %s: %w", r, err)
	}
	p.log.Debug().Str("record", string(r)).Int("bytes", len(data)).Msg("saved")
	return nil
}

func (p *persistence) LoadInventory() []item.InventoryItem {
	return decodeInventory(p.log, p.read(RecordInventory))
}

func (p *persistence) SaveInventory(items []item.InventoryItem) error {
	if items == nil {
		items = []item.InventoryItem{}
	}
	return p.write(RecordInventory, items)
}

func (p *persistence) LoadShoppingList() []item.ShoppingListItem {
	return decodeShoppingList(p.log, p.read(RecordShoppingList))
}

func (p *persistence) SaveShoppingList(items []item.ShoppingListItem) error {
	if items == nil {
		items = []item.ShoppingListItem{}
	}
	return p.write(RecordShoppingList, items)
}

func (p *persistence) LoadCollapsed() item.CollapsedState {
	return decodeCollapsed(p.log, p.read(RecordCollapsed))
}

func (p *persistence) SaveCollapsed(state item.CollapsedState) error {
	return p.write(RecordCollapsed, state.Normalize())
}
