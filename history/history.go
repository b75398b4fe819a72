// Package history provides the implementation for tracking and persisting local playback completion state.
package history

import (
	"github.com/metafates/gache"
	"github.com/yeahme49/plugin.video.embycon/filesystem"
	"github.com/yeahme49/plugin.video.embycon/where"
)

// cacher provides an abstracted, disk-backed registry for playback completion records.
var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of completion records from the persistent store.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Save persists the watched percentage of an item to the history registry.
// The maximum observed percentage is kept so a partial re-watch never
// regresses an earlier completion.
func Save(record Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	if existing, exists := saved[record.ItemID]; exists {
		if record.WatchedPercentage < existing.WatchedPercentage {
			record.WatchedPercentage = existing.WatchedPercentage
		}
	}

	saved[record.ItemID] = &record

	return cacher.Set(saved)
}

// Remove permanently deletes an item's record from the history registry.
func Remove(itemID string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, itemID)
	return cacher.Set(saved)
}
