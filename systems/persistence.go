package systems

import (
	"encoding/json"

	"github.com/automoto/slingshot/components"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const recordKey = "record"

// SavedRecord represents the best score stored on disk
type SavedRecord struct {
	BestScore int `json:"bestScore"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store. The game runs without a store when
// this fails.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "slingshot",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadRecord loads the best score from disk. It returns nil when there is no
// store or nothing saved yet.
func LoadRecord() (*SavedRecord, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(recordKey)
	if err != nil {
		log.Warn("could not load record", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var record SavedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Warn("could not parse saved record", "err", err)
		return nil, err
	}
	return &record, nil
}

// SaveRecord saves the best score to disk
func SaveRecord(r *SavedRecord) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(recordKey, data); err != nil {
		log.Warn("could not save record", "err", err)
		return err
	}
	return nil
}

// RecordScore raises the best score when score beats it.
func RecordScore(ecs *ecs.ECS, score int) {
	rec := GetOrCreateRecord(ecs)
	if score > rec.Best {
		rec.Best = score
		rec.Dirty = true
	}
}

// UpdatePersistence writes the best score once it changed.
func UpdatePersistence(ecs *ecs.ECS) {
	FlushRecord(ecs)
}

// FlushRecord saves a changed best score immediately.
func FlushRecord(ecs *ecs.ECS) {
	rec := GetOrCreateRecord(ecs)
	if !rec.Dirty {
		return
	}
	rec.Dirty = false
	if err := SaveRecord(&SavedRecord{BestScore: rec.Best}); err == nil {
		log.Debug("record saved", "best", rec.Best)
	}
}

// GetOrCreateRecord returns the best score singleton, loading it from disk
// the first time.
func GetOrCreateRecord(ecs *ecs.ECS) *components.RecordData {
	entry, ok := components.Record.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Record))
		if saved, _ := LoadRecord(); saved != nil {
			components.Record.SetValue(entry, components.RecordData{Best: saved.BestScore})
		}
	}
	return components.Record.Get(entry)
}
