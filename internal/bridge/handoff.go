package bridge

import (
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"

	"breathed/internal/models"
)

// HandoffStore publishes the monitored-package list for the platform
// watcher process. Each write carries a monotonic sequence number so a
// reader can detect a stale or torn observation: if the Seq it reads is
// lower than one it has already seen, it must re-read.
type HandoffStore struct {
	path string
	seq  atomic.Uint64
	mu   sync.Mutex
	last models.MonitoredPackages
}

func NewHandoffStore(path string) *HandoffStore {
	hs := &HandoffStore{path: path}
	if current, err := hs.Read(); err == nil {
		hs.seq.Store(current.Seq)
		hs.last = current
	}
	return hs
}

func (hs *HandoffStore) Write(ids []string) error {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	record := models.MonitoredPackages{
		Seq:      hs.seq.Add(1),
		Packages: append([]string{}, ids...),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	tmpFile := hs.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}
	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}
	if err = os.Rename(tmpFile, hs.path); err != nil {
		return err
	}

	hs.last = record
	return nil
}

func (hs *HandoffStore) Read() (models.MonitoredPackages, error) {
	data, err := os.ReadFile(hs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.MonitoredPackages{Packages: []string{}}, nil
		}
		return models.MonitoredPackages{}, err
	}
	var record models.MonitoredPackages
	if err := json.Unmarshal(data, &record); err != nil {
		return models.MonitoredPackages{}, err
	}
	if record.Packages == nil {
		record.Packages = []string{}
	}
	return record, nil
}

// Current returns the last published record without touching disk.
func (hs *HandoffStore) Current() models.MonitoredPackages {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	out := hs.last
	out.Packages = append([]string{}, hs.last.Packages...)
	return out
}
