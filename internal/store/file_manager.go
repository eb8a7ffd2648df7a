package store

import (
	"os"

	json "github.com/goccy/go-json"

	"breathed/internal/models"
	"breathed/internal/providers"
	"breathed/internal/store/interfaces"
	"breathed/internal/structures"
)

type ManagerInterface interface {
	Save(doc *models.StateDocument) error
	Load() (*models.StateDocument, error)
	Close()
}

// FileManager persists the whole state document as one compressed JSON
// file. Writes are atomic from the caller's perspective: tmp file, fsync,
// rename.
type FileManager struct {
	path       string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		path:       conf.Persistence.FilePath,
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileManager) Save(doc *models.StateDocument) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
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

	return os.Rename(tmpFile, f.path)
}

// Load hydrates the state document, falling back to defaults when no file
// exists. Older revisions stored the settings aggregate alone as plain
// JSON; both legacy layouts are migrated on read.
func (f *FileManager) Load() (*models.StateDocument, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultStateDocument(), nil
		}
		return nil, err
	}

	payload, err := f.compressor.Decompress(data)
	if err != nil {
		// Legacy files were written uncompressed.
		payload = data
	}

	var doc models.StateDocument
	if err := json.Unmarshal(payload, &doc); err == nil && doc.Settings != nil {
		if doc.ContactGroups == nil {
			doc.ContactGroups = []models.ContactGroup{}
		}
		doc.Version = models.StateVersion
		return &doc, nil
	}

	// Oldest layout: the bare settings document under the single storage key.
	f.logger.Warnf(providers.TypeApp, "Inconsistent state file found, trying legacy settings format")
	var settings models.BreatheSettings
	if err := json.Unmarshal(payload, &settings); err != nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return nil, err
	}
	f.logger.Warnf(providers.TypeApp, "Migration from legacy settings format successful")

	doc = *models.DefaultStateDocument()
	doc.Settings = &settings
	return &doc, nil
}

// Close releases resources held by the compressor.
func (f *FileManager) Close() {
	f.compressor.Close()
}
