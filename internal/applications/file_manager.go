package applications

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/models"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
)

type FileManager struct {
	logger providers.Logger
}

func NewFileManager(logger providers.Logger) *FileManager {
	return &FileManager{logger: logger}
}

// Load reads the store file. A missing file is initialized with empty
// defaults and written out; malformed content is an error and the
// caller is expected to treat it as fatal.
func (f *FileManager) Load(fileName string) (*models.ApplicationStore, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			store := models.NewApplicationStore()
			if err := f.Save(fileName, store); err != nil {
				return nil, err
			}
			f.logger.Infof(providers.TypeStore, "Initialized empty store at %s", fileName)
			return store, nil
		}
		return nil, err
	}

	var store models.ApplicationStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", fileName, err)
	}
	if store.Applied == nil {
		store.Applied = []string{}
	}
	return &store, nil
}

func (f *FileManager) Save(fileName string, store *models.ApplicationStore) error {
	jsonData, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(jsonData)
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

	return os.Rename(tmpFile, fileName)
}
