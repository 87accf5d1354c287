package configs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/mmrzaf/fakesheet/internal/domain"
	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("config not found")

type Repository interface {
	List() ([]*domain.SavedConfig, error)
	Get(name string) (*domain.SavedConfig, error)
	GetByPath(path string) (*domain.SavedConfig, error)
}

// FileRepository reads saved configurations (YAML or JSON) from a directory.
// It never writes.
type FileRepository struct {
	baseDir string
}

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

func (r *FileRepository) List() ([]*domain.SavedConfig, error) {
	files, err := r.configFiles()
	if err != nil {
		return nil, err
	}

	list := make([]*domain.SavedConfig, 0, len(files))
	for _, name := range files {
		cfg, err := r.loadConfig(filepath.Join(r.baseDir, name))
		if err != nil {
			continue
		}
		list = append(list, cfg)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// Get matches the file stem first, then the name declared inside a file.
// A file whose stem matches but does not parse is an error, not a miss.
func (r *FileRepository) Get(name string) (*domain.SavedConfig, error) {
	files, err := r.configFiles()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if fileStem(f) == name {
			return r.loadConfig(filepath.Join(r.baseDir, f))
		}
	}

	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (r *FileRepository) configFiles() ([]string, error) {
	entries, err := os.ReadDir(r.baseDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isConfigFile(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// GetByPath loads a file relative to the base directory. Paths that resolve
// outside it are rejected.
func (r *FileRepository) GetByPath(path string) (*domain.SavedConfig, error) {
	full, err := r.resolve(path)
	if err != nil {
		return nil, err
	}
	return r.loadConfig(full)
}

func (r *FileRepository) resolve(path string) (string, error) {
	base, err := filepath.Abs(r.baseDir)
	if err != nil {
		return "", err
	}
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(base, full)
	}
	full = filepath.Clean(full)
	rel, err := filepath.Rel(base, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("config path escapes %s: %s", r.baseDir, path)
	}
	return full, nil
}

func (r *FileRepository) loadConfig(path string) (*domain.SavedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.SavedConfig
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	if cfg.Name == "" {
		cfg.Name = fileStem(path)
	}
	for i := range cfg.Columns {
		if cfg.Columns[i].ID == "" {
			cfg.Columns[i].ID = uuid.NewString()
		}
	}
	return &cfg, nil
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isConfigFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
