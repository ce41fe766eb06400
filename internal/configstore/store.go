// Package configstore persists saved inspection profiles.
//
// A profile records the command line for a target MCP server so repeated
// inspections don't need the full command each time. Profiles are stored one
// JSON file per profile under a data directory, by default
// <xdg-data>/inspector-mcp/configs.
package configstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"

	"github.com/avandras/inspector-mcp/pkg/types"
)

// appDirName is the subdirectory of the user data dir holding profiles.
const appDirName = "inspector-mcp/configs"

// validName restricts profile names to filesystem-safe characters.
var validName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ErrNotFound is returned when a named profile does not exist.
var ErrNotFound = fmt.Errorf("configuration not found")

// Store reads and writes saved inspection profiles.
type Store struct {
	dir string
}

// New creates a store rooted at dir. An empty dir selects the per-user
// XDG data directory.
func New(dir string) (*Store, error) {
	if dir == "" {
		dir = filepath.Join(xdg.DataHome, appDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Save persists a profile and returns it with ID and CreatedAt filled in.
// An existing profile with the same name is overwritten.
func (s *Store) Save(name, serverCommand string, serverArgs []string) (*types.SavedConfigInfo, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(serverCommand) == "" {
		return nil, fmt.Errorf("server command must not be empty")
	}

	cfg := &types.SavedConfigInfo{
		ID:            uuid.New().String(),
		Name:          name,
		ServerCommand: serverCommand,
		ServerArgs:    serverArgs,
		CreatedAt:     time.Now().UTC(),
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}

	path := s.path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing configuration %s: %w", path, err)
	}

	return cfg, nil
}

// Load reads a profile by name.
func (s *Store) Load(name string) (*types.SavedConfigInfo, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading configuration %s: %w", name, err)
	}

	var cfg types.SavedConfigInfo
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration %s: %w", name, err)
	}
	if cfg.ServerCommand == "" {
		return nil, fmt.Errorf("configuration %s is missing server_command", name)
	}

	return &cfg, nil
}

// LoadPath reads a profile from an explicit file path, for callers that
// manage their own config files outside the store directory.
func LoadPath(path string) (*types.SavedConfigInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	var cfg types.SavedConfigInfo
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration file %s: %w", path, err)
	}
	if cfg.ServerCommand == "" {
		return nil, fmt.Errorf("configuration file %s is missing server_command", path)
	}

	return &cfg, nil
}

// List returns all saved profiles sorted by name. Unreadable files are
// skipped rather than failing the whole listing.
func (s *Store) List() ([]types.SavedConfigInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing configurations: %w", err)
	}

	configs := make([]types.SavedConfigInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		cfg, err := s.Load(name)
		if err != nil {
			continue
		}
		configs = append(configs, *cfg)
	}

	sort.Slice(configs, func(i, j int) bool { return configs[i].Name < configs[j].Name })
	return configs, nil
}

// Names returns just the profile names, sorted.
func (s *Store) Names() []string {
	configs, err := s.List()
	if err != nil {
		return nil
	}
	names := make([]string, len(configs))
	for i, cfg := range configs {
		names[i] = cfg.Name
	}
	return names
}

// Delete removes a profile by name.
func (s *Store) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("deleting configuration %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func checkName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("invalid configuration name %q: use letters, digits, '.', '_' or '-'", name)
	}
	return nil
}
