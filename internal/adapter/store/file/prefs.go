package file

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/vocab-builder/internal/config"
	"github.com/heartmarshall/vocab-builder/internal/domain"
)

const (
	defaultLangsFile  = "default_langs.json"
	partsOfSpeechFile = "parts_of_speech.json"
)

//go:embed initial_data/*.json
var initialData embed.FS

// Prefs stores user preferences next to the vocabulary documents.
type Prefs struct {
	dir string
	log *slog.Logger
}

// NewPrefs creates a Prefs rooted at dir, creating the directory if needed.
func NewPrefs(dir string, logger *slog.Logger) (*Prefs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prefs: create data dir: %w", err)
	}
	return &Prefs{dir: dir, log: logger.With("adapter", "prefs")}, nil
}

// EnsureInitialData copies bundled defaults into the data directory for
// every file that does not exist yet. It returns the names it copied.
func (p *Prefs) EnsureInitialData() ([]string, error) {
	entries, err := fs.ReadDir(initialData, "initial_data")
	if err != nil {
		return nil, fmt.Errorf("prefs: read initial data: %w", err)
	}

	var copied []string
	for _, e := range entries {
		dst := filepath.Join(p.dir, e.Name())
		if _, err := os.Stat(dst); err == nil {
			continue
		}

		data, err := initialData.ReadFile(path.Join("initial_data", e.Name()))
		if err != nil {
			return copied, fmt.Errorf("prefs: read %s: %w", e.Name(), err)
		}
		if err := writeAtomic(dst, data); err != nil {
			return copied, fmt.Errorf("prefs: write %s: %w", e.Name(), err)
		}
		copied = append(copied, e.Name())
	}

	if len(copied) > 0 {
		p.log.Info("initial data copied", slog.String("dir", p.dir), slog.Any("files", copied))
	}
	return copied, nil
}

type defaultLangs struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DefaultLangs returns the saved default pair, or domain.ErrNoData.
func (p *Prefs) DefaultLangs() (domain.LangPair, error) {
	var dl defaultLangs
	if err := p.readJSON(defaultLangsFile, &dl); err != nil {
		return domain.LangPair{}, err
	}
	return domain.LangPair{From: dl.From, To: dl.To}, nil
}

// SetDefaultLangs saves pair as the default.
func (p *Prefs) SetDefaultLangs(pair domain.LangPair) error {
	if err := pair.Validate(); err != nil {
		return err
	}
	return p.writeJSON(defaultLangsFile, defaultLangs{From: pair.From, To: pair.To})
}

// PartsOfSpeech returns the configured part-of-speech choices.
// A missing file yields domain.ErrNoData.
func (p *Prefs) PartsOfSpeech() ([]string, error) {
	var parts []string
	if err := p.readJSON(partsOfSpeechFile, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

// SetPartsOfSpeech replaces the part-of-speech choices. Items are trimmed
// and blanks dropped.
func (p *Prefs) SetPartsOfSpeech(parts []string) error {
	clean := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			clean = append(clean, s)
		}
	}
	return p.writeJSON(partsOfSpeechFile, clean)
}

// SetAPIKey stores the translator key with owner-only permissions.
func (p *Prefs) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.NewValidationError("api_key", "required")
	}
	dst := filepath.Join(p.dir, config.APIKeyFile)
	if err := writeAtomic(dst, []byte(key)); err != nil {
		return fmt.Errorf("prefs: write api key: %w", err)
	}
	return os.Chmod(dst, 0o600)
}

func (p *Prefs) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(p.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("prefs %s: %w", name, domain.ErrNoData)
	}
	if err != nil {
		return fmt.Errorf("prefs %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("prefs %s: %w: %w", name, domain.ErrCorruptData, err)
	}
	return nil
}

func (p *Prefs) writeJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("prefs %s: encode: %w", name, err)
	}
	if err := writeAtomic(filepath.Join(p.dir, name), data); err != nil {
		return fmt.Errorf("prefs %s: write: %w", name, err)
	}
	return nil
}
