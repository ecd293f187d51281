package dex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"oakbot/domain"
)

// entry mirrors one value of the national_dex.json reference file.
// The dataset was produced on Windows, hence the backslash separators
// in image_path.
type entry struct {
	ID        int    `json:"id"`
	ImagePath string `json:"image_path"`
}

// Registry is the in-memory reference dataset: every known Pokemon,
// addressable by normalized name or by dex id.
type Registry struct {
	byKey map[string]domain.Pokemon
	byID  map[int]domain.Pokemon
	names []string
}

// Load reads the reference file and resolves sprite paths under spriteDir.
func Load(path, spriteDir string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dex file: %w", err)
	}

	var raw map[string]entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dex file: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("dex file %s holds no entries", path)
	}

	entries := make([]domain.Pokemon, 0, len(raw))
	for name, e := range raw {
		entries = append(entries, domain.Pokemon{
			ID:         e.ID,
			Name:       name,
			SpritePath: spritePath(spriteDir, e.ImagePath),
		})
	}
	return NewRegistry(entries)
}

// NewRegistry builds a registry from already-resolved entries.
func NewRegistry(entries []domain.Pokemon) (*Registry, error) {
	reg := &Registry{
		byKey: make(map[string]domain.Pokemon, len(entries)),
		byID:  make(map[int]domain.Pokemon, len(entries)),
	}
	for _, p := range entries {
		key := Normalize(p.Name)
		if _, dup := reg.byKey[key]; dup {
			return nil, fmt.Errorf("duplicate dex entry for %q", p.Name)
		}
		reg.byKey[key] = p
		reg.byID[p.ID] = p
	}

	reg.names = lo.Map(lo.Values(reg.byKey), func(p domain.Pokemon, _ int) string {
		return p.Name
	})
	sort.Strings(reg.names)
	return reg, nil
}

// Lookup resolves a user-supplied name. Matching ignores case, spacing,
// hyphens and the punctuation found in canonical names (Mr. Mime,
// Farfetch'd).
func (r *Registry) Lookup(name string) (domain.Pokemon, bool) {
	p, ok := r.byKey[Normalize(name)]
	return p, ok
}

// ByID resolves a national dex number.
func (r *Registry) ByID(id int) (domain.Pokemon, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Names returns every canonical name, sorted.
func (r *Registry) Names() []string {
	return r.names
}

func (r *Registry) Len() int {
	return len(r.byKey)
}

// Normalize maps a name to its lookup key.
func Normalize(name string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(name) {
		switch c {
		case ' ', '-', '.', '\'', ':':
			continue
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func spritePath(spriteDir, imagePath string) string {
	clean := strings.ReplaceAll(imagePath, `\`, "/")
	return filepath.Join(spriteDir, filepath.FromSlash(clean))
}
