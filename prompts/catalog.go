package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Category identifies a predefined role.
type Category string

const (
	ProgrammingAssistant Category = "programming_assistant"
	WritingAssistant     Category = "writing_assistant"
	DataAnalyst          Category = "data_analyst"
	ResearchAssistant    Category = "research_assistant"
)

// ErrUnknownCategory is returned when a category has no catalog entry.
var ErrUnknownCategory = errors.New("unknown role category")

//go:embed catalog.yaml
var embeddedCatalog []byte

// Entry is one predefined role plus the metadata used to list it.
type Entry struct {
	Category Category    `yaml:"category" json:"category"`
	Group    string      `yaml:"group" json:"group"`
	Icon     string      `yaml:"icon" json:"icon"`
	Summary  string      `yaml:"summary" json:"summary"`
	Role     models.Role `yaml:"role" json:"role"`
}

type catalogFile struct {
	Roles []Entry `yaml:"roles"`
}

// Catalog is a frozen set of predefined roles. It is safe for concurrent use;
// every accessor hands out copies.
type Catalog struct {
	order   []Category
	entries map[Category]Entry
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built from the embedded reference data.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = parse(embeddedCatalog)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("parse embedded catalog: %w", defaultErr)
		}
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for callers that treat a broken embedded catalog as fatal.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load returns the embedded catalog with entries from overridePath layered on
// top. Override entries replace embedded ones with the same category; new
// categories are appended but can only be reached by name, since domain
// matching is fixed to the four built-in categories. An empty path returns the
// embedded catalog unchanged.
func Load(fs afero.Fs, overridePath string) (*Catalog, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(overridePath) == "" {
		return base, nil
	}

	data, err := afero.ReadFile(fs, overridePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalog file %s not found: %w", overridePath, err)
		}
		return nil, fmt.Errorf("read catalog file %s: %w", overridePath, err)
	}
	override, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", overridePath, err)
	}

	merged := &Catalog{
		order:   append([]Category(nil), base.order...),
		entries: make(map[Category]Entry, len(base.entries)+len(override.entries)),
	}
	for k, v := range base.entries {
		merged.entries[k] = v
	}
	for _, cat := range override.order {
		if _, exists := merged.entries[cat]; !exists {
			merged.order = append(merged.order, cat)
		}
		merged.entries[cat] = override.entries[cat]
	}
	return merged, nil
}

func parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	c := &Catalog{entries: make(map[Category]Entry, len(file.Roles))}
	for i, e := range file.Roles {
		if e.Category == "" {
			return nil, fmt.Errorf("entry %d: category is required", i)
		}
		if _, dup := c.entries[e.Category]; dup {
			return nil, fmt.Errorf("entry %d: duplicate category %q", i, e.Category)
		}
		if err := models.ValidateStruct(e.Role); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Category, err)
		}
		c.order = append(c.order, e.Category)
		c.entries[e.Category] = e
	}
	return c, nil
}

// Role returns a copy of the role stored under cat.
func (c *Catalog) Role(cat Category) (models.Role, bool) {
	e, ok := c.entries[cat]
	if !ok {
		return models.Role{}, false
	}
	return e.Role.Clone(), true
}

// Entry returns a copy of the entry stored under cat.
func (c *Catalog) Entry(cat Category) (Entry, error) {
	e, ok := c.entries[cat]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownCategory, cat)
	}
	e.Role = e.Role.Clone()
	return e, nil
}

// Entries lists entries in catalog order, optionally restricted to one group.
// An empty group returns everything.
func (c *Catalog) Entries(group string) []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, cat := range c.order {
		e := c.entries[cat]
		if group != "" && e.Group != group {
			continue
		}
		e.Role = e.Role.Clone()
		out = append(out, e)
	}
	return out
}

// Categories returns the category keys in catalog order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.order...)
}
