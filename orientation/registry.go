package orientation

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"gopkg.in/yaml.v3"
)

//go:embed conventions.yaml
var conventionsTable string

// Registry is a read-only table of named Euler angle conventions.
// Conventions are kept sorted by name.
type Registry struct {
	conventions *treemap.Map // name -> Convention
	deflt       string
}

type registryFile struct {
	Default     string            `yaml:"default"`
	Conventions []conventionEntry `yaml:"conventions"`
}

type conventionEntry struct {
	Name        string `yaml:"name"`
	Axes        string `yaml:"axes"`
	Range       string `yaml:"range"`
	Description string `yaml:"description"`
}

// NewRegistry creates a registry from a list of conventions. deflt names the
// default convention and must be one of them.
func NewRegistry(deflt string, conventions ...Convention) (*Registry, error) {
	reg := &Registry{
		conventions: treemap.NewWithStringComparator(),
		deflt:       deflt,
	}
	for _, c := range conventions {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := reg.conventions.Get(c.Name); dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidConvention, c.Name)
		}
		c.Axes = strings.ToUpper(c.Axes)
		reg.conventions.Put(c.Name, c)
	}
	if _, ok := reg.conventions.Get(deflt); !ok {
		return nil, fmt.Errorf("%w: default convention %q", ErrUnknownConvention, deflt)
	}
	return reg, nil
}

// LoadRegistry reads a registry from YAML. The format is
//
//	default: Bunge
//	conventions:
//	  - name: Bunge
//	    axes: ZXZ
//	    range: positive
//	    description: Bunge (ZXZ)
func LoadRegistry(r io.Reader) (*Registry, error) {
	var file registryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConvention, err)
	}
	conventions := make([]Convention, len(file.Conventions))
	for i, entry := range file.Conventions {
		rp, err := ParseRangePolicy(entry.Range)
		if err != nil {
			return nil, fmt.Errorf("convention %q: %w", entry.Name, err)
		}
		conventions[i] = Convention{
			Name:        entry.Name,
			Axes:        entry.Axes,
			Range:       rp,
			Description: entry.Description,
		}
	}
	reg, err := NewRegistry(file.Default, conventions...)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded %d Euler angles conventions, default is %s", reg.conventions.Size(), reg.deflt)
	return reg, nil
}

// Lookup finds a convention by name.
func (reg *Registry) Lookup(name string) (Convention, error) {
	c, ok := reg.conventions.Get(name)
	if !ok {
		return Convention{}, fmt.Errorf("%w: %q", ErrUnknownConvention, name)
	}
	return c.(Convention), nil
}

// Default returns the default convention of this registry.
func (reg *Registry) Default() Convention {
	c, _ := reg.Lookup(reg.deflt)
	return c
}

// Names returns the names of all conventions in ascending order.
func (reg *Registry) Names() []string {
	keys := reg.conventions.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Conventions returns all conventions, ordered by name.
func (reg *Registry) Conventions() []Convention {
	values := reg.conventions.Values()
	conventions := make([]Convention, len(values))
	for i, v := range values {
		conventions[i] = v.(Convention)
	}
	return conventions
}

// --- Default registry ------------------------------------------------------

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry of built-in conventions. It is
// initialized on first use and never changes afterwards.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		reg, err := LoadRegistry(strings.NewReader(conventionsTable))
		if err != nil {
			panic(fmt.Sprintf("built-in conventions table is broken: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Lookup finds a convention of the default registry by name.
func Lookup(name string) (Convention, error) {
	return DefaultRegistry().Lookup(name)
}

// MustLookup is like Lookup, but panics for unknown names.
func MustLookup(name string) Convention {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Names lists the conventions of the default registry.
func Names() []string {
	return DefaultRegistry().Names()
}

// Default returns the default convention of the default registry (Bunge).
func Default() Convention {
	return DefaultRegistry().Default()
}
