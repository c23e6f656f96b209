package coin

import "github.com/vovakirdan/geocoin/internal/luck"

// Kind is the intrinsic, shared part of a coin: its tier and point value.
// One *Kind exists per name within a KindTable, however many coins use it.
type Kind struct {
	Name  string
	Value int
}

// KindSpec configures one coin tier and how often it appears.
type KindSpec struct {
	Name   string  `yaml:"name"`
	Value  int     `yaml:"value"`
	Weight float64 `yaml:"weight"` // Relative frequency; weights need not sum to 1
}

// DefaultKinds returns the standard gold/silver/bronze tiers.
// Bronze is last and therefore the fallback for unknown names.
func DefaultKinds() []KindSpec {
	return []KindSpec{
		{Name: "gold", Value: 10, Weight: 0.10},
		{Name: "silver", Value: 5, Weight: 0.25},
		{Name: "bronze", Value: 1, Weight: 0.65},
	}
}

// KindTable creates and caches Kind flyweights.
type KindTable struct {
	specs      []KindSpec
	total      float64
	flyweights map[string]*Kind
}

// NewKindTable builds a table from specs. An empty slice means DefaultKinds.
func NewKindTable(specs []KindSpec) *KindTable {
	if len(specs) == 0 {
		specs = DefaultKinds()
	}
	t := &KindTable{
		specs:      append([]KindSpec(nil), specs...),
		flyweights: make(map[string]*Kind, len(specs)),
	}
	for _, s := range t.specs {
		if s.Weight > 0 {
			t.total += s.Weight
		}
	}
	return t
}

// Get returns the flyweight for name, creating it on first use.
// Names not in the table resolve to the last configured kind.
func (t *KindTable) Get(name string) *Kind {
	if k, ok := t.flyweights[name]; ok {
		return k
	}
	spec, ok := t.spec(name)
	if !ok {
		spec = t.specs[len(t.specs)-1]
		if k, ok := t.flyweights[spec.Name]; ok {
			return k
		}
	}
	k := &Kind{Name: spec.Name, Value: spec.Value}
	t.flyweights[spec.Name] = k
	return k
}

// Pick chooses a kind for key by weighted deterministic draw.
func (t *KindTable) Pick(key string) *Kind {
	if t.total <= 0 {
		return t.Get(t.specs[len(t.specs)-1].Name)
	}
	roll := luck.Luck(key) * t.total
	for _, s := range t.specs {
		if s.Weight <= 0 {
			continue
		}
		if roll < s.Weight {
			return t.Get(s.Name)
		}
		roll -= s.Weight
	}
	return t.Get(t.specs[len(t.specs)-1].Name)
}

// Len returns how many flyweights have been materialised.
func (t *KindTable) Len() int {
	return len(t.flyweights)
}

// Names returns the configured kind names in table order.
func (t *KindTable) Names() []string {
	names := make([]string, len(t.specs))
	for i, s := range t.specs {
		names[i] = s.Name
	}
	return names
}

func (t *KindTable) spec(name string) (KindSpec, bool) {
	for _, s := range t.specs {
		if s.Name == name {
			return s, true
		}
	}
	return KindSpec{}, false
}
