package data

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// WeaponCatalog supplies the canonical weapon name list used to build the
// prop-name set. Entries may repeat or differ in case; DefaultRules
// deduplicates case-insensitively.
type WeaponCatalog interface {
	WeaponNames() []string
}

// DefaultRule — one row of the Beginner Mode reference table, display case
// preserved.
type DefaultRule struct {
	Weapon   string
	AmmoType string
	Count    string
}

// DefaultRules — read-only Beginner Mode reference table: ammo type and
// default ammo count per weapon name, plus the derived prop-name set.
// All lookups are case-insensitive. Immutable after construction except
// for the one-time prop-set build.
type DefaultRules struct {
	ammoTypes map[string]string
	counts    map[string]string
	rows      []DefaultRule

	catalog  WeaponCatalog
	propOnce sync.Once
	propSet  map[string]struct{}
}

// NewDefaultRules builds the rules table from the package literals and
// validates them: both tables must cover exactly the same weapons and
// every count must be non-negative integer text.
func NewDefaultRules(catalog WeaponCatalog) (*DefaultRules, error) {
	return newDefaultRules(defaultAmmoTypes, defaultAmmoCounts, catalog)
}

func newDefaultRules(ammoTypes, counts map[string]string, catalog WeaponCatalog) (*DefaultRules, error) {
	r := &DefaultRules{
		ammoTypes: make(map[string]string, len(ammoTypes)),
		counts:    make(map[string]string, len(counts)),
		rows:      make([]DefaultRule, 0, len(ammoTypes)),
		catalog:   catalog,
	}

	for name, ammoType := range ammoTypes {
		key := strings.ToLower(name)
		if _, dup := r.ammoTypes[key]; dup {
			return nil, fmt.Errorf("duplicate ammo type entry for %q", name)
		}
		r.ammoTypes[key] = ammoType
	}

	for name, count := range counts {
		key := strings.ToLower(name)
		if _, dup := r.counts[key]; dup {
			return nil, fmt.Errorf("duplicate ammo count entry for %q", name)
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("ammo count for %q is not a number: %q", name, count)
		}
		if n < 0 {
			return nil, fmt.Errorf("ammo count for %q is negative: %q", name, count)
		}
		r.counts[key] = count
	}

	// Key-set parity: every weapon present in one table must be present
	// in the other.
	for name := range ammoTypes {
		key := strings.ToLower(name)
		count, ok := r.counts[key]
		if !ok {
			return nil, fmt.Errorf("weapon %q has an ammo type but no default count", name)
		}
		r.rows = append(r.rows, DefaultRule{Weapon: name, AmmoType: ammoTypes[name], Count: count})
	}
	for name := range counts {
		if _, ok := r.ammoTypes[strings.ToLower(name)]; !ok {
			return nil, fmt.Errorf("weapon %q has a default count but no ammo type", name)
		}
	}

	sort.Slice(r.rows, func(i, j int) bool {
		return strings.ToLower(r.rows[i].Weapon) < strings.ToLower(r.rows[j].Weapon)
	})

	return r, nil
}

// AmmoTypeFor returns the ammo type for a weapon name, case-insensitive.
// ok is false for unknown weapons — distinct from the "None" ammo type.
func (r *DefaultRules) AmmoTypeFor(name string) (string, bool) {
	ammoType, ok := r.ammoTypes[strings.ToLower(name)]
	return ammoType, ok
}

// DefaultCountFor returns the default ammo count for a weapon name as
// text, case-insensitive. Parsing is the caller's concern.
func (r *DefaultRules) DefaultCountFor(name string) (string, bool) {
	count, ok := r.counts[strings.ToLower(name)]
	return count, ok
}

// HasProp reports whether a pickup prop exists for the weapon name.
// The prop set is built from the catalog on first call and cached for the
// life of the table; later calls never consult the catalog again.
func (r *DefaultRules) HasProp(name string) bool {
	r.propOnce.Do(func() {
		names := r.catalog.WeaponNames()
		set := make(map[string]struct{}, len(names))
		for _, n := range names {
			set[strings.ToLower(n)] = struct{}{}
		}
		r.propSet = set
	})

	_, ok := r.propSet[strings.ToLower(name)]
	return ok
}

// PropNames returns the cached prop-name set as a sorted slice of
// lowercase names, building it first if needed.
func (r *DefaultRules) PropNames() []string {
	r.HasProp("") // force the one-time build

	names := make([]string, 0, len(r.propSet))
	for n := range r.propSet {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Rows returns every rule sorted by weapon name, display case preserved.
func (r *DefaultRules) Rows() []DefaultRule {
	rows := make([]DefaultRule, len(r.rows))
	copy(rows, r.rows)
	return rows
}
