package data

import (
	"log/slog"
	"strings"
)

// WeaponTable — global registry of all weapon catalog entries.
// map[weaponID]*weaponDef
var WeaponTable map[int32]*weaponDef

// weaponNameIndex maps lowercase weapon name → *weaponDef.
var weaponNameIndex map[string]*weaponDef

// LoadWeaponTemplates builds WeaponTable from Go literals (weaponDefs).
func LoadWeaponTemplates() error {
	WeaponTable = make(map[int32]*weaponDef, len(weaponDefs))
	weaponNameIndex = make(map[string]*weaponDef, len(weaponDefs))

	for i := range weaponDefs {
		def := &weaponDefs[i]
		WeaponTable[def.id] = def
		weaponNameIndex[strings.ToLower(def.name)] = def
	}

	slog.Info("loaded weapon templates", "count", len(WeaponTable))
	return nil
}

// GetWeaponDef returns weaponDef by weapon ID.
func GetWeaponDef(id int32) *weaponDef {
	if WeaponTable == nil {
		return nil
	}
	return WeaponTable[id]
}

// GetWeaponDefByName returns weaponDef by display name, case-insensitive.
func GetWeaponDefByName(name string) *weaponDef {
	if weaponNameIndex == nil {
		return nil
	}
	return weaponNameIndex[strings.ToLower(name)]
}

// weaponDef accessor methods
func (d *weaponDef) ID() int32     { return d.id }
func (d *weaponDef) Name() string  { return d.name }
func (d *weaponDef) Model() string { return d.model }

// WeaponInfo — exported view of a weapon catalog entry for use outside the
// data package.
type WeaponInfo struct {
	ID    int32
	Name  string
	Model string
}

// GetWeaponInfo returns an exported WeaponInfo for a weapon ID.
// Returns nil if not found.
func GetWeaponInfo(id int32) *WeaponInfo {
	def := GetWeaponDef(id)
	if def == nil {
		return nil
	}
	return &WeaponInfo{ID: def.id, Name: def.name, Model: def.model}
}

// AllWeaponNames returns every catalog weapon name in item enum order.
// Reads the literal slice, so it works even before LoadWeaponTemplates.
func AllWeaponNames() []string {
	names := make([]string, len(weaponDefs))
	for i := range weaponDefs {
		names[i] = weaponDefs[i].name
	}
	return names
}

// catalogSource adapts the literal weapon list to the WeaponCatalog
// interface consumed by DefaultRules.
type catalogSource struct{}

func (catalogSource) WeaponNames() []string { return AllWeaponNames() }

// Catalog returns the WeaponCatalog backed by the authoritative weapon list.
func Catalog() WeaponCatalog { return catalogSource{} }
