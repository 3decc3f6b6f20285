// Package editor implements Beginner Mode: auto-filling ammo type, default
// ammo count and prop presence for weapon-set slots from the default rules.
package editor

import (
	"github.com/udisondev/goldedit/internal/data"
	"github.com/udisondev/goldedit/internal/model"
)

// Beginner fills slot ammo fields from the default rules when a weapon is
// assigned.
type Beginner struct {
	rules *data.DefaultRules
}

func NewBeginner(rules *data.DefaultRules) *Beginner {
	return &Beginner{rules: rules}
}

// Fill sets the slot's ammo type, default count and has-prop flag from the
// rules. Unknown weapons leave the slot untouched and return false — the
// caller decides whether that is an error or just nothing to show.
func (b *Beginner) Fill(slot *model.WeaponSlot) bool {
	ammoType, ok := b.rules.AmmoTypeFor(slot.Weapon)
	if !ok {
		return false
	}
	count, ok := b.rules.DefaultCountFor(slot.Weapon)
	if !ok {
		return false
	}

	slot.AmmoType = ammoType
	slot.AmmoCount = count
	slot.HasProp = b.rules.HasProp(slot.Weapon)
	return true
}

// FillSet applies Fill to every slot and returns how many were filled.
func (b *Beginner) FillSet(set *model.WeaponSet) int {
	filled := 0
	for _, slot := range set.Slots() {
		if b.Fill(slot) {
			filled++
		}
	}
	return filled
}
