package model

import "fmt"

// SlotCount is the number of pickup slots in a multiplayer weapon set.
const SlotCount = 8

// EmptySlotWeapon is assigned to every slot of a fresh weapon set.
const EmptySlotWeapon = "Nothing (No Pickup)"

// WeaponSlot — one pickup slot of a weapon set. Ammo count stays text
// until the editor needs the number (file format stores it as text).
type WeaponSlot struct {
	Weapon    string
	AmmoType  string
	AmmoCount string
	HasProp   bool
}

// WeaponSet — a named multiplayer weapon set: SlotCount pickup slots.
type WeaponSet struct {
	name  string
	slots [SlotCount]WeaponSlot
}

// NewWeaponSet creates a weapon set with every slot holding
// EmptySlotWeapon and no ammo fields filled.
func NewWeaponSet(name string) *WeaponSet {
	s := &WeaponSet{name: name}
	for i := range s.slots {
		s.slots[i].Weapon = EmptySlotWeapon
	}
	return s
}

func (s *WeaponSet) Name() string { return s.name }

// Slot returns a pointer to slot i.
// Returns error if i is out of range.
func (s *WeaponSet) Slot(i int) (*WeaponSlot, error) {
	if i < 0 || i >= SlotCount {
		return nil, fmt.Errorf("slot index %d out of range [0, %d)", i, SlotCount)
	}
	return &s.slots[i], nil
}

// SetWeapon assigns a weapon to slot i and clears its ammo fields; the
// caller (Beginner Mode or the user) fills them afterwards.
func (s *WeaponSet) SetWeapon(i int, weapon string) error {
	slot, err := s.Slot(i)
	if err != nil {
		return err
	}
	slot.Weapon = weapon
	slot.AmmoType = ""
	slot.AmmoCount = ""
	slot.HasProp = false
	return nil
}

// Slots returns pointers to all slots in order.
func (s *WeaponSet) Slots() []*WeaponSlot {
	slots := make([]*WeaponSlot, SlotCount)
	for i := range s.slots {
		slots[i] = &s.slots[i]
	}
	return slots
}
