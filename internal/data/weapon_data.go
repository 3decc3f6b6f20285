package data

// weaponDef — weapon catalog entry for Go literals.
// One entry per in-game pickup, in item enum order. This is the
// authoritative WeaponData list the editor displays; "Nothing (No Pickup)"
// and "Unarmed" are deliberately absent (no pickup prop exists for them).
type weaponDef struct {
	id    int32
	name  string
	model string // pickup prop model
}

var weaponDefs = []weaponDef{
	{id: 1, name: "Hunting Knives", model: "PchrknifeZ"},
	{id: 2, name: "Throwing Knives", model: "PchrthrowknifeZ"},
	{id: 3, name: "PP7", model: "PchrwppkZ"},
	{id: 4, name: "PP7 (Silenced)", model: "PchrwppksilZ"},
	{id: 5, name: "DD44", model: "Pchrtt33Z"},
	{id: 6, name: "Klobb", model: "PchrskorpionZ"},
	{id: 7, name: "KF7", model: "PchrkalashZ"},
	{id: 8, name: "ZMG", model: "PchruziZ"},
	{id: 9, name: "D5K", model: "Pchrmp5kZ"},
	{id: 10, name: "D5K (Silenced)", model: "Pchrmp5ksilZ"},
	{id: 11, name: "Phantom", model: "PchrspectreZ"},
	{id: 12, name: "AR33", model: "Pchrm16Z"},
	{id: 13, name: "RC-P90", model: "Pchrfnp90Z"},
	{id: 14, name: "Shotgun", model: "PchrshotgunZ"},
	{id: 15, name: "Automatic Shotgun", model: "PchrautoshotZ"},
	{id: 16, name: "Sniper Rifle", model: "PchrsniperrifleZ"},
	{id: 17, name: "Cougar Magnum", model: "PchrrugerZ"},
	{id: 18, name: "Golden Gun", model: "PchrgoldenZ"},
	{id: 19, name: "Silver PP7", model: "PchrsilverwppkZ"},
	{id: 20, name: "Gold PP7", model: "PchrgoldwppkZ"},
	{id: 21, name: "Moonraker Laser", model: "PchrlaserZ"},
	{id: 22, name: "Watch Laser", model: "PchrwatchlaserZ"},
	{id: 23, name: "Grenade Launcher", model: "PchrgrenadelaunchZ"},
	{id: 24, name: "Rocket Launcher", model: "PchrrocketlaunchZ"},
	{id: 25, name: "Grenades", model: "PchrgrenadeZ"},
	{id: 26, name: "Timed Mine", model: "PchrtimedmineZ"},
	{id: 27, name: "Proximity Mine", model: "PchrproximitymineZ"},
	{id: 28, name: "Remote Mine", model: "PchrremotemineZ"},
	{id: 29, name: "Detonator", model: "PchrdetonatorZ"},
	{id: 30, name: "Tazer", model: "PchrtaserZ"},
	{id: 31, name: "Tank", model: "PtankZ"},
}
