package exclusion

// Names of the built-in lists.
const (
	ListZMoves         = "z_moves"
	ListMaxMoves       = "max_moves"
	ListSignatureMoves = "signature_moves"
	ListRemoved        = "removed"
)

var zMoves = []string{
	"10,000,000 Volt Thunderbolt",
	"Acid Downpour",
	"All-Out Pummeling",
	"Black Hole Eclipse",
	"Bloom Doom",
	"Breakneck Blitz",
	"Catastropika",
	"Clangorous Soulblaze",
	"Continental Crush",
	"Corkscrew Crash",
	"Devastating Drake",
	"Extreme Evoboost",
	"Genesis Supernova",
	"Gigavolt Havoc",
	"Guardian of Alola",
	"Hydro Vortex",
	"Inferno Overdrive",
	"Let's Snuggle Forever",
	"Light That Burns the Sky",
	"Malicious Moonsault",
	"Menacing Moonraze Maelstrom",
	"Never-Ending Nightmare",
	"Oceanic Operetta",
	"Pulverizing Pancake",
	"Savage Spin-Out",
	"Searing Sunraze Smash",
	"Shattered Psyche",
	"Sinister Arrow Raid",
	"Soul-Stealing 7-Star Strike",
	"Splintered Stormshards",
	"Stoked Sparksurfer",
	"Subzero Slammer",
	"Supersonic Skystrike",
	"Tectonic Rage",
	"Twinkle Tackle",
}

var maxMoves = []string{
	"Max Airstream",
	"Max Darkness",
	"Max Flare",
	"Max Flutterby",
	"Max Geyser",
	"Max Guard",
	"Max Hailstorm",
	"Max Knuckle",
	"Max Lightning",
	"Max Mindstorm",
	"Max Ooze",
	"Max Overgrowth",
	"Max Phantasm",
	"Max Quake",
	"Max Rockfall",
	"Max Starfall",
	"Max Steelspike",
	"Max Strike",
	"Max Wyrmwind",
	"G-Max Befuddle",
	"G-Max Cannonade",
	"G-Max Centiferno",
	"G-Max Chi Strike",
	"G-Max Cuddle",
	"G-Max Depletion",
	"G-Max Drum Solo",
	"G-Max Finale",
	"G-Max Fireball",
	"G-Max Foam Burst",
	"G-Max Gold Rush",
	"G-Max Gravitas",
	"G-Max Hydrosnipe",
	"G-Max Malodor",
	"G-Max Meltdown",
	"G-Max One Blow",
	"G-Max Rapid Flow",
	"G-Max Replenish",
	"G-Max Resonance",
	"G-Max Sandblast",
	"G-Max Smite",
	"G-Max Snooze",
	"G-Max Steelsurge",
	"G-Max Stonesurge",
	"G-Max Stun Shock",
	"G-Max Sweetness",
	"G-Max Tartness",
	"G-Max Terror",
	"G-Max Vine Lash",
	"G-Max Volcalith",
	"G-Max Volt Crash",
	"G-Max Wildfire",
	"G-Max Wind Rage",
}

var signatureMoves = []string{
	"Aeroblast",
	"Astral Barrage",
	"Behemoth Bash",
	"Behemoth Blade",
	"Core Enforcer",
	"Dark Void",
	"Diamond Storm",
	"Doom Desire",
	"Dragon Ascent",
	"Dynamax Cannon",
	"Eternabeam",
	"Fleur Cannon",
	"Fusion Bolt",
	"Fusion Flare",
	"Glacial Lance",
	"Hyperspace Fury",
	"Hyperspace Hole",
	"Judgment",
	"Light of Ruin",
	"Lunar Dance",
	"Magma Storm",
	"Moongeist Beam",
	"Oblivion Wing",
	"Origin Pulse",
	"Photon Geyser",
	"Plasma Fists",
	"Precipice Blades",
	"Prismatic Laser",
	"Psycho Boost",
	"Relic Song",
	"Roar of Time",
	"Sacred Fire",
	"Seed Flare",
	"Shadow Force",
	"Spacial Rend",
	"Spectral Thief",
	"Steam Eruption",
	"Sunsteel Strike",
	"Thousand Arrows",
	"Thousand Waves",
	"V-create",
}

var removedMoves = []string{
	"Struggle",
}

// Builtin returns a set holding the built-in exclusion lists: Z-moves,
// Max and G-Max moves, signature moves and ad hoc removals.
func Builtin() *Set {
	s := New()
	s.AddList(ListZMoves, zMoves)
	s.AddList(ListMaxMoves, maxMoves)
	s.AddList(ListSignatureMoves, signatureMoves)
	s.AddList(ListRemoved, removedMoves)
	return s
}
