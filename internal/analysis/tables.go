package analysis

// Stat is a canonical two-letter stat code used by the calculator.
type Stat string

const (
	StatHP        Stat = "hp"
	StatAttack    Stat = "at"
	StatDefense   Stat = "df"
	StatSpAttack  Stat = "sa"
	StatSpDefense Stat = "sd"
	StatSpeed     Stat = "sp"
)

// StatOrder is the render order for stat spreads.
var StatOrder = []Stat{StatHP, StatAttack, StatDefense, StatSpAttack, StatSpDefense, StatSpeed}

// statAliases maps lower-cased document spellings to canonical codes.
// "spatk" and "spdef" come from labels written with a space ("Sp Atk").
var statAliases = map[string]Stat{
	"hp":    StatHP,
	"atk":   StatAttack,
	"def":   StatDefense,
	"spa":   StatSpAttack,
	"spd":   StatSpDefense,
	"spe":   StatSpeed,
	"spdef": StatSpDefense,
	"speed": StatSpeed,
	"spatk": StatSpAttack,
}

const (
	// NullMove fills move slots the analysis does not list.
	NullMove = "null"

	// LatestGeneration is the newest generation; its analyses already use
	// current move names.
	LatestGeneration = "xy"

	// TierUnreleased labels sets with the bracketed title from the name line.
	TierUnreleased = "Unreleased"
	// TierLittleCup sets are level 5.
	TierLittleCup = "LC"
	// doublesTierPrefix marks VGC tiers, which are level 50.
	doublesTierPrefix = "VGC"
)

// moveRenames maps legacy move spellings to their current names.
var moveRenames = map[string]string{
	"AncientPower": "Ancient Power",
	"BubbleBeam":   "Bubble Beam",
	"Conversion2":  "Conversion 2",
	"DoubleSlap":   "Double Slap",
	"DragonBreath": "Dragon Breath",
	"DynamicPunch": "Dynamic Punch",
	"ExtremeSpeed": "Extreme Speed",
	"Faint Attack": "Feint Attack",
	"FeatherDance": "Feather Dance",
	"GrassWhistle": "Grass Whistle",
	"Hi Jump Kick": "High Jump Kick",
	"PoisonPowder": "Poison Powder",
	"Sand-Attack":  "Sand Attack",
	"Selfdestruct": "Self-Destruct",
	"SmellingSalt": "Smelling Salts",
	"SmokeScreen":  "Smokescreen",
	"Softboiled":   "Soft-Boiled",
	"SolarBeam":    "Solar Beam",
	"SonicBoom":    "Sonic Boom",
	"ThunderPunch": "Thunder Punch",
	"ThunderShock": "Thunder Shock",
	"Vicegrip":     "Vice Grip",
}

// droppedItems are hold items that trigger a forme change the calculator
// models as a separate subject; the item is omitted from the set.
var droppedItems = map[string]struct{}{
	"Red Orb":          {},
	"Blue Orb":         {},
	"Ultranecrozium Z": {},
}

// skippedTiers hold legacy doubles formats whose analyses are not exported.
var skippedTiers = map[string]struct{}{
	"VGC11": {},
	"VGC12": {},
}

// skippedSubjects have no analysable moveset.
var skippedSubjects = map[string]struct{}{
	"Ditto": {},
}

// unreleasedFormes are suffixed in the Unreleased tier, whose analyses
// describe the reverted forme.
var unreleasedFormes = map[string]string{
	"Groudon": "-Primal",
	"Kyogre":  "-Primal",
}

// appendedFormes always carry an explicit forme suffix.
var appendedFormes = map[string]string{
	"Gourgeist": "-Average",
	"Pumpkaboo": "-Average",
}

// collapsedFormes name a default forme explicitly; the key drops the suffix.
var collapsedFormes = map[string]string{
	"Keldeo-Ordinary": "Keldeo",
}

// uniformBases keep their full hyphenated name as the key.
var uniformBases = map[string]struct{}{
	"Arceus":    {},
	"Gourgeist": {},
	"Meowstic":  {},
	"Nidoran":   {},
	"Porygon":   {},
	"Pumpkaboo": {},
}

// uniformNames keep their full name although the base is not uniform.
var uniformNames = map[string]struct{}{
	"Ho-Oh": {},
}

// remappedFormes do not follow the first-letter forme convention.
var remappedFormes = map[string]string{
	"Rotom-Fan":      "Rotom-S",
	"Rotom-Mow":      "Rotom-C",
	"Wormadam-Sandy": "Wormadam-G",
	"Wormadam-Trash": "Wormadam-S",
}

// Quirks describes document conventions that differ per generation.
type Quirks struct {
	// KeepWithoutNature keeps sets that list no nature. Natures did not
	// exist in the first two generations.
	KeepWithoutNature bool
	// ValueRenames maps item, ability and nature spellings to their
	// current form.
	ValueRenames map[string]string
}

var generationQuirks = map[string]Quirks{
	"rb": {KeepWithoutNature: true},
	"gs": {
		KeepWithoutNature: true,
		ValueRenames:      map[string]string{"MiracleBerry": "Miracle Berry"},
	},
}

// QuirksFor returns the document quirks of a generation code.
func QuirksFor(gen string) Quirks {
	return generationQuirks[gen]
}

// StatAliases returns a copy of the stat alias table.
func StatAliases() map[string]Stat {
	out := make(map[string]Stat, len(statAliases))
	for k, v := range statAliases {
		out[k] = v
	}
	return out
}

// MoveRenames returns a copy of the legacy move rename table.
func MoveRenames() map[string]string {
	out := make(map[string]string, len(moveRenames))
	for k, v := range moveRenames {
		out[k] = v
	}
	return out
}

// IsSkippedTier reports whether analyses in tier are never exported.
func IsSkippedTier(tier string) bool {
	_, ok := skippedTiers[tier]
	return ok
}

// IsSkippedSubject reports whether a subject key is never exported.
func IsSkippedSubject(subject string) bool {
	_, ok := skippedSubjects[subject]
	return ok
}
