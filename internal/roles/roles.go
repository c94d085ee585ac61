// Package roles defines the closed role catalog: the static group,
// alignment, and default lying behaviour of every role the solver
// knows about. It holds no per-game state.
package roles

import "strings"

// Group is one of the four role groups a quota is counted against.
type Group string

const (
	Villager Group = "villager"
	Outcast  Group = "outcast"
	Minion   Group = "minion"
	Demon    Group = "demon"
)

// Alignment is Good or Evil; Evil is the deduction target.
type Alignment string

const (
	Good Alignment = "good"
	Evil Alignment = "evil"
)

// Role is a closed enumeration of every playable role.
type Role string

const (
	NoRole Role = ""

	// Villagers
	Alchemist     Role = "Alchemist"
	Architect     Role = "Architect"
	Baker         Role = "Baker"
	Bard          Role = "Bard"
	Bishop        Role = "Bishop"
	Confessor     Role = "Confessor"
	Dreamer       Role = "Dreamer"
	Druid         Role = "Druid"
	Empress       Role = "Empress"
	Enlightened   Role = "Enlightened"
	FortuneTeller Role = "FortuneTeller"
	Gemcrafter    Role = "Gemcrafter"
	Hunter        Role = "Hunter"
	Jester        Role = "Jester"
	Judge         Role = "Judge"
	Knight        Role = "Knight"
	Knitter       Role = "Knitter"
	Lover         Role = "Lover"
	Medium        Role = "Medium"
	Oracle        Role = "Oracle"
	Poet          Role = "Poet"
	Scout         Role = "Scout"
	Slayer        Role = "Slayer"
	Witness       Role = "Witness"

	// Outcasts
	Bombardier   Role = "Bombardier"
	DoppelGanger Role = "DoppelGanger"
	Drunk        Role = "Drunk"
	PlagueDoctor Role = "PlagueDoctor"
	Wretch       Role = "Wretch"

	// Minions
	Counsellor Role = "Counsellor"
	Minion     Role = "Minion"
	Poisoner   Role = "Poisoner"
	Puppet     Role = "Puppet"
	Puppeteer  Role = "Puppeteer"
	TwinMinion Role = "TwinMinion"
	Witch      Role = "Witch"

	// Demons
	Baa   Role = "Baa"
	Lilis Role = "Lilis"
	Pooka Role = "Pooka"
)

type attrs struct {
	group Group
	lies  bool // LiesByDefault, the two documented exceptions baked in directly
	order int  // arbitrary total order, for deterministic output only
}

// catalog is the single static table every other function in this
// package derives from. Alignment is computed, never stored, since it
// is fully determined by group except for the two named exceptions.
var catalog = map[Role]attrs{
	Alchemist:     {Villager, false, 0},
	Architect:     {Villager, false, 1},
	Baker:         {Villager, false, 2},
	Bard:          {Villager, false, 3},
	Bishop:        {Villager, false, 4},
	Confessor:     {Villager, false, 5},
	Dreamer:       {Villager, false, 6},
	Druid:         {Villager, false, 7},
	Empress:       {Villager, false, 8},
	Enlightened:   {Villager, false, 9},
	FortuneTeller: {Villager, false, 10},
	Gemcrafter:    {Villager, false, 11},
	Hunter:        {Villager, false, 12},
	Jester:        {Villager, false, 13},
	Judge:         {Villager, false, 14},
	Knight:        {Villager, false, 15},
	Knitter:       {Villager, false, 16},
	Lover:         {Villager, false, 17},
	Medium:        {Villager, false, 18},
	Oracle:        {Villager, false, 19},
	Poet:          {Villager, false, 20},
	Scout:         {Villager, false, 21},
	Slayer:        {Villager, false, 22},
	Witness:       {Villager, false, 23},

	Bombardier:   {Outcast, false, 24},
	DoppelGanger: {Outcast, false, 25},
	Drunk:        {Outcast, true, 26}, // exception: Outcast that lies
	PlagueDoctor: {Outcast, false, 27},
	Wretch:       {Outcast, false, 28},

	Counsellor: {Minion, true, 29},
	Minion:     {Minion, true, 30},
	Poisoner:   {Minion, true, 31},
	Puppet:     {Minion, false, 32}, // exception: Minion that speaks truthfully
	Puppeteer:  {Minion, true, 33},
	TwinMinion: {Minion, true, 34},
	Witch:      {Minion, true, 35},

	Baa:   {Demon, true, 36},
	Lilis: {Demon, true, 37},
	Pooka: {Demon, true, 38},
}

// aliases maps case-insensitive alternate spellings onto catalog roles.
// Text parsing (the CLI, never the core) is case-insensitive.
var aliases = map[string]Role{
	"archivist": Gemcrafter,
	"seer":      FortuneTeller,
	"doppel":    DoppelGanger,
	"doppelganger": DoppelGanger,
	"plaguedoctor":  PlagueDoctor,
	"plague_doctor": PlagueDoctor,
	"fortuneteller":  FortuneTeller,
	"fortune_teller": FortuneTeller,
	"twin_minion": TwinMinion,
	"twinminion":  TwinMinion,
}

// Group returns the role's Group. Panics on an unknown role: every
// role reaching this function is expected to have come from All() or
// a validated parse.
func (r Role) Group() Group {
	a, ok := catalog[r]
	if !ok {
		panic("roles: unknown role " + string(r))
	}
	return a.group
}

// Alignment returns Good or Evil. Villagers and Outcasts are Good;
// Minions and Demons are Evil — with no exceptions, since the Puppet
// and Drunk exceptions apply only to LiesByDefault, not Alignment.
func (r Role) Alignment() Alignment {
	switch r.Group() {
	case Villager, Outcast:
		return Good
	default:
		return Evil
	}
}

// LiesByDefault reports whether this role's speaker produces a
// falsehood absent corruption: Alignment=Evil, except the Puppet
// (Minion, truthful) and the Drunk (Outcast, lying).
func (r Role) LiesByDefault() bool {
	a, ok := catalog[r]
	if !ok {
		panic("roles: unknown role " + string(r))
	}
	return a.lies
}

// Order returns the role's position in the arbitrary total order used
// only to make multi-solution output deterministic.
func (r Role) Order() int {
	a, ok := catalog[r]
	if !ok {
		panic("roles: unknown role " + string(r))
	}
	return a.order
}

// Valid reports whether r is a known catalog role.
func (r Role) Valid() bool {
	_, ok := catalog[r]
	return ok
}

// Less orders roles by their catalog Order, for sorting solver output.
func Less(a, b Role) bool { return a.Order() < b.Order() }

// All returns every catalog role, in catalog (deterministic) order.
func All() []Role {
	out := make([]Role, 0, len(catalog))
	for r := range catalog {
		out = append(out, r)
	}
	sortRoles(out)
	return out
}

// ByGroup returns every catalog role belonging to g, in catalog order.
func ByGroup(g Group) []Role {
	out := make([]Role, 0, len(catalog))
	for r, a := range catalog {
		if a.group == g {
			out = append(out, r)
		}
	}
	sortRoles(out)
	return out
}

func sortRoles(rs []Role) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && Less(rs[j], rs[j-1]); j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}

// Parse resolves a role name from text, case-insensitively, with
// alias support (e.g. "archivist" -> Gemcrafter). This is a CLI
// concern — the core never parses strings — but it lives here because
// it is a pure function of the catalog.
func Parse(name string) (Role, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return NoRole, false
	}
	for r := range catalog {
		if strings.ToLower(string(r)) == key {
			return r, true
		}
	}
	if r, ok := aliases[key]; ok {
		return r, true
	}
	return NoRole, false
}
