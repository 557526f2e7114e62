// Package skilltree implements the skill progression rules engine: skill nodes
// gated by composable requirements, learn effects fired on level-up, and the
// trees that arrange nodes on a fixed grid.
//
// The package owns no game state of its own beyond node levels and tree spent
// points. Everything else is reached through the collaborator interfaces
// bundled in a Learner.
package skilltree

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
)

// AbilityID identifies an ability granted by one level of a node.
type AbilityID int

// ItemKind selects which inventory table an item requirement reads.
type ItemKind string

// Item kinds
const (
	ItemKindItem   ItemKind = "item"
	ItemKindWeapon ItemKind = "weapon"
	ItemKindArmor  ItemKind = "armor"
)

// ParseItemKind validates an item kind.
func ParseItemKind(s string) (ItemKind, error) {
	switch kind := ItemKind(strings.ToLower(s)); kind {
	case ItemKindItem, ItemKindWeapon, ItemKindArmor:
		return kind, nil
	default:
		return "", errors.InvalidArgumentf("unknown item kind %q", s)
	}
}

// Stat is a computed character parameter a stat requirement can check.
type Stat string

// Character stats
const (
	StatMaxHP        Stat = "mhp"
	StatMaxMP        Stat = "mmp"
	StatAttack       Stat = "atk"
	StatDefense      Stat = "def"
	StatMagicAttack  Stat = "mat"
	StatMagicDefense Stat = "mdf"
	StatAgility      Stat = "agi"
	StatLuck         Stat = "luk"
)

// Stats lists every stat in display order.
var Stats = []Stat{
	StatMaxHP, StatMaxMP, StatAttack, StatDefense,
	StatMagicAttack, StatMagicDefense, StatAgility, StatLuck,
}

// ParseStat validates a stat name.
func ParseStat(s string) (Stat, error) {
	want := Stat(strings.ToLower(s))
	for _, stat := range Stats {
		if stat == want {
			return stat, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown stat %q", s)
}

// Actor is the character a node is learned by.
type Actor interface {
	ID() int
	ClassID() int
	Level() int
	Stat(stat Stat) int
	HasAbility(id AbilityID) bool
	GrantAbility(id AbilityID)
	RevokeAbility(id AbilityID)
	// Refresh re-derives persistent state after the ability set changed.
	Refresh()
}

// Party holds the shared inventory.
type Party interface {
	ItemCount(kind ItemKind, id int) int
	ConsumeItem(kind ItemKind, id, amount int) error
}

// GlobalState holds persistent game variables and switches.
type GlobalState interface {
	Variable(id int) int
	SetVariable(id, value int)
	Switch(id int) bool
	SetSwitch(id int, on bool)
}

// EventInterpreter runs scripted events. Run must not be assumed to wait for
// the event to finish.
type EventInterpreter interface {
	Run(ctx context.Context, eventID int) error
}

// CurrencySource is an external per-class currency.
type CurrencySource interface {
	Balance(classID int) int
	Deduct(classID, amount int) error
}

// Points is the skill point pool a PointCost draws from. The implementation
// resolves which pool a tree spends from.
type Points interface {
	Balance(tree *Tree) (int, error)
	Spend(tree *Tree, amount int) error
}

// Learner bundles the collaborators a requirement check, commit or learn
// effect may touch. Any collaborator except Actor may be nil; requirements
// that need a missing collaborator are never met.
type Learner struct {
	Actor    Actor
	Points   Points
	Party    Party
	State    GlobalState
	Events   EventInterpreter
	Currency CurrencySource
}
