package skilltree_test

import (
	"context"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

type fakeActor struct {
	id        int
	classID   int
	level     int
	stats     map[skilltree.Stat]int
	abilities map[skilltree.AbilityID]bool
	refreshes int
}

func newFakeActor() *fakeActor {
	return &fakeActor{
		id:        1,
		classID:   1,
		level:     1,
		stats:     make(map[skilltree.Stat]int),
		abilities: make(map[skilltree.AbilityID]bool),
	}
}

func (a *fakeActor) ID() int { return a.id }
func (a *fakeActor) ClassID() int { return a.classID }
func (a *fakeActor) Level() int { return a.level }
func (a *fakeActor) Stat(stat skilltree.Stat) int { return a.stats[stat] }
func (a *fakeActor) HasAbility(id skilltree.AbilityID) bool { return a.abilities[id] }
func (a *fakeActor) GrantAbility(id skilltree.AbilityID) { a.abilities[id] = true }
func (a *fakeActor) RevokeAbility(id skilltree.AbilityID) { delete(a.abilities, id) }
func (a *fakeActor) Refresh() { a.refreshes++ }

func (a *fakeActor) held() []skilltree.AbilityID {
	var ids []skilltree.AbilityID
	for id := range a.abilities {
		ids = append(ids, id)
	}
	return ids
}

// fakePoints keeps one balance per class id, with 0 for unscoped trees.
type fakePoints struct {
	balances map[int]int
}

func newFakePoints(balance int) *fakePoints {
	return &fakePoints{balances: map[int]int{0: balance}}
}

func (p *fakePoints) Balance(tree *skilltree.Tree) (int, error) {
	return p.balances[tree.ClassID()], nil
}

func (p *fakePoints) Spend(tree *skilltree.Tree, amount int) error {
	p.balances[tree.ClassID()] -= amount
	return nil
}

type fakeParty struct {
	items map[skilltree.ItemKind]map[int]int
}

func newFakeParty() *fakeParty {
	return &fakeParty{items: make(map[skilltree.ItemKind]map[int]int)}
}

func (p *fakeParty) give(kind skilltree.ItemKind, id, amount int) {
	if p.items[kind] == nil {
		p.items[kind] = make(map[int]int)
	}
	p.items[kind][id] += amount
}

func (p *fakeParty) ItemCount(kind skilltree.ItemKind, id int) int {
	return p.items[kind][id]
}

func (p *fakeParty) ConsumeItem(kind skilltree.ItemKind, id, amount int) error {
	if p.items[kind][id] < amount {
		return errors.FailedPreconditionf("not enough %s %d", kind, id)
	}
	p.items[kind][id] -= amount
	return nil
}

type fakeState struct {
	variables map[int]int
	switches  map[int]bool
}

func newFakeState() *fakeState {
	return &fakeState{variables: make(map[int]int), switches: make(map[int]bool)}
}

func (s *fakeState) Variable(id int) int { return s.variables[id] }
func (s *fakeState) SetVariable(id, value int) { s.variables[id] = value }
func (s *fakeState) Switch(id int) bool { return s.switches[id] }
func (s *fakeState) SetSwitch(id int, on bool) { s.switches[id] = on }

type eventFunc func(ctx context.Context, eventID int) error

func (f eventFunc) Run(ctx context.Context, eventID int) error { return f(ctx, eventID) }

func mustCost(price int) skilltree.Requirement {
	r, err := skilltree.NewPointCost(price)
	if err != nil {
		panic(err)
	}
	return r
}

func mustNode(cfg skilltree.NodeConfig) *skilltree.Node {
	n, err := skilltree.NewNode(cfg)
	if err != nil {
		panic(err)
	}
	return n
}

func mustTree(cfg skilltree.TreeConfig) *skilltree.Tree {
	t, err := skilltree.NewTree(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// costNode builds a node whose every level costs the matching price.
func costNode(key string, firstAbility skilltree.AbilityID, prices ...int) *skilltree.Node {
	cfg := skilltree.NodeConfig{Key: key}
	for i, price := range prices {
		cfg.Abilities = append(cfg.Abilities, firstAbility+skilltree.AbilityID(i))
		cfg.Requirements = append(cfg.Requirements, []skilltree.Requirement{mustCost(price)})
	}
	return mustNode(cfg)
}

// fakeCurrency keeps one external balance per class id.
type fakeCurrency struct {
	balances map[int]int
}

func (c *fakeCurrency) Balance(classID int) int { return c.balances[classID] }

func (c *fakeCurrency) Deduct(classID, amount int) error {
	if c.balances[classID] < amount {
		return errors.FailedPreconditionf("class %d has %d, %d needed", classID, c.balances[classID], amount)
	}
	c.balances[classID] -= amount
	return nil
}
