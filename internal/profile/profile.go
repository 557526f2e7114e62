// Package profile owns a character's progression: its point ledger, the
// trees attached to it and the trees suspended while detached.
package profile

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/KirkDiggler/rpg-skilltrees/internal/catalog"
	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/ledger"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

// Config holds the dependencies of a profile.
type Config struct {
	Catalog *catalog.Catalog
	// Currency backs the ledger when the catalog uses the external policy.
	Currency ledger.Currency
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Profile is one character's progression aggregate. It is not safe for
// concurrent use.
type Profile struct {
	catalog   *catalog.Catalog
	ledger    *ledger.Ledger
	trees     []*skilltree.Tree
	suspended map[string]*skilltree.Tree
}

func newEmpty(cfg *Config) (*Profile, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l, err := ledger.New(&ledger.Config{
		Policy:   cfg.Catalog.Settings().Policy,
		Currency: cfg.Currency,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ledger")
	}
	return &Profile{
		catalog:   cfg.Catalog,
		ledger:    l,
		suspended: make(map[string]*skilltree.Tree),
	}, nil
}

// New sets up a character: its own trees with their initial points, then the
// trees of its current class.
func New(cfg *Config, actor skilltree.Actor) (*Profile, error) {
	if actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	p, err := newEmpty(cfg)
	if err != nil {
		return nil, err
	}

	if grant, ok := p.catalog.ForCharacter(actor.ID()); ok {
		if err := p.attachGrant(actor, grant); err != nil {
			return nil, err
		}
	}
	if err := p.SwitchClass(actor, 0, actor.ClassID()); err != nil {
		return nil, err
	}
	return p, nil
}

// attachGrant attaches granted trees and credits the initial points once to
// every distinct pool they resolve to.
func (p *Profile) attachGrant(actor skilltree.Actor, grant *catalog.Grant) error {
	credited := make(map[ledger.Key]bool)
	for _, t := range grant.Trees {
		if _, exists := p.Tree(t.Key()); exists {
			return errors.AlreadyExistsf("tree %s is already attached", t.Key()).WithMeta("tree", t.Key())
		}
		p.trees = append(p.trees, t)

		key, err := p.ledger.Resolve(scopeOf(t, actor))
		if err != nil {
			return errors.Wrapf(err, "failed to resolve pool of %s", t.Key())
		}
		if !credited[key] {
			credited[key] = true
			p.ledger.Add(key, grant.InitialPoints)
		}
	}
	return nil
}

func scopeOf(t *skilltree.Tree, actor skilltree.Actor) ledger.Scope {
	scope := ledger.Scope{ClassID: t.ClassID(), TreeKey: t.Key()}
	if actor != nil {
		scope.ActorClassID = actor.ClassID()
	}
	return scope
}

// SwitchClass hides and forgets the trees of oldClassID, attaching the trees
// of newClassID the first time the class is seen, then relearns and shows
// them. A class's trees are never attached twice.
func (p *Profile) SwitchClass(actor skilltree.Actor, oldClassID, newClassID int) error {
	if oldClassID > 0 {
		for _, t := range p.trees {
			if t.ClassID() == oldClassID {
				t.Forget(actor)
				t.SetVisible(false)
			}
		}
	}
	if newClassID <= 0 {
		return nil
	}

	for _, key := range p.Suspended() {
		if t := p.suspended[key]; t.ClassID() == newClassID {
			delete(p.suspended, key)
			p.trees = append(p.trees, t)
		}
	}
	if !p.hasClass(newClassID) {
		if grant, ok := p.catalog.ForClass(newClassID); ok {
			if err := p.attachGrant(actor, grant); err != nil {
				return err
			}
		}
	}

	for _, t := range p.trees {
		if t.ClassID() == newClassID {
			t.SetVisible(true)
		}
	}
	p.relearnVisible(actor)
	return nil
}

// relearnVisible grants again every ability held in a visible tree. The same
// node may sit in several trees, so forgetting one copy can revoke an ability
// another visible copy still holds.
func (p *Profile) relearnVisible(actor skilltree.Actor) {
	for _, t := range p.trees {
		if t.Visible() {
			t.Relearn(actor)
		}
	}
}

func (p *Profile) hasClass(classID int) bool {
	for _, t := range p.trees {
		if t.ClassID() == classID {
			return true
		}
	}
	return false
}

// AttachTree attaches a tree by key. A suspended tree comes back with its
// progress; otherwise a standalone tree is instantiated from the catalog.
func (p *Profile) AttachTree(actor skilltree.Actor, key string) (*skilltree.Tree, error) {
	if _, exists := p.Tree(key); exists {
		return nil, errors.AlreadyExistsf("tree %s is already attached", key).WithMeta("tree", key)
	}

	if t, ok := p.suspended[key]; ok {
		delete(p.suspended, key)
		p.trees = append(p.trees, t)
		t.SetVisible(true)
		p.relearnVisible(actor)
		return t, nil
	}

	if !p.catalog.IsStandalone(key) {
		if !p.catalog.Has(key) {
			return nil, errors.NotFoundf("tree %s not found", key).WithMeta("tree", key)
		}
		return nil, errors.FailedPreconditionf("tree %s is not standalone", key).WithMeta("tree", key)
	}
	t, err := p.catalog.Instantiate(key)
	if err != nil {
		return nil, err
	}
	p.trees = append(p.trees, t)
	return t, nil
}

// DetachTree forgets a tree's abilities and removes it. With preserve the
// tree is kept in suspended storage and AttachTree restores its progress.
func (p *Profile) DetachTree(actor skilltree.Actor, key string, preserve bool) error {
	idx := p.index(key)
	if idx < 0 {
		return errors.NotFoundf("tree %s is not attached", key).WithMeta("tree", key)
	}
	t := p.trees[idx]
	t.Forget(actor)
	t.SetVisible(false)
	p.trees = append(p.trees[:idx], p.trees[idx+1:]...)
	if preserve {
		p.suspended[key] = t
	}
	p.relearnVisible(actor)
	return nil
}

func (p *Profile) index(key string) int {
	for i, t := range p.trees {
		if t.Key() == key {
			return i
		}
	}
	return -1
}

// Tree returns an attached tree.
func (p *Profile) Tree(key string) (*skilltree.Tree, bool) {
	if i := p.index(key); i >= 0 {
		return p.trees[i], true
	}
	return nil, false
}

// Trees returns every attached tree, hidden ones included.
func (p *Profile) Trees() []*skilltree.Tree {
	return append([]*skilltree.Tree(nil), p.trees...)
}

// VisibleTrees returns the attached trees currently shown.
func (p *Profile) VisibleTrees() []*skilltree.Tree {
	var out []*skilltree.Tree
	for _, t := range p.trees {
		if t.Visible() {
			out = append(out, t)
		}
	}
	return out
}

// Suspended returns the keys of detached trees kept for later, sorted.
func (p *Profile) Suspended() []string {
	keys := make([]string, 0, len(p.suspended))
	for k := range p.suspended {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Ledger returns the point ledger.
func (p *Profile) Ledger() *ledger.Ledger { return p.ledger }

// Balances returns a copy of every pool balance.
func (p *Profile) Balances() map[ledger.Key]int { return p.ledger.Balances() }

// Points returns the pool view requirements spend from on behalf of actor.
func (p *Profile) Points(actor skilltree.Actor) skilltree.Points {
	return &pool{ledger: p.ledger, actor: actor}
}

// Learner returns a copy of l wired to this profile's points.
func (p *Profile) Learner(l skilltree.Learner) *skilltree.Learner {
	l.Points = p.Points(l.Actor)
	return &l
}

type pool struct {
	ledger *ledger.Ledger
	actor  skilltree.Actor
}

func (v *pool) Balance(t *skilltree.Tree) (int, error) {
	return v.ledger.Balance(scopeOf(t, v.actor))
}

func (v *pool) Spend(t *skilltree.Tree, amount int) error {
	return v.ledger.Spend(scopeOf(t, v.actor), amount)
}

func (p *Profile) visibleNode(treeKey, nodeKey string) (*skilltree.Tree, *skilltree.Node, error) {
	t, ok := p.Tree(treeKey)
	if !ok {
		return nil, nil, errors.NotFoundf("tree %s is not attached", treeKey).WithMeta("tree", treeKey)
	}
	if !t.Visible() {
		return nil, nil, errors.FailedPreconditionf("tree %s is hidden", treeKey).WithMeta("tree", treeKey)
	}
	n, ok := t.Node(nodeKey)
	if !ok {
		return nil, nil, errors.NotFoundf("node %s not found in tree %s", nodeKey, treeKey).
			WithMeta("tree", treeKey).
			WithMeta("node", nodeKey)
	}
	return t, n, nil
}

// Learn commits one level of a node after checking it is available.
func (p *Profile) Learn(ctx context.Context, l skilltree.Learner, treeKey, nodeKey string) error {
	t, n, err := p.visibleNode(treeKey, nodeKey)
	if err != nil {
		return err
	}
	learner := p.Learner(l)
	if !n.IsAvailableToLearn(learner, t) {
		return errors.FailedPreconditionf("node %s is not available to learn", nodeKey).
			WithMeta("tree", treeKey).
			WithMeta("node", nodeKey)
	}
	err = n.Learn(ctx, learner, t)
	p.relearnVisible(l.Actor)
	return err
}

// ForceLearn raises a node by up to levels without requirements.
func (p *Profile) ForceLearn(actor skilltree.Actor, treeKey, nodeKey string, levels int) (int, error) {
	if levels < 1 {
		return 0, errors.InvalidArgumentf("levels must be positive, got %d", levels)
	}
	_, n, err := p.visibleNode(treeKey, nodeKey)
	if err != nil {
		return 0, err
	}
	gained := n.ForceLevelUp(actor, levels)
	p.relearnVisible(actor)
	return gained, nil
}

// UnlockTree maxes every node of a tree without requirements.
func (p *Profile) UnlockTree(actor skilltree.Actor, treeKey string) (int, error) {
	t, ok := p.Tree(treeKey)
	if !ok {
		return 0, errors.NotFoundf("tree %s is not attached", treeKey).WithMeta("tree", treeKey)
	}
	gained := t.UnlockAll(actor)
	p.relearnVisible(actor)
	return gained, nil
}

// ResetTree resets one tree and credits the refund to its pool.
func (p *Profile) ResetTree(actor skilltree.Actor, treeKey string) (int, error) {
	t, ok := p.Tree(treeKey)
	if !ok {
		return 0, errors.NotFoundf("tree %s is not attached", treeKey).WithMeta("tree", treeKey)
	}
	return p.resetTrees(actor, []*skilltree.Tree{t})
}

// ResetClass resets every attached tree bound to classID.
func (p *Profile) ResetClass(actor skilltree.Actor, classID int) (int, error) {
	return p.resetTrees(actor, p.filter(func(t *skilltree.Tree) bool { return t.ClassID() == classID }))
}

// ResetOwn resets every attached tree bound to the character itself.
func (p *Profile) ResetOwn(actor skilltree.Actor) (int, error) {
	return p.resetTrees(actor, p.filter(func(t *skilltree.Tree) bool { return t.CharacterID() == actor.ID() }))
}

// ResetAll resets every attached tree.
func (p *Profile) ResetAll(actor skilltree.Actor) (int, error) {
	return p.resetTrees(actor, p.Trees())
}

func (p *Profile) filter(keep func(*skilltree.Tree) bool) []*skilltree.Tree {
	var out []*skilltree.Tree
	for _, t := range p.trees {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// resetTrees resolves every pool first so a failure leaves all trees
// untouched, then resets and credits each pool once.
func (p *Profile) resetTrees(actor skilltree.Actor, trees []*skilltree.Tree) (int, error) {
	keys := make([]ledger.Key, len(trees))
	for i, t := range trees {
		key, err := p.ledger.Resolve(scopeOf(t, actor))
		if err != nil {
			return 0, errors.Wrapf(err, "failed to resolve pool of %s", t.Key())
		}
		keys[i] = key
	}

	refunds := make(map[ledger.Key]int)
	var order []ledger.Key
	total := 0
	for i, t := range trees {
		refund := t.Reset(actor)
		if _, seen := refunds[keys[i]]; !seen {
			order = append(order, keys[i])
		}
		refunds[keys[i]] += refund
		total += refund
	}
	for _, key := range order {
		if refunds[key] > 0 {
			p.ledger.Add(key, refunds[key])
		}
	}
	p.relearnVisible(actor)
	return total, nil
}

// GrantPoints adds points to a pool.
func (p *Profile) GrantPoints(key ledger.Key, points int) error {
	if points < 1 {
		return errors.InvalidArgumentf("points must be positive, got %d", points)
	}
	if p.ledger.Policy() == ledger.PolicyExternal {
		return errors.FailedPrecondition("points come from the external currency")
	}
	p.ledger.Add(key, points)
	return nil
}

// OnLevelUp grants the configured points per level to the actor's pool.
func (p *Profile) OnLevelUp(actor skilltree.Actor, levels int) (int, error) {
	perLevel := p.catalog.Settings().PointsPerLevel
	if levels < 1 || perLevel == 0 || p.ledger.Policy() == ledger.PolicyExternal {
		return 0, nil
	}
	key, err := p.ledger.Resolve(ledger.Scope{ActorClassID: actor.ClassID()})
	if err != nil {
		return 0, errors.Wrap(err, "failed to resolve level up pool")
	}
	granted := perLevel * levels
	p.ledger.Add(key, granted)
	return granted, nil
}

type profileWire struct {
	Points    *ledger.Ledger    `json:"points"`
	Trees     []*skilltree.Tree `json:"trees"`
	Suspended []*skilltree.Tree `json:"suspended,omitempty"`
}

// MarshalJSON writes the ledger, the attached trees and the suspended trees.
func (p *Profile) MarshalJSON() ([]byte, error) {
	w := profileWire{Points: p.ledger, Trees: p.trees}
	if w.Trees == nil {
		w.Trees = []*skilltree.Tree{}
	}
	for _, key := range p.Suspended() {
		w.Suspended = append(w.Suspended, p.suspended[key])
	}
	return json.Marshal(w)
}

// Restore rebuilds a profile from MarshalJSON output. A tree or node the
// catalog no longer defines is a DataLoss error.
func Restore(cfg *Config, data []byte) (*Profile, error) {
	p, err := newEmpty(cfg)
	if err != nil {
		return nil, err
	}
	w := profileWire{Points: p.ledger}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode profile")
	}

	for _, t := range w.Trees {
		if err := p.checkAgainstCatalog(t); err != nil {
			return nil, err
		}
		if _, exists := p.Tree(t.Key()); exists {
			return nil, errors.DataLossf("tree %s is saved twice", t.Key()).WithMeta("tree", t.Key())
		}
		p.trees = append(p.trees, t)
	}
	for _, t := range w.Suspended {
		if err := p.checkAgainstCatalog(t); err != nil {
			return nil, err
		}
		p.suspended[t.Key()] = t
	}
	return p, nil
}

func (p *Profile) checkAgainstCatalog(t *skilltree.Tree) error {
	if t == nil {
		return errors.DataLoss("saved tree is empty")
	}
	template, err := p.catalog.Instantiate(t.Key())
	if err != nil {
		return errors.DataLossf("saved tree %s is no longer in the catalog", t.Key()).WithMeta("tree", t.Key())
	}
	for _, n := range t.Nodes() {
		if _, ok := template.Node(n.Key()); !ok {
			return errors.DataLossf("saved node %s is no longer in tree %s", n.Key(), t.Key()).
				WithMeta("tree", t.Key()).
				WithMeta("node", n.Key())
		}
	}
	return nil
}
