package progression

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-skilltrees/internal/entities"
	"github.com/KirkDiggler/rpg-skilltrees/internal/profile"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

func summarize(c *entities.Character, p *profile.Profile) *CharacterSummary {
	summary := &CharacterSummary{
		ID:        c.ID(),
		Name:      c.Name(),
		ClassID:   c.ClassID(),
		Level:     c.Level(),
		Abilities: c.Abilities(),
		Balances:  p.Balances(),
		Suspended: p.Suspended(),
	}
	for _, t := range p.VisibleTrees() {
		summary.Trees = append(summary.Trees, t.Key())
	}
	return summary
}

func treeView(l *skilltree.Learner, t *skilltree.Tree) *TreeView {
	balance, err := l.Points.Balance(t)
	if err != nil {
		balance = -1
	}

	view := &TreeView{
		Key:         t.Key(),
		Name:        t.Name(),
		Scope:       t.Scope(),
		Visible:     t.Visible(),
		Columns:     t.Columns(),
		Rows:        t.Rows(),
		SpentPoints: t.SpentPoints(),
		Balance:     balance,
	}
	for _, slot := range t.Slots() {
		cell := &SlotView{}
		if slot != nil {
			cell.Kind = slot.Kind()
			cell.Icon = slot.IconRef()
			cell.Enabled = slot.IsEnabled(l, t)
			if n, ok := slot.(*skilltree.Node); ok {
				cell.Node = nodeView(l, t, n)
			}
		}
		view.Slots = append(view.Slots, cell)
	}
	return view
}

func nodeView(l *skilltree.Learner, t *skilltree.Tree, n *skilltree.Node) *NodeView {
	view := &NodeView{
		Key:      n.Key(),
		Name:     n.Name(),
		Level:    n.CurrentLevel(),
		MaxLevel: n.MaxLevel(),
		State:    n.State(l, t).String(),
		Refund:   n.Refund(),
	}
	if id, ok := n.CurrentAbility(); ok {
		view.Ability = id
	}
	if !n.IsMaxed() {
		view.NextAbility = n.Abilities()[n.CurrentLevel()]
	}
	for _, req := range n.RequirementsForNextLevel() {
		view.Requirements = append(view.Requirements, &RequirementView{
			Type:        req.Type(),
			Description: req.Describe(),
			Met:         req.Meets(l, t),
		})
	}
	return view
}

func sortedIDs(characters map[int]*entities.Character) []int {
	ids := make([]int, 0, len(characters))
	for id := range characters {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
