package entities

import (
	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
)

// World is the state shared by every character of a save: the party
// inventory, game variables and switches, and the per-class currency. It
// implements skilltree.Party, skilltree.GlobalState and
// skilltree.CurrencySource.
type World struct {
	Items     map[skilltree.ItemKind]map[int]int `json:"items"`
	Variables map[int]int                        `json:"variables"`
	Switches  map[int]bool                       `json:"switches"`
	Currency  map[int]int                        `json:"currency"`
}

// NewWorld returns an empty world.
func NewWorld() *World {
	w := &World{}
	w.init()
	return w
}

func (w *World) init() {
	if w.Items == nil {
		w.Items = make(map[skilltree.ItemKind]map[int]int)
	}
	if w.Variables == nil {
		w.Variables = make(map[int]int)
	}
	if w.Switches == nil {
		w.Switches = make(map[int]bool)
	}
	if w.Currency == nil {
		w.Currency = make(map[int]int)
	}
}

// ItemCount implements skilltree.Party.
func (w *World) ItemCount(kind skilltree.ItemKind, id int) int {
	return w.Items[kind][id]
}

// GainItem adds items to the party inventory.
func (w *World) GainItem(kind skilltree.ItemKind, id, amount int) error {
	if _, err := skilltree.ParseItemKind(string(kind)); err != nil {
		return err
	}
	if amount < 1 {
		return errors.InvalidArgumentf("amount must be positive, got %d", amount)
	}
	w.init()
	if w.Items[kind] == nil {
		w.Items[kind] = make(map[int]int)
	}
	w.Items[kind][id] += amount
	return nil
}

// ConsumeItem implements skilltree.Party.
func (w *World) ConsumeItem(kind skilltree.ItemKind, id, amount int) error {
	have := w.ItemCount(kind, id)
	if have < amount {
		return errors.FailedPreconditionf("party holds %d of %s %d, need %d", have, kind, id, amount).
			WithMeta("kind", string(kind)).
			WithMeta("item_id", id)
	}
	if have == amount {
		delete(w.Items[kind], id)
		return nil
	}
	w.Items[kind][id] = have - amount
	return nil
}

// Variable implements skilltree.GlobalState.
func (w *World) Variable(id int) int { return w.Variables[id] }

// SetVariable implements skilltree.GlobalState.
func (w *World) SetVariable(id, value int) {
	w.init()
	w.Variables[id] = value
}

// Switch implements skilltree.GlobalState.
func (w *World) Switch(id int) bool { return w.Switches[id] }

// SetSwitch implements skilltree.GlobalState.
func (w *World) SetSwitch(id int, on bool) {
	w.init()
	if on {
		w.Switches[id] = true
		return
	}
	delete(w.Switches, id)
}

// Balance implements skilltree.CurrencySource.
func (w *World) Balance(classID int) int { return w.Currency[classID] }

// Deposit credits the currency of a class.
func (w *World) Deposit(classID, amount int) error {
	if amount < 1 {
		return errors.InvalidArgumentf("amount must be positive, got %d", amount)
	}
	w.init()
	w.Currency[classID] += amount
	return nil
}

// Deduct implements skilltree.CurrencySource.
func (w *World) Deduct(classID, amount int) error {
	if have := w.Currency[classID]; have < amount {
		return errors.FailedPreconditionf("class %d holds %d, need %d", classID, have, amount).
			WithMeta("class_id", classID)
	}
	w.init()
	w.Currency[classID] -= amount
	return nil
}
