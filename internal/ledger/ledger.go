// Package ledger tracks skill point balances across independently scoped
// pools and decides which pool a tree draws from.
package ledger

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
)

// Policy selects the economic model. It is fixed when the ledger is built.
type Policy string

// Pool policies
const (
	// PolicySingle coerces every key to the default pool.
	PolicySingle Policy = "single"
	// PolicySeparate keeps one pool per class and one per unscoped tree.
	PolicySeparate Policy = "separate"
	// PolicyExternal delegates balances to an external per-class currency.
	PolicyExternal Policy = "external"
)

// ParsePolicy validates a configured policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicySingle, PolicySeparate, PolicyExternal:
		return p, nil
	default:
		return "", errors.InvalidArgumentf("unknown pool policy %q", s).
			WithMeta("allowed", []string{string(PolicySingle), string(PolicySeparate), string(PolicyExternal)})
	}
}

// Key identifies a pool: "0" for the default pool, a decimal class id, or a
// tree key.
type Key string

// DefaultKey is the single-pool key.
const DefaultKey Key = "0"

// ClassKey returns the pool key of a class.
func ClassKey(classID int) Key {
	return Key(strconv.Itoa(classID))
}

// TreeKey returns the pool key of an unscoped tree.
func TreeKey(key string) Key {
	return Key(key)
}

// Scope carries what the ledger needs to resolve a pool. ClassID and TreeKey
// come from a tree; ActorClassID is the fallback when no tree is involved.
type Scope struct {
	ClassID      int
	TreeKey      string
	ActorClassID int
}

// Currency is the external per-class currency used in external mode.
type Currency interface {
	Balance(classID int) int
	Deduct(classID, amount int) error
}

// Config configures a Ledger.
type Config struct {
	Policy Policy
	// Currency is required in external mode and ignored otherwise.
	Currency Currency
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if _, err := ParsePolicy(string(c.Policy)); err != nil {
		vb.Field("policy", errors.GetMessage(err))
	}
	if c.Policy == PolicyExternal && c.Currency == nil {
		vb.Field("currency", "is required for the external policy")
	}
	return vb.Build()
}

// Ledger maps pool keys to balances. Untouched keys read as 0.
type Ledger struct {
	policy   Policy
	currency Currency
	balances map[Key]int
}

// New creates an empty ledger.
func New(cfg *Config) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Ledger{
		policy:   cfg.Policy,
		currency: cfg.Currency,
		balances: make(map[Key]int),
	}, nil
}

// Policy returns the configured policy.
func (l *Ledger) Policy() Policy { return l.policy }

func (l *Ledger) normalize(key Key) Key {
	if l.policy == PolicySingle {
		return DefaultKey
	}
	return key
}

// Get returns the stored balance of key.
func (l *Ledger) Get(key Key) int {
	return l.balances[l.normalize(key)]
}

// Add adds delta to key, creating it when absent. It is a no-op in external
// mode.
func (l *Ledger) Add(key Key, delta int) {
	if l.policy == PolicyExternal {
		return
	}
	l.balances[l.normalize(key)] += delta
}

// Resolve returns the pool a scope draws from. A class-bound tree uses its
// class pool and any other tree uses its own key, never the actor's class.
func (l *Ledger) Resolve(scope Scope) (Key, error) {
	if l.policy == PolicySingle {
		return DefaultKey, nil
	}
	switch {
	case scope.ClassID != 0:
		return ClassKey(scope.ClassID), nil
	case scope.TreeKey != "":
		return TreeKey(scope.TreeKey), nil
	case scope.ActorClassID != 0:
		return ClassKey(scope.ActorClassID), nil
	default:
		return "", errors.FailedPreconditionf("no pool can be resolved under the %s policy", l.policy)
	}
}

func (l *Ledger) externalClass(scope Scope) (int, error) {
	if scope.ClassID != 0 {
		return scope.ClassID, nil
	}
	if scope.ActorClassID != 0 {
		return scope.ActorClassID, nil
	}
	return 0, errors.FailedPrecondition("external currency needs a class")
}

// Balance returns the balance available to scope.
func (l *Ledger) Balance(scope Scope) (int, error) {
	if l.policy == PolicyExternal {
		classID, err := l.externalClass(scope)
		if err != nil {
			return 0, err
		}
		return l.currency.Balance(classID), nil
	}
	key, err := l.Resolve(scope)
	if err != nil {
		return 0, err
	}
	return l.balances[key], nil
}

// Spend removes amount from the pool scope resolves to. Spending more than
// the balance fails without touching the pool.
func (l *Ledger) Spend(scope Scope, amount int) error {
	if amount < 0 {
		return errors.InvalidArgumentf("cannot spend a negative amount %d", amount)
	}
	if l.policy == PolicyExternal {
		classID, err := l.externalClass(scope)
		if err != nil {
			return err
		}
		return l.currency.Deduct(classID, amount)
	}
	key, err := l.Resolve(scope)
	if err != nil {
		return err
	}
	if l.balances[key] < amount {
		return errors.FailedPreconditionf("pool %s has %d points, %d needed", key, l.balances[key], amount).
			WithMeta("pool", string(key))
	}
	l.balances[key] -= amount
	return nil
}

// Credit adds amount to the pool scope resolves to. It is a no-op in external
// mode.
func (l *Ledger) Credit(scope Scope, amount int) error {
	if amount < 0 {
		return errors.InvalidArgumentf("cannot credit a negative amount %d", amount)
	}
	if l.policy == PolicyExternal {
		return nil
	}
	key, err := l.Resolve(scope)
	if err != nil {
		return err
	}
	l.balances[key] += amount
	return nil
}

// Balances returns a copy of every stored balance.
func (l *Ledger) Balances() map[Key]int {
	out := make(map[Key]int, len(l.balances))
	for k, v := range l.balances {
		out[k] = v
	}
	return out
}

// MarshalJSON writes the balances as a plain key to integer map.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.balances)
}

// UnmarshalJSON replaces the balances. The policy is kept.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	balances := make(map[Key]int)
	if err := json.Unmarshal(data, &balances); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "malformed ledger")
	}
	l.balances = balances
	return nil
}
