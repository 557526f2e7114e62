package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/ledger"
)

type fakeCurrency struct {
	balances map[int]int
}

func (c *fakeCurrency) Balance(classID int) int { return c.balances[classID] }

func (c *fakeCurrency) Deduct(classID, amount int) error {
	if c.balances[classID] < amount {
		return errors.FailedPrecondition("not enough currency")
	}
	c.balances[classID] -= amount
	return nil
}

type LedgerTestSuite struct {
	suite.Suite
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) newLedger(policy ledger.Policy) *ledger.Ledger {
	l, err := ledger.New(&ledger.Config{Policy: policy})
	s.Require().NoError(err)
	return l
}

func (s *LedgerTestSuite) TestSinglePoolCoercesKeys() {
	l := s.newLedger(ledger.PolicySingle)
	l.Add(ledger.ClassKey(3), 10)
	l.Add(ledger.TreeKey("berserk_tree"), 5)

	s.Equal(15, l.Get(ledger.DefaultKey))
	s.Equal(15, l.Get(ledger.ClassKey(7)))

	key, err := l.Resolve(ledger.Scope{ClassID: 3})
	s.Require().NoError(err)
	s.Equal(ledger.DefaultKey, key)
	s.Equal(map[ledger.Key]int{ledger.DefaultKey: 15}, l.Balances())
}

func (s *LedgerTestSuite) TestSeparatePoolsAreIsolated() {
	l := s.newLedger(ledger.PolicySeparate)
	l.Add(ledger.ClassKey(1), 10)
	classA := ledger.Scope{ClassID: 1}
	classB := ledger.Scope{ClassID: 2}

	s.Require().NoError(l.Spend(classA, 4))
	s.Equal(6, l.Get(ledger.ClassKey(1)))
	s.Equal(0, l.Get(ledger.ClassKey(2)))

	s.Require().NoError(l.Credit(classB, 3))
	s.Equal(6, l.Get(ledger.ClassKey(1)))

	balance, err := l.Balance(classB)
	s.Require().NoError(err)
	s.Equal(3, balance)
}

func (s *LedgerTestSuite) TestResolveOrder() {
	l := s.newLedger(ledger.PolicySeparate)
	testCases := []struct {
		name  string
		scope ledger.Scope
		want  ledger.Key
	}{
		{name: "class tree", scope: ledger.Scope{ClassID: 2, TreeKey: "knight", ActorClassID: 5}, want: "2"},
		{name: "unscoped tree ignores actor class", scope: ledger.Scope{TreeKey: "berserk_tree", ActorClassID: 5}, want: "berserk_tree"},
		{name: "actor only", scope: ledger.Scope{ActorClassID: 5}, want: "5"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			key, err := l.Resolve(tc.scope)
			s.Require().NoError(err)
			s.Equal(tc.want, key)
		})
	}

	_, err := l.Resolve(ledger.Scope{})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *LedgerTestSuite) TestSpendMoreThanBalanceFails() {
	l := s.newLedger(ledger.PolicySeparate)
	l.Add(ledger.ClassKey(1), 2)

	err := l.Spend(ledger.Scope{ClassID: 1}, 3)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(2, l.Get(ledger.ClassKey(1)))

	s.True(errors.IsInvalidArgument(l.Spend(ledger.Scope{ClassID: 1}, -1)))
}

func (s *LedgerTestSuite) TestExternalDelegates() {
	currency := &fakeCurrency{balances: map[int]int{4: 9}}
	l, err := ledger.New(&ledger.Config{Policy: ledger.PolicyExternal, Currency: currency})
	s.Require().NoError(err)

	balance, err := l.Balance(ledger.Scope{TreeKey: "mage", ActorClassID: 4})
	s.Require().NoError(err)
	s.Equal(9, balance)

	s.Require().NoError(l.Spend(ledger.Scope{ClassID: 4}, 5))
	s.Equal(4, currency.balances[4])

	l.Add(ledger.ClassKey(4), 100)
	s.Require().NoError(l.Credit(ledger.Scope{ClassID: 4}, 100))
	s.Equal(4, currency.balances[4])
	s.Empty(l.Balances())
}

func (s *LedgerTestSuite) TestJSONRoundTrip() {
	l := s.newLedger(ledger.PolicySeparate)
	l.Add(ledger.DefaultKey, 1)
	l.Add(ledger.ClassKey(3), 12)
	l.Add(ledger.TreeKey("berserk_tree"), 4)

	data, err := json.Marshal(l)
	s.Require().NoError(err)
	s.JSONEq(`{"0":1,"3":12,"berserk_tree":4}`, string(data))

	restored := s.newLedger(ledger.PolicySeparate)
	s.Require().NoError(json.Unmarshal(data, restored))
	s.Equal(l.Balances(), restored.Balances())
}

func TestParsePolicy(t *testing.T) {
	p, err := ledger.ParsePolicy(" Separate ")
	require.NoError(t, err)
	assert.Equal(t, ledger.PolicySeparate, p)

	_, err = ledger.ParsePolicy("shared")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestConfigValidate(t *testing.T) {
	_, err := ledger.New(&ledger.Config{Policy: ledger.PolicyExternal})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = ledger.New(nil)
	require.Error(t, err)
}
