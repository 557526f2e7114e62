package save_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-skilltrees/internal/entities"
	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-skilltrees/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-skilltrees/internal/redis"
	"github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save"
	"github.com/KirkDiggler/rpg-skilltrees/internal/skilltree"
	"github.com/KirkDiggler/rpg-skilltrees/internal/testutils"
)

const testSaveID = "save_1"

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	client    redis.Client
	mr        *miniredis.Miniredis
	repo      save.Repository
	now       time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())

	repo, err := save.NewRedis(&save.RedisConfig{
		Client: s.client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) newSave() *save.Save {
	hero, err := entities.NewCharacter(entities.CharacterConfig{ID: 1, Name: "Harold", ClassID: 2, Level: 3})
	s.Require().NoError(err)
	hero.GrantAbility(11)

	world := entities.NewWorld()
	s.Require().NoError(world.GainItem(skilltree.ItemKindWeapon, 4, 1))

	return &save.Save{
		ID:         testSaveID,
		World:      world,
		Characters: map[int]*entities.Character{1: hero},
		Profiles:   map[int]json.RawMessage{1: json.RawMessage(`{"points":{"0":55},"trees":[]}`)},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, save.CreateInput{Save: s.newSave()})
	s.Require().NoError(err)
	s.Equal(int64(1), created.Save.Version)
	s.Equal(s.now, created.Save.CreatedAt)
	s.True(s.mr.Exists("skilltrees:save:save_1"))

	got, err := s.repo.Get(s.ctx, save.GetInput{ID: testSaveID})
	s.Require().NoError(err)
	s.Equal(int64(1), got.Save.Version)
	s.Equal("Harold", got.Save.Characters[1].Name())
	s.True(got.Save.Characters[1].HasAbility(11))
	s.Equal(1, got.Save.World.ItemCount(skilltree.ItemKindWeapon, 4))
	s.JSONEq(`{"points":{"0":55},"trees":[]}`, string(got.Save.Profiles[1]))
	s.True(s.now.Equal(got.Save.UpdatedAt))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	testCases := []struct {
		name   string
		input  save.CreateInput
		errMsg string
	}{
		{name: "nil save", input: save.CreateInput{}, errMsg: "save cannot be nil"},
		{name: "empty id", input: save.CreateInput{Save: &save.Save{}}, errMsg: "save ID cannot be empty"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, save.CreateInput{Save: s.newSave()})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, save.CreateInput{Save: s.newSave()})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissingAndCorrupt() {
	_, err := s.repo.Get(s.ctx, save.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, save.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	s.Require().NoError(s.mr.Set("skilltrees:save:broken", "{not json"))
	_, err = s.repo.Get(s.ctx, save.GetInput{ID: "broken"})
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateBumpsVersion() {
	created, err := s.repo.Create(s.ctx, save.CreateInput{Save: s.newSave()})
	s.Require().NoError(err)

	next := created.Save
	next.World.SetVariable(1, 5)
	updated, err := s.repo.Update(s.ctx, save.UpdateInput{Save: next})
	s.Require().NoError(err)
	s.Equal(int64(2), updated.Save.Version)
	s.Equal(int64(1), next.Version, "input is not modified")

	got, err := s.repo.Get(s.ctx, save.GetInput{ID: testSaveID})
	s.Require().NoError(err)
	s.Equal(int64(2), got.Save.Version)
	s.Equal(5, got.Save.World.Variable(1))
}

func (s *RedisRepositoryTestSuite) TestUpdateStaleVersionAborts() {
	created, err := s.repo.Create(s.ctx, save.CreateInput{Save: s.newSave()})
	s.Require().NoError(err)

	_, err = s.repo.Update(s.ctx, save.UpdateInput{Save: created.Save})
	s.Require().NoError(err)

	_, err = s.repo.Update(s.ctx, save.UpdateInput{Save: created.Save})
	s.Require().Error(err)
	s.Equal(errors.CodeAborted, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, save.UpdateInput{Save: s.newSave()})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteAndList() {
	_, err := s.repo.Create(s.ctx, save.CreateInput{Save: s.newSave()})
	s.Require().NoError(err)
	other := s.newSave()
	other.ID = "save_0"
	_, err = s.repo.Create(s.ctx, save.CreateInput{Save: other})
	s.Require().NoError(err)

	list, err := s.repo.List(s.ctx, save.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"save_0", "save_1"}, list.IDs)

	_, err = s.repo.Delete(s.ctx, save.DeleteInput{ID: "save_0"})
	s.Require().NoError(err)
	_, err = s.repo.Delete(s.ctx, save.DeleteInput{ID: "save_0"})
	s.True(errors.IsNotFound(err))

	list, err = s.repo.List(s.ctx, save.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"save_1"}, list.IDs)
}

func (s *RedisRepositoryTestSuite) TestExpiredSavesLeaveTheIndex() {
	repo, err := save.NewRedis(&save.RedisConfig{
		Client: s.client,
		Clock:  s.mockClock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)

	_, err = repo.Create(s.ctx, save.CreateInput{Save: s.newSave()})
	s.Require().NoError(err)
	s.Equal(time.Hour, s.mr.TTL("skilltrees:save:save_1"))

	s.mr.FastForward(2 * time.Hour)
	list, err := repo.List(s.ctx, save.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.IDs)

	s.False(s.mr.Exists("skilltrees:saves"))
}

func TestNewRedisValidation(t *testing.T) {
	_, err := save.NewRedis(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = save.NewRedis(&save.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
