package bonus_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/orchestrators/bonus"
	bonusmock "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/bonus/mock"
)

const testCharacterID int64 = 42

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	items    *bonusmock.MockSource
	features *bonusmock.MockSource
	spells   *bonusmock.MockSource
	svc      bonus.Service
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.items = bonusmock.NewMockSource(s.ctrl)
	s.features = bonusmock.NewMockSource(s.ctrl)
	s.spells = bonusmock.NewMockSource(s.ctrl)

	svc, err := bonus.NewOrchestrator(&bonus.Config{
		Items:    s.items,
		Features: s.features,
		Spells:   s.spells,
	})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresSources() {
	_, err := bonus.NewOrchestrator(&bonus.Config{Items: s.items})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAggregateMergesSources() {
	s.items.EXPECT().SumBonuses(s.ctx, testCharacterID).
		Return(entities.Bonuses{"ac": 2, "stealth": -1}, nil)
	s.features.EXPECT().SumBonuses(s.ctx, testCharacterID).
		Return(entities.Bonuses{"ac": 1, "initiative": 5}, nil)
	s.spells.EXPECT().SumBonuses(s.ctx, testCharacterID).
		Return(entities.Bonuses{"ac": 3}, nil)

	out, err := s.svc.Aggregate(s.ctx, &bonus.AggregateInput{CharacterID: testCharacterID})
	s.Require().NoError(err)

	want := entities.Bonuses{"ac": 6, "stealth": -1, "initiative": 5}
	if diff := cmp.Diff(want, out.Bonuses); diff != "" {
		s.Failf("bonuses mismatch", "(-want +got):\n%s", diff)
	}
	s.Zero(out.Bonuses.Get("speed"))
}

func (s *OrchestratorTestSuite) TestAggregateEmpty() {
	s.items.EXPECT().SumBonuses(s.ctx, testCharacterID).Return(entities.Bonuses{}, nil)
	s.features.EXPECT().SumBonuses(s.ctx, testCharacterID).Return(nil, nil)
	s.spells.EXPECT().SumBonuses(s.ctx, testCharacterID).Return(entities.Bonuses{}, nil)

	out, err := s.svc.Aggregate(s.ctx, &bonus.AggregateInput{CharacterID: testCharacterID})
	s.Require().NoError(err)
	s.Empty(out.Bonuses)
	s.NotNil(out.Bonuses)
}

func (s *OrchestratorTestSuite) TestAggregateSourceFailure() {
	s.items.EXPECT().SumBonuses(s.ctx, testCharacterID).Return(entities.Bonuses{"ac": 1}, nil)
	s.features.EXPECT().SumBonuses(s.ctx, testCharacterID).
		Return(nil, errors.Internal("disk on fire"))

	_, err := s.svc.Aggregate(s.ctx, &bonus.AggregateInput{CharacterID: testCharacterID})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestAggregateValidation() {
	_, err := s.svc.Aggregate(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.Aggregate(s.ctx, &bonus.AggregateInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
