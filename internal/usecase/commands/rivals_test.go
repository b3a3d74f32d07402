//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sarmiento-f5/internal/domain/rivals"
	"sarmiento-f5/internal/infra/repository"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/commands"

	"github.com/stretchr/testify/suite"
)

type fixedIDs int

func (f fixedIDs) Next() int { return int(f) }

func teamDraft() commands.ListingDraft {
	return commands.ListingDraft{
		Type:           rivals.KindTeam,
		Name:           "Real Corrientes",
		Level:          "Intermedio",
		DayPreference:  "Jueves",
		TimePreference: "Noche",
		Location:       "Zona Centro",
		Contact:        "Nico (WhatsApp: 379-400-1122)",
		Players:        7,
		NeedsPlayers:   true,
	}
}

type RivalsCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	repo  *repository.ListingRepository
	clock *clock.MockClock
	uc    commands.RivalsCommands
}

func (s *RivalsCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = repository.NewListingRepository()
	s.clock = clock.NewMockClock(now)
	s.uc = commands.NewRivalsCommands(s.repo, fixedIDs(512), s.clock, 1500*time.Millisecond)
}

func TestRivalsCommandsSuite(t *testing.T) {
	suite.Run(t, new(RivalsCommandsTestSuite))
}

func (s *RivalsCommandsTestSuite) board() []rivals.Listing {
	all, err := s.repo.All(s.ctx)
	s.Require().NoError(err)
	return all
}

func (s *RivalsCommandsTestSuite) TestPreview() {
	s.Run("valid draft is echoed without storing", func() {
		l, err := s.uc.Preview(s.ctx, teamDraft())
		s.Require().NoError(err)
		s.Equal("Real Corrientes", l.Summary().Name)
		s.Zero(l.Summary().ID)
		s.Len(s.board(), len(rivals.Samples()))
		s.Zero(s.clock.Slept())
	})

	s.Run("player draft", func() {
		d := teamDraft()
		d.Type, d.Position, d.Age = rivals.KindPlayer, "Arquero", 40
		l, err := s.uc.Preview(s.ctx, d)
		s.Require().NoError(err)
		s.Equal(rivals.KindPlayer, rivals.KindOf(l))
	})

	s.Run("unknown type", func() {
		for _, k := range []rivals.Kind{"", rivals.KindAll, "club"} {
			d := teamDraft()
			d.Type = k
			_, err := s.uc.Preview(s.ctx, d)
			s.True(errs.Is(err, commands.ErrInvalidListingType))
		}
	})

	s.Run("validation errors carry field messages", func() {
		d := teamDraft()
		d.Players = 20
		_, err := s.uc.Preview(s.ctx, d)

		var verr *rivals.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Equal("Máximo 15 jugadores", verr.Fields[0].Message)
	})
}

func (s *RivalsCommandsTestSuite) TestPublish() {
	s.Run("prepends after the publish delay", func() {
		l, err := s.uc.Publish(s.ctx, teamDraft())
		s.Require().NoError(err)

		s.Equal(512, l.Summary().ID)
		s.Equal(rivals.JustPublished, l.Summary().Created)
		s.Equal(1500*time.Millisecond, s.clock.Slept())

		board := s.board()
		s.Len(board, len(rivals.Samples())+1)
		s.Equal(512, board[0].Summary().ID)
	})

	s.Run("invalid drafts are not published", func() {
		s.SetupTest()
		d := teamDraft()
		d.Name = "ab"
		_, err := s.uc.Publish(s.ctx, d)
		s.ErrorIs(err, rivals.ErrInvalidListing)
		s.Len(s.board(), len(rivals.Samples()))
	})

	s.Run("cancelled while waiting", func() {
		s.SetupTest()
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		_, err := s.uc.Publish(ctx, teamDraft())
		s.ErrorIs(err, context.Canceled)
		s.Len(s.board(), len(rivals.Samples()))
	})
}
