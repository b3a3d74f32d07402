//go:build e2e

package rivals_test

import (
	"net/http"
	"testing"

	"sarmiento-f5/internal/domain/rivals"
	"sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/tests/common/builder"
	"sarmiento-f5/tests/common/httptest"
	"sarmiento-f5/tests/common/testutil"
	"sarmiento-f5/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const rivalsURL = "/api/rivals"

type RivalsSuite struct {
	e2e.SharedSuite
}

func TestRivalsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RivalsSuite))
}

func (s *RivalsSuite) search(t *testing.T, query string) []response.ListingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, rivalsURL+query, nil)
	var body []response.ListingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	return body
}

func (s *RivalsSuite) TestSearch() {
	s.Run("Normal case: type facet", func() {
		t := s.T()
		teams := s.search(t, "?type=team")
		for _, l := range teams {
			require.Equal(t, "team", l.Type)
			require.NotNil(t, l.Players)
		}
		require.GreaterOrEqual(t, len(teams), 3)
	})

	s.Run("Normal case: every listing carries a WhatsApp link", func() {
		t := s.T()
		for _, l := range s.search(t, "") {
			require.Regexp(t, `^https://wa\.me/\d+$`, l.WhatsApp)
		}
	})

	s.Run("Error case: unknown type", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, rivalsURL+"?type=club", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid filter")
	})
}

func (s *RivalsSuite) TestPublish() {
	s.Run("Normal case: published player is listed first", func() {
		t := s.T()
		reqBody := builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.Name = "Facundo Gómez"
			b.Location = rivals.LocationSouth
		}).BuildPlayerRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rivalsURL+"/preview", reqBody)
		var preview response.ListingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &preview)
		require.Zero(t, preview.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rivalsURL, reqBody)
		var published response.PublishResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &published)
		require.GreaterOrEqual(t, published.Listing.ID, 200)
		require.LessOrEqual(t, published.Listing.ID, 1199)

		got := s.search(t, "?type=player")
		require.NotEmpty(t, got)
		diff := cmp.Diff(*published.Listing, got[0], cmpopts.EquateEmpty())
		require.Empty(t, diff)
		require.Equal(t, rivals.JustPublished, got[0].Created)
	})

	s.Run("Error case: invalid team is not stored", func() {
		t := s.T()
		before := len(s.search(t, ""))

		reqBody := builder.NewListingBuilder().BuildTeamRequestDTO()
		requestMap := testutil.DtoMap(t, reqBody, testutil.Field("players", 0), testutil.Field("contact", "corto"))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rivalsURL, requestMap)
		require.Equal(t, http.StatusBadRequest, w.Code)

		require.Len(t, s.search(t, ""), before)
	})
}
