//go:build e2e

package waitlist_test

import (
	"fmt"
	"net/http"
	"testing"

	"sarmiento-f5/internal/handler/dto/response"
	"sarmiento-f5/tests/common/builder"
	"sarmiento-f5/tests/common/httptest"
	"sarmiento-f5/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	joinURL      = "/api/waitlist"
	adminListURL = "/api/admin/waitlist"
	entryURL     = "/api/admin/waitlist/%s"
)

type WaitlistSuite struct {
	e2e.SharedSuite
}

func (s *WaitlistSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestWaitlistSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WaitlistSuite))
}

func (s *WaitlistSuite) join(t *testing.T, nombre, telefono string) {
	t.Helper()
	reqBody := builder.NewWaitlistBuilder().With(func(b *builder.WaitlistBuilder) {
		b.Nombre = nombre
		b.Telefono = telefono
	}).BuildRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, joinURL, reqBody)
	httptest.AssertNotice(t, w, http.StatusCreated, response.MsgWaitlistJoined, "")
}

func (s *WaitlistSuite) list(t *testing.T) []response.WaitlistItemResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminListURL, nil)
	var items []response.WaitlistItemResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &items)
	return items
}

func (s *WaitlistSuite) TestJoin() {
	s.Run("Normal case: duplicates are accepted and kept in order", func() {
		t := s.T()
		s.join(t, "Martín Acosta", "3794 55-1234")
		s.join(t, "Martín Acosta", "3794 55-1234")
		s.join(t, "Sofía Ramírez", "3794 11-2233")

		items := s.list(t)
		require.Len(t, items, 3)
		require.Equal(t, "Sofía Ramírez", items[2].Nombre)
		require.Equal(t, 2, items[2].Index)
		require.Equal(t, "tel:3794 11-2233", items[2].Llamar)
		require.Equal(t, "4 de octubre", items[0].Fecha)
		require.Regexp(t, `^\d{2}/\d{2}/\d{4} \d{2}:\d{2}$`, items[0].FechaInscripcion)
	})

	s.Run("Error case: free court is rejected", func() {
		t := s.T()
		reqBody := builder.NewWaitlistBuilder().With(func(b *builder.WaitlistBuilder) {
			b.Cancha = 2
		}).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, joinURL, reqBody)
		httptest.AssertErrorRedirect(t, w, http.StatusConflict, "disponible", response.RedirectBooking)
		require.Empty(t, s.list(t))
	})

	s.Run("Error case: missing name", func() {
		t := s.T()
		reqBody := builder.NewWaitlistBuilder().With(func(b *builder.WaitlistBuilder) {
			b.Nombre = ""
		}).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, joinURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, response.MsgIncompleteFields)
	})
}

func (s *WaitlistSuite) TestAdmin() {
	s.Run("Normal case: delete by index rewrites the list", func() {
		t := s.T()
		s.join(t, "Martín Acosta", "3794 55-1234")
		s.join(t, "Sofía Ramírez", "3794 11-2233")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(entryURL, "0"), nil)
		httptest.AssertNotice(t, w, http.StatusOK, response.MsgWaitlistRemoved, "")

		items := s.list(t)
		require.Len(t, items, 1)
		require.Equal(t, "Sofía Ramírez", items[0].Nombre)
		require.Equal(t, 0, items[0].Index)
	})

	s.Run("Normal case: mark contacted leaves the entry in place", func() {
		t := s.T()
		s.join(t, "Martín Acosta", "3794 55-1234")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(entryURL, "0/contacted"), nil)
		httptest.AssertNotice(t, w, http.StatusOK, "Has marcado a Martín Acosta como contactado.", "")
		require.Len(t, s.list(t), 1)
	})

	s.Run("Normal case: call link", func() {
		t := s.T()
		s.join(t, "Martín Acosta", "3794 55-1234")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(entryURL, "0/call"), nil)
		var body response.CallLinkResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "tel:3794 55-1234", body.Href)
	})

	s.Run("Error case: index checks", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(entryURL, "abc"), nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(entryURL, "3"), nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(entryURL, "0/contacted"), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
