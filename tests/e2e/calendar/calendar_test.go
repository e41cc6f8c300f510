//go:build e2e

package calendar_test

import (
	"net/http"
	"testing"
	"time"

	"stablebook/internal/domain/account"
	resdto "stablebook/internal/handler/dto/response"
	"stablebook/tests/common/authtest"
	"stablebook/tests/common/httptest"
	"stablebook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const calendarURL = "/api/calendar"

type CalendarSuite struct {
	e2e.SharedSuite
}

func TestCalendarSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CalendarSuite))
}

func futureDay(offset int) time.Time {
	d := time.Now().UTC().AddDate(0, 0, 14+offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *CalendarSuite) upsertDay(token string, body map[string]any) int {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, calendarURL, body, token)
	return w.Code
}

func (s *CalendarSuite) TestUpsert() {
	s.Run("Normal case: stored configuration reads back as written", func() {
		t := s.T()

		day := futureDay(0)
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(account.RoleStaff))

		code := s.upsertDay(staffToken, map[string]any{
			"day":      day,
			"slots":    []string{"10:00", "09:00"},
			"capacity": 6,
		})
		require.Equal(t, http.StatusNoContent, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			calendarURL+"/"+day.Format("2006-01-02"), nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cfg resdto.DayConfigResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cfg))
		require.True(t, cfg.Stored)
		require.False(t, cfg.Blocked)
		if diff := cmp.Diff([]string{"09:00", "10:00"}, cfg.Slots); diff != "" {
			t.Errorf("slots come back sorted, mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, cfg.Capacity)
		require.EqualValues(t, 6, *cfg.Capacity)
	})

	s.Run("Normal case: blocking a day empties its availability", func() {
		t := s.T()

		day := futureDay(0)
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(account.RoleStaff))

		code := s.upsertDay(staffToken, map[string]any{
			"day":          day,
			"blocked":      true,
			"block_reason": "arena maintenance",
			"slots":        []string{"10:00", "11:00"},
		})
		require.Equal(t, http.StatusNoContent, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			calendarURL+"/"+day.Format("2006-01-02")+"/availability", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var avail resdto.DayAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &avail))
		require.True(t, avail.Blocked)
		require.Empty(t, avail.AvailableTimes)
	})

	s.Run("Normal case: unconfigured day reads as the open default", func() {
		t := s.T()

		day := futureDay(0)
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(account.RoleStaff))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			calendarURL+"/"+day.Format("2006-01-02"), nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cfg resdto.DayConfigResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cfg))
		require.False(t, cfg.Stored)
		require.False(t, cfg.Blocked)
		require.Empty(t, cfg.Slots)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			calendarURL+"/"+day.Format("2006-01-02")+"/availability", nil, "")
		require.Equal(t, http.StatusOK, aw.Code)

		var avail resdto.DayAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &avail))
		require.Empty(t, avail.AvailableTimes)
	})

	s.Run("Normal case: upserting again replaces the configuration", func() {
		t := s.T()

		day := futureDay(0)
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(account.RoleStaff))

		require.Equal(t, http.StatusNoContent, s.upsertDay(staffToken, map[string]any{
			"day":   day,
			"slots": []string{"09:00", "10:00", "11:00"},
		}))
		require.Equal(t, http.StatusNoContent, s.upsertDay(staffToken, map[string]any{
			"day":   day,
			"slots": []string{"14:00"},
		}))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			calendarURL+"/"+day.Format("2006-01-02"), nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		var cfg resdto.DayConfigResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cfg))
		require.Equal(t, []string{"14:00"}, cfg.Slots)
	})

	s.Run("Error case: malformed slot time is rejected", func() {
		t := s.T()

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(account.RoleStaff))

		code := s.upsertDay(staffToken, map[string]any{
			"day":   futureDay(0),
			"slots": []string{"9am"},
		})
		require.Equal(t, http.StatusBadRequest, code)
	})

	s.Run("Error case: blocking without a reason is rejected", func() {
		t := s.T()

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(account.RoleStaff))

		code := s.upsertDay(staffToken, map[string]any{
			"day":     futureDay(0),
			"blocked": true,
			"slots":   []string{"10:00"},
		})
		require.Equal(t, http.StatusBadRequest, code)
	})
}

func (s *CalendarSuite) TestListDays() {
	s.Run("Normal case: range query returns stored days in order", func() {
		t := s.T()

		first := futureDay(0)
		second := futureDay(1)
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(account.RoleStaff))

		require.Equal(t, http.StatusNoContent, s.upsertDay(staffToken, map[string]any{
			"day":   first,
			"slots": []string{"10:00"},
		}))
		require.Equal(t, http.StatusNoContent, s.upsertDay(staffToken, map[string]any{
			"day":   second,
			"slots": []string{"11:00"},
		}))

		listURL := calendarURL + "?from=" + first.Format("2006-01-02") + "&to=" + second.Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var days []resdto.DayConfigResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &days))
		require.Len(t, days, 2)
		require.Equal(t, []string{"10:00"}, days[0].Slots)
		require.Equal(t, []string{"11:00"}, days[1].Slots)
	})

	s.Run("Error case: inverted range is rejected", func() {
		t := s.T()

		first := futureDay(0)
		second := futureDay(1)
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(account.RoleStaff))

		listURL := calendarURL + "?from=" + second.Format("2006-01-02") + "&to=" + first.Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, staffToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *CalendarSuite) TestAuthorization() {
	s.Run("Error case: riders cannot manage the calendar", func() {
		t := s.T()

		riderToken := authtest.CreateAndLogin(t, s.DB, s.Router, "rider@example.com", string(account.RoleUser))

		code := s.upsertDay(riderToken, map[string]any{
			"day":   futureDay(0),
			"slots": []string{"10:00"},
		})
		require.Equal(t, http.StatusForbidden, code)
	})

	s.Run("Error case: anonymous requests cannot read day configuration", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			calendarURL+"/"+futureDay(0).Format("2006-01-02"), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
