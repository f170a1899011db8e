package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabheesh178/woxsen-league/internal/live"
	"github.com/Prabheesh178/woxsen-league/internal/model"
)

type staticSettings struct{ s model.SystemSettings }

func (f staticSettings) Get(ctx context.Context) (model.SystemSettings, error) {
	return f.s, nil
}

func newFacilityHandlerWith(s model.SystemSettings) *FacilityHandler {
	cache := live.NewSettingsCache(staticSettings{s: s}, live.NewHub(nil))
	return NewFacilityHandler(nil, cache)
}

type listResp struct {
	GlobalLockdown bool           `json:"global_lockdown"`
	Facilities     []facilityItem `json:"facilities"`
}

func getFacilities(t *testing.T, h *FacilityHandler, query string) (*httptest.ResponseRecorder, listResp) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/facilities"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))

	var body listResp
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestFacilityListReturnsFullCatalog(t *testing.T) {
	h := newFacilityHandlerWith(model.DefaultSettings())

	rec, body := getFacilities(t, h, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, body.GlobalLockdown)
	assert.Len(t, body.Facilities, 8)
	for _, f := range body.Facilities {
		assert.False(t, f.Closed, f.Name)
		assert.NotEmpty(t, f.Courts, f.Name)
		assert.NotEmpty(t, f.Slots, f.Name)
	}
}

func TestFacilityListTypeFilter(t *testing.T) {
	h := newFacilityHandlerWith(model.DefaultSettings())

	_, indoor := getFacilities(t, h, "?type=Indoor")
	_, outdoor := getFacilities(t, h, "?type=Outdoor")
	assert.Len(t, indoor.Facilities, 3)
	assert.Len(t, outdoor.Facilities, 5)

	rec, _ := getFacilities(t, h, "?type=Underwater")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestFacilityListMarksClosed(t *testing.T) {
	s := model.DefaultSettings()
	s.DisabledFacilities = []string{"Badminton Arena"}
	s.GlobalLockdown = true
	h := newFacilityHandlerWith(s)

	rec, body := getFacilities(t, h, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.GlobalLockdown)

	closed := map[string]bool{}
	for _, f := range body.Facilities {
		closed[f.Name] = f.Closed
	}
	assert.True(t, closed["Badminton Arena"])
	assert.False(t, closed["Cricket Arena"])
}
