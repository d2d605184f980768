package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilguun/eduview/internal/app/controllers"
	"github.com/bilguun/eduview/internal/app/models"
	"github.com/bilguun/eduview/internal/app/repositories"
	"github.com/bilguun/eduview/internal/app/routes"
	"github.com/bilguun/eduview/internal/app/services"
	"github.com/bilguun/eduview/internal/pkg/metrics"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	classes := &models.Document{
		Days:    []string{"Даваа", "Мягмар"},
		Periods: []string{"1", "2"},
		Names:   []string{"1-А", "2-Б"},
		Schedules: map[string]*models.Schedule{
			"1-А": {
				Odd:  models.Grid{{models.Lesson{Subject: "Математик", Counterpart: "Б. Болд", Room: "201"}, {}}},
				Even: models.Grid{{models.Lesson{Subject: "Түүх", Counterpart: "Г. Сүхээ", Room: "202"}, {}}},
			},
			"2-Б": {},
		},
	}
	teachers := &models.Document{
		Names: []string{"Б. Болд"},
		Schedules: map[string]*models.Schedule{
			"Б. Болд": {Odd: models.Grid{{models.Lesson{Subject: "Математик", Counterpart: "1-А", Room: "201"}}}},
		},
	}
	store := repositories.NewTimetableStore(classes, teachers)
	service := services.NewTimetableService(store)

	recorder, err := metrics.NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	router := gin.New()
	router.LoadHTMLGlob("../../../web/templates/*.html")
	routes.SetupRouter(router,
		controllers.NewPagesController(service, recorder),
		controllers.NewTimetableController(service, recorder),
	)
	return router
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	router.ServeHTTP(rr, req)
	return rr
}

func TestGetClasses(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/api/v1/classes")
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Data struct {
			Names []string `json:"names"`
			Count int      `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, []string{"1-А", "2-Б"}, out.Data.Names)
	assert.Equal(t, 2, out.Data.Count)
}

func TestGetClassByName(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/api/v1/classes/1-А")
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Data struct {
			Name    string          `json:"name"`
			Days    []string        `json:"days"`
			OddWeek [][]interface{} `json:"oddWeek"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "1-А", out.Data.Name)
	assert.Equal(t, []string{"Даваа", "Мягмар"}, out.Data.Days)
	require.Len(t, out.Data.OddWeek, 1)
}

func TestGetClassByName_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/api/v1/classes/9-Я")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var out struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "RES_001", out.Error.Code)
}

func TestGetClassByName_BlankName(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/api/v1/classes/%20")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var out struct {
		Error struct {
			Code  string `json:"code"`
			Field string `json:"field"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "VAL_001", out.Error.Code)
	assert.Equal(t, "name", out.Error.Field)
}

func TestGetTeacherByName(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/api/v1/teachers/"+url.PathEscape("Б. Болд"))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(router, "/api/v1/teachers/"+url.PathEscape("Хэн ч биш"))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetSchools(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/api/v1/schools")
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Data []struct {
			Code    string   `json:"code"`
			Classes []string `json:"classes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out.Data, 2)
	assert.Equal(t, "1", out.Data[0].Code)
	assert.Equal(t, []string{"1-А"}, out.Data[0].Classes)
}

func TestGetSchoolByName(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/api/v1/schools/1")
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Data struct {
			Code    string   `json:"code"`
			Classes []string `json:"classes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "1", out.Data.Code)
	assert.Equal(t, []string{"1-А"}, out.Data.Classes)
}

func TestGetSchoolByName_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/api/v1/schools/99")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var out struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "RES_001", out.Error.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/api/v1/health")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}

func TestIndexPage(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Б. Болд")
	assert.Contains(t, rr.Body.String(), "schoolClasses")
}

func TestClassPage(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/class?name=1-А")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Математик")
	assert.Contains(t, rr.Body.String(), "Түүх")
}

func TestClassPage_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/class?name=9-Я")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Not found")
}

func TestClassPage_MissingName(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/class")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTeacherPage(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/teacher?name="+url.QueryEscape("Б. Болд"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "1-А")
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
}
