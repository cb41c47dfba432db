package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pokedex_server/config"
	"pokedex_server/internal/db"
	"pokedex_server/internal/http/middleware"
	"pokedex_server/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const pikachuJSON = `{"number":25,"name":"Pikachu","attack":55,"defense":40,"poke_type":"electric","image_url":"https://img.example/25.png"}`

const berryJSON = `{"name":"Oran Berry","price":20,"happiness":3,"image_url":"https://img.example/oran.png"}`

type RoutesTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func (s *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	database, err := db.Connect(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	s.Require().NoError(err)
	s.Require().NoError(db.RunMigrations(database))
	s.db = database

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	s.Require().NoError(m.InstrumentGorm(database))

	s.router = NewRouter(config.ServerConfig{}, Dependencies{DB: database, Metrics: m, Gatherer: reg})
}

func (s *RoutesTestSuite) TearDownTest() {
	s.NoError(db.Close(s.db))
}

func (s *RoutesTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RoutesTestSuite) object(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func (s *RoutesTestSuite) array(w *httptest.ResponseRecorder) []interface{} {
	var body []interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

// fieldErrors returns the "errors" object of a 422 body
func (s *RoutesTestSuite) fieldErrors(w *httptest.ResponseRecorder) map[string]interface{} {
	s.Require().Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
	body := s.object(w)
	s.Equal(false, body["success"])
	s.Equal("VALIDATION_FAILED", body["error"])
	errs, ok := body["errors"].(map[string]interface{})
	s.Require().True(ok, w.Body.String())
	return errs
}

func (s *RoutesTestSuite) createPikachu() int {
	w := s.do(http.MethodPost, "/api/pokemon", pikachuJSON)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return int(s.object(w)["id"].(float64))
}

func (s *RoutesTestSuite) TestTypes() {
	w := s.do(http.MethodGet, "/api/pokemon/types", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`["bug","dragon","electric","fighting","fire","flying","ghost","grass",
		"ground","ice","normal","poison","psychic","rock","steel","water"]`, w.Body.String())
}

func (s *RoutesTestSuite) TestCreateListAndFetchPokemon() {
	w := s.do(http.MethodGet, "/api/pokemon", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())

	id := s.createPikachu()

	w = s.do(http.MethodGet, fmt.Sprintf("/api/pokemon/%d", id), "")
	s.Require().Equal(http.StatusOK, w.Code)
	body := s.object(w)
	s.Equal("Pikachu", body["name"])
	s.Equal(float64(25), body["number"])
	s.Equal("electric", body["poke_type"])
	s.Equal(false, body["captured"])
	s.Contains(body, "created_at")
	s.NotContains(body, "moves")

	s.Len(s.array(s.do(http.MethodGet, "/api/pokemon", "")), 1)
}

func (s *RoutesTestSuite) TestFetchMissingPokemon() {
	for _, path := range []string{"/api/pokemon/99", "/api/pokemon/abc", "/api/pokemon/0"} {
		w := s.do(http.MethodGet, path, "")
		s.Equal(http.StatusNotFound, w.Code, path)
		s.Equal("NOT_FOUND", s.object(w)["error"], path)
	}
}

func (s *RoutesTestSuite) TestCreateInvalidPokemon() {
	errs := s.fieldErrors(s.do(http.MethodPost, "/api/pokemon",
		`{"number":0,"name":"Mr","attack":101,"defense":0,"poke_type":"fairy","image_url":" "}`))

	s.Equal([]interface{}{"must be greater than 0"}, errs["number"])
	s.Equal([]interface{}{"is too short (minimum is 3 characters)"}, errs["name"])
	s.Equal([]interface{}{"must be in 1..100"}, errs["attack"])
	s.Equal([]interface{}{"must be in 1..100"}, errs["defense"])
	s.Equal([]interface{}{"'fairy' is not a valid Pokemon type"}, errs["poke_type"])
	s.Equal([]interface{}{"can't be blank"}, errs["image_url"])
}

func (s *RoutesTestSuite) TestCreateDuplicatePokemon() {
	s.createPikachu()

	errs := s.fieldErrors(s.do(http.MethodPost, "/api/pokemon", pikachuJSON))
	s.Equal([]interface{}{"Number '25' is already taken"}, errs["number"])
	s.Equal([]interface{}{"Name 'Pikachu' is already taken"}, errs["name"])
}

func (s *RoutesTestSuite) TestCapturedMustBeBoolean() {
	body := strings.Replace(pikachuJSON, `"number":25`, `"number":25,"captured":"yes"`, 1)
	errs := s.fieldErrors(s.do(http.MethodPost, "/api/pokemon", body))
	s.Equal([]interface{}{"must be true or false"}, errs["captured"])

	errs = s.fieldErrors(s.do(http.MethodPost, "/api/pokemon", `{"attack":"strong"}`))
	s.Equal([]interface{}{"is not a number"}, errs["attack"])
}

func (s *RoutesTestSuite) TestMalformedJSON() {
	w := s.do(http.MethodPost, "/api/pokemon", `{"name":`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("INVALID_JSON", s.object(w)["error"])
}

func (s *RoutesTestSuite) TestUpdatePokemon() {
	id := s.createPikachu()
	path := fmt.Sprintf("/api/pokemon/%d", id)

	w := s.do(http.MethodPatch, path, `{"captured":true,"attack":60}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := s.object(w)
	s.Equal(true, body["captured"])
	s.Equal(float64(60), body["attack"])
	s.Equal("Pikachu", body["name"])

	errs := s.fieldErrors(s.do(http.MethodPut, path, `{"name":"`+strings.Repeat("a", 255)+`"}`))
	s.Equal([]interface{}{"is too long (maximum is 254 characters)"}, errs["name"])

	s.Equal(http.StatusOK, s.do(http.MethodPut, path, `{"name":"`+strings.Repeat("a", 254)+`"}`).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodPut, "/api/pokemon/404", `{"attack":1}`).Code)
}

func (s *RoutesTestSuite) TestItems() {
	id := s.createPikachu()
	itemsPath := fmt.Sprintf("/api/pokemon/%d/items", id)

	w := s.do(http.MethodPost, itemsPath, berryJSON)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	item := s.object(w)
	s.Equal(float64(id), item["pokemon_id"])
	itemPath := fmt.Sprintf("/api/items/%d", int(item["id"].(float64)))

	errs := s.fieldErrors(s.do(http.MethodPost, itemsPath, `{"name":"Potion","price":-5}`))
	s.Equal([]interface{}{"must be greater than or equal to 0"}, errs["price"])
	s.Equal([]interface{}{"can't be blank"}, errs["happiness"])

	s.Len(s.array(s.do(http.MethodGet, itemsPath, "")), 1)

	w = s.do(http.MethodPatch, itemPath, `{"price":0}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(float64(0), s.object(w)["price"])

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, itemPath, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, itemPath, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodPut, itemPath, berryJSON).Code)
}

func (s *RoutesTestSuite) TestItemForMissingPokemonIsNotFound() {
	w := s.do(http.MethodPost, "/api/pokemon/31/items", `{}`)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("NOT_FOUND", s.object(w)["error"])

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/pokemon/31/items", "").Code)
}

func (s *RoutesTestSuite) TestMoves() {
	id := s.createPikachu()
	movesPath := fmt.Sprintf("/api/pokemon/%d/moves", id)

	w := s.do(http.MethodPost, movesPath, `{"name":"Thunderbolt"}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	link := s.object(w)
	move, ok := link["move"].(map[string]interface{})
	s.Require().True(ok)
	s.Equal("Thunderbolt", move["name"])
	moveID := int(link["move_id"].(float64))

	errs := s.fieldErrors(s.do(http.MethodPost, movesPath, `{"name":"Thunderbolt"}`))
	s.Equal([]interface{}{"Pokemon cannot have the same move more than once"}, errs["pokemon_id"])

	w = s.do(http.MethodGet, fmt.Sprintf("/api/pokemon/%d?include_moves=true", id), "")
	s.Require().Equal(http.StatusOK, w.Code)
	moves, ok := s.object(w)["moves"].([]interface{})
	s.Require().True(ok)
	s.Len(moves, 1)

	s.Len(s.array(s.do(http.MethodGet, movesPath, "")), 1)

	forget := fmt.Sprintf("%s/%d", movesPath, moveID)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, forget, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, forget, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodPost, "/api/pokemon/77/moves", `{"name":"Growl"}`).Code)
}

func (s *RoutesTestSuite) TestDeletePokemonCascades() {
	id := s.createPikachu()
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, fmt.Sprintf("/api/pokemon/%d/items", id), berryJSON).Code)
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, fmt.Sprintf("/api/pokemon/%d/moves", id), `{"name":"Growl"}`).Code)

	path := fmt.Sprintf("/api/pokemon/%d", id)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, path, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, path, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, path+"/items", "").Code)

	var items int64
	s.Require().NoError(s.db.Table("items").Count(&items).Error)
	s.Zero(items)
}

func (s *RoutesTestSuite) TestHealthAndMetrics() {
	w := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("up", s.object(w)["database"])

	s.createPikachu()
	w = s.do(http.MethodGet, "/metrics", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `pokedex_http_requests_total{method="POST",route="/api/pokemon",status="201"} 1`)
	s.Contains(w.Body.String(), `pokedex_catalog_writes_total{entity="pokemons",op="create"} 1`)
}

func (s *RoutesTestSuite) TestHealthReportsClosedDatabase() {
	s.Require().NoError(db.Close(s.db))

	w := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Equal("down", s.object(w)["database"])
}

func (s *RoutesTestSuite) TestRequestIDAndCORS() {
	w := s.do(http.MethodGet, "/api/pokemon", "")
	s.NotEmpty(w.Header().Get(middleware.RequestIDHeader))
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))

	w = s.do(http.MethodOptions, "/api/pokemon", "")
	s.Equal(http.StatusNoContent, w.Code)
}
