package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pokedex_server/config"
	"pokedex_server/internal/db"
	"pokedex_server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry())

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/pokemon/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/pokemon/1", "/api/pokemon/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/api/pokemon/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestInstrumentGormCountsWrites(t *testing.T) {
	database, err := db.Connect(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })
	require.NoError(t, db.RunMigrations(database))

	m := New(prometheus.NewRegistry())
	require.NoError(t, m.InstrumentGorm(database))

	move := &models.Move{Name: "Tackle"}
	require.NoError(t, database.Create(move).Error)
	require.NoError(t, database.Model(move).Update("name", "Body Slam").Error)
	require.NoError(t, database.Delete(move).Error)

	// failed statements are not counted
	require.NoError(t, database.Create(&models.Move{Name: "Ember"}).Error)
	require.Error(t, database.Create(&models.Move{Name: "Ember"}).Error)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Writes.WithLabelValues("moves", "create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Writes.WithLabelValues("moves", "update")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Writes.WithLabelValues("moves", "delete")))
}

func TestNilMetricsIgnoresWrites(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.IncrementWrite("pokemons", "create", 1) })
}
