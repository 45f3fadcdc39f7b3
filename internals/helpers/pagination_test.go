package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseWith(t *testing.T, query string, opt Options) Params {
	t.Helper()
	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "updated_at", "desc", opt)
		return nil
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := parseWith(t, "", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "updated_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, 0, p.Offset())
}

func TestParseFiberClampsAndAliases(t *testing.T) {
	p := parseWith(t, "?page=3&limit=1000&sort=ASC", DefaultOpts)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 200, p.PerPage)
	assert.Equal(t, "asc", p.SortOrder)
	assert.Equal(t, 400, p.Offset())

	p = parseWith(t, "?page=-2&per_page=abc&order=sideways", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestParseFiberAll(t *testing.T) {
	p := parseWith(t, "?page=4&per_page=all", ExportOpts)
	assert.True(t, p.All)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 50_000, p.PerPage)

	// tanpa AllowAll, "all" diabaikan
	p = parseWith(t, "?per_page=all", DefaultOpts)
	assert.False(t, p.All)
	assert.Equal(t, 25, p.PerPage)
}

func TestOrderByWhitelist(t *testing.T) {
	allowed := map[string]string{"updated_at": "updated_at", "regional": "regional"}

	assert.Equal(t, "regional ASC", Params{SortBy: "regional", SortOrder: "asc"}.OrderBy(allowed, "updated_at"))
	assert.Equal(t, "updated_at DESC", Params{SortBy: "id; DROP TABLE projects", SortOrder: "desc"}.OrderBy(allowed, "updated_at"))
	assert.Equal(t, "", Params{SortBy: "x"}.OrderBy(allowed, "missing"))
}
