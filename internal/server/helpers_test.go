package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanizeParam(t *testing.T) {
	cases := map[string]string{
		"id":      "ID",
		"userId":  "user ID",
		"skillId": "skill ID",
		"slug":    "slug",
	}
	for in, want := range cases {
		assert.Equal(t, want, humanizeParam(in), "param %q", in)
	}
}

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	var got Pagination
	app.Get("/", func(c *fiber.Ctx) error {
		got = parsePagination(c, 25)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", 25, 0},
		{"?limit=10&offset=5", 10, 5},
		{"?limit=0", 25, 0},
		{"?limit=-3&offset=-1", 25, 0},
		{"?limit=9999", maxPaginationLimit, 0},
		{"?limit=abc", 25, 0},
	}
	for _, tc := range cases {
		req, err := http.NewRequest(http.MethodGet, "/"+tc.query, nil)
		require.NoError(t, err)
		_, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tc.wantLimit, got.Limit, "query %q", tc.query)
		assert.Equal(t, tc.wantOffset, got.Offset, "query %q", tc.query)
	}
}

func TestParseIDWritesBadRequest(t *testing.T) {
	s := &Server{}
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	for _, bad := range []string{"abc", "0", "-1"} {
		req, err := http.NewRequest(http.MethodGet, "/things/"+bad, nil)
		require.NoError(t, err)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "param %q", bad)
		resp.Body.Close()
	}

	req, err := http.NewRequest(http.MethodGet, "/things/42", nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
