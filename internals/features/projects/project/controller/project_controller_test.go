package controller

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftth_backend/internals/features/projects/importer"
	"ftth_backend/internals/features/projects/project/repository"
)

func statusFor(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return writeError(c, err) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, sonic.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"fiber error", fiber.NewError(fiber.StatusForbidden, "no"), fiber.StatusForbidden},
		{"row limit", &importer.RowLimitError{Rows: 1200, Limit: 1000}, fiber.StatusBadRequest},
		{"unreadable", importer.ErrUnreadableFile, fiber.StatusBadRequest},
		{"empty batch", importer.ErrEmptyBatch, fiber.StatusBadRequest},
		{"duplicate", &importer.StoreError{Err: &pgconn.PgError{Code: "23505"}}, fiber.StatusConflict},
		{"store", &importer.StoreError{Err: errors.New("conn reset")}, fiber.StatusInternalServerError},
		{"not found", repository.ErrProjectNotFound, fiber.StatusNotFound},
		{"other", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := statusFor(t, tc.err)
			assert.Equal(t, tc.want, code)
		})
	}
}

func TestWriteErrorValidationBody(t *testing.T) {
	verr := &importer.ValidationError{Messages: []string{
		"Baris 2: POP wajib diisi",
		"Baris 3: Port harus berupa angka (nilai: \"x\")",
	}}
	code, body := statusFor(t, verr)

	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	assert.EqualValues(t, 2, body["total_errors"])
	assert.Len(t, body["errors"], 2)
}
