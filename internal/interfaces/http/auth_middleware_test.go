package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/thrift-inventory/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/thrift-inventory/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testSubject   = "maria"
	testIssuer    = "thrift-inventory-test"
	testExpMin    = 60
)

// buildRoleApp construye una aplicación Fiber mínima con WriteProtection + RequireRole
// y un handler dummy que devuelve 200 si pasa los middlewares.
func buildRoleApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.WriteProtection(testJWTSecret))
	app.Post("/protected",
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// buildWriteApp monta WriteProtection delante de una ruta de lectura y una de escritura.
func buildWriteApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.WriteProtection(secret))
	app.Get("/items", func(c *fiber.Ctx) error { return c.SendString("list") })
	app.Post("/items", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"by": apphttp.GetSubject(c)})
	})
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testSubject, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildRoleApp(pkgjwt.RoleAdmin)
	resp := doRequest(t, app, http.MethodPost, "/protected", tokenForRole(t, pkgjwt.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, pkgjwt.RoleAdmin, body["role"])
}

func TestRequireRole_StaffBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildRoleApp(pkgjwt.RoleAdmin)
	resp := doRequest(t, app, http.MethodPost, "/protected", tokenForRole(t, pkgjwt.RoleStaff))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Post("/protected", apphttp.RequireRole(pkgjwt.RoleAdmin), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	resp := doRequest(t, app, http.MethodPost, "/protected", tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildRoleApp(pkgjwt.RoleAdmin)
	resp := doRequest(t, app, http.MethodPost, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildRoleApp(pkgjwt.RoleAdmin)
	resp := doRequest(t, app, http.MethodPost, "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests WriteProtection
// ──────────────────────────────────────────────────────────────────────────────

func TestWriteProtection_LecturaSinToken(t *testing.T) {
	app := buildWriteApp(testJWTSecret)
	resp := doRequest(t, app, http.MethodGet, "/items", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWriteProtection_EscrituraSinToken_Retorna401(t *testing.T) {
	app := buildWriteApp(testJWTSecret)
	resp := doRequest(t, app, http.MethodPost, "/items", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWriteProtection_EscrituraConStaff(t *testing.T) {
	app := buildWriteApp(testJWTSecret)
	resp := doRequest(t, app, http.MethodPost, "/items", tokenForRole(t, pkgjwt.RoleStaff))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testSubject, body["by"])
}

func TestWriteProtection_RolDesconocido_Retorna403(t *testing.T) {
	app := buildWriteApp(testJWTSecret)
	resp := doRequest(t, app, http.MethodPost, "/items", tokenForRole(t, "viewer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestWriteProtection_SinSecret_NoProtege(t *testing.T) {
	app := buildWriteApp("")
	resp := doRequest(t, app, http.MethodPost, "/items", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdminOnly
// ──────────────────────────────────────────────────────────────────────────────

func buildAdminApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.WriteProtection(secret))
	app.Delete("/items/:id", apphttp.AdminOnly(secret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestAdminOnly_StaffRetorna403(t *testing.T) {
	resp := doRequest(t, buildAdminApp(testJWTSecret), http.MethodDelete, "/items/1", tokenForRole(t, pkgjwt.RoleStaff))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminOnly_AdminPasa(t *testing.T) {
	resp := doRequest(t, buildAdminApp(testJWTSecret), http.MethodDelete, "/items/1", tokenForRole(t, pkgjwt.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestAdminOnly_SinSecret_NoRestringe(t *testing.T) {
	resp := doRequest(t, buildAdminApp(""), http.MethodDelete, "/items/1", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
