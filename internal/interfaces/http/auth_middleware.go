package http

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/pkg/jwt"
)

// Locals keys para el sujeto y el rol del token en Fiber.
const (
	LocalSubject = "subject"
	LocalRole    = "role"
)

// RequireRole autoriza solo los roles indicados. Va después de WriteProtection.
// Un token sin rol responde 401; un rol no permitido, 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if status, fail := authorize(GetRole(c), roles); fail != nil {
			return c.Status(status).JSON(fail)
		}
		return c.Next()
	}
}

// WriteProtection exige token con rol admin o staff en todo método que no sea de lectura.
// Con secret vacío no protege nada.
func WriteProtection(jwtSecret string) fiber.Handler {
	writers := []string{jwt.RoleAdmin, jwt.RoleStaff}
	return func(c *fiber.Ctx) error {
		if jwtSecret == "" {
			return c.Next()
		}
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}
		if fail := authenticate(c, jwtSecret); fail != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fail)
		}
		if status, fail := authorize(GetRole(c), writers); fail != nil {
			return c.Status(status).JSON(fail)
		}
		return c.Next()
	}
}

// AdminOnly reserva la ruta al rol admin. Con secret vacío no restringe.
func AdminOnly(jwtSecret string) fiber.Handler {
	if jwtSecret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return RequireRole(jwt.RoleAdmin)
}

func authenticate(c *fiber.Ctx, jwtSecret string) *dto.ErrorResponse {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	subject, role, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"}
	}
	c.Locals(LocalSubject, subject)
	c.Locals(LocalRole, role)
	return nil
}

func authorize(role string, allowed []string) (int, *dto.ErrorResponse) {
	if role == "" {
		return fiber.StatusUnauthorized, &dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"}
	}
	if !slices.Contains(allowed, role) {
		return fiber.StatusForbidden, &dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"}
	}
	return 0, nil
}

// GetSubject devuelve el subject del token; vacío en requests sin autenticar.
func GetSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubject).(string)
	return s
}

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
