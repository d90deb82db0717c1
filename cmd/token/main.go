// Command token emite un JWT firmado con AUTH_JWT_SECRET para operar la API.
//
//	go run ./cmd/token --subject ana --role staff --minutes 60
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"

	"github.com/jhoicas/thrift-inventory/pkg/config"
	"github.com/jhoicas/thrift-inventory/pkg/jwt"
)

func main() {
	subject := pflag.StringP("subject", "s", "", "sujeto del token (usuario o sistema)")
	role := pflag.StringP("role", "r", jwt.RoleStaff, "rol: admin o staff")
	minutes := pflag.IntP("minutes", "m", 0, "vigencia en minutos (0 = AUTH_JWT_EXPIRATION_MINUTES)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	if !cfg.JWT.Enabled() {
		fail("AUTH_JWT_SECRET vacío")
	}
	if *subject == "" {
		fail("--subject es obligatorio")
	}
	if !slices.Contains([]string{jwt.RoleAdmin, jwt.RoleStaff}, *role) {
		fail("rol desconocido %q", *role)
	}
	exp := *minutes
	if exp <= 0 {
		exp = cfg.JWT.Expiration
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *subject, *role, cfg.JWT.Issuer, exp)
	if err != nil {
		fail("firmar token: %v", err)
	}
	fmt.Println(tok)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "token: "+format+"\n", args...)
	os.Exit(1)
}
