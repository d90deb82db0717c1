package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/thrift-inventory/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Los errores se reportan con el nombre json del campo.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "query", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	})
	return validate
}

// Validate aplica las etiquetas validate de v y traduce las fallas a *domain.ValidationError.
// Devuelve nil si v es válido.
func Validate(v any) error {
	ve := &domain.ValidationError{}
	collect(ve, v)
	if ve.Empty() {
		return nil
	}
	return ve
}

func collect(ve *domain.ValidationError, v any) {
	err := instance().Struct(v)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Add("body", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		ve.Add(fieldPath(fe), message(fe))
	}
}

// fieldPath quita el nombre del struct raíz: "CreateItemRequest.price" -> "price".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.String {
			return "must have at least " + fe.Param() + " element(s)"
		}
		return "must be greater than or equal to " + fe.Param()
	case "max":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.String {
			return "must have at most " + fe.Param() + " element(s)"
		}
		return "must be less than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "hexcolor":
		return "must be a hex color (#RRGGBB)"
	}
	return "invalid value (" + fe.Tag() + ")"
}

// checkNonNegative registra un error si d está presente y es negativo.
func checkNonNegative(ve *domain.ValidationError, field string, d *decimal.Decimal) {
	if d != nil && d.IsNegative() {
		ve.Add(field, "must be greater than or equal to 0")
	}
}

// maxMoney es el mayor importe que admite NUMERIC(10,2).
var maxMoney = decimal.RequireFromString("99999999.99")

// checkMoney valida un importe: no negativo, dentro de NUMERIC(10,2) y con a lo sumo 2 decimales.
func checkMoney(ve *domain.ValidationError, field string, d *decimal.Decimal) {
	switch {
	case d == nil:
	case d.IsNegative():
		ve.Add(field, "must be greater than or equal to 0")
	case d.GreaterThan(maxMoney):
		ve.Add(field, "must be less than or equal to "+maxMoney.StringFixed(2))
	case !d.Equal(d.Round(2)):
		ve.Add(field, "must have at most 2 decimal places")
	}
}
