package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	validate = newValidator()
	titler   = cases.Title(language.Spanish)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// bindJSON parsea y valida el cuerpo. Si devuelve false la respuesta 400 ya fue escrita.
func bindJSON(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, failValidation(c, "cuerpo de la petición inválido", nil)
	}
	return check(c, out)
}

// bindQuery parsea y valida los parámetros de consulta.
func bindQuery(c *fiber.Ctx, out any) (bool, error) {
	if err := c.QueryParser(out); err != nil {
		return false, failValidation(c, "parámetros de consulta inválidos", nil)
	}
	return check(c, out)
}

func check(c *fiber.Ctx, out any) (bool, error) {
	if err := validate.Struct(out); err != nil {
		return false, failValidation(c, "la petición contiene campos inválidos", fieldErrors(err))
	}
	return true, nil
}

// fieldErrors mapea cada campo (nombre json) a un mensaje legible.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := strings.TrimPrefix(fe.Namespace(), rootNamespace(fe))
		out[key] = fieldMessage(fe)
	}
	return out
}

func rootNamespace(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[:i+1]
	}
	return ""
}

// humanize "license_count" → "License Count".
func humanize(field string) string {
	return titler.String(strings.ReplaceAll(field, "_", " "))
}

func fieldMessage(fe validator.FieldError) string {
	name := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " es obligatorio"
	case "email":
		return name + " debe ser un email válido"
	case "uuid":
		return name + " debe ser un UUID"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", name, fe.Param())
		}
		return fmt.Sprintf("%s debe ser al menos %s", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s admite como máximo %s caracteres", name, fe.Param())
		}
		return fmt.Sprintf("%s debe ser como máximo %s", name, fe.Param())
	case "len":
		return fmt.Sprintf("%s debe tener %s caracteres", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", name, fe.Param())
	default:
		return name + " no es válido"
	}
}
