package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/diedev/firex-web/internal/application/dto"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Los errores se reportan con el nombre JSON del campo.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// min/max sobre precios se evalúan como número.
	validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		d, ok := v.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})
}

// fieldMessages mensajes por campo y regla; replica los mensajes del backend.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "El nombre es requerido",
		"min":      "El nombre debe tener entre 3 y 100 caracteres",
		"max":      "El nombre debe tener entre 3 y 100 caracteres",
	},
	"description": {
		"max": "La descripción no puede exceder 500 caracteres",
	},
	"price": {
		"required": "El precio es requerido",
		"min":      "El precio no puede ser negativo",
	},
	"stock": {
		"required": "El stock es requerido",
		"min":      "El stock no puede ser negativo",
	},
	"categoryId": {
		"required": "La categoría es requerida",
	},
	"imageUrl": {
		"url": "La URL de la imagen no es válida",
	},
}

// ValidateProductForm valida el formulario de producto del panel admin.
func ValidateProductForm(data dto.ProductRequest) Result {
	data.Name = strings.TrimSpace(data.Name)
	data.CategoryID = strings.TrimSpace(data.CategoryID)
	return structResult(validate.Struct(data))
}

// ValidateCategoryForm valida el formulario de categoría.
func ValidateCategoryForm(data dto.CategoryRequest) Result {
	data.Name = strings.TrimSpace(data.Name)
	return structResult(validate.Struct(data))
}

func structResult(err error) Result {
	var errs Errors
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if errs.Has(fe.Field()) {
				continue
			}
			errs.Set(fe.Field(), messageFor(fe))
		}
	} else if err != nil {
		errs.Set("form", err.Error())
	}
	return newResult(errs)
}

func messageFor(fe validator.FieldError) string {
	if msgs, ok := fieldMessages[fe.Field()]; ok {
		if m, ok := msgs[fe.Tag()]; ok {
			return m
		}
	}
	return "Valor inválido"
}
