package validation_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/validation"
	"github.com/diedev/firex-web/internal/domain"
)

func validServiceRequest() dto.ServiceRequestCreate {
	return dto.ServiceRequestCreate{
		Tipo:           "ABC",
		EstadoExtintor: "Descargado",
		Fecha:          "2025-01-20",
		Franja:         "Mañana",
		Direccion:      "Calle 123 # 45-67, Bogotá",
		Telefono:       "3001234567",
	}
}

func TestValidateServiceRequest_Valida(t *testing.T) {
	res := validation.ValidateServiceRequestAt(validServiceRequest(), testNow)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.NoError(t, res.Err())
}

func TestValidateServiceRequest_FechaPasada(t *testing.T) {
	in := validServiceRequest()
	in.Fecha = "2025-01-10"

	res := validation.ValidateServiceRequestAt(in, testNow)
	require.False(t, res.IsValid)
	assert.Equal(t, validation.MsgDatePast, res.Errors.Get("fecha"))
	assert.Len(t, res.Errors, 1)
}

func TestValidateServiceRequest_FechaMuyLejana(t *testing.T) {
	in := validServiceRequest()
	in.Fecha = "2025-06-01"

	res := validation.ValidateServiceRequestAt(in, testNow)
	require.False(t, res.IsValid)
	assert.Equal(t, validation.MsgDateTooFar, res.Errors.Get("fecha"))
}

func TestValidateServiceRequest_TodoVacio_OrdenDeEvaluacion(t *testing.T) {
	res := validation.ValidateServiceRequestAt(dto.ServiceRequestCreate{}, testNow)
	require.False(t, res.IsValid)

	var fields []string
	for _, fe := range res.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"telefono", "fecha", "direccion", "tipo", "estadoExtintor", "franja"}, fields)

	first, ok := res.Errors.First()
	require.True(t, ok)
	assert.Equal(t, validation.MsgPhone, first.Message)
	assert.Equal(t, validation.MsgFranja, res.Errors.Get("franja"))
}

func TestValidateServiceRequest_ErrorEsInvalidInput(t *testing.T) {
	in := validServiceRequest()
	in.Direccion = "corta"

	err := validation.ValidateServiceRequestAt(in, testNow).Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, validation.MsgAddress, err.Error())

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Result.Errors.Has("direccion"))
}

func TestValidateRegisterForm(t *testing.T) {
	ok := validation.ValidateRegisterForm(dto.RegisterRequest{
		Name:     "María Pérez",
		Email:    "maria@firex.co",
		Password: "secreto",
		Phone:    "310 555 1234",
		Address:  "Carrera 7 # 12-34",
	})
	assert.True(t, ok.IsValid)

	bad := validation.ValidateRegisterForm(dto.RegisterRequest{Name: "Jo", Email: "x", Password: "123"})
	require.False(t, bad.IsValid)
	assert.Equal(t, validation.MsgName, bad.Errors.Get("name"))
	assert.Equal(t, validation.MsgEmail, bad.Errors.Get("email"))
	assert.Equal(t, validation.MsgPassword, bad.Errors.Get("password"))
	assert.Equal(t, validation.MsgPhone, bad.Errors.Get("phone"))
	assert.Equal(t, validation.MsgAddress, bad.Errors.Get("address"))
}

func TestValidateLoginForm(t *testing.T) {
	assert.True(t, validation.ValidateLoginForm("admin@firex.co", "1").IsValid, "en login no se exige longitud")

	res := validation.ValidateLoginForm("admin", "  ")
	require.False(t, res.IsValid)
	assert.Equal(t, validation.MsgEmail, res.Errors.Get("email"))
	assert.Equal(t, validation.MsgPasswordReq, res.Errors.Get("password"))
}

func TestValidateLoginForm_EmailInvalidoConPassword(t *testing.T) {
	res := validation.ValidateLoginForm("not-an-email", "x")
	require.False(t, res.IsValid)
	assert.True(t, res.Errors.Has("email"))
	assert.Equal(t, validation.MsgEmail, res.Errors.Get("email"))
	assert.False(t, res.Errors.Has("password"), "una contraseña corta no es error en login")
}

func TestValidateProfileForm_CamposOpcionales(t *testing.T) {
	assert.True(t, validation.ValidateProfileForm(dto.ProfileUpdateRequest{Name: "Carlos Ruiz"}).IsValid)

	res := validation.ValidateProfileForm(dto.ProfileUpdateRequest{Name: "Carlos Ruiz", Phone: "123"})
	require.False(t, res.IsValid)
	assert.Equal(t, validation.MsgPhone, res.Errors.Get("phone"))
}

func TestErrors_SetReemplazaConservandoPosicion(t *testing.T) {
	var errs validation.Errors
	errs.Set("a", "uno")
	errs.Set("b", "dos")
	errs.Set("a", "tres")

	require.Len(t, errs, 2)
	assert.Equal(t, "a", errs[0].Field)
	assert.Equal(t, "tres", errs[0].Message)

	raw, err := json.Marshal(errs)
	require.NoError(t, err)
	assert.Equal(t, `{"a":"tres","b":"dos"}`, string(raw))
}

func TestValidateProductForm(t *testing.T) {
	price := decimal.NewFromInt(150000)
	stock := 5
	ok := validation.ValidateProductForm(dto.ProductRequest{
		Name:       "Extintor ABC 10 lb",
		Price:      &price,
		Stock:      &stock,
		CategoryID: "cat-1",
	})
	assert.True(t, ok.IsValid, "%v", ok.Errors)

	neg := decimal.NewFromInt(-1)
	negStock := -2
	bad := validation.ValidateProductForm(dto.ProductRequest{
		Name:  "Ex",
		Price: &neg,
		Stock: &negStock,
	})
	require.False(t, bad.IsValid)
	assert.Equal(t, "El nombre debe tener entre 3 y 100 caracteres", bad.Errors.Get("name"))
	assert.Equal(t, "El precio no puede ser negativo", bad.Errors.Get("price"))
	assert.Equal(t, "El stock no puede ser negativo", bad.Errors.Get("stock"))
	assert.Equal(t, "La categoría es requerida", bad.Errors.Get("categoryId"))
}

func TestValidateProductForm_PrecioRequerido(t *testing.T) {
	stock := 1
	res := validation.ValidateProductForm(dto.ProductRequest{Name: "Extintor CO2", Stock: &stock, CategoryID: "c"})
	require.False(t, res.IsValid)
	assert.Equal(t, "El precio es requerido", res.Errors.Get("price"))
}

func TestValidateCategoryForm(t *testing.T) {
	assert.True(t, validation.ValidateCategoryForm(dto.CategoryRequest{Name: "Recargas"}).IsValid)

	res := validation.ValidateCategoryForm(dto.CategoryRequest{Name: "   "})
	require.False(t, res.IsValid)
	assert.Equal(t, "El nombre es requerido", res.Errors.Get("name"))
}
