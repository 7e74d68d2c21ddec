package validation

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/domain"
)

// Mensajes mostrados en los formularios.
const (
	MsgPhone          = "Teléfono inválido. Debe ser un celular colombiano (ej: 3001234567)"
	MsgDatePast       = "La fecha debe ser hoy o en el futuro"
	MsgDateTooFar     = "La fecha no puede ser más de 3 meses en el futuro"
	MsgAddress        = "La dirección debe tener al menos 10 caracteres"
	MsgTipo           = "Debe seleccionar un tipo de extintor"
	MsgEstadoExtintor = "Debe indicar el estado del extintor"
	MsgFranja         = "Debe seleccionar una franja horaria"
	MsgName           = "El nombre debe tener al menos 3 caracteres y solo letras"
	MsgEmail          = "Email inválido"
	MsgPassword       = "La contraseña debe tener al menos 6 caracteres"
	MsgPasswordReq    = "La contraseña es requerida"
)

// Errors errores por campo en el orden en que se evaluaron.
type Errors []dto.FieldError

// Set agrega el mensaje del campo; si ya existía lo reemplaza conservando su posición.
func (e *Errors) Set(field, message string) {
	for i := range *e {
		if (*e)[i].Field == field {
			(*e)[i].Message = message
			return
		}
	}
	*e = append(*e, dto.FieldError{Field: field, Message: message})
}

// Get mensaje del campo, "" si no tiene error.
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Has indica si el campo tiene error.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// First primer error evaluado; es el que se muestra cuando la vista reporta un solo mensaje.
func (e Errors) First() (dto.FieldError, bool) {
	if len(e) == 0 {
		return dto.FieldError{}, false
	}
	return e[0], true
}

// Map copia sin orden, útil para búsquedas puntuales.
func (e Errors) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		m[fe.Field] = fe.Message
	}
	return m
}

// MarshalJSON serializa como objeto {campo: mensaje} respetando el orden.
func (e Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fe := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(fe.Field)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(fe.Message)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result resultado de un validador compuesto. IsValid equivale a len(Errors) == 0.
type Result struct {
	IsValid bool   `json:"isValid"`
	Errors  Errors `json:"errors"`
}

func newResult(errs Errors) Result {
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// Err nil si es válido; si no, *Error.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return &Error{Result: r}
}

// Error error de validación de formulario. Su mensaje es el primer error.
type Error struct {
	Result Result
}

func (e *Error) Error() string {
	if fe, ok := e.Result.Errors.First(); ok {
		return fe.Message
	}
	return domain.ErrInvalidInput.Error()
}

func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

// ── Formularios ──

// ValidateServiceRequest valida la solicitud de servicio contra la fecha actual.
func ValidateServiceRequest(data dto.ServiceRequestCreate) Result {
	return ValidateServiceRequestAt(data, time.Now())
}

// ValidateServiceRequestAt igual que ValidateServiceRequest con el reloj explícito.
func ValidateServiceRequestAt(data dto.ServiceRequestCreate, now time.Time) Result {
	var errs Errors

	if !Phone(data.Telefono) {
		errs.Set("telefono", MsgPhone)
	}
	if !DateAt(data.Fecha, now) {
		errs.Set("fecha", MsgDatePast)
	} else if !DateNotTooFarAt(data.Fecha, now) {
		errs.Set("fecha", MsgDateTooFar)
	}
	if !Address(data.Direccion) {
		errs.Set("direccion", MsgAddress)
	}
	if !Required(data.Tipo) {
		errs.Set("tipo", MsgTipo)
	}
	if !Required(data.EstadoExtintor) {
		errs.Set("estadoExtintor", MsgEstadoExtintor)
	}
	if !Required(data.Franja) {
		errs.Set("franja", MsgFranja)
	}

	return newResult(errs)
}

// ValidateRegisterForm valida el registro. El teléfono y la dirección son obligatorios aquí
// aunque el backend los trate como opcionales.
func ValidateRegisterForm(data dto.RegisterRequest) Result {
	var errs Errors

	if !Name(data.Name) {
		errs.Set("name", MsgName)
	}
	if !Email(data.Email) {
		errs.Set("email", MsgEmail)
	}
	if !Password(data.Password) {
		errs.Set("password", MsgPassword)
	}
	if !Phone(data.Phone) {
		errs.Set("phone", MsgPhone)
	}
	if !Address(data.Address) {
		errs.Set("address", MsgAddress)
	}

	return newResult(errs)
}

// ValidateLoginForm en login la contraseña sólo es requerida; la longitud la decide el backend.
func ValidateLoginForm(email, password string) Result {
	var errs Errors

	if !Email(email) {
		errs.Set("email", MsgEmail)
	}
	if !Required(password) {
		errs.Set("password", MsgPasswordReq)
	}

	return newResult(errs)
}

// ValidateProfileForm valida la edición de perfil: nombre obligatorio, teléfono y dirección opcionales.
func ValidateProfileForm(data dto.ProfileUpdateRequest) Result {
	var errs Errors

	if !Name(data.Name) {
		errs.Set("name", MsgName)
	}
	if Required(data.Phone) && !Phone(data.Phone) {
		errs.Set("phone", MsgPhone)
	}
	if Required(data.Address) && !Address(data.Address) {
		errs.Set("address", MsgAddress)
	}

	return newResult(errs)
}
