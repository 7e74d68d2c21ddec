// Package api es el cliente del backend REST de Firex.
//
// Cada grupo de recursos (Products, Cart, ServiceRequests, ...) replica una ruta del backend;
// todas las llamadas pasan por call, que fija Content-Type, serializa el cuerpo y convierte
// las respuestas no 2xx en *Error con el mensaje del backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diedev/firex-web/internal/application/ports"
	"github.com/diedev/firex-web/pkg/logger"
)

func init() {
	// El backend espera los precios como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// maxBodyBytes límite de lectura de una respuesta.
const maxBodyBytes = 4 << 20

// ErrNetwork el backend no respondió (conexión rechazada, DNS, timeout, cancelación).
var ErrNetwork = errors.New("Network error: No se pudo conectar con el servidor")

// ErrInvalidResponse respuesta 2xx vacía o que no es JSON válido.
var ErrInvalidResponse = errors.New("api: respuesta inválida del backend")

// Error respuesta no 2xx del backend. Error() es exactamente el mensaje mostrado al usuario.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// IsStatus indica si err es un *Error con el código dado.
func IsStatus(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

type networkError struct {
	cause error
}

func (e *networkError) Error() string   { return ErrNetwork.Error() }
func (e *networkError) Unwrap() []error { return []error{ErrNetwork, e.cause} }

// Config configuración del cliente.
type Config struct {
	BaseURL    string
	Timeout    time.Duration // 0 = sin timeout
	SendBearer bool          // además de los headers User-Id/User-Email, enviar Authorization
	HTTPClient *http.Client  // opcional (tests)
}

// Client cliente del backend con un campo por grupo de recursos.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sendBearer bool
	log        *logger.Logger

	Products        *ProductsAPI
	Categories      *CategoriesAPI
	Cart            *CartAPI
	Auth            *AuthAPI
	Users           *UsersAPI
	ServiceRequests *ServiceRequestsAPI
	Health          *HealthAPI
}

// New construye el cliente. BaseURL sin barra final.
func New(cfg Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: hc,
		sendBearer: cfg.SendBearer,
		log:        log.Component("api"),
	}
	c.Products = &ProductsAPI{c: c}
	c.Categories = &CategoriesAPI{c: c}
	c.Cart = &CartAPI{c: c}
	c.Auth = &AuthAPI{c: c}
	c.Users = &UsersAPI{c: c}
	c.ServiceRequests = &ServiceRequestsAPI{c: c}
	c.Health = &HealthAPI{c: c}
	return c
}

// BaseURL URL del backend.
func (c *Client) BaseURL() string { return c.baseURL }

// ── Token opcional ──

type tokenKey struct{}

// WithToken adjunta el token de la sesión al contexto; se envía como Bearer sólo si SendBearer está activo.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// ── Llamada genérica ──

// request parámetros de una llamada.
type request struct {
	method  string
	path    string
	body    any
	headers map[string]string
}

// errorBody forma mínima de un error del backend.
type errorBody struct {
	Message string `json:"message"`
}

// call ejecuta la petición y decodifica la respuesta 2xx en T.
func call[T any](ctx context.Context, c *Client, r request) (T, error) {
	var out T

	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return out, fmt.Errorf("api: serializar cuerpo: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return out, fmt.Errorf("api: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.sendBearer {
		if tok := tokenFrom(ctx); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", r.method).Str("path", r.path).Msg("backend no disponible")
		return out, &networkError{cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return out, &networkError{cause: err}
	}

	c.log.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("llamada al backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, errorFromResponse(resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return out, fmt.Errorf("%w: cuerpo vacío en %s %s", ErrInvalidResponse, r.method, r.path)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %s %s: %v", ErrInvalidResponse, r.method, r.path, err)
	}
	return out, nil
}

func errorFromResponse(status int, raw []byte) *Error {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return &Error{StatusCode: status, Message: fmt.Sprintf("HTTP error, status %d", status)}
	}
	if eb.Message == "" {
		return &Error{StatusCode: status, Message: fmt.Sprintf("Error %d", status)}
	}
	return &Error{StatusCode: status, Message: eb.Message}
}

// Verificar en tiempo de compilación que los grupos implementan los puertos.
var (
	_ ports.ProductsAPI        = (*ProductsAPI)(nil)
	_ ports.CategoriesAPI      = (*CategoriesAPI)(nil)
	_ ports.CartAPI            = (*CartAPI)(nil)
	_ ports.AuthAPI            = (*AuthAPI)(nil)
	_ ports.UsersAPI           = (*UsersAPI)(nil)
	_ ports.ServiceRequestsAPI = (*ServiceRequestsAPI)(nil)
	_ ports.HealthAPI          = (*HealthAPI)(nil)
)
