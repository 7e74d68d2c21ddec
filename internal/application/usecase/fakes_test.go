package usecase_test

import (
	"context"
	"sync"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend falso en memoria: implementa todos los puertos de ports.*.
// ──────────────────────────────────────────────────────────────────────────────

type fakeBackend struct {
	mu sync.Mutex

	products   []entity.Product
	categories []entity.Category
	users      []entity.User
	requests   []entity.ServiceRequest
	cart       entity.Cart

	loginResp *dto.LoginResponse
	err       error // si no es nil, todas las llamadas fallan con él

	calls         []string
	lastCreate    dto.ServiceRequestCreate
	lastHeaders   map[string]string
	lastRegister  dto.RegisterRequest
	lastProfile   dto.ProfileUpdateRequest
	lastCartQty   int
	lastUpdatedBy string
}

func ok[T any](data T) *dto.Envelope[T] {
	return &dto.Envelope[T]{Success: true, Message: "ok", Data: data}
}

func (f *fakeBackend) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeBackend) called(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

// ── ProductsAPI ──

type fakeProducts struct{ *fakeBackend }

func (f fakeProducts) GetAll(context.Context) (*dto.Envelope[[]entity.Product], error) {
	if err := f.record("products.getAll"); err != nil {
		return nil, err
	}
	return ok(append([]entity.Product(nil), f.products...)), nil
}

func (f fakeProducts) GetByID(_ context.Context, id string) (*dto.Envelope[entity.Product], error) {
	if err := f.record("products.getById"); err != nil {
		return nil, err
	}
	for _, p := range f.products {
		if p.ID == id {
			return ok(p), nil
		}
	}
	return nil, errNotFound
}

func (f fakeProducts) Create(_ context.Context, in dto.ProductRequest) (*dto.Envelope[entity.Product], error) {
	if err := f.record("products.create"); err != nil {
		return nil, err
	}
	return ok(entity.Product{ID: "p-new", Name: in.Name, Price: *in.Price, Stock: *in.Stock, CategoryID: in.CategoryID}), nil
}

func (f fakeProducts) Update(_ context.Context, id string, in dto.ProductRequest) (*dto.Envelope[entity.Product], error) {
	if err := f.record("products.update"); err != nil {
		return nil, err
	}
	return ok(entity.Product{ID: id, Name: in.Name, Price: *in.Price, Stock: *in.Stock, CategoryID: in.CategoryID}), nil
}

func (f fakeProducts) Delete(context.Context, string) (*dto.Envelope[any], error) {
	return nil, f.record("products.delete")
}

func (f fakeProducts) Search(_ context.Context, keyword string) (*dto.Envelope[[]entity.Product], error) {
	if err := f.record("products.search"); err != nil {
		return nil, err
	}
	var out []entity.Product
	for _, p := range f.products {
		if containsLower(p.Name, keyword) {
			out = append(out, p)
		}
	}
	return ok(out), nil
}

func (f fakeProducts) ByCategory(_ context.Context, categoryID string) (*dto.Envelope[[]entity.Product], error) {
	if err := f.record("products.byCategory"); err != nil {
		return nil, err
	}
	var out []entity.Product
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return ok(out), nil
}

func (f fakeProducts) Available(context.Context) (*dto.Envelope[[]entity.Product], error) {
	if err := f.record("products.available"); err != nil {
		return nil, err
	}
	var out []entity.Product
	for _, p := range f.products {
		if p.Stock > 0 {
			out = append(out, p)
		}
	}
	return ok(out), nil
}

func (f fakeProducts) LowStock(_ context.Context, threshold int) (*dto.Envelope[[]entity.Product], error) {
	if err := f.record("products.lowStock"); err != nil {
		return nil, err
	}
	if threshold <= 0 {
		threshold = 10
	}
	var out []entity.Product
	for _, p := range f.products {
		if p.Stock < threshold {
			out = append(out, p)
		}
	}
	return ok(out), nil
}

// ── CategoriesAPI ──

type fakeCategories struct{ *fakeBackend }

func (f fakeCategories) GetAll(context.Context) (*dto.Envelope[[]entity.Category], error) {
	if err := f.record("categories.getAll"); err != nil {
		return nil, err
	}
	return ok(f.categories), nil
}

func (f fakeCategories) GetByID(_ context.Context, id string) (*dto.Envelope[entity.Category], error) {
	if err := f.record("categories.getById"); err != nil {
		return nil, err
	}
	return ok(entity.Category{ID: id}), nil
}

func (f fakeCategories) Create(_ context.Context, in dto.CategoryRequest) (*dto.Envelope[entity.Category], error) {
	if err := f.record("categories.create"); err != nil {
		return nil, err
	}
	return ok(entity.Category{ID: "c-new", Name: in.Name, Description: in.Description}), nil
}

func (f fakeCategories) Update(_ context.Context, id string, in dto.CategoryRequest) (*dto.Envelope[entity.Category], error) {
	if err := f.record("categories.update"); err != nil {
		return nil, err
	}
	return ok(entity.Category{ID: id, Name: in.Name, Description: in.Description}), nil
}

func (f fakeCategories) Delete(context.Context, string) (*dto.Envelope[any], error) {
	return nil, f.record("categories.delete")
}

// ── CartAPI ──

type fakeCart struct{ *fakeBackend }

func (f fakeCart) Get(context.Context, string) (*dto.Envelope[entity.Cart], error) {
	if err := f.record("cart.get"); err != nil {
		return nil, err
	}
	return ok(f.cart), nil
}

func (f fakeCart) AddItem(_ context.Context, _, _ string, quantity int) (*dto.Envelope[entity.Cart], error) {
	if err := f.record("cart.addItem"); err != nil {
		return nil, err
	}
	f.lastCartQty = quantity
	return ok(f.cart), nil
}

func (f fakeCart) UpdateItem(_ context.Context, _, _ string, quantity int) (*dto.Envelope[entity.Cart], error) {
	if err := f.record("cart.updateItem"); err != nil {
		return nil, err
	}
	f.lastCartQty = quantity
	return ok(f.cart), nil
}

func (f fakeCart) RemoveItem(context.Context, string, string) (*dto.Envelope[entity.Cart], error) {
	if err := f.record("cart.removeItem"); err != nil {
		return nil, err
	}
	return ok(f.cart), nil
}

func (f fakeCart) Clear(context.Context, string) (*dto.Envelope[entity.Cart], error) {
	if err := f.record("cart.clear"); err != nil {
		return nil, err
	}
	return ok(entity.Cart{}), nil
}

// ── AuthAPI / UsersAPI ──

type fakeAuth struct{ *fakeBackend }

func (f fakeAuth) Register(_ context.Context, in dto.RegisterRequest) (*dto.Envelope[entity.User], error) {
	if err := f.record("auth.register"); err != nil {
		return nil, err
	}
	f.lastRegister = in
	return ok(entity.User{ID: "u-new", Name: in.Name, Email: in.Email, Phone: in.Phone, Address: in.Address, Role: entity.RoleUser}), nil
}

func (f fakeAuth) Login(context.Context, string, string) (*dto.LoginResponse, error) {
	if err := f.record("auth.login"); err != nil {
		return nil, err
	}
	return f.loginResp, nil
}

type fakeUsers struct{ *fakeBackend }

func (f fakeUsers) GetAll(context.Context) (*dto.Envelope[[]entity.User], error) {
	if err := f.record("users.getAll"); err != nil {
		return nil, err
	}
	return ok(f.users), nil
}

func (f fakeUsers) GetByID(_ context.Context, id string) (*dto.Envelope[entity.User], error) {
	if err := f.record("users.getById"); err != nil {
		return nil, err
	}
	for _, u := range f.users {
		if u.ID == id {
			return ok(u), nil
		}
	}
	return nil, errNotFound
}

func (f fakeUsers) UpdateProfile(_ context.Context, id string, in dto.ProfileUpdateRequest) (*dto.Envelope[entity.User], error) {
	if err := f.record("users.updateProfile"); err != nil {
		return nil, err
	}
	f.lastProfile = in
	for _, u := range f.users {
		if u.ID == id {
			u.Name, u.Phone, u.Address = in.Name, in.Phone, in.Address
			return ok(u), nil
		}
	}
	return nil, errNotFound
}

func (f fakeUsers) Delete(context.Context, string) (*dto.Envelope[any], error) {
	return nil, f.record("users.delete")
}

// ── ServiceRequestsAPI ──

type fakeRequests struct{ *fakeBackend }

func (f fakeRequests) Create(_ context.Context, userID, userEmail string, in dto.ServiceRequestCreate) (*dto.Envelope[entity.ServiceRequest], error) {
	if err := f.record("requests.create"); err != nil {
		return nil, err
	}
	f.lastCreate = in
	f.lastHeaders = map[string]string{"User-Id": userID, "User-Email": userEmail}
	return ok(entity.ServiceRequest{
		ID: "sr-new", RequestID: "SR-1736900000000", UserID: userID, UserEmail: userEmail,
		Tipo: in.Tipo, Telefono: in.Telefono, Status: entity.StatusPendiente,
	}), nil
}

func (f fakeRequests) GetAll(context.Context) (*dto.Envelope[[]entity.ServiceRequest], error) {
	if err := f.record("requests.getAll"); err != nil {
		return nil, err
	}
	return ok(append([]entity.ServiceRequest(nil), f.requests...)), nil
}

func (f fakeRequests) GetByID(_ context.Context, id string) (*dto.Envelope[entity.ServiceRequest], error) {
	if err := f.record("requests.getById"); err != nil {
		return nil, err
	}
	for _, sr := range f.requests {
		if sr.ID == id {
			return ok(sr), nil
		}
	}
	return nil, errNotFound
}

func (f fakeRequests) GetByRequestID(_ context.Context, requestID string) (*dto.Envelope[entity.ServiceRequest], error) {
	if err := f.record("requests.getByRequestId"); err != nil {
		return nil, err
	}
	for _, sr := range f.requests {
		if sr.RequestID == requestID {
			return ok(sr), nil
		}
	}
	return nil, errNotFound
}

func (f fakeRequests) GetMine(_ context.Context, email string) (*dto.Envelope[[]entity.ServiceRequest], error) {
	if err := f.record("requests.getMine"); err != nil {
		return nil, err
	}
	var out []entity.ServiceRequest
	for _, sr := range f.requests {
		if sr.UserEmail == email {
			out = append(out, sr)
		}
	}
	return ok(out), nil
}

func (f fakeRequests) GetByStatus(_ context.Context, status string) (*dto.Envelope[[]entity.ServiceRequest], error) {
	if err := f.record("requests.getByStatus"); err != nil {
		return nil, err
	}
	var out []entity.ServiceRequest
	for _, sr := range f.requests {
		if string(sr.Status) == status {
			out = append(out, sr)
		}
	}
	return ok(out), nil
}

func (f fakeRequests) UpdateStatus(_ context.Context, id, status, updatedBy string) (*dto.Envelope[entity.ServiceRequest], error) {
	if err := f.record("requests.updateStatus"); err != nil {
		return nil, err
	}
	f.lastUpdatedBy = updatedBy
	for _, sr := range f.requests {
		if sr.ID == id {
			sr.Status = entity.ServiceRequestStatus(status)
			return ok(sr), nil
		}
	}
	return nil, errNotFound
}

func (f fakeRequests) Delete(context.Context, string) (*dto.Envelope[any], error) {
	return nil, f.record("requests.delete")
}

func (f fakeRequests) Stats(context.Context) (*dto.Envelope[dto.RequestStats], error) {
	if err := f.record("requests.stats"); err != nil {
		return nil, err
	}
	stats := dto.RequestStats{}
	for _, sr := range f.requests {
		stats[string(sr.Status)]++
	}
	return ok(stats), nil
}
