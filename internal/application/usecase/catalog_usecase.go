package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/ports"
	"github.com/diedev/firex-web/internal/domain/entity"
)

// AllCategories valor del selector de categoría que muestra todo.
const AllCategories = "all"

// CatalogUseCase inicio, catálogo y detalle de producto.
type CatalogUseCase struct {
	products   ports.ProductsAPI
	categories ports.CategoriesAPI
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products ports.ProductsAPI, categories ports.CategoriesAPI) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// Home productos disponibles y categorías, en paralelo.
func (uc *CatalogUseCase) Home(ctx context.Context) (*dto.CatalogView, error) {
	return uc.load(ctx, dto.CatalogQuery{}, uc.products.Available)
}

// List catálogo completo, búsqueda por palabra clave o filtro por categoría.
//
// Búsqueda vacía (o sólo espacios) devuelve el catálogo completo. Si la búsqueda del backend
// no encuentra nada se reintenta localmente sin distinguir tildes ("quimico" encuentra "Químico").
func (uc *CatalogUseCase) List(ctx context.Context, q dto.CatalogQuery) (*dto.CatalogView, error) {
	q.Search = strings.TrimSpace(q.Search)
	q.CategoryID = strings.TrimSpace(q.CategoryID)
	if q.CategoryID == AllCategories {
		q.CategoryID = ""
	}

	fetch := uc.products.GetAll
	switch {
	case q.Search != "":
		fetch = func(ctx context.Context) (*dto.Envelope[[]entity.Product], error) {
			return uc.search(ctx, q.Search)
		}
	case q.CategoryID != "":
		fetch = func(ctx context.Context) (*dto.Envelope[[]entity.Product], error) {
			return uc.products.ByCategory(ctx, q.CategoryID)
		}
	}

	view, err := uc.load(ctx, q, fetch)
	if err != nil {
		return nil, err
	}
	if q.Search != "" && q.CategoryID != "" {
		view.Products = filterCards(view.Products, func(p dto.ProductCard) bool {
			return p.CategoryID == q.CategoryID
		})
	}
	return view, nil
}

func (uc *CatalogUseCase) search(ctx context.Context, keyword string) (*dto.Envelope[[]entity.Product], error) {
	res, err := uc.products.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if len(res.Data) > 0 {
		return res, nil
	}
	all, err := uc.products.GetAll(ctx)
	if err != nil {
		return res, nil
	}
	all.Data = FilterProductsByName(all.Data, keyword)
	return all, nil
}

// load trae productos y categorías en paralelo.
func (uc *CatalogUseCase) load(
	ctx context.Context,
	q dto.CatalogQuery,
	fetch func(context.Context) (*dto.Envelope[[]entity.Product], error),
) (*dto.CatalogView, error) {
	var (
		products   []entity.Product
		categories []entity.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := fetch(gctx)
		if err != nil {
			return err
		}
		products = res.Data
		return nil
	})
	g.Go(func() error {
		res, err := uc.categories.GetAll(gctx)
		if err != nil {
			return err
		}
		categories = res.Data
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	return &dto.CatalogView{Products: productCards(products), Categories: categories, Query: q}, nil
}

// Detail un producto.
func (uc *CatalogUseCase) Detail(ctx context.Context, id string) (*dto.ProductCard, error) {
	res, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	card := productCard(res.Data)
	return &card, nil
}

// FilterProductsByName filtra por nombre o descripción sin distinguir mayúsculas ni tildes.
func FilterProductsByName(ps []entity.Product, keyword string) []entity.Product {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return ps
	}
	out := make([]entity.Product, 0, len(ps))
	for _, p := range ps {
		if containsFold(p.Name, keyword) || containsFold(p.Description, keyword) {
			out = append(out, p)
		}
	}
	return out
}

func filterCards(cards []dto.ProductCard, keep func(dto.ProductCard) bool) []dto.ProductCard {
	out := cards[:0]
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
