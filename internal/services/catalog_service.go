package services

import (
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/store"
)

// CatalogRepository serves catalog pages. The service selects the remote
// implementation while the worker is reachable and falls back to the local
// store otherwise.
type CatalogRepository interface {
	Page(page, limit int, admin bool) (*CatalogPage, error)
}

type localCatalog struct {
	store *store.Store
}

func (r *localCatalog) Page(page, limit int, admin bool) (*CatalogPage, error) {
	return paginateProducts(r.store.Products(), page, limit, admin), nil
}

type remoteCatalog struct {
	gateway *WorkerGateway
	token   string
}

func (r *remoteCatalog) Page(page, limit int, admin bool) (*CatalogPage, error) {
	token := ""
	if admin {
		token = r.token
	}
	return r.gateway.Catalogs(page, limit, token)
}

// CatalogService manages the product catalog: listing with pagination and
// publish filtering, upserts and deletes. Mutations apply to the local store
// first and mirror to the worker best effort.
type CatalogService struct {
	store   *store.Store
	gateway *WorkerGateway
}

// NewCatalogService constructs a CatalogService. gateway may be nil for
// standalone deployments.
func NewCatalogService(st *store.Store, gateway *WorkerGateway) *CatalogService {
	return &CatalogService{store: st, gateway: gateway}
}

// List returns one catalog page. Non-administrative callers only see
// published products.
func (s *CatalogService) List(page, limit int, admin bool, token string) *CatalogPage {
	local := &localCatalog{store: s.store}

	if s.gateway.Configured() && s.gateway.IsActive() {
		remote := &remoteCatalog{gateway: s.gateway, token: token}
		result, err := remote.Page(page, limit, admin)
		if err == nil {
			return result
		}
		log.Printf("[Catalog] remote listing failed, falling back to local: %v", err)
	}

	result, _ := local.Page(page, limit, admin)
	return result
}

// Upsert creates or replaces a product keyed by id. A blank id is generated
// and a zero creation timestamp is stamped with the current time; an existing
// product keeps its original timestamp.
func (s *CatalogService) Upsert(product models.Product, token string) (models.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	products := s.store.Products()
	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			if product.CreatedAt == 0 {
				product.CreatedAt = products[i].CreatedAt
			}
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		if product.CreatedAt == 0 {
			product.CreatedAt = time.Now().UnixMilli()
		}
		products = append(products, product)
	}

	if err := s.store.SetProducts(products); err != nil {
		return models.Product{}, err
	}

	if s.gateway.Configured() && s.gateway.IsActive() {
		if _, err := s.gateway.UpsertCatalog(product, token); err != nil {
			log.Printf("[Catalog] remote upsert failed for %s: %v", product.ID, err)
		}
	}
	return product, nil
}

// Delete removes a product by id.
func (s *CatalogService) Delete(id, token string) error {
	products := s.store.Products()
	kept := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := s.store.SetProducts(kept); err != nil {
		return err
	}

	if s.gateway.Configured() && s.gateway.IsActive() {
		if err := s.gateway.DeleteCatalog(id, token); err != nil {
			log.Printf("[Catalog] remote delete failed for %s: %v", id, err)
		}
	}
	return nil
}

// FindProduct looks up a product by id or, failing that, by exact name.
func (s *CatalogService) FindProduct(idOrName string) (models.Product, bool) {
	products := s.store.Products()
	for _, p := range products {
		if p.ID == idOrName {
			return p, true
		}
	}
	for _, p := range products {
		if p.Name == idOrName {
			return p, true
		}
	}
	return models.Product{}, false
}

// paginateProducts applies publish filtering, ordering and pagination to an
// in-memory product collection. Products sort by explicit order index when
// every item carries one, otherwise by creation timestamp descending.
func paginateProducts(products []models.Product, page, limit int, admin bool) *CatalogPage {
	if !admin {
		visible := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.Published {
				visible = append(visible, p)
			}
		}
		products = visible
	}

	allOrdered := len(products) > 0
	for _, p := range products {
		if p.OrderIndex == nil {
			allOrdered = false
			break
		}
	}

	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		if allOrdered {
			return *sorted[i].OrderIndex < *sorted[j].OrderIndex
		}
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})

	offset := (page - 1) * limit
	end := offset + limit
	if offset > len(sorted) {
		offset = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	return &CatalogPage{
		Data:    sorted[offset:end],
		Total:   len(sorted),
		Page:    page,
		Limit:   limit,
		HasMore: end < len(sorted),
	}
}
