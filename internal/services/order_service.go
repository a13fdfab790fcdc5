package services

import (
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/store"
)

// Order intake errors.
var (
	ErrLengthRequired  = errors.New("measurement length is required for a perfect fit")
	ErrProductNotFound = errors.New("product not found")
)

const defaultCustomerContact = "customer@whatsapp.com"

var orderValidate = validator.New()

// OrderInput is a custom-measurement order submission. ProductID may carry
// either the catalog id or the exact product name.
type OrderInput struct {
	ProductID     string              `json:"productId" validate:"required"`
	ProductType   string              `json:"productType"`
	Quantity      int                 `json:"quantity" validate:"gte=0"`
	Measurements  models.Measurements `json:"measurements"`
	CustomerEmail string              `json:"customerEmail" validate:"omitempty,email"`
	ReferrerCode  string              `json:"referrerCode"`
}

// OrderService captures custom orders: validation, denormalized snapshot,
// referral stamping, local persistence, then best-effort remote mirroring and
// the notification handoff.
type OrderService struct {
	store    *store.Store
	catalog  *CatalogService
	gateway  *WorkerGateway
	telegram *TelegramService
}

// NewOrderService constructs an OrderService. gateway and telegram may be nil.
func NewOrderService(st *store.Store, catalog *CatalogService, gateway *WorkerGateway, telegram *TelegramService) *OrderService {
	return &OrderService{store: st, catalog: catalog, gateway: gateway, telegram: telegram}
}

// Submit validates and records one order. The product name, type and total
// are snapshots taken now; the total is never recomputed from the live
// catalog. Persistence is local and unconditional; mirroring to the worker
// and the Telegram handoff happen afterwards and never block completion.
func (s *OrderService) Submit(input OrderInput, sessionReferrer string) (models.Order, error) {
	if err := orderValidate.Struct(input); err != nil {
		return models.Order{}, err
	}
	if strings.TrimSpace(input.Measurements.Length) == "" {
		return models.Order{}, ErrLengthRequired
	}

	product, ok := s.catalog.FindProduct(input.ProductID)
	if !ok {
		return models.Order{}, ErrProductNotFound
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	productType := input.ProductType
	if productType == "" {
		productType = product.Type
	}

	referrer := strings.TrimSpace(input.ReferrerCode)
	if referrer == "" {
		referrer = strings.TrimSpace(sessionReferrer)
	}

	contact := strings.TrimSpace(input.CustomerEmail)
	if contact == "" {
		contact = defaultCustomerContact
	}

	order := models.Order{
		ID:            uuid.NewString(),
		ProductName:   product.Name,
		ProductType:   productType,
		Quantity:      quantity,
		Measurements:  input.Measurements,
		Timestamp:     time.Now().UnixMilli(),
		CustomerEmail: contact,
		ReferrerCode:  referrer,
		Status:        models.OrderStatusPending,
		Total:         product.Price * float64(quantity),
	}

	if err := s.store.AppendOrder(order); err != nil {
		return models.Order{}, err
	}

	go s.dispatchMirrorAndNotify(order)
	return order, nil
}

// dispatchMirrorAndNotify mirrors the order to the worker when reachable and
// always attempts the notification handoff. Failures are logged, never
// surfaced to the shopper.
func (s *OrderService) dispatchMirrorAndNotify(order models.Order) {
	if s.gateway.Configured() && s.gateway.IsActive() {
		if err := s.gateway.TrackOrder(order, ""); err != nil {
			log.Printf("[Order] remote tracking failed for %s, continuing: %v", order.ID, err)
		}
	}

	if s.telegram != nil {
		if err := s.telegram.NotifyOrderInquiry(order); err != nil {
			log.Printf("[Order] Telegram notification failed for %s: %v", order.ID, err)
		}
	}
}

// List returns all recorded orders, newest first.
func (s *OrderService) List() []models.Order {
	orders := s.store.Orders()
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].Timestamp > orders[j].Timestamp })
	return orders
}
