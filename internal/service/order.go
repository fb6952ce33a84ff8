package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"greencart-api/internal/cache"
	"greencart-api/internal/client"
	"greencart-api/internal/dto"
	"greencart-api/internal/model"
	"greencart-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const taxRate = 0.02

type OrderService interface {
	PlaceOrderCOD(ctx context.Context, req *dto.PlaceOrderRequest) error
	PlaceOrderStripe(ctx context.Context, req *dto.PlaceOrderRequest, origin string) (string, error)
	GetUserOrders(ctx context.Context, userID string) ([]*model.Order, error)
	GetAllOrders(ctx context.Context) ([]*model.Order, error)
	HandleStripeWebhook(ctx context.Context, payload []byte, sigHeader string) error
}

type orderServiceImpl struct {
	stripeClient     client.StripeClient
	productRepo      repository.ProductRepository
	orderRepo        repository.OrderRepository
	userRepo         repository.UserRepository
	webhookEventRepo repository.WebhookEventRepository
	cartCache        cache.CartCache // nil when the cache is disabled
}

func NewOrderService(
	stripeClient client.StripeClient,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	webhookEventRepo repository.WebhookEventRepository,
	cartCache cache.CartCache,
) OrderService {
	return &orderServiceImpl{
		stripeClient:     stripeClient,
		productRepo:      productRepo,
		orderRepo:        orderRepo,
		userRepo:         userRepo,
		webhookEventRepo: webhookEventRepo,
		cartCache:        cartCache,
	}
}

// pricedOrder is the shared outcome of validating and totaling a line-item
// list. The stored order amount and the provider line-item unit amounts are
// computed independently of each other; both apply the same truncated 2%
// tax but must not be unified into one formula.
type pricedOrder struct {
	amount     float64
	orderItems []model.OrderItem
	lineItems  []client.CheckoutLineItem
}

func (s *orderServiceImpl) priceItems(ctx context.Context, items []dto.OrderItem) (*pricedOrder, error) {
	priced := &pricedOrder{
		orderItems: make([]model.OrderItem, 0, len(items)),
		lineItems:  make([]client.CheckoutLineItem, 0, len(items)),
	}

	for _, item := range items {
		if item.Product == "" {
			return nil, newValidationError("Product ID is missing in one of the items.")
		}
		if math.IsNaN(item.Quantity) || math.IsInf(item.Quantity, 0) {
			return nil, newValidationError("Invalid quantity for product %s", item.Product)
		}

		product, err := s.productRepo.FindByID(ctx, item.Product)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ProductNotFoundError{ProductID: item.Product}
			}
			return nil, fmt.Errorf("find product %s: %w", item.Product, err)
		}

		priced.amount += product.OfferPrice * item.Quantity

		priced.orderItems = append(priced.orderItems, model.OrderItem{
			ProductID: product.ID,
			Quantity:  int64(item.Quantity),
		})
		priced.lineItems = append(priced.lineItems, client.CheckoutLineItem{
			Name:       product.Name,
			UnitAmount: int64(math.Floor(product.OfferPrice+product.OfferPrice*taxRate)) * 100,
			Quantity:   int64(item.Quantity),
		})
	}

	// flat 2% tax, fractional part truncated
	priced.amount += math.Floor(priced.amount * taxRate)

	return priced, nil
}

func validatePlaceOrder(req *dto.PlaceOrderRequest) error {
	if req.Address == "" || len(req.Items) == 0 {
		return newValidationError("Invalid data")
	}
	return nil
}

func (s *orderServiceImpl) PlaceOrderCOD(ctx context.Context, req *dto.PlaceOrderRequest) error {
	if err := validatePlaceOrder(req); err != nil {
		return err
	}

	priced, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return err
	}

	order := &model.Order{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Items:       priced.orderItems,
		Amount:      priced.amount,
		AddressID:   req.Address,
		PaymentType: model.PaymentTypeCOD,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("store order in db: %w", err)
	}

	return nil
}

func (s *orderServiceImpl) PlaceOrderStripe(ctx context.Context, req *dto.PlaceOrderRequest, origin string) (string, error) {
	if err := validatePlaceOrder(req); err != nil {
		return "", err
	}

	priced, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return "", err
	}

	// the order has to exist before the session so the session metadata
	// can carry its id
	order := &model.Order{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Items:       priced.orderItems,
		Amount:      priced.amount,
		AddressID:   req.Address,
		PaymentType: model.PaymentTypeOnline,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return "", fmt.Errorf("store order in db: %w", err)
	}

	session, err := s.stripeClient.CreateCheckoutSession(ctx, &client.CheckoutSessionParams{
		LineItems:  priced.lineItems,
		SuccessURL: origin + "/loader?next=my-orders",
		CancelURL:  origin + "/cart",
		Metadata: map[string]string{
			"orderId": order.ID,
			"userId":  req.UserID,
		},
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	return session.URL, nil
}

func (s *orderServiceImpl) GetUserOrders(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderServiceImpl) GetAllOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

// HandleStripeWebhook reconciles order state from provider events.
// Delivery is at-least-once, so every branch tolerates replays: processed
// event ids short-circuit, and the underlying writes are no-ops when the
// order is already paid or already gone.
func (s *orderServiceImpl) HandleStripeWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.stripeClient.ConstructEvent(payload, sigHeader)
	if err != nil {
		return &SignatureError{Cause: err}
	}

	processed, err := s.webhookEventRepo.Exists(ctx, event.ID)
	if err != nil {
		log.Printf("check webhook event %s: %v", event.ID, err)
	} else if processed {
		return nil
	}

	switch event.Type {
	case "payment_intent.succeeded":
		if err := s.handlePaymentSucceeded(ctx, event); err != nil {
			return err
		}
	case "payment_intent.payment_failed":
		if err := s.handlePaymentFailed(ctx, event); err != nil {
			return err
		}
	default:
		log.Printf("unhandled stripe event type %s", event.Type)
	}

	if err := s.webhookEventRepo.MarkProcessed(ctx, event.ID, event.Type); err != nil {
		log.Printf("mark webhook event %s processed: %v", event.ID, err)
	}

	return nil
}

func (s *orderServiceImpl) handlePaymentSucceeded(ctx context.Context, event *model.StripeEvent) error {
	orderID, userID, err := s.sessionMetadata(ctx, event)
	if err != nil {
		return err
	}

	if err := s.orderRepo.MarkPaid(ctx, orderID); err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	if err := s.userRepo.ReplaceCart(ctx, userID, map[string]int64{}); err != nil {
		return fmt.Errorf("clear user cart: %w", err)
	}

	if s.cartCache != nil {
		if err := s.cartCache.Delete(ctx, userID); err != nil {
			log.Printf("invalidate cart cache for %s: %v", userID, err)
		}
	}

	return nil
}

func (s *orderServiceImpl) handlePaymentFailed(ctx context.Context, event *model.StripeEvent) error {
	orderID, _, err := s.sessionMetadata(ctx, event)
	if err != nil {
		return err
	}

	// failed online orders leave no trace
	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	return nil
}

// sessionMetadata recovers {orderId, userId} by looking the checkout
// session up via the event's payment intent id; the webhook payload does
// not carry the metadata directly.
func (s *orderServiceImpl) sessionMetadata(ctx context.Context, event *model.StripeEvent) (string, string, error) {
	paymentIntentID := event.Data.Object.ID
	if paymentIntentID == "" {
		return "", "", fmt.Errorf("missing payment intent id in event %s", event.ID)
	}

	session, err := s.stripeClient.SessionByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return "", "", fmt.Errorf("list checkout sessions: %w", err)
	}

	orderID := session.Metadata["orderId"]
	if orderID == "" {
		return "", "", fmt.Errorf("missing orderId in session %s metadata", session.ID)
	}

	return orderID, session.Metadata["userId"], nil
}
