package postgres

import (
	"context"

	"cakery/internal/domain/entity"
	"cakery/internal/domain/repository"
	"cakery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order together with its line item. The
// unique index on order_items.design_id rejects a second order for the
// same design even if the status mutex were ever bypassed.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrder
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDesignNotFound
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.Item.ID = orderM.Item.ID
	order.Item.OrderID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order with its line item.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Item").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrderByDesignID retrieves the order referencing a design.
func (repo *orderRepository) FindOrderByDesignID(ctx context.Context, designID uuid.UUID) (*entity.Order, error) {
	var itemM model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Where("design_id = ?", designID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order item by design ID")
	}

	return repo.FindOrderByID(ctx, itemM.OrderID)
}

// ListOrdersByBuyer retrieves a buyer's orders, newest first.
func (repo *orderRepository) ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	return repo.listOrders(ctx, "buyer_id = ?", buyerID, limit, offset)
}

// ListOrdersByBaker retrieves a baker's orders, newest first.
func (repo *orderRepository) ListOrdersByBaker(ctx context.Context, bakerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	return repo.listOrders(ctx, "baker_id = ?", bakerID, limit, offset)
}

func (repo *orderRepository) listOrders(ctx context.Context, cond string, id uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Item").
		Where(cond, id).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdatePaymentStatus updates the payment verification state.
func (repo *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("payment_status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:      data.ID,
		BuyerID: data.BuyerID,
		BakerID: data.BakerID,
		Item: entity.OrderItem{
			ID:       data.Item.ID,
			OrderID:  data.Item.OrderID,
			DesignID: data.Item.DesignID,
			Price:    data.Item.Price,
			Quantity: data.Item.Quantity,
		},
		ShippingFee:     data.ShippingFee,
		TotalAmount:     data.TotalAmount,
		AmountDeclared:  data.AmountDeclared,
		ShippingAddress: data.ShippingAddress,
		PaymentMethod:   entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		ProofOfPayment:  data.ProofOfPayment,
		PaymentQRURL:    data.PaymentQRURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		BakerID:         data.BakerID,
		ShippingFee:     data.ShippingFee,
		TotalAmount:     data.TotalAmount,
		AmountDeclared:  data.AmountDeclared,
		ShippingAddress: data.ShippingAddress,
		PaymentMethod:   string(data.PaymentMethod),
		PaymentStatus:   string(data.PaymentStatus),
		ProofOfPayment:  data.ProofOfPayment,
		PaymentQRURL:    data.PaymentQRURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Item: model.OrderItemModel{
			ID:       data.Item.ID,
			DesignID: data.Item.DesignID,
			Price:    data.Item.Price,
			Quantity: data.Item.Quantity,
		},
	}
}
