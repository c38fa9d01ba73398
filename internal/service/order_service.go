package service

import (
	"errors"

	"go-store-api/internal/model"
	"go-store-api/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateOrderInput struct {
	Status string         `json:"status"`
	Items  datatypes.JSON `json:"items"`
}

type OrderService interface {
	Create(userID uint, req CreateOrderInput) (*model.Order, error)
	ListByUser(userID uint) ([]model.Order, error)
	GetByID(id, userID uint) (*model.Order, error)
	UpdateStatus(id uint, status string) (*model.Order, error)
	ListAll() ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(oRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: oRepo}
}

// Create records an order for the authenticated caller. The user id comes
// from the auth middleware, never from the request body.
func (s *orderService) Create(userID uint, req CreateOrderInput) (*model.Order, error) {
	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	order := &model.Order{
		UserID: userID,
		Status: status,
		Items:  req.Items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListByUser(userID uint) ([]model.Order, error) {
	return s.orderRepo.FindByUser(userID)
}

// GetByID is scoped to the owning user: someone else's order reads as absent.
func (s *orderService) GetByID(id, userID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, s.translate(err)
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus accepts any non-empty status string; there is no state machine.
func (s *orderService) UpdateStatus(id uint, status string) (*model.Order, error) {
	if status == "" {
		return nil, errors.New("status is required")
	}

	if _, err := s.orderRepo.FindByID(id); err != nil {
		return nil, s.translate(err)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, s.translate(err)
	}
	return order, nil
}

func (s *orderService) ListAll() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	return err
}
