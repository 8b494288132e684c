package service

import (
	"context"
	stderrors "errors"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"shipcatalog/internal/biz"
)

// ShipService exposes the ship catalog operations to the transport layer
type ShipService struct {
	shipUC *biz.ShipUseCase
	log    *log.Helper
}

// NewShipService creates a new ShipService
func NewShipService(shipUC *biz.ShipUseCase, logger log.Logger) *ShipService {
	return &ShipService{
		shipUC: shipUC,
		log:    log.NewHelper(logger),
	}
}

// ListShips implements filtered, ordered and paginated listing
func (s *ShipService) ListShips(ctx context.Context, req *ListShipsRequest) ([]*ShipReply, error) {
	query := &biz.ShipQuery{
		Filter:   req.toFilter(),
		PageSize: biz.DefaultPageSize,
	}
	if req.Order != nil {
		query.Order = biz.ShipOrder(*req.Order)
	}
	if req.PageNumber != nil {
		query.PageNumber = *req.PageNumber
	}
	if req.PageSize != nil {
		query.PageSize = *req.PageSize
	}

	ships, err := s.shipUC.ListShips(ctx, query)
	if err != nil {
		return nil, s.toStatus(err)
	}

	reply := make([]*ShipReply, 0, len(ships))
	for _, ship := range ships {
		reply = append(reply, shipToReply(ship))
	}
	return reply, nil
}

// CountShips implements counting of the filtered set
func (s *ShipService) CountShips(ctx context.Context, req *ShipCriteria) (int64, error) {
	f := req.toFilter()
	n, err := s.shipUC.CountShips(ctx, &f)
	if err != nil {
		return 0, s.toStatus(err)
	}
	return n, nil
}

// GetShip implements lookup by id
func (s *ShipService) GetShip(ctx context.Context, req *ShipIDRequest) (*ShipReply, error) {
	ship, err := s.shipUC.GetShip(ctx, req.ID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return shipToReply(ship), nil
}

// CreateShip implements ship creation
func (s *ShipService) CreateShip(ctx context.Context, req *ShipPayload) (*ShipReply, error) {
	ship, err := s.shipUC.CreateShip(ctx, req.toInput())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return shipToReply(ship), nil
}

// UpdateShip implements partial update
func (s *ShipService) UpdateShip(ctx context.Context, req *UpdateShipRequest) (*ShipReply, error) {
	ship, err := s.shipUC.UpdateShip(ctx, req.ID, req.Ship.toInput())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return shipToReply(ship), nil
}

// DeleteShip implements deletion
func (s *ShipService) DeleteShip(ctx context.Context, req *ShipIDRequest) error {
	if err := s.shipUC.DeleteShip(ctx, req.ID); err != nil {
		return s.toStatus(err)
	}
	return nil
}

// toStatus converts biz error kinds to transport errors
func (s *ShipService) toStatus(err error) error {
	switch {
	case stderrors.Is(err, biz.ErrInvalidArgument):
		return errors.BadRequest("INVALID_ARGUMENT", err.Error())
	case stderrors.Is(err, biz.ErrShipNotFound):
		return errors.NotFound("SHIP_NOT_FOUND", err.Error())
	}
	s.log.Errorf("ship operation failed: %v", err)
	return errors.InternalServer("INTERNAL", "internal error")
}
