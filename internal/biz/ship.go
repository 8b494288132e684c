package biz

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// ShipUseCase handles ship-related business logic
type ShipUseCase struct {
	repo ShipRepo
	log  *log.Helper
}

// NewShipUseCase creates a new ShipUseCase instance
func NewShipUseCase(repo ShipRepo, logger log.Logger) *ShipUseCase {
	return &ShipUseCase{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// ListShips returns the requested page of ships matching the query filter
func (uc *ShipUseCase) ListShips(ctx context.Context, q *ShipQuery) ([]*Ship, error) {
	if q.PageNumber < 0 || q.PageSize < 0 {
		return nil, fmt.Errorf("%w: negative page window", ErrInvalidArgument)
	}
	if !q.Order.Valid() {
		return nil, fmt.Errorf("%w: unknown order %q", ErrInvalidArgument, q.Order)
	}
	if err := checkFilter(&q.Filter); err != nil {
		return nil, err
	}
	if q.IsEmpty() {
		return []*Ship{}, nil
	}
	uc.log.WithContext(ctx).Debugf("list ships: criteria=%d order=%s page=%d size=%d",
		len(q.Filter.Criteria()), q.Order.Field(), q.PageNumber, q.PageSize)

	ships, err := uc.repo.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list ships: %w", err)
	}
	return ships, nil
}

// CountShips returns the size of the filtered set
func (uc *ShipUseCase) CountShips(ctx context.Context, f *ShipFilter) (int64, error) {
	if err := checkFilter(f); err != nil {
		return 0, err
	}
	n, err := uc.repo.Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("failed to count ships: %w", err)
	}
	return n, nil
}

// GetShip retrieves a ship by its id
func (uc *ShipUseCase) GetShip(ctx context.Context, id int64) (*Ship, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidArgument, id)
	}
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrShipNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrShipNotFound, id)
		}
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}
	return s, nil
}

// CreateShip validates the candidate, derives its rating and stores it
func (uc *ShipUseCase) CreateShip(ctx context.Context, in *ShipInput) (*Ship, error) {
	if err := Validate(in); err != nil {
		uc.log.WithContext(ctx).Warnf("rejected ship: %v", err)
		return nil, err
	}

	s := &Ship{
		Name:     *in.Name,
		Planet:   *in.Planet,
		ShipType: *in.ShipType,
		ProdDate: *in.ProdDate,
		Speed:    *in.Speed,
		CrewSize: *in.CrewSize,
	}
	if in.IsUsed != nil {
		s.IsUsed = *in.IsUsed
	}
	s.derive()

	saved, err := uc.repo.Save(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create ship: %w", err)
	}
	uc.log.WithContext(ctx).Infof("created ship %d", saved.ID)
	return saved, nil
}

// UpdateShip merges the supplied fields into the stored ship, recomputes the
// rating and stores the result. An empty payload returns the ship unchanged.
func (uc *ShipUseCase) UpdateShip(ctx context.Context, id int64, in *ShipInput) (*Ship, error) {
	s, err := uc.GetShip(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.IsEmpty() {
		return s, nil
	}

	merged := *s
	merged.merge(in)
	merged.derive()

	if err := Validate(merged.Input()); err != nil {
		uc.log.WithContext(ctx).Warnf("rejected update of ship %d: %v", id, err)
		return nil, err
	}

	saved, err := uc.repo.Save(ctx, &merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update ship: %w", err)
	}
	uc.log.WithContext(ctx).Infof("updated ship %d", id)
	return saved, nil
}

// DeleteShip removes a ship by its id
func (uc *ShipUseCase) DeleteShip(ctx context.Context, id int64) error {
	s, err := uc.GetShip(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, s); err != nil {
		return fmt.Errorf("failed to delete ship: %w", err)
	}
	uc.log.WithContext(ctx).Infof("deleted ship %d", id)
	return nil
}

func checkFilter(f *ShipFilter) error {
	if f.ShipType != nil && !f.ShipType.Valid() {
		return fmt.Errorf("%w: unknown ship type %q", ErrInvalidArgument, *f.ShipType)
	}
	return nil
}

// merge overwrites the fields of s supplied by in. Rating is taken as well
// but never survives: derive always runs afterwards.
func (s *Ship) merge(in *ShipInput) {
	if in.Rating != nil {
		s.Rating = *in.Rating
	}
	if in.CrewSize != nil {
		s.CrewSize = *in.CrewSize
	}
	if in.Speed != nil {
		s.Speed = *in.Speed
	}
	if in.IsUsed != nil {
		s.IsUsed = *in.IsUsed
	}
	if in.ShipType != nil {
		s.ShipType = *in.ShipType
	}
	if in.Planet != nil {
		s.Planet = *in.Planet
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.ProdDate != nil {
		s.ProdDate = *in.ProdDate
	}
}
