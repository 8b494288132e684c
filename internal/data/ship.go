package data

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shipcatalog/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type shipRepo struct {
	data *Data
	log  *log.Helper
}

// NewShipRepo creates the ship repository for the configured driver
func NewShipRepo(data *Data, logger log.Logger) biz.ShipRepo {
	if data.db == nil {
		return newMemoryShipRepo()
	}
	return &shipRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *shipRepo) Save(ctx context.Context, s *biz.Ship) (*biz.Ship, error) {
	m := bizToModel(s)
	db := r.data.db.WithContext(ctx)
	if m.ID == 0 {
		if err := db.Create(m).Error; err != nil {
			return nil, fmt.Errorf("failed to create ship: %w", err)
		}
		return modelToBiz(m), nil
	}

	res := updateShip(db, m)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update ship: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, biz.ErrShipNotFound
	}
	return modelToBiz(m), nil
}

// updateShip rewrites every column of an existing row and never inserts.
func updateShip(db *gorm.DB, m *Ship) *gorm.DB {
	return db.Model(m).Select("*").Updates(m)
}

func (r *shipRepo) FindByID(ctx context.Context, id int64) (*biz.Ship, error) {
	var m Ship
	if err := r.data.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrShipNotFound
		}
		return nil, fmt.Errorf("failed to find ship: %w", err)
	}
	return modelToBiz(&m), nil
}

func (r *shipRepo) Delete(ctx context.Context, s *biz.Ship) error {
	res := r.data.db.WithContext(ctx).Delete(&Ship{}, s.ID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete ship: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return biz.ErrShipNotFound
	}
	return nil
}

func (r *shipRepo) Query(ctx context.Context, q *biz.ShipQuery) ([]*biz.Ship, error) {
	if q.IsEmpty() {
		return []*biz.Ship{}, nil
	}

	var models []Ship
	err := r.data.db.WithContext(ctx).
		Scopes(filterScope(&q.Filter), orderScope(q.Order), pageScope(q)).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query ships: %w", err)
	}

	ships := make([]*biz.Ship, 0, len(models))
	for i := range models {
		ships = append(ships, modelToBiz(&models[i]))
	}
	return ships, nil
}

func (r *shipRepo) Count(ctx context.Context, f *biz.ShipFilter) (int64, error) {
	var n int64
	err := r.data.db.WithContext(ctx).
		Model(&Ship{}).
		Scopes(filterScope(f)).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count ships: %w", err)
	}
	return n, nil
}

// filterScope folds the present criteria of f into a conjunction of WHERE clauses.
func filterScope(f *biz.ShipFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range f.Criteria() {
			col := shipColumns[c.Field]
			switch c.Op {
			case biz.OpContains:
				db = db.Where(col+" LIKE ?", "%"+escapeLike(c.Value.(string))+"%")
			case biz.OpEqual:
				db = db.Where(col+" = ?", c.Value)
			case biz.OpAtLeast:
				db = db.Where(col+" >= ?", c.Value)
			case biz.OpAtMost:
				db = db.Where(col+" <= ?", c.Value)
			}
		}
		return db
	}
}

func orderScope(o biz.ShipOrder) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		col := shipColumns[o.Field()]
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: col}})
		if col != "id" {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
		}
		return db
	}
}

func pageScope(q *biz.ShipQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.PageSize)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func bizToModel(s *biz.Ship) *Ship {
	return &Ship{
		ID:       s.ID,
		Name:     s.Name,
		Planet:   s.Planet,
		ShipType: string(s.ShipType),
		ProdDate: s.ProdDate,
		IsUsed:   s.IsUsed,
		Speed:    s.Speed,
		CrewSize: s.CrewSize,
		Rating:   s.Rating,
	}
}

func modelToBiz(m *Ship) *biz.Ship {
	return &biz.Ship{
		ID:       m.ID,
		Name:     m.Name,
		Planet:   m.Planet,
		ShipType: biz.ShipType(m.ShipType),
		ProdDate: m.ProdDate.UTC(),
		IsUsed:   m.IsUsed,
		Speed:    m.Speed,
		CrewSize: m.CrewSize,
		Rating:   m.Rating,
	}
}
