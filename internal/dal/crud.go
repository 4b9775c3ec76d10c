// Package dal implements the generic data-access layer: a table-agnostic
// CRUD core over loosely typed rows, a repository that maps rows to domain
// entities and translates storage errors, and per-entity extensions.
package dal

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"github.com/luvremak/db-coursework/internal/model"
)

// DTO is the loosely typed row representation exchanged with storage,
// keyed by column name.
type DTO = map[string]any

// IDType constrains the identifier types storage can assign.
type IDType interface {
	~int | ~int32 | ~int64
}

var schemaCache sync.Map

// Crud executes domain-agnostic operations against one table. It knows
// nothing about entities; rows go in and out as DTOs.
type Crud[ID IDType] struct {
	db        *gorm.DB
	table     string
	columns   map[string]struct{}
	modelType reflect.Type
}

// NewCrud derives the table name and column set from the gorm model so
// filter and order-by lookups never have to touch the database.
func NewCrud[ID IDType](db *gorm.DB, m any) (*Crud[ID], error) {
	s, err := schema.Parse(m, &schemaCache, db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("parse schema for %T: %w", m, err)
	}

	columns := make(map[string]struct{}, len(s.DBNames))
	for _, name := range s.DBNames {
		columns[name] = struct{}{}
	}

	t := reflect.TypeOf(m)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return &Crud[ID]{
		db:        db,
		table:     s.Table,
		columns:   columns,
		modelType: t,
	}, nil
}

func (c *Crud[ID]) Table() string { return c.table }

func (c *Crud[ID]) session(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx).Table(c.table)
}

// newModel returns a fresh model pointer; gorm statements must not share
// one value across goroutines.
func (c *Crud[ID]) newModel() any {
	return reflect.New(c.modelType).Interface()
}

// GetByID fetches one row by primary key. A missing row is (nil, nil),
// not an error.
func (c *Crud[ID]) GetByID(ctx context.Context, id ID) (DTO, error) {
	row := DTO{}
	err := c.session(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s by id: %w", c.table, err)
	}
	return row, nil
}

// Create inserts a row and returns the storage-assigned identifier. Any
// id present in the input is ignored. Constraint violations propagate as
// the driver reports them.
func (c *Crud[ID]) Create(ctx context.Context, row DTO) (ID, error) {
	var zero ID
	payload := maps.Clone(row)
	delete(payload, "id")

	if err := c.db.WithContext(ctx).Model(c.newModel()).Create(payload).Error; err != nil {
		return zero, err
	}
	id, ok := toInt64(payload["id"])
	if !ok {
		return zero, fmt.Errorf("create %s: storage returned no id", c.table)
	}
	return ID(id), nil
}

// CreateAndGet inserts a row and returns the persisted state, including
// server-assigned defaults.
func (c *Crud[ID]) CreateAndGet(ctx context.Context, row DTO) (DTO, error) {
	id, err := c.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	created, err := c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("create %s: inserted row %v vanished", c.table, id)
	}
	return created, nil
}

// CreateMany inserts rows one statement at a time; the set is not atomic.
// Empty input returns empty output without a storage round trip.
func (c *Crud[ID]) CreateMany(ctx context.Context, rows []DTO) ([]ID, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	ids := make([]ID, 0, len(rows))
	for _, row := range rows {
		id, err := c.Create(ctx, row)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *Crud[ID]) CreateAndGetMany(ctx context.Context, rows []DTO) ([]DTO, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	created := make([]DTO, 0, len(rows))
	for _, row := range rows {
		out, err := c.CreateAndGet(ctx, row)
		if err != nil {
			return nil, err
		}
		created = append(created, out)
	}
	return created, nil
}

// Update rewrites the row identified by the input's id attribute. It
// fails when the id is absent or no row matches.
func (c *Crud[ID]) Update(ctx context.Context, row DTO) (ID, error) {
	var zero ID
	raw, ok := row["id"]
	if !ok {
		return zero, fmt.Errorf("update %s: row has no id", c.table)
	}
	id, ok := toInt64(raw)
	if !ok {
		return zero, fmt.Errorf("update %s: unusable id %v", c.table, raw)
	}

	payload := maps.Clone(row)
	delete(payload, "id")

	tx := c.session(ctx).Where("id = ?", id).Updates(payload)
	if tx.Error != nil {
		return zero, tx.Error
	}
	if tx.RowsAffected == 0 {
		return zero, gorm.ErrRecordNotFound
	}
	return ID(id), nil
}

func (c *Crud[ID]) UpdateAndGet(ctx context.Context, row DTO) (DTO, error) {
	id, err := c.Update(ctx, row)
	if err != nil {
		return nil, err
	}
	updated, err := c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return updated, nil
}

// UpdateMany applies updates row by row; it is not atomic as a set.
func (c *Crud[ID]) UpdateMany(ctx context.Context, rows []DTO) error {
	for _, row := range rows {
		if _, err := c.Update(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

func (c *Crud[ID]) GetManyByIDs(ctx context.Context, ids []ID) ([]DTO, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []DTO
	if err := c.session(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("get %s by ids: %w", c.table, err)
	}
	return rows, nil
}

func (c *Crud[ID]) Delete(ctx context.Context, id ID) error {
	if err := c.db.WithContext(ctx).Delete(c.newModel(), "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete %s: %w", c.table, err)
	}
	return nil
}

func (c *Crud[ID]) DeleteMany(ctx context.Context, ids []ID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := c.db.WithContext(ctx).Delete(c.newModel(), "id IN ?", ids).Error; err != nil {
		return fmt.Errorf("delete %s: %w", c.table, err)
	}
	return nil
}

func (c *Crud[ID]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := c.session(ctx).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", c.table, err)
	}
	return n, nil
}

func (c *Crud[ID]) GetAll(ctx context.Context) ([]DTO, error) {
	var rows []DTO
	if err := c.session(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("get all %s: %w", c.table, err)
	}
	return rows, nil
}

// ApplyFilters adds an equality predicate per entry, AND-ed together.
// Keys that are not columns of the table are skipped, so stale filter
// maps keep working across schema changes.
func (c *Crud[ID]) ApplyFilters(tx *gorm.DB, filters DTO) *gorm.DB {
	for column, value := range filters {
		if _, ok := c.columns[column]; !ok {
			continue
		}
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}
	return tx
}

// ApplyPagination orders by the requested column (skipped silently when
// the column does not exist) and slices the result when both page and
// page size are positive.
func (c *Crud[ID]) ApplyPagination(tx *gorm.DB, p model.PaginationParams) *gorm.DB {
	if _, ok := c.columns[p.OrderBy]; ok {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: p.OrderBy},
			Desc:   !p.Ascending,
		})
	}
	if p.Page > 0 && p.PageSize > 0 {
		tx = tx.Limit(p.PageSize).Offset((p.Page - 1) * p.PageSize)
	}
	return tx
}

func (c *Crud[ID]) CountFiltered(ctx context.Context, filters DTO) (int64, error) {
	var n int64
	if err := c.ApplyFilters(c.session(ctx), filters).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", c.table, err)
	}
	return n, nil
}

func (c *Crud[ID]) List(ctx context.Context, filters DTO, p model.PaginationParams) ([]DTO, error) {
	var rows []DTO
	tx := c.ApplyPagination(c.ApplyFilters(c.session(ctx), filters), p)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", c.table, err)
	}
	return rows, nil
}

// GetPage returns one slice plus the total filtered count; the count uses
// the same predicate as the slice and ignores pagination.
func (c *Crud[ID]) GetPage(ctx context.Context, filters DTO, p model.PaginationParams) (model.Page[DTO], error) {
	total, err := c.CountFiltered(ctx, filters)
	if err != nil {
		return model.Page[DTO]{}, err
	}
	rows, err := c.List(ctx, filters, p)
	if err != nil {
		return model.Page[DTO]{}, err
	}
	return model.Page[DTO]{Data: rows, Total: total}, nil
}
