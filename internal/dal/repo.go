package dal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/luvremak/db-coursework/internal/apperr"
	"github.com/luvremak/db-coursework/internal/model"
)

// Repo wraps a Crud with entity serialization and translates storage
// failures into the application taxonomy: absent rows become NotFound,
// unique violations become AlreadyExists carrying the constraint name.
// Raw driver error types never cross this boundary.
type Repo[ID IDType, E any] struct {
	crud   *Crud[ID]
	ser    Serializer[E]
	entity string
}

func NewRepo[ID IDType, E any](crud *Crud[ID], ser Serializer[E], entity string) *Repo[ID, E] {
	return &Repo[ID, E]{crud: crud, ser: ser, entity: entity}
}

func (r *Repo[ID, E]) Crud() *Crud[ID] { return r.crud }

func (r *Repo[ID, E]) GetByID(ctx context.Context, id ID) (E, error) {
	var zero E
	row, err := r.crud.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if row == nil {
		return zero, apperr.NotFound(r.entity)
	}
	return r.ser.Deserialize(row)
}

func (r *Repo[ID, E]) Create(ctx context.Context, e E) (ID, error) {
	id, err := r.crud.Create(ctx, r.ser.Serialize(e))
	if err != nil {
		var zero ID
		return zero, r.translate(err)
	}
	return id, nil
}

func (r *Repo[ID, E]) CreateAndGet(ctx context.Context, e E) (E, error) {
	row, err := r.crud.CreateAndGet(ctx, r.ser.Serialize(e))
	if err != nil {
		var zero E
		return zero, r.translate(err)
	}
	return r.ser.Deserialize(row)
}

func (r *Repo[ID, E]) CreateMany(ctx context.Context, entities []E) ([]ID, error) {
	ids, err := r.crud.CreateMany(ctx, SerializeAll(r.ser, entities))
	if err != nil {
		return nil, r.translate(err)
	}
	return ids, nil
}

func (r *Repo[ID, E]) CreateAndGetMany(ctx context.Context, entities []E) ([]E, error) {
	rows, err := r.crud.CreateAndGetMany(ctx, SerializeAll(r.ser, entities))
	if err != nil {
		return nil, r.translate(err)
	}
	return DeserializeAll(r.ser, rows)
}

func (r *Repo[ID, E]) Update(ctx context.Context, e E) error {
	if _, err := r.crud.Update(ctx, r.ser.Serialize(e)); err != nil {
		return r.translate(err)
	}
	return nil
}

func (r *Repo[ID, E]) UpdateAndGet(ctx context.Context, e E) (E, error) {
	row, err := r.crud.UpdateAndGet(ctx, r.ser.Serialize(e))
	if err != nil {
		var zero E
		return zero, r.translate(err)
	}
	return r.ser.Deserialize(row)
}

func (r *Repo[ID, E]) UpdateMany(ctx context.Context, entities []E) error {
	if err := r.crud.UpdateMany(ctx, SerializeAll(r.ser, entities)); err != nil {
		return r.translate(err)
	}
	return nil
}

func (r *Repo[ID, E]) GetManyByIDs(ctx context.Context, ids []ID) ([]E, error) {
	rows, err := r.crud.GetManyByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return DeserializeAll(r.ser, rows)
}

func (r *Repo[ID, E]) Delete(ctx context.Context, id ID) error {
	return r.crud.Delete(ctx, id)
}

func (r *Repo[ID, E]) DeleteMany(ctx context.Context, ids []ID) error {
	return r.crud.DeleteMany(ctx, ids)
}

func (r *Repo[ID, E]) Count(ctx context.Context) (int64, error) {
	return r.crud.Count(ctx)
}

func (r *Repo[ID, E]) GetAll(ctx context.Context) ([]E, error) {
	rows, err := r.crud.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return DeserializeAll(r.ser, rows)
}

// GetPage lists entities matching the filter map, with the unpaginated
// filtered count.
func (r *Repo[ID, E]) GetPage(ctx context.Context, filters DTO, p model.PaginationParams) (model.Page[E], error) {
	page, err := r.crud.GetPage(ctx, filters, p)
	if err != nil {
		return model.Page[E]{}, err
	}
	data, err := DeserializeAll(r.ser, page.Data)
	if err != nil {
		return model.Page[E]{}, err
	}
	return model.Page[E]{Data: data, Total: page.Total}, nil
}

// First returns the single entity matching the filter map, or NotFound.
func (r *Repo[ID, E]) First(ctx context.Context, filters DTO) (E, error) {
	var zero E
	rows, err := r.crud.List(ctx, filters, model.PaginationParams{Page: 1, PageSize: 1, OrderBy: "id", Ascending: true})
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, apperr.NotFound(r.entity)
	}
	return r.ser.Deserialize(rows[0])
}

func (r *Repo[ID, E]) translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(r.entity)
	}
	if name, ok := uniqueViolation(err); ok {
		return apperr.AlreadyExists(r.entity, name)
	}
	return fmt.Errorf("%s storage: %w", r.entity, err)
}

// uniqueViolation reports whether err is a unique-constraint violation,
// with the constraint name when the driver exposes one.
func uniqueViolation(err error) (string, bool) {
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		// 1062: ER_DUP_ENTRY, "Duplicate entry 'X' for key 'table.name'"
		if mysqlErr.Number == 1062 {
			return mysqlConstraintName(mysqlErr.Message), true
		}
		return "", false
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return strings.TrimPrefix(sqliteErr.Error(), "UNIQUE constraint failed: "), true
		}
		return "", false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}
	return "", false
}

func mysqlConstraintName(message string) string {
	open := strings.LastIndex(message, "'")
	if open < 0 {
		return ""
	}
	rest := message[:open]
	start := strings.LastIndex(rest, "'")
	if start < 0 {
		return ""
	}
	name := rest[start+1:]
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:]
	}
	return name
}
