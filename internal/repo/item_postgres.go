package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	models "github.com/nadeekaauto/parts-inventory/internal/models"
)

const uniqueViolationCode = "23505"

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

const itemColumns = `id, name, location, quantity, purchased_price, sell_price, supplier_name, supplier_phone, supplier_email, created_at, updated_at`

func scanItem(row interface{ Scan(dest ...any) error }) (models.InventoryItem, error) {
	var it models.InventoryItem
	var createdAt, updatedAt time.Time
	err := row.Scan(&it.ID, &it.Name, &it.Location, &it.Quantity, &it.PurchasedPrice, &it.SellPrice,
		&it.SupplierName, &it.SupplierPhone, &it.SupplierEmail, &createdAt, &updatedAt)
	if err != nil {
		return models.InventoryItem{}, err
	}
	it.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	it.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)
	return it, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (r *PostgresItemRepository) Create(item models.InventoryItem) (models.InventoryItem, error) {
	query := `INSERT INTO inventory_items
		(name, location, quantity, purchased_price, sell_price, supplier_name, supplier_phone, supplier_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + itemColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	item.Name = strings.ToUpper(item.Name)
	created, err := scanItem(r.db.QueryRowContext(ctx, query,
		item.Name, item.Location, item.Quantity, item.PurchasedPrice, item.SellPrice,
		item.SupplierName, item.SupplierPhone, item.SupplierEmail))
	if isUniqueViolation(err) {
		return models.InventoryItem{}, ErrDuplicateName
	}
	return created, err
}

func (r *PostgresItemRepository) GetAll(filter ItemFilter) ([]models.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items`
	args := []any{}

	switch {
	case filter.Name != "":
		query += ` WHERE name = $1`
		args = append(args, strings.ToUpper(filter.Name))
	case filter.Search != "":
		// Substring match over the textual representation of every displayed
		// column, the same set of fields the dashboard searches over.
		query += ` WHERE concat_ws(' ', name, location, quantity::text, purchased_price::text, sell_price::text,
			supplier_name, supplier_phone, supplier_email) ILIKE $1`
		args = append(args, "%"+filter.Search+"%")
	}
	query += ` ORDER BY created_at`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresItemRepository) GetByID(id string) (models.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return it, err
}

// Update merges only the supplied fields into the stored record.
func (r *PostgresItemRepository) Update(id string, patch ItemPatch) (models.InventoryItem, error) {
	sets, args, argIdx := patchAssignments(patch)
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf(`UPDATE inventory_items SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argIdx, itemColumns)
	args = append(args, id)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	it, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryItem{}, ErrItemNotFound
	}
	if isUniqueViolation(err) {
		return models.InventoryItem{}, ErrDuplicateName
	}
	return it, err
}

func patchAssignments(patch ItemPatch) ([]string, []any, int) {
	sets := []string{}
	args := []any{}
	argIdx := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.Name != nil {
		add("name", strings.ToUpper(*patch.Name))
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Quantity != nil {
		add("quantity", *patch.Quantity)
	}
	if patch.PurchasedPrice != nil {
		add("purchased_price", *patch.PurchasedPrice)
	}
	if patch.SellPrice != nil {
		add("sell_price", *patch.SellPrice)
	}
	if patch.SupplierName != nil {
		add("supplier_name", *patch.SupplierName)
	}
	if patch.SupplierPhone != nil {
		add("supplier_phone", *patch.SupplierPhone)
	}
	if patch.SupplierEmail != nil {
		add("supplier_email", *patch.SupplierEmail)
	}

	return sets, args, argIdx
}

func (r *PostgresItemRepository) Delete(id string) error {
	query := `DELETE FROM inventory_items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
