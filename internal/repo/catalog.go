package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopcore/order-placement-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

func (r *postgresRepo) UserExists(ctx context.Context, userID int64) (bool, error) {
	query, args := r.qb.Select("1").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return true, nil
}

func (r *postgresRepo) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select("product_id", "name", "price", "stock_quantity", "sales_volume").
		From("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) GetOption(ctx context.Context, optionID int64) (entities.Option, error) {
	query, args := r.qb.Select("option_id", "product_id", "size", "additional_price", "stock_quantity").
		From("product_options").
		Where(sq.Eq{"option_id": optionID}).
		MustSql()

	var option Option
	err := r.getContext(ctx, &option, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Option{}, entities.ErrOptionNotFound
	}
	if err != nil {
		return entities.Option{}, fmt.Errorf("failed to get option: %w", err)
	}
	return OptionToEntity(option), nil
}

// DecrementProductStock списывает остаток и увеличивает счётчик продаж одним
// условным апдейтом. Ноль затронутых строк означает нехватку остатка:
// товар уже зарезолвлен внутри той же транзакции.
func (r *postgresRepo) DecrementProductStock(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock_quantity", sq.Expr("stock_quantity - ?", quantity)).
		Set("sales_volume", sq.Expr("sales_volume + ?", quantity)).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.Expr("stock_quantity >= ?", quantity)).
		MustSql()

	return r.conditionalUpdate(ctx, query, args, "failed to decrement product stock")
}

func (r *postgresRepo) DecrementOptionStock(ctx context.Context, optionID int64, quantity int) error {
	query, args := r.qb.Update("product_options").
		Set("stock_quantity", sq.Expr("stock_quantity - ?", quantity)).
		Where(sq.Eq{"option_id": optionID}).
		Where(sq.Expr("stock_quantity >= ?", quantity)).
		MustSql()

	return r.conditionalUpdate(ctx, query, args, "failed to decrement option stock")
}

func (r *postgresRepo) RestoreProductStock(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock_quantity", sq.Expr("stock_quantity + ?", quantity)).
		Set("sales_volume", sq.Expr("sales_volume - ?", quantity)).
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore product stock: %w", err)
	}
	return nil
}

func (r *postgresRepo) RestoreOptionStock(ctx context.Context, optionID int64, quantity int) error {
	query, args := r.qb.Update("product_options").
		Set("stock_quantity", sq.Expr("stock_quantity + ?", quantity)).
		Where(sq.Eq{"option_id": optionID}).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore option stock: %w", err)
	}
	return nil
}

const pqCheckViolation = "23514"

func (r *postgresRepo) conditionalUpdate(ctx context.Context, query string, args []any, msg string) error {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		// CHECK (stock_quantity >= 0) — последний рубеж
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqCheckViolation {
			return entities.ErrInsufficientStock
		}
		return fmt.Errorf("%s: %w", msg, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	if affected == 0 {
		return entities.ErrInsufficientStock
	}
	return nil
}
