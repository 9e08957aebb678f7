package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type productRepo struct {
	postgresRepo
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{postgresRepo: newPostgresRepo(db)}
}

// LockProducts блокирует строки товаров в порядке возрастания id, чтобы
// конкурирующие резервирования брали блокировки в одном порядке.
// Отсутствующие товары просто не попадают в результат.
func (r *productRepo) LockProducts(ctx context.Context, ids []string) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select("id", "name", "image", "price", "count_in_stock").
		From("products").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to lock products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

// DecrementStock списывает qty, только если остатка хватает. false означает, что строка не изменилась.
func (r *productRepo) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	query, args := r.qb.Update("products").
		Set("count_in_stock", sq.Expr("count_in_stock - ?", qty)).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.GtOrEq{"count_in_stock": qty},
		}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to decrement stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to decrement stock: %w", err)
	}
	return n == 1, nil
}

func (r *productRepo) IncrementStock(ctx context.Context, id string, qty int) error {
	query, args := r.qb.Update("products").
		Set("count_in_stock", sq.Expr("count_in_stock + ?", qty)).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to increment stock: %w", err)
	}
	if n == 0 {
		return &entities.ProductNotFoundError{ProductID: id}
	}
	return nil
}
