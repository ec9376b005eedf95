package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type addressRepo struct {
	postgresRepo
}

func NewAddressRepo(db *sqlx.DB) *addressRepo {
	return &addressRepo{newPostgresRepo(db)}
}

// GetAddress returns the saved address only when it belongs to userID.
func (r *addressRepo) GetAddress(ctx context.Context, id, userID int64) (entities.Address, error) {
	query, args := r.qb.Select(
		"id", "user_id", "full_name", "phone", "address_line1",
		"address_line2", "city", "district", "ward").
		From("addresses").
		Where(sq.Eq{"id": id, "user_id": userID}).
		MustSql()

	var address Address
	err := r.getContext(ctx, &address, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(address), nil
}
