package buyer

import (
	"context"
	"fmt"

	"storefront/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Upsert(ctx context.Context, profile entities.GoogleProfile) (*entities.Buyer, error) {
	query := `
		INSERT INTO buyers (email, name, profile_pic)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name,
			profile_pic = EXCLUDED.profile_pic
		RETURNING id, email, name, profile_pic, created_at
	`

	var buyerDB BuyerDB
	err := r.querier.QueryRow(ctx, query, profile.Email, profile.Name, profile.ProfilePic).
		Scan(
			&buyerDB.ID,
			&buyerDB.Email,
			&buyerDB.Name,
			&buyerDB.ProfilePic,
			&buyerDB.CreatedAt,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected buyer repository upsert error: %w", err)
	}

	return ToDomain(&buyerDB), nil
}
