package buyer

import "storefront/internal/entities"

func ToDomain(b *BuyerDB) *entities.Buyer {
	if b == nil {
		return nil
	}
	return &entities.Buyer{
		ID:         b.ID,
		Email:      b.Email,
		Name:       b.Name,
		ProfilePic: b.ProfilePic,
		CreatedAt:  b.CreatedAt,
	}
}
