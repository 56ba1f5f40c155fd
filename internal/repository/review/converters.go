package review

import "storefront/internal/entities"

func ToDomain(r *ReviewDB) *entities.Review {
	if r == nil {
		return nil
	}
	return &entities.Review{
		ID:        r.ID,
		ProductID: r.ProductID,
		BuyerID:   r.BuyerID,
		BuyerName: r.BuyerName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ToDomainList(reviewsDB []ReviewDB) []entities.Review {
	if len(reviewsDB) == 0 {
		return []entities.Review{}
	}

	result := make([]entities.Review, len(reviewsDB))
	for i, reviewDB := range reviewsDB {
		result[i] = *ToDomain(&reviewDB)
	}
	return result
}

// FromDomainModify - только заполненные поля попадают в UPDATE.
func FromDomainModify(reviewModify entities.ReviewModify) map[string]interface{} {
	values := make(map[string]interface{}, 2)
	if reviewModify.Rating != nil {
		values["rating"] = *reviewModify.Rating
	}
	if reviewModify.Comment != nil {
		values["comment"] = *reviewModify.Comment
	}
	return values
}
