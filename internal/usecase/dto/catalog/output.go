package catalogdto

import "github.com/brigatacurvasud/bcs-service/internal/domain"

type ProductDetail struct {
	Product  *domain.Product
	Comments []*domain.Comment
}
