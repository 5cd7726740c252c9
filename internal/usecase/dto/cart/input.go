package cartdto

type AddItemInput struct {
	ProductVariantID string `json:"productVariantId" validate:"required,uuid"`
	Qty              int    `json:"qty" validate:"min=1,max=10"`
}

// UpdateItemInput sets an absolute quantity. Zero or less removes the line.
type UpdateItemInput struct {
	Qty int `json:"qty"`
}
