package models

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{}, &ProductVariantModel{},
		&CartModel{}, &CartItemModel{},
		&CouponModel{},
		&OrderModel{}, &OrderItemModel{}, &ShipmentModel{},
		&PollModel{}, &PollVoteModel{},
		&CommentModel{},
		&AuditLogModel{},
		&CategoryModel{}, &ArticleModel{},
		&MatchModel{}, &PageModel{}, &MediaModel{},
		&NewsletterSubscriberModel{}, &VolunteerModel{},
	}
}
