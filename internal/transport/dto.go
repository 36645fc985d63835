package transport

type GetTokenRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string  `json:"name"`
	Login    *string `json:"login"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
}

// Update requests use pointer fields so an absent key and an explicit
// zero value stay distinguishable.

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Login    *string `json:"login"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type OrderLineRequest struct {
	ID       uint `json:"id"`
	Quantity uint `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID   uint               `json:"user_id"`
	Products []OrderLineRequest `json:"products"`
}

type UpdateOrderRequest struct {
	UserID        *uint               `json:"user_id"`
	PaymentStatus *string             `json:"payment_status"`
	Products      *[]OrderLineRequest `json:"products"`
}

type UpdateStatusRequest struct {
	PaymentStatus *string `json:"payment_status"`
}
