package http

import "localcrust/internal/core/domain/model/kernel"

// RegisterCustomerRequest is the body of POST /api/auth/register.
type RegisterCustomerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// RegisterBakerRequest is the body of POST /api/baker/register.
type RegisterBakerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	OwnerName   string `json:"owner_name"`
	ShopName    string `json:"shop_name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful registration and login.
type AuthResponse struct {
	Token     string      `json:"token"`
	AccountID kernel.UUID `json:"account_id"`
	Role      string      `json:"role"`
	Verified  bool        `json:"verified"`
}

// AddressPayload is a delivery address as sent by the client.
type AddressPayload struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

// CartLinePayload is one requested product in a checkout. Quantities only;
// prices are snapshotted server-side from the catalog.
type CartLinePayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the body of POST /api/orders.
type CheckoutRequest struct {
	Items   []CartLinePayload `json:"items"`
	Address AddressPayload    `json:"address"`
}

// CheckoutResponse hands the client what it needs to start the payment.
type CheckoutResponse struct {
	OrderID         kernel.UUID `json:"order_id"`
	OrderCode       string      `json:"order_code"`
	RazorpayOrderID string      `json:"razorpay_order_id"`
	AmountPaise     int64       `json:"amount_paise"`
	Currency        string      `json:"currency"`
}

// PaymentCallbackRequest is the signed payment handoff the Razorpay checkout
// SDK produces. The signature is verified server-side before anything is
// marked paid.
type PaymentCallbackRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// SubmitReviewRequest is the body of POST /api/orders/:id/review.
type SubmitReviewRequest struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ReplyRequest is the body of POST /api/baker/reviews/:id/reply.
type ReplyRequest struct {
	Text string `json:"text"`
}

// ChangeStatusRequest is the body of PATCH /api/baker/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// SaveProductRequest is the body of POST/PUT on /api/baker/products.
type SaveProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PricePaise  int64  `json:"price_paise"`
	ImageURL    string `json:"image_url"`
	Available   bool   `json:"available"`
}

// WishlistAddRequest is the body of POST /api/wishlist.
type WishlistAddRequest struct {
	ProductID string `json:"product_id"`
}

// IDResponse acknowledges a creation with the new resource's identifier.
type IDResponse struct {
	ID kernel.UUID `json:"id"`
}

// UnreadCountResponse is the body of GET /api/notifications/unread-count.
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// BakerReviewStatsResponse summarizes a baker's review situation.
type BakerReviewStatsResponse struct {
	ReviewCount    int     `json:"review_count"`
	AverageRating  float64 `json:"average_rating"`
	Replied        int     `json:"replied"`
	PendingReplies int     `json:"pending_replies"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
