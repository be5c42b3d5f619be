package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	PaymentCustomerRef *string   `json:"payment_customer_ref,omitempty"`
	IsActive           bool      `json:"is_active"`
}

// TimeslotView carries the stored slot plus availability derived at read time.
type TimeslotView struct {
	ID             uuid.UUID  `json:"id"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	MaxOrders      int        `json:"max_orders"`
	BufferCapacity int        `json:"buffer_capacity"`
	CurrentOrders  int        `json:"current_orders"`
	CutoffHours    int        `json:"cutoff_hours"`
	DayOfWeek      int        `json:"day_of_week"`
	RepeatWeekly   bool       `json:"repeat_weekly"`
	SpecialDate    *time.Time `json:"special_date,omitempty"`
	IsActive       bool       `json:"is_active"`

	RemainingCapacity       int  `json:"remaining_capacity"`
	RemainingBufferCapacity int  `json:"remaining_buffer_capacity"`
	IsCutoffReached         bool `json:"is_cutoff_reached"`
	IsAvailable             bool `json:"is_available"`
}

type WeeklyDayView struct {
	Date    time.Time      `json:"date"`
	DayName string         `json:"day_name"`
	IsToday bool           `json:"is_today"`
	Slots   []TimeslotView `json:"slots"`
}

type WeeklyTimeslotsView struct {
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Days      []WeeklyDayView `json:"days"`
}

type OrderItemView struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type OrderView struct {
	ID                   uuid.UUID        `json:"id"`
	UserID               uuid.UUID        `json:"user_id"`
	AddressID            uuid.UUID        `json:"address_id"`
	TimeslotID           uuid.UUID        `json:"timeslot_id"`
	Items                []OrderItemView  `json:"items"`
	DeliveryOption       string           `json:"delivery_option"`
	DeliveryInstructions string           `json:"delivery_instructions"`
	DeliveryFee          decimal.Decimal  `json:"delivery_fee"`
	EstimatedDeliveryAt  time.Time        `json:"estimated_delivery_at"`
	Subtotal             decimal.Decimal  `json:"subtotal"`
	DeliveryAmount       decimal.Decimal  `json:"delivery_amount"`
	Tax                  decimal.Decimal  `json:"tax"`
	Discount             decimal.Decimal  `json:"discount"`
	Total                decimal.Decimal  `json:"total"`
	PaymentMethod        string           `json:"payment_method"`
	PaymentStatus        string           `json:"payment_status"`
	PaymentIntentID      *string          `json:"payment_intent_id,omitempty"`
	RefundID             *string          `json:"refund_id,omitempty"`
	RefundAmount         *decimal.Decimal `json:"refund_amount,omitempty"`
	FailureReason        *string          `json:"failure_reason,omitempty"`
	PaidAt               *time.Time       `json:"paid_at,omitempty"`
	Status               string           `json:"status"`
	CancelReason         *string          `json:"cancel_reason,omitempty"`
	PromoCode            *string          `json:"promo_code,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

type OrderListItem struct {
	ID                  uuid.UUID       `json:"id"`
	TimeslotID          uuid.UUID       `json:"timeslot_id"`
	Status              string          `json:"status"`
	PaymentMethod       string          `json:"payment_method"`
	PaymentStatus       string          `json:"payment_status"`
	Total               decimal.Decimal `json:"total"`
	EstimatedDeliveryAt time.Time       `json:"estimated_delivery_at"`
	CreatedAt           time.Time       `json:"created_at"`
}

type OrderListFilter struct {
	Status   *string
	FromDate *time.Time
	ToDate   *time.Time
	Limit    int
	Offset   int
}

type OrderListView struct {
	Items  []OrderListItem `json:"items"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// PaymentStatusView merges the order's payment sub-record with the provider payment row, if any.
type PaymentStatusView struct {
	OrderID         uuid.UUID       `json:"order_id"`
	UserID          uuid.UUID       `json:"user_id"`
	OrderStatus     string          `json:"order_status"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentIntentID *string         `json:"payment_intent_id,omitempty"`
	ProviderStatus  *string         `json:"provider_status,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	FailureReason   *string         `json:"failure_reason,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
}

type PaymentMethodView struct {
	ID                      uuid.UUID `json:"id"`
	UserID                  uuid.UUID `json:"user_id"`
	ProviderPaymentMethodID string    `json:"-"`
	Brand                   string    `json:"brand"`
	Last4                   string    `json:"last4"`
	ExpMonth                int       `json:"exp_month"`
	ExpYear                 int       `json:"exp_year"`
	IsDefault               bool      `json:"is_default"`
	IsActive                bool      `json:"is_active"`
}

// CouponView represents read-optimized coupon data
type CouponView struct {
	ID         uuid.UUID        `json:"id"`
	Code       string           `json:"code"`
	AmountOff  *decimal.Decimal `json:"amount_off,omitempty"`
	PercentOff *decimal.Decimal `json:"percent_off,omitempty"`
	ValidFrom  *time.Time       `json:"valid_from,omitempty"`
	ValidTo    *time.Time       `json:"valid_to,omitempty"`
}

// IdempotencyKeyView represents read-optimized idempotency key data
type IdempotencyKeyView struct {
	Key           uuid.UUID  `json:"key"`
	UserID        uuid.UUID  `json:"user_id"`
	Endpoint      string     `json:"endpoint"`
	RequestHash   string     `json:"request_hash"`
	Status        string     `json:"status"`
	ResultOrderID *uuid.UUID `json:"result_order_id,omitempty"`
	ExpiresAt     time.Time  `json:"expires_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
