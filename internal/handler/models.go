package handler

import (
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/service"
)

// OrderItem позиция заказа
type OrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
	Price     int64  `json:"price" validate:"gte=0"`
}

// ShippingAddress адрес доставки
type ShippingAddress struct {
	Recipient  string `json:"recipient" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	PostalCode string `json:"postal_code,omitempty"`
	Address1   string `json:"address1" validate:"required"`
	Address2   string `json:"address2,omitempty"`
	Memo       string `json:"memo,omitempty"`
}

// ShippingInfo информация об отправке
type ShippingInfo struct {
	Carrier        string     `json:"carrier,omitempty"`
	TrackingNumber string     `json:"tracking_number,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

// Order заказ
type Order struct {
	ID              string           `json:"id"`
	OrderNumber     string           `json:"order_number"`
	CustomerID      string           `json:"customer_id"`
	Items           []OrderItem      `json:"items"`
	ShippingAddress ShippingAddress  `json:"shipping_address"`
	TotalAmount     int64            `json:"total_amount"`
	ShippingFee     int64            `json:"shipping_fee"`
	FinalAmount     int64            `json:"final_amount"`
	Status          string           `json:"status"`
	StatusDisplay   entities.Display `json:"status_display"`
	NextStatuses    []string         `json:"next_statuses"`
	ShippingInfo    ShippingInfo     `json:"shipping_info"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// CartItem позиция корзины, цена берётся из каталога
type CartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// PlaceOrderRequest оформление заказа покупателем
type PlaceOrderRequest struct {
	Items           []CartItem      `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shipping_address" validate:"required"`
	Notes           string          `json:"notes,omitempty" validate:"max=1000"`
}

// CheckoutMessage оплаченный заказ из топика checkout
type CheckoutMessage struct {
	OrderID         string          `json:"order_id" validate:"required"`
	OrderNumber     string          `json:"order_number,omitempty"`
	CustomerID      string          `json:"customer_id" validate:"required"`
	Items           []OrderItem     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shipping_address" validate:"required"`
	ShippingFee     int64           `json:"shipping_fee" validate:"gte=0"`
	Notes           string          `json:"notes,omitempty"`
	PaidAt          time.Time       `json:"paid_at"`
}

// UpdateOrderStatusRequest смена статуса заказа
type UpdateOrderStatusRequest struct {
	Status         string `json:"status" validate:"required"`
	Carrier        string `json:"carrier,omitempty"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	ShippingNotes  string `json:"shipping_notes,omitempty"`
	Note           string `json:"note,omitempty" validate:"max=1000"`
}

// OrderListResponse страница заказов со счётчиками по статусам
type OrderListResponse struct {
	Orders []Order         `json:"orders"`
	Total  int             `json:"total"`
	Counts map[string]int  `json:"counts"`
	Page   PageDescription `json:"page"`
}

type PageDescription struct {
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

// StatusEvent запись истории смены статуса
type StatusEvent struct {
	ID         string    `json:"id"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id,omitempty"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReturnItem возвращаемая позиция
type ReturnItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name,omitempty"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
	Price     int64  `json:"price,omitempty"`
}

// ReturnRequest заявка на возврат
type ReturnRequest struct {
	ID              string           `json:"id"`
	OrderID         string           `json:"order_id"`
	CustomerID      string           `json:"customer_id"`
	Items           []ReturnItem     `json:"items"`
	Reason          string           `json:"reason"`
	Description     string           `json:"description,omitempty"`
	ReturnMethod    string           `json:"return_method"`
	Status          string           `json:"status"`
	StatusDisplay   entities.Display `json:"status_display"`
	NextStatuses    []string         `json:"next_statuses"`
	RefundAmount    int64            `json:"refund_amount"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	RequestedAt     time.Time        `json:"requested_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// CreateReturnRequest заявка покупателя на возврат
type CreateReturnRequest struct {
	OrderID      string       `json:"order_id" validate:"required"`
	Items        []ReturnItem `json:"items" validate:"required,min=1,dive"`
	Reason       string       `json:"reason" validate:"required,oneof=defective damaged not_as_described wrong_item changed_mind other"`
	Description  string       `json:"description,omitempty" validate:"max=2000"`
	ReturnMethod string       `json:"return_method" validate:"required,oneof=pickup courier drop_off"`
}

// UpdateReturnStatusRequest смена статуса возврата
type UpdateReturnStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	RejectionReason string `json:"rejection_reason,omitempty" validate:"max=1000"`
	RefundAmount    *int64 `json:"refund_amount,omitempty" validate:"omitempty,gt=0"`
	Notes           string `json:"notes,omitempty" validate:"max=1000"`
}

// ReturnListResponse страница возвратов со счётчиками по статусам
type ReturnListResponse struct {
	Returns []ReturnRequest `json:"returns"`
	Total   int             `json:"total"`
	Counts  map[string]int  `json:"counts"`
	Page    PageDescription `json:"page"`
}

// ChatMessage сообщение в чате
type ChatMessage struct {
	ID       string    `json:"id"`
	SenderID string    `json:"sender_id"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sent_at"`
}

// ChatSession чат покупателя с дилером
type ChatSession struct {
	ID            string           `json:"id"`
	CustomerID    string           `json:"customer_id"`
	DealerID      string           `json:"dealer_id,omitempty"`
	ProductID     string           `json:"product_id,omitempty"`
	Status        string           `json:"status"`
	StatusDisplay entities.Display `json:"status_display"`
	Messages      []ChatMessage    `json:"messages,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	ClosedAt      *time.Time       `json:"closed_at,omitempty"`
}

type OpenChatRequest struct {
	ProductID string `json:"product_id,omitempty"`
}

type PostMessageRequest struct {
	Body string `json:"body" validate:"required,max=4000"`
}

type AssignDealerRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	DealerID  string `json:"dealer_id" validate:"required"`
}

type CloseChatRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

// ChatListResponse страница чатов со счётчиками по статусам
type ChatListResponse struct {
	Sessions []ChatSession   `json:"sessions"`
	Total    int             `json:"total"`
	Counts   map[string]int  `json:"counts"`
	Page     PageDescription `json:"page"`
}

type Pricing struct {
	OriginalPrice int64 `json:"original_price" validate:"gte=0"`
	SalePrice     int64 `json:"sale_price" validate:"gte=0"`
	DiscountRate  int   `json:"discount_rate"`
}

type ConditionReport struct {
	Grade   string   `json:"grade" validate:"omitempty,oneof=A B C"`
	Summary string   `json:"summary,omitempty"`
	Defects []string `json:"defects,omitempty"`
}

type Specifications struct {
	WidthCm  int               `json:"width_cm" validate:"gte=0"`
	DepthCm  int               `json:"depth_cm" validate:"gte=0"`
	HeightCm int               `json:"height_cm" validate:"gte=0"`
	Material string            `json:"material,omitempty"`
	Color    string            `json:"color,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

type ProductImage struct {
	URL     string `json:"url" validate:"required,url"`
	Alt     string `json:"alt,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

type ProductOption struct {
	Name       string   `json:"name" validate:"required"`
	Values     []string `json:"values" validate:"required,min=1"`
	PriceDelta int64    `json:"price_delta,omitempty"`
}

// Product товар. При сохранении документ перезаписывается целиком.
type Product struct {
	ID             string          `json:"id"`
	DealerID       string          `json:"dealer_id,omitempty"`
	Name           string          `json:"name" validate:"required,max=200"`
	Brand          string          `json:"brand,omitempty"`
	Category       string          `json:"category" validate:"required"`
	Description    string          `json:"description,omitempty"`
	Pricing        Pricing         `json:"pricing"`
	Condition      ConditionReport `json:"condition"`
	Specifications Specifications  `json:"specifications"`
	Images         []ProductImage  `json:"images,omitempty" validate:"dive"`
	Options        []ProductOption `json:"options,omitempty" validate:"dive"`
	Status         string          `json:"status" validate:"omitempty,oneof=on_sale reserved sold_out hidden"`
	Stock          int             `json:"stock" validate:"gte=0"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type ProductListResponse struct {
	Products []Product       `json:"products"`
	Total    int             `json:"total"`
	Page     PageDescription `json:"page"`
}

// User пользователь без хеша пароля
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer dealer admin"`
}

type UserListResponse struct {
	Users []User          `json:"users"`
	Total int             `json:"total"`
	Page  PageDescription `json:"page"`
}

type SalesSummary struct {
	Orders         int   `json:"orders"`
	Revenue        int64 `json:"revenue"`
	AverageOrder   int64 `json:"average_order"`
	CancelledCount int   `json:"cancelled_count"`
	RefundedAmount int64 `json:"refunded_amount"`
}

type ProductSales struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Revenue   int64  `json:"revenue"`
}

type DailySales struct {
	Day     string `json:"day"`
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
}

// Dashboard сводка для админки. Сегменты из failed_segments не загрузились
// и содержат значения по умолчанию.
type Dashboard struct {
	From           time.Time      `json:"from"`
	To             time.Time      `json:"to"`
	Summary        SalesSummary   `json:"summary"`
	OrderCounts    map[string]int `json:"order_counts"`
	ReturnCounts   map[string]int `json:"return_counts"`
	TopProducts    []ProductSales `json:"top_products"`
	DailySales     []DailySales   `json:"daily_sales"`
	FailedSegments []string       `json:"failed_segments"`
}

// StatusValue значение статуса с подписью, цветом и допустимыми переходами
type StatusValue struct {
	Value string   `json:"value"`
	Label string   `json:"label"`
	Color string   `json:"color"`
	Next  []string `json:"next"`
}

type StatusVocabulary struct {
	Order  []StatusValue `json:"order"`
	Return []StatusValue `json:"return"`
	Chat   []StatusValue `json:"chat"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem(it))
	}

	return Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		Items:       items,
		ShippingAddress: ShippingAddress{
			Recipient:  o.ShippingAddress.Recipient,
			Phone:      o.ShippingAddress.Phone,
			PostalCode: o.ShippingAddress.PostalCode,
			Address1:   o.ShippingAddress.Address1,
			Address2:   o.ShippingAddress.Address2,
			Memo:       o.ShippingAddress.Memo,
		},
		TotalAmount:   o.TotalAmount,
		ShippingFee:   o.ShippingFee,
		FinalAmount:   o.FinalAmount,
		Status:        string(o.Status),
		StatusDisplay: o.Status.Display(),
		NextStatuses:  entities.Strings(o.Status.ManualNextStates()),
		ShippingInfo: ShippingInfo{
			Carrier:        o.ShippingInfo.Carrier,
			TrackingNumber: o.ShippingInfo.TrackingNumber,
			Notes:          o.ShippingInfo.Notes,
			ShippedAt:      timePtr(o.ShippingInfo.ShippedAt),
			DeliveredAt:    timePtr(o.ShippingInfo.DeliveredAt),
		},
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func ordersToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

func orderItemsToEntity(items []OrderItem) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.OrderItem(it))
	}
	return out
}

func cartItemsToEntity(items []CartItem) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

func shippingAddressToEntity(a ShippingAddress) entities.ShippingAddress {
	return entities.ShippingAddress{
		Recipient:  a.Recipient,
		Phone:      a.Phone,
		PostalCode: a.PostalCode,
		Address1:   a.Address1,
		Address2:   a.Address2,
		Memo:       a.Memo,
	}
}

func CheckoutJSONToEntity(m CheckoutMessage) entities.Order {
	return entities.Order{
		ID:              m.OrderID,
		OrderNumber:     m.OrderNumber,
		CustomerID:      m.CustomerID,
		Items:           orderItemsToEntity(m.Items),
		ShippingAddress: shippingAddressToEntity(m.ShippingAddress),
		ShippingFee:     m.ShippingFee,
		Notes:           m.Notes,
		CreatedAt:       m.PaidAt,
	}
}

func statusEventsToJSON(events []entities.StatusEvent) []StatusEvent {
	out := make([]StatusEvent, 0, len(events))
	for _, e := range events {
		out = append(out, StatusEvent{
			ID:         e.ID,
			FromStatus: e.FromStatus,
			ToStatus:   e.ToStatus,
			ActorID:    e.ActorID,
			Note:       e.Note,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}

func ReturnEntityToJSON(r entities.ReturnRequest) ReturnRequest {
	items := make([]ReturnItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, ReturnItem(it))
	}

	return ReturnRequest{
		ID:              r.ID,
		OrderID:         r.OrderID,
		CustomerID:      r.CustomerID,
		Items:           items,
		Reason:          string(r.Reason),
		Description:     r.Description,
		ReturnMethod:    string(r.ReturnMethod),
		Status:          string(r.Status),
		StatusDisplay:   r.Status.Display(),
		NextStatuses:    entities.Strings(r.Status.NextStates()),
		RefundAmount:    r.RefundAmount,
		RejectionReason: r.RejectionReason,
		Notes:           r.Notes,
		RequestedAt:     r.RequestedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func returnsToJSON(returns []entities.ReturnRequest) []ReturnRequest {
	out := make([]ReturnRequest, 0, len(returns))
	for _, r := range returns {
		out = append(out, ReturnEntityToJSON(r))
	}
	return out
}

func ChatEntityToJSON(s entities.ChatSession) ChatSession {
	var messages []ChatMessage
	for _, m := range s.Messages {
		messages = append(messages, ChatMessageToJSON(m))
	}

	return ChatSession{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		DealerID:      s.DealerID,
		ProductID:     s.ProductID,
		Status:        string(s.Status),
		StatusDisplay: s.Status.Display(),
		Messages:      messages,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		ClosedAt:      timePtr(s.ClosedAt),
	}
}

func ChatMessageToJSON(m entities.ChatMessage) ChatMessage {
	return ChatMessage{ID: m.ID, SenderID: m.SenderID, Body: m.Body, SentAt: m.SentAt}
}

func ProductEntityToJSON(p entities.Product) Product {
	images := make([]ProductImage, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ProductImage(img))
	}
	options := make([]ProductOption, 0, len(p.Options))
	for _, opt := range p.Options {
		options = append(options, ProductOption(opt))
	}

	return Product{
		ID:             p.ID,
		DealerID:       p.DealerID,
		Name:           p.Name,
		Brand:          p.Brand,
		Category:       p.Category,
		Description:    p.Description,
		Pricing:        Pricing(p.Pricing),
		Condition:      ConditionReport(p.Condition),
		Specifications: Specifications(p.Specifications),
		Images:         images,
		Options:        options,
		Status:         string(p.Status),
		Stock:          p.Stock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ProductJSONToEntity ignores the server managed fields of the document.
func ProductJSONToEntity(p Product) entities.Product {
	images := make([]entities.ProductImage, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, entities.ProductImage(img))
	}
	options := make([]entities.ProductOption, 0, len(p.Options))
	for _, opt := range p.Options {
		options = append(options, entities.ProductOption(opt))
	}

	return entities.Product{
		DealerID:       p.DealerID,
		Name:           p.Name,
		Brand:          p.Brand,
		Category:       p.Category,
		Description:    p.Description,
		Pricing:        entities.Pricing(p.Pricing),
		Condition:      entities.ConditionReport(p.Condition),
		Specifications: entities.Specifications(p.Specifications),
		Images:         images,
		Options:        options,
		Status:         entities.ProductStatus(p.Status),
		Stock:          p.Stock,
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func loginToJSON(res service.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      UserEntityToJSON(res.User),
	}
}

func DashboardEntityToJSON(d entities.Dashboard, from, to time.Time) Dashboard {
	top := make([]ProductSales, 0, len(d.TopProducts))
	for _, p := range d.TopProducts {
		top = append(top, ProductSales(p))
	}
	daily := make([]DailySales, 0, len(d.DailySales))
	for _, ds := range d.DailySales {
		daily = append(daily, DailySales{Day: ds.Day.Format(time.DateOnly), Orders: ds.Orders, Revenue: ds.Revenue})
	}

	return Dashboard{
		From:           from,
		To:             to,
		Summary:        SalesSummary(d.Summary),
		OrderCounts:    d.OrderCounts,
		ReturnCounts:   d.ReturnCounts,
		TopProducts:    top,
		DailySales:     daily,
		FailedSegments: d.FailedSegments,
	}
}

func statusValues[S ~string](values []S, kind string, next func(S) []S) []StatusValue {
	out := make([]StatusValue, 0, len(values))
	for _, v := range values {
		d := entities.DisplayOf(kind, string(v))
		out = append(out, StatusValue{
			Value: string(v),
			Label: d.Label,
			Color: d.Color,
			Next:  entities.Strings(next(v)),
		})
	}
	return out
}
