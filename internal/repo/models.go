package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
)

var orderColumns = []string{
	"id", "order_number", "customer_id", "recipient", "phone", "postal_code",
	"address1", "address2", "address_memo", "total_amount", "shipping_fee", "final_amount",
	"status", "carrier", "tracking_number", "shipping_notes", "shipped_at", "delivered_at",
	"notes", "created_at", "updated_at",
}

type Order struct {
	ID             string         `db:"id"`
	OrderNumber    string         `db:"order_number"`
	CustomerID     string         `db:"customer_id"`
	Recipient      string         `db:"recipient"`
	Phone          string         `db:"phone"`
	PostalCode     sql.NullString `db:"postal_code"`
	Address1       string         `db:"address1"`
	Address2       sql.NullString `db:"address2"`
	AddressMemo    sql.NullString `db:"address_memo"`
	TotalAmount    int64          `db:"total_amount"`
	ShippingFee    int64          `db:"shipping_fee"`
	FinalAmount    int64          `db:"final_amount"`
	Status         string         `db:"status"`
	Carrier        sql.NullString `db:"carrier"`
	TrackingNumber sql.NullString `db:"tracking_number"`
	ShippingNotes  sql.NullString `db:"shipping_notes"`
	ShippedAt      sql.NullTime   `db:"shipped_at"`
	DeliveredAt    sql.NullTime   `db:"delivered_at"`
	Notes          sql.NullString `db:"notes"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type OrderItem struct {
	OrderID   string `db:"order_id"`
	Line      int    `db:"line"`
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	Quantity  int    `db:"quantity"`
	Price     int64  `db:"price"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		ShippingAddress: entities.ShippingAddress{
			Recipient:  o.Recipient,
			Phone:      o.Phone,
			PostalCode: nullStringToString(o.PostalCode),
			Address1:   o.Address1,
			Address2:   nullStringToString(o.Address2),
			Memo:       nullStringToString(o.AddressMemo),
		},
		TotalAmount: o.TotalAmount,
		ShippingFee: o.ShippingFee,
		FinalAmount: o.FinalAmount,
		Status:      entities.OrderStatus(o.Status),
		ShippingInfo: entities.ShippingInfo{
			Carrier:        nullStringToString(o.Carrier),
			TrackingNumber: nullStringToString(o.TrackingNumber),
			Notes:          nullStringToString(o.ShippingNotes),
			ShippedAt:      nullTimeToTime(o.ShippedAt),
			DeliveredAt:    nullTimeToTime(o.DeliveredAt),
		},
		Notes:     nullStringToString(o.Notes),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, entities.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				Price:     it.Price,
			})
		}
	}

	return order
}

var returnColumns = []string{
	"id", "order_id", "customer_id", "items", "reason", "description", "return_method",
	"status", "refund_amount", "rejection_reason", "notes", "requested_at", "updated_at",
}

type ReturnRequest struct {
	ID              string         `db:"id"`
	OrderID         string         `db:"order_id"`
	CustomerID      string         `db:"customer_id"`
	Items           []byte         `db:"items"`
	Reason          string         `db:"reason"`
	Description     sql.NullString `db:"description"`
	ReturnMethod    string         `db:"return_method"`
	Status          string         `db:"status"`
	RefundAmount    int64          `db:"refund_amount"`
	RejectionReason sql.NullString `db:"rejection_reason"`
	Notes           sql.NullString `db:"notes"`
	RequestedAt     time.Time      `db:"requested_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type returnItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

func marshalReturnItems(items []entities.ReturnItem) ([]byte, error) {
	out := make([]returnItem, 0, len(items))
	for _, it := range items {
		out = append(out, returnItem(it))
	}
	return json.Marshal(out)
}

func ReturnToEntity(r ReturnRequest) (entities.ReturnRequest, error) {
	var items []returnItem
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return entities.ReturnRequest{}, fmt.Errorf("failed to decode return items: %w", err)
		}
	}

	ret := entities.ReturnRequest{
		ID:              r.ID,
		OrderID:         r.OrderID,
		CustomerID:      r.CustomerID,
		Reason:          entities.ReturnReason(r.Reason),
		Description:     nullStringToString(r.Description),
		ReturnMethod:    entities.ReturnMethod(r.ReturnMethod),
		Status:          entities.ReturnStatus(r.Status),
		RefundAmount:    r.RefundAmount,
		RejectionReason: nullStringToString(r.RejectionReason),
		Notes:           nullStringToString(r.Notes),
		RequestedAt:     r.RequestedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	for _, it := range items {
		ret.Items = append(ret.Items, entities.ReturnItem(it))
	}
	return ret, nil
}

var chatColumns = []string{
	"id", "customer_id", "dealer_id", "product_id", "status", "created_at", "updated_at", "closed_at",
}

type ChatSession struct {
	ID         string         `db:"id"`
	CustomerID string         `db:"customer_id"`
	DealerID   sql.NullString `db:"dealer_id"`
	ProductID  sql.NullString `db:"product_id"`
	Status     string         `db:"status"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
	ClosedAt   sql.NullTime   `db:"closed_at"`
}

type ChatMessage struct {
	ID        string    `db:"id"`
	SessionID string    `db:"session_id"`
	SenderID  string    `db:"sender_id"`
	Body      string    `db:"body"`
	SentAt    time.Time `db:"sent_at"`
}

func ChatToEntity(s ChatSession, messages []ChatMessage) entities.ChatSession {
	session := entities.ChatSession{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		DealerID:   nullStringToString(s.DealerID),
		ProductID:  nullStringToString(s.ProductID),
		Status:     entities.ChatStatus(s.Status),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		ClosedAt:   nullTimeToTime(s.ClosedAt),
	}
	for _, m := range messages {
		session.Messages = append(session.Messages, entities.ChatMessage(m))
	}
	return session
}

var productColumns = []string{
	"id", "dealer_id", "name", "brand", "category", "status", "sale_price", "stock",
	"document", "created_at", "updated_at",
}

type Product struct {
	ID        string         `db:"id"`
	DealerID  sql.NullString `db:"dealer_id"`
	Name      string         `db:"name"`
	Brand     sql.NullString `db:"brand"`
	Category  string         `db:"category"`
	Status    string         `db:"status"`
	SalePrice int64          `db:"sale_price"`
	Stock     int            `db:"stock"`
	Document  []byte         `db:"document"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// productDocument is the JSONB part of a product: everything that is edited
// wholesale and never queried by column.
type productDocument struct {
	Description    string                   `json:"description"`
	Pricing        entities.Pricing         `json:"pricing"`
	Condition      entities.ConditionReport `json:"condition"`
	Specifications entities.Specifications  `json:"specifications"`
	Images         []entities.ProductImage  `json:"images"`
	Options        []entities.ProductOption `json:"options"`
}

func marshalProductDocument(p entities.Product) ([]byte, error) {
	return json.Marshal(productDocument{
		Description:    p.Description,
		Pricing:        p.Pricing,
		Condition:      p.Condition,
		Specifications: p.Specifications,
		Images:         p.Images,
		Options:        p.Options,
	})
}

func ProductToEntity(p Product) (entities.Product, error) {
	var doc productDocument
	if len(p.Document) > 0 {
		if err := json.Unmarshal(p.Document, &doc); err != nil {
			return entities.Product{}, fmt.Errorf("failed to decode product document: %w", err)
		}
	}

	return entities.Product{
		ID:             p.ID,
		DealerID:       nullStringToString(p.DealerID),
		Name:           p.Name,
		Brand:          nullStringToString(p.Brand),
		Category:       p.Category,
		Description:    doc.Description,
		Pricing:        doc.Pricing,
		Condition:      doc.Condition,
		Specifications: doc.Specifications,
		Images:         doc.Images,
		Options:        doc.Options,
		Status:         entities.ProductStatus(p.Status),
		Stock:          p.Stock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}

var userColumns = []string{"id", "email", "name", "phone", "role", "password_hash", "created_at"}

type User struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	Phone        sql.NullString `db:"phone"`
	Role         string         `db:"role"`
	PasswordHash string         `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at"`
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        nullStringToString(u.Phone),
		Role:         entities.UserRole(u.Role),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

type StatusEvent struct {
	ID         string         `db:"id"`
	EntityType string         `db:"entity_type"`
	EntityID   string         `db:"entity_id"`
	ActorID    sql.NullString `db:"actor_id"`
	FromStatus string         `db:"from_status"`
	ToStatus   string         `db:"to_status"`
	Note       sql.NullString `db:"note"`
	CreatedAt  time.Time      `db:"created_at"`
}

func StatusEventToEntity(e StatusEvent) entities.StatusEvent {
	return entities.StatusEvent{
		ID:         e.ID,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		ActorID:    nullStringToString(e.ActorID),
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		Note:       nullStringToString(e.Note),
		CreatedAt:  e.CreatedAt,
	}
}
