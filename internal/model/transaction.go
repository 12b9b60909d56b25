package model

import (
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCleared            Status = "cleared"
	StatusUncleared          Status = "uncleared"
	StatusPending            Status = "pending"
	StatusRecurring          Status = "recurring"
	StatusRecurringSuggested Status = "recurring_suggested"
)

type RecurringType string

const (
	RecurringCleared   RecurringType = "cleared"
	RecurringSuggested RecurringType = "suggested"
	RecurringDismissed RecurringType = "dismissed"
)

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Transaction mirrors the transaction object returned by the Lunch Money v1 API.
type Transaction struct {
	ID          int64           `json:"id"`
	Date        civil.Date      `json:"date"`
	Payee       string          `json:"payee"`
	Amount      decimal.Decimal `json:"amount"`
	ToBase      decimal.Decimal `json:"to_base"`
	Currency    string          `json:"currency"`
	Notes       string          `json:"notes"`
	DisplayNote string          `json:"display_note"`

	CategoryID       *int64 `json:"category_id"`
	CategoryName     string `json:"category_name"`
	AssetID          *int64 `json:"asset_id"`
	AssetName        string `json:"asset_name"`
	PlaidAccountID   *int64 `json:"plaid_account_id"`
	PlaidAccountName string `json:"plaid_account_name"`

	Status    Status `json:"status"`
	IsPending bool   `json:"is_pending"`

	ParentID *int64 `json:"parent_id"`
	GroupID  *int64 `json:"group_id"`
	IsGroup  bool   `json:"is_group"`

	RecurringType  *RecurringType `json:"recurring_type"`
	RecurringPayee *string        `json:"recurring_payee"`

	Tags       []Tag      `json:"tags"`
	ExternalID string     `json:"external_id"`
	CreatedAt  *time.Time `json:"created_at"`
}

// TransactionUpdate is a sparse patch: nil fields are left untouched.
type TransactionUpdate struct {
	Status *Status `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Payee  *string `json:"payee,omitempty"`
}

// ClearedUpdate is the only patch the review flow ever sends.
func ClearedUpdate() TransactionUpdate {
	s := StatusCleared
	return TransactionUpdate{Status: &s}
}

// Apply returns a copy of t with every non-nil field of u applied.
func (u TransactionUpdate) Apply(t Transaction) Transaction {
	out := t.Clone()
	if u.Status != nil {
		out.Status = *u.Status
	}
	if u.Notes != nil {
		out.Notes = *u.Notes
	}
	if u.Payee != nil {
		out.Payee = *u.Payee
	}
	return out
}

func (u TransactionUpdate) IsEmpty() bool {
	return u.Status == nil && u.Notes == nil && u.Payee == nil
}

// Clone returns a deep copy so that snapshots never alias live entries.
func (t Transaction) Clone() Transaction {
	out := t
	out.CategoryID = clonePtr(t.CategoryID)
	out.AssetID = clonePtr(t.AssetID)
	out.PlaidAccountID = clonePtr(t.PlaidAccountID)
	out.ParentID = clonePtr(t.ParentID)
	out.GroupID = clonePtr(t.GroupID)
	out.RecurringType = clonePtr(t.RecurringType)
	out.RecurringPayee = clonePtr(t.RecurringPayee)
	out.CreatedAt = clonePtr(t.CreatedAt)
	out.Tags = slices.Clone(t.Tags)
	return out
}

// DayKey is the zero-padded ISO date used to group transactions by day.
func (t Transaction) DayKey() string {
	return t.Date.String()
}

func (t Transaction) IsGroupMember() bool {
	return t.GroupID != nil
}

// AccountName prefers the linked Plaid account over the manual asset.
func (t Transaction) AccountName() string {
	if t.PlaidAccountName != "" {
		return t.PlaidAccountName
	}
	return t.AssetName
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
