package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Records are the normalized outputs of validation. Pointer fields are
// optional and stay nil when the input omits them.

type UserRegistration struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email" validate:"email"`
	Password    string `json:"password" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
	TaxID       string `json:"tax_id" validate:"required"`
	Industry    string `json:"industry" validate:"required"`
}

type KycDocument struct {
	UserID       string `json:"user_id" validate:"uuid"`
	DocumentType string `json:"document_type" validate:"required"`
	DocumentURL  string `json:"document_url" validate:"url"`
}

type Invoice struct {
	InvoiceID     *string         `json:"invoice_id,omitempty" validate:"omitnil,uuid"`
	InvoiceNumber string          `json:"invoice_number" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	Quantity      float64         `json:"quantity" validate:"min=1"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit" validate:"gte=0"`
	TotalPrice    decimal.Decimal `json:"total_price" validate:"gte=0"`
	PaymentTerms  string          `json:"payment_terms" validate:"required"`
	DueDate       time.Time       `json:"due_date"`
	InvoiceFile   string          `json:"invoice_file" validate:"required"`
	VendorID      string          `json:"vendor_id" validate:"uuid"`
	TermsAgreed   bool            `json:"terms_agreed" validate:"accepted"`
}

type Vendor struct {
	VendorID                 *string `json:"vendor_id,omitempty" validate:"omitnil,uuid"`
	Name                     string  `json:"name" validate:"required"`
	ContactPerson            string  `json:"contact_person" validate:"required"`
	ContactPersonPhoneNumber string  `json:"contact_person_phone_number" validate:"required"`
	PhoneNumber              string  `json:"phone_number" validate:"required"`
	Address                  string  `json:"address" validate:"required"`
	Email                    string  `json:"email" validate:"email"`
	BankName                 string  `json:"bank_name" validate:"required"`
	BankAccountNumber        string  `json:"bank_account_number" validate:"required"`
}

type KycUpdate struct {
	KycID  string         `json:"kyc_id"`
	Status ApprovalStatus `json:"status" validate:"approval_decision"`
}

type Milestone struct {
	ID            *string         `json:"id,omitempty"`
	Description   string          `json:"description" validate:"required"`
	SupportingDoc string          `json:"supporting_doc" validate:"required"`
	BankName      string          `json:"bank_name" validate:"required"`
	BankAccountNo string          `json:"bank_account_no" validate:"required"`
	DueDate       time.Time       `json:"due_date"`
	Title         string          `json:"title" validate:"required"`
	PaymentAmount decimal.Decimal `json:"payment_amount" validate:"gte=0"`
	InvoiceID     string          `json:"invoice_id"`
}

type InvoiceUpdate struct {
	InvoiceID string         `json:"invoice_id"`
	Status    ApprovalStatus `json:"status" validate:"approval_decision"`
}

type FundingRequestUpdate struct {
	FundingRequestID string         `json:"funding_request_id"`
	Status           ApprovalStatus `json:"status" validate:"approval_decision"`
}

type MilestoneUpdate struct {
	MilestoneID string         `json:"milestone_id"`
	Status      ApprovalStatus `json:"status" validate:"approval_decision"`
}

type UserUpdate struct {
	ID              string  `json:"id" validate:"required"`
	FirstName       string  `json:"first_name" validate:"required"`
	LastName        string  `json:"last_name" validate:"required"`
	PhoneNumber     string  `json:"phone_number" validate:"required"`
	Email           string  `json:"email" validate:"email"`
	CompanyName     string  `json:"company_name" validate:"required"`
	TaxID           string  `json:"tax_id" validate:"required"`
	Industry        string  `json:"industry" validate:"required"`
	CurrentPassword *string `json:"current_password,omitempty" validate:"omitnil,min=6"`
	NewPassword     *string `json:"new_password,omitempty" validate:"omitnil,min=6"`
}

type FundingRequest struct {
	InvoiceID        string          `json:"invoice_id"`
	RequestedAmount  decimal.Decimal `json:"requested_amount" validate:"gte=0"`
	YourContribution decimal.Decimal `json:"your_contribution" validate:"gte=0"`
}

type AdminUpdate struct {
	ID              string  `json:"id" validate:"uuid"`
	Email           string  `json:"email" validate:"email"`
	Name            string  `json:"name" validate:"required"`
	CurrentPassword *string `json:"current_password,omitempty" validate:"omitnil,min=8"`
	NewPassword     *string `json:"new_password,omitempty" validate:"omitnil,min=8"`
}

type Notification struct {
	Message string           `json:"message" validate:"required"`
	Type    NotificationType `json:"type" validate:"notification_type"`
	Link    *string          `json:"link,omitempty"`
}

type RegisterAppUser struct {
	FirstName      string     `json:"first_name" validate:"required"`
	LastName       string     `json:"last_name" validate:"required"`
	PhoneNumber    string     `json:"phone_number" validate:"required"`
	Email          string     `json:"email" validate:"email"`
	Password       string     `json:"password" validate:"min=6"`
	ProfilePicture *string    `json:"profile_picture,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
}
