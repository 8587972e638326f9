package entity

// ApprovalStatus is the review state shared by KYC documents, invoices,
// funding requests and milestones.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// ApprovalDecisions lists the statuses a reviewer may set.
var ApprovalDecisions = []ApprovalStatus{ApprovalStatusApproved, ApprovalStatusRejected}

func (s ApprovalStatus) String() string {
	return string(s)
}

// IsKnown reports whether s is one of the defined statuses.
func (s ApprovalStatus) IsKnown() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	default:
		return false
	}
}

// IsDecision reports whether s closes a review (APPROVED or REJECTED).
func (s ApprovalStatus) IsDecision() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// NotificationType tags what a notification is about.
type NotificationType string

const (
	NotificationTypeInvoiceStatusUpdate   NotificationType = "INVOICE_STATUS_UPDATE"
	NotificationTypeMilestoneStatusUpdate NotificationType = "MILESTONE_STATUS_UPDATE"
	NotificationTypeFundingStatusUpdate   NotificationType = "FUNDING_STATUS_UPDATE"
	NotificationTypeSystemAlert           NotificationType = "SYSTEM_ALERT"
	NotificationTypeKYCUpdate             NotificationType = "KYC_UPDATE"
	NotificationTypeInvoiceUpdate         NotificationType = "INVOICE_UPDATE"
	NotificationTypeMilestoneUpdate       NotificationType = "MILESTONE_UPDATE"
	NotificationTypeFundingUpdate         NotificationType = "FUNDING_UPDATE"
)

// NotificationTypes lists every notification type in declaration order.
var NotificationTypes = []NotificationType{
	NotificationTypeInvoiceStatusUpdate,
	NotificationTypeMilestoneStatusUpdate,
	NotificationTypeFundingStatusUpdate,
	NotificationTypeSystemAlert,
	NotificationTypeKYCUpdate,
	NotificationTypeInvoiceUpdate,
	NotificationTypeMilestoneUpdate,
	NotificationTypeFundingUpdate,
}

func (t NotificationType) String() string {
	return string(t)
}

// IsKnown reports whether t is one of the defined notification types.
func (t NotificationType) IsKnown() bool {
	switch t {
	case NotificationTypeInvoiceStatusUpdate,
		NotificationTypeMilestoneStatusUpdate,
		NotificationTypeFundingStatusUpdate,
		NotificationTypeSystemAlert,
		NotificationTypeKYCUpdate,
		NotificationTypeInvoiceUpdate,
		NotificationTypeMilestoneUpdate,
		NotificationTypeFundingUpdate:
		return true
	default:
		return false
	}
}
