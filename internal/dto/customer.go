package dto

import "time"

const (
	CustomerTypePersonal     = "PERSONAL"
	CustomerTypePersonalVIP  = "PERSONAL_VIP"
	CustomerTypeBusiness     = "BUSINESS"
	CustomerTypeBusinessPyme = "BUSINESS_PYME"
)

// CustomerResponse represents customer information resolved from the customer
// directory service
type CustomerResponse struct {
	ID             string     `json:"id"`
	CustomerType   string     `json:"customer_type"`
	DocumentNumber string     `json:"document_number,omitempty"`
	FirstName      string     `json:"first_name,omitempty"`
	LastName       string     `json:"last_name,omitempty"`
	Email          string     `json:"email,omitempty"`
	PhoneNumber    string     `json:"phone_number,omitempty"`
	BusinessName   string     `json:"business_name,omitempty"`
	TaxID          string     `json:"tax_id,omitempty"`
	HasCreditCard  bool       `json:"has_credit_card"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// IsPersonal reports whether the customer is a personal customer, including
// the VIP subtype
func (c *CustomerResponse) IsPersonal() bool {
	return c.CustomerType == CustomerTypePersonal || c.CustomerType == CustomerTypePersonalVIP
}

// IsBusiness reports whether the customer is a business customer, including
// the PYME subtype
func (c *CustomerResponse) IsBusiness() bool {
	return c.CustomerType == CustomerTypeBusiness || c.CustomerType == CustomerTypeBusinessPyme
}

// IsValidCustomerType checks whether the given type is a known customer type
func IsValidCustomerType(customerType string) bool {
	switch customerType {
	case CustomerTypePersonal, CustomerTypePersonalVIP, CustomerTypeBusiness, CustomerTypeBusinessPyme:
		return true
	}
	return false
}
