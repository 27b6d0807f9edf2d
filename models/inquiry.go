package models

type Inquiry struct {
	Name       string `json:"name" form:"name" validate:"required"`
	Email      string `json:"email" form:"email" validate:"required,email"`
	Phone      string `json:"phone" form:"phone"`
	Subject    string `json:"subject" form:"subject"`
	Message    string `json:"message" form:"message" validate:"required"`
	PropertyID string `json:"propertyId" form:"propertyId"`
}
