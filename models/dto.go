package models

import (
	"strings"
	"time"
)

// Request bodies. Each DTO carries a Validate method returning a typed
// field-error list; validation runs before any I/O.

type CreateOrderRequest struct {
	CustID   string     `json:"custid"`
	Odate    *time.Time `json:"odate,omitempty"`
	Services []LineItem `json:"services"`
	Products []LineItem `json:"products"`
}

func (r *CreateOrderRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.CustID) == "" {
		errs = append(errs, FieldError{Field: "custid", Message: "customer id is required"})
	}
	errs = append(errs, validateLineItems("services", r.Services)...)
	errs = append(errs, validateLineItems("products", r.Products)...)
	return errs
}

type UpdateOrderRequest struct {
	Services []LineItem `json:"services"`
	Products []LineItem `json:"products"`
}

func (r *UpdateOrderRequest) Validate() []FieldError {
	var errs []FieldError
	errs = append(errs, validateLineItems("services", r.Services)...)
	errs = append(errs, validateLineItems("products", r.Products)...)
	return errs
}

func validateLineItems(field string, items []LineItem) []FieldError {
	var errs []FieldError
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			errs = append(errs, FieldError{Field: field, Message: "line item name is required"})
		}
		if it.Cost < 0 {
			errs = append(errs, FieldError{Field: field, Message: "line item cost must not be negative"})
		}
		if it.Quantity < 0 {
			errs = append(errs, FieldError{Field: field, Message: "line item quantity must not be negative"})
		}
	}
	return errs
}

type CreateCustomerRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	MobileNo *string `json:"mobile_no,omitempty"`
}

func (r *CreateCustomerRequest) Validate() []FieldError {
	if strings.TrimSpace(r.Name) == "" {
		return []FieldError{{Field: "name", Message: "name is required"}}
	}
	return nil
}

type CreateClientRequest struct {
	ClientName    string    `json:"client_name"`
	ShopName      string    `json:"shop_name"`
	DomainName    string    `json:"domain_name"`
	ShopDesc      string    `json:"shop_desc"`
	ShopLocations []string  `json:"shop_locations"`
	Addresses     []Address `json:"addresses"`
}

func (r *CreateClientRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.ClientName) == "" {
		errs = append(errs, FieldError{Field: "client_name", Message: "client name is required"})
	}
	if strings.TrimSpace(r.ShopName) == "" {
		errs = append(errs, FieldError{Field: "shop_name", Message: "shop name is required"})
	}
	return errs
}

type CreateCatalogServiceRequest struct {
	Name  string  `json:"name" form:"name"`
	Desc  *string `json:"desc,omitempty" form:"desc"`
	Price float64 `json:"price" form:"price"`
}

func (r *CreateCatalogServiceRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if r.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "price must not be negative"})
	}
	return errs
}

type CreateCatalogProductRequest struct {
	Name  string  `json:"name" form:"name"`
	Desc  *string `json:"desc,omitempty" form:"desc"`
	Price float64 `json:"price" form:"price"`
	Qty   float64 `json:"qty" form:"qty"`
	Units string  `json:"units" form:"units"`
}

func (r *CreateCatalogProductRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if r.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "price must not be negative"})
	}
	if r.Qty < 0 {
		errs = append(errs, FieldError{Field: "qty", Message: "qty must not be negative"})
	}
	return errs
}

type CreatePostRequest struct {
	Content string `json:"content" form:"content"`
}

func (r *CreatePostRequest) Validate() []FieldError {
	if strings.TrimSpace(r.Content) == "" {
		return []FieldError{{Field: "content", Message: "content is required"}}
	}
	return nil
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

func (r *CommentRequest) Validate() []FieldError {
	if strings.TrimSpace(r.Comment) == "" {
		return []FieldError{{Field: "comment", Message: "comment is required"}}
	}
	return nil
}

type RegisterUserRequest struct {
	Name     string  `json:"name" form:"name"`
	Gmail    string  `json:"gmail" form:"gmail"`
	Password string  `json:"password" form:"password"`
	MobileNo string  `json:"mobileno" form:"mobileno"`
	WtappNo  string  `json:"wtappno" form:"wtappno"`
	Usertype string  `json:"usertype" form:"usertype"`
	DOB      *string `json:"dob,omitempty" form:"dob"`
	Gender   *string `json:"gender,omitempty" form:"gender"`
	City     string  `json:"address_city" form:"address_city"`
	State    string  `json:"address_state" form:"address_state"`
}

func (r *RegisterUserRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if !strings.Contains(r.Gmail, "@") {
		errs = append(errs, FieldError{Field: "gmail", Message: "a valid email is required"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if strings.TrimSpace(r.MobileNo) == "" {
		errs = append(errs, FieldError{Field: "mobileno", Message: "mobile number is required"})
	}
	if strings.TrimSpace(r.Usertype) == "" {
		errs = append(errs, FieldError{Field: "usertype", Message: "usertype is required"})
	}
	return errs
}

type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty" form:"name"`
	ImgURL *string `json:"imgurl,omitempty" form:"imgurl"`
	Gender *string `json:"gender,omitempty" form:"gender"`
	City   *string `json:"address_city,omitempty" form:"address_city"`
	State  *string `json:"address_state,omitempty" form:"address_state"`
}

type LoginRequest struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, FieldError{Field: "userid", Message: "userid is required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func (r *ResetPasswordRequest) Validate() []FieldError {
	var errs []FieldError
	if !strings.Contains(r.Email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: "a valid email is required"})
	}
	if r.Code == "" {
		errs = append(errs, FieldError{Field: "code", Message: "code is required"})
	}
	if len(r.NewPassword) < 6 {
		errs = append(errs, FieldError{Field: "newPassword", Message: "password must be at least 6 characters"})
	}
	return errs
}
