package models

import "time"

// User is a platform account. PasswordHash is never serialized.
type User struct {
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Gmail         string    `json:"gmail"`
	PasswordHash  string    `json:"-"`
	DOB           *string   `json:"dob,omitempty"`
	ImgURL        *string   `json:"imgurl,omitempty"`
	MobileNo      string    `json:"mobileno"`
	WtappNo       string    `json:"wtappno"`
	Gender        *string   `json:"gender,omitempty"`
	AddressCity   string    `json:"address_city"`
	AddressState  string    `json:"address_state"`
	Usertype      string    `json:"usertype"`
	FcmToken      *string   `json:"fcm_token,omitempty"`
	DateOfJoining time.Time `json:"dateofjoining"`
}
