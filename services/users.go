package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"sklyit/database"
	"sklyit/models"
	"sklyit/storage"
)

const userColumns = `user_id, name, gmail, password_hash, dob, imgurl, mobile_no,
	wtapp_no, gender, address_city, address_state, usertype, fcm_token, date_of_joining`

// UsersService manages platform accounts.
type UsersService struct {
	db   database.Querier
	blob storage.BlobStore
	log  zerolog.Logger
}

func NewUsersService(db database.Querier, blob storage.BlobStore, log zerolog.Logger) *UsersService {
	return &UsersService{db: db, blob: blob, log: log}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Name, &u.Gmail, &u.PasswordHash, &u.DOB, &u.ImgURL,
		&u.MobileNo, &u.WtappNo, &u.Gender, &u.AddressCity, &u.AddressState,
		&u.Usertype, &u.FcmToken, &u.DateOfJoining)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// RegisterUser creates an account. Email and mobile number are unique per
// usertype; an optional profile image is uploaded first.
func (s *UsersService) RegisterUser(ctx context.Context, req models.RegisterUserRequest, imageName string, imageData []byte) (*models.User, error) {
	var existing int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM users
		WHERE (gmail = $1 OR mobile_no = $2) AND usertype = $3
	`, req.Gmail, req.MobileNo, req.Usertype).Scan(&existing)
	if err != nil {
		return nil, models.Upstream("failed to check for existing user", err)
	}
	if existing > 0 {
		return nil, models.Conflict("user with this email or mobile number already exists")
	}

	var imgURL *string
	if len(imageData) > 0 {
		if s.blob == nil {
			return nil, models.Upstream("image uploads are not configured", nil)
		}
		url, err := s.blob.Upload(ctx, imageName, imageData)
		if err != nil {
			s.log.Error().Err(err).Msg("profile image upload failed")
			return nil, models.Upstream("failed to upload image", err)
		}
		imgURL = &url
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.Upstream("could not process password", err)
	}

	u := models.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Gmail:        req.Gmail,
		PasswordHash: string(hash),
		DOB:          req.DOB,
		ImgURL:       imgURL,
		MobileNo:     req.MobileNo,
		WtappNo:      req.WtappNo,
		Gender:       req.Gender,
		AddressCity:  req.City,
		AddressState: req.State,
		Usertype:     req.Usertype,
	}
	err = s.db.QueryRow(ctx, `
		INSERT INTO users (user_id, name, gmail, password_hash, dob, imgurl, mobile_no,
			wtapp_no, gender, address_city, address_state, usertype, date_of_joining)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING date_of_joining
	`, u.UserID, u.Name, u.Gmail, u.PasswordHash, u.DOB, u.ImgURL, u.MobileNo,
		u.WtappNo, u.Gender, u.AddressCity, u.AddressState, u.Usertype).Scan(&u.DateOfJoining)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to register user")
		return nil, models.Upstream("failed to register user", err)
	}
	return &u, nil
}

// GetUserByID fetches one account.
func (s *UsersService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, models.MissingField("user id")
	}
	u, err := scanUser(s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE user_id = $1", userID))
	if err == pgx.ErrNoRows {
		return nil, models.NotFound("user")
	}
	if err != nil {
		return nil, models.Upstream("failed to fetch user", err)
	}
	return u, nil
}

// FindByEmail fetches one account by email address.
func (s *UsersService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, models.MissingField("email")
	}
	u, err := scanUser(s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE gmail = $1", email))
	if err == pgx.ErrNoRows {
		return nil, models.NotFound("user")
	}
	if err != nil {
		return nil, models.Upstream("failed to fetch user", err)
	}
	return u, nil
}

// ValidateUser resolves a login identifier (whatsapp, mobile or email) and
// checks the password.
func (s *UsersService) ValidateUser(ctx context.Context, userID, password string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE wtapp_no = $1 OR mobile_no = $1 OR gmail = $1", userID))
	if err == pgx.ErrNoRows {
		return nil, models.NotFound("user")
	}
	if err != nil {
		return nil, models.Upstream("failed to fetch user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, models.NotFound("user")
	}
	return u, nil
}

// UpdateUser applies the provided profile fields, uploading a replacement
// image when given.
func (s *UsersService) UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest, imageName string, imageData []byte) (*models.User, error) {
	u, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(imageData) > 0 {
		if s.blob == nil {
			return nil, models.Upstream("image uploads are not configured", nil)
		}
		url, err := s.blob.Upload(ctx, imageName, imageData)
		if err != nil {
			s.log.Error().Err(err).Msg("profile image upload failed")
			return nil, models.Upstream("failed to upload image", err)
		}
		u.ImgURL = &url
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.ImgURL != nil {
		u.ImgURL = req.ImgURL
	}
	if req.Gender != nil {
		u.Gender = req.Gender
	}
	if req.City != nil {
		u.AddressCity = *req.City
	}
	if req.State != nil {
		u.AddressState = *req.State
	}
	_, err = s.db.Exec(ctx, `
		UPDATE users SET name = $2, imgurl = $3, gender = $4, address_city = $5, address_state = $6
		WHERE user_id = $1
	`, userID, u.Name, u.ImgURL, u.Gender, u.AddressCity, u.AddressState)
	if err != nil {
		return nil, models.Upstream("failed to update user", err)
	}
	return u, nil
}

// UpdatePassword rehashes and stores a new password for the account with
// the given email.
func (s *UsersService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	if email == "" {
		return models.MissingField("email")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.Upstream("could not process password", err)
	}
	tag, err := s.db.Exec(ctx, "UPDATE users SET password_hash = $2 WHERE gmail = $1", email, string(hash))
	if err != nil {
		return models.Upstream("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFound("user")
	}
	return nil
}

// UpdateFcmToken stores the push-notification token of a device.
func (s *UsersService) UpdateFcmToken(ctx context.Context, userID, token string) error {
	if userID == "" {
		return models.MissingField("user id")
	}
	tag, err := s.db.Exec(ctx, "UPDATE users SET fcm_token = $2 WHERE user_id = $1", userID, token)
	if err != nil {
		return models.Upstream("failed to update fcm token", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFound("user")
	}
	return nil
}
