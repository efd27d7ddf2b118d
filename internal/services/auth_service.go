package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"pda-backend/internal/db"
	"pda-backend/internal/models"
)

const (
	passwordHashCost = 10
	authTokenTTL     = time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Claims is the signed identity carried by a bearer token.
type Claims struct {
	UserID   uint   `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByEmail(email string) (models.User, error)
	ExistsByUsernameOrEmail(username string, email string) (bool, error)
	Create(user *models.User) error
}

type AuthService struct {
	users     AuthUserRepository
	secretKey []byte
}

func NewAuthService(users AuthUserRepository, secretKey []byte) *AuthService {
	return &AuthService{users: users, secretKey: secretKey}
}

// Register hashes the password and persists a new user. A username or
// email collision surfaces as db.ErrDuplicateIdentity.
func (service *AuthService) Register(username string, email string, password string) error {
	exists, err := service.users.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return fmt.Errorf("check identity: %w", err)
	}
	if exists {
		return db.ErrDuplicateIdentity
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
	}
	if err := service.users.Create(&user); err != nil {
		// The unique indexes are the last line of defense against a
		// concurrent registration racing past the existence check.
		return db.ErrDuplicateIdentity
	}
	return nil
}

// Login verifies the credentials and issues a one-hour bearer token.
func (service *AuthService) Login(email string, password string) (string, error) {
	user, err := service.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return service.buildToken(&user)
}

// VerifyToken validates the signature and expiry and returns the decoded
// identity.
func (service *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return service.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Profile returns the identity fields exposed to the authenticated caller.
func (service *AuthService) Profile(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) buildToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(service.secretKey)
}
