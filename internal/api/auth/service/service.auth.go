// Package authsvc owns login accounts: authentication, token issuance,
// explicit registration and the accounts synthesized for synced
// employees.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"fieldpulse/config"
	"fieldpulse/internal/api/auth/dto"
	authmodels "fieldpulse/internal/api/auth/models"
	basesvc "fieldpulse/internal/api/base/service"
	"fieldpulse/internal/api/middleware"
	"fieldpulse/internal/common"
	"fieldpulse/internal/logger"
	"fieldpulse/internal/registry"
)

// tokenTTL is the issued token lifetime.
const tokenTTL = 24 * time.Hour

// AuthService provides authentication and account management.
type AuthService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
	secret          []byte
	userDomain      string
	defaultPassword string
	adminEmail      string
	adminPassword   string
}

// NewAuthService creates the service.
func NewAuthService(collections *registry.Registry[*mongo.Collection], cfg *config.Configuration) (*AuthService, error) {
	collection, exists := collections.Get("users")
	if !exists {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &AuthService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](collection),
		secret:               []byte(cfg.JwtSecret),
		userDomain:           cfg.DefaultUserDomain,
		defaultPassword:      cfg.DefaultUserPassword,
		adminEmail:           cfg.DefaultAdminEmail,
		adminPassword:        cfg.DefaultAdminPass,
	}, nil
}

// issueToken signs a 24h token for the account.
func (s *AuthService) issueToken(user *authmodels.User) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		UserID:     user.ID.Hex(),
		Email:      user.Email,
		Role:       user.Role,
		EmpID:      user.EmpID,
		EmployeeID: user.EmployeeID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Login verifies credentials and returns a signed token with the
// account profile. A bad email and a bad password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Failed to sign token", common.StatusInternalServerError, nil)
	}

	return &dto.LoginResponse{Token: token, User: user}, nil
}

// Register creates an account with an explicit role.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*authmodels.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Failed to hash password", common.StatusInternalServerError, nil)
	}

	user := authmodels.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
		EmpID:        req.EmpID,
		Name:         req.Name,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery,
				fmt.Sprintf("account %s already exists", email), common.StatusConflict, nil)
		}
		return nil, err
	}

	return &created, nil
}

// Me returns the account behind the token claims.
func (s *AuthService) Me(ctx context.Context, claims *middleware.Claims) (*authmodels.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": claims.Email}, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureAccountForEmployee creates the synthesized sales-rep account
// for a synced employee when none exists. The address is the lowercased
// empID under the configured domain; the password is the configured
// default. Existing accounts are left untouched.
func (s *AuthService) EnsureAccountForEmployee(ctx context.Context, empID string, employeeID int64, name string) error {
	email := strings.ToLower(empID) + s.userDomain

	exists, err := s.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := authmodels.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         middleware.RoleSalesRep,
		EmpID:        empID,
		Name:         name,
	}
	if employeeID != 0 {
		user.EmployeeID = strconv.FormatInt(employeeID, 10)
	}

	if _, err := s.InsertOne(ctx, user); err != nil {
		// A concurrent sync may have inserted the same address.
		if errors.Is(err, common.ErrDuplicate) {
			return nil
		}
		return err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"email": email,
		"empID": empID,
	}).Info("Synthesized login account for employee")

	return nil
}

// EnsureDefaultAdmin creates the bootstrap admin account from
// configuration. A missing configuration skips the bootstrap.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	if s.adminEmail == "" || s.adminPassword == "" {
		return nil
	}

	email := strings.ToLower(s.adminEmail)
	exists, err := s.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := s.InsertOne(ctx, authmodels.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         middleware.RoleAdmin,
		Name:         "Administrator",
	}); err != nil && !errors.Is(err, common.ErrDuplicate) {
		return err
	}

	logger.GetAppLogger().WithField("email", email).Info("Created default admin account")
	return nil
}
