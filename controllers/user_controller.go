package controllers

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"marketplace/models"
	"marketplace/stores"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so the two are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

type UserController struct {
	users UserStore
	carts CartStore
	log   *zap.Logger
}

func NewUserController(users UserStore, carts CartStore, log *zap.Logger) *UserController {
	return &UserController{
		users: users,
		carts: carts,
		log:   log,
	}
}

// RegisterInput carries a new account's details. Password arrives in plain
// text and is hashed here.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates the user account together with its empty cart.
func (c *UserController) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = "customer"
	}

	user, err := c.users.Create(ctx, &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	if _, err := c.carts.Create(ctx, user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks the credentials and returns the matching user.
func (c *UserController) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := c.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stores.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
