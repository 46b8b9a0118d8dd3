package services

import (
	"errors"

	"ubishop/internal/domain"
	"ubishop/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds    = errors.New("invalid email or password")
	ErrEmailTaken  = errors.New("email already registered")
	ErrUnknownRole = errors.New("unknown role")
)

type AuthService struct {
	Users *repos.UserRepo
}

func (s *AuthService) Register(name, email, phone, password, role string) (*domain.User, error) {
	if role != domain.RoleCustomer && role != domain.RoleStore {
		return nil, ErrUnknownRole
	}
	if u, err := s.Users.ByEmail(email); err == nil && u != nil {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := domain.User{Name: name, Email: email, Phone: phone, Hash: string(hash), Role: role}
	id, err := s.Users.Create(u)
	if err != nil {
		return nil, err
	}
	u.UserID = id
	return &u, nil
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.UserID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
