package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/logger"
	"church-inventory-backend/internal/repository"
	"church-inventory-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?1?[2-9]\d{2}[2-9]\d{2}\d{4}$`)
	phoneJunk    = regexp.MustCompile(`[\s\-().]`)
)

type authService struct {
	userRepo repository.UserRepository
	codes    VerificationService
	email    EmailSender
	sms      SMSSender
	tokens   security.TokenManager
	codeTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, codes VerificationService, email EmailSender, sms SMSSender, tokens security.TokenManager, codeTTL time.Duration) AuthService {
	return &authService{
		userRepo: userRepo,
		codes:    codes,
		email:    email,
		sms:      sms,
		tokens:   tokens,
		codeTTL:  codeTTL,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, domain.Validationf("email", "is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.Validationf("email", "invalid email format")
	}
	if len(req.Password) < 8 {
		return nil, domain.Validationf("password", "must be at least 8 characters long")
	}
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, domain.Validationf("name", "first and last name are required")
	}

	phone := strings.TrimSpace(req.PhoneNumber)
	if phone != "" {
		if !validPhone(phone) {
			return nil, domain.Validationf("phone_number", "invalid phone number format")
		}
		phone = formatPhone(phone)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.Conflictf("user with this email already exists")
	} else if !isNotFound(err) {
		return nil, err
	}
	if phone != "" {
		if _, err := s.userRepo.GetByPhone(ctx, phone); err == nil {
			return nil, domain.Conflictf("user with this phone number already exists")
		} else if !isNotFound(err) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  phone,
		FirstName:    firstName,
		LastName:     lastName,
		Active:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.sendCode(ctx, user, domain.CodeKindEmail, domain.PurposeRegistration)
	if phone != "" {
		s.sendCode(ctx, user, domain.CodeKindPhone, domain.PurposeRegistration)
	}

	logger.InfoContext(ctx, "new user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return "", nil, domain.Authf("invalid email or password")
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.Authf("invalid email or password")
	}
	if !user.Active {
		return "", nil, domain.Authf("account is deactivated")
	}
	if !user.EmailVerified {
		return "", nil, domain.Authf("email verification required")
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	logger.InfoContext(ctx, "user logged in", "user_id", user.ID, "email", user.Email)
	return token, user, nil
}

func (s *authService) Verify(ctx context.Context, userID int64, kind domain.CodeKind, code string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.codes.Redeem(ctx, userID, kind, code); err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("valid verification code")
		}
		return nil, err
	}
	switch kind {
	case domain.CodeKindEmail:
		user.EmailVerified = true
	case domain.CodeKindPhone:
		user.PhoneVerified = true
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "user verified", "user_id", user.ID, "kind", kind)
	return user, nil
}

func (s *authService) ResendVerification(ctx context.Context, userID int64, kind domain.CodeKind) error {
	if !kind.Valid() {
		return domain.Validationf("kind", "must be email or phone")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if kind == domain.CodeKindEmail && user.EmailVerified {
		return domain.Conflictf("email already verified")
	}
	if kind == domain.CodeKindPhone {
		if user.PhoneVerified {
			return domain.Conflictf("phone already verified")
		}
		if user.PhoneNumber == "" {
			return domain.Validationf("phone_number", "no phone number on file")
		}
	}
	s.sendCode(ctx, user, kind, domain.PurposeRegistration)
	return nil
}

func (s *authService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID int64, req ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.PhoneNumber != nil {
		phone := strings.TrimSpace(*req.PhoneNumber)
		if phone == "" {
			user.PhoneNumber = ""
			user.PhoneVerified = false
		} else {
			if !validPhone(phone) {
				return nil, domain.Validationf("phone_number", "invalid phone number format")
			}
			phone = formatPhone(phone)
			if other, err := s.userRepo.GetByPhone(ctx, phone); err == nil && other.ID != user.ID {
				return nil, domain.Conflictf("phone number already in use")
			} else if err != nil && !isNotFound(err) {
				return nil, err
			}
			// a changed number must be verified again
			if user.PhoneNumber != phone {
				user.PhoneNumber = phone
				user.PhoneVerified = false
			}
		}
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// sendCode issues a fresh code and hands it to the delivery collaborator.
// Delivery failure is logged, never surfaced: the code is recorded and can
// be resent.
func (s *authService) sendCode(ctx context.Context, user *domain.User, kind domain.CodeKind, purpose domain.CodePurpose) {
	value, err := s.codes.Issue(ctx, user.ID, kind, purpose, s.codeTTL)
	if err != nil {
		logger.ErrorContext(ctx, "failed to issue verification code", "user_id", user.ID, "kind", kind, "error", err)
		return
	}
	switch kind {
	case domain.CodeKindEmail:
		err = s.email.SendVerificationCode(ctx, user.Email, value, s.codeTTL)
	case domain.CodeKindPhone:
		err = s.sms.SendVerificationCode(ctx, user.PhoneNumber, value, s.codeTTL)
	}
	if err != nil {
		logger.WarnContext(ctx, "failed to deliver verification code", "user_id", user.ID, "kind", kind, "error", err)
	}
}

func isNotFound(err error) bool {
	var nf *domain.NotFoundError
	return errors.As(err, &nf)
}

func validPhone(phone string) bool {
	return phonePattern.MatchString(phoneJunk.ReplaceAllString(phone, ""))
}

// formatPhone normalizes a US number to E.164.
func formatPhone(phone string) string {
	clean := phoneJunk.ReplaceAllString(phone, "")
	if strings.HasPrefix(clean, "+") {
		return clean
	}
	if strings.HasPrefix(clean, "1") {
		return "+" + clean
	}
	return "+1" + clean
}
