package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/repository"
)

const codeLength = 6

type verificationService struct {
	codeRepo repository.VerificationRepository
	now      func() time.Time
}

func NewVerificationService(codeRepo repository.VerificationRepository) VerificationService {
	return &verificationService{
		codeRepo: codeRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *verificationService) Issue(ctx context.Context, userID int64, kind domain.CodeKind, purpose domain.CodePurpose, ttl time.Duration) (string, error) {
	if !kind.Valid() {
		return "", domain.Validationf("kind", "must be email or phone")
	}
	value, err := generateCode(codeLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	code := &domain.VerificationCode{
		UserID:    userID,
		Code:      value,
		Kind:      kind,
		Purpose:   purpose,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.codeRepo.Issue(ctx, code); err != nil {
		return "", err
	}
	return value, nil
}

func (s *verificationService) Redeem(ctx context.Context, userID int64, kind domain.CodeKind, code string) error {
	if !kind.Valid() {
		return domain.Validationf("kind", "must be email or phone")
	}
	if code == "" {
		return domain.Validationf("code", "is required")
	}
	return s.codeRepo.Consume(ctx, userID, kind, code, s.now())
}

func generateCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
