package domain

import "time"

type CodeKind string

const (
	CodeKindEmail CodeKind = "email"
	CodeKindPhone CodeKind = "phone"
)

func (k CodeKind) Valid() bool {
	return k == CodeKindEmail || k == CodeKindPhone
}

type CodePurpose string

const (
	PurposeRegistration  CodePurpose = "registration"
	PurposeLogin         CodePurpose = "login"
	PurposePasswordReset CodePurpose = "password-reset"
)

// VerificationCode is a one-time code proving control of an email address
// or phone number. A code is valid while UsedAt is nil and ExpiresAt is in
// the future; it never validates again after either condition flips.
type VerificationCode struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Code      string      `json:"-"`
	Kind      CodeKind    `json:"kind"`
	Purpose   CodePurpose `json:"purpose"`
	ExpiresAt time.Time   `json:"expires_at"`
	UsedAt    *time.Time  `json:"used_at,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func (v *VerificationCode) ValidAt(now time.Time) bool {
	return v.UsedAt == nil && now.Before(v.ExpiresAt)
}
