package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"vendhub/internal/domain/model"
	"vendhub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	// 入力が不正
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrMissingRoleFields  = errors.New("missing role specific fields")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 会員登録の入力。roleごとに必須項目が変わる。
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string

	// farmer
	FarmName     string
	FarmLocation string

	// vendor
	CompanyName  string
	Address      model.Address
	BusinessType string
	GSTNumber    string

	// admin
	AdminLevel string
}

type RegisterUserOutput struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	issuer   AccessTokenIssuer
	clock    Clock
}

// DI
func NewRegisterUserUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	issuer AccessTokenIssuer,
	clock Clock,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		clock:    clock,
	}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	var out RegisterUserOutput

	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	role := model.Role(strings.TrimSpace(in.Role))

	// 必須チェック
	if name == "" || email == "" || in.Password == "" || role == "" {
		return out, ErrInvalidInput
	}

	// emailの形式チェック
	if !isValidEmailFormat(email) {
		return out, ErrInvalidEmailFormat
	}

	// roleチェック
	if !role.Valid() {
		return out, ErrInvalidRole
	}

	// roleごとの必須項目チェック
	switch role {
	case model.RoleFarmer:
		if strings.TrimSpace(in.FarmName) == "" || strings.TrimSpace(in.FarmLocation) == "" {
			return out, ErrMissingRoleFields
		}
	case model.RoleVendor:
		if strings.TrimSpace(in.CompanyName) == "" || strings.TrimSpace(in.BusinessType) == "" {
			return out, ErrMissingRoleFields
		}
		if in.Address.Street == "" || in.Address.City == "" || in.Address.State == "" || in.Address.Pincode == "" {
			return out, ErrMissingRoleFields
		}
	case model.RoleAdmin:
		if strings.TrimSpace(in.AdminLevel) == "" {
			return out, ErrMissingRoleFields
		}
	}

	// email重複チェック
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return out, ErrEmailAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return out, err
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed, // ハッシュを保存（平文は保存しない）
		Role:         role,
		IsApproved:   false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch role {
	case model.RoleFarmer:
		user.FarmName = strings.TrimSpace(in.FarmName)
		user.FarmLocation = strings.TrimSpace(in.FarmLocation)
	case model.RoleVendor:
		user.CompanyName = strings.TrimSpace(in.CompanyName)
		user.CompanyAddress = in.Address
		user.BusinessType = strings.TrimSpace(in.BusinessType)
		user.GSTNumber = strings.TrimSpace(in.GSTNumber)
	case model.RoleAdmin:
		user.AdminLevel = strings.TrimSpace(in.AdminLevel)
	}

	// DBへ保存（email一意制約の競合もここで拾う）
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return out, ErrEmailAlreadyExists
		}
		return out, err
	}

	// すぐ使えるようにtokenも発行する
	token, _, err := u.issuer.Issue(user.ID, user.Role, now)
	if err != nil {
		return out, err
	}

	out.Token = token
	out.User = *user
	return out, nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
