package models

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shreeramenterprise/sems_backend/config"
	"github.com/shreeramenterprise/sems_backend/utils"
)

type User struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email" binding:"required"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      StaffRole `gorm:"type:enum('admin','staff');not null;default:'staff'" json:"role"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required"`
	Phone    string    `json:"phone"`
	Password string    `json:"password"`
	Role     StaffRole `json:"role"`
}

type LoginInfo struct {
	Token string `json:"token"`
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (input *NewUser) validate(ctx context.Context, id int) error {
	if !utils.IsValidEmail(input.Email) {
		return utils.NewInputError("invalid email")
	}
	if err := utils.ValidateUnique[User](ctx, "email", input.Email, id); err != nil {
		return err
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return utils.NewInputError("invalid phone number")
		}
	}
	if input.Role != "" && !input.Role.Valid() {
		return utils.NewInputError("role must be admin or staff")
	}
	return nil
}

func Login(ctx context.Context, email string, password string) (*LoginInfo, error) {
	db := config.GetDB()

	user := User{}
	err := db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Take(&user).Error
	if err != nil {
		return nil, utils.NewInputError("invalid email or password")
	}

	// any comparison failure rejects, including an unreadable stored hash
	if err := utils.ComparePassword(user.Password, password); err != nil {
		return nil, utils.NewInputError("invalid email or password")
	}

	if !utils.DereferencePtr(user.IsActive) {
		return nil, utils.NewInputError("user is disabled")
	}

	token, err := utils.JwtGenerate(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	// register the token so logout can revoke it before expiry; the value
	// is the owner's email, which the session middleware puts in context
	if err := config.AddRedisSet("Tokens:"+user.Email, token); err != nil {
		return nil, err
	}
	if err := config.SetRedisValue("Token:"+token, user.Email, utils.TokenLifespan()); err != nil {
		return nil, err
	}

	return &LoginInfo{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}, nil
}

// destroy current session
func Logout(ctx context.Context) (bool, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || token == "" {
		return false, utils.NewInputError("token is required")
	}
	if err := config.RemoveRedisKey("Token:" + token); err != nil {
		return false, err
	}
	email, ok := utils.GetUserEmailFromContext(ctx)
	if !ok || email == "" {
		return false, utils.NewInputError("user not found")
	}
	if err := config.RemoveRedisSetMember("Tokens:"+email, token); err != nil {
		return false, err
	}
	return true, nil
}

// DestroyAllSessions revokes every live token of a user (password change,
// deactivation, delete).
func (user *User) DestroyAllSessions() error {
	tokens, err := config.GetRedisSetMembers("Tokens:" + user.Email)
	if err != nil {
		return err
	}
	for _, token := range tokens {
		if err := config.RemoveRedisKey("Token:" + token); err != nil {
			return err
		}
	}
	return config.RemoveRedisKey("Tokens:" + user.Email)
}

func GetSessionUser(ctx context.Context) (*User, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId <= 0 {
		return nil, utils.ErrorUnauthorized
	}
	return utils.FetchModel[User](ctx, userId)
}

func GetAllUsers(ctx context.Context) ([]*User, error) {
	db := config.GetDB()
	var results []*User
	if err := db.WithContext(ctx).Order("name ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {
	db := config.GetDB()

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	password := input.Password
	if password == "" {
		// temp password, shared with the staff member out of band
		password = "Temp@" + strings.Split(uuid.NewString(), "-")[0]
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = StaffRoleStaff
	}

	user := User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hashedPassword),
		Role:     role,
		IsActive: utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUser(ctx context.Context, id int, input *NewUser) (*User, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	user, err := utils.FetchModel[User](ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"Name":  input.Name,
		"Email": input.Email,
		"Phone": input.Phone,
	}
	if input.Role != "" {
		updates["Role"] = input.Role
	}
	if input.Password != "" {
		hashedPassword, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		updates["Password"] = string(hashedPassword)
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if input.Password != "" {
		if err := user.DestroyAllSessions(); err != nil {
			return nil, err
		}
	}

	return utils.FetchModel[User](ctx, id)
}

func DeleteUser(ctx context.Context, id int) (*User, error) {
	user, err := utils.FetchModel[User](ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Role == StaffRoleAdmin {
		adminCount, err := utils.ResourceCountWhere[User](ctx, "role = ?", StaffRoleAdmin)
		if err != nil {
			return nil, err
		}
		if adminCount <= 1 {
			return nil, utils.NewInputError("cannot delete the last admin")
		}
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&user).Error; err != nil {
		return nil, err
	}

	if err := user.DestroyAllSessions(); err != nil {
		return nil, err
	}

	return user, nil
}

// SetupAdmin bootstraps the very first admin account. Refused once any
// admin exists; afterwards staff management runs through the normal routes.
func SetupAdmin(ctx context.Context, input *NewUser) (*User, error) {
	adminCount, err := utils.ResourceCountWhere[User](ctx, "role = ?", StaffRoleAdmin)
	if err != nil {
		return nil, err
	}
	if adminCount > 0 {
		return nil, utils.NewInputError("admin already exists, use the normal login flow")
	}
	if input.Password == "" {
		return nil, utils.NewInputError("password is required")
	}

	input.Role = StaffRoleAdmin
	return CreateUser(ctx, input)
}
