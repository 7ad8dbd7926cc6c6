package user

import (
	"context"
	"strings"

	"vehiclerental/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users    UserRepositoryInterface
	bookings BookingCounter
}

func NewService(users UserRepositoryInterface, bookings BookingCounter) *Service {
	return &Service{
		users:    users,
		bookings: bookings,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]UserPublic, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserPublic, 0, len(users))
	for i := range users {
		out = append(out, toPublic(&users[i]))
	}
	return out, nil
}

// Update applies a partial patch to the target user. Admins may update
// anyone; customers only themselves.
func (s *Service) Update(ctx context.Context, targetID int64, req UpdateUserRequest, actorID int64, actorRole string) (*UserPublic, error) {
	existing, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if actorRole != string(domain.RoleAdmin) && actorID != targetID {
		return nil, ErrNotYourProfile
	}

	fields := map[string]any{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}

	if req.Role != nil {
		if actorRole != string(domain.RoleAdmin) {
			return nil, ErrRoleChangeForbidden
		}
		if !domain.ValidRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		fields["role"] = *req.Role
	}

	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, ErrPasswordTooShort
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != existing.Email {
			taken, err := s.users.EmailTakenByOther(ctx, email, targetID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrEmailExists
			}
		}
		fields["email"] = email
	}

	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	updated, err := s.users.UpdateFields(ctx, targetID, fields)
	if err != nil {
		return nil, err
	}

	pub := toPublic(updated)
	return &pub, nil
}

// Delete removes a user, refusing while they own an active booking.
// The store cascades bookings on delete; this guard is business policy,
// not referential safety.
func (s *Service) Delete(ctx context.Context, targetID int64) error {
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		return ErrUserNotFound
	}

	active, err := s.bookings.CountActiveByCustomer(ctx, targetID)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrHasActiveBookings
	}

	return s.users.Delete(ctx, targetID)
}
