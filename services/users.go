package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"hunter-fitness-system/models"
	"hunter-fitness-system/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken is returned by Register for a duplicate username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned by Authenticate on a bad
	// username/password pair. Deliberately does not say which was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserService owns hunter accounts and their login sessions.
type UserService struct {
	DB         *gorm.DB
	SessionTTL time.Duration
}

func NewUserService(db *gorm.DB, sessionTTL time.Duration) *UserService {
	return &UserService{DB: db, SessionTTL: sessionTTL}
}

// Register creates a hunter with the starting defaults. The password is
// bcrypt-hashed before it touches the database.
func (s *UserService) Register(username, password string, isAdmin bool) (*models.User, error) {
	if existing, err := s.GetByUsername(username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(username, hash, isAdmin)
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	log.Info().Uint("userId", user.ID).Str("username", user.Username).Msg("hunter registered")
	return user, nil
}

// Authenticate verifies credentials and returns the hunter on success.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByUsername looks a hunter up case-insensitively. Returns (nil, nil)
// when no such hunter exists.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("LOWER(username) = ?", strings.ToLower(username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Get fetches a hunter by id.
func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every hunter.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Patch applies a partial admin update. Passwords are not updatable here.
func (s *UserService) Patch(id uint, req *models.UserPatchRequest) (*models.User, error) {
	var updated *models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if req.IsAdmin != nil {
			user.IsAdmin = *req.IsAdmin
		}
		if req.Rank != nil {
			user.Rank = *req.Rank
		}
		if req.Job != nil {
			user.Job = *req.Job
		}
		if req.Level != nil {
			user.Level = *req.Level
		}
		if req.XP != nil {
			user.XP = *req.XP
		}
		if req.Coins != nil {
			user.Coins = *req.Coins
		}
		if req.Stats != nil {
			user.Stats = *req.Stats
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		updated = &user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a hunter and their sessions, progress and inventory.
func (s *UserService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserQuest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// LeaderboardEntry is a hunter plus the lifetime XP the board sorts by.
type LeaderboardEntry struct {
	models.User
	TotalXP int `json:"totalXp"`
}

// Leaderboard returns all hunters ordered by lifetime XP, highest first.
func (s *UserService) Leaderboard() ([]LeaderboardEntry, error) {
	users, err := s.List()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = LeaderboardEntry{User: u, TotalXP: u.TotalXP()}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalXP > entries[j].TotalXP
	})
	return entries, nil
}

// CreateSession mints a session token for the hunter.
func (s *UserService) CreateSession(userID uint) (*models.Session, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.SessionTTL),
	}
	if err := s.DB.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// UserForSession resolves a cookie token to its hunter. Expired or unknown
// tokens return (nil, nil).
func (s *UserService) UserForSession(token string) (*models.User, error) {
	var session models.Session
	err := s.DB.First(&session, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, nil
	}

	var user models.User
	if err := s.DB.First(&user, session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// DeleteSession drops a session on logout. Unknown tokens are a no-op.
func (s *UserService) DeleteSession(token string) error {
	return s.DB.Where("token = ?", token).Delete(&models.Session{}).Error
}
