// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/careerhub/internal/user/internal/domain"
	"github.com/ecodeclub/careerhub/internal/user/internal/event"
	"github.com/ecodeclub/careerhub/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicateEmail        = errors.New("email is already in use")
	ErrInvalidUserOrPassword = errors.New("invalid email or password")
	ErrWrongPassword         = errors.New("current password is incorrect")
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	Signup(ctx context.Context, u domain.User) (int64, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, uid int64) (domain.User, error)
	// FindByIds 查不到的用户不会出现在结果里
	FindByIds(ctx context.Context, ids []int64) (map[int64]domain.User, error)
	UpdateProfile(ctx context.Context, u domain.User) error
	ChangePassword(ctx context.Context, uid int64, current, newPassword string) error
	UpdateNotifications(ctx context.Context, uid int64, n domain.NotificationSettings) error
	UpdatePrivacy(ctx context.Context, uid int64, p domain.PrivacySettings) error
	DeleteAccount(ctx context.Context, uid int64, reason string) error
}

type userService struct {
	repo     repository.UserRepository
	producer event.AccountDeletedEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, producer event.AccountDeletedEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *userService) Signup(ctx context.Context, u domain.User) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	u.Password = string(hash)
	u.Notification = domain.DefaultNotificationSettings()
	u.Privacy = domain.DefaultPrivacySettings()
	id, err := s.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrUserDuplicate) {
		return 0, ErrDuplicateEmail
	}
	return id, err
}

func (s *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	return u, nil
}

func (s *userService) Profile(ctx context.Context, uid int64) (domain.User, error) {
	u, err := s.repo.FindById(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

func (s *userService) FindByIds(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	us, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.User, len(us))
	for _, u := range us {
		res[u.Id] = u
	}
	return res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, u domain.User) error {
	err := s.repo.UpdateProfile(ctx, u)
	if errors.Is(err, repository.ErrUserDuplicate) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *userService) ChangePassword(ctx context.Context, uid int64, current, newPassword string) error {
	u, err := s.repo.FindByIdWithPassword(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(current)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, uid, string(hash))
}

func (s *userService) UpdateNotifications(ctx context.Context, uid int64, n domain.NotificationSettings) error {
	return s.repo.UpdateNotifications(ctx, uid, n)
}

func (s *userService) UpdatePrivacy(ctx context.Context, uid int64, p domain.PrivacySettings) error {
	return s.repo.UpdatePrivacy(ctx, uid, p)
}

// DeleteAccount 先删账号再发事件，事件发送失败只记录日志，不影响删除结果
func (s *userService) DeleteAccount(ctx context.Context, uid int64, reason string) error {
	err := s.repo.Delete(ctx, uid)
	if err != nil {
		return fmt.Errorf("删除账号失败 uid=%d: %w", uid, err)
	}
	err = s.producer.Produce(ctx, event.AccountDeletedEvent{
		Uid:     uid,
		Reason:  reason,
		Deleted: time.Now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送账号删除事件失败",
			elog.Int64("uid", uid),
			elog.FieldErr(err))
	}
	return nil
}
