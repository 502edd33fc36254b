package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "mosaic/internal/errors"
	"mosaic/internal/model"
)

func TestUserService_GetByID(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository, *MockFollowRepository)
		expectedError error
	}{
		{
			name: "profile with follow counts",
			setupMock: func(mUser *MockUserRepository, mFollow *MockFollowRepository) {
				mUser.On("FindByID", mock.Anything, userID).
					Return(&model.User{ID: userID, Name: "Ada"}, nil)
				mFollow.On("CountFollowers", mock.Anything, userID).Return(int64(2), nil)
				mFollow.On("CountFollowing", mock.Anything, userID).Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name: "user missing",
			setupMock: func(mUser *MockUserRepository, mFollow *MockFollowRepository) {
				mUser.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockFollowRepo := new(MockFollowRepository)
			tt.setupMock(mockUserRepo, mockFollowRepo)

			service := NewUserService(mockUserRepo, mockFollowRepo, nil)
			profile, err := service.GetByID(context.Background(), userID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Ada", profile.Name)
				assert.Equal(t, int64(2), profile.Followers)
				assert.Equal(t, int64(1), profile.Following)
			}
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdatePatchesOnlyProvidedFields(t *testing.T) {
	userID := uuid.New()
	newBio := "building things"

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("FindByID", mock.Anything, userID).
		Return(&model.User{ID: userID, Name: "Ada", Email: "ada@example.com"}, nil)
	mockUserRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Bio == newBio && u.Name == "Ada" && u.Email == "ada@example.com"
	})).Return(nil)

	service := NewUserService(mockUserRepo, new(MockFollowRepository), nil)
	user, err := service.Update(context.Background(), userID, UpdateUserInput{Bio: &newBio})

	assert.NoError(t, err)
	assert.Equal(t, newBio, user.Bio)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Delete(t *testing.T) {
	userID := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		mockUserRepo.On("Delete", mock.Anything, userID).Return(nil)

		service := NewUserService(mockUserRepo, new(MockFollowRepository), nil)
		assert.NoError(t, service.Delete(context.Background(), userID))
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("user missing", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockUserRepo, new(MockFollowRepository), nil)
		assert.Equal(t, apperrors.ErrUserNotFound, service.Delete(context.Background(), userID))
	})
}

func TestUserService_ListHasMore(t *testing.T) {
	tests := []struct {
		name            string
		page            int
		total           int64
		expectedHasMore bool
	}{
		{name: "more pages remain", page: 1, total: 25, expectedHasMore: true},
		{name: "last full page", page: 2, total: 20, expectedHasMore: false},
		{name: "past the end", page: 3, total: 25, expectedHasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockUserRepo.On("List", mock.Anything, (tt.page-1)*10, 10).Return([]model.User{}, nil)
			mockUserRepo.On("Count", mock.Anything).Return(tt.total, nil)

			service := NewUserService(mockUserRepo, new(MockFollowRepository), nil)
			page, err := service.List(context.Background(), tt.page, 10)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedHasMore, page.HasMore)
		})
	}
}

func TestUserService_SetProfilePicture(t *testing.T) {
	userID := uuid.New()
	path := "uploads/profilePicture-1700000000000.jpg"

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	mockUserRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.ProfilePicture == path
	})).Return(nil)

	service := NewUserService(mockUserRepo, new(MockFollowRepository), nil)
	assert.NoError(t, service.SetProfilePicture(context.Background(), userID, path))
	mockUserRepo.AssertExpectations(t)
}
