package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rewardslab/rewards-backend/cmd/config"
	"github.com/rewardslab/rewards-backend/constant"
	"github.com/rewardslab/rewards-backend/model"
	storageRepo "github.com/rewardslab/rewards-backend/repository/storage"
	userRepo "github.com/rewardslab/rewards-backend/repository/user"
	workflowRepo "github.com/rewardslab/rewards-backend/repository/workflow"
	"github.com/rewardslab/rewards-backend/utils/errors"
	"github.com/rewardslab/rewards-backend/utils/logger"
	"go.uber.org/zap"
)

type UserApp interface {
	SaveInfo(ctx context.Context, username string, req *model.SaveUserRequest) (*model.SaveUserResponse, error)
	List(ctx context.Context) (*model.UserListResponse, error)
	ProcessUETR(ctx context.Context, uetr string) (*model.ProcessUETRResponse, error)
}

type userAppImpl struct {
	cfg          *config.Config
	userRepo     userRepo.UserRepository
	uploads      storageRepo.StorageRepository
	workflowRepo workflowRepo.WorkflowRepository
}

func NewUserApp(cfg *config.Config, userRepo userRepo.UserRepository, uploads storageRepo.StorageRepository, workflowRepo workflowRepo.WorkflowRepository) UserApp {
	return &userAppImpl{
		cfg:          cfg,
		userRepo:     userRepo,
		uploads:      uploads,
		workflowRepo: workflowRepo,
	}
}

// SaveInfo persists the user record and uploads a JSON snapshot of it next to
// the table, keyed by userId.
func (s *userAppImpl) SaveInfo(ctx context.Context, username string, req *model.SaveUserRequest) (*model.SaveUserResponse, error) {
	if s.cfg.Aws.UsersTable == "" || s.cfg.Aws.UploadsBucket == "" {
		return nil, errors.SetCustomError(constant.ErrServerConfig)
	}

	uetr := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)

	record := &model.User{
		FileKey:   fmt.Sprintf("%s-%s", uetr, req.UserID),
		UETR:      uetr,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		UserID:    req.UserID,
		CreatedBy: username,
		CreatedAt: now,
	}

	if err := s.userRepo.Put(ctx, record); err != nil {
		logger.Error("[SaveInfo] error userRepo.Put", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	snapshot, err := json.MarshalIndent(model.UserSnapshot{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		UserID:    req.UserID,
		UETR:      uetr,
		CreatedAt: now,
	}, "", "  ")
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	fileName := req.UserID + ".json"
	if err := s.uploads.Upload(ctx, fileName, snapshot, "application/json"); err != nil {
		logger.Error("[SaveInfo] error uploads.Upload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SaveUserResponse{
		Message:  "User information saved successfully",
		UserID:   req.UserID,
		FileName: fileName,
	}, nil
}

func (s *userAppImpl) List(ctx context.Context) (*model.UserListResponse, error) {
	if s.cfg.Aws.UsersTable == "" {
		return nil, errors.SetCustomError(constant.ErrServerConfig)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[List] error userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserListResponse{
		Users: users,
		Count: len(users),
	}, nil
}

// ProcessUETR verifies the user exists, then starts the rewards pipeline for
// it. The pipeline itself runs asynchronously in the workflow engine.
func (s *userAppImpl) ProcessUETR(ctx context.Context, uetr string) (*model.ProcessUETRResponse, error) {
	if uetr == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if s.cfg.Aws.UsersTable == "" || s.cfg.Aws.StateMachineArn == "" {
		return nil, errors.SetCustomError(constant.ErrServerConfig)
	}

	exists, err := s.userRepo.Exists(ctx, uetr)
	if err != nil {
		logger.Error("[ProcessUETR] error userRepo.Exists", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	name := fmt.Sprintf("process-uetr-%s-%d", uetr, time.Now().UnixMilli())
	executionArn, err := s.workflowRepo.Start(ctx, name, model.RewardsTask{UETR: uetr})
	if err != nil {
		logger.Error("[ProcessUETR] error workflowRepo.Start", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProcessUETRResponse{
		Message:      "Processing started",
		ExecutionArn: executionArn,
	}, nil
}
