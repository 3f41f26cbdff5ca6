package rewards

import (
	"context"
	"strconv"
	"strings"

	"github.com/rewardslab/rewards-backend/cmd/config"
	"github.com/rewardslab/rewards-backend/model"
	paramsRepo "github.com/rewardslab/rewards-backend/repository/params"
	userRepo "github.com/rewardslab/rewards-backend/repository/user"
	"github.com/rewardslab/rewards-backend/utils/logger"
	"go.uber.org/zap"
)

// RewardsApp implements the three workflow steps. Errors are returned raw so
// the workflow engine's retry policy sees the task failure.
type RewardsApp interface {
	AddPoints(ctx context.Context, task *model.RewardsTask) (*model.RewardsTask, error)
	AddCard(ctx context.Context, task *model.RewardsTask) (*model.RewardsTask, error)
	UpdateUser(ctx context.Context, task *model.RewardsTask) (*model.RewardsTask, error)
}

type rewardsAppImpl struct {
	cfg        *config.Config
	paramsRepo paramsRepo.ParamsRepository
	userRepo   userRepo.UserRepository
}

func NewRewardsApp(cfg *config.Config, paramsRepo paramsRepo.ParamsRepository, userRepo userRepo.UserRepository) RewardsApp {
	return &rewardsAppImpl{
		cfg:        cfg,
		paramsRepo: paramsRepo,
		userRepo:   userRepo,
	}
}

func (s *rewardsAppImpl) AddPoints(ctx context.Context, task *model.RewardsTask) (*model.RewardsTask, error) {
	raw, err := s.paramsRepo.Get(ctx, s.cfg.Rewards.PointsParam, false)
	if err != nil {
		logger.Error("[AddPoints] error paramsRepo.Get", zap.String("error", err.Error()))
		return nil, err
	}

	points, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		points = 0
	}

	out := *task
	out.PointsAdded = &points
	return &out, nil
}

func (s *rewardsAppImpl) AddCard(ctx context.Context, task *model.RewardsTask) (*model.RewardsTask, error) {
	secret, err := s.paramsRepo.Get(ctx, s.cfg.Rewards.CardParam, true)
	if err != nil {
		logger.Error("[AddCard] error paramsRepo.Get", zap.String("error", err.Error()))
		return nil, err
	}

	// Never log or return the secret; only the derived last-4 leaves here.
	last4 := secret
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	if last4 == "" {
		last4 = "0000"
	}

	out := *task
	out.CardLast4 = last4
	return &out, nil
}

func (s *rewardsAppImpl) UpdateUser(ctx context.Context, task *model.RewardsTask) (*model.RewardsTask, error) {
	points := 0
	if task.PointsAdded != nil {
		points = *task.PointsAdded
	}

	if err := s.userRepo.UpdateRewards(ctx, task.UETR, points, task.CardLast4); err != nil {
		logger.Error("[UpdateUser] error userRepo.UpdateRewards", zap.String("error", err.Error()))
		return nil, err
	}

	out := *task
	out.Updated = true
	return &out, nil
}
