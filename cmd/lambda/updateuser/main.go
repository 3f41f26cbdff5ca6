package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	rewardsapp "github.com/rewardslab/rewards-backend/application/rewards"
	"github.com/rewardslab/rewards-backend/cmd/config"
	"github.com/rewardslab/rewards-backend/model"
	userRepo "github.com/rewardslab/rewards-backend/repository/user"
	"github.com/rewardslab/rewards-backend/utils/logger"
	"go.uber.org/zap"
)

var app rewardsapp.RewardsApp

func init() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Aws.Region))
	if err != nil {
		logger.Fatal("err load aws config", zap.Error(err))
	}

	UserRepo := userRepo.NewUserRepository(dynamodb.NewFromConfig(awsCfg), cfg.Aws.UsersTable, cfg.Aws.UsersTablePK)
	app = rewardsapp.NewRewardsApp(cfg, nil, UserRepo)
}

func handler(ctx context.Context, task model.RewardsTask) (*model.RewardsTask, error) {
	return app.UpdateUser(ctx, &task)
}

func main() {
	lambda.Start(handler)
}
