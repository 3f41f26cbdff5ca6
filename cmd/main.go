package main

import (
	"context"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	productapp "github.com/rewardslab/rewards-backend/application/product"
	rewardsapp "github.com/rewardslab/rewards-backend/application/rewards"
	userapp "github.com/rewardslab/rewards-backend/application/user"
	"github.com/rewardslab/rewards-backend/cmd/config"
	paramsRepo "github.com/rewardslab/rewards-backend/repository/params"
	productRepo "github.com/rewardslab/rewards-backend/repository/product"
	storageRepo "github.com/rewardslab/rewards-backend/repository/storage"
	userRepo "github.com/rewardslab/rewards-backend/repository/user"
	workflowRepo "github.com/rewardslab/rewards-backend/repository/workflow"
	"github.com/rewardslab/rewards-backend/transport"
	"github.com/rewardslab/rewards-backend/utils/logger"
	"go.uber.org/zap"
)

// @title REWARDS BACKEND API
// @version 1.0
// @description Rewards and product catalog API
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Aws.Region))
	if err != nil {
		logger.Fatal("err load aws config", zap.Error(err))
	}

	dynamoClient := dynamodb.NewFromConfig(awsCfg)
	s3Client := s3.NewFromConfig(awsCfg)
	ssmClient := ssm.NewFromConfig(awsCfg)
	sfnClient := sfn.NewFromConfig(awsCfg)

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(dynamoClient, cfg.Aws.ProductsTable, cfg.Aws.PriceIndex)
	UserRepo := userRepo.NewUserRepository(dynamoClient, cfg.Aws.UsersTable, cfg.Aws.UsersTablePK)
	PicturesRepo := storageRepo.NewStorageRepository(s3Client, cfg.Aws.PicturesBucket)
	UploadsRepo := storageRepo.NewStorageRepository(s3Client, cfg.Aws.UploadsBucket)
	ParamsRepo := paramsRepo.NewParamsRepository(ssmClient)
	WorkflowRepo := workflowRepo.NewWorkflowRepository(sfnClient, cfg.Aws.StateMachineArn)

	// Initialize application layers
	ProductApp := productapp.NewProductApp(cfg, ProductRepo, PicturesRepo)
	UserApp := userapp.NewUserApp(cfg, UserRepo, UploadsRepo, WorkflowRepo)
	RewardsApp := rewardsapp.NewRewardsApp(cfg, ParamsRepo, UserRepo)

	httpTransport := transport.NewTransport(cfg, ProductApp, UserApp, RewardsApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
