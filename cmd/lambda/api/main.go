package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
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

var adapter *httpadapter.HandlerAdapterV2

// init wires the full transport once per cold start; warm invocations reuse it.
func init() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Aws.Region))
	if err != nil {
		logger.Fatal("err load aws config", zap.Error(err))
	}

	dynamoClient := dynamodb.NewFromConfig(awsCfg)
	s3Client := s3.NewFromConfig(awsCfg)
	ssmClient := ssm.NewFromConfig(awsCfg)
	sfnClient := sfn.NewFromConfig(awsCfg)

	ProductRepo := productRepo.NewProductRepository(dynamoClient, cfg.Aws.ProductsTable, cfg.Aws.PriceIndex)
	UserRepo := userRepo.NewUserRepository(dynamoClient, cfg.Aws.UsersTable, cfg.Aws.UsersTablePK)
	PicturesRepo := storageRepo.NewStorageRepository(s3Client, cfg.Aws.PicturesBucket)
	UploadsRepo := storageRepo.NewStorageRepository(s3Client, cfg.Aws.UploadsBucket)
	ParamsRepo := paramsRepo.NewParamsRepository(ssmClient)
	WorkflowRepo := workflowRepo.NewWorkflowRepository(sfnClient, cfg.Aws.StateMachineArn)

	ProductApp := productapp.NewProductApp(cfg, ProductRepo, PicturesRepo)
	UserApp := userapp.NewUserApp(cfg, UserRepo, UploadsRepo, WorkflowRepo)
	RewardsApp := rewardsapp.NewRewardsApp(cfg, ParamsRepo, UserRepo)

	adapter = httpadapter.NewV2(transport.NewTransport(cfg, ProductApp, UserApp, RewardsApp))
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
