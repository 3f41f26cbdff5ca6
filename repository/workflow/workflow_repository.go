package workflow

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
)

// SFNAPI is the slice of the Step Functions client this repository uses.
type SFNAPI interface {
	StartExecution(ctx context.Context, params *sfn.StartExecutionInput, optFns ...func(*sfn.Options)) (*sfn.StartExecutionOutput, error)
}

type StepFunctions struct {
	client          SFNAPI
	stateMachineArn string
}

type WorkflowRepository interface {
	Start(ctx context.Context, name string, input any) (string, error)
}

func NewWorkflowRepository(client SFNAPI, stateMachineArn string) WorkflowRepository {
	return &StepFunctions{client: client, stateMachineArn: stateMachineArn}
}

func (r *StepFunctions) Start(ctx context.Context, name string, input any) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", err
	}

	out, err := r.client.StartExecution(ctx, &sfn.StartExecutionInput{
		StateMachineArn: aws.String(r.stateMachineArn),
		Name:            aws.String(name),
		Input:           aws.String(string(payload)),
	})
	if err != nil {
		return "", err
	}
	if out.ExecutionArn == nil {
		return "", nil
	}
	return *out.ExecutionArn, nil
}
