package params

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// SSMAPI is the slice of the SSM client this repository uses.
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SSM struct {
	client SSMAPI
}

type ParamsRepository interface {
	Get(ctx context.Context, name string, decrypt bool) (string, error)
}

func NewParamsRepository(client SSMAPI) ParamsRepository {
	return &SSM{client: client}
}

func (r *SSM) Get(ctx context.Context, name string, decrypt bool) (string, error) {
	out, err := r.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(decrypt),
	})
	if err != nil {
		return "", err
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", nil
	}
	return *out.Parameter.Value, nil
}
