package backend

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
)

// RuntimeAPI is the part of the SageMaker runtime client the backend needs.
type RuntimeAPI interface {
	InvokeEndpoint(ctx context.Context, params *sagemakerruntime.InvokeEndpointInput, optFns ...func(*sagemakerruntime.Options)) (*sagemakerruntime.InvokeEndpointOutput, error)
}

// SageMakerBackend calls InvokeEndpoint on a SageMaker (serverless or real-time) endpoint.
type SageMakerBackend struct {
	api RuntimeAPI
}

// NewSageMakerBackend loads AWS credentials from the default chain. An empty region keeps the
// region the chain resolves (AWS_REGION inside Lambda).
func NewSageMakerBackend(ctx context.Context, region string) (*SageMakerBackend, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSageMakerBackendWithAPI(sagemakerruntime.NewFromConfig(awsCfg)), nil
}

func NewSageMakerBackendWithAPI(api RuntimeAPI) *SageMakerBackend {
	return &SageMakerBackend{api: api}
}

// Invoke sends body to the named endpoint. The response body is returned as received.
func (s *SageMakerBackend) Invoke(ctx context.Context, endpoint, contentType string, body []byte) ([]byte, error) {
	out, err := s.api.InvokeEndpoint(ctx, &sagemakerruntime.InvokeEndpointInput{
		EndpointName: aws.String(endpoint),
		ContentType:  aws.String(contentType),
		Body:         body,
	})
	if err != nil {
		return nil, fmt.Errorf("invoke endpoint %s: %w", endpoint, err)
	}
	log.Debugf("Endpoint %s answered with content type %s", endpoint, aws.ToString(out.ContentType))
	return out.Body, nil
}
