// Package fakes provides in-memory fakes of the AWS SDK surface the
// paramstore library consumes, for use in unit tests.
package fakes

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
)

// ParameterData holds the data for a fake SSM parameter
type ParameterData struct {
	Name             *string
	Type             ssmtypes.ParameterType
	Value            *string
	Version          int64
	LastModifiedDate *time.Time
	ARN              *string
	DataType         *string
	Tier             ssmtypes.ParameterTier
	Description      *string
	KeyID            *string
	Tags             []ssmtypes.Tag
}

// FakeSSMClient is an in-memory implementation of the SSM client subset
// used by paramstore.Store: GetParameter, PutParameter and
// GetParametersByPath, with the backend's real existence and
// tags-with-overwrite semantics.
type FakeSSMClient struct {
	// Parameters maps full parameter names to their data
	Parameters map[string]*ParameterData
	// Errors maps parameter names to errors to return
	Errors map[string]error
	// Calls records every operation as "<op> <name>" in call order
	Calls []string
	// PageSize limits GetParametersByPath pages; 0 means everything in one page
	PageSize int

	// GetParameterFunc allows custom behavior for GetParameter
	GetParameterFunc func(ctx context.Context, params *ssm.GetParameterInput) (*ssm.GetParameterOutput, error)
	// PutParameterFunc allows custom behavior for PutParameter
	PutParameterFunc func(ctx context.Context, params *ssm.PutParameterInput) (*ssm.PutParameterOutput, error)
	// GetParametersByPathFunc allows custom behavior for GetParametersByPath
	GetParametersByPathFunc func(ctx context.Context, params *ssm.GetParametersByPathInput) (*ssm.GetParametersByPathOutput, error)
}

// NewFakeSSMClient creates a new fake SSM client
func NewFakeSSMClient() *FakeSSMClient {
	return &FakeSSMClient{
		Parameters: make(map[string]*ParameterData),
		Errors:     make(map[string]error),
	}
}

// AddStringParameter adds a String parameter to the fake
func (f *FakeSSMClient) AddStringParameter(name, value string) {
	now := time.Now()
	f.Parameters[name] = &ParameterData{
		Name:             aws.String(name),
		Type:             ssmtypes.ParameterTypeString,
		Value:            aws.String(value),
		Version:          1,
		LastModifiedDate: &now,
		ARN:              aws.String(fmt.Sprintf("arn:aws:ssm:us-east-1:123456789012:parameter%s", name)),
		DataType:         aws.String("text"),
		Tier:             ssmtypes.ParameterTierStandard,
	}
}

// AddError configures the fake to return an error for a specific parameter
func (f *FakeSSMClient) AddError(name string, err error) {
	f.Errors[name] = err
}

// CallsTo returns how many recorded calls used the given operation name
func (f *FakeSSMClient) CallsTo(op string) int {
	count := 0
	for _, call := range f.Calls {
		if strings.HasPrefix(call, op+" ") {
			count++
		}
	}
	return count
}

// GetParameter fakes the GetParameter operation
func (f *FakeSSMClient) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	if f.GetParameterFunc != nil {
		return f.GetParameterFunc(ctx, params)
	}

	paramName := aws.ToString(params.Name)
	f.Calls = append(f.Calls, "GetParameter "+paramName)

	if err, exists := f.Errors[paramName]; exists {
		return nil, err
	}

	data, exists := f.Parameters[paramName]
	if !exists {
		return nil, &ssmtypes.ParameterNotFound{
			Message: aws.String(fmt.Sprintf("Parameter %s not found", paramName)),
		}
	}

	return &ssm.GetParameterOutput{
		Parameter: &ssmtypes.Parameter{
			Name:             data.Name,
			Type:             data.Type,
			Value:            data.Value,
			Version:          data.Version,
			LastModifiedDate: data.LastModifiedDate,
			ARN:              data.ARN,
			DataType:         data.DataType,
		},
	}, nil
}

// PutParameter fakes the PutParameter operation, including the
// backend's already-exists and tags-with-overwrite rejections
func (f *FakeSSMClient) PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error) {
	if f.PutParameterFunc != nil {
		return f.PutParameterFunc(ctx, params)
	}

	paramName := aws.ToString(params.Name)
	f.Calls = append(f.Calls, "PutParameter "+paramName)

	if err, exists := f.Errors[paramName]; exists {
		return nil, err
	}

	overwrite := aws.ToBool(params.Overwrite)
	if overwrite && len(params.Tags) > 0 {
		return nil, &smithy.GenericAPIError{
			Code:    "ValidationException",
			Message: "Invalid request: tags cannot be combined with Overwrite",
		}
	}

	data, exists := f.Parameters[paramName]
	if exists && !overwrite {
		return nil, &ssmtypes.ParameterAlreadyExists{
			Message: aws.String(fmt.Sprintf("Parameter %s already exists", paramName)),
		}
	}

	now := time.Now()
	version := int64(1)
	if exists {
		version = data.Version + 1
	}

	tier := params.Tier
	if tier == "" {
		tier = ssmtypes.ParameterTierStandard
	}

	f.Parameters[paramName] = &ParameterData{
		Name:             params.Name,
		Type:             params.Type,
		Value:            params.Value,
		Version:          version,
		LastModifiedDate: &now,
		ARN:              aws.String(fmt.Sprintf("arn:aws:ssm:us-east-1:123456789012:parameter%s", paramName)),
		DataType:         aws.String("text"),
		Tier:             tier,
		Description:      params.Description,
		KeyID:            params.KeyId,
		Tags:             params.Tags,
	}

	return &ssm.PutParameterOutput{
		Version: version,
		Tier:    tier,
	}, nil
}

// GetParametersByPath fakes the GetParametersByPath operation with
// prefix filtering, recursion semantics and NextToken pagination
func (f *FakeSSMClient) GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	if f.GetParametersByPathFunc != nil {
		return f.GetParametersByPathFunc(ctx, params)
	}

	prefix := aws.ToString(params.Path)
	f.Calls = append(f.Calls, "GetParametersByPath "+prefix)

	if err, exists := f.Errors[prefix]; exists {
		return nil, err
	}

	recursive := aws.ToBool(params.Recursive)

	var names []string
	for name := range f.Parameters {
		rest, ok := underPath(name, prefix)
		if !ok {
			continue
		}
		if !recursive && strings.Contains(rest, "/") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	start := 0
	if token := aws.ToString(params.NextToken); token != "" {
		parsed, err := strconv.Atoi(token)
		if err != nil {
			return nil, &smithy.GenericAPIError{Code: "InvalidNextToken", Message: "bad token"}
		}
		start = parsed
	}

	end := len(names)
	var nextToken *string
	if f.PageSize > 0 && start+f.PageSize < len(names) {
		end = start + f.PageSize
		nextToken = aws.String(strconv.Itoa(end))
	}

	var page []ssmtypes.Parameter
	for _, name := range names[start:end] {
		data := f.Parameters[name]
		page = append(page, ssmtypes.Parameter{
			Name:             data.Name,
			Type:             data.Type,
			Value:            data.Value,
			Version:          data.Version,
			LastModifiedDate: data.LastModifiedDate,
			ARN:              data.ARN,
			DataType:         data.DataType,
		})
	}

	return &ssm.GetParametersByPathOutput{
		Parameters: page,
		NextToken:  nextToken,
	}, nil
}

// underPath reports whether name sits below the hierarchy prefix and
// returns the remainder after the prefix and its separator.
func underPath(name, prefix string) (string, bool) {
	if prefix == "/" {
		return strings.TrimPrefix(name, "/"), strings.HasPrefix(name, "/")
	}
	if !strings.HasPrefix(name, prefix+"/") {
		return "", false
	}
	return strings.TrimPrefix(name, prefix+"/"), true
}
