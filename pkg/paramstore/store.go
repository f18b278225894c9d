package paramstore

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/systmms/paramstore/internal/logging"
	"github.com/systmms/paramstore/pkg/paramname"
)

// ClientAPI is the subset of the AWS SSM client this layer consumes.
// It exists so tests can inject a fake client.
type ClientAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
	PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error)
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// Store is the parameter operations facade. It holds no mutable state
// beyond its configuration; see the package documentation for the
// concurrency contract.
type Store struct {
	client     ClientAPI
	logger     *logging.Logger
	group      paramname.Group
	cleanNames bool
}

type options struct {
	client     ClientAPI
	group      string
	cleanNames bool
	profile    string
	debug      bool
}

// Option configures a Store at construction time.
type Option func(*options)

// WithClient sets a custom SSM client (for testing).
func WithClient(client ClientAPI) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithGroup sets the initial group prefix. The raw string is normalized
// and validated by New.
func WithGroup(raw string) Option {
	return func(o *options) {
		o.group = raw
	}
}

// WithCleanNames toggles cleaning of parameter names into a pathlike
// form before validation. Enabled by default.
func WithCleanNames(clean bool) Option {
	return func(o *options) {
		o.cleanNames = clean
	}
}

// WithProfile selects a shared AWS config profile for the real client.
// Ignored when WithClient is used.
func WithProfile(profile string) Option {
	return func(o *options) {
		o.profile = profile
	}
}

// WithDebugLogging enables debug logs on stderr. Parameter values are
// always redacted.
func WithDebugLogging(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// New creates a Store for the given region. Unless WithClient injects
// one, the SSM client is built from the default AWS config chain.
func New(ctx context.Context, region string, opts ...Option) (*Store, error) {
	o := options{cleanNames: true}
	for _, opt := range opts {
		opt(&o)
	}

	group, err := paramname.ParseGroup(o.group)
	if err != nil {
		return nil, err
	}

	s := &Store{
		client:     o.client,
		logger:     logging.New(o.debug, false),
		group:      group,
		cleanNames: o.cleanNames,
	}

	if s.client == nil {
		client, err := newSSMClient(ctx, region, o.profile)
		if err != nil {
			return nil, fmt.Errorf("failed to create SSM client: %w", err)
		}
		s.client = client
	}

	return s, nil
}

// newSSMClient builds the real AWS SSM client.
func newSSMClient(ctx context.Context, region, profile string) (*ssm.Client, error) {
	var configOpts []func(*awsconfig.LoadOptions) error

	if region != "" {
		configOpts = append(configOpts, awsconfig.WithRegion(region))
	}
	if profile != "" {
		configOpts = append(configOpts, awsconfig.WithSharedConfigProfile(profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return ssm.NewFromConfig(cfg), nil
}

// SetGroup switches the Store to a different group. The empty string
// clears the prefix. An invalid group leaves the current one in place.
func (s *Store) SetGroup(raw string) error {
	group, err := paramname.ParseGroup(raw)
	if err != nil {
		return err
	}
	s.group = group
	return nil
}

// Group returns the normalized active group, "" when none is set.
func (s *Store) Group() string {
	return s.group.String()
}

// resolveName cleans (when configured) and validates a raw parameter
// name, returning the leaf name and the full backend key. Cleaning runs
// first so the cleaned form is what gets validated and sent.
func (s *Store) resolveName(name string) (leaf, full string, err error) {
	if s.cleanNames {
		cleaned, err := paramname.Clean(name)
		if err != nil {
			return "", "", err
		}
		if err := paramname.ValidatePath(cleaned); err != nil {
			return "", "", err
		}
		return cleaned, s.group.Join(cleaned), nil
	}

	if err := paramname.Validate(name); err != nil {
		return "", "", err
	}
	return name, s.group.Join(name), nil
}
