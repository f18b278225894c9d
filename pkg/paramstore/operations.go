package paramstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/systmms/paramstore/internal/logging"
)

// Get fetches a parameter from the active group. A missing parameter is
// an absent result (nil, nil), not an error.
func (s *Store) Get(ctx context.Context, name string) (*Record, error) {
	leaf, full, err := s.resolveName(name)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, leaf, full)
}

// GetValue fetches just the value of a parameter. The second return is
// false when the parameter does not exist.
func (s *Store) GetValue(ctx context.Context, name string) (string, bool, error) {
	record, err := s.Get(ctx, name)
	if err != nil {
		return "", false, err
	}
	if record == nil {
		return "", false, nil
	}
	return record.Value, true, nil
}

// Create stores a new parameter in the active group. It never
// overwrites: an existing parameter yields AlreadyExistsError.
func (s *Store) Create(ctx context.Context, name, value string, opts ...WriteOption) (*Record, error) {
	leaf, full, err := s.resolveName(name)
	if err != nil {
		return nil, err
	}
	return s.put(ctx, false, leaf, full, value, newWriteConfig(opts))
}

// Update overwrites an existing parameter in the active group. It never
// creates: a preliminary Get guards the write, and an absent parameter
// yields NotFoundError without anything being written.
func (s *Store) Update(ctx context.Context, name, value string, opts ...WriteOption) (*Record, error) {
	leaf, full, err := s.resolveName(name)
	if err != nil {
		return nil, err
	}

	wc := newWriteConfig(opts)
	if len(wc.tags) > 0 {
		return nil, TagsWithOverwriteError{Parameter: leaf}
	}

	existing, err := s.fetch(ctx, leaf, full)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NotFoundError{Parameter: leaf, Group: s.group.String()}
	}

	return s.put(ctx, true, leaf, full, value, wc)
}

// Upsert stores a parameter unconditionally: it creates an absent one
// and overwrites a present one, with no preliminary existence check.
func (s *Store) Upsert(ctx context.Context, name, value string, opts ...WriteOption) (*Record, error) {
	leaf, full, err := s.resolveName(name)
	if err != nil {
		return nil, err
	}
	return s.put(ctx, true, leaf, full, value, newWriteConfig(opts))
}

// ListGroup returns all parameters under the active group as a leaf
// name to value mapping. With recursive set, nested groups are included
// and their leaf names keep the intermediate path. The empty group
// lists from the root and returns keys in their absolute form.
func (s *Store) ListGroup(ctx context.Context, recursive bool) (map[string]string, error) {
	prefix := s.group.String()
	if prefix == "" {
		prefix = "/"
	}

	s.logger.Debug("listing parameters under %s (recursive=%v)", prefix, recursive)

	input := &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(recursive),
		WithDecryption: aws.Bool(true),
	}

	values := make(map[string]string)
	for {
		out, err := s.client.GetParametersByPath(ctx, input)
		if err != nil {
			return nil, backendError("list parameters under "+prefix, err)
		}
		for _, p := range out.Parameters {
			values[s.group.Strip(aws.ToString(p.Name))] = aws.ToString(p.Value)
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}

	return values, nil
}

func (s *Store) fetch(ctx context.Context, leaf, full string) (*Record, error) {
	s.logger.Debug("getting parameter %s", full)

	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(full),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, backendError("get parameter "+full, err)
	}
	if out.Parameter == nil {
		return nil, nil
	}

	return recordFromParameter(leaf, out.Parameter), nil
}

func (s *Store) put(ctx context.Context, overwrite bool, leaf, full, value string, wc writeConfig) (*Record, error) {
	if overwrite && len(wc.tags) > 0 {
		return nil, TagsWithOverwriteError{Parameter: leaf}
	}

	input := &ssm.PutParameterInput{
		Name:      aws.String(full),
		Value:     aws.String(value),
		Type:      ssmtypes.ParameterType(wc.typ),
		Tier:      ssmtypes.ParameterTier(wc.tier),
		Overwrite: aws.Bool(overwrite),
	}
	if wc.description != "" {
		input.Description = aws.String(wc.description)
	}
	if wc.keyID != "" {
		input.KeyId = aws.String(wc.keyID)
	}
	for _, tag := range wc.tags {
		input.Tags = append(input.Tags, ssmtypes.Tag{
			Key:   aws.String(tag.Key),
			Value: aws.String(tag.Value),
		})
	}

	s.logger.Debug("putting parameter %s (overwrite=%v) value=%s", full, overwrite, logging.Secret(value))

	out, err := s.client.PutParameter(ctx, input)
	if err != nil {
		if isAlreadyExists(err) {
			return nil, AlreadyExistsError{Parameter: leaf, Group: s.group.String()}
		}
		return nil, backendError("put parameter "+full, err)
	}

	tier := Tier(out.Tier)
	if tier == "" {
		tier = wc.tier
	}

	return &Record{
		Name:        leaf,
		FullName:    full,
		Value:       value,
		Type:        wc.typ,
		Tier:        tier,
		Description: wc.description,
		Version:     out.Version,
	}, nil
}
