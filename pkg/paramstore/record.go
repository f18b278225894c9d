package paramstore

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// Type is the parameter's value kind.
type Type string

const (
	// TypeString is a plain text value.
	TypeString Type = "String"
	// TypeStringList is a comma-delimited list value.
	TypeStringList Type = "StringList"
	// TypeSecureString is encrypted at rest with a KMS key.
	TypeSecureString Type = "SecureString"
)

// Tier is the parameter's storage class. Standard parameters hold up to
// 4 KB, advanced parameters up to 8 KB.
type Tier string

const (
	// TierStandard is the free tier with a 4 KB value limit.
	TierStandard Tier = "Standard"
	// TierAdvanced raises the value limit to 8 KB.
	TierAdvanced Tier = "Advanced"
)

// Tag is a key/value label attached to a parameter at creation time.
type Tag struct {
	Key   string
	Value string
}

// Record is a stored parameter. It unifies the read shape (Get) and the
// write shape (Create/Update/Upsert): reads populate everything the
// backend returns, writes populate what was sent plus the version and
// tier the backend assigned.
type Record struct {
	// Name is the leaf name within the active group.
	Name string

	// FullName is the backend's actual lookup key (group + name).
	FullName string

	// Value is the stored value, decrypted for SecureString reads.
	Value string

	Type        Type
	Tier        Tier
	Description string

	// Version increases by one on every successful write.
	Version int64

	// DataType and ARN are only populated on reads.
	DataType string
	ARN      string

	LastModified time.Time
}

func recordFromParameter(leaf string, p *ssmtypes.Parameter) *Record {
	if p == nil {
		return nil
	}
	r := &Record{
		Name:     leaf,
		FullName: aws.ToString(p.Name),
		Value:    aws.ToString(p.Value),
		Type:     Type(p.Type),
		Version:  p.Version,
		DataType: aws.ToString(p.DataType),
		ARN:      aws.ToString(p.ARN),
	}
	if p.LastModifiedDate != nil {
		r.LastModified = *p.LastModifiedDate
	}
	return r
}

// writeConfig collects the optional attributes of a write.
type writeConfig struct {
	typ         Type
	tier        Tier
	description string
	keyID       string
	tags        []Tag
}

// WriteOption configures the optional attributes of Create, Update and
// Upsert.
type WriteOption func(*writeConfig)

// WithType sets the parameter type. Default: TypeString.
func WithType(t Type) WriteOption {
	return func(wc *writeConfig) {
		wc.typ = t
	}
}

// WithTier sets the storage tier. Default: TierStandard.
func WithTier(t Tier) WriteOption {
	return func(wc *writeConfig) {
		wc.tier = t
	}
}

// WithDescription sets the parameter description.
func WithDescription(description string) WriteOption {
	return func(wc *writeConfig) {
		wc.description = description
	}
}

// WithEncryptionKey sets the KMS key id for SecureString parameters.
// When unset, the backend uses the account default key.
func WithEncryptionKey(keyID string) WriteOption {
	return func(wc *writeConfig) {
		wc.keyID = keyID
	}
}

// WithTags attaches tags to the parameter. Only valid on Create: the
// backend rejects tags combined with an overwriting write, so Update
// and Upsert refuse them before issuing any call.
func WithTags(tags ...Tag) WriteOption {
	return func(wc *writeConfig) {
		wc.tags = append(wc.tags, tags...)
	}
}

func newWriteConfig(opts []WriteOption) writeConfig {
	wc := writeConfig{
		typ:  TypeString,
		tier: TierStandard,
	}
	for _, opt := range opts {
		opt(&wc)
	}
	return wc
}
