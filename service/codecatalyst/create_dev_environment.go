package codecatalyst

import (
	"github.com/aws/smithy-go/ptr"

	"github.com/reoring/sdkmodel"
)

// CreateDevEnvironmentRequest creates a dev environment in a project.
type CreateDevEnvironmentRequest struct {
	sdkmodel.RequestEnvelope
	spaceName                *string
	projectName              *string
	repositories             sdkmodel.List[*RepositoryInput]
	clientToken              *string
	alias                    *string
	ides                     sdkmodel.List[*IdeConfiguration]
	instanceType             *string
	inactivityTimeoutMinutes *int32
	persistentStorage        *PersistentStorageConfiguration
	vpcConnectionName        *string
}

var createDevEnvironmentRequestSchema = sdkmodel.MustSchema("CreateDevEnvironmentRequest", sdkmodel.KindRequest,
	sdkmodel.StringField("spaceName",
		func(r *CreateDevEnvironmentRequest) *string { return r.spaceName },
		(*CreateDevEnvironmentRequestBuilder).SpaceName,
		sdkmodel.Path("spaceName")),
	sdkmodel.StringField("projectName",
		func(r *CreateDevEnvironmentRequest) *string { return r.projectName },
		(*CreateDevEnvironmentRequestBuilder).ProjectName,
		sdkmodel.Path("projectName")),
	sdkmodel.ListField("repositories",
		func(r *CreateDevEnvironmentRequest) sdkmodel.List[*RepositoryInput] { return r.repositories },
		(*CreateDevEnvironmentRequestBuilder).Repositories,
		sdkmodel.Payload("repositories"), sdkmodel.ListOfStructures(newRepositoryInputBuilder)),
	sdkmodel.StringField("clientToken",
		func(r *CreateDevEnvironmentRequest) *string { return r.clientToken },
		(*CreateDevEnvironmentRequestBuilder).ClientToken,
		sdkmodel.Payload("clientToken")),
	sdkmodel.StringField("alias",
		func(r *CreateDevEnvironmentRequest) *string { return r.alias },
		(*CreateDevEnvironmentRequestBuilder).Alias,
		sdkmodel.Payload("alias")),
	sdkmodel.ListField("ides",
		func(r *CreateDevEnvironmentRequest) sdkmodel.List[*IdeConfiguration] { return r.ides },
		(*CreateDevEnvironmentRequestBuilder).Ides,
		sdkmodel.Payload("ides"), sdkmodel.ListOfStructures(newIdeConfigurationBuilder)),
	sdkmodel.StringField("instanceType",
		func(r *CreateDevEnvironmentRequest) *string { return r.instanceType },
		(*CreateDevEnvironmentRequestBuilder).InstanceTypeRaw,
		sdkmodel.Payload("instanceType")),
	sdkmodel.IntegerField("inactivityTimeoutMinutes",
		func(r *CreateDevEnvironmentRequest) *int32 { return r.inactivityTimeoutMinutes },
		(*CreateDevEnvironmentRequestBuilder).InactivityTimeoutMinutes,
		sdkmodel.Payload("inactivityTimeoutMinutes")),
	sdkmodel.StructureField("persistentStorage",
		func(r *CreateDevEnvironmentRequest) *PersistentStorageConfiguration { return r.persistentStorage },
		(*CreateDevEnvironmentRequestBuilder).PersistentStorage,
		newPersistentStorageConfigurationBuilder,
		sdkmodel.Payload("persistentStorage")),
	sdkmodel.StringField("vpcConnectionName",
		func(r *CreateDevEnvironmentRequest) *string { return r.vpcConnectionName },
		(*CreateDevEnvironmentRequestBuilder).VpcConnectionName,
		sdkmodel.Payload("vpcConnectionName")),
)

func newRepositoryInputBuilder() sdkmodel.AnyBuilder { return NewRepositoryInputBuilder() }

func (r *CreateDevEnvironmentRequest) SpaceName() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.spaceName)
}

func (r *CreateDevEnvironmentRequest) ProjectName() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.projectName)
}

// Repositories is never nil; an unset list is the auto-construct sentinel.
func (r *CreateDevEnvironmentRequest) Repositories() sdkmodel.List[*RepositoryInput] {
	if r == nil || r.repositories == nil {
		return sdkmodel.AutoConstructList[*RepositoryInput]()
	}
	return r.repositories
}

// HasRepositories reports whether the caller set Repositories, even to an
// empty list.
func (r *CreateDevEnvironmentRequest) HasRepositories() bool {
	return r != nil && r.repositories != nil && !r.repositories.AutoConstruct()
}

func (r *CreateDevEnvironmentRequest) ClientToken() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.clientToken)
}

func (r *CreateDevEnvironmentRequest) Alias() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.alias)
}

func (r *CreateDevEnvironmentRequest) Ides() sdkmodel.List[*IdeConfiguration] {
	if r == nil || r.ides == nil {
		return sdkmodel.AutoConstructList[*IdeConfiguration]()
	}
	return r.ides
}

func (r *CreateDevEnvironmentRequest) HasIdes() bool {
	return r != nil && r.ides != nil && !r.ides.AutoConstruct()
}

func (r *CreateDevEnvironmentRequest) InstanceType() *InstanceType {
	if r == nil {
		return nil
	}
	return InstanceTypeFromValue(r.instanceType)
}

func (r *CreateDevEnvironmentRequest) InstanceTypeAsString() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.instanceType)
}

func (r *CreateDevEnvironmentRequest) InactivityTimeoutMinutes() *int32 {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.inactivityTimeoutMinutes)
}

func (r *CreateDevEnvironmentRequest) PersistentStorage() *PersistentStorageConfiguration {
	if r == nil {
		return nil
	}
	return r.persistentStorage
}

func (r *CreateDevEnvironmentRequest) VpcConnectionName() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.vpcConnectionName)
}

func (r *CreateDevEnvironmentRequest) Schema() sdkmodel.SchemaInfo {
	return createDevEnvironmentRequestSchema
}
func (r *CreateDevEnvironmentRequest) Equal(other any) bool {
	return createDevEnvironmentRequestSchema.Equal(r, other)
}
func (r *CreateDevEnvironmentRequest) HashCode() uint64 {
	return createDevEnvironmentRequestSchema.Hash(r)
}
func (r *CreateDevEnvironmentRequest) String() string {
	return createDevEnvironmentRequestSchema.String(r)
}

func (r *CreateDevEnvironmentRequest) ToBuilder() *CreateDevEnvironmentRequestBuilder {
	if r == nil {
		return NewCreateDevEnvironmentRequestBuilder()
	}
	return &CreateDevEnvironmentRequestBuilder{
		RequestEnvelopeBuilder:   r.EnvelopeBuilder(),
		spaceName:                sdkmodel.ClonePtr(r.spaceName),
		projectName:              sdkmodel.ClonePtr(r.projectName),
		repositories:             r.Repositories().Slice(),
		clientToken:              sdkmodel.ClonePtr(r.clientToken),
		alias:                    sdkmodel.ClonePtr(r.alias),
		ides:                     r.Ides().Slice(),
		instanceType:             sdkmodel.ClonePtr(r.instanceType),
		inactivityTimeoutMinutes: sdkmodel.ClonePtr(r.inactivityTimeoutMinutes),
		persistentStorage:        r.persistentStorage,
		vpcConnectionName:        sdkmodel.ClonePtr(r.vpcConnectionName),
	}
}

type CreateDevEnvironmentRequestBuilder struct {
	sdkmodel.RequestEnvelopeBuilder
	spaceName                *string
	projectName              *string
	repositories             []*RepositoryInput
	clientToken              *string
	alias                    *string
	ides                     []*IdeConfiguration
	instanceType             *string
	inactivityTimeoutMinutes *int32
	persistentStorage        *PersistentStorageConfiguration
	vpcConnectionName        *string
}

var _ sdkmodel.Builder[*CreateDevEnvironmentRequest] = (*CreateDevEnvironmentRequestBuilder)(nil)

func NewCreateDevEnvironmentRequestBuilder() *CreateDevEnvironmentRequestBuilder {
	return &CreateDevEnvironmentRequestBuilder{}
}

func (b *CreateDevEnvironmentRequestBuilder) SpaceName(v *string) *CreateDevEnvironmentRequestBuilder {
	b.spaceName = v
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) ProjectName(v *string) *CreateDevEnvironmentRequestBuilder {
	b.projectName = v
	return b
}

// Repositories sets the repositories to clone. A nil slice leaves the field
// unset; an empty one sends an empty list.
func (b *CreateDevEnvironmentRequestBuilder) Repositories(v []*RepositoryInput) *CreateDevEnvironmentRequestBuilder {
	b.repositories = v
	return b
}

// RepositoryBuilders builds each element; nil builders become nil entries.
func (b *CreateDevEnvironmentRequestBuilder) RepositoryBuilders(v []*RepositoryInputBuilder) *CreateDevEnvironmentRequestBuilder {
	b.repositories = repositoryInputListCopier.CopyFromBuilder(v).Slice()
	return b
}

// RepositoriesToBuilders returns a builder for each repository set so far.
func (b *CreateDevEnvironmentRequestBuilder) RepositoriesToBuilders() []*RepositoryInputBuilder {
	return repositoryInputListCopier.CopyToBuilder(repositoryInputListCopier.Copy(b.repositories))
}

func (b *CreateDevEnvironmentRequestBuilder) ClientToken(v *string) *CreateDevEnvironmentRequestBuilder {
	b.clientToken = v
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) Alias(v *string) *CreateDevEnvironmentRequestBuilder {
	b.alias = v
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) Ides(v []*IdeConfiguration) *CreateDevEnvironmentRequestBuilder {
	b.ides = v
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) IdeBuilders(v []*IdeConfigurationBuilder) *CreateDevEnvironmentRequestBuilder {
	b.ides = ideConfigurationListCopier.CopyFromBuilder(v).Slice()
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) InstanceType(v InstanceType) *CreateDevEnvironmentRequestBuilder {
	b.instanceType = enumPtr(v)
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) InstanceTypeRaw(v *string) *CreateDevEnvironmentRequestBuilder {
	b.instanceType = v
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) InactivityTimeoutMinutes(v *int32) *CreateDevEnvironmentRequestBuilder {
	b.inactivityTimeoutMinutes = v
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) PersistentStorage(v *PersistentStorageConfiguration) *CreateDevEnvironmentRequestBuilder {
	b.persistentStorage = v
	return b
}

// PersistentStorageSizeInGiB is shorthand for a PersistentStorage holding
// only a size.
func (b *CreateDevEnvironmentRequestBuilder) PersistentStorageSizeInGiB(size int32) *CreateDevEnvironmentRequestBuilder {
	b.persistentStorage = NewPersistentStorageConfigurationBuilder().SizeInGiB(ptr.Int32(size)).Build()
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) VpcConnectionName(v *string) *CreateDevEnvironmentRequestBuilder {
	b.vpcConnectionName = v
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) OverrideConfiguration(c *sdkmodel.OverrideConfiguration) *CreateDevEnvironmentRequestBuilder {
	b.SetOverrideConfiguration(c)
	return b
}

func (b *CreateDevEnvironmentRequestBuilder) Schema() sdkmodel.SchemaInfo {
	return createDevEnvironmentRequestSchema
}
func (b *CreateDevEnvironmentRequestBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *CreateDevEnvironmentRequestBuilder) Build() *CreateDevEnvironmentRequest {
	return &CreateDevEnvironmentRequest{
		RequestEnvelope:          b.BuildEnvelope(),
		spaceName:                sdkmodel.ClonePtr(b.spaceName),
		projectName:              sdkmodel.ClonePtr(b.projectName),
		repositories:             repositoryInputListCopier.Copy(b.repositories),
		clientToken:              sdkmodel.ClonePtr(b.clientToken),
		alias:                    sdkmodel.ClonePtr(b.alias),
		ides:                     ideConfigurationListCopier.Copy(b.ides),
		instanceType:             sdkmodel.ClonePtr(b.instanceType),
		inactivityTimeoutMinutes: sdkmodel.ClonePtr(b.inactivityTimeoutMinutes),
		persistentStorage:        b.persistentStorage,
		vpcConnectionName:        sdkmodel.ClonePtr(b.vpcConnectionName),
	}
}
