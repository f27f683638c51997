package codecatalyst

import (
	"time"

	"github.com/reoring/sdkmodel"
)

// RepositoryInput names a source repository and branch to clone into a dev
// environment.
type RepositoryInput struct {
	repositoryName *string
	branchName     *string
}

var repositoryInputSchema = sdkmodel.MustSchema("RepositoryInput", sdkmodel.KindStructure,
	sdkmodel.StringField("repositoryName",
		func(r *RepositoryInput) *string { return r.repositoryName },
		(*RepositoryInputBuilder).RepositoryName,
		sdkmodel.Payload("repositoryName")),
	sdkmodel.StringField("branchName",
		func(r *RepositoryInput) *string { return r.branchName },
		(*RepositoryInputBuilder).BranchName,
		sdkmodel.Payload("branchName")),
)

func (r *RepositoryInput) RepositoryName() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.repositoryName)
}

func (r *RepositoryInput) BranchName() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.branchName)
}

func (r *RepositoryInput) Schema() sdkmodel.SchemaInfo { return repositoryInputSchema }
func (r *RepositoryInput) Equal(other any) bool        { return repositoryInputSchema.Equal(r, other) }
func (r *RepositoryInput) HashCode() uint64            { return repositoryInputSchema.Hash(r) }
func (r *RepositoryInput) String() string              { return repositoryInputSchema.String(r) }

func (r *RepositoryInput) ToBuilder() *RepositoryInputBuilder {
	if r == nil {
		return NewRepositoryInputBuilder()
	}
	return &RepositoryInputBuilder{
		repositoryName: sdkmodel.ClonePtr(r.repositoryName),
		branchName:     sdkmodel.ClonePtr(r.branchName),
	}
}

type RepositoryInputBuilder struct {
	repositoryName *string
	branchName     *string
}

var _ sdkmodel.Builder[*RepositoryInput] = (*RepositoryInputBuilder)(nil)

func NewRepositoryInputBuilder() *RepositoryInputBuilder { return &RepositoryInputBuilder{} }

func (b *RepositoryInputBuilder) RepositoryName(v *string) *RepositoryInputBuilder {
	b.repositoryName = v
	return b
}

func (b *RepositoryInputBuilder) BranchName(v *string) *RepositoryInputBuilder {
	b.branchName = v
	return b
}

func (b *RepositoryInputBuilder) Schema() sdkmodel.SchemaInfo  { return repositoryInputSchema }
func (b *RepositoryInputBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *RepositoryInputBuilder) Build() *RepositoryInput {
	return &RepositoryInput{
		repositoryName: sdkmodel.ClonePtr(b.repositoryName),
		branchName:     sdkmodel.ClonePtr(b.branchName),
	}
}

var repositoryInputListCopier = sdkmodel.StructListCopier[RepositoryInput, RepositoryInputBuilder]{
	Build:     (*RepositoryInputBuilder).Build,
	ToBuilder: (*RepositoryInput).ToBuilder,
}

// IdeConfiguration selects an IDE and its runtime image.
type IdeConfiguration struct {
	runtime *string
	name    *string
}

var ideConfigurationSchema = sdkmodel.MustSchema("IdeConfiguration", sdkmodel.KindStructure,
	sdkmodel.StringField("runtime",
		func(r *IdeConfiguration) *string { return r.runtime },
		(*IdeConfigurationBuilder).Runtime,
		sdkmodel.Payload("runtime")),
	sdkmodel.StringField("name",
		func(r *IdeConfiguration) *string { return r.name },
		(*IdeConfigurationBuilder).Name,
		sdkmodel.Payload("name")),
)

func (r *IdeConfiguration) Runtime() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.runtime)
}

func (r *IdeConfiguration) Name() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.name)
}

func (r *IdeConfiguration) Schema() sdkmodel.SchemaInfo { return ideConfigurationSchema }
func (r *IdeConfiguration) Equal(other any) bool        { return ideConfigurationSchema.Equal(r, other) }
func (r *IdeConfiguration) HashCode() uint64            { return ideConfigurationSchema.Hash(r) }
func (r *IdeConfiguration) String() string              { return ideConfigurationSchema.String(r) }

func (r *IdeConfiguration) ToBuilder() *IdeConfigurationBuilder {
	if r == nil {
		return NewIdeConfigurationBuilder()
	}
	return &IdeConfigurationBuilder{runtime: sdkmodel.ClonePtr(r.runtime), name: sdkmodel.ClonePtr(r.name)}
}

type IdeConfigurationBuilder struct {
	runtime *string
	name    *string
}

var _ sdkmodel.Builder[*IdeConfiguration] = (*IdeConfigurationBuilder)(nil)

func NewIdeConfigurationBuilder() *IdeConfigurationBuilder { return &IdeConfigurationBuilder{} }

func (b *IdeConfigurationBuilder) Runtime(v *string) *IdeConfigurationBuilder {
	b.runtime = v
	return b
}

func (b *IdeConfigurationBuilder) Name(v *string) *IdeConfigurationBuilder {
	b.name = v
	return b
}

func (b *IdeConfigurationBuilder) Schema() sdkmodel.SchemaInfo  { return ideConfigurationSchema }
func (b *IdeConfigurationBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *IdeConfigurationBuilder) Build() *IdeConfiguration {
	return &IdeConfiguration{runtime: sdkmodel.ClonePtr(b.runtime), name: sdkmodel.ClonePtr(b.name)}
}

var ideConfigurationListCopier = sdkmodel.StructListCopier[IdeConfiguration, IdeConfigurationBuilder]{
	Build:     (*IdeConfigurationBuilder).Build,
	ToBuilder: (*IdeConfiguration).ToBuilder,
}

// PersistentStorageConfiguration sizes the persistent home volume.
type PersistentStorageConfiguration struct {
	sizeInGiB *int32
}

var persistentStorageConfigurationSchema = sdkmodel.MustSchema("PersistentStorageConfiguration", sdkmodel.KindStructure,
	sdkmodel.IntegerField("sizeInGiB",
		func(r *PersistentStorageConfiguration) *int32 { return r.sizeInGiB },
		(*PersistentStorageConfigurationBuilder).SizeInGiB,
		sdkmodel.Payload("sizeInGiB")),
)

func (r *PersistentStorageConfiguration) SizeInGiB() *int32 {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.sizeInGiB)
}

func (r *PersistentStorageConfiguration) Schema() sdkmodel.SchemaInfo {
	return persistentStorageConfigurationSchema
}
func (r *PersistentStorageConfiguration) Equal(other any) bool {
	return persistentStorageConfigurationSchema.Equal(r, other)
}
func (r *PersistentStorageConfiguration) HashCode() uint64 {
	return persistentStorageConfigurationSchema.Hash(r)
}
func (r *PersistentStorageConfiguration) String() string {
	return persistentStorageConfigurationSchema.String(r)
}

func (r *PersistentStorageConfiguration) ToBuilder() *PersistentStorageConfigurationBuilder {
	if r == nil {
		return NewPersistentStorageConfigurationBuilder()
	}
	return &PersistentStorageConfigurationBuilder{sizeInGiB: sdkmodel.ClonePtr(r.sizeInGiB)}
}

type PersistentStorageConfigurationBuilder struct {
	sizeInGiB *int32
}

var _ sdkmodel.Builder[*PersistentStorageConfiguration] = (*PersistentStorageConfigurationBuilder)(nil)

func NewPersistentStorageConfigurationBuilder() *PersistentStorageConfigurationBuilder {
	return &PersistentStorageConfigurationBuilder{}
}

func (b *PersistentStorageConfigurationBuilder) SizeInGiB(v *int32) *PersistentStorageConfigurationBuilder {
	b.sizeInGiB = v
	return b
}

func (b *PersistentStorageConfigurationBuilder) Schema() sdkmodel.SchemaInfo {
	return persistentStorageConfigurationSchema
}
func (b *PersistentStorageConfigurationBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *PersistentStorageConfigurationBuilder) Build() *PersistentStorageConfiguration {
	return &PersistentStorageConfiguration{sizeInGiB: sdkmodel.ClonePtr(b.sizeInGiB)}
}

// Filter narrows ListDevEnvironments results.
type Filter struct {
	key                *string
	values             sdkmodel.List[string]
	comparisonOperator *string
}

var filterSchema = sdkmodel.MustSchema("Filter", sdkmodel.KindStructure,
	sdkmodel.StringField("key",
		func(r *Filter) *string { return r.key },
		(*FilterBuilder).Key,
		sdkmodel.Payload("key")),
	sdkmodel.ListField("values",
		func(r *Filter) sdkmodel.List[string] { return r.values },
		(*FilterBuilder).Values,
		sdkmodel.Payload("values"), sdkmodel.ListOfMembers(sdkmodel.MarshallingString)),
	sdkmodel.StringField("comparisonOperator",
		func(r *Filter) *string { return r.comparisonOperator },
		(*FilterBuilder).ComparisonOperator,
		sdkmodel.Payload("comparisonOperator")),
)

func (r *Filter) Key() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.key)
}

// Values is never nil; an unset list is the auto-construct sentinel.
func (r *Filter) Values() sdkmodel.List[string] {
	if r == nil || r.values == nil {
		return sdkmodel.AutoConstructList[string]()
	}
	return r.values
}

func (r *Filter) HasValues() bool { return r != nil && r.values != nil && !r.values.AutoConstruct() }

func (r *Filter) ComparisonOperator() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.comparisonOperator)
}

func (r *Filter) Schema() sdkmodel.SchemaInfo { return filterSchema }
func (r *Filter) Equal(other any) bool        { return filterSchema.Equal(r, other) }
func (r *Filter) HashCode() uint64            { return filterSchema.Hash(r) }
func (r *Filter) String() string              { return filterSchema.String(r) }

func (r *Filter) ToBuilder() *FilterBuilder {
	if r == nil {
		return NewFilterBuilder()
	}
	return &FilterBuilder{
		key:                sdkmodel.ClonePtr(r.key),
		values:             r.Values().Slice(),
		comparisonOperator: sdkmodel.ClonePtr(r.comparisonOperator),
	}
}

type FilterBuilder struct {
	key                *string
	values             []string
	comparisonOperator *string
}

var _ sdkmodel.Builder[*Filter] = (*FilterBuilder)(nil)

func NewFilterBuilder() *FilterBuilder { return &FilterBuilder{} }

func (b *FilterBuilder) Key(v *string) *FilterBuilder {
	b.key = v
	return b
}

// Values sets the values to match. A nil slice leaves the field unset; an
// empty one sends an empty list.
func (b *FilterBuilder) Values(v []string) *FilterBuilder {
	b.values = v
	return b
}

func (b *FilterBuilder) ComparisonOperator(v *string) *FilterBuilder {
	b.comparisonOperator = v
	return b
}

func (b *FilterBuilder) Schema() sdkmodel.SchemaInfo  { return filterSchema }
func (b *FilterBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *FilterBuilder) Build() *Filter {
	return &Filter{
		key:                sdkmodel.ClonePtr(b.key),
		values:             sdkmodel.CopyList(b.values),
		comparisonOperator: sdkmodel.ClonePtr(b.comparisonOperator),
	}
}

var filterListCopier = sdkmodel.StructListCopier[Filter, FilterBuilder]{
	Build:     (*FilterBuilder).Build,
	ToBuilder: (*Filter).ToBuilder,
}

// DevEnvironmentSummary describes one dev environment in a listing.
type DevEnvironmentSummary struct {
	spaceName                *string
	projectName              *string
	id                       *string
	lastUpdatedTime          *time.Time
	creatorID                *string
	status                   *string
	alias                    *string
	ides                     sdkmodel.List[*IdeConfiguration]
	instanceType             *string
	inactivityTimeoutMinutes *int32
	persistentStorage        *PersistentStorageConfiguration
}

var devEnvironmentSummarySchema = sdkmodel.MustSchema("DevEnvironmentSummary", sdkmodel.KindStructure,
	sdkmodel.StringField("spaceName",
		func(r *DevEnvironmentSummary) *string { return r.spaceName },
		(*DevEnvironmentSummaryBuilder).SpaceName,
		sdkmodel.Payload("spaceName")),
	sdkmodel.StringField("projectName",
		func(r *DevEnvironmentSummary) *string { return r.projectName },
		(*DevEnvironmentSummaryBuilder).ProjectName,
		sdkmodel.Payload("projectName")),
	sdkmodel.StringField("id",
		func(r *DevEnvironmentSummary) *string { return r.id },
		(*DevEnvironmentSummaryBuilder).ID,
		sdkmodel.Payload("id")),
	sdkmodel.InstantField("lastUpdatedTime",
		func(r *DevEnvironmentSummary) *time.Time { return r.lastUpdatedTime },
		(*DevEnvironmentSummaryBuilder).LastUpdatedTime,
		sdkmodel.Payload("lastUpdatedTime"), sdkmodel.Format(sdkmodel.ISO8601)),
	sdkmodel.StringField("creatorId",
		func(r *DevEnvironmentSummary) *string { return r.creatorID },
		(*DevEnvironmentSummaryBuilder).CreatorID,
		sdkmodel.Payload("creatorId")),
	sdkmodel.StringField("status",
		func(r *DevEnvironmentSummary) *string { return r.status },
		(*DevEnvironmentSummaryBuilder).StatusRaw,
		sdkmodel.Payload("status")),
	sdkmodel.StringField("alias",
		func(r *DevEnvironmentSummary) *string { return r.alias },
		(*DevEnvironmentSummaryBuilder).Alias,
		sdkmodel.Payload("alias")),
	sdkmodel.ListField("ides",
		func(r *DevEnvironmentSummary) sdkmodel.List[*IdeConfiguration] { return r.ides },
		(*DevEnvironmentSummaryBuilder).Ides,
		sdkmodel.Payload("ides"), sdkmodel.ListOfStructures(newIdeConfigurationBuilder)),
	sdkmodel.StringField("instanceType",
		func(r *DevEnvironmentSummary) *string { return r.instanceType },
		(*DevEnvironmentSummaryBuilder).InstanceTypeRaw,
		sdkmodel.Payload("instanceType")),
	sdkmodel.IntegerField("inactivityTimeoutMinutes",
		func(r *DevEnvironmentSummary) *int32 { return r.inactivityTimeoutMinutes },
		(*DevEnvironmentSummaryBuilder).InactivityTimeoutMinutes,
		sdkmodel.Payload("inactivityTimeoutMinutes")),
	sdkmodel.StructureField("persistentStorage",
		func(r *DevEnvironmentSummary) *PersistentStorageConfiguration { return r.persistentStorage },
		(*DevEnvironmentSummaryBuilder).PersistentStorage,
		newPersistentStorageConfigurationBuilder,
		sdkmodel.Payload("persistentStorage")),
)

func newIdeConfigurationBuilder() sdkmodel.AnyBuilder { return NewIdeConfigurationBuilder() }
func newPersistentStorageConfigurationBuilder() sdkmodel.AnyBuilder {
	return NewPersistentStorageConfigurationBuilder()
}

func (r *DevEnvironmentSummary) SpaceName() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.spaceName)
}

func (r *DevEnvironmentSummary) ProjectName() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.projectName)
}

func (r *DevEnvironmentSummary) ID() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.id)
}

func (r *DevEnvironmentSummary) LastUpdatedTime() *time.Time {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.lastUpdatedTime)
}

func (r *DevEnvironmentSummary) CreatorID() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.creatorID)
}

// Status resolves the wire status; a value this client does not know yields
// DevEnvironmentStatusUnknownToSDKVersion.
func (r *DevEnvironmentSummary) Status() *DevEnvironmentStatus {
	if r == nil {
		return nil
	}
	return DevEnvironmentStatusFromValue(r.status)
}

// StatusAsString returns the raw wire status.
func (r *DevEnvironmentSummary) StatusAsString() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.status)
}

func (r *DevEnvironmentSummary) Alias() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.alias)
}

func (r *DevEnvironmentSummary) Ides() sdkmodel.List[*IdeConfiguration] {
	if r == nil || r.ides == nil {
		return sdkmodel.AutoConstructList[*IdeConfiguration]()
	}
	return r.ides
}

func (r *DevEnvironmentSummary) HasIdes() bool {
	return r != nil && r.ides != nil && !r.ides.AutoConstruct()
}

func (r *DevEnvironmentSummary) InstanceType() *InstanceType {
	if r == nil {
		return nil
	}
	return InstanceTypeFromValue(r.instanceType)
}

func (r *DevEnvironmentSummary) InstanceTypeAsString() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.instanceType)
}

func (r *DevEnvironmentSummary) InactivityTimeoutMinutes() *int32 {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.inactivityTimeoutMinutes)
}

func (r *DevEnvironmentSummary) PersistentStorage() *PersistentStorageConfiguration {
	if r == nil {
		return nil
	}
	return r.persistentStorage
}

func (r *DevEnvironmentSummary) Schema() sdkmodel.SchemaInfo { return devEnvironmentSummarySchema }
func (r *DevEnvironmentSummary) Equal(other any) bool {
	return devEnvironmentSummarySchema.Equal(r, other)
}
func (r *DevEnvironmentSummary) HashCode() uint64 { return devEnvironmentSummarySchema.Hash(r) }
func (r *DevEnvironmentSummary) String() string   { return devEnvironmentSummarySchema.String(r) }

func (r *DevEnvironmentSummary) ToBuilder() *DevEnvironmentSummaryBuilder {
	if r == nil {
		return NewDevEnvironmentSummaryBuilder()
	}
	return &DevEnvironmentSummaryBuilder{
		spaceName:                sdkmodel.ClonePtr(r.spaceName),
		projectName:              sdkmodel.ClonePtr(r.projectName),
		id:                       sdkmodel.ClonePtr(r.id),
		lastUpdatedTime:          sdkmodel.ClonePtr(r.lastUpdatedTime),
		creatorID:                sdkmodel.ClonePtr(r.creatorID),
		status:                   sdkmodel.ClonePtr(r.status),
		alias:                    sdkmodel.ClonePtr(r.alias),
		ides:                     r.Ides().Slice(),
		instanceType:             sdkmodel.ClonePtr(r.instanceType),
		inactivityTimeoutMinutes: sdkmodel.ClonePtr(r.inactivityTimeoutMinutes),
		persistentStorage:        r.persistentStorage,
	}
}

type DevEnvironmentSummaryBuilder struct {
	spaceName                *string
	projectName              *string
	id                       *string
	lastUpdatedTime          *time.Time
	creatorID                *string
	status                   *string
	alias                    *string
	ides                     []*IdeConfiguration
	instanceType             *string
	inactivityTimeoutMinutes *int32
	persistentStorage        *PersistentStorageConfiguration
}

var _ sdkmodel.Builder[*DevEnvironmentSummary] = (*DevEnvironmentSummaryBuilder)(nil)

func NewDevEnvironmentSummaryBuilder() *DevEnvironmentSummaryBuilder {
	return &DevEnvironmentSummaryBuilder{}
}

func (b *DevEnvironmentSummaryBuilder) SpaceName(v *string) *DevEnvironmentSummaryBuilder {
	b.spaceName = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) ProjectName(v *string) *DevEnvironmentSummaryBuilder {
	b.projectName = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) ID(v *string) *DevEnvironmentSummaryBuilder {
	b.id = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) LastUpdatedTime(v *time.Time) *DevEnvironmentSummaryBuilder {
	b.lastUpdatedTime = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) CreatorID(v *string) *DevEnvironmentSummaryBuilder {
	b.creatorID = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) Status(v DevEnvironmentStatus) *DevEnvironmentSummaryBuilder {
	b.status = enumPtr(v)
	return b
}

func (b *DevEnvironmentSummaryBuilder) StatusRaw(v *string) *DevEnvironmentSummaryBuilder {
	b.status = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) Alias(v *string) *DevEnvironmentSummaryBuilder {
	b.alias = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) Ides(v []*IdeConfiguration) *DevEnvironmentSummaryBuilder {
	b.ides = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) InstanceType(v InstanceType) *DevEnvironmentSummaryBuilder {
	b.instanceType = enumPtr(v)
	return b
}

func (b *DevEnvironmentSummaryBuilder) InstanceTypeRaw(v *string) *DevEnvironmentSummaryBuilder {
	b.instanceType = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) InactivityTimeoutMinutes(v *int32) *DevEnvironmentSummaryBuilder {
	b.inactivityTimeoutMinutes = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) PersistentStorage(v *PersistentStorageConfiguration) *DevEnvironmentSummaryBuilder {
	b.persistentStorage = v
	return b
}

func (b *DevEnvironmentSummaryBuilder) Schema() sdkmodel.SchemaInfo  { return devEnvironmentSummarySchema }
func (b *DevEnvironmentSummaryBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *DevEnvironmentSummaryBuilder) Build() *DevEnvironmentSummary {
	return &DevEnvironmentSummary{
		spaceName:                sdkmodel.ClonePtr(b.spaceName),
		projectName:              sdkmodel.ClonePtr(b.projectName),
		id:                       sdkmodel.ClonePtr(b.id),
		lastUpdatedTime:          sdkmodel.ClonePtr(b.lastUpdatedTime),
		creatorID:                sdkmodel.ClonePtr(b.creatorID),
		status:                   sdkmodel.ClonePtr(b.status),
		alias:                    sdkmodel.ClonePtr(b.alias),
		ides:                     ideConfigurationListCopier.Copy(b.ides),
		instanceType:             sdkmodel.ClonePtr(b.instanceType),
		inactivityTimeoutMinutes: sdkmodel.ClonePtr(b.inactivityTimeoutMinutes),
		persistentStorage:        b.persistentStorage,
	}
}

var devEnvironmentSummaryListCopier = sdkmodel.StructListCopier[DevEnvironmentSummary, DevEnvironmentSummaryBuilder]{
	Build:     (*DevEnvironmentSummaryBuilder).Build,
	ToBuilder: (*DevEnvironmentSummary).ToBuilder,
}
