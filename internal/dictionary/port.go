package dictionary

type DictionaryServiceAPI interface {
	CreateType(name, typeKey string, status bool) (*DictType, error)
	CreateOrUpdateType(name, typeKey string, status bool) (*DictType, error)
	ListTypes(typeKey *string, status *bool, page, pageSize int) (int64, []DictType, error)
	DeleteType(typeKey string) (int64, error)

	CreateGroup(typeKey, label string, values []string, status bool) (*OptionGroup, error)
	UpsertGroup(typeKey, label string, values []string, status bool) (*OptionGroup, error)
	UpdateGroupByID(groupID uint64, newLabel *string, newValues []string, newStatus *bool) (*OptionGroup, error)
	DeleteGroup(groupID uint64) (int64, error)
	DeleteGroupByTypeLabel(typeKey, label string) (int64, error)
	ListGroups(typeKey *string, status *bool, page, pageSize int) (int64, []OptionGroup, error)
}
