package dictionary

import (
	"errors"

	"aircargo-admin-api/internal/logs"
	"aircargo-admin-api/internal/snowflake"

	"gorm.io/gorm"
)

var (
	ErrTypeNotFound    = errors.New("dictionary type not found")
	ErrGroupNotFound   = errors.New("dictionary option group not found")
	ErrTypeExists      = errors.New("dictionary type key already exists")
	ErrGroupExists     = errors.New("dictionary option group already exists for this type and label")
	ErrInvalidArgument = errors.New("invalid dictionary argument")
)

type DictionaryService struct {
	DB     *gorm.DB
	IDGen  *snowflake.Generator
	Logger *logs.LogService
}

// CreateType is the strict create path: a duplicate type key is a conflict.
func (s *DictionaryService) CreateType(name, typeKey string, status bool) (*DictType, error) {
	if name == "" || typeKey == "" {
		return nil, ErrInvalidArgument
	}

	var existing DictType
	err := s.DB.Where("type = ?", typeKey).First(&existing).Error
	if err == nil {
		return nil, ErrTypeExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	id, err := s.IDGen.NextID()
	if err != nil {
		return nil, err
	}
	dt := DictType{ID: id, Name: name, Type: typeKey, Status: status}
	if err := s.DB.Create(&dt).Error; err != nil {
		return nil, err
	}
	return &dt, nil
}

// CreateOrUpdateType upserts by type key. The key itself is immutable here;
// an existing row only has its name and status overwritten.
func (s *DictionaryService) CreateOrUpdateType(name, typeKey string, status bool) (*DictType, error) {
	if name == "" || typeKey == "" {
		return nil, ErrInvalidArgument
	}

	var dt DictType
	err := s.DB.Where("type = ?", typeKey).First(&dt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		id, idErr := s.IDGen.NextID()
		if idErr != nil {
			return nil, idErr
		}
		dt = DictType{ID: id, Name: name, Type: typeKey, Status: status}
		if err := s.DB.Create(&dt).Error; err != nil {
			return nil, err
		}
		return &dt, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(&DictType{}).Where("id = ?", dt.ID).
		Updates(map[string]interface{}{"name": name, "status": status}).Error; err != nil {
		return nil, err
	}
	if err := s.DB.First(&dt, "id = ?", dt.ID).Error; err != nil {
		return nil, err
	}
	return &dt, nil
}

func (s *DictionaryService) ListTypes(typeKey *string, status *bool, page, pageSize int) (int64, []DictType, error) {
	page, pageSize = normalizePage(page, pageSize)

	filter := func() *gorm.DB {
		q := s.DB.Model(&DictType{})
		if typeKey != nil && *typeKey != "" {
			q = q.Where("type = ?", *typeKey)
		}
		if status != nil {
			q = q.Where("status = ?", *status)
		}
		return q
	}

	var total int64
	if err := filter().Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var types []DictType
	if err := filter().Order("id DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&types).Error; err != nil {
		return 0, nil, err
	}
	return total, types, nil
}

// DeleteType removes the type and every option row belonging to it in one
// transaction. Returns the number of member rows removed.
func (s *DictionaryService) DeleteType(typeKey string) (int64, error) {
	if typeKey == "" {
		return 0, ErrInvalidArgument
	}

	var deleted int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		dt, err := findTypeByKey(tx, typeKey)
		if err != nil {
			return err
		}

		res := tx.Where("dict_type_id = ?", dt.ID).Delete(&DictOption{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected

		return tx.Delete(&DictType{}, "id = ?", dt.ID).Error
	})
	if err != nil {
		return 0, err
	}
	if s.Logger != nil {
		_ = s.Logger.Log(logs.SystemLog{
			Level:   "info",
			Service: "dictionary",
			Action:  "delete_type",
			Message: "dictionary type removed",
		}, map[string]interface{}{"type": typeKey, "options_deleted": deleted})
	}
	return deleted, nil
}

// CreateGroup persists one member row per unique value, all sharing a fresh
// group id. Duplicate input values collapse, keeping first-seen order. The
// whole group is written in one transaction so readers never observe a
// partial member set.
func (s *DictionaryService) CreateGroup(typeKey, label string, values []string, status bool) (*OptionGroup, error) {
	if typeKey == "" || label == "" || len(values) == 0 {
		return nil, ErrInvalidArgument
	}

	var group *OptionGroup
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		dt, err := findTypeByKey(tx, typeKey)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&DictOption{}).
			Where("dict_type_id = ? AND label = ?", dt.ID, label).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrGroupExists
		}

		rows, err := s.insertGroupRows(tx, dt, label, values, status)
		if err != nil {
			return err
		}
		group = groupFromRows(rows, dt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// UpsertGroup treats (type, label) as the natural key: create the group when
// absent, otherwise reconcile the persisted value set against the incoming
// one under the existing group id. The label is never mutated by this path.
// Calling twice with the same arguments is idempotent.
func (s *DictionaryService) UpsertGroup(typeKey, label string, values []string, status bool) (*OptionGroup, error) {
	if typeKey == "" || label == "" || len(values) == 0 {
		return nil, ErrInvalidArgument
	}

	var group *OptionGroup
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		dt, err := findTypeByKey(tx, typeKey)
		if err != nil {
			return err
		}

		var rows []DictOption
		if err := tx.Where("dict_type_id = ? AND label = ?", dt.ID, label).
			Order("id ASC").Find(&rows).Error; err != nil {
			return err
		}

		if len(rows) == 0 {
			created, err := s.insertGroupRows(tx, dt, label, values, status)
			if err != nil {
				return err
			}
			group = groupFromRows(created, dt)
			return nil
		}

		final, err := s.reconcileGroup(tx, dt, rows, label, values, status)
		if err != nil {
			return err
		}
		group = groupFromRows(final, dt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// UpdateGroupByID locates a group by its shared group id, which is the only
// path that may change the label. A nil newValues leaves the member set
// untouched; otherwise the same reconciliation as UpsertGroup applies.
func (s *DictionaryService) UpdateGroupByID(groupID uint64, newLabel *string, newValues []string, newStatus *bool) (*OptionGroup, error) {
	if newLabel != nil && *newLabel == "" {
		return nil, ErrInvalidArgument
	}
	if newValues != nil && len(newValues) == 0 {
		return nil, ErrInvalidArgument
	}

	var group *OptionGroup
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rows []DictOption
		if err := tx.Where("group_id = ?", groupID).Order("id ASC").Find(&rows).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return ErrGroupNotFound
		}

		var dt DictType
		if err := tx.First(&dt, "id = ?", rows[0].DictTypeID).Error; err != nil {
			return err
		}

		label := rows[0].Label
		if newLabel != nil && *newLabel != label {
			// (type, label) stays unique across groups.
			var clash int64
			if err := tx.Model(&DictOption{}).
				Where("dict_type_id = ? AND label = ? AND group_id <> ?", dt.ID, *newLabel, groupID).
				Count(&clash).Error; err != nil {
				return err
			}
			if clash > 0 {
				return ErrGroupExists
			}
			label = *newLabel
		}

		status := rows[0].Status
		if newStatus != nil {
			status = *newStatus
		}

		values := newValues
		if values == nil {
			for _, row := range rows {
				values = append(values, row.Value)
			}
		}

		final, err := s.reconcileGroup(tx, &dt, rows, label, values, status)
		if err != nil {
			return err
		}
		group = groupFromRows(final, &dt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteGroup removes every member row sharing the group id and reports how
// many rows went away.
func (s *DictionaryService) DeleteGroup(groupID uint64) (int64, error) {
	res := s.DB.Where("group_id = ?", groupID).Delete(&DictOption{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrGroupNotFound
	}
	return res.RowsAffected, nil
}

func (s *DictionaryService) DeleteGroupByTypeLabel(typeKey, label string) (int64, error) {
	if typeKey == "" || label == "" {
		return 0, ErrInvalidArgument
	}

	dt, err := findTypeByKey(s.DB, typeKey)
	if err != nil {
		return 0, err
	}

	res := s.DB.Where("dict_type_id = ? AND label = ?", dt.ID, label).Delete(&DictOption{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrGroupNotFound
	}
	return res.RowsAffected, nil
}

// ListGroups returns one item per group. Filters apply to member rows before
// grouping; pagination applies to the grouped result ordered newest-first
// (group ids are snowflakes, so descending group id is creation-time
// descending). An unknown type key is reported as ErrTypeNotFound rather
// than an empty page.
func (s *DictionaryService) ListGroups(typeKey *string, status *bool, page, pageSize int) (int64, []OptionGroup, error) {
	page, pageSize = normalizePage(page, pageSize)

	var typeFilter *DictType
	if typeKey != nil && *typeKey != "" {
		dt, err := findTypeByKey(s.DB, *typeKey)
		if err != nil {
			return 0, nil, err
		}
		typeFilter = dt
	}

	filter := func() *gorm.DB {
		q := s.DB.Model(&DictOption{})
		if typeFilter != nil {
			q = q.Where("dict_type_id = ?", typeFilter.ID)
		}
		if status != nil {
			q = q.Where("status = ?", *status)
		}
		return q
	}

	var total int64
	if err := filter().Distinct("group_id").Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var groupIDs []uint64
	if err := filter().Distinct("group_id").Order("group_id DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Pluck("group_id", &groupIDs).Error; err != nil {
		return 0, nil, err
	}
	if len(groupIDs) == 0 {
		return total, []OptionGroup{}, nil
	}

	// Fetch the complete member set of each selected group so the returned
	// value list is never truncated by the row-level filter.
	var rows []DictOption
	if err := s.DB.Where("group_id IN ?", groupIDs).
		Order("group_id DESC, id ASC").Find(&rows).Error; err != nil {
		return 0, nil, err
	}

	typesByID := map[uint64]*DictType{}
	if typeFilter != nil {
		typesByID[typeFilter.ID] = typeFilter
	} else {
		var typeIDs []uint64
		seen := map[uint64]struct{}{}
		for _, row := range rows {
			if _, ok := seen[row.DictTypeID]; !ok {
				seen[row.DictTypeID] = struct{}{}
				typeIDs = append(typeIDs, row.DictTypeID)
			}
		}
		var types []DictType
		if err := s.DB.Where("id IN ?", typeIDs).Find(&types).Error; err != nil {
			return 0, nil, err
		}
		for i := range types {
			typesByID[types[i].ID] = &types[i]
		}
	}

	groups := make([]OptionGroup, 0, len(groupIDs))
	for _, gid := range groupIDs {
		var members []DictOption
		for _, row := range rows {
			if row.GroupID == gid {
				members = append(members, row)
			}
		}
		if len(members) == 0 {
			continue
		}
		groups = append(groups, *groupFromRows(members, typesByID[members[0].DictTypeID]))
	}
	return total, groups, nil
}

// insertGroupRows allocates a fresh group id and writes one row per unique
// value. Must run inside a transaction.
func (s *DictionaryService) insertGroupRows(tx *gorm.DB, dt *DictType, label string, values []string, status bool) ([]DictOption, error) {
	groupID, err := s.IDGen.NextID()
	if err != nil {
		return nil, err
	}

	unique := dedupValues(values)
	rows := make([]DictOption, 0, len(unique))
	for _, v := range unique {
		id, err := s.IDGen.NextID()
		if err != nil {
			return nil, err
		}
		row := DictOption{
			ID:         id,
			DictTypeID: dt.ID,
			GroupID:    groupID,
			Label:      label,
			Value:      v,
			Status:     status,
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// reconcileGroup brings the persisted member set of an existing group into
// agreement with the target values: rows whose value dropped out are
// deleted, missing values are inserted under the same group id, retained
// rows have label and status refreshed in place. Must run inside a
// transaction so concurrent upserts on the same group cannot interleave.
func (s *DictionaryService) reconcileGroup(tx *gorm.DB, dt *DictType, rows []DictOption, label string, values []string, status bool) ([]DictOption, error) {
	groupID := rows[0].GroupID
	target := dedupValues(values)

	want := make(map[string]struct{}, len(target))
	for _, v := range target {
		want[v] = struct{}{}
	}

	existing := make(map[string]struct{}, len(rows))
	var staleIDs, retainedIDs []uint64
	for _, row := range rows {
		existing[row.Value] = struct{}{}
		if _, keep := want[row.Value]; keep {
			retainedIDs = append(retainedIDs, row.ID)
		} else {
			staleIDs = append(staleIDs, row.ID)
		}
	}

	if len(staleIDs) > 0 {
		if err := tx.Where("id IN ?", staleIDs).Delete(&DictOption{}).Error; err != nil {
			return nil, err
		}
	}
	if len(retainedIDs) > 0 {
		if err := tx.Model(&DictOption{}).Where("id IN ?", retainedIDs).
			Updates(map[string]interface{}{"label": label, "status": status}).Error; err != nil {
			return nil, err
		}
	}
	for _, v := range target {
		if _, ok := existing[v]; ok {
			continue
		}
		id, err := s.IDGen.NextID()
		if err != nil {
			return nil, err
		}
		row := DictOption{
			ID:         id,
			DictTypeID: dt.ID,
			GroupID:    groupID,
			Label:      label,
			Value:      v,
			Status:     status,
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, err
		}
	}

	var final []DictOption
	if err := tx.Where("group_id = ?", groupID).Order("id ASC").Find(&final).Error; err != nil {
		return nil, err
	}
	return final, nil
}

func findTypeByKey(db *gorm.DB, typeKey string) (*DictType, error) {
	var dt DictType
	if err := db.Where("type = ?", typeKey).First(&dt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	return &dt, nil
}

func groupFromRows(rows []DictOption, dt *DictType) *OptionGroup {
	g := &OptionGroup{
		ID:         rows[0].GroupID,
		DictTypeID: rows[0].DictTypeID,
		Label:      rows[0].Label,
		Status:     rows[0].Status,
		CreatedAt:  rows[0].CreatedAt,
		UpdatedAt:  rows[0].UpdatedAt,
	}
	if dt != nil {
		g.DictType = dt.Type
	}
	for _, row := range rows {
		g.Value = append(g.Value, row.Value)
		if row.CreatedAt.Before(g.CreatedAt) {
			g.CreatedAt = row.CreatedAt
		}
		if row.UpdatedAt.After(g.UpdatedAt) {
			g.UpdatedAt = row.UpdatedAt
		}
	}
	return g
}

func dedupValues(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
